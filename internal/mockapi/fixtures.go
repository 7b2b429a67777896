package mockapi

import (
	"fmt"
	"time"

	"github.com/ytget/video-playlists/internal/model"
)

// PageSize is the number of videos served per page
const PageSize = 10

var fixtureTitles = []string{
	"Go Concurrency Patterns",
	"Advanced Go Concurrency Patterns",
	"Understanding Channels",
	"Rethinking Classical Concurrency Patterns",
	"Simplicity is Complicated",
	"Go Proverbs",
	"Lexical Scanning in Go",
	"Concurrency is not Parallelism",
	"Building a Desktop App with Fyne",
	"JSON Encoding in Depth",
	"Profiling Go Programs",
	"The Go Memory Model Explained",
	"Writing Table Driven Tests",
	"Error Handling in Go",
	"Context Cancellation Deep Dive",
	"HTTP Servers from Scratch",
	"Routing with chi",
	"Generics in Practice",
	"Escape Analysis for Beginners",
	"Garbage Collector Tuning",
	"Building CLI Tools",
	"Lo-fi Beats to Code To",
	"Cooking Pasta Like a Pro",
	"Mountain Bike Trail Guide",
}

var fixtureEpoch = time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

// Videos returns the deterministic fixture set served by the mock API
func Videos() []model.Video {
	videos := make([]model.Video, 0, len(fixtureTitles))
	for i, title := range fixtureTitles {
		n := int64(i + 1)
		created := fixtureEpoch.Add(time.Duration(i) * 24 * time.Hour)
		videoID := fmt.Sprintf("vid%04d", n)
		videos = append(videos, model.NewVideo(videoID, title).
			With(model.FieldID, n).
			With(model.FieldViews, 1000*n*n).
			With(model.FieldLikes, 37*n).
			With(model.FieldComments, 5*n).
			With(model.FieldDescription, fmt.Sprintf("Episode %d: %s", n, title)).
			With(model.FieldThumbnailURL, fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID)).
			With(model.FieldCreatedAt, created.Format(time.RFC3339)).
			With(model.FieldUpdatedAt, created.Add(6*time.Hour).Format(time.RFC3339)))
	}
	return videos
}

// Page returns the videos on a 1-based page. Pages past the end are empty.
func Page(videos []model.Video, page int) []model.Video {
	start := (page - 1) * PageSize
	if page < 1 || start >= len(videos) {
		return []model.Video{}
	}
	end := start + PageSize
	if end > len(videos) {
		end = len(videos)
	}
	out := make([]model.Video, end-start)
	copy(out, videos[start:end])
	return out
}
