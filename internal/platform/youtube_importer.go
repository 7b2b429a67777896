package platform

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"
	"github.com/ytget/ytdlp/v2/types"

	"github.com/ytget/video-playlists/internal/model"
)

// Timeout constants
const (
	DefaultImportTimeout = 60 * time.Second
)

// DefaultImportLimit caps how many playlist items are imported (0 means all)
const DefaultImportLimit = 200

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeThumbnailURLTemplate = "https://i.ytimg.com/vi/%s/hqdefault.jpg"
)

// playlistIDPattern matches bare YouTube playlist IDs (PL..., OLAK5uy_..., RD...)
var playlistIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{10,64}$`)

// playlistLister is the part of the ytdlp downloader used for imports
type playlistLister interface {
	GetPlaylistItemsAll(ctx context.Context, playlistID string, limit int) ([]types.PlaylistItem, error)
}

// YouTubeImporter lists the videos of a YouTube playlist and converts them to
// video records.
type YouTubeImporter struct {
	timeout time.Duration
	limit   int
	lister  playlistLister
}

// NewYouTubeImporter creates a new importer backed by the ytdlp library
func NewYouTubeImporter() *YouTubeImporter {
	return &YouTubeImporter{
		timeout: DefaultImportTimeout,
		limit:   DefaultImportLimit,
		lister:  ytdlp.New(),
	}
}

// SetTimeout sets the timeout for import operations
func (y *YouTubeImporter) SetTimeout(timeout time.Duration) {
	y.timeout = timeout
}

// SetLimit sets the maximum number of items to import (0 means all)
func (y *YouTubeImporter) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	y.limit = limit
}

// ImportPlaylist fetches the items of a playlist given by URL or bare ID
func (y *YouTubeImporter) ImportPlaylist(ctx context.Context, input string) ([]model.Video, error) {
	playlistID, err := ExtractPlaylistID(input)
	if err != nil {
		return nil, err
	}

	if y.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.timeout)
		defer cancel()
	}

	log.Printf("importing youtube playlist %s (limit %d)", playlistID, y.limit)
	items, err := y.lister.GetPlaylistItemsAll(ctx, playlistID, y.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	videos := make([]model.Video, 0, len(items))
	for _, it := range items {
		if it.VideoID == "" {
			continue
		}
		videos = append(videos, model.NewVideo(it.VideoID, it.Title).
			With(model.FieldThumbnailURL, fmt.Sprintf(YouTubeThumbnailURLTemplate, it.VideoID)))
	}

	log.Printf("imported %d videos from youtube playlist %s", len(videos), playlistID)
	return videos, nil
}

// IsValidPlaylistInput checks if the input is a playlist URL or a bare playlist ID
func IsValidPlaylistInput(input string) bool {
	_, err := ExtractPlaylistID(input)
	return err == nil
}

// ExtractPlaylistID extracts the playlist ID from a playlist URL or returns a
// bare ID unchanged.
func ExtractPlaylistID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty playlist input")
	}

	if !strings.Contains(input, PlaylistParam) {
		if playlistIDPattern.MatchString(input) {
			return input, nil
		}
		return "", fmt.Errorf("invalid playlist URL or ID: %s", input)
	}

	parts := strings.SplitN(input, PlaylistParam, 2)
	playlistID := parts[1]
	if strings.Contains(playlistID, ParamSeparator) {
		playlistID = strings.Split(playlistID, ParamSeparator)[0]
	}

	if playlistID == "" {
		return "", fmt.Errorf("could not extract playlist ID from URL: %s", input)
	}
	return playlistID, nil
}
