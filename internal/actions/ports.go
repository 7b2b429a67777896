package actions

import (
	"context"

	"github.com/ytget/video-playlists/internal/model"
)

// Fetcher loads one page of the remote video listing
type Fetcher interface {
	FetchVideos(ctx context.Context, page int) (*model.VideoPage, error)
}

// Importer lists the videos of an external playlist given by URL or ID
type Importer interface {
	ImportPlaylist(ctx context.Context, urlOrID string) ([]model.Video, error)
}

// Prompter asks the user for one line of text. done is called once, with
// ok=false when the prompt was cancelled.
type Prompter interface {
	PromptString(title, message string, done func(value string, ok bool))
}

// Notifier shows a short modal message
type Notifier interface {
	Notify(kind model.NoticeKind, title, message string)
}

// Display replaces the contents of the main text area
type Display interface {
	Show(text string)
}
