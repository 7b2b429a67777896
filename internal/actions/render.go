package actions

import (
	"fmt"
	"strings"

	"github.com/ytget/video-playlists/internal/model"
)

// NoPlaylistsText is shown by "display all" on an empty store
const NoPlaylistsText = "No playlists created.\n"

// RenderVideos formats videos one field per line, with a blank line after each
func RenderVideos(videos []model.Video) string {
	var b strings.Builder
	writeVideos(&b, videos)
	return b.String()
}

// RenderPlaylist formats a playlist header followed by its videos
func RenderPlaylist(p *model.Playlist) string {
	var b strings.Builder
	writePlaylist(&b, p)
	return b.String()
}

// RenderAllPlaylists formats every playlist in order
func RenderAllPlaylists(playlists []*model.Playlist) string {
	if len(playlists) == 0 {
		return NoPlaylistsText
	}
	var b strings.Builder
	for _, p := range playlists {
		writePlaylist(&b, p)
	}
	return b.String()
}

func writePlaylist(b *strings.Builder, p *model.Playlist) {
	fmt.Fprintf(b, "Playlist: %s\n\n", p.Name)
	writeVideos(b, p.Videos)
}

var renderedFields = []struct {
	label string
	key   string
}{
	{"ID", model.FieldID},
	{"Title", model.FieldTitle},
	{"Video ID", model.FieldVideoID},
	{"Views", model.FieldViews},
	{"Likes", model.FieldLikes},
	{"Comments", model.FieldComments},
	{"Description", model.FieldDescription},
	{"Thumbnail", model.FieldThumbnailURL},
	{"Created At", model.FieldCreatedAt},
	{"Updated At", model.FieldUpdatedAt},
}

func writeVideos(b *strings.Builder, videos []model.Video) {
	for _, v := range videos {
		for _, f := range renderedFields {
			fmt.Fprintf(b, "%s: %v\n", f.label, v.Text(f.key))
		}
		b.WriteString("\n")
	}
}
