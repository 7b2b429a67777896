package model

// Playlist is a named, ordered collection of video records. The same video may
// appear more than once.
type Playlist struct {
	Name   string  `json:"name"`
	Videos []Video `json:"videos"`
}

// NewPlaylist creates an empty playlist
func NewPlaylist(name string) *Playlist {
	return &Playlist{
		Name:   name,
		Videos: make([]Video, 0),
	}
}

// AddVideo appends a video to the end of the playlist
func (p *Playlist) AddVideo(video Video) {
	p.Videos = append(p.Videos, video)
}

// RemoveVideo removes every entry whose VideoID equals videoID and returns how
// many entries were dropped. Removing an absent ID is a no-op.
func (p *Playlist) RemoveVideo(videoID string) int {
	kept := make([]Video, 0, len(p.Videos))
	for _, video := range p.Videos {
		if video.VideoID() != videoID {
			kept = append(kept, video)
		}
	}
	removed := len(p.Videos) - len(kept)
	p.Videos = kept
	return removed
}

// Len returns the number of entries in the playlist
func (p *Playlist) Len() int {
	return len(p.Videos)
}

// Clone returns a deep copy safe to hand out of a locked store
func (p *Playlist) Clone() *Playlist {
	videos := make([]Video, len(p.Videos))
	copy(videos, p.Videos)
	return &Playlist{Name: p.Name, Videos: videos}
}
