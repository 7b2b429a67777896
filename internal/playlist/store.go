package playlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/ytget/video-playlists/internal/model"
	"github.com/ytget/video-playlists/internal/platform"
)

// Store maps playlist names to playlists and persists them to a JSON file.
// All methods are safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	path      string
	order     []string
	playlists map[string]*model.Playlist
	dirty     bool
	// lockErr blocks Save after a load that left the file on disk untouched
	lockErr error
}

// NewStore creates an empty store bound to path. Nothing is read from disk.
func NewStore(path string) *Store {
	return &Store{
		path:      path,
		order:     make([]string, 0),
		playlists: make(map[string]*model.Playlist),
	}
}

// Open creates a store bound to path and loads it. A missing file yields an
// empty store.
//
// The returned store is always usable. When the file cannot be decoded it is
// moved to a backup and the error names the backup. When the file cannot be
// read or moved, Save is refused so the original is never overwritten.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	err := s.Load()
	if err == nil {
		return s, nil
	}

	if errors.Is(err, ErrMalformedFile) {
		backup, berr := platform.BackupFile(path)
		if berr == nil {
			log.Printf("moved unreadable playlists file to %s", backup)
			return s, fmt.Errorf("%w (original kept as %s)", err, backup)
		}
		log.Printf("backup failed: %v", berr)
	}

	s.lockErr = err
	return s, err
}

// Path returns the file the store is persisted to
func (s *Store) Path() string {
	return s.path
}

// Create adds an empty playlist. An existing playlist is left untouched and
// ErrPlaylistExists is returned.
func (s *Store) Create(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playlists[name]; ok {
		return fmt.Errorf("%w: %s", ErrPlaylistExists, name)
	}
	s.playlists[name] = model.NewPlaylist(name)
	s.order = append(s.order, name)
	s.dirty = true
	return nil
}

// AddVideo appends video to the named playlist
func (s *Store) AddVideo(name string, video model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playlists[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	p.AddVideo(video)
	s.dirty = true
	return nil
}

// AddVideos appends videos to the named playlist in order
func (s *Store) AddVideos(name string, videos []model.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playlists[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	for _, v := range videos {
		p.AddVideo(v)
	}
	if len(videos) > 0 {
		s.dirty = true
	}
	return nil
}

// RemoveVideo removes every entry with the given video ID from the named
// playlist and returns how many were removed.
func (s *Store) RemoveVideo(name, videoID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.playlists[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	removed := p.RemoveVideo(videoID)
	if removed > 0 {
		s.dirty = true
	}
	return removed, nil
}

// Delete drops the named playlist
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.playlists[name]; !ok {
		return fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	delete(s.playlists, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.dirty = true
	return nil
}

// Get returns a copy of the named playlist
func (s *Store) Get(name string) (*model.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.playlists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	return p.Clone(), nil
}

// Names returns playlist names in store order
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// All returns copies of every playlist in store order
func (s *Store) All() []*model.Playlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*model.Playlist, 0, len(s.order))
	for _, name := range s.order {
		all = append(all, s.playlists[name].Clone())
	}
	return all
}

// Len returns the number of playlists
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Dirty reports whether the store changed since the last Save or Load
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Save writes the whole store to its file
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lockErr != nil {
		return fmt.Errorf("%w: %v", ErrSaveLocked, s.lockErr)
	}

	data, err := s.encode()
	if err != nil {
		return fmt.Errorf("failed to encode playlists: %w", err)
	}
	if err := platform.WriteFileAtomic(s.path, data, platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to save playlists to %s: %w", s.path, err)
	}
	s.dirty = false
	log.Printf("saved %d playlists to %s", len(s.order), s.path)
	return nil
}

// Load replaces the store contents with the file contents. A missing file
// empties the store. On a decode error the store is left unchanged.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read playlists from %s: %w", s.path, err)
	}

	order := make([]string, 0)
	playlists := make(map[string]*model.Playlist)
	if err == nil {
		order, playlists, err = decode(data)
		if err != nil {
			return fmt.Errorf("%w %s: %v", ErrMalformedFile, s.path, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
	s.playlists = playlists
	s.dirty = false
	s.lockErr = nil
	log.Printf("loaded %d playlists from %s", len(order), s.path)
	return nil
}

// encode writes {"name":[...],...} keeping store order. Caller holds the lock.
func (s *Store) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		videos := s.playlists[name].Videos
		if videos == nil {
			videos = []model.Video{}
		}
		value, err := json.Marshal(videos)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decode reads the top-level object token by token so key order survives
func decode(data []byte) ([]string, map[string]*model.Playlist, error) {
	order := make([]string, 0)
	playlists := make(map[string]*model.Playlist)

	if len(bytes.TrimSpace(data)) == 0 {
		return order, playlists, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected key %v", tok)
		}

		var videos []model.Video
		if err := dec.Decode(&videos); err != nil {
			return nil, nil, fmt.Errorf("playlist %q: %w", name, err)
		}
		if videos == nil {
			videos = make([]model.Video, 0)
		}

		if _, seen := playlists[name]; !seen {
			order = append(order, name)
		}
		playlists[name] = &model.Playlist{Name: name, Videos: videos}
	}

	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("unexpected data after playlists object")
	}
	return order, playlists, nil
}
