package actions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/ytget/video-playlists/internal/config"
	"github.com/ytget/video-playlists/internal/model"
	"github.com/ytget/video-playlists/internal/playlist"
)

// Notice titles
const (
	TitleInfo  = "Info"
	TitleError = "Error"
)

// Prompt titles
const (
	TitleSearch         = "Search"
	TitleCreatePlaylist = "Create Playlist"
	TitleAddToPlaylist  = "Add to Playlist"
	TitleRemoveFromList = "Remove from Playlist"
	TitleDisplayList    = "Display Playlist"
	TitleDeletePlaylist = "Delete Playlist"
	TitleImportPlaylist = "Import YouTube Playlist"
)

// Prompt messages
const (
	PromptSearchQuery  = "Enter search query:"
	PromptPlaylistName = "Enter playlist name:"
	PromptVideoID      = "Enter video ID:"
	PromptYouTubeInput = "Enter YouTube playlist URL or ID:"
)

// Notice messages
const (
	MsgFetchFailed       = "Failed to fetch videos"
	MsgPlaylistCreated   = "Playlist \"%s\" created."
	MsgPlaylistExists    = "Playlist \"%s\" already exists."
	MsgPlaylistMissing   = "Playlist \"%s\" does not exist."
	MsgVideoAdded        = "Added video \"%s\" to playlist \"%s\"."
	MsgVideoNotOnPage    = "Video \"%s\" is not on page %d."
	MsgVideoRemoved      = "Removed video with ID \"%s\" from playlist \"%s\"."
	MsgPlaylistDeleted   = "Playlist \"%s\" deleted."
	MsgPlaylistsSaved    = "Playlists saved."
	MsgSaveFailed        = "Failed to save playlists: %v"
	MsgImported          = "Imported %d videos into playlist \"%s\"."
	MsgImportFailed      = "Failed to import playlist: %v"
	MsgImportUnavailable = "YouTube import is not available."
)

// Deps are the collaborators of a Controller. Importer may be nil.
type Deps struct {
	Store    *playlist.Store
	Fetcher  Fetcher
	Importer Importer
	Prompter Prompter
	Notifier Notifier
	Display  Display
}

// Controller owns the page counter and runs user actions. Actions block on
// network calls, so the UI invokes them off its main goroutine.
type Controller struct {
	store    *playlist.Store
	fetcher  Fetcher
	importer Importer
	prompter Prompter
	notifier Notifier
	display  Display

	mu           sync.Mutex
	pager        *model.Pager
	fetchTimeout time.Duration
	onPage       func(int)
}

// NewController creates a controller positioned on the first page
func NewController(deps Deps) *Controller {
	return &Controller{
		store:        deps.Store,
		fetcher:      deps.Fetcher,
		importer:     deps.Importer,
		prompter:     deps.Prompter,
		notifier:     deps.Notifier,
		display:      deps.Display,
		pager:        model.NewPager(),
		fetchTimeout: config.DefaultRequestTimeout,
	}
}

// Store returns the playlist store the controller mutates
func (c *Controller) Store() *playlist.Store {
	return c.store
}

// SetFetchTimeout sets the per-request timeout for page fetches
func (c *Controller) SetFetchTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchTimeout = timeout
}

// SetPageCallback registers fn to be called with the new page number
func (c *Controller) SetPageCallback(fn func(int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onPage = fn
}

// Page returns the current page number
func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pager.Current()
}

// FetchAndDisplay shows the videos of the current page
func (c *Controller) FetchAndDisplay(ctx context.Context) {
	page, ok := c.fetchCurrent(ctx)
	if !ok {
		return
	}
	c.display.Show(RenderVideos(page.Videos))
}

// NextPage advances the page counter and shows that page
func (c *Controller) NextPage(ctx context.Context) {
	c.movePage(func(p *model.Pager) int { return p.Next() })
	c.FetchAndDisplay(ctx)
}

// PrevPage steps the page counter back, never below the first page, and shows
// that page
func (c *Controller) PrevPage(ctx context.Context) {
	c.movePage(func(p *model.Pager) int { return p.Prev() })
	c.FetchAndDisplay(ctx)
}

// Search filters the current page by a title query
func (c *Controller) Search(ctx context.Context) {
	c.promptRequired(TitleSearch, PromptSearchQuery, func(query string) {
		page, ok := c.fetchCurrent(ctx)
		if !ok {
			return
		}
		c.display.Show(RenderVideos(model.SearchVideos(page.Videos, query)))
	})
}

// CreatePlaylist asks for a name and creates an empty playlist
func (c *Controller) CreatePlaylist(ctx context.Context) {
	c.promptRequired(TitleCreatePlaylist, PromptPlaylistName, func(name string) {
		err := c.store.Create(name)
		switch {
		case err == nil:
			log.Printf("playlist created: %s", name)
			c.info(fmt.Sprintf(MsgPlaylistCreated, name))
		case errors.Is(err, playlist.ErrPlaylistExists):
			c.info(fmt.Sprintf(MsgPlaylistExists, name))
		default:
			c.fail(err.Error())
		}
	})
}

// AddToPlaylist adds a video from the current page to a playlist
func (c *Controller) AddToPlaylist(ctx context.Context) {
	c.DisplayAllPlaylists(ctx)
	c.promptPair(TitleAddToPlaylist, PromptPlaylistName, PromptVideoID, func(name, videoID string) {
		page, ok := c.fetchCurrent(ctx)
		if !ok {
			return
		}
		video, found := page.FindVideo(videoID)
		if !found {
			c.info(fmt.Sprintf(MsgVideoNotOnPage, videoID, c.Page()))
			return
		}
		if err := c.store.AddVideo(name, video); err != nil {
			c.playlistError(name, err)
			return
		}
		log.Printf("video %s added to playlist %s", video, name)
		c.info(fmt.Sprintf(MsgVideoAdded, video.Title(), name))
	})
}

// RemoveFromPlaylist removes every entry with a video ID from a playlist
func (c *Controller) RemoveFromPlaylist(ctx context.Context) {
	c.DisplayAllPlaylists(ctx)
	c.promptPair(TitleRemoveFromList, PromptPlaylistName, PromptVideoID, func(name, videoID string) {
		removed, err := c.store.RemoveVideo(name, videoID)
		if err != nil {
			c.playlistError(name, err)
			return
		}
		log.Printf("removed %d entries of video %s from playlist %s", removed, videoID, name)
		c.info(fmt.Sprintf(MsgVideoRemoved, videoID, name))
	})
}

// DisplayPlaylist shows a single playlist
func (c *Controller) DisplayPlaylist(ctx context.Context) {
	c.DisplayAllPlaylists(ctx)
	c.promptRequired(TitleDisplayList, PromptPlaylistName, func(name string) {
		p, err := c.store.Get(name)
		if err != nil {
			c.playlistError(name, err)
			return
		}
		c.display.Show(RenderPlaylist(p))
	})
}

// DisplayAllPlaylists shows every playlist
func (c *Controller) DisplayAllPlaylists(ctx context.Context) {
	c.display.Show(RenderAllPlaylists(c.store.All()))
}

// DeletePlaylist asks for a name and removes that playlist
func (c *Controller) DeletePlaylist(ctx context.Context) {
	c.DisplayAllPlaylists(ctx)
	c.promptRequired(TitleDeletePlaylist, PromptPlaylistName, func(name string) {
		if err := c.store.Delete(name); err != nil {
			c.playlistError(name, err)
			return
		}
		log.Printf("playlist deleted: %s", name)
		c.info(fmt.Sprintf(MsgPlaylistDeleted, name))
		c.DisplayAllPlaylists(ctx)
	})
}

// ImportYouTubePlaylist appends the videos of a YouTube playlist to a local
// playlist, creating it when needed
func (c *Controller) ImportYouTubePlaylist(ctx context.Context) {
	if c.importer == nil {
		c.fail(MsgImportUnavailable)
		return
	}
	c.promptPair(TitleImportPlaylist, PromptPlaylistName, PromptYouTubeInput, func(name, input string) {
		videos, err := c.importer.ImportPlaylist(ctx, input)
		if err != nil {
			log.Printf("import %s failed: %v", input, err)
			c.fail(fmt.Sprintf(MsgImportFailed, err))
			return
		}
		if err := c.store.Create(name); err != nil && !errors.Is(err, playlist.ErrPlaylistExists) {
			c.fail(err.Error())
			return
		}
		if err := c.store.AddVideos(name, videos); err != nil {
			c.playlistError(name, err)
			return
		}
		c.info(fmt.Sprintf(MsgImported, len(videos), name))
	})
}

// Save writes the store to disk
func (c *Controller) Save(ctx context.Context) {
	if err := c.store.Save(); err != nil {
		log.Printf("save failed: %v", err)
		c.fail(fmt.Sprintf(MsgSaveFailed, err))
		return
	}
	c.info(MsgPlaylistsSaved)
}

func (c *Controller) fetchCurrent(ctx context.Context) (*model.VideoPage, bool) {
	c.mu.Lock()
	pageNum := c.pager.Current()
	timeout := c.fetchTimeout
	c.mu.Unlock()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	page, err := c.fetcher.FetchVideos(ctx, pageNum)
	if err != nil {
		log.Printf("fetch page %d failed: %v", pageNum, err)
		c.fail(MsgFetchFailed)
		return nil, false
	}
	return page, true
}

func (c *Controller) movePage(step func(*model.Pager) int) {
	c.mu.Lock()
	page := step(c.pager)
	cb := c.onPage
	c.mu.Unlock()

	if cb != nil {
		cb(page)
	}
}

// promptRequired calls next with the trimmed input; empty or cancelled input
// ends the action
func (c *Controller) promptRequired(title, message string, next func(string)) {
	c.prompter.PromptString(title, message, func(value string, ok bool) {
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			return
		}
		next(value)
	})
}

// promptPair asks two questions under one title; both answers are required
func (c *Controller) promptPair(title, first, second string, next func(string, string)) {
	c.promptRequired(title, first, func(a string) {
		c.promptRequired(title, second, func(b string) {
			next(a, b)
		})
	})
}

func (c *Controller) playlistError(name string, err error) {
	if errors.Is(err, playlist.ErrPlaylistNotFound) {
		c.fail(fmt.Sprintf(MsgPlaylistMissing, name))
		return
	}
	c.fail(err.Error())
}

func (c *Controller) info(message string) {
	c.notifier.Notify(model.NoticeInfo, TitleInfo, message)
}

func (c *Controller) fail(message string) {
	c.notifier.Notify(model.NoticeError, TitleError, message)
}
