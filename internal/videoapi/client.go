// Package videoapi is the HTTP client for the remote paginated video listing.
package videoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/video-playlists/internal/config"
	"github.com/ytget/video-playlists/internal/model"
)

const (
	// DefaultBaseURL is the public mock YouTube API
	DefaultBaseURL = config.DefaultAPIBaseURL

	userAgentValue = "video-playlists/1.0"

	videosPath      = "/videos"
	pageParam       = "page"
	requestIDHeader = "X-Request-ID"
)

// defaultTransport is shared by clients built with New/NewWith
var defaultTransport = &http.Transport{
	Proxy:                 http.ProxyFromEnvironment,
	MaxIdleConns:          10,
	IdleConnTimeout:       90 * time.Second,
	TLSHandshakeTimeout:   10 * time.Second,
	ResponseHeaderTimeout: 15 * time.Second,
	ForceAttemptHTTP2:     true,
	DialContext: (&net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext,
}

// StatusError is returned when the API answers with a non-200 status
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

// Config holds optional client parameters. Zero values use defaults.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client fetches pages of video records
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
}

// New creates a client for the default API
func New() *Client {
	return NewWith(Config{})
}

// NewWith creates a client with the provided config. Zero values use defaults.
func NewWith(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = userAgentValue
	}

	return &Client{
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: defaultTransport,
		},
		BaseURL:   baseURL,
		UserAgent: ua,
	}
}

// PageURL builds the listing URL for a page
func (c *Client) PageURL(page int) string {
	q := url.Values{}
	q.Set(pageParam, strconv.Itoa(page))
	return c.BaseURL + videosPath + "?" + q.Encode()
}

// FetchVideos requests one page of videos. Any status other than 200 is an
// error of type *StatusError.
func (c *Client) FetchVideos(ctx context.Context, page int) (*model.VideoPage, error) {
	reqURL := c.PageURL(page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("fetch videos page=%d request_id=%s failed: %v", page, requestID, err)
		return nil, fmt.Errorf("failed to fetch videos page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("fetch videos page=%d request_id=%s status=%d", page, requestID, resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var result model.VideoPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode videos page %d: %w", page, err)
	}
	if result.Videos == nil {
		result.Videos = make([]model.Video, 0)
	}

	log.Printf("fetched %d videos page=%d request_id=%s in %s", len(result.Videos), page, requestID, time.Since(start).Round(time.Millisecond))
	return &result, nil
}
