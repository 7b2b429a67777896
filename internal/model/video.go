package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Well-known fields of a video record as served by the remote API
const (
	FieldID           = "id"
	FieldTitle        = "title"
	FieldVideoID      = "video_id"
	FieldViews        = "views"
	FieldLikes        = "likes"
	FieldComments     = "comments"
	FieldDescription  = "description"
	FieldThumbnailURL = "thumbnail_url"
	FieldCreatedAt    = "created_at"
	FieldUpdatedAt    = "updated_at"
)

// Video is a single video record. It is kept as the JSON object it arrived as:
// every field, known or not, survives a decode/encode cycle with its original
// JSON type. Values are immutable; With returns a modified copy.
type Video struct {
	fields map[string]json.RawMessage
}

// NewVideo creates a record with the given video ID and title
func NewVideo(videoID, title string) Video {
	return Video{}.With(FieldVideoID, videoID).With(FieldTitle, title)
}

// With returns a copy of the record with key set to value. A value that cannot
// be encoded as JSON is stored as null.
func (v Video) With(key string, value any) Video {
	raw, err := json.Marshal(value)
	if err != nil {
		raw = []byte("null")
	}
	fields := make(map[string]json.RawMessage, len(v.fields)+1)
	for k, val := range v.fields {
		fields[k] = val
	}
	fields[key] = raw
	return Video{fields: fields}
}

// VideoID returns the video_id field as text
func (v Video) VideoID() string {
	return v.Text(FieldVideoID)
}

// Title returns the title field as text
func (v Video) Title() string {
	return v.Text(FieldTitle)
}

// Text renders a field for display: strings without quotes, anything else as
// its JSON text. A missing field renders as an empty string.
func (v Video) Text(key string) string {
	raw, ok := v.fields[key]
	if !ok {
		return ""
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}

// Has reports whether the record carries key
func (v Video) Has(key string) bool {
	_, ok := v.fields[key]
	return ok
}

// Decode unmarshals a single field into dst
func (v Video) Decode(key string, dst any) error {
	raw, ok := v.fields[key]
	if !ok {
		return fmt.Errorf("video field %q not present", key)
	}
	return json.Unmarshal(raw, dst)
}

// Keys returns the record's field names in sorted order
func (v Video) Keys() []string {
	keys := make([]string, 0, len(v.fields))
	for k := range v.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON writes the record back as a JSON object
func (v Video) MarshalJSON() ([]byte, error) {
	if v.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v.fields)
}

// UnmarshalJSON keeps every field of a JSON object, compacted
func (v *Video) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("video record: %w", err)
	}
	for k, raw := range fields {
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return fmt.Errorf("video field %q: %w", k, err)
		}
		fields[k] = buf.Bytes()
	}
	v.fields = fields
	return nil
}

// String returns a short human readable form used in logs
func (v Video) String() string {
	return fmt.Sprintf("%s (%s)", v.Title(), v.VideoID())
}

// VideoPage is one page of the remote video listing.
type VideoPage struct {
	Videos []Video `json:"videos"`
}

// FindVideo returns the first video on the page with the given video ID.
func (p *VideoPage) FindVideo(videoID string) (Video, bool) {
	if p == nil {
		return Video{}, false
	}
	for _, v := range p.Videos {
		if v.VideoID() == videoID {
			return v, true
		}
	}
	return Video{}, false
}
