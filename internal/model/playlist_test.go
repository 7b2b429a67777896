package model

import (
	"reflect"
	"testing"
)

func TestNewPlaylist(t *testing.T) {
	p := NewPlaylist("Favorites")

	if p.Name != "Favorites" {
		t.Errorf("Expected name 'Favorites', got '%s'", p.Name)
	}
	if p.Videos == nil {
		t.Error("Expected non-nil videos slice")
	}
	if p.Len() != 0 {
		t.Errorf("Expected empty playlist, got %d videos", p.Len())
	}
}

func TestPlaylist_AddVideo(t *testing.T) {
	p := NewPlaylist("Favorites")
	p.AddVideo(NewVideo("v1", "First"))
	p.AddVideo(NewVideo("v2", "Second"))
	p.AddVideo(NewVideo("v1", "First"))

	if p.Len() != 3 {
		t.Fatalf("Expected 3 videos, got %d", p.Len())
	}

	expected := []string{"v1", "v2", "v1"}
	for i, id := range expected {
		if p.Videos[i].VideoID() != id {
			t.Errorf("Video %d: expected %s, got %s", i, id, p.Videos[i].VideoID())
		}
	}
}

func TestPlaylist_RemoveVideo(t *testing.T) {
	tests := []struct {
		name        string
		videos      []string
		remove      string
		wantRemoved int
		wantLeft    []string
	}{
		{"removes single match", []string{"v1", "v2"}, "v1", 1, []string{"v2"}},
		{"removes all duplicates", []string{"v1", "v2", "v1", "v3", "v1"}, "v1", 3, []string{"v2", "v3"}},
		{"absent id is no-op", []string{"v1", "v2"}, "v9", 0, []string{"v1", "v2"}},
		{"empty playlist", nil, "v1", 0, []string{}},
		{"removes last entry", []string{"v1"}, "v1", 1, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlaylist("p")
			for _, id := range tt.videos {
				p.AddVideo(NewVideo(id, ""))
			}

			removed := p.RemoveVideo(tt.remove)
			if removed != tt.wantRemoved {
				t.Errorf("RemoveVideo(%s) removed %d, expected %d", tt.remove, removed, tt.wantRemoved)
			}

			left := make([]string, 0, p.Len())
			for _, v := range p.Videos {
				left = append(left, v.VideoID())
			}
			if !reflect.DeepEqual(left, tt.wantLeft) {
				t.Errorf("After RemoveVideo(%s) got %v, expected %v", tt.remove, left, tt.wantLeft)
			}
		})
	}
}

func TestPlaylist_AddThenRemoveLeavesEmpty(t *testing.T) {
	p := NewPlaylist("Favorites")
	p.AddVideo(NewVideo("v1", "X"))
	p.RemoveVideo("v1")

	if p.Videos == nil || p.Len() != 0 {
		t.Errorf("Expected empty non-nil playlist, got %#v", p.Videos)
	}
}

func TestPlaylist_Clone(t *testing.T) {
	p := NewPlaylist("Favorites")
	p.AddVideo(NewVideo("v1", ""))

	c := p.Clone()
	c.Videos[0] = NewVideo("changed", "")
	c.AddVideo(NewVideo("v2", ""))

	if p.Videos[0].VideoID() != "v1" {
		t.Error("Clone should not share the backing array with the original")
	}
	if p.Len() != 1 {
		t.Errorf("Original length changed to %d", p.Len())
	}
}

func TestVideoPage_FindVideo(t *testing.T) {
	page := &VideoPage{Videos: []Video{
		NewVideo("a", "First a").With(FieldID, 1),
		NewVideo("b", "").With(FieldID, 2),
		NewVideo("a", "Second a").With(FieldID, 3),
	}}

	v, ok := page.FindVideo("a")
	if !ok || v.Text(FieldID) != "1" {
		t.Errorf("Expected first match with ID 1, got %v (found=%v)", v.Text(FieldID), ok)
	}

	if _, ok := page.FindVideo("zzz"); ok {
		t.Error("Expected missing video not to be found")
	}

	var nilPage *VideoPage
	if _, ok := nilPage.FindVideo("a"); ok {
		t.Error("Expected nil page to find nothing")
	}
}
