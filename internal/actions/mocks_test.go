package actions

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/ytget/video-playlists/internal/model"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchVideos(ctx context.Context, page int) (*model.VideoPage, error) {
	args := m.Called(ctx, page)
	if p := args.Get(0); p != nil {
		return p.(*model.VideoPage), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) ImportPlaylist(ctx context.Context, urlOrID string) ([]model.Video, error) {
	args := m.Called(ctx, urlOrID)
	if v := args.Get(0); v != nil {
		return v.([]model.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

// answer is one scripted reply to a prompt
type answer struct {
	value string
	ok    bool
}

func reply(v string) answer { return answer{value: v, ok: true} }

var cancelled = answer{}

// scriptedPrompter answers prompts synchronously from a queue. Prompts past the
// end of the queue are cancelled.
type scriptedPrompter struct {
	answers  []answer
	messages []string
}

func (p *scriptedPrompter) PromptString(title, message string, done func(string, bool)) {
	p.messages = append(p.messages, message)
	if len(p.answers) == 0 {
		done("", false)
		return
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	done(a.value, a.ok)
}

type notice struct {
	kind    model.NoticeKind
	title   string
	message string
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (n *recordingNotifier) Notify(kind model.NoticeKind, title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice{kind, title, message})
}

func (n *recordingNotifier) last() (notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notices) == 0 {
		return notice{}, false
	}
	return n.notices[len(n.notices)-1], true
}

type recordingDisplay struct {
	mu    sync.Mutex
	texts []string
}

func (d *recordingDisplay) Show(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texts = append(d.texts, text)
}

func (d *recordingDisplay) current() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.texts) == 0 {
		return ""
	}
	return d.texts[len(d.texts)-1]
}
