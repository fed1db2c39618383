package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/notiz/internal/screen"
)

// stubScreen is a minimal screen.Screen for router tests.
type stubScreen struct {
	name   string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string               { return s.name }
func (s *stubScreen) Title() string                               { return s.name }

func TestRouter_PushPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", r.Depth())
	}

	next := &stubScreen{name: "next"}
	r.Push(next)
	if !next.inited {
		t.Error("Push should Init the new screen")
	}
	if r.Active() != next {
		t.Error("Active should be the pushed screen")
	}

	r.Pop()
	if r.Active() != home {
		t.Error("Pop should reveal the previous screen")
	}

	// Popping the last screen is a no-op.
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth = %d after popping root, want 1", r.Depth())
	}
}

func TestRouter_PopToRoot(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)
	r.Push(&stubScreen{name: "quiz"})
	r.Push(&stubScreen{name: "summary"})

	if r.Depth() != 3 {
		t.Fatalf("Depth = %d, want 3", r.Depth())
	}

	r.Update(PopToRootMsg{})
	if r.Depth() != 1 || r.Active() != home {
		t.Errorf("PopToRoot should unwind to home, depth=%d", r.Depth())
	}
}

func TestRouter_NavigationMessages(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	next := &stubScreen{name: "next"}
	r.Update(PushScreenMsg{Screen: next})
	if r.Active() != next {
		t.Error("PushScreenMsg should push")
	}

	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Error("PopScreenMsg should pop")
	}
}
