package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/checkpoint/internal/screen"
)

type resumeMsg struct{ title string }

// fakeScreen records what the router did to it.
type fakeScreen struct {
	title   string
	inits   int
	resumes int
	seen    []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.title }
func (s *fakeScreen) Title() string        { return s.title }

// resumingScreen also implements screen.Resumer.
type resumingScreen struct{ fakeScreen }

func (s *resumingScreen) Resume() tea.Cmd {
	s.resumes++
	title := s.title
	return func() tea.Msg { return resumeMsg{title} }
}

func TestRouter_GotoInitsScreen(t *testing.T) {
	root := &fakeScreen{title: "compose"}
	r := New(root)

	next := &fakeScreen{title: "quiz"}
	r.Update(GotoMsg{Screen: next})

	if r.Depth() != 2 || r.Active() != next {
		t.Fatalf("expected quiz on top, depth %d", r.Depth())
	}
	if next.inits != 1 {
		t.Fatalf("expected Init once, got %d", next.inits)
	}
	if root.inits != 0 {
		t.Fatal("root is initialized by the app, not the router")
	}
}

func TestRouter_BackResumesScreenBelow(t *testing.T) {
	root := &resumingScreen{fakeScreen{title: "compose"}}
	r := New(root)
	r.Push(&fakeScreen{title: "quiz"})

	cmd := r.Update(Back())
	if r.Active() != root {
		t.Fatalf("expected compose on top, got %q", r.Active().Title())
	}
	if root.resumes != 1 {
		t.Fatalf("expected one resume, got %d", root.resumes)
	}
	if cmd == nil || cmd() != (resumeMsg{"compose"}) {
		t.Fatal("expected the resume command")
	}
}

func TestRouter_BackNeverRemovesRoot(t *testing.T) {
	root := &resumingScreen{fakeScreen{title: "compose"}}
	r := New(root)

	if cmd := r.Update(BackMsg{}); cmd != nil {
		t.Fatal("expected no command")
	}
	if r.Depth() != 1 || root.resumes != 0 {
		t.Fatalf("root must stay without a resume, depth %d", r.Depth())
	}
}

func TestRouter_HomePopsToRoot(t *testing.T) {
	root := &resumingScreen{fakeScreen{title: "compose"}}
	r := New(root)
	r.Push(&fakeScreen{title: "quiz"})
	r.Push(&fakeScreen{title: "retry"})

	r.Update(Home())
	if r.Depth() != 1 || r.Active() != root {
		t.Fatalf("expected only root, depth %d", r.Depth())
	}
	if root.resumes != 1 {
		t.Fatalf("expected one resume, got %d", root.resumes)
	}

	if cmd := r.Update(HomeMsg{}); cmd != nil {
		t.Fatal("home on root should do nothing")
	}
}

func TestRouter_PopWithoutResumer(t *testing.T) {
	r := New(&fakeScreen{title: "compose"})
	r.Push(&fakeScreen{title: "quiz"})
	if cmd := r.Pop(); cmd != nil {
		t.Fatal("plain screens get no resume command")
	}
}

func TestRouter_ForwardsOtherMessagesToTop(t *testing.T) {
	root := &fakeScreen{title: "compose"}
	top := &fakeScreen{title: "quiz"}
	r := New(root)
	r.Push(top)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if len(top.seen) != 1 || len(root.seen) != 0 {
		t.Fatalf("top saw %d, root saw %d", len(top.seen), len(root.seen))
	}
	if got := r.View(80, 24); got != "quiz" {
		t.Fatalf("View = %q", got)
	}
}

func TestGoto(t *testing.T) {
	s := &fakeScreen{title: "quiz"}
	msg, ok := Goto(s)().(GotoMsg)
	if !ok || msg.Screen != s {
		t.Fatal("Goto should carry the screen")
	}
}
