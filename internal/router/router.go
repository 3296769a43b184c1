// Package router keeps the stack of screens the app moves through. The
// bottom screen is never removed.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/checkpoint/internal/screen"
)

// GotoMsg puts Screen on top of the stack.
type GotoMsg struct {
	Screen screen.Screen
}

// BackMsg removes the top screen.
type BackMsg struct{}

// HomeMsg removes every screen above the bottom one.
type HomeMsg struct{}

// Goto returns a command that navigates to s.
func Goto(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return GotoMsg{Screen: s} }
}

// Back is a command that returns to the previous screen.
func Back() tea.Msg { return BackMsg{} }

// Home is a command that returns to the bottom screen.
func Home() tea.Msg { return HomeMsg{} }

type Router struct {
	stack []screen.Screen
}

// New creates a router whose bottom screen is root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push puts s on top and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen unless it is the root, then resumes the
// screen underneath.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) == 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return r.resume()
}

// PopToRoot drops everything above the root and resumes it.
func (r *Router) PopToRoot() tea.Cmd {
	if len(r.stack) == 1 {
		return nil
	}
	r.stack = r.stack[:1]
	return r.resume()
}

func (r *Router) resume() tea.Cmd {
	if res, ok := r.Active().(screen.Resumer); ok {
		return res.Resume()
	}
	return nil
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case GotoMsg:
		return r.Push(msg.Screen)
	case BackMsg:
		return r.Pop()
	case HomeMsg:
		return r.PopToRoot()
	}

	top := len(r.stack) - 1
	updated, cmd := r.stack[top].Update(msg)
	r.stack[top] = updated
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
