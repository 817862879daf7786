// Package session owns per-display wallpaper state and the command log.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/1broseidon/bgdrop/internal/background"
	"github.com/1broseidon/bgdrop/internal/platform"
)

// Handler receives panel events. Every call carries the panel's own display name.
type Handler interface {
	OnDrop(display, path string)
	OnModeChange(display string, mode background.Mode)
}

// Applier issues a background command and returns the command line it used.
type Applier interface {
	Apply(ctx context.Context, display, path string, mode background.Mode) string
}

// State is one display's wallpaper state. Empty File or Command means unset.
type State struct {
	File    string
	Mode    background.Mode
	Command string
}

// ErrUnknownDisplay is returned for a display name the session was not built with.
var ErrUnknownDisplay = errors.New("unknown display")

// Session is the table of display states, in display creation order.
// It is not safe for concurrent use.
type Session struct {
	ctx     context.Context
	applier Applier
	order   []string
	states  map[string]*State
}

var _ Handler = (*Session)(nil)

// New creates one state per display with no file and defaultMode.
// An invalid defaultMode falls back to background.DefaultMode.
func New(ctx context.Context, displays []platform.Display, applier Applier, defaultMode background.Mode) *Session {
	if !defaultMode.Valid() {
		defaultMode = background.DefaultMode
	}
	s := &Session{
		ctx:     ctx,
		applier: applier,
		order:   make([]string, 0, len(displays)),
		states:  make(map[string]*State, len(displays)),
	}
	for _, d := range displays {
		if _, dup := s.states[d.Name]; dup {
			continue
		}
		s.order = append(s.order, d.Name)
		s.states[d.Name] = &State{Mode: defaultMode}
	}
	return s
}

// OnDrop records path as the display's file and applies it with the current mode.
func (s *Session) OnDrop(display, path string) {
	st, ok := s.states[display]
	if !ok || strings.TrimSpace(path) == "" {
		return
	}
	st.File = path
	s.apply(display, st)
}

// OnModeChange records mode and reapplies when a file is already set.
// Repeating the same mode reapplies again.
func (s *Session) OnModeChange(display string, mode background.Mode) {
	st, ok := s.states[display]
	if !ok || !mode.Valid() {
		return
	}
	st.Mode = mode
	if st.File == "" {
		return
	}
	s.apply(display, st)
}

// Set records path and mode for display and applies them once.
// Unlike the panel events it reports bad input instead of ignoring it.
func (s *Session) Set(display, path string, mode background.Mode) (string, error) {
	st, ok := s.states[display]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownDisplay, display)
	}
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("empty image path")
	}
	if !mode.Valid() {
		_, err := background.ParseMode(string(mode))
		return "", err
	}
	st.File = path
	st.Mode = mode
	s.apply(display, st)
	return st.Command, nil
}

func (s *Session) apply(display string, st *State) {
	st.Command = s.applier.Apply(s.ctx, display, st.File, st.Mode)
}

// State returns a copy of the display's state.
func (s *Session) State(display string) (State, bool) {
	st, ok := s.states[display]
	if !ok {
		return State{}, false
	}
	return *st, true
}

// Displays returns display names in creation order.
func (s *Session) Displays() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Log returns the latest command of each display that has issued one, in creation order.
func (s *Session) Log() []string {
	lines := make([]string, 0, len(s.order))
	for _, name := range s.order {
		if cmd := s.states[name].Command; cmd != "" {
			lines = append(lines, cmd)
		}
	}
	return lines
}

// LogText is Log joined by newlines.
func (s *Session) LogText() string {
	return strings.Join(s.Log(), "\n")
}
