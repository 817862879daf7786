package session

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/1broseidon/bgdrop/internal/background"
	"github.com/1broseidon/bgdrop/internal/platform"
)

type applyCall struct {
	display string
	path    string
	mode    background.Mode
}

type fakeApplier struct {
	calls []applyCall
}

func (f *fakeApplier) Apply(_ context.Context, display, path string, mode background.Mode) string {
	f.calls = append(f.calls, applyCall{display, path, mode})
	return "swaymsg output " + display + ` bg "` + path + `" ` + string(mode)
}

func newTestSession(t *testing.T) (*Session, *fakeApplier) {
	t.Helper()
	displays := []platform.Display{
		{Name: "DP-1", Bounds: platform.Rect{X: 0}},
		{Name: "eDP-1", Bounds: platform.Rect{X: 1920}},
	}
	a := &fakeApplier{}
	return New(context.Background(), displays, a, background.DefaultMode), a
}

func TestNew_InitialState(t *testing.T) {
	s, _ := newTestSession(t)
	if got := s.Displays(); !reflect.DeepEqual(got, []string{"DP-1", "eDP-1"}) {
		t.Fatalf("displays = %v", got)
	}
	st, ok := s.State("eDP-1")
	if !ok {
		t.Fatalf("missing state for eDP-1")
	}
	if st.File != "" || st.Command != "" || st.Mode != background.ModeFit {
		t.Fatalf("unexpected initial state %+v", st)
	}
	if len(s.Log()) != 0 {
		t.Fatalf("expected empty log, got %v", s.Log())
	}
}

func TestNew_InvalidDefaultModeFallsBack(t *testing.T) {
	s := New(context.Background(), []platform.Display{{Name: "DP-1"}}, &fakeApplier{}, "bogus")
	st, _ := s.State("DP-1")
	if st.Mode != background.ModeFit {
		t.Fatalf("expected fit fallback, got %q", st.Mode)
	}
}

func TestDropAppliesWithDefaultMode(t *testing.T) {
	s, a := newTestSession(t)

	s.OnDrop("DP-1", "/home/u/pic.png")

	want := []applyCall{{"DP-1", "/home/u/pic.png", background.ModeFit}}
	if !reflect.DeepEqual(a.calls, want) {
		t.Fatalf("calls = %+v, want %+v", a.calls, want)
	}
	log := s.Log()
	if len(log) != 1 {
		t.Fatalf("expected one log line, got %v", log)
	}
	for _, part := range []string{"DP-1", "/home/u/pic.png", "fit"} {
		if !strings.Contains(log[0], part) {
			t.Fatalf("log line %q missing %q", log[0], part)
		}
	}
}

func TestModeChangeAfterDropReplacesLogLine(t *testing.T) {
	s, a := newTestSession(t)
	s.OnDrop("DP-1", "/home/u/pic.png")

	s.OnModeChange("DP-1", background.ModeTile)

	if len(a.calls) != 2 || a.calls[1] != (applyCall{"DP-1", "/home/u/pic.png", background.ModeTile}) {
		t.Fatalf("calls = %+v", a.calls)
	}
	log := s.Log()
	if len(log) != 1 {
		t.Fatalf("expected one line per display, got %v", log)
	}
	if !strings.HasSuffix(log[0], " tile") {
		t.Fatalf("expected tile line, got %q", log[0])
	}
}

func TestModeChangeBeforeDropIsRecordedOnly(t *testing.T) {
	s, a := newTestSession(t)

	s.OnModeChange("eDP-1", background.ModeCenter)

	if len(a.calls) != 0 {
		t.Fatalf("expected no apply calls, got %+v", a.calls)
	}
	if len(s.Log()) != 0 {
		t.Fatalf("log should be unaffected, got %v", s.Log())
	}
	st, _ := s.State("eDP-1")
	if st.Mode != background.ModeCenter {
		t.Fatalf("mode not recorded: %+v", st)
	}

	// A later drop uses the recorded mode.
	s.OnDrop("eDP-1", "/x.jpg")
	if a.calls[0].mode != background.ModeCenter {
		t.Fatalf("drop used %q, want center", a.calls[0].mode)
	}
}

func TestSameModeTwiceIssuesTwice(t *testing.T) {
	s, a := newTestSession(t)
	s.OnDrop("DP-1", "/p.png")
	s.OnModeChange("DP-1", background.ModeFill)
	s.OnModeChange("DP-1", background.ModeFill)
	if len(a.calls) != 3 {
		t.Fatalf("expected 3 apply calls, got %d", len(a.calls))
	}
}

func TestLogFollowsDisplayOrder(t *testing.T) {
	s, _ := newTestSession(t)
	s.OnDrop("eDP-1", "/b.png")
	s.OnDrop("DP-1", "/a.png")

	log := s.Log()
	if len(log) != 2 || !strings.Contains(log[0], "DP-1 ") || !strings.Contains(log[1], "eDP-1 ") {
		t.Fatalf("log not in display order: %v", log)
	}
	if s.LogText() != log[0]+"\n"+log[1] {
		t.Fatalf("LogText mismatch: %q", s.LogText())
	}
}

func TestIgnoresUnknownDisplayEmptyPathAndInvalidMode(t *testing.T) {
	s, a := newTestSession(t)
	s.OnDrop("HDMI-A-9", "/p.png")
	s.OnDrop("DP-1", "  ")
	s.OnDrop("DP-1", "/p.png")
	s.OnModeChange("DP-1", "bogus")
	s.OnModeChange("nope", background.ModeTile)

	if len(a.calls) != 1 {
		t.Fatalf("expected only the valid drop to apply, got %+v", a.calls)
	}
	if st, _ := s.State("DP-1"); st.Mode != background.ModeFit {
		t.Fatalf("invalid mode was recorded: %+v", st)
	}
	if _, ok := s.State("HDMI-A-9"); ok {
		t.Fatalf("unknown display gained state")
	}
}

func TestSet_AppliesOnceWithGivenMode(t *testing.T) {
	s, a := newTestSession(t)

	cmd, err := s.Set("eDP-1", "/w.png", background.ModeStretch)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if len(a.calls) != 1 || a.calls[0] != (applyCall{"eDP-1", "/w.png", background.ModeStretch}) {
		t.Fatalf("calls = %+v", a.calls)
	}
	if cmd != s.Log()[0] {
		t.Fatalf("returned command %q not logged: %v", cmd, s.Log())
	}
	st, _ := s.State("eDP-1")
	if st.File != "/w.png" || st.Mode != background.ModeStretch {
		t.Fatalf("state = %+v", st)
	}
}

func TestSet_RejectsBadInput(t *testing.T) {
	s, a := newTestSession(t)

	if _, err := s.Set("HDMI-A-9", "/w.png", background.ModeFit); !errors.Is(err, ErrUnknownDisplay) {
		t.Fatalf("expected ErrUnknownDisplay, got %v", err)
	}
	if _, err := s.Set("DP-1", "", background.ModeFit); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := s.Set("DP-1", "/w.png", "zoom"); !errors.Is(err, background.ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	if len(a.calls) != 0 {
		t.Fatalf("bad input reached the applier: %+v", a.calls)
	}
}
