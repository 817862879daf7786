package background

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	err   error
}

func (f *fakeRunner) Output(context.Context, string, ...string) ([]byte, error) { return nil, nil }

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.err
}

type issued struct {
	display string
	cmdline string
	err     error
}

type fakeRecorder struct {
	entries []issued
}

func (r *fakeRecorder) Issued(display, _ string, _ Mode, cmdline string, err error) {
	r.entries = append(r.entries, issued{display: display, cmdline: cmdline, err: err})
}

func TestApply_CommandContainsDisplayQuotedPathAndMode(t *testing.T) {
	for _, mode := range Modes() {
		r := &fakeRunner{}
		inv := NewInvoker("", WithRunner(r))

		got := inv.Apply(context.Background(), "DP-1", "/home/u/my pic.png", mode)

		want := `swaymsg output DP-1 bg "/home/u/my pic.png" ` + string(mode)
		if got != want {
			t.Fatalf("Apply(%s) = %q, want %q", mode, got, want)
		}
		if !strings.Contains(got, "DP-1") || !strings.Contains(got, `"/home/u/my pic.png"`) || !strings.HasSuffix(got, string(mode)) {
			t.Fatalf("command missing parts: %q", got)
		}

		wantArgs := []string{"output", "DP-1", "bg", "/home/u/my pic.png", string(mode)}
		if len(r.calls) != 1 || r.calls[0].name != "swaymsg" || !reflect.DeepEqual(r.calls[0].args, wantArgs) {
			t.Fatalf("unexpected runner calls: %+v", r.calls)
		}
	}
}

func TestApply_FailureStillReturnsCommand(t *testing.T) {
	boom := errors.New("exit status 1")
	rec := &fakeRecorder{}
	inv := NewInvoker("swaymsg", WithRunner(&fakeRunner{err: boom}), WithRecorder(rec))

	got := inv.Apply(context.Background(), "eDP-1", "/missing.png", ModeFill)
	if got != `swaymsg output eDP-1 bg "/missing.png" fill` {
		t.Fatalf("unexpected command %q", got)
	}
	if len(rec.entries) != 1 || !errors.Is(rec.entries[0].err, boom) {
		t.Fatalf("expected recorder to see failure, got %+v", rec.entries)
	}
}

func TestApply_CustomTool(t *testing.T) {
	r := &fakeRunner{}
	inv := NewInvoker("/usr/local/bin/swaymsg", WithRunner(r))
	got := inv.Apply(context.Background(), "HDMI-A-1", "/a.jpg", ModeTile)
	if !strings.HasPrefix(got, "/usr/local/bin/swaymsg output HDMI-A-1") {
		t.Fatalf("expected custom tool prefix, got %q", got)
	}
	if r.calls[0].name != "/usr/local/bin/swaymsg" {
		t.Fatalf("runner got %q", r.calls[0].name)
	}
}
