package x11

import (
	"reflect"
	"testing"

	"github.com/1broseidon/bgdrop/internal/platform"
)

func TestDisplaysFromMonitors(t *testing.T) {
	monitors := []Monitor{
		{ID: 0, Name: "HDMI-1", X: 1920, Width: 2560, Height: 1440},
		{ID: 1, Name: "", X: 0},
		{ID: 2, Name: "eDP-1", X: 0, Width: 1920, Height: 1080},
	}

	displays := DisplaysFromMonitors(monitors)
	if len(displays) != 3 {
		t.Fatalf("expected 3 displays before arranging, got %d", len(displays))
	}
	if displays[0].Bounds != (platform.Rect{X: 1920, Width: 2560, Height: 1440}) {
		t.Fatalf("unexpected bounds: %+v", displays[0].Bounds)
	}

	got := platform.Names(platform.Arrange(displays))
	if !reflect.DeepEqual(got, []string{"eDP-1", "HDMI-1"}) {
		t.Fatalf("arranged = %v", got)
	}
}
