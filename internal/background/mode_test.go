package background

import (
	"errors"
	"testing"
)

func TestModes_OrderAndDefault(t *testing.T) {
	want := []Mode{"fit", "fill", "stretch", "center", "tile"}
	got := Modes()
	if len(got) != len(want) {
		t.Fatalf("expected %d modes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("mode %d = %q, want %q", i, got[i], want[i])
		}
	}
	if DefaultMode != ModeFit {
		t.Fatalf("default mode = %q, want fit", DefaultMode)
	}

	got[0] = "mutated"
	if Modes()[0] != ModeFit {
		t.Fatalf("Modes returned shared backing array")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"fit", ModeFit, false},
		{"FILL", ModeFill, false},
		{" stretch ", ModeStretch, false},
		{"center", ModeCenter, false},
		{"tile", ModeTile, false},
		{"solid_color", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidMode) {
				t.Errorf("ParseMode(%q) err = %v, want ErrInvalidMode", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestModeIndex(t *testing.T) {
	if ModeTile.Index() != 4 {
		t.Fatalf("tile index = %d", ModeTile.Index())
	}
	if Mode("bogus").Index() != -1 || Mode("bogus").Valid() {
		t.Fatalf("expected bogus mode to be invalid")
	}
}
