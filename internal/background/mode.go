package background

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned for a scaling mode outside the supported set.
var ErrInvalidMode = errors.New("invalid scaling mode")

// Mode controls how an image is mapped onto an output.
type Mode string

const (
	ModeFit     Mode = "fit"
	ModeFill    Mode = "fill"
	ModeStretch Mode = "stretch"
	ModeCenter  Mode = "center"
	ModeTile    Mode = "tile"
)

// DefaultMode is the mode a display starts in.
const DefaultMode = ModeFit

var modes = []Mode{ModeFit, ModeFill, ModeStretch, ModeCenter, ModeTile}

// Modes returns the supported modes in selector order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m.Index() >= 0
}

// Index returns the selector position of m, or -1.
func (m Mode) Index() int {
	for i, candidate := range modes {
		if candidate == m {
			return i
		}
	}
	return -1
}

func (m Mode) String() string { return string(m) }

// ParseMode accepts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w %q (want one of %s)", ErrInvalidMode, s, modeList())
	}
	return m, nil
}

func modeList() string {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
