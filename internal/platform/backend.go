package platform

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoDisplays is returned when a source reports no usable (named) outputs.
var ErrNoDisplays = errors.New("no named displays reported")

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Display describes one output known to the compositor.
type Display struct {
	Name   string
	Bounds Rect
	// Description is informational only (make/model when the source knows it).
	Description string
}

// Source enumerates the connected outputs.
type Source interface {
	Displays(ctx context.Context) ([]Display, error)
}

// Arrange drops entries without a name and orders the rest left to right.
// Displays sharing an x-coordinate keep the order the source reported them in.
func Arrange(displays []Display) []Display {
	out := make([]Display, 0, len(displays))
	for _, d := range displays {
		if strings.TrimSpace(d.Name) == "" {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Bounds.X < out[j].Bounds.X
	})
	return out
}

// ListDisplays queries src once and returns its arranged displays.
// Any error here is meant to stop startup.
func ListDisplays(ctx context.Context, src Source) ([]Display, error) {
	if src == nil {
		return nil, fmt.Errorf("list displays: no display source configured")
	}
	raw, err := src.Displays(ctx)
	if err != nil {
		return nil, fmt.Errorf("list displays: %w", err)
	}
	displays := Arrange(raw)
	if len(displays) == 0 {
		return nil, ErrNoDisplays
	}
	return displays, nil
}

// Names returns the display names in order.
func Names(displays []Display) []string {
	names := make([]string, 0, len(displays))
	for _, d := range displays {
		names = append(names, d.Name)
	}
	return names
}
