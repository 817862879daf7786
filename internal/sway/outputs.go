package sway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/1broseidon/bgdrop/internal/command"
	"github.com/1broseidon/bgdrop/internal/platform"
)

// DefaultQueryCommand lists outputs as raw JSON.
var DefaultQueryCommand = []string{"swaymsg", "-t", "get_outputs", "-r"}

// Output is the subset of a get_outputs entry bgdrop reads.
type Output struct {
	Name   string `json:"name"`
	Make   string `json:"make,omitempty"`
	Model  string `json:"model,omitempty"`
	Rect   struct {
		X      int `json:"x"`
		Y      int `json:"y"`
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"rect"`
}

// Source queries outputs through an external command (swaymsg by default).
type Source struct {
	argv   []string
	runner command.Runner
}

var _ platform.Source = (*Source)(nil)

// NewSource returns a Source running argv; an empty argv means DefaultQueryCommand.
func NewSource(argv []string, runner command.Runner) *Source {
	if len(argv) == 0 {
		argv = DefaultQueryCommand
	}
	if runner == nil {
		runner = command.Exec{}
	}
	return &Source{argv: argv, runner: runner}
}

// Displays runs the query command and decodes its output.
// The result is in the order the compositor reported; callers arrange it.
func (s *Source) Displays(ctx context.Context) ([]platform.Display, error) {
	name, args, err := command.Split(s.argv)
	if err != nil {
		return nil, err
	}
	out, err := s.runner.Output(ctx, name, args...)
	if err != nil {
		return nil, fmt.Errorf("query outputs: %w", err)
	}
	outputs, err := ParseOutputs(out)
	if err != nil {
		return nil, err
	}

	displays := make([]platform.Display, 0, len(outputs))
	for _, o := range outputs {
		displays = append(displays, o.display())
	}
	return displays, nil
}

// ParseOutputs decodes a get_outputs JSON array.
func ParseOutputs(data []byte) ([]Output, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("parse outputs: empty response")
	}
	var outputs []Output
	if err := json.Unmarshal([]byte(trimmed), &outputs); err != nil {
		return nil, fmt.Errorf("parse outputs: %w", err)
	}
	return outputs, nil
}

func (o Output) display() platform.Display {
	desc := strings.TrimSpace(strings.Join([]string{o.Make, o.Model}, " "))
	return platform.Display{
		Name: o.Name,
		Bounds: platform.Rect{
			X:      o.Rect.X,
			Y:      o.Rect.Y,
			Width:  o.Rect.Width,
			Height: o.Rect.Height,
		},
		Description: desc,
	}
}
