package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/bgdrop/internal/background"
	"github.com/1broseidon/bgdrop/internal/platform"
	"github.com/1broseidon/bgdrop/internal/session"
)

// panelContentLines is the number of lines inside a panel border.
const panelContentLines = 5

// panel is the drop target and mode selector for one display.
type panel struct {
	display platform.Display
	mode    background.Mode
	file    string
	handler session.Handler
}

func newPanel(d platform.Display, mode background.Mode, h session.Handler) panel {
	if !mode.Valid() {
		mode = background.DefaultMode
	}
	return panel{display: d, mode: mode, handler: h}
}

// drop takes the first path of a drop payload; the rest are ignored.
func (p *panel) drop(paths []string) bool {
	if len(paths) == 0 {
		return false
	}
	p.file = paths[0]
	p.handler.OnDrop(p.display.Name, p.file)
	return true
}

// setMode always notifies the handler, even when mode is unchanged.
func (p *panel) setMode(mode background.Mode) {
	if !mode.Valid() {
		return
	}
	p.mode = mode
	p.handler.OnModeChange(p.display.Name, mode)
}

func (p *panel) cycleMode(delta int) {
	modes := background.Modes()
	i := (p.mode.Index() + delta) % len(modes)
	if i < 0 {
		i += len(modes)
	}
	p.setMode(modes[i])
}

// view renders the panel at the given outer width.
func (p panel) view(width int, focused bool) string {
	style := panelStyle
	if focused {
		style = focusedPanelStyle
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	clip := lipgloss.NewStyle().MaxWidth(inner)

	geometry := fmt.Sprintf("%dx%d @ %d,%d",
		p.display.Bounds.Width, p.display.Bounds.Height, p.display.Bounds.X, p.display.Bounds.Y)
	if p.display.Description != "" {
		geometry = p.display.Description + "  " + geometry
	}

	file := dimStyle.Render("drop an image here")
	if p.file != "" {
		file = fileStyle.Render(filepath.Base(p.file))
	}

	lines := []string{
		clip.Render(panelNameStyle.Render(p.display.Name)),
		clip.Render(dimStyle.Render(geometry)),
		clip.Render(file),
		"",
		clip.Render("mode " + modeStyle.Render("‹ "+p.mode.String()+" ›")),
	}
	return style.Width(inner + style.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}
