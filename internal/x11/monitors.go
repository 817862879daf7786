package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/randr"

	"github.com/1broseidon/bgdrop/internal/platform"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		// An unnamed output is reported with an empty name and dropped by platform.Arrange.
		name := ""
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			name = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   name,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	return monitors, nil
}

// Source lists RandR monitors as displays. Each call opens and closes its own connection.
type Source struct{}

var _ platform.Source = Source{}

func (Source) Displays(ctx context.Context) ([]platform.Display, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	conn, err := NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	defer conn.Close()

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}
	return DisplaysFromMonitors(monitors), nil
}

// DisplaysFromMonitors converts RandR monitors to platform displays.
func DisplaysFromMonitors(monitors []Monitor) []platform.Display {
	displays := make([]platform.Display, 0, len(monitors))
	for _, m := range monitors {
		displays = append(displays, platform.Display{
			Name: m.Name,
			Bounds: platform.Rect{
				X:      m.X,
				Y:      m.Y,
				Width:  m.Width,
				Height: m.Height,
			},
		})
	}
	return displays
}
