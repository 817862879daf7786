package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/1broseidon/bgdrop/internal/platform"
)

type displayJSON struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func runDisplays(args []string) int {
	fs := flag.NewFlagSet("displays", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("config", "", "Config file path (default: ~/.config/bgdrop/config.yaml)")
	asJSON := fs.Bool("json", false, "Output JSON")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
		return 1
	}

	ctx, cancel := signalContext()
	defer cancel()

	displays, err := platform.ListDisplays(ctx, newSource(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
		return 1
	}

	if *asJSON {
		out := make([]displayJSON, 0, len(displays))
		for _, d := range displays {
			out = append(out, displayJSON{
				Name:        d.Name,
				Description: d.Description,
				X:           d.Bounds.X,
				Y:           d.Bounds.Y,
				Width:       d.Bounds.Width,
				Height:      d.Bounds.Height,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGEOMETRY\tDESCRIPTION")
	for _, d := range displays {
		fmt.Fprintf(tw, "%s\t%dx%d+%d+%d\t%s\n", d.Name, d.Bounds.Width, d.Bounds.Height, d.Bounds.X, d.Bounds.Y, d.Description)
	}
	_ = tw.Flush()
	return 0
}
