package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/bgdrop/internal/background"
)

func printSetUsage() {
	fmt.Fprintln(os.Stderr, "Usage: bgdrop set [--config PATH] [--mode MODE] <display> <path>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Modes: fit, fill, stretch, center, tile (default: default_mode from config)")
}

func runSet(args []string) int {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = printSetUsage
	path := fs.String("config", "", "Config file path (default: ~/.config/bgdrop/config.yaml)")
	modeFlag := fs.String("mode", "", "Scaling mode")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 2 {
		printSetUsage()
		return 2
	}
	display, file := fs.Arg(0), fs.Arg(1)

	cfg, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
		return 1
	}

	mode := cfg.DefaultMode
	if *modeFlag != "" {
		mode, err = background.ParseMode(*modeFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
			return 2
		}
	}

	ctx, cancel := signalContext()
	defer cancel()

	a, err := newApp(ctx, cfg, newStderrLogger(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
		return 1
	}
	defer a.Close()

	cmdline, err := a.session.Set(display, file, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
		return 1
	}
	fmt.Println(cmdline)
	return 0
}
