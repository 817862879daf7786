package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/1broseidon/bgdrop/internal/background"
	"github.com/1broseidon/bgdrop/internal/command"
	"github.com/1broseidon/bgdrop/internal/config"
	"github.com/1broseidon/bgdrop/internal/history"
	"github.com/1broseidon/bgdrop/internal/platform"
	"github.com/1broseidon/bgdrop/internal/session"
	"github.com/1broseidon/bgdrop/internal/sway"
	"github.com/1broseidon/bgdrop/internal/tui"
	"github.com/1broseidon/bgdrop/internal/x11"
)

func main() {
	if len(os.Args) < 2 || (strings.HasPrefix(os.Args[1], "-") && !isHelp(os.Args[1])) {
		os.Exit(runRun(os.Args[1:]))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runRun(os.Args[2:]))
	case "displays":
		os.Exit(runDisplays(os.Args[2:]))
	case "set":
		os.Exit(runSet(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func isHelp(arg string) bool {
	return arg == "help" || arg == "-h" || arg == "--help"
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bgdrop [command] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Open the drop panels (default)")
	fmt.Fprintln(w, "  displays            List outputs left to right")
	fmt.Fprintln(w, "  set                 Set one output's background without the UI")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'bgdrop <command> --help' for command-specific options.")
}

// loadConfig reads path, or the standard location when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

func parseSlogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newFileLogger opens the diagnostics log; the returned close func is never nil.
func newFileLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	path := cfg.GetLogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: parseSlogLevel(cfg.LogLevel),
	}))
	return logger, func() { _ = f.Close() }, nil
}

func newStderrLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseSlogLevel(cfg.LogLevel),
	}))
}

func newSource(cfg *config.Config) platform.Source {
	if cfg.Backend == config.BackendX11 {
		return x11.Source{}
	}
	return sway.NewSource(cfg.QueryCommand, command.Exec{})
}

// app is the wiring shared by run, set and mcp serve.
type app struct {
	displays []platform.Display
	session  *session.Session
	history  *history.Logger
}

func (a *app) Close() {
	if a.history != nil {
		_ = a.history.Close()
	}
}

// newApp queries the displays once and builds the session around them.
func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	displays, err := platform.ListDisplays(ctx, newSource(cfg))
	if err != nil {
		return nil, err
	}

	histCfg := cfg.GetHistoryConfig()
	histCfg.Diagnostics = logger
	hist, err := history.NewLogger(histCfg)
	if err != nil {
		logger.Warn("history log disabled", "error", err)
		hist, _ = history.NewLogger(history.Config{})
	}
	hist.Log(history.ActionStartup, "", map[string]interface{}{
		"displays": strings.Join(platform.Names(displays), ","),
	})

	inv := background.NewInvoker(cfg.BackgroundTool,
		background.WithRunner(command.Exec{}),
		background.WithLogger(logger),
		background.WithRecorder(hist),
	)
	logger.Info("displays found", "count", len(displays), "names", platform.Names(displays))

	return &app{
		displays: displays,
		session:  session.New(ctx, displays, inv, cfg.DefaultMode),
		history:  hist,
	}, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("config", "", "Config file path (default: ~/.config/bgdrop/config.yaml)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "run takes no arguments, got %q\n", fs.Args())
		return 2
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
		return 1
	}

	logger, closeLog, err := newFileLogger(cfg)
	defer closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
		return 1
	}

	ctx, cancel := signalContext()
	defer cancel()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
		return 1
	}
	defer a.Close()

	if err := tui.New(a.displays, a.session).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "bgdrop: %v\n", err)
		return 1
	}
	return 0
}
