package command

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	name, args, err := Split([]string{"swaymsg", "-t", "get_outputs"})
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if name != "swaymsg" || len(args) != 2 || args[1] != "get_outputs" {
		t.Fatalf("unexpected split: %q %v", name, args)
	}

	if _, _, err := Split(nil); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand for nil argv, got %v", err)
	}
	if _, _, err := Split([]string{" "}); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand for blank program, got %v", err)
	}
}

func TestExec_OutputAndStderr(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	out, err := Exec{}.Output(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if string(out) != "hello" {
		t.Fatalf("expected hello, got %q", out)
	}

	err = Exec{}.Run(context.Background(), "sh", "-c", "echo nope >&2; exit 3")
	if err == nil {
		t.Fatalf("expected error from failing command")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Fatalf("expected wrapped exit status 3, got %v", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
}

func TestExec_EmptyName(t *testing.T) {
	if err := (Exec{}).Run(context.Background(), ""); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand, got %v", err)
	}
}
