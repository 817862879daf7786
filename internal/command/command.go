package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrEmptyCommand is returned when an argv has no program name.
var ErrEmptyCommand = errors.New("empty command")

// Runner executes external programs. Exec is the real implementation; tests swap in fakes.
type Runner interface {
	// Output runs name with args and returns its stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	// Run runs name with args, discarding stdout.
	Run(ctx context.Context, name string, args ...string) error
}

// Exec runs commands with os/exec. Stderr is folded into returned errors.
type Exec struct{}

var _ Runner = Exec{}

func (Exec) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyCommand
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return out, wrapExecError(name, err, stderr.String())
	}
	return out, nil
}

func (Exec) Run(ctx context.Context, name string, args ...string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyCommand
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return wrapExecError(name, err, stderr.String())
	}
	return nil
}

func wrapExecError(name string, err error, stderr string) error {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		return fmt.Errorf("%s: %w", name, err)
	}
	return fmt.Errorf("%s: %w: %s", name, err, msg)
}

// Split separates an argv slice into program and arguments.
func Split(argv []string) (string, []string, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return "", nil, ErrEmptyCommand
	}
	return argv[0], argv[1:], nil
}
