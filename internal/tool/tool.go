// Package tool runs the external build tool inside benchmark directories.
package tool

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// DefaultMake is the build tool used when Make.Path is empty.
const DefaultMake = "make"

// Runner invokes a build tool with an explicit working directory.
type Runner interface {
	// Run executes the tool in dir, streaming its output.
	Run(ctx context.Context, dir string, args ...string) error

	// Output executes the tool in dir and returns its captured stdout.
	Output(ctx context.Context, dir string, args ...string) ([]byte, error)
}

// Make drives a make-compatible build tool. Nil Stdout or Stderr discard
// the corresponding stream.
type Make struct {
	Path   string
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the tool in dir. A non-zero exit is reported as an error
// wrapping *exec.ExitError.
func (m *Make) Run(ctx context.Context, dir string, args ...string) error {
	cmd := m.command(ctx, dir, args)
	cmd.Stdout = m.Stdout
	if err := cmd.Run(); err != nil {
		return m.wrap(dir, args, err)
	}
	return nil
}

// Output executes the tool in dir and returns its stdout.
func (m *Make) Output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	var stdout bytes.Buffer
	cmd := m.command(ctx, dir, args)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, m.wrap(dir, args, err)
	}
	return stdout.Bytes(), nil
}

func (m *Make) command(ctx context.Context, dir string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, m.name(), args...)
	cmd.Dir = dir
	cmd.Stderr = m.Stderr
	return cmd
}

func (m *Make) name() string {
	if m.Path == "" {
		return DefaultMake
	}
	return m.Path
}

func (m *Make) wrap(dir string, args []string, err error) error {
	line := strings.TrimSpace(m.name() + " " + strings.Join(args, " "))
	return fmt.Errorf("%s (in %s): %w", line, dir, err)
}
