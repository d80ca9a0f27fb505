// Package runner executes external analysis commands and drives the
// sequential invocation of a selected tool suite against a target
// directory.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Capture holds the text output of a finished command.
type Capture struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes one external command and waits for it to finish.
// A non-zero exit status is reported through Capture.ExitCode with a nil
// error; the error return is reserved for commands that could not run at
// all (missing executable, start failure, context cancellation).
type Runner interface {
	Run(ctx context.Context, argv []string) (Capture, error)
}

// ExecRunner runs commands on the host via os/exec.
type ExecRunner struct{}

// Run executes argv with stdout and stderr captured separately as text.
func (ExecRunner) Run(ctx context.Context, argv []string) (Capture, error) {
	if len(argv) == 0 {
		return Capture{}, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Capture{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, err
	}
	return out, nil
}

// FakeRunner is a Runner for tests. It records every command line it is
// asked to run and returns scripted results keyed by executable name.
type FakeRunner struct {
	Calls    [][]string
	Stdout   string // stdout returned for successful commands
	FailOn   string // executable that exits non-zero
	Stderr   string // stderr returned for the failing executable
	ExitCode int    // exit code for the failing executable (default 1)
	ErrOn    string // executable that fails to start
	Err      error  // error returned for the failing-to-start executable
}

// Run records argv and plays back the scripted outcome for argv[0].
func (f *FakeRunner) Run(_ context.Context, argv []string) (Capture, error) {
	f.Calls = append(f.Calls, argv)
	name := argv[0]

	if f.ErrOn != "" && name == f.ErrOn {
		return Capture{}, f.Err
	}
	if f.FailOn != "" && name == f.FailOn {
		code := f.ExitCode
		if code == 0 {
			code = 1
		}
		return Capture{Stderr: f.Stderr, ExitCode: code}, nil
	}
	return Capture{Stdout: f.Stdout}, nil
}
