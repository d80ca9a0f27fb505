package runner

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/internal/tool"
)

// Result captures a single successful tool invocation.
type Result struct {
	Tool     string
	Argv     []string
	Stdout   string
	Duration time.Duration
}

// DirectoryError reports a target path that is not an existing directory.
type DirectoryError struct {
	Path string
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

// CommandError reports a tool that ran and exited with a non-zero status.
type CommandError struct {
	Argv     []string
	Stderr   string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("error running command: %s", strings.Join(e.Argv, " "))
}

// ValidateDir checks that dir exists and is a directory. Stat failures of
// any kind count as not found.
func ValidateDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return &DirectoryError{Path: dir}
	}
	return nil
}

// Invoker runs a set of tools against a target directory, one at a time
// and in the order given, stopping at the first failure.
type Invoker struct {
	runner Runner
	log    logrus.FieldLogger
}

// New creates an Invoker backed by the given Runner. A nil runner
// defaults to ExecRunner.
func New(r Runner) *Invoker {
	if r == nil {
		r = ExecRunner{}
	}
	return &Invoker{
		runner: r,
		log:    logrus.StandardLogger(),
	}
}

// SetLogger replaces the logger used to report command outcomes.
func (iv *Invoker) SetLogger(l logrus.FieldLogger) {
	if l != nil {
		iv.log = l
	}
}

// Run validates dir and then invokes each tool in order. It returns the
// results of the invocations that completed; once a tool fails, the
// remaining tools are never started.
func (iv *Invoker) Run(ctx context.Context, dir string, tools []tool.Tool) ([]Result, error) {
	if err := ValidateDir(dir); err != nil {
		iv.log.Errorf("Directory does not exist: %s", dir)
		return nil, err
	}

	var results []Result
	for _, t := range tools {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := iv.Invoke(ctx, t, dir)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Invoke runs a single tool against dir and reports its outcome. Stdout of
// a successful run is logged at info level; stderr of a failed run is
// logged at error level.
func (iv *Invoker) Invoke(ctx context.Context, t tool.Tool, dir string) (Result, error) {
	argv := t.Argv(dir)
	line := strings.Join(argv, " ")
	iv.log.Infof("Running command: %s", line)

	start := time.Now()
	out, err := iv.runner.Run(ctx, argv)
	if err != nil {
		return Result{}, fmt.Errorf("running command %s: %w", line, err)
	}
	if out.ExitCode != 0 {
		iv.log.Errorf("Command failed with error:\n%s", out.Stderr)
		return Result{}, &CommandError{Argv: argv, Stderr: out.Stderr, ExitCode: out.ExitCode}
	}

	iv.log.Infof("Command output:\n%s", out.Stdout)
	iv.log.Debugf("Command %s completed in %s", t.Name, time.Since(start))

	return Result{
		Tool:     t.Name,
		Argv:     argv,
		Stdout:   out.Stdout,
		Duration: time.Since(start),
	}, nil
}
