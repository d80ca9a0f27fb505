package runner_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/internal/runner"
	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/internal/tool"
)

// testTools returns a small catalog covering every argv shape: fixed args
// plus target, bare target, and no target at all.
func testTools() []tool.Tool {
	return []tool.Tool{
		{Name: "alpha", Command: "alpha", Args: []string{"-r"}, AppendTarget: true},
		{Name: "beta", Command: "beta", AppendTarget: true},
		{Name: "gamma", Command: "gamma", Args: []string{"check"}},
	}
}

func newQuietInvoker(r runner.Runner) *runner.Invoker {
	iv := runner.New(r)
	logger, _ := logtest.NewNullLogger()
	iv.SetLogger(logger)
	return iv
}

func TestInvokerRunsInOrder(t *testing.T) {
	dir := t.TempDir()
	fake := &runner.FakeRunner{Stdout: "all clean"}
	iv := newQuietInvoker(fake)

	results, err := iv.Run(context.Background(), dir, testTools())
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, [][]string{
		{"alpha", "-r", dir},
		{"beta", dir},
		{"gamma", "check"},
	}, fake.Calls)

	require.Equal(t, "alpha", results[0].Tool)
	require.Equal(t, "all clean", results[0].Stdout)
	require.Equal(t, []string{"gamma", "check"}, results[2].Argv)
}

func TestInvokerFailFast(t *testing.T) {
	dir := t.TempDir()
	fake := &runner.FakeRunner{
		FailOn:   "beta",
		Stderr:   "lint exploded",
		ExitCode: 2,
	}
	iv := newQuietInvoker(fake)

	results, err := iv.Run(context.Background(), dir, testTools())
	require.Error(t, err)

	var cmdErr *runner.CommandError
	require.ErrorAs(t, err, &cmdErr)
	require.Equal(t, []string{"beta", dir}, cmdErr.Argv)
	require.Equal(t, "lint exploded", cmdErr.Stderr)
	require.Equal(t, 2, cmdErr.ExitCode)
	require.Contains(t, err.Error(), "error running command: beta "+dir)

	// alpha ran, beta failed, gamma was never started.
	require.Len(t, fake.Calls, 2)
	require.Len(t, results, 1)
	require.Equal(t, "alpha", results[0].Tool)
}

func TestInvokerMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	fake := &runner.FakeRunner{}
	iv := newQuietInvoker(fake)

	results, err := iv.Run(context.Background(), missing, testTools())
	require.Error(t, err)

	var dirErr *runner.DirectoryError
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, missing, dirErr.Path)

	require.Empty(t, fake.Calls, "no tool may start when validation fails")
	require.Empty(t, results)
}

func TestInvokerTargetIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0644))

	fake := &runner.FakeRunner{}
	iv := newQuietInvoker(fake)

	_, err := iv.Run(context.Background(), file, testTools())
	var dirErr *runner.DirectoryError
	require.ErrorAs(t, err, &dirErr)
	require.Empty(t, fake.Calls)
}

func TestInvokerNoTools(t *testing.T) {
	dir := t.TempDir()
	fake := &runner.FakeRunner{}
	iv := newQuietInvoker(fake)

	results, err := iv.Run(context.Background(), dir, nil)
	require.NoError(t, err)
	require.Empty(t, results)
	require.Empty(t, fake.Calls)
}

func TestInvokerRunnerError(t *testing.T) {
	dir := t.TempDir()
	fake := &runner.FakeRunner{
		ErrOn: "alpha",
		Err:   exec.ErrNotFound,
	}
	iv := newQuietInvoker(fake)

	results, err := iv.Run(context.Background(), dir, testTools())
	require.Error(t, err)
	require.ErrorIs(t, err, exec.ErrNotFound)

	require.Len(t, fake.Calls, 1, "failure to start must also stop the run")
	require.Empty(t, results)
}

func TestInvokerCanceledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &runner.FakeRunner{}
	iv := newQuietInvoker(fake)

	_, err := iv.Run(ctx, dir, testTools())
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, fake.Calls)
}

func TestInvokerLogsCommandOutput(t *testing.T) {
	dir := t.TempDir()
	fake := &runner.FakeRunner{Stdout: "12 issues, 0 errors"}

	iv := runner.New(fake)
	logger, hook := logtest.NewNullLogger()
	iv.SetLogger(logger)

	_, err := iv.Run(context.Background(), dir, testTools()[:1])
	require.NoError(t, err)

	messages := make([]string, 0, len(hook.AllEntries()))
	for _, e := range hook.AllEntries() {
		require.Equal(t, logrus.InfoLevel, e.Level)
		messages = append(messages, e.Message)
	}
	require.Contains(t, messages, "Running command: alpha -r "+dir)
	require.Contains(t, messages, "Command output:\n12 issues, 0 errors")
}

func TestInvokerLogsFailure(t *testing.T) {
	dir := t.TempDir()
	fake := &runner.FakeRunner{FailOn: "alpha", Stderr: "syntax error on line 3"}

	iv := runner.New(fake)
	logger, hook := logtest.NewNullLogger()
	iv.SetLogger(logger)

	_, err := iv.Run(context.Background(), dir, testTools()[:1])
	require.Error(t, err)

	var errorMessages []string
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			errorMessages = append(errorMessages, e.Message)
		}
	}
	require.Len(t, errorMessages, 1)
	require.True(t, strings.HasPrefix(errorMessages[0], "Command failed with error:\n"))
	require.Contains(t, errorMessages[0], "syntax error on line 3")
}

func TestInvokerLogsMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	iv := runner.New(&runner.FakeRunner{})
	logger, hook := logtest.NewNullLogger()
	iv.SetLogger(logger)

	_, err := iv.Run(context.Background(), missing, nil)
	require.Error(t, err)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.AllEntries()[0]
	require.Equal(t, logrus.ErrorLevel, entry.Level)
	require.Equal(t, "Directory does not exist: "+missing, entry.Message)
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runner.ValidateDir(dir))

	err := runner.ValidateDir(filepath.Join(dir, "missing"))
	var dirErr *runner.DirectoryError
	require.ErrorAs(t, err, &dirErr)
}

func TestCommandErrorMessage(t *testing.T) {
	err := &runner.CommandError{Argv: []string{"bandit", "-r", "src"}, ExitCode: 1}
	require.Equal(t, "error running command: bandit -r src", err.Error())
}
