// Package analyzer provides a public API for running a fixed suite of
// Python static-analysis tools (bandit, flake8, pylint, pyre) against a
// code directory.
//
// This is the library entry point. For the CLI tool, see
// cmd/codeintel-code-obfuscation-analyzer/.
package analyzer

import (
	"context"

	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/internal/runner"
	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/internal/tool"
)

// Re-export core types from the internal packages so consumers don't need
// to import them.
type (
	Tool           = tool.Tool
	Runner         = runner.Runner
	Capture        = runner.Capture
	ExecRunner     = runner.ExecRunner
	FakeRunner     = runner.FakeRunner
	Result         = runner.Result
	CommandError   = runner.CommandError
	DirectoryError = runner.DirectoryError
)

// Tools returns the built-in tool catalog in invocation order.
func Tools() ([]Tool, error) {
	return tool.Builtin()
}

// Analyze runs the named tools from the built-in catalog against dir.
// Tools run one at a time in catalog order and the run stops at the first
// failure; the results of the invocations that completed are returned
// alongside the error. An unknown name fails before anything is started.
func Analyze(ctx context.Context, dir string, names []string, opts ...Option) ([]Result, error) {
	cfg := applyOpts(opts)

	catalog, err := tool.Builtin()
	if err != nil {
		return nil, err
	}
	selected, err := tool.Select(catalog, names)
	if err != nil {
		return nil, err
	}

	iv := runner.New(cfg.runner)
	if cfg.logger != nil {
		iv.SetLogger(cfg.logger)
	}
	return iv.Run(ctx, dir, selected)
}

func applyOpts(opts []Option) *config {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}
