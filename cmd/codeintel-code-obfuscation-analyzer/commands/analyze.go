package commands

import (
	"context"
	"os"
	"os/signal"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/internal/runner"
	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/internal/tool"
)

// execRunner is swapped out by tests to avoid spawning real tools.
var execRunner runner.Runner = runner.ExecRunner{}

// runRoot wraps runAnalysis: a handled failure is logged once and the
// process exits 1. Usage errors never reach here; cobra reports those and
// main exits non-zero.
func runRoot(cmd *cobra.Command, args []string) error {
	if err := runAnalysis(cmd, args); err != nil {
		log.Errorf("An error occurred: %v", err)
		os.Exit(1)
	}
	return nil
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	if flagListTools {
		return printTools(cmd.OutOrStdout())
	}

	dir := args[0]

	catalog, err := tool.Builtin()
	if err != nil {
		return err
	}
	selected, err := tool.Select(catalog, selectedNames())
	if err != nil {
		return err
	}

	if flagDryRun {
		return dryRun(dir, selected)
	}

	ctx, cancel := contextWithInterrupt()
	defer cancel()

	_, err = runner.New(execRunner).Run(ctx, dir, selected)
	return err
}

// selectedNames returns the names of the tools enabled on the command
// line. Selection order does not matter; invocation follows catalog order.
func selectedNames() []string {
	var names []string
	if flagBandit {
		names = append(names, "bandit")
	}
	if flagFlake8 {
		names = append(names, "flake8")
	}
	if flagPylint {
		names = append(names, "pylint")
	}
	if flagPyre {
		names = append(names, "pyre")
	}
	return names
}

// dryRun validates the directory and logs the commands that would run.
func dryRun(dir string, selected []tool.Tool) error {
	if err := runner.ValidateDir(dir); err != nil {
		log.Errorf("Directory does not exist: %s", dir)
		return err
	}
	for _, t := range selected {
		log.Infof("Dry run: would run: %s", strings.Join(t.Argv(dir), " "))
	}
	return nil
}

func contextWithInterrupt() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}
