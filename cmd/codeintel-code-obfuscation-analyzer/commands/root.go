package commands

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagBandit    bool
	flagFlake8    bool
	flagPylint    bool
	flagPyre      bool
	flagVersion   bool
	flagListTools bool
	flagDryRun    bool
	flagVerbose   bool
	flagJSONLogs  bool
)

var rootCmd = &cobra.Command{
	Use:   "codeintel-code-obfuscation-analyzer [flags] directory",
	Short: "Analyze obfuscated code with a suite of Python static-analysis tools",
	Long:  `Code Obfuscation Analyzer: analyze obfuscated code to identify potential vulnerabilities. It orchestrates bandit, flake8, pylint, and pyre against a target directory and reports their output through structured logs.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagListTools {
			if len(args) > 0 {
				return fmt.Errorf("--list-tools does not accept a directory argument")
			}
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runRoot,
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().BoolVar(&flagBandit, "bandit", false, "Run Bandit for static security analysis")
	rootCmd.Flags().BoolVar(&flagFlake8, "flake8", false, "Run Flake8 for code quality checks")
	rootCmd.Flags().BoolVar(&flagPylint, "pylint", false, "Run Pylint for detailed code analysis")
	rootCmd.Flags().BoolVar(&flagPyre, "pyre", false, "Run Pyre-Check for type checking and potential issues")
	rootCmd.Flags().BoolVar(&flagVersion, "version", false, "Show the version of the tool and exit")
	rootCmd.Flags().BoolVar(&flagListTools, "list-tools", false, "List the tool catalog with PATH availability and exit")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Log the commands that would run without executing them")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug-level logging")
	rootCmd.Flags().BoolVar(&flagJSONLogs, "json-logs", false, "Write logs in JSON format")
}

// initLogging configures the process-wide logger. It runs once, after
// flags are parsed and before the command body.
func initLogging() {
	if flagJSONLogs {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
