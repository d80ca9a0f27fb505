package main

import (
	"os"

	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/cmd/codeintel-code-obfuscation-analyzer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(2)
	}
}
