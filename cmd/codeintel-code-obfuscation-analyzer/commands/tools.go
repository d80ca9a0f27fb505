package commands

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"text/tabwriter"

	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/internal/tool"
)

// printTools writes the built-in tool catalog as a table, probing PATH for
// each executable. Nothing is spawned.
func printTools(w io.Writer) error {
	catalog, err := tool.Builtin()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "TOOL\tCOMMAND\tSTATUS\tDESCRIPTION\n")
	fmt.Fprintf(tw, "----\t-------\t------\t-----------\n")
	for _, t := range catalog {
		status := "found"
		if _, err := exec.LookPath(t.Command); err != nil {
			status = "missing"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			t.Name, strings.Join(t.Argv("<directory>"), " "), status, t.Summary)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d tools in catalog\n", len(catalog))

	return nil
}
