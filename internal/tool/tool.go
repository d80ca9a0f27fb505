// Package tool defines the catalog of external analysis commands and the
// fixed command-line template each one is invoked with.
package tool

import "fmt"

// Tool describes one external analysis command.
type Tool struct {
	Name         string   `yaml:"name"`
	Summary      string   `yaml:"summary"`
	Command      string   `yaml:"command"`
	Args         []string `yaml:"args"`
	AppendTarget bool     `yaml:"append_target"`
}

// Argv returns the full command line for running the tool against dir.
// The target directory is only appended when the tool accepts one.
func (t Tool) Argv(dir string) []string {
	argv := make([]string, 0, len(t.Args)+2)
	argv = append(argv, t.Command)
	argv = append(argv, t.Args...)
	if t.AppendTarget {
		argv = append(argv, dir)
	}
	return argv
}

// Select returns the catalog tools matching names, preserving catalog
// order regardless of the order names were given in.
func Select(catalog []Tool, names []string) ([]Tool, error) {
	known := make(map[string]bool, len(catalog))
	for _, t := range catalog {
		known[t.Name] = true
	}

	want := make(map[string]bool, len(names))
	for _, n := range names {
		if !known[n] {
			return nil, fmt.Errorf("unknown tool %q", n)
		}
		want[n] = true
	}

	var selected []Tool
	for _, t := range catalog {
		if want[t.Name] {
			selected = append(selected, t)
		}
	}
	return selected, nil
}
