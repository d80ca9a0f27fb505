// Package builtin embeds the YAML tool catalog via go:embed.
package builtin

import "embed"

//go:embed *.yaml
var catalog embed.FS

// FS returns the embedded filesystem containing the built-in catalog.
func FS() embed.FS {
	return catalog
}
