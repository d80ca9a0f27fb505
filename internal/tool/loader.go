package tool

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ShadowStrikeHQ/codeintel-code-obfuscation-analyzer/internal/tool/builtin"
)

// Builtin returns the embedded tool catalog. Catalog order is invocation
// order.
func Builtin() ([]Tool, error) {
	tools, err := LoadFromFS(builtin.FS())
	if err != nil {
		return nil, fmt.Errorf("loading built-in tool catalog: %w", err)
	}
	return tools, nil
}

// LoadFromFS loads tool definitions from an embed.FS or any fs.FS.
// Files are visited in lexical order; within a file, documents keep
// their declared order.
func LoadFromFS(fsys fs.FS) ([]Tool, error) {
	var all []Tool
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAML(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		tools, err := parseMultiDocYAML(data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		all = append(all, tools...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := validate(all); err != nil {
		return nil, err
	}
	return all, nil
}

// parseMultiDocYAML splits a YAML file on "---" boundaries and parses each
// document as a single tool. Documents without a name are skipped.
func parseMultiDocYAML(data []byte) ([]Tool, error) {
	var tools []Tool
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var t Tool
		err := decoder.Decode(&t)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if t.Name != "" {
			tools = append(tools, t)
		}
	}
	return tools, nil
}

// validate rejects catalogs with duplicate names or missing commands.
func validate(tools []Tool) error {
	seen := make(map[string]bool, len(tools))
	for _, t := range tools {
		if seen[t.Name] {
			return fmt.Errorf("duplicate tool %q", t.Name)
		}
		seen[t.Name] = true
		if t.Command == "" {
			return fmt.Errorf("tool %q has no command", t.Name)
		}
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
