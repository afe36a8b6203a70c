package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a scene tree from a .json, .yaml, or .yml file.
func LoadFile(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}

	var n Node
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("parse scene %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("parse scene %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("scene %s: unsupported extension %q", path, ext)
	}
	return &n, nil
}

// SaveFile writes a scene tree, choosing the format by extension.
func SaveFile(path string, n *Node) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(n, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(n)
	default:
		return fmt.Errorf("scene %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("encode scene %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene %s: %w", path, err)
	}
	return nil
}
