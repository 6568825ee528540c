// Package loader parses model documents for the CLI. The loaded document
// becomes the live root object that index-argument reads resolve against
// during translation.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadModel parses input into a model document, auto-detecting the format
// by content. JSON and TOML are recognized by shape; everything else is
// treated as YAML (which also covers bare scalars).
func LoadModel(input string) (any, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty input")
	}

	// TOML before JSON: a TOML [section] header would otherwise look like
	// the start of a JSON array.
	if isLikelyTOML(input) {
		return loadTOML(input)
	}
	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return loadJSON(input)
	}
	return loadYAML(input)
}

// LoadModelBytes parses input bytes into a model document.
func LoadModelBytes(data []byte) (any, error) {
	return LoadModel(string(data))
}

// LoadFile reads path and parses it into a model document.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}
	return LoadModelBytes(data)
}

func loadJSON(input string) (any, error) {
	var doc any
	if err := json.Unmarshal([]byte(input), &doc); err != nil {
		// Flow-style YAML also starts with '{' or '['; give it a chance.
		return loadYAML(input)
	}
	return doc, nil
}

func loadYAML(input string) (any, error) {
	var doc any
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	return doc, nil
}

func loadTOML(input string) (any, error) {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, fmt.Errorf("parse TOML model: %w", err)
	}
	return doc, nil
}

var (
	tomlSectionRe  = regexp.MustCompile(`^\[\[?[A-Za-z0-9_."'-]+\]?\]$`)
	tomlKeyValueRe = regexp.MustCompile(`^[A-Za-z0-9_."'-]+\s*=\s*\S`)
)

// isLikelyTOML reports whether the first meaningful line looks like a TOML
// section header or key = value assignment.
func isLikelyTOML(input string) bool {
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return tomlSectionRe.MatchString(line) || tomlKeyValueRe.MatchString(line)
	}
	return false
}
