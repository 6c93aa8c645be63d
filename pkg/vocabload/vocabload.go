// Package vocabload loads harness check configurations — a vocabulary, a
// schema source, and the tokens to feed before checking — from JSON or
// YAML files, for the scscheck command line tool.
package vocabload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Config describes one vocabulary-filter harness run: the candidate
// vocabulary, the schema-description source that constrains it, and the
// sequence of characters already committed before the first check.
type Config struct {
	Vocabulary []string `json:"vocabulary" yaml:"vocabulary"`
	Schema     string   `json:"schema" yaml:"schema"`
	Prefix     string   `json:"prefix" yaml:"prefix"`
}

// Load reads path and unmarshals it as Config, dispatching to the JSON or
// YAML decoder by file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocabload: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("vocabload: parse %s as JSON: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("vocabload: parse %s as YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("vocabload: unrecognized config extension %q", ext)
	}

	if len(cfg.Vocabulary) == 0 {
		return nil, fmt.Errorf("vocabload: %s declares an empty vocabulary", path)
	}
	if cfg.Schema == "" {
		return nil, fmt.Errorf("vocabload: %s is missing a schema source", path)
	}
	return &cfg, nil
}
