package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// schemaJSON constrains JSON configuration files; TOML and YAML go
// through Validate only.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "data": {
      "type": "object",
      "properties": {
        "dir": {"type": "string", "minLength": 1},
        "phonetic_file": {"type": "string"},
        "default_gtab": {"type": "string"},
        "preload": {"type": "array", "items": {"type": "string"}},
        "usage_store": {"type": "string"},
        "watch_tables": {"type": "boolean"}
      }
    },
    "input": {
      "type": "object",
      "properties": {
        "layout": {"type": "string"},
        "smart_punctuation": {"type": "boolean"},
        "exact_big5": {"type": "boolean"}
      }
    },
    "candidates": {
      "type": "object",
      "properties": {
        "page_size": {"type": "integer", "minimum": 1, "maximum": 10},
        "selection_keys": {"type": "string", "minLength": 1}
      }
    },
    "output": {
      "type": "object",
      "properties": {
        "variant": {"enum": ["traditional", "simplified"]}
      }
    },
    "logging": {
      "type": "object",
      "properties": {
        "level": {"enum": ["debug", "info", "warn", "error"]},
        "format": {"enum": ["text", "json"]},
        "file": {"type": "string"}
      }
    }
  }
}`

var configSchema = jsonschema.MustCompileString("config.schema.json", schemaJSON)

// Load reads a configuration file, dispatching on extension (.toml,
// .yaml/.yml, .json), applies environment overrides, and validates. An
// empty path yields the defaults with overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml":
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case ".json":
			var instance any
			if err := json.Unmarshal(data, &instance); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			if err := configSchema.Validate(instance); err != nil {
				return nil, fmt.Errorf("schema validation %s: %w", path, err)
			}
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		default:
			return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
		}
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
