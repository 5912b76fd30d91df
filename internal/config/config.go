// Package config handles configuration loading and validation for the
// input method engine and its tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"chime/internal/phonetic"
)

// Config holds the complete engine configuration.
type Config struct {
	// Data configures where dictionary files live.
	Data DataConfig `toml:"data" json:"data" yaml:"data"`

	// Input configures composition behavior.
	Input InputConfig `toml:"input" json:"input" yaml:"input"`

	// Candidates configures the candidate window.
	Candidates CandidateConfig `toml:"candidates" json:"candidates" yaml:"candidates"`

	// Output configures committed text handling.
	Output OutputConfig `toml:"output" json:"output" yaml:"output"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// DataConfig locates dictionary files.
type DataConfig struct {
	// Dir is the directory holding table files.
	Dir string `toml:"dir" json:"dir" yaml:"dir"`

	// PhoneticFile is the phonetic dictionary filename within Dir.
	PhoneticFile string `toml:"phonetic_file" json:"phonetic_file" yaml:"phonetic_file"`

	// DefaultGtab is the table filename attached when the table method
	// starts, empty for none.
	DefaultGtab string `toml:"default_gtab" json:"default_gtab" yaml:"default_gtab"`

	// Preload lists table filenames loaded into the registry at startup.
	Preload []string `toml:"preload" json:"preload" yaml:"preload"`

	// UsageStore is the phrase usage database path, empty to disable.
	UsageStore string `toml:"usage_store" json:"usage_store" yaml:"usage_store"`

	// WatchTables reloads table files when they change on disk.
	WatchTables bool `toml:"watch_tables" json:"watch_tables" yaml:"watch_tables"`
}

// InputConfig holds composition behavior.
type InputConfig struct {
	// Layout is the phonetic keyboard layout name: standard, hsu,
	// eten, eten26, ibm, pinyin, dvorak (or an alias).
	Layout string `toml:"layout" json:"layout" yaml:"layout"`

	// SmartPunctuation substitutes full-width punctuation.
	SmartPunctuation bool `toml:"smart_punctuation" json:"smart_punctuation" yaml:"smart_punctuation"`

	// ExactBig5 uses real charset decoding for Big5 code-point entry
	// instead of the level-1 approximation.
	ExactBig5 bool `toml:"exact_big5" json:"exact_big5" yaml:"exact_big5"`
}

// CandidateConfig holds candidate window settings.
type CandidateConfig struct {
	// PageSize is candidates per page, 1 to 10.
	PageSize int `toml:"page_size" json:"page_size" yaml:"page_size"`

	// SelectionKeys pick candidates by page position.
	SelectionKeys string `toml:"selection_keys" json:"selection_keys" yaml:"selection_keys"`
}

// OutputConfig holds committed text settings.
type OutputConfig struct {
	// Variant is "traditional" or "simplified".
	Variant string `toml:"variant" json:"variant" yaml:"variant"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is debug, info, warn, or error.
	Level string `toml:"level" json:"level" yaml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`

	// File is a log file path, empty for stderr.
	File string `toml:"file" json:"file" yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:          defaultDataDir(),
			PhoneticFile: "pho.tab2",
		},
		Input: InputConfig{
			Layout: "standard",
		},
		Candidates: CandidateConfig{
			PageSize:      10,
			SelectionKeys: "1234567890",
		},
		Output: OutputConfig{
			Variant: "traditional",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".chime", "data")
	}
	return "data"
}

// ApplyEnvOverrides applies CHIME_* environment variables on top of the
// loaded file.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CHIME_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("CHIME_PHONETIC_FILE"); v != "" {
		c.Data.PhoneticFile = v
	}
	if v := os.Getenv("CHIME_LAYOUT"); v != "" {
		c.Input.Layout = v
	}
	if v := os.Getenv("CHIME_VARIANT"); v != "" {
		c.Output.Variant = v
	}
	if v := os.Getenv("CHIME_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CHIME_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Candidates.PageSize = n
		}
	}
}

// Validate checks invariants that the schema cannot express across
// formats.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir must not be empty")
	}
	if _, ok := phonetic.LayoutByName(c.Input.Layout); !ok {
		return fmt.Errorf("input.layout: unknown layout %q", c.Input.Layout)
	}
	if c.Candidates.PageSize < 1 || c.Candidates.PageSize > 10 {
		return fmt.Errorf("candidates.page_size must be 1..10, got %d", c.Candidates.PageSize)
	}
	if c.Candidates.SelectionKeys == "" {
		return fmt.Errorf("candidates.selection_keys must not be empty")
	}
	for _, k := range c.Candidates.SelectionKeys {
		if k < '!' || k > '~' {
			return fmt.Errorf("candidates.selection_keys: %q is not a printable ASCII key", k)
		}
	}
	switch c.Output.Variant {
	case "traditional", "simplified":
	default:
		return fmt.Errorf("output.variant must be traditional or simplified, got %q", c.Output.Variant)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// Layout resolves the configured layout name. Call after Validate.
func (c *Config) Layout() phonetic.Layout {
	l, _ := phonetic.LayoutByName(c.Input.Layout)
	return l
}
