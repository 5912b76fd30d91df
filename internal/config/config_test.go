package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chime/internal/phonetic"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultsValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, phonetic.LayoutStandard, cfg.Layout())
	assert.Equal(t, 10, cfg.Candidates.PageSize)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "chime.toml", `
[data]
dir = "/srv/chime"
phonetic_file = "pho.tab2"
preload = ["cj.gtab", "ar30.gtab"]

[input]
layout = "eten"
smart_punctuation = true

[candidates]
page_size = 5
selection_keys = "asdfg"

[output]
variant = "simplified"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/chime", cfg.Data.Dir)
	assert.Equal(t, []string{"cj.gtab", "ar30.gtab"}, cfg.Data.Preload)
	assert.Equal(t, phonetic.LayoutEten, cfg.Layout())
	assert.True(t, cfg.Input.SmartPunctuation)
	assert.Equal(t, 5, cfg.Candidates.PageSize)
	assert.Equal(t, "asdfg", cfg.Candidates.SelectionKeys)
	assert.Equal(t, "simplified", cfg.Output.Variant)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "chime.yaml", `
data:
  dir: /srv/chime
input:
  layout: hsu
logging:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, phonetic.LayoutHsu, cfg.Layout())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadJSONValidatesSchema(t *testing.T) {
	good := writeFile(t, "chime.json", `{
  "data": {"dir": "/srv/chime"},
  "candidates": {"page_size": 9}
}`)
	cfg, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Candidates.PageSize)

	bad := writeFile(t, "bad.json", `{"candidates": {"page_size": 99}}`)
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "chime.ini", "dir=/tmp")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHIME_DATA_DIR", "/env/data")
	t.Setenv("CHIME_LAYOUT", "dvorak")
	t.Setenv("CHIME_PAGE_SIZE", "3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/data", cfg.Data.Dir)
	assert.Equal(t, phonetic.LayoutDvorak, cfg.Layout())
	assert.Equal(t, 3, cfg.Candidates.PageSize)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty dir", func(c *Config) { c.Data.Dir = "" }},
		{"bad layout", func(c *Config) { c.Input.Layout = "qwerty" }},
		{"page size", func(c *Config) { c.Candidates.PageSize = 0 }},
		{"no sel keys", func(c *Config) { c.Candidates.SelectionKeys = "" }},
		{"non-ascii sel keys", func(c *Config) { c.Candidates.SelectionKeys = "一二三" }},
		{"bad variant", func(c *Config) { c.Output.Variant = "kanji" }},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLayoutAliases(t *testing.T) {
	cfg := Default()
	cfg.Input.Layout = "et26"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, phonetic.LayoutEten26, cfg.Layout())
}
