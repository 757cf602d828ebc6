package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	name := filepath.Join(dir, "beacon.yaml")
	require.NoError(t, os.WriteFile(name, []byte(content), 0644))
	return name
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := loadConfig(nil, "")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Row:    2000000,
		Max:    4000000,
		Format: "text",
		Color:  "auto",
	}, cfg)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := isolateConfig(t)
	name := writeConfig(t, dir, "row: 10\nmax: 20\nformat: yaml\n")

	cfg, err := loadConfig(nil, name)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cfg.Row)
	assert.Equal(t, int64(20), cfg.Max)
	assert.Equal(t, "yaml", cfg.Format)

	t.Setenv("BEACON_ROW", "7")
	cfg, err = loadConfig(nil, name)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Row)
	assert.Equal(t, int64(20), cfg.Max)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int64("row", _defaultRow, "")
	flags.Int64("max", _defaultMax, "")
	require.NoError(t, flags.Parse([]string{"--row", "3"}))

	cfg, err = loadConfig(flags, name)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cfg.Row)
	assert.Equal(t, int64(20), cfg.Max)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	dir := isolateConfig(t)

	_, err := loadConfig(nil, filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := isolateConfig(t)

	tests := []struct {
		name    string
		content string
		message string
	}{
		{"negative max", "max: -1\n", "max must not be negative"},
		{"format", "format: json\n", "unknown format"},
		{"color", "color: sometimes\n", "unknown color mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(nil, writeConfig(t, dir, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
