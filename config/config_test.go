package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Input string `yaml:"input"`
}

func (c *testConfig) Default() {
	if c.Input == "" {
		c.Input = "data.txt"
	}
}

func TestLoadFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("input: other.bin\n"), 0o644))

	c := &testConfig{}
	require.NoError(t, LoadFiles(c, []string{path}, true, YamlUnmarshaler))
	require.NoError(t, Finalize(c))
	assert.Equal(t, "other.bin", c.Input)
}

func TestLoadFilesOptionalMissing(t *testing.T) {
	c := &testConfig{}
	missing := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, LoadFiles(c, []string{missing}, false, YamlUnmarshaler))
	require.NoError(t, Finalize(c))
	assert.Equal(t, "data.txt", c.Input)
}

func TestLoadFilesRequiredMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.yml")
	assert.Error(t, LoadFiles(&testConfig{}, []string{missing}, true, YamlUnmarshaler))
}

func TestBaseConfig(t *testing.T) {
	c := &BaseConfig{}
	c.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "info", c.LogConfig().Level)

	c.Log.Level = "chatty"
	assert.Error(t, c.Validate())
}
