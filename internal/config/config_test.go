package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `{
		"input": "my_cv.json",
		"output": "my_cv.docx",
		"lang": "es",
		"photo": "photo.jpg",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "my_cv.json", cfg.Input)
	assert.Equal(t, "my_cv.docx", cfg.Output)
	assert.Equal(t, "es", cfg.Lang)
	assert.Equal(t, "photo.jpg", cfg.Photo)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"input": `)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestMergeWithDefaults_FlagsWin(t *testing.T) {
	flags := Config{Input: "flag.json", Lang: "en"}
	defaults := Config{Input: "file.json", Output: "file.docx", Lang: "es", Photo: "p.jpg"}

	merged := flags.MergeWithDefaults(defaults)

	assert.Equal(t, "flag.json", merged.Input)
	assert.Equal(t, "file.docx", merged.Output)
	assert.Equal(t, "en", merged.Lang)
	assert.Equal(t, "p.jpg", merged.Photo)
}

func TestMergeWithDefaults_VerboseOnlyTurnsOn(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{Verbose: true})
	assert.True(t, merged.Verbose)

	merged = (&Config{Verbose: true}).MergeWithDefaults(Config{})
	assert.True(t, merged.Verbose)
}
