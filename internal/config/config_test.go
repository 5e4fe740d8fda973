package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hancombiner/internal/combiner"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ModeLine, cfg.Input.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, combiner.KeepComposingWord, cfg.Policy())
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadINIAndTOMLAgree(t *testing.T) {
	iniPath := writeFile(t, "hancombiner.ini",
		"[combiner]\npolicy = clear\n\n[log]\nlevel = debug\nformat = json\n\n[input]\nmode = interactive\nshow_syllable = true\n")
	tomlPath := writeFile(t, "hancombiner.toml",
		"[combiner]\npolicy = \"clear\"\n\n[log]\nlevel = \"debug\"\nformat = \"json\"\n\n[input]\nmode = \"interactive\"\nshow_syllable = true\n")

	fromINI, err := Load(iniPath)
	require.NoError(t, err)
	fromTOML, err := Load(tomlPath)
	require.NoError(t, err)

	assert.Equal(t, fromINI, fromTOML)
	assert.Equal(t, combiner.ClearComposingWordOnReset, fromINI.Policy())
	assert.Equal(t, ModeInteractive, fromINI.Input.Mode)
	assert.True(t, fromINI.Input.ShowSyllable)
}

func TestLoadPartialINIKeepsDefaults(t *testing.T) {
	path := writeFile(t, "partial.ini", "[log]\nlevel = warn\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, FormatPretty, cfg.Log.Format)
	assert.Equal(t, ModeLine, cfg.Input.Mode)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "level", contents: "[log]\nlevel = chatty\n"},
		{name: "format", contents: "[log]\nformat = xml\n"},
		{name: "mode", contents: "[input]\nmode = telepathy\n"},
		{name: "policy", contents: "[combiner]\npolicy = forget\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "bad.ini", tt.contents))
			require.Error(t, err)
			assert.IsType(t, ConfigError{}, err)
		})
	}
}

func TestLoadDirectoryFails(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoadMalformedTOML(t *testing.T) {
	_, err := Load(writeFile(t, "broken.toml", "[log\nlevel = \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode toml")
}
