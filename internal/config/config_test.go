package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file with every option set
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nlog-file: game.log\nno-color: true\nglyphs:\n  x: '#'\n  o: '@'\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the values come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "game.log", conf.LogFile)
		assert.True(t, conf.NoColor)
		assert.Equal(t, Glyphs{X: "#", O: "@"}, conf.Glyphs)
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.NoColor)
		assert.Equal(t, Glyphs{X: "X", O: "O"}, conf.Glyphs)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("TICTACTOE_LOG_LEVEL", "warn")
		t.Setenv("TICTACTOE_GLYPH_O", "0")

		conf, err := Load("")

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "0", conf.Glyphs.O)
	})

	t.Run("Malformed file returns an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("no-color: [not a bool"), 0o600))

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("no-color: [not a bool"), 0o600))

	assert.Panics(t, func() { MustLoad(path) })
}
