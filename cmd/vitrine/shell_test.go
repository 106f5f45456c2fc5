package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vitrine/internal/catalog"
	"github.com/alexisbeaulieu97/vitrine/internal/chrome"
	vitrineerrors "github.com/alexisbeaulieu97/vitrine/pkg/errors"
)

func TestRootRefusesNonTerminal(t *testing.T) {
	_, err := executeRoot(t)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotTerminal))
	assert.Contains(t, err.Error(), "Suggestion:")
}

func TestRootRejectsBadFlagsBeforeTerminalCheck(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{name: "unknown theme", args: []string{"--theme", "neon"}, field: "theme"},
		{name: "unknown language", args: []string{"--language", "de"}, field: "language"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeRoot(t, tt.args...)
			require.Error(t, err)

			var validationErr *vitrineerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		root := newRootCmd()
		v := newViper()
		require.NoError(t, v.BindPFlags(root.PersistentFlags()))

		cfg, err := loadSettings(v, cat)
		require.NoError(t, err)
		assert.Equal(t, chrome.ThemeSystem, cfg.Theme)
		assert.Empty(t, cfg.Language)
		assert.Empty(t, cfg.LogFile)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.AltScreen)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("VITRINE_THEME", "dark")
		t.Setenv("VITRINE_LANGUAGE", "fr")
		t.Setenv("VITRINE_NO_ALT_SCREEN", "true")

		root := newRootCmd()
		v := newViper()
		require.NoError(t, v.BindPFlags(root.PersistentFlags()))

		cfg, err := loadSettings(v, cat)
		require.NoError(t, err)
		assert.Equal(t, chrome.ThemeDark, cfg.Theme)
		assert.Equal(t, "fr", cfg.Language)
		assert.False(t, cfg.AltScreen)
	})

	t.Run("selection error is wrapped", func(t *testing.T) {
		v := viper.New()
		v.Set("language", "xx")

		_, err := loadSettings(v, cat)
		var selectionErr *vitrineerrors.SelectionError
		require.True(t, errors.As(err, &selectionErr))
		assert.Equal(t, "xx", selectionErr.Value)
	})
}

func TestClosestLanguage(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	tests := []struct {
		input string
		guess string
		found bool
	}{
		{input: "fra", guess: "fr", found: true},
		{input: "EN", guess: "en", found: true},
		{input: "kirund", guess: "rn", found: true},
		{input: "japanese", found: false},
		{input: "de", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			guess, ok := closestLanguage(cat, tt.input)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.guess, guess)
		})
	}
}

func TestOpenLogger(t *testing.T) {
	t.Run("discards without a file", func(t *testing.T) {
		log, closeLog, err := openLogger(settings{LogLevel: "debug"})
		require.NoError(t, err)
		defer closeLog()
		assert.NotNil(t, log)
	})

	t.Run("appends to the file with a session id", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vitrine.log")
		log, closeLog, err := openLogger(settings{LogFile: path, LogLevel: "info"})
		require.NoError(t, err)
		log.Info("hello")
		closeLog()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"message":"hello"`)
		assert.Contains(t, string(data), `"session_id"`)
	})

	t.Run("bad level", func(t *testing.T) {
		_, _, err := openLogger(settings{LogLevel: "loud"})
		assert.Error(t, err)
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
