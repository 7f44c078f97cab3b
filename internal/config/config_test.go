package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ccaterrors "github.com/adversing/ccat/pkg/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "base16-ocean.dark", cfg.Theme)
	assert.False(t, cfg.LineNumbers)
	assert.Empty(t, cfg.Syntax)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadValid(t *testing.T) {
	path := writeConfigFile(t, "theme: monokai\nline_numbers: true\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "monokai", cfg.Theme)
	assert.True(t, cfg.LineNumbers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadKeepsDefaultsForOmittedFields(t *testing.T) {
	path := writeConfigFile(t, "line_numbers: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.True(t, cfg.LineNumbers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var parseErr *ccaterrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "theme: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *ccaterrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadInvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, "theme: monokai\nlog_level: loud\n")

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *ccaterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "loglevel", validationErr.Field)
}

func TestValidateEmptyTheme(t *testing.T) {
	cfg := Defaults()
	cfg.Theme = ""

	err := Validate(&cfg)
	require.Error(t, err)

	var validationErr *ccaterrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "theme", validationErr.Field)
}

func TestValidateNil(t *testing.T) {
	require.Error(t, Validate(nil))
}
