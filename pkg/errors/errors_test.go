package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNotFoundError(t *testing.T) {
	err := NewThemeNotFoundError("does-not-exist")
	require.Error(t, err)
	assert.Equal(t, `theme "does-not-exist" not found`, err.Error())

	var notFound *ThemeNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "does-not-exist", notFound.Name)
}

func TestSyntaxNotFoundError(t *testing.T) {
	err := NewSyntaxNotFoundError("Klingon")
	require.Error(t, err)
	assert.Equal(t, `syntax "Klingon" not found`, err.Error())

	var notFound *SyntaxNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Klingon", notFound.Name)
}

func TestTokenizeErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("broken state")
	err := NewTokenizeError("Python", cause)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `grammar "Python"`)
	assert.ErrorIs(t, err, cause)
}

func TestReadErrorUnwrap(t *testing.T) {
	err := NewReadError("/tmp/missing.py", fs.ErrNotExist)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/tmp/missing.py")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, "/tmp/missing.py", readErr.Path)
}

func TestParseErrorWithLine(t *testing.T) {
	cause := fmt.Errorf("yaml: line 3: mapping values are not allowed")
	err := NewParseError("config.yaml", 3, cause)
	assert.Equal(t, "parse error: config.yaml:3: yaml: line 3: mapping values are not allowed", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestParseErrorWithoutLine(t *testing.T) {
	err := NewParseError("config.yaml", 0, fmt.Errorf("unexpected end of file"))
	assert.Equal(t, "parse error: config.yaml: unexpected end of file", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("theme", "must not be empty", nil)
	assert.Equal(t, "validation error: theme: must not be empty", err.Error())

	err = NewValidationError("", "configuration is nil", nil)
	assert.Equal(t, "validation error: configuration is nil", err.Error())
}
