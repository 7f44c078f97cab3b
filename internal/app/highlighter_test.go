package app

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adversing/ccat/internal/catalog"
	"github.com/adversing/ccat/internal/config"
	ccaterrors "github.com/adversing/ccat/pkg/errors"
)

var sgrSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripEscapes(s string) string {
	return sgrSeq.ReplaceAllString(s, "")
}

func newHighlighter() *Highlighter {
	return New(catalog.New(), nil)
}

func TestHighlightContentPythonDefaults(t *testing.T) {
	h := newHighlighter()

	out, err := h.HighlightContent("print(\"hi\")\n", "example.py", config.Defaults())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "\x1b[38;2;"), "output must start with a truecolor escape")
	assert.Equal(t, "print(\"hi\")\n", stripEscapes(out))
	assert.NotContains(t, out, "\x1b[0m", "baseline output has no reset sequence")
}

func TestHighlightContentWithLineNumbers(t *testing.T) {
	h := newHighlighter()
	cfg := config.Defaults()
	cfg.LineNumbers = true

	out, err := h.HighlightContent("print(\"hi\")\n", "example.py", cfg)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stripEscapes(out), "   1 | "))
}

func TestHighlightContentLineNumbersDifferOnlyByPrefix(t *testing.T) {
	h := newHighlighter()

	cfg := config.Defaults()
	plain, err := h.HighlightContent("x = 1\ny = 2\n", "example.py", cfg)
	require.NoError(t, err)

	cfg.LineNumbers = true
	numbered, err := h.HighlightContent("x = 1\ny = 2\n", "example.py", cfg)
	require.NoError(t, err)

	plainLines := strings.SplitAfter(plain, "\n")
	numberedLines := strings.SplitAfter(numbered, "\n")
	require.Equal(t, len(plainLines), len(numberedLines))

	for i, line := range plainLines {
		if line == "" {
			continue
		}
		want := strings.TrimLeft(numberedLines[i], " 0123456789")
		want = strings.TrimPrefix(want, "| ")
		assert.Equal(t, line, want, "line %d", i+1)
	}
}

func TestHighlightContentUnknownThemeFailsBeforeTokenization(t *testing.T) {
	h := newHighlighter()
	cfg := config.Defaults()
	cfg.Theme = "does-not-exist"

	_, err := h.HighlightContent("print(\"hi\")\n", "example.py", cfg)
	require.Error(t, err)

	var notFound *ccaterrors.ThemeNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "does-not-exist", notFound.Name)
}

func TestHighlightContentForcedSyntaxMissing(t *testing.T) {
	h := newHighlighter()
	cfg := config.Defaults()
	cfg.Syntax = "Klingon"

	_, err := h.HighlightContent("print(\"hi\")\n", "example.py", cfg)
	require.Error(t, err)

	var notFound *ccaterrors.SyntaxNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestHighlightContentDeterministic(t *testing.T) {
	h := newHighlighter()
	cfg := config.Defaults()

	first, err := h.HighlightContent("x = [1, 2]\n", "example.py", cfg)
	require.NoError(t, err)
	second, err := h.HighlightContent("x = [1, 2]\n", "example.py", cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHighlightFile(t *testing.T) {
	h := newHighlighter()

	path := filepath.Join(t.TempDir(), "example.py")
	require.NoError(t, os.WriteFile(path, []byte("print(\"hi\")\n"), 0644))

	out, err := h.HighlightFile(path, config.Defaults())
	require.NoError(t, err)
	assert.Equal(t, "print(\"hi\")\n", stripEscapes(out))
}

func TestHighlightFileMissing(t *testing.T) {
	h := newHighlighter()

	_, err := h.HighlightFile(filepath.Join(t.TempDir(), "missing.py"), config.Defaults())
	require.Error(t, err)

	var readErr *ccaterrors.ReadError
	assert.True(t, errors.As(err, &readErr))
}

func TestWriteHighlightedStreams(t *testing.T) {
	h := newHighlighter()

	var sb strings.Builder
	err := h.WriteHighlighted(&sb, "a\nb\n", "notes.txt", config.Defaults())
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", stripEscapes(sb.String()))
}
