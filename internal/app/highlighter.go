// Package app wires the highlighting pipeline together: resolver, session and
// renderer, executed sequentially for one file in one call chain.
package app

import (
	"io"
	"os"
	"strings"

	"github.com/adversing/ccat/internal/catalog"
	"github.com/adversing/ccat/internal/config"
	"github.com/adversing/ccat/internal/highlight"
	"github.com/adversing/ccat/internal/logger"
	"github.com/adversing/ccat/internal/render"
	"github.com/adversing/ccat/internal/resolver"
	ccaterrors "github.com/adversing/ccat/pkg/errors"
)

// Highlighter coordinates one highlighting run per call. The catalog it holds
// is loaded once and shared read-only; every run constructs its own session
// and parse state, so a Highlighter is safe for concurrent use.
type Highlighter struct {
	catalog *catalog.Catalog
	log     *logger.Logger
}

// New constructs a Highlighter over the given catalog. The logger may be nil.
func New(cat *catalog.Catalog, log *logger.Logger) *Highlighter {
	return &Highlighter{catalog: cat, log: log}
}

// Catalog exposes the underlying catalog for enumeration by callers.
func (h *Highlighter) Catalog() *catalog.Catalog {
	return h.catalog
}

// WriteHighlighted streams the rendered content to w, line by line. The theme
// is resolved before any tokenization so a missing theme fails fast; a
// tokenization failure aborts the run, and streaming callers may then have
// observed truncated output.
func (h *Highlighter) WriteHighlighted(w io.Writer, content, path string, cfg config.Config) error {
	theme, ok := h.catalog.ThemeByName(cfg.Theme)
	if !ok {
		return ccaterrors.NewThemeNotFoundError(cfg.Theme)
	}

	grammar, err := resolver.Resolve(h.catalog, content, path, cfg)
	if err != nil {
		return err
	}

	h.log.WithFields(map[string]any{
		"path":    path,
		"grammar": grammar.Config().Name,
		"theme":   cfg.Theme,
	}).Debug("resolved highlighting inputs")

	session, err := highlight.NewSession(grammar, theme, content)
	if err != nil {
		return err
	}

	opts := render.Options{LineNumbers: cfg.LineNumbers}
	for session.Scan() {
		line := session.Line()
		if _, err := io.WriteString(w, render.Line(line.Number, line.Runs, opts)); err != nil {
			return err
		}
	}

	return nil
}

// HighlightContent renders the full content into a single string.
func (h *Highlighter) HighlightContent(content, path string, cfg config.Config) (string, error) {
	var sb strings.Builder
	if err := h.WriteHighlighted(&sb, content, path, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// HighlightFile reads path from disk and renders it. Read failures surface as
// a ReadError, distinguishable from the highlighting errors.
func (h *Highlighter) HighlightFile(path string, cfg config.Config) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", ccaterrors.NewReadError(path, err)
	}
	return h.HighlightContent(string(data), path, cfg)
}
