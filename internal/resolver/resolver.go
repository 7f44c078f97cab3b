// Package resolver decides which grammar applies to a file. Detection is a
// deterministic, short-circuiting cascade: forced name, extension override
// table, engine extension lookup, first-line heuristics, plain text.
package resolver

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"

	"github.com/adversing/ccat/internal/catalog"
	"github.com/adversing/ccat/internal/config"
	ccaterrors "github.com/adversing/ccat/pkg/errors"
)

// strategy attempts one detection step. A nil result means "no opinion" and
// hands over to the next strategy.
type strategy func(cat *catalog.Catalog, content, path string) chroma.Lexer

// strategies are evaluated in order; the first non-nil result wins. The
// override table runs before the engine's own extension matching so known-bad
// mappings can be corrected, and first-line detection runs after extension
// matching so a correctly-named file is never overridden by heuristic noise
// in its content.
var strategies = []strategy{
	byOverrideTable,
	byExtension,
	byFirstLine,
}

// Resolve produces the single grammar to use for the given inputs.
//
// With cfg.Syntax set, the name is looked up verbatim and a miss is surfaced
// as a SyntaxNotFoundError rather than falling back silently. Automatic
// detection is total: its worst case is plain text.
func Resolve(cat *catalog.Catalog, content, path string, cfg config.Config) (chroma.Lexer, error) {
	if cfg.Syntax != "" {
		grammar, ok := cat.GrammarByName(cfg.Syntax)
		if !ok {
			return nil, ccaterrors.NewSyntaxNotFoundError(cfg.Syntax)
		}
		return grammar, nil
	}

	for _, detect := range strategies {
		if grammar := detect(cat, content, path); grammar != nil {
			return grammar, nil
		}
	}

	return cat.PlainText(), nil
}

func byOverrideTable(cat *catalog.Catalog, _ string, path string) chroma.Lexer {
	name, ok := OverrideFor(extensionOf(path))
	if !ok {
		return nil
	}
	grammar, ok := cat.GrammarByName(name)
	if !ok {
		return nil
	}
	return grammar
}

func byExtension(cat *catalog.Catalog, _ string, path string) chroma.Lexer {
	grammar, ok := cat.GrammarByExtension(extensionOf(path))
	if !ok {
		return nil
	}
	return grammar
}

func byFirstLine(cat *catalog.Catalog, content string, _ string) chroma.Lexer {
	grammar, ok := cat.GrammarByFirstLine(content)
	if !ok {
		return nil
	}
	return grammar
}

// extensionOf extracts the text after the last '.' in the final path segment,
// lowercased. Empty string when the segment has no dot.
func extensionOf(path string) string {
	ext := filepath.Ext(filepath.Base(path))
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
