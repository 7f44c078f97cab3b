package catalog

import (
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Catalog holds the loaded set of grammars and themes and exposes name-based
// lookup and enumeration. It is built once and is safe for concurrent
// read-only use afterwards.
type Catalog struct {
	registry *chroma.LexerRegistry
	themes   map[string]*chroma.Style
}

// New builds a Catalog over the grammar engine's bundled lexers and styles.
// The built-in default theme is registered alongside the engine's own styles.
func New() *Catalog {
	themes := make(map[string]*chroma.Style, len(styles.Registry)+1)
	for name, style := range styles.Registry {
		themes[name] = style
	}
	if _, ok := themes[base16OceanDark.Name]; !ok {
		themes[base16OceanDark.Name] = base16OceanDark
	}

	return &Catalog{
		registry: lexers.GlobalLexerRegistry,
		themes:   themes,
	}
}

// GrammarByName looks up a grammar by its exact display name. Lookup is
// case-sensitive; aliases are not consulted.
func (c *Catalog) GrammarByName(name string) (chroma.Lexer, bool) {
	for _, lexer := range c.registry.Lexers {
		if lexer.Config().Name == name {
			return lexer, true
		}
	}
	return nil, false
}

// GrammarByExtension looks up a grammar by file extension (no leading dot),
// delegating to the engine's own filename matching.
func (c *Catalog) GrammarByExtension(ext string) (chroma.Lexer, bool) {
	if ext == "" {
		return nil, false
	}
	lexer := c.registry.Match("file." + ext)
	if lexer == nil {
		return nil, false
	}
	return lexer, true
}

// GrammarByFirstLine runs the engine's content heuristics (shebang lines,
// XML prologs and similar markers) against the full content.
func (c *Catalog) GrammarByFirstLine(content string) (chroma.Lexer, bool) {
	lexer := c.registry.Analyse(content)
	if lexer == nil {
		return nil, false
	}
	return lexer, true
}

// PlainText returns the fallback grammar. It always succeeds.
func (c *Catalog) PlainText() chroma.Lexer {
	return lexers.Fallback
}

// ThemeByName looks up a theme by its exact display name.
func (c *Catalog) ThemeByName(name string) (*chroma.Style, bool) {
	theme, ok := c.themes[name]
	return theme, ok
}

// GrammarNames returns the display names of all loaded grammars, sorted.
func (c *Catalog) GrammarNames() []string {
	names := make([]string, 0, len(c.registry.Lexers))
	for _, lexer := range c.registry.Lexers {
		names = append(names, lexer.Config().Name)
	}
	sort.Strings(names)
	return names
}

// ThemeNames returns the display names of all loaded themes, sorted.
func (c *Catalog) ThemeNames() []string {
	names := make([]string, 0, len(c.themes))
	for name := range c.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
