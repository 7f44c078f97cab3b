// Package highlight implements the per-file highlighting session: a lazy,
// forward-only pass over the content that turns each line into style runs
// while threading the grammar engine's parse state from one line to the next.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"

	ccaterrors "github.com/adversing/ccat/pkg/errors"
)

// Run is a maximal span of line text sharing one resolved style. Only the
// 24-bit foreground color channel of the style is consumed downstream.
type Run struct {
	Style chroma.StyleEntry
	Text  string
}

// Line is one source line with its 1-based number and style runs. The runs'
// text concatenates to the original line, line-ending characters included.
type Line struct {
	Number int
	Runs   []Run
}

// Session walks a text buffer line by line in the manner of bufio.Scanner.
// The engine's token iterator is the parse state: it is created fresh per
// session, advanced in place as lines are consumed, and never shared or
// reset mid-stream. A Session is not restartable.
type Session struct {
	theme *chroma.Style

	// next is the engine-owned token stream; carry holds the unconsumed tail
	// of a token that spans a line boundary (block comments, raw strings).
	next  chroma.Iterator
	carry chroma.Token

	lines   []string
	index   int
	current Line
}

// NewSession asks the grammar engine to tokenize content and prepares the
// line-by-line walk. An engine failure here is fatal for the whole run: a
// broken parse state would produce garbage for every line.
func NewSession(grammar chroma.Lexer, theme *chroma.Style, content string) (*Session, error) {
	iterator, err := chroma.Coalesce(grammar).Tokenise(nil, content)
	if err != nil {
		return nil, ccaterrors.NewTokenizeError(grammar.Config().Name, err)
	}

	return &Session{
		theme: theme,
		next:  iterator,
		lines: SplitLines(content),
	}, nil
}

// Scan advances to the next line. It returns false once every line of the
// content has been produced.
func (s *Session) Scan() bool {
	if s.index >= len(s.lines) {
		return false
	}

	line := s.lines[s.index]
	s.index++

	runs := make([]Run, 0, 8)
	remaining := line
	for len(remaining) > 0 {
		token := s.carry
		s.carry = chroma.Token{}
		if token.Value == "" {
			token = s.next()
		}

		if token == chroma.EOF || token.Value == "" {
			// Engine stream ran short of the raw text (some lexers normalize
			// line endings internally). Emit the rest with the default style
			// so output always reproduces the input bytes.
			runs = append(runs, Run{Style: s.theme.Get(chroma.Text), Text: remaining})
			break
		}

		n := len(token.Value)
		if n > len(remaining) {
			n = len(remaining)
		}

		// Slice the line's own bytes rather than the token value so the
		// rendered text is verbatim input even if the engine rewrote it.
		runs = append(runs, Run{Style: s.theme.Get(token.Type), Text: remaining[:n]})
		remaining = remaining[n:]

		token.Value = token.Value[n:]
		if token.Value != "" {
			s.carry = token
		}
	}

	s.current = Line{Number: s.index, Runs: runs}
	return true
}

// Line returns the most recently scanned line. Valid only after a Scan call
// that returned true.
func (s *Session) Line() Line {
	return s.current
}

// SplitLines splits content after every newline, preserving the line-ending
// characters: the engine's end-of-line rules are sensitive to their presence.
// A trailing fragment without a newline still forms a final line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(content, "\n")+1)
	for len(content) > 0 {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}
