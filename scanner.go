package texlit

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Scanner walks document text and produces recognized tag occurrences in
// left-to-right order. It is a lazy, finite, non-restartable producer:
// each call to Next resumes past the previous occurrence's end offset and
// never backtracks, so occurrences cannot overlap.
type Scanner struct {
	text  string
	names []string // recognized tag names, longest first
	pos   int
}

// NewScanner creates a scanner for text over the given tag table.
func NewScanner(text string, specs []TagSpec) *Scanner {
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.Name
	}
	// Longest name wins when one recognized name prefixes another.
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return &Scanner{text: text, names: names}
}

// Next returns the next tag occurrence, or (nil, nil) when the document
// is exhausted. A recognized name not immediately followed by an opening
// brace is ordinary text and is skipped. An argument whose brace group
// never closes before end of document returns ErrUnterminatedTag.
//
// A recognized tag nested inside another recognized tag's argument is
// not resolved: the outer balanced-brace scan carries it verbatim into
// the argument text.
func (s *Scanner) Next() (*TagOccurrence, error) {
	for s.pos < len(s.text) {
		if s.text[s.pos] != '\\' {
			s.pos++
			continue
		}

		name := s.matchName(s.pos)
		if name == "" {
			// Backslash escapes (or commands) the following rune; it
			// cannot start a recognized invocation, so skip both.
			_, n := utf8.DecodeRuneInString(s.text[s.pos+1:])
			s.pos += 1 + n
			continue
		}

		start := s.pos
		open := start + 1 + len(name) // index of '{'
		arg, end, ok := scanBalanced(s.text, open)
		if !ok {
			return nil, fmt.Errorf("%w: \\%s at offset %d", ErrUnterminatedTag, name, start)
		}

		s.pos = end
		return &TagOccurrence{Name: name, Start: start, End: end, Arg: arg}, nil
	}
	return nil, nil
}

// matchName returns the recognized tag name invoked at pos (the index of
// a backslash), or "" if no name followed by '{' matches there.
func (s *Scanner) matchName(pos int) string {
	rest := s.text[pos+1:]
	for _, name := range s.names {
		if strings.HasPrefix(rest, name) && len(rest) > len(name) && rest[len(name)] == '{' {
			return name
		}
	}
	return ""
}

// scanBalanced extracts the brace group opening at open (the index of
// '{'). It counts unescaped braces; a backslash escapes the following
// rune, so \{ and \} are copied into the argument without affecting
// depth. Returns the argument text, the offset one past the closing
// brace, and whether the group was terminated.
func scanBalanced(text string, open int) (arg string, end int, ok bool) {
	depth := 1
	i := open + 1
	for i < len(text) {
		switch text[i] {
		case '\\':
			_, n := utf8.DecodeRuneInString(text[i+1:])
			i += 1 + n
		case '{':
			depth++
			i++
		case '}':
			depth--
			i++
			if depth == 0 {
				return text[open+1 : i-1], i, true
			}
		default:
			i++
		}
	}
	return "", 0, false
}
