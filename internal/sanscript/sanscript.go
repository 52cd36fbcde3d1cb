// Package sanscript converts Devanagari text to roman transliteration
// schemes (IAST, Harvard-Kyoto, Velthuis, SLP1, WX, ITRANS).
//
// Conversion is cluster-aware: a consonant carries the inherent vowel
// "a" unless it is followed by a vowel sign (which substitutes its own
// vowel) or a virama (which elides it). Characters outside the
// Devanagari tables pass through unchanged, so stray markup mixed into
// the input is never mangled.
package sanscript

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Scheme names accepted by Transliterate.
const (
	Devanagari   = "devanagari"
	IAST         = "iast"
	HarvardKyoto = "hk"
	Velthuis     = "velthuis"
	SLP1         = "slp1"
	WX           = "wx"
	ITRANS       = "itrans"
)

// Sentinel errors for scheme lookup.
var (
	ErrUnknownScheme     = errors.New("unknown scheme")
	ErrUnsupportedSource = errors.New("unsupported source scheme")
)

// Supported reports whether name is a scheme Transliterate accepts as a
// target.
func Supported(name string) bool {
	if name == Devanagari {
		return true
	}
	_, ok := lookups[name]
	return ok
}

// Schemes returns the supported target scheme names, sorted.
func Schemes() []string {
	names := make([]string, 0, len(lookups)+1)
	names = append(names, Devanagari)
	for name := range lookups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transliterate converts text from one scheme to another. It is pure and
// deterministic. Only Devanagari is supported as a source; from == to
// returns the input unchanged.
func Transliterate(text, from, to string) (string, error) {
	if from == to {
		if !Supported(from) {
			return "", fmt.Errorf("%w: %q", ErrUnknownScheme, from)
		}
		return text, nil
	}
	if from != Devanagari {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSource, from)
	}
	tb, ok := lookups[to]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, to)
	}
	return toRoman(text, tb), nil
}

// toRoman walks the Devanagari text rune by rune, tracking whether a
// consonant is still awaiting its vowel. The inherent "a" is emitted
// when the next character is not a vowel sign or virama, and at end of
// input.
func toRoman(text string, tb *lookup) string {
	var b strings.Builder
	b.Grow(len(text))

	pending := false
	flush := func() {
		if pending {
			b.WriteString(tb.inherent)
			pending = false
		}
	}

	for _, r := range text {
		if r == virama {
			pending = false
			continue
		}
		if v, ok := tb.consonants[r]; ok {
			flush()
			b.WriteString(v)
			pending = true
			continue
		}
		if v, ok := tb.marks[r]; ok {
			b.WriteString(v)
			pending = false
			continue
		}
		if v, ok := tb.vowels[r]; ok {
			flush()
			b.WriteString(v)
			continue
		}
		if v, ok := tb.symbols[r]; ok {
			flush()
			b.WriteString(v)
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()

	return b.String()
}
