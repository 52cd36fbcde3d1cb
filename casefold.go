package texlit

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeCase applies a case convention to a transliterated fragment
// without corrupting combining diacritic sequences.
//
// The fragment is NFC-composed first so that base-plus-mark pairs with a
// precomposed form (ā, ṛ, ...) case-map as single runes. Marks without a
// precomposed form (the candrabindu m̐) stay attached to their base: case
// mapping changes the base letter only and never touches the mark.
//
// Title case capitalizes only the first letter-unit of the whole
// fragment; the fragment is treated as a single term, not split on
// internal spaces.
//
// Identity returns the input bytes unchanged; only title and upper emit
// the NFC-composed form. NFC rewrites composition-excluded characters
// (Devanagari क़ U+0958 decomposes), so the untouched case kind must not
// normalize.
func NormalizeCase(text string, kind CaseKind) (string, error) {
	if text == "" {
		return "", nil
	}

	composed := norm.NFC.String(text)
	if err := checkCombining(composed); err != nil {
		return "", err
	}

	switch kind {
	case CaseIdentity:
		return text, nil
	case CaseUpper:
		return strings.ToUpper(composed), nil
	case CaseTitle:
		return titleCase(composed), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCaseKind, kind)
	}
}

// checkCombining rejects fragments where a combining mark has no base
// character to attach to. Malformed input is a fatal error, not silently
// corrected. Marks of any class (nonspacing, spacing, enclosing) need a
// base and keep it for the marks that follow: a Devanagari matra plus
// anusvara is one valid cluster on a single consonant.
func checkCombining(text string) error {
	haveBase := false
	for i, r := range text {
		if unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me) {
			if !haveBase {
				return fmt.Errorf("%w: U+%04X at offset %d", ErrDanglingCombiningMark, r, i)
			}
			continue
		}
		haveBase = unicode.IsLetter(r)
	}
	return nil
}

// titleCase upper-cases the first letter in the fragment and leaves
// everything else untouched. Leading digits or punctuation are skipped;
// a fragment with no letters comes back unchanged.
func titleCase(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 1)

	done := false
	for _, r := range text {
		if !done && unicode.IsLetter(r) {
			b.WriteString(strings.ToUpper(string(r)))
			done = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
