package texlit

import (
	"fmt"
	"strings"
)

// Rewriter replaces the arguments of recognized tag invocations with
// their transliterated, case-normalized form, leaving every other byte
// of the document untouched.
type Rewriter struct {
	byName   map[string]TagSpec
	specs    []TagSpec
	translit Transliterator
	source   Scheme
}

// NewRewriter validates the tag table and builds a rewriter over it.
func NewRewriter(specs []TagSpec, tr Transliterator, source Scheme) (*Rewriter, error) {
	if len(specs) == 0 {
		return nil, ErrNoTags
	}
	byName := make(map[string]TagSpec, len(specs))
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		if _, exists := byName[spec.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, spec.Name)
		}
		byName[spec.Name] = spec
	}
	return &Rewriter{
		byName:   byName,
		specs:    append([]TagSpec(nil), specs...),
		translit: tr,
		source:   source,
	}, nil
}

// Rewrite returns the rewritten document, or an error with no partial
// output. Occurrences are resolved strictly left to right; offsets refer
// to the original text while output is built by append-only
// concatenation, so replacements of a different length never disturb the
// surrounding bytes.
func (rw *Rewriter) Rewrite(doc string) (string, error) {
	sc := NewScanner(doc, rw.specs)

	var out strings.Builder
	out.Grow(len(doc))
	last := 0

	for {
		occ, err := sc.Next()
		if err != nil {
			return "", err
		}
		if occ == nil {
			break
		}

		replacement, err := rw.replacement(occ)
		if err != nil {
			return "", err
		}

		// Copy verbatim up to the invocation, then reconstruct the
		// invocation explicitly around the new argument.
		out.WriteString(doc[last:occ.Start])
		out.WriteByte('\\')
		out.WriteString(occ.Name)
		out.WriteByte('{')
		out.WriteString(replacement)
		out.WriteByte('}')
		last = occ.End
	}

	out.WriteString(doc[last:])
	return out.String(), nil
}

// replacement computes the transliterated, case-normalized argument for
// one occurrence, contextualizing failures with the tag and its offset.
func (rw *Rewriter) replacement(occ *TagOccurrence) (string, error) {
	spec := rw.byName[occ.Name]

	converted, err := rw.translit.Transliterate(occ.Arg, rw.source, spec.Target)
	if err != nil {
		return "", fmt.Errorf("transliterating \\%s at offset %d: %w", occ.Name, occ.Start, err)
	}

	normalized, err := NormalizeCase(converted, spec.Case)
	if err != nil {
		return "", fmt.Errorf("normalizing \\%s at offset %d: %w", occ.Name, occ.Start, err)
	}
	return normalized, nil
}
