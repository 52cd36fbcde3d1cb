package texlit

import (
	"fmt"
)

// Scheme identifies a transliteration scheme.
type Scheme string

// Supported schemes. SchemeDevanagari is the source script; the rest are
// roman target schemes.
const (
	SchemeDevanagari Scheme = "devanagari"
	SchemeIAST       Scheme = "iast"
	SchemeHK         Scheme = "hk"
	SchemeVelthuis   Scheme = "velthuis"
	SchemeSLP1       Scheme = "slp1"
	SchemeWX         Scheme = "wx"
	SchemeITRANS     Scheme = "itrans"
)

// CaseKind selects the case convention applied to a transliterated
// fragment. The spelling of a tag name picks the kind: \iast{} keeps the
// engine output as-is, \Iast{} title-cases it, \IAST{} upper-cases it.
type CaseKind string

// Case kinds.
const (
	CaseIdentity CaseKind = "identity"
	CaseTitle    CaseKind = "title"
	CaseUpper    CaseKind = "upper"
)

// TagSpec maps one recognized tag name to its target scheme and case
// convention. Name is the command name without the leading backslash and
// is matched case-sensitively.
type TagSpec struct {
	Name   string
	Target Scheme
	Case   CaseKind
}

// Validate checks that the spec has a usable name and a known case kind.
// Target schemes are validated by the engine at rewrite time so that a
// custom Transliterator can support schemes this package does not know.
func (t TagSpec) Validate() error {
	if !isValidTagName(t.Name) {
		return fmt.Errorf("%w: %q (must be ASCII letters or digits, starting with a letter)", ErrInvalidTagName, t.Name)
	}
	switch t.Case {
	case CaseIdentity, CaseTitle, CaseUpper:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCaseKind, t.Case)
	}
}

// isValidTagName reports whether name is usable as a tag name: ASCII
// letters and digits, starting with a letter. Digits are allowed because
// scheme-derived names like slp1 carry them; the scanner matches names
// literally, so the usual LaTeX letters-only rule does not bind here.
func isValidTagName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// TagOccurrence is one located tag invocation in a document.
// Offsets are byte offsets into the original document text: Start is the
// backslash that opens the invocation, End is one past the closing brace.
// Arg is the raw text between the outermost braces, with nested brace
// groups and escapes preserved verbatim.
type TagOccurrence struct {
	Name  string
	Start int
	End   int
	Arg   string
}

// Input contains finalization parameters.
type Input struct {
	Document string // full document text
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	source          Scheme
	stripComments   bool
	cleanWhitespace bool
}

// WithSourceScheme sets the scheme the text inside tags is written in.
// The default is Devanagari.
func WithSourceScheme(s Scheme) Option {
	return func(svc *Service) {
		svc.cfg.source = s
	}
}

// WithTags replaces the default tag table.
// Panics if specs is empty (programmer error, similar to time.NewTicker);
// individual specs are validated when the service runs.
func WithTags(specs []TagSpec) Option {
	if len(specs) == 0 {
		panic("texlit: WithTags requires at least one spec")
	}
	return func(svc *Service) {
		svc.tags = append([]TagSpec(nil), specs...)
	}
}

// WithTransliterator swaps the conversion engine (e.g., a mock in tests).
func WithTransliterator(tr Transliterator) Option {
	return func(svc *Service) {
		svc.translit = tr
	}
}

// WithCommentStripping toggles removal of comment environments.
func WithCommentStripping(enabled bool) Option {
	return func(svc *Service) {
		svc.cfg.stripComments = enabled
	}
}

// WithWhitespaceCleaning toggles trailing-whitespace and blank-line cleanup.
func WithWhitespaceCleaning(enabled bool) Option {
	return func(svc *Service) {
		svc.cfg.cleanWhitespace = enabled
	}
}
