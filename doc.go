// Package texlit rewrites Devanagari text inside recognized LaTeX tags
// into a target transliteration scheme.
//
// # Quick Start
//
// Create a service and finalize a document:
//
//	svc := texlit.New()
//	out, err := svc.Finalize(ctx, texlit.Input{
//	    Document: `The word \iast{धर्म} means law.`,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// out == `The word \iast{dharma} means law.`
//
// Everything outside a recognized tag's argument is preserved byte for
// byte. The spelling of the tag selects the case convention: \iast{} is
// emitted as-is, \Iast{} is title-cased, \IAST{} is upper-cased. The
// same three spellings exist for every supported scheme (hk, velthuis,
// slp1, wx, itrans), and \dn{} passes Devanagari through unchanged.
//
// # Finalization Pipeline
//
// Finalize runs these stages in order:
//
//  1. Tag rewriting: scan for recognized tag invocations, transliterate
//     each argument, apply the tag's case convention.
//  2. Comment removal: strip \begin{comment}...\end{comment} blocks.
//  3. Whitespace cleaning: trim trailing whitespace, compress runs of
//     blank lines.
//
// Stages 2 and 3 can be disabled with WithCommentStripping(false) and
// WithWhitespaceCleaning(false).
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := texlit.New(
//	    texlit.WithSourceScheme(texlit.SchemeDevanagari),
//	    texlit.WithTags(specs),
//	)
//
// The tag table is an immutable value handed to the service at
// construction; tests can swap in alternate tables or a mock engine via
// WithTransliterator without touching global state.
//
// # Errors
//
// A malformed document (unterminated tag argument, combining mark with
// no base letter) aborts the run: no partial output is ever produced.
// Errors carry the tag name and the byte offset of the offending
// invocation in the original document.
package texlit
