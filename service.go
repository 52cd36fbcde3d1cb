package texlit

import (
	"context"
	"fmt"
)

// Service orchestrates the finalization pipeline: tag rewriting, comment
// removal, whitespace cleaning. A Service holds no per-document state
// and is safe for concurrent use across independent documents.
type Service struct {
	cfg      serviceConfig
	translit Transliterator
	tags     []TagSpec
}

// New creates a Service with default configuration: Devanagari source,
// the full default tag table, comment stripping and whitespace cleaning
// enabled. Use options to customize behavior.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			source:          SchemeDevanagari,
			stripComments:   true,
			cleanWhitespace: true,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create defaults not injected (e.g., by tests)
	if s.translit == nil {
		s.translit = NewSanscriptTransliterator()
	}
	if s.tags == nil {
		s.tags = DefaultTagSpecs(s.cfg.source)
	}

	return s
}

// Finalize runs the full pipeline and returns the finalized document.
// Any error aborts the run with no partial result. The context is
// checked between stages so batch drivers can cancel between documents.
func (s *Service) Finalize(ctx context.Context, input Input) (string, error) {
	rw, err := NewRewriter(s.tags, s.translit, s.cfg.source)
	if err != nil {
		return "", err
	}

	text, err := rw.Rewrite(input.Document)
	if err != nil {
		return "", fmt.Errorf("rewriting tags: %w", err)
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if s.cfg.stripComments {
		text = StripComments(text)
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if s.cfg.cleanWhitespace {
		text = TrimTrailingWhitespace(text)
		text = CompressBlankLines(text)
	}

	return text, nil
}
