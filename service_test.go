package texlit

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFinalizeEndToEnd(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lower tag keeps engine case",
			input:    `The word \iast{धर्म} means law.`,
			expected: `The word \iast{dharma} means law.`,
		},
		{
			name:     "title tag capitalizes first letter",
			input:    `\Iast{धर्म}`,
			expected: `\Iast{Dharma}`,
		},
		{
			name:     "upper tag with diacritics intact",
			input:    `\IAST{कृष्ण}`,
			expected: `\IAST{KṚṢṆA}`,
		},
		{
			name:     "harvard-kyoto tag",
			input:    `\hk{संस्कृतम्}`,
			expected: `\hk{saMskRtam}`,
		},
		{
			name:     "slp1 tag",
			input:    `\slp1{धर्म}`,
			expected: `\slp1{Darma}`,
		},
		{
			name:     "velthuis tag",
			input:    `\velthuis{संस्कृतम्}`,
			expected: `\velthuis{sa.msk.rtam}`,
		},
		{
			name:     "passthrough tag keeps devanagari",
			input:    `\dn{धर्म}`,
			expected: `\dn{धर्म}`,
		},
		{
			name:     "passthrough keeps matra plus anusvara clusters",
			input:    `\dn{सीतां}`,
			expected: `\dn{सीतां}`,
		},
		{
			name:     "mixed tags in one document",
			input:    `\iast{योग} and \Iast{योग} and \IAST{योग}`,
			expected: `\iast{yoga} and \Iast{Yoga} and \IAST{YOGA}`,
		},
		{
			name:     "stray markup in argument survives",
			input:    `\iast{धर्म\textbf{x}}`,
			expected: `\iast{dharma\textbf{x}}`,
		},
		{
			name:     "plain document unchanged",
			input:    `\section{Intro} nothing to do here`,
			expected: `\section{Intro} nothing to do here`,
		},
	}

	svc := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Finalize(context.Background(), Input{Document: tt.input})
			if err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Finalize() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFinalizeCleanupStages(t *testing.T) {
	input := "text   \n\\begin{comment}\nsecret\n\\end{comment}\n\n\n\nmore\n"

	t.Run("cleanup enabled by default", func(t *testing.T) {
		got, err := New().Finalize(context.Background(), Input{Document: input})
		if err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if strings.Contains(got, "secret") {
			t.Errorf("comment block not stripped: %q", got)
		}
		if strings.Contains(got, "   \n") {
			t.Errorf("trailing whitespace not trimmed: %q", got)
		}
		if strings.Contains(got, "\n\n\n") {
			t.Errorf("blank lines not compressed: %q", got)
		}
	})

	t.Run("cleanup disabled", func(t *testing.T) {
		svc := New(
			WithCommentStripping(false),
			WithWhitespaceCleaning(false),
		)
		got, err := svc.Finalize(context.Background(), Input{Document: input})
		if err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if got != input {
			t.Errorf("Finalize() = %q, want input unchanged", got)
		}
	})
}

func TestFinalizeMalformedDocument(t *testing.T) {
	svc := New()
	_, err := svc.Finalize(context.Background(), Input{Document: `\iast{unterminated`})
	if !errors.Is(err, ErrUnterminatedTag) {
		t.Errorf("Finalize() error = %v, want ErrUnterminatedTag", err)
	}
}

func TestFinalizeCustomTags(t *testing.T) {
	svc := New(WithTags([]TagSpec{
		{Name: "skt", Target: SchemeIAST, Case: CaseIdentity},
	}))

	got, err := svc.Finalize(context.Background(), Input{Document: `\skt{धर्म} \iast{धर्म}`})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	// Only the custom table is recognized; the default iast tag is now
	// ordinary text.
	want := `\skt{dharma} \iast{धर्म}`
	if got != want {
		t.Errorf("Finalize() = %q, want %q", got, want)
	}
}

func TestFinalizeMockEngine(t *testing.T) {
	svc := New(WithTransliterator(upperArg{}))
	got, err := svc.Finalize(context.Background(), Input{Document: `\iast{abc}`})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if got != `\iast{<abc>}` {
		t.Errorf("Finalize() = %q, want mock engine output", got)
	}
}

func TestFinalizeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New()
	_, err := svc.Finalize(ctx, Input{Document: "plain"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Finalize() error = %v, want context.Canceled", err)
	}
}
