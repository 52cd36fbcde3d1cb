package texlit

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/avasant/go-texlit/internal/sanscript"
)

// Transliterator converts a text fragment between schemes. It must be a
// pure function of its inputs: deterministic, no side effects, and total
// over source-valid text mixed with passthrough characters (whitespace,
// punctuation, digits, stray markup), which must come through unchanged.
type Transliterator interface {
	Transliterate(text string, from, to Scheme) (string, error)
}

// sanscriptEngine is the default Transliterator, backed by the built-in
// Devanagari scheme tables.
type sanscriptEngine struct{}

// NewSanscriptTransliterator returns the built-in conversion engine.
func NewSanscriptTransliterator() Transliterator {
	return sanscriptEngine{}
}

func (sanscriptEngine) Transliterate(text string, from, to Scheme) (string, error) {
	out, err := sanscript.Transliterate(text, string(from), string(to))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedScheme, err)
	}
	return out, nil
}

// romanSchemes lists the roman target schemes with default tag families,
// in registry order.
var romanSchemes = []Scheme{
	SchemeIAST,
	SchemeHK,
	SchemeVelthuis,
	SchemeSLP1,
	SchemeWX,
	SchemeITRANS,
}

// passthroughTag is the tag whose argument stays in the source script.
const passthroughTag = "dn"

// DefaultTagSpecs builds the fixed tag table: for every roman scheme,
// the all-lower spelling maps to case-identity, the Title spelling to
// title case, and the ALL-UPPER spelling to upper case. The \dn{} tag
// passes the source script through unchanged. Adding a scheme adds rows
// here; the scanner and rewriter never change.
func DefaultTagSpecs(source Scheme) []TagSpec {
	specs := make([]TagSpec, 0, 3*len(romanSchemes)+1)
	for _, scheme := range romanSchemes {
		name := string(scheme)
		specs = append(specs,
			TagSpec{Name: name, Target: scheme, Case: CaseIdentity},
			TagSpec{Name: titleName(name), Target: scheme, Case: CaseTitle},
			TagSpec{Name: strings.ToUpper(name), Target: scheme, Case: CaseUpper},
		)
	}
	specs = append(specs, TagSpec{Name: passthroughTag, Target: source, Case: CaseIdentity})
	return specs
}

// titleName upper-cases the first letter of a tag name: "iast" -> "Iast".
func titleName(name string) string {
	if name == "" {
		return name
	}
	return string(unicode.ToUpper(rune(name[0]))) + name[1:]
}
