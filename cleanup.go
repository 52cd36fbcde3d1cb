package texlit

import "regexp"

// Precompiled regex patterns for the cleanup stages.
var (
	// \begin{comment}...\end{comment}, across lines, non-greedy
	commentEnvironment = regexp.MustCompile(`(?s)\\begin\{comment\}.*?\\end\{comment\}`)

	// Whitespace before a newline
	trailingWhitespace = regexp.MustCompile(`[ \t\r]+\n`)

	// Compress multiple blank lines to one
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// StripComments removes comment environments from a LaTeX document.
// Only the comment package's block environment is handled; %-comments
// are left alone because trailing % is significant in LaTeX sources.
func StripComments(content string) string {
	return commentEnvironment.ReplaceAllString(content, "")
}

// TrimTrailingWhitespace removes spaces and tabs before line endings.
func TrimTrailingWhitespace(content string) string {
	return trailingWhitespace.ReplaceAllString(content, "\n")
}

// CompressBlankLines limits consecutive blank lines to 1 maximum.
func CompressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
