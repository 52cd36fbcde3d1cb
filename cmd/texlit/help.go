package main

import (
	"fmt"
	"io"
)

// printUsage writes CLI usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `texlit - transliterate tagged Devanagari in LaTeX documents

Usage:
  texlit [flags] <input.tex> <output.tex>
  texlit [flags] -o <dir> <input.tex> [<input.tex> ...]

The spelling of a tag selects the case convention:
  \iast{...}  IAST, as-is      \hk{...}       Harvard-Kyoto
  \Iast{...}  IAST, Title      \velthuis{...} Velthuis
  \IAST{...}  IAST, UPPER      \slp1{...}     SLP1
  \dn{...}    keep Devanagari  \wx{...}       WX, \itrans{...} ITRANS

Flags:
  -c, --config string     config file name or path
  -o, --output string     output file, or directory in batch mode
      --from string       source scheme of tagged text (default: devanagari)
  -w, --workers int       parallel workers for batch mode (0 = auto)
      --keep-comments     do not strip \begin{comment} blocks
      --keep-whitespace   do not clean trailing whitespace and blank lines
  -q, --quiet             only show errors
  -v, --verbose           show per-file progress
      --version           print version and exit

Exit codes:
  0 success   2 usage or config error   3 I/O error
  1 general   4 malformed document or transliteration failure
`)
}
