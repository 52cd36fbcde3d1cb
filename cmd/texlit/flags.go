package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// texlitFlags holds all CLI flags.
type texlitFlags struct {
	config         string
	output         string
	from           string
	workers        int
	keepComments   bool
	keepWhitespace bool
	quiet          bool
	verbose        bool
	version        bool
}

// parseFlags parses CLI flags and returns the positional arguments.
func parseFlags(args []string) (*texlitFlags, []string, error) {
	fs := flag.NewFlagSet("texlit", flag.ContinueOnError)
	f := &texlitFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVar(&f.from, "from", "", "source scheme of tagged text (default: devanagari)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for batch mode (0 = auto)")
	fs.BoolVar(&f.keepComments, "keep-comments", false, "do not strip comment environments")
	fs.BoolVar(&f.keepWhitespace, "keep-whitespace", false, "do not clean trailing whitespace and blank lines")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
