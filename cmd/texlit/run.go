package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	texlit "github.com/avasant/go-texlit"
	"github.com/avasant/go-texlit/internal/config"
	"github.com/avasant/go-texlit/internal/fileutil"
)

// filePermissions for written documents: rw-r--r--.
const filePermissions = 0o644

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrBadArgs      = errors.New("expected <input> <output>, or inputs with --output")
	ErrOutputNotDir = errors.New("multiple inputs require --output to be an existing directory")
	ErrReadInput    = errors.New("failed to read input file")
	ErrWriteOutput  = errors.New("failed to write output file")
)

// Finalizer is the interface for the finalization service.
type Finalizer interface {
	Finalize(ctx context.Context, input texlit.Input) (string, error)
}

// Compile-time interface implementation check.
var _ Finalizer = (*texlit.Service)(nil)

// job pairs one input document with its output path.
type job struct {
	inputPath  string
	outputPath string
}

// result holds the outcome of one finalized document.
type result struct {
	job      job
	err      error
	duration time.Duration
}

// run loads config, builds the service, resolves jobs, and processes
// them. It is the whole CLI behind flag parsing, so tests can drive it
// directly.
func run(ctx context.Context, f *texlitFlags, args []string, stderr io.Writer) error {
	cfg, err := loadConfig(f)
	if err != nil {
		return err
	}

	svc, err := buildService(cfg, f)
	if err != nil {
		return err
	}

	jobs, err := resolveJobs(args, f, cfg)
	if err != nil {
		return err
	}

	results := processJobs(ctx, svc, jobs, resolveWorkers(f.workers, len(jobs)))

	var firstErr error
	for _, r := range results {
		if r.err != nil {
			// Per-file context matters in batch mode; a single file's
			// error reaches the caller unadorned.
			if len(results) > 1 {
				fmt.Fprintf(stderr, "texlit: %s: %v\n", r.job.inputPath, r.err)
			}
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		if f.verbose {
			fmt.Fprintf(stderr, "Finalized %s -> %s (%s)\n",
				r.job.inputPath, r.job.outputPath, r.duration.Round(time.Millisecond))
		}
	}
	if firstErr != nil {
		return firstErr
	}
	if !f.quiet {
		fmt.Fprintf(stderr, "Finalized %d file(s)\n", len(results))
	}
	return nil
}

// loadConfig returns the named config, or defaults when -c is not set.
func loadConfig(f *texlitFlags) (*config.Config, error) {
	if f.config == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(f.config)
}

// buildService assembles the texlit service from config and flags.
// Flags win over config for the source scheme and cleanup toggles.
func buildService(cfg *config.Config, f *texlitFlags) (*texlit.Service, error) {
	source := texlit.Scheme(cfg.Source)
	if f.from != "" {
		source = texlit.Scheme(f.from)
	}

	tags := texlit.DefaultTagSpecs(source)
	for _, row := range cfg.Tags {
		tags = append(tags, texlit.TagSpec{
			Name:   row.Name,
			Target: texlit.Scheme(row.Scheme),
			Case:   caseKind(row.Case),
		})
	}

	return texlit.New(
		texlit.WithSourceScheme(source),
		texlit.WithTags(tags),
		texlit.WithCommentStripping(!cfg.Cleanup.KeepComments && !f.keepComments),
		texlit.WithWhitespaceCleaning(!cfg.Cleanup.KeepWhitespace && !f.keepWhitespace),
	), nil
}

// caseKind maps a config case string to a CaseKind; empty means identity.
func caseKind(s string) texlit.CaseKind {
	switch s {
	case "title":
		return texlit.CaseTitle
	case "upper":
		return texlit.CaseUpper
	default:
		return texlit.CaseIdentity
	}
}

// resolveJobs maps positional arguments to (input, output) pairs.
// Without --output, exactly two positionals are expected: input and
// output. With --output, every positional is an input; a single input
// may target an output file, while multiple inputs require an existing
// directory, each output keeping its input's base name.
func resolveJobs(args []string, f *texlitFlags, cfg *config.Config) ([]job, error) {
	if len(args) == 0 {
		return nil, ErrNoInput
	}

	inputs := make([]string, len(args))
	copy(inputs, args)

	output := f.output
	if output == "" && cfg.Output.DefaultDir != "" {
		output = cfg.Output.DefaultDir
	}

	if output == "" {
		if len(inputs) != 2 {
			return nil, fmt.Errorf("%w: got %d argument(s)", ErrBadArgs, len(inputs))
		}
		return []job{{inputPath: resolveInput(inputs[0], cfg), outputPath: inputs[1]}}, nil
	}

	if len(inputs) == 1 && !fileutil.DirExists(output) {
		return []job{{inputPath: resolveInput(inputs[0], cfg), outputPath: output}}, nil
	}

	if !fileutil.DirExists(output) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotDir, output)
	}

	jobs := make([]job, len(inputs))
	for i, input := range inputs {
		resolved := resolveInput(input, cfg)
		jobs[i] = job{
			inputPath:  resolved,
			outputPath: filepath.Join(output, filepath.Base(resolved)),
		}
	}
	return jobs, nil
}

// resolveInput applies the configured default input directory to
// relative bare-name inputs.
func resolveInput(input string, cfg *config.Config) string {
	if cfg.Input.DefaultDir == "" || filepath.IsAbs(input) || fileutil.FileExists(input) {
		return input
	}
	return filepath.Join(cfg.Input.DefaultDir, input)
}

// resolveWorkers picks the worker count for batch mode.
func resolveWorkers(requested, jobCount int) int {
	workers := requested
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > jobCount {
		workers = jobCount
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// processJobs finalizes documents concurrently. Documents are
// independent, so workers share the service; each document itself is
// processed in one sequential pass.
func processJobs(ctx context.Context, svc Finalizer, jobs []job, workers int) []result {
	if len(jobs) == 0 {
		return nil
	}

	results := make([]result, len(jobs))
	queue := make(chan int, len(jobs))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = result{job: jobs[idx], err: ctx.Err()}
					continue
				}
				results[idx] = processOne(ctx, svc, jobs[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// processOne reads, finalizes, and atomically writes a single document.
func processOne(ctx context.Context, svc Finalizer, j job) result {
	start := time.Now()
	r := result{job: j}

	doc, err := fileutil.ReadTextFile(j.inputPath)
	if err != nil {
		r.err = fmt.Errorf("%w: %v", ErrReadInput, err)
		r.duration = time.Since(start)
		return r
	}

	finalized, err := svc.Finalize(ctx, texlit.Input{Document: doc})
	if err != nil {
		r.err = err
		r.duration = time.Since(start)
		return r
	}

	if err := fileutil.WriteFileAtomic(j.outputPath, finalized, filePermissions); err != nil {
		r.err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	r.duration = time.Since(start)
	return r
}
