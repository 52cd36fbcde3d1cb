package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	texlit "github.com/avasant/go-texlit"
	"github.com/avasant/go-texlit/internal/config"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSingleFile(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.tex", `word \iast{धर्म} end`)
	out := filepath.Join(dir, "out.tex")

	f := &texlitFlags{quiet: true}
	if err := run(context.Background(), f, []string{in, out}, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if got, want := string(data), `word \iast{dharma} end`; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunOutputFlag(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.tex", `\Iast{धर्म}`)
	out := filepath.Join(dir, "final.tex")

	f := &texlitFlags{output: out, quiet: true}
	if err := run(context.Background(), f, []string{in}, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, _ := os.ReadFile(out)
	if got, want := string(data), `\Iast{Dharma}`; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "src")
	outDir := filepath.Join(dir, "build")
	for _, d := range []string{inDir, outDir} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	a := writeInput(t, inDir, "a.tex", `\iast{योग}`)
	b := writeInput(t, inDir, "b.tex", `\IAST{योग}`)

	f := &texlitFlags{output: outDir, workers: 2, quiet: true}
	if err := run(context.Background(), f, []string{a, b}, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	tests := []struct {
		file     string
		expected string
	}{
		{"a.tex", `\iast{yoga}`},
		{"b.tex", `\IAST{YOGA}`},
	}
	for _, tt := range tests {
		data, err := os.ReadFile(filepath.Join(outDir, tt.file))
		if err != nil {
			t.Fatalf("reading %s: %v", tt.file, err)
		}
		if string(data) != tt.expected {
			t.Errorf("%s = %q, want %q", tt.file, data, tt.expected)
		}
	}
}

func TestRunMalformedDocumentNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.tex", `\iast{unterminated`)
	out := filepath.Join(dir, "out.tex")

	f := &texlitFlags{quiet: true}
	err := run(context.Background(), f, []string{in, out}, io.Discard)
	if !errors.Is(err, texlit.ErrUnterminatedTag) {
		t.Fatalf("run() error = %v, want ErrUnterminatedTag", err)
	}

	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output file exists after failed run, want no partial output")
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	f := &texlitFlags{quiet: true}
	err := run(context.Background(), f,
		[]string{filepath.Join(dir, "missing.tex"), filepath.Join(dir, "out.tex")}, io.Discard)
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("run() error = %v, want ErrReadInput", err)
	}
}

func TestRunArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		flags   *texlitFlags
		args    []string
		wantErr error
	}{
		{
			name:    "no arguments",
			flags:   &texlitFlags{quiet: true},
			args:    nil,
			wantErr: ErrNoInput,
		},
		{
			name:    "one positional without output flag",
			flags:   &texlitFlags{quiet: true},
			args:    []string{"only.tex"},
			wantErr: ErrBadArgs,
		},
		{
			name:    "multiple inputs to non-directory",
			flags:   &texlitFlags{output: "not-a-dir.tex", quiet: true},
			args:    []string{"a.tex", "b.tex"},
			wantErr: ErrOutputNotDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.flags, tt.args, io.Discard)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunWithConfigTags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeInput(t, dir, "texlit.yaml", "tags:\n  - name: skt\n    scheme: iast\n    case: title\n")
	in := writeInput(t, dir, "in.tex", `\skt{धर्म}`)
	out := filepath.Join(dir, "out.tex")

	f := &texlitFlags{config: cfgPath, quiet: true}
	if err := run(context.Background(), f, []string{in, out}, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, _ := os.ReadFile(out)
	if got, want := string(data), `\skt{Dharma}`; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunKeepFlags(t *testing.T) {
	dir := t.TempDir()
	content := "a   \n\\begin{comment}x\\end{comment}\n\n\n\nb\n"
	in := writeInput(t, dir, "in.tex", content)
	out := filepath.Join(dir, "out.tex")

	f := &texlitFlags{keepComments: true, keepWhitespace: true, quiet: true}
	if err := run(context.Background(), f, []string{in, out}, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, _ := os.ReadFile(out)
	if string(data) != content {
		t.Errorf("output = %q, want input unchanged %q", data, content)
	}
}

func TestRunVerboseOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "in.tex", "plain")
	out := filepath.Join(dir, "out.tex")

	var buf strings.Builder
	f := &texlitFlags{verbose: true}
	if err := run(context.Background(), f, []string{in, out}, &buf); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Finalized") {
		t.Errorf("verbose output missing progress line: %q", buf.String())
	}
}

func TestResolveJobsDefaultDirs(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "build")
	if err := os.Mkdir(outDir, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Input.DefaultDir = "src"
	cfg.Output.DefaultDir = outDir

	jobs, err := resolveJobs([]string{"a.tex", "b.tex"}, &texlitFlags{}, cfg)
	if err != nil {
		t.Fatalf("resolveJobs() error = %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	if jobs[0].inputPath != filepath.Join("src", "a.tex") {
		t.Errorf("inputPath = %q, want src/a.tex", jobs[0].inputPath)
	}
	if jobs[0].outputPath != filepath.Join(outDir, "a.tex") {
		t.Errorf("outputPath = %q, want %s/a.tex", jobs[0].outputPath, outDir)
	}
}

func TestResolveWorkers(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		jobs      int
		expected  int
	}{
		{"explicit within bounds", 2, 4, 2},
		{"capped by job count", 8, 3, 3},
		{"zero jobs floors at one", 4, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveWorkers(tt.requested, tt.jobs); got != tt.expected {
				t.Errorf("resolveWorkers(%d, %d) = %d, want %d",
					tt.requested, tt.jobs, got, tt.expected)
			}
		})
	}
}
