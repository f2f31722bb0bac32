// Package converter converts every LaTeX file in a directory to plain text.
//
// Each selected file is read, decoded as UTF-8 (invalid bytes become U+FFFD),
// passed through a cleaner and written next to its siblings in the output
// directory with the text extension. A failure on one file is recorded on its
// FileResult and never stops the batch.
package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/jmylchreest/texstrip/internal/logger"
)

// ErrInvalidInputDirectory is returned when the input path is missing or not a directory.
var ErrInvalidInputDirectory = errors.New("invalid input directory")

// Converter runs batch conversions.
type Converter struct {
	config Config
}

// New creates a Converter. Options are applied over DefaultConfig.
func New(opts ...Option) *Converter {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Reporter == nil {
		cfg.Reporter = NopReporter{}
	}
	if cfg.SourceExt == "" {
		cfg.SourceExt = DefaultSourceExt
	}
	if cfg.TargetExt == "" {
		cfg.TargetExt = DefaultTargetExt
	}
	return &Converter{config: cfg}
}

// Convert converts inputDir with the default configuration and returns the
// number of files converted.
func Convert(inputDir, outputDir string) (int, error) {
	summary, err := New().Convert(context.Background(), inputDir, outputDir)
	if summary == nil {
		return 0, err
	}
	return summary.Succeeded, err
}

// Convert converts every matching file in inputDir into outputDir.
//
// It fails before touching the filesystem only when inputDir is not a
// readable directory. Per-file failures are reported and counted, not
// returned. If ctx is cancelled, files not yet started are skipped and
// ctx.Err() is returned with the partial summary.
func (c *Converter) Convert(ctx context.Context, inputDir, outputDir string) (*Summary, error) {
	start := time.Now()

	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInputDirectory, inputDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidInputDirectory, inputDir)
	}

	names, err := c.discover(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInputDirectory, err)
	}
	logger.Debug("converter starting",
		"input_dir", inputDir,
		"output_dir", outputDir,
		"files", len(names),
		"workers", c.config.Workers,
		"cleaner", c.config.Cleaner.Name(),
		"dry_run", c.config.DryRun)

	summary := &Summary{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Total:     len(names),
	}

	var reportMu sync.Mutex
	p := pool.NewWithResults[FileResult]().WithMaxGoroutines(c.config.Workers)
	for _, name := range names {
		name := name
		p.Go(func() FileResult {
			if ctx.Err() != nil {
				return FileResult{Name: name, skipped: true}
			}
			r := c.convertFile(inputDir, outputDir, name)

			reportMu.Lock()
			c.config.Reporter.FileDone(r)
			reportMu.Unlock()
			return r
		})
	}

	for _, r := range p.Wait() {
		switch {
		case r.skipped:
			summary.Skipped++
			continue
		case r.Err != nil:
			summary.Failed++
		default:
			summary.Succeeded++
		}
		summary.Results = append(summary.Results, r)
	}
	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].Name < summary.Results[j].Name
	})
	summary.Duration = time.Since(start)

	c.config.Reporter.BatchDone(summary)

	return summary, ctx.Err()
}

// discover lists the names in dir that carry the source extension. Entries
// that resolve to directories are skipped; anything else is kept so that
// unreadable files surface as per-file failures.
func (c *Converter) discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(c.config.SourceExt)
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ext) {
			continue
		}
		if fi, err := os.Stat(filepath.Join(dir, name)); err == nil && fi.IsDir() {
			logger.Debug("skipping directory", "name", name)
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// convertFile reads, cleans and writes a single file.
func (c *Converter) convertFile(inputDir, outputDir, name string) FileResult {
	start := time.Now()
	r := FileResult{
		Name:   name,
		Source: filepath.Join(inputDir, name),
		Output: filepath.Join(outputDir, c.outputName(name)),
	}

	r.Err = func() error {
		if !c.config.DryRun {
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}

		data, err := os.ReadFile(r.Source)
		if err != nil {
			return err
		}
		r.InputBytes = len(data)

		text, err := decodeText(data)
		if err != nil {
			return fmt.Errorf("decoding: %w", err)
		}

		cleaned, err := c.config.Cleaner.Clean(text)
		if err != nil {
			return fmt.Errorf("cleaning: %w", err)
		}
		r.OutputBytes = len(cleaned)

		if c.config.DryRun {
			return nil
		}
		return os.WriteFile(r.Output, []byte(cleaned), 0o644)
	}()
	r.Duration = time.Since(start)

	return r
}

// outputName swaps the source extension for the target one. A name that is
// nothing but dots before the extension (".tex") has no extension to swap,
// so the target is appended instead.
func (c *Converter) outputName(name string) string {
	stem := name[:len(name)-len(c.config.SourceExt)]
	if strings.Trim(stem, ".") == "" {
		stem = name
	}
	return stem + c.config.TargetExt
}
