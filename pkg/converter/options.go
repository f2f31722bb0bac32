package converter

import (
	"github.com/jmylchreest/texstrip/pkg/cleaner"
	"github.com/jmylchreest/texstrip/pkg/cleaner/latex"
)

const (
	// DefaultSourceExt is the suffix that selects input files (matched case-insensitively).
	DefaultSourceExt = ".tex"

	// DefaultTargetExt replaces the source suffix on output files.
	DefaultTargetExt = ".txt"
)

// Config holds converter configuration.
type Config struct {
	Cleaner   cleaner.Cleaner
	Reporter  Reporter
	Workers   int    // Max files processed at once (< 1 means 1)
	SourceExt string // Input suffix, including the dot
	TargetExt string // Output suffix, including the dot
	DryRun    bool   // Clean but do not create directories or write files
}

// DefaultConfig returns sequential LaTeX-to-text conversion.
func DefaultConfig() Config {
	return Config{
		Cleaner:   latex.New(),
		Reporter:  LogReporter{},
		Workers:   1,
		SourceExt: DefaultSourceExt,
		TargetExt: DefaultTargetExt,
	}
}

// Option configures a Converter.
type Option func(*Config)

// WithCleaner sets the cleaner applied to every file.
func WithCleaner(c cleaner.Cleaner) Option {
	return func(cfg *Config) {
		cfg.Cleaner = c
	}
}

// WithReporter sets the sink that receives per-file and batch results.
func WithReporter(r Reporter) Option {
	return func(cfg *Config) {
		cfg.Reporter = r
	}
}

// WithWorkers sets how many files may be converted concurrently.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		cfg.Workers = n
	}
}

// WithSourceExt sets the input file suffix.
func WithSourceExt(ext string) Option {
	return func(cfg *Config) {
		cfg.SourceExt = ext
	}
}

// WithTargetExt sets the output file suffix.
func WithTargetExt(ext string) Option {
	return func(cfg *Config) {
		cfg.TargetExt = ext
	}
}

// WithDryRun enables or disables dry-run mode.
func WithDryRun(enabled bool) Option {
	return func(cfg *Config) {
		cfg.DryRun = enabled
	}
}
