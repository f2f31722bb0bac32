// Package latex strips LaTeX markup from text.
//
// The cleaner is a fixed sequence of regular-expression rewrites: comments,
// verbatim blocks, control sequences, commands with arguments, math and
// environments are deleted, leftover backslashes and braces become spaces,
// and whitespace is normalised. It does not parse LaTeX. Nested or adjacent
// constructs may be mis-segmented, and that loss is accepted.
//
// Cleaning never fails: every input, including invalid UTF-8, yields a string.
package latex

import (
	"time"
)

// Cleaner runs the LaTeX stripping pipeline.
// It implements the cleaner.Cleaner interface.
type Cleaner struct{}

// New creates a new Cleaner.
func New() *Cleaner {
	return &Cleaner{}
}

var defaultCleaner = New()

// Clean strips LaTeX markup from text using the default Cleaner.
func Clean(text string) string {
	return defaultCleaner.CleanWithStats(text).Content
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "latex"
}

// Clean strips LaTeX markup from text. The error is always nil; it exists to
// satisfy the cleaner.Cleaner interface.
func (c *Cleaner) Clean(text string) (string, error) {
	return c.CleanWithStats(text).Content, nil
}

// CleanWithStats strips LaTeX markup and records what each stage did.
func (c *Cleaner) CleanWithStats(text string) *Result {
	startTime := time.Now()
	result := &Result{
		Stats: NewStats(),
	}
	result.Stats.InputBytes = len(text)

	for _, s := range pipeline {
		st := result.Stats.AddStage(s.name)
		stageStart := time.Now()
		before := len(text)
		text, st.Matches = s.apply(text)
		st.BytesRemoved = before - len(text)
		st.Duration = time.Since(stageStart)
	}

	result.Content = text
	result.Stats.OutputBytes = len(text)
	result.Stats.TotalDuration = time.Since(startTime)

	return result
}
