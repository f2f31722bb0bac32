package converter

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/texstrip/internal/logger"
)

// Reporter receives conversion progress. The Converter never calls a
// Reporter from two goroutines at once.
type Reporter interface {
	// FileDone is called once per file as soon as it finishes.
	FileDone(r FileResult)

	// BatchDone is called once after the last file.
	BatchDone(s *Summary)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) FileDone(FileResult) {}
func (NopReporter) BatchDone(*Summary)  {}

// LogReporter sends progress to the package logger: successes at debug,
// failures at warn and the batch summary at info.
type LogReporter struct{}

// FileDone logs a single file result.
func (LogReporter) FileDone(r FileResult) {
	if r.Err != nil {
		logger.Warn("conversion failed", "file", r.Name, "error", r.Err)
		return
	}
	logger.Debug("converted",
		"file", r.Name,
		"output", r.Output,
		"input_bytes", r.InputBytes,
		"output_bytes", r.OutputBytes,
		"duration", r.Duration)
}

// BatchDone logs the batch summary.
func (LogReporter) BatchDone(s *Summary) {
	logger.Info("conversion finished",
		"input_dir", s.InputDir,
		"output_dir", s.OutputDir,
		"total", s.Total,
		"succeeded", s.Succeeded,
		"failed", s.Failed,
		"skipped", s.Skipped,
		"duration", s.Duration)
}

// ConsoleReporter prints one line per file and a closing summary.
type ConsoleReporter struct {
	out         io.Writer
	summaryOnly bool
}

// NewConsoleReporter creates a reporter writing to w. With summaryOnly set,
// per-file lines are suppressed but the summary is still printed.
func NewConsoleReporter(w io.Writer, summaryOnly bool) *ConsoleReporter {
	return &ConsoleReporter{out: w, summaryOnly: summaryOnly}
}

// FileDone prints a success or failure line.
func (c *ConsoleReporter) FileDone(r FileResult) {
	if c.summaryOnly {
		return
	}
	if r.Err != nil {
		fmt.Fprintf(c.out, "✕ failed: %s - %v\n", r.Name, r.Err)
		return
	}
	fmt.Fprintf(c.out, "✓ converted: %s (%s -> %s)\n",
		r.Name, humanize.Bytes(uint64(r.InputBytes)), humanize.Bytes(uint64(r.OutputBytes)))
}

// BatchDone prints the success count.
func (c *ConsoleReporter) BatchDone(s *Summary) {
	fmt.Fprintf(c.out, "done: %d file(s) converted", s.Succeeded)
	if s.Failed > 0 {
		fmt.Fprintf(c.out, ", %d failed", s.Failed)
	}
	if s.Skipped > 0 {
		fmt.Fprintf(c.out, ", %d skipped", s.Skipped)
	}
	fmt.Fprintln(c.out)
}

// MultiReporter fans progress out to several reporters in order.
type MultiReporter []Reporter

func (m MultiReporter) FileDone(r FileResult) {
	for _, rep := range m {
		rep.FileDone(r)
	}
}

func (m MultiReporter) BatchDone(s *Summary) {
	for _, rep := range m {
		rep.BatchDone(s)
	}
}
