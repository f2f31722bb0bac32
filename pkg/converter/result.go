package converter

import (
	"time"
)

// FileResult is the outcome of converting one file. Err is nil on success.
type FileResult struct {
	Name        string        // Base name of the source file
	Source      string        // Full source path
	Output      string        // Full output path
	Err         error         // Failure reason, nil on success
	InputBytes  int           // Bytes read
	OutputBytes int           // Bytes written
	Duration    time.Duration // Read + clean + write

	skipped bool
}

// OK reports whether the file converted successfully.
func (r FileResult) OK() bool {
	return r.Err == nil
}

// Summary aggregates a batch run.
type Summary struct {
	InputDir  string
	OutputDir string

	Total     int // Files selected for conversion
	Succeeded int
	Failed    int
	Skipped   int // Selected but never started (cancelled)

	Results  []FileResult // Sorted by Name
	Duration time.Duration
}

// Failures returns the failed results.
func (s *Summary) Failures() []FileResult {
	var failed []FileResult
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}
	return failed
}
