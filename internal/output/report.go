package output

import (
	"fmt"
	"io"
	"time"

	"github.com/jmylchreest/texstrip/internal/version"
	"github.com/jmylchreest/texstrip/pkg/converter"
)

// Status values for FileRecord.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Report is the serialisable form of a converter.Summary.
type Report struct {
	Tool        version.Info `json:"tool" yaml:"tool"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	InputDir    string       `json:"input_dir" yaml:"input_dir"`
	OutputDir   string       `json:"output_dir" yaml:"output_dir"`
	Total       int          `json:"total" yaml:"total"`
	Succeeded   int          `json:"succeeded" yaml:"succeeded"`
	Failed      int          `json:"failed" yaml:"failed"`
	Skipped     int          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	DurationMs  int64        `json:"duration_ms" yaml:"duration_ms"`
	Files       []FileRecord `json:"files" yaml:"files"`
}

// FileRecord is the serialisable form of a converter.FileResult.
type FileRecord struct {
	Name        string `json:"name" yaml:"name"`
	Output      string `json:"output" yaml:"output"`
	Status      string `json:"status" yaml:"status"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	InputBytes  int    `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int    `json:"output_bytes" yaml:"output_bytes"`
	DurationMs  int64  `json:"duration_ms" yaml:"duration_ms"`
}

// NewReport builds a Report from a batch summary.
func NewReport(s *converter.Summary, generatedAt time.Time) *Report {
	r := &Report{
		Tool:        version.Get(),
		GeneratedAt: generatedAt.UTC(),
		InputDir:    s.InputDir,
		OutputDir:   s.OutputDir,
		Total:       s.Total,
		Succeeded:   s.Succeeded,
		Failed:      s.Failed,
		Skipped:     s.Skipped,
		DurationMs:  s.Duration.Milliseconds(),
		Files:       make([]FileRecord, 0, len(s.Results)),
	}

	for _, fr := range s.Results {
		rec := FileRecord{
			Name:        fr.Name,
			Output:      fr.Output,
			Status:      StatusOK,
			InputBytes:  fr.InputBytes,
			OutputBytes: fr.OutputBytes,
			DurationMs:  fr.Duration.Milliseconds(),
		}
		if fr.Err != nil {
			rec.Status = StatusFailed
			rec.Error = fr.Err.Error()
		}
		r.Files = append(r.Files, rec)
	}

	return r
}

// WriteReport serialises r to w. JSON and YAML produce one document; JSONL
// produces one line per file.
func WriteReport(w io.Writer, format Format, r *Report) error {
	out, err := NewWriter(w, format)
	if err != nil {
		return err
	}

	if format == FormatJSONL {
		for _, rec := range r.Files {
			if err := out.Write(rec); err != nil {
				return fmt.Errorf("writing record %s: %w", rec.Name, err)
			}
		}
	} else if err := out.Write(r); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return out.Close()
}
