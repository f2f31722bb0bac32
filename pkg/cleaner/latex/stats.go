package latex

import (
	"fmt"
	"strings"
	"time"
)

// Stats captures metrics about a single cleaning run.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// Per-stage breakdown, in pipeline order
	Stages []*StageStats `json:"stages"`

	TotalDuration time.Duration `json:"total_duration_ms"`
}

// StageStats records what one pipeline stage did.
type StageStats struct {
	Name         string        `json:"name"`
	Matches      int           `json:"matches"`
	BytesRemoved int           `json:"bytes_removed"`
	Duration     time.Duration `json:"duration_ms"`
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{
		Stages: make([]*StageStats, 0, len(pipeline)),
	}
}

// AddStage appends a stage entry and returns it for the caller to fill in.
func (s *Stats) AddStage(name string) *StageStats {
	st := &StageStats{Name: name}
	s.Stages = append(s.Stages, st)
	return st
}

// GetStage returns the entry for the named stage, or nil.
func (s *Stats) GetStage(name string) *StageStats {
	for _, st := range s.Stages {
		if st.Name == name {
			return st
		}
	}
	return nil
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// TotalMatches returns the number of substitutions across all stages.
func (s *Stats) TotalMatches() int {
	total := 0
	for _, st := range s.Stages {
		total += st.Matches
	}
	return total
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes (%.1f%% reduction)\n",
		s.InputBytes, s.OutputBytes, s.ReductionPercent()))
	sb.WriteString(fmt.Sprintf("Substitutions: %d\n", s.TotalMatches()))

	if len(s.Stages) > 0 {
		sb.WriteString("Stages:\n")
		for _, st := range s.Stages {
			sb.WriteString(fmt.Sprintf("  %-13s matches=%-5d removed=%-7d %v\n",
				st.Name+":", st.Matches, st.BytesRemoved, st.Duration.Round(time.Microsecond)))
		}
	}

	sb.WriteString(fmt.Sprintf("Timing: total=%v\n", s.TotalDuration.Round(time.Microsecond)))

	return sb.String()
}

// Result contains the output of a cleaning run.
type Result struct {
	// Content is the cleaned text.
	Content string `json:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`
}
