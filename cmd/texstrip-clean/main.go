// texstrip-clean runs the LaTeX cleaner on a single file and shows what each
// stage removed. It is a debugging aid for the cleaning pipeline.
//
// Usage:
//
//	texstrip-clean [options] [file]
//
// Examples:
//
//	# Clean a file and show stats
//	texstrip-clean paper.tex
//
//	# Clean from stdin
//	cat paper.tex | texstrip-clean
//
//	# Output to file
//	texstrip-clean -o paper.txt paper.tex
//
//	# Show only stats as JSON
//	texstrip-clean -stats-only -json paper.tex
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/texstrip/pkg/cleaner/latex"
)

var (
	fileInput  = flag.String("f", "", "Read LaTeX from file instead of the first argument or stdin")
	outputFile = flag.String("o", "", "Write cleaned output to file")
	statsOnly  = flag.Bool("stats-only", false, "Only show stats, don't output content")
	jsonStats  = flag.Bool("json", false, "Output stats as JSON")
	quiet      = flag.Bool("q", false, "Quiet mode (no stats, only content)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "texstrip-clean - inspect the LaTeX cleaning pipeline\n\n")
		fmt.Fprintf(os.Stderr, "Usage: texstrip-clean [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nStages: %v\n", latex.Stages())
	}

	flag.Parse()

	text, source, err := readInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := latex.New().CleanWithStats(text)

	if !*quiet {
		if *jsonStats {
			outputJSONStats(result, source)
		} else {
			outputTextStats(result, source)
		}
	}

	if *statsOnly {
		return
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(result.Content), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "\nWritten to %s\n", *outputFile)
		}
		return
	}

	if !*quiet {
		fmt.Println("\n--- Cleaned Content ---")
	}
	fmt.Println(result.Content)
}

func readInput() (text, source string, err error) {
	path := *fileInput
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading file %s: %w", path, err)
	}
	return string(data), path, nil
}

func outputTextStats(result *latex.Result, source string) {
	s := result.Stats
	fmt.Fprintf(os.Stderr, "\n=== texstrip Cleaner Stats ===\n")
	fmt.Fprintf(os.Stderr, "Source: %s (%s -> %s)\n", source,
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes)))
	fmt.Fprintf(os.Stderr, "%s", s.String())
}

func outputJSONStats(result *latex.Result, source string) {
	stats := struct {
		Source      string       `json:"source"`
		Stats       *latex.Stats `json:"stats"`
		Reduced     float64      `json:"reduction_percent"`
		TotalMicros int64        `json:"total_us"`
	}{
		Source:      source,
		Stats:       result.Stats,
		Reduced:     result.Stats.ReductionPercent(),
		TotalMicros: result.Stats.TotalDuration.Microseconds(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(stats)
}
