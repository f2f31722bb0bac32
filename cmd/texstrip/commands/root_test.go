package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/jmylchreest/texstrip/internal/output"
)

// run executes a fresh command tree with args, isolated from the user's
// config file and environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := newRootCmd(viper.New())
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRoot_RequiresTwoArgs(t *testing.T) {
	for _, args := range [][]string{{}, {"only-one"}} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("expected error for args %v", args)
		}
	}
}

func TestRoot_InvalidInputDirectory(t *testing.T) {
	base := t.TempDir()
	out := filepath.Join(base, "out")

	_, err := run(t, filepath.Join(base, "missing"), out)
	if err == nil {
		t.Fatal("expected error for missing input directory")
	}
	if _, serr := os.Stat(out); !os.IsNotExist(serr) {
		t.Error("output directory should not be created")
	}
}

func TestRoot_Converts(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "out")
	if err := os.WriteFile(filepath.Join(in, "paper.tex"), []byte("Before $x^2$ after"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, err := run(t, in, out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"✓ converted: paper.tex", "done: 1 file(s) converted"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}

	data, err := os.ReadFile(filepath.Join(out, "paper.txt"))
	if err != nil {
		t.Fatalf("expected paper.txt: %v", err)
	}
	if string(data) != "Before after" {
		t.Errorf("paper.txt = %q, want %q", data, "Before after")
	}
}

func TestRoot_QuietPrintsOnlySummary(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "a.tex"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, err := run(t, "--quiet", in, out)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "done: 1 file(s) converted\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRoot_WritesReport(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	report := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(filepath.Join(in, "a.tex"), []byte("\\emph{a}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "--workers", "2", "--report", report, in, out); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("expected report file: %v", err)
	}
	var r output.Report
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if r.Succeeded != 1 || len(r.Files) != 1 || r.Files[0].Name != "a.tex" {
		t.Errorf("unexpected report: %+v", r)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	if _, err := run(t, "--ext", "tex", in, out); err == nil {
		t.Fatal("expected validation error for extension without dot")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
