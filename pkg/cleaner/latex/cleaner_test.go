package latex

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty_string", "", ""},
		{"plain_text", "Hello, World!", "Hello, World!"},
		{"collapse_spaces", "  Hello   world\t\tagain  ", "Hello world again"},
		{"collapse_blank_lines", "para one\n\n\n\npara two", "para one\n\npara two"},
		{"blank_line_with_whitespace", "line1\n   \n\t\nline2", "line1\n\nline2"},
		{"blank_line_with_fullwidth_space", "第一段\n\u3000\u3000\n第二段", "第一段\n\n第二段"},
		{"bare_percent_kept", "50% off", "50% off"},
		{"escaped_percent_comment", "Hello \\%{ignored} world", "Hello"},
		{"escaped_percent_stops_at_newline", "Hello \\% gone\nworld", "Hello \nworld"},
		{"inline_math", "Before $x^2+y^2=z^2$ after", "Before after"},
		{"inline_math_multiline", "a $x\n=y$ b", "a b"},
		{"verbatim_block", "A\n\\begin{verbatim}\nx=1\n\\end{verbatim}\nB", "A\n\nB"},
		{"verbatim_blocks_matched_independently",
			"a\\begin{verbatim}1\\end{verbatim}b\\begin{verbatim}2\\end{verbatim}c", "abc"},
		{"command_argument_survives", "\\textbf{bold} text", "bold text"},
		{"escaped_underscore", "a\\_b \\& c", "ab & c"},
		{"display_math_markers", "x \\[ y \\] z", "x y z"},
		{"line_break_eats_next_word", "one\\\\two", "one"},
		{"command_with_arguments", "a \\\\,b{c} d", "a d"},
		{"equation_markers_stripped_body_kept",
			"A\n\\begin{equation}\nx=1\n\\end{equation}\nB", "A\n equation \nx=1\n equation \nB"},
		{"braces_become_spaces", "{a}{b}", "a b"},
		{"starred_command_leaves_star", "\\section*{Intro} Text", "* Intro Text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClean_Totality(t *testing.T) {
	inputs := []string{
		"{{{",
		"}}}",
		"$",
		"$$$",
		"\\",
		"\\begin{itemize",
		"\\begin{a}\\end{",
		"\\[ unterminated",
		"\xff\xfe\xfd",
		"ok \xc3\x28 ok",
		strings.Repeat("\\", 1000),
		strings.Repeat("{$\\begin{x}", 200),
	}

	for _, input := range inputs {
		got := Clean(input)
		if strings.ContainsAny(got, "\\{}") {
			t.Errorf("Clean(%q) = %q, still contains backslash or brace", input, got)
		}
	}
}

func TestClean_InvalidUTF8PassesThrough(t *testing.T) {
	got := Clean("a \xff b")
	if got != "a \xff b" {
		t.Errorf("Clean() = %q, want invalid byte preserved", got)
	}
	if utf8.ValidString(got) {
		t.Error("expected output to keep the invalid byte")
	}
}

func TestClean_PureTextOnlyWhitespaceChanges(t *testing.T) {
	inputs := []string{
		"The quick brown fox.",
		"  leading and trailing  ",
		"tabs\tand   spaces",
		"naïve café, 数学",
	}

	for _, input := range inputs {
		got := Clean(input)
		if strings.Join(strings.Fields(got), "") != strings.Join(strings.Fields(input), "") {
			t.Errorf("Clean(%q) = %q, content characters changed", input, got)
		}
	}
}

func TestClean_Idempotent(t *testing.T) {
	input := "\\section{Intro}\nSome $x$ text \\% note\n\n\n\\begin{verbatim}v\\end{verbatim}\nEnd."
	once := Clean(input)
	twice := Clean(once)
	if once != twice {
		t.Errorf("Clean() not stable: %q then %q", once, twice)
	}
}

func TestCleaner_Name(t *testing.T) {
	c := New()
	if got := c.Name(); got != "latex" {
		t.Errorf("Name() = %q, want %q", got, "latex")
	}
}

func TestCleaner_CleanNeverErrors(t *testing.T) {
	c := New()
	got, err := c.Clean("\\emph{x} $y$")
	if err != nil {
		t.Fatalf("Clean() error = %v, want nil", err)
	}
	if got != "x" {
		t.Errorf("Clean() = %q, want %q", got, "x")
	}
}

func TestCleanWithStats(t *testing.T) {
	c := New()
	result := c.CleanWithStats("Before $x$ after")

	if result.Content != "Before after" {
		t.Errorf("Content = %q, want %q", result.Content, "Before after")
	}
	if result.Stats.InputBytes != 16 {
		t.Errorf("InputBytes = %d, want 16", result.Stats.InputBytes)
	}
	if result.Stats.OutputBytes != 12 {
		t.Errorf("OutputBytes = %d, want 12", result.Stats.OutputBytes)
	}
	if len(result.Stats.Stages) != len(Stages()) {
		t.Fatalf("expected %d stages, got %d", len(Stages()), len(result.Stats.Stages))
	}

	t.Run("math stage", func(t *testing.T) {
		st := result.Stats.GetStage(StageMath)
		if st == nil {
			t.Fatal("expected math stage")
		}
		if st.Matches != 1 {
			t.Errorf("Matches = %d, want 1", st.Matches)
		}
		if st.BytesRemoved != 3 {
			t.Errorf("BytesRemoved = %d, want 3", st.BytesRemoved)
		}
	})

	t.Run("whitespace stage", func(t *testing.T) {
		st := result.Stats.GetStage(StageWhitespace)
		if st == nil {
			t.Fatal("expected whitespace stage")
		}
		if st.Matches != 1 || st.BytesRemoved != 1 {
			t.Errorf("got matches=%d removed=%d, want 1/1", st.Matches, st.BytesRemoved)
		}
	})

	t.Run("untouched stage", func(t *testing.T) {
		st := result.Stats.GetStage(StageVerbatim)
		if st == nil || st.Matches != 0 || st.BytesRemoved != 0 {
			t.Errorf("expected idle verbatim stage, got %+v", st)
		}
	})
}

func TestCleanWithStats_CommandStage(t *testing.T) {
	result := New().CleanWithStats("a \\\\,b{c} d")

	if st := result.Stats.GetStage(StageSymbols); st == nil || st.Matches != 1 {
		t.Errorf("expected one symbol match, got %+v", st)
	}
	if st := result.Stats.GetStage(StageCommands); st == nil || st.Matches != 1 {
		t.Errorf("expected one command match, got %+v", st)
	}
}

func TestStages_Order(t *testing.T) {
	want := []string{
		StageComments, StageVerbatim, StageSymbols, StageCommands, StageMath,
		StageEnvironments, StageEscapes, StageWhitespace, StageTrim,
	}
	got := Stages()
	if len(got) != len(want) {
		t.Fatalf("Stages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Stages()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
