package latex

import (
	"regexp"
	"strings"
	"unicode"
)

// Stage names, in pipeline order.
const (
	StageComments     = "comments"
	StageVerbatim     = "verbatim"
	StageSymbols      = "symbols"
	StageCommands     = "commands"
	StageMath         = "math"
	StageEnvironments = "environments"
	StageEscapes      = "escapes"
	StageWhitespace   = "whitespace"
	StageTrim         = "trim"
)

// space is the whitespace class used when collapsing blank lines. It is
// wider than RE2's \s: vertical tab, the information separators and all
// Unicode space separators count, so full-width and no-break spaces on an
// otherwise empty line still collapse.
const space = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	// \% and the rest of its line.
	commentRegex = regexp.MustCompile(`\\%.*`)

	verbatimRegex = regexp.MustCompile(`(?s)\\begin\{verbatim\}.*?\\end\{verbatim\}`)

	// A control word, or one of the escaped symbols. The argument is left alone.
	symbolRegex = regexp.MustCompile("\\\\(?:[a-zA-Z]+|[*\\[\\]{}_^~`,.|='\"-])")

	// Command with up to two optional and two mandatory arguments.
	commandRegex = regexp.MustCompile(`\\[a-zA-Z]+\*?(?:\[.*?\]){0,2}(?:\{.*?\}){0,2}`)

	inlineMathRegex  = regexp.MustCompile(`(?s)\$.*?\$`)
	displayMathRegex = regexp.MustCompile(`(?s)\\\[.*?\\\]`)

	// The closing name is not required to match the opening one.
	environmentRegex = regexp.MustCompile(`(?s)\\begin\{.*?\}.*?\\end\{.*?\}`)

	blankLinesRegex = regexp.MustCompile(`\n` + space + `*\n`)
	hspaceRegex     = regexp.MustCompile(`[ \t]+`)

	escapeReplacer = strings.NewReplacer(`\`, " ", "{", " ", "}", " ")
)

// stage is one rewrite pass. apply returns the rewritten text and the number
// of substitutions it made.
type stage struct {
	name  string
	apply func(string) (string, int)
}

// pipeline is the fixed, ordered list of rewrites. Later stages rely on the
// earlier ones having run.
var pipeline = []stage{
	{StageComments, deleteAll(commentRegex)},
	{StageVerbatim, deleteAll(verbatimRegex)},
	{StageSymbols, deleteAll(symbolRegex)},
	{StageCommands, deleteAll(commandRegex)},
	{StageMath, deleteAll(inlineMathRegex, displayMathRegex)},
	{StageEnvironments, deleteAll(environmentRegex)},
	{StageEscapes, replaceEscapes},
	{StageWhitespace, normalizeWhitespace},
	{StageTrim, trim},
}

// Stages returns the names of the pipeline stages in the order they run.
func Stages() []string {
	names := make([]string, len(pipeline))
	for i, s := range pipeline {
		names[i] = s.name
	}
	return names
}

func deleteAll(patterns ...*regexp.Regexp) func(string) (string, int) {
	return func(text string) (string, int) {
		n := 0
		for _, re := range patterns {
			text = re.ReplaceAllStringFunc(text, func(string) string {
				n++
				return ""
			})
		}
		return text, n
	}
}

func replaceEscapes(text string) (string, int) {
	n := strings.Count(text, `\`) + strings.Count(text, "{") + strings.Count(text, "}")
	if n == 0 {
		return text, 0
	}
	return escapeReplacer.Replace(text), n
}

func normalizeWhitespace(text string) (string, int) {
	n := 0
	text = blankLinesRegex.ReplaceAllStringFunc(text, func(string) string {
		n++
		return "\n\n"
	})
	text = hspaceRegex.ReplaceAllStringFunc(text, func(string) string {
		n++
		return " "
	})
	return text, n
}

func trim(text string) (string, int) {
	trimmed := strings.TrimFunc(text, isSpace)
	if len(trimmed) == len(text) {
		return text, 0
	}
	return trimmed, 1
}

// isSpace matches the same runes as the space class above.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
