// Package render draws the typing block in place and positions the terminal
// cursor to match the typed input.
package render

import "strings"

// Line is one display line of the target text. Indent is the byte length of
// the leading run of spaces and tabs, used for tab expansion and for the
// auto-inserted indentation on line advance.
type Line struct {
	Text   string
	Indent int
}

// Target is the immutable wrapped text the user types against. It is built
// once at startup and never mutated.
type Target struct {
	Lines   []Line
	offsets []int
	total   int
}

// NewTarget splits wrapped text into lines and precomputes leading
// whitespace lengths and cumulative byte offsets of each line within the
// newline-joined whole.
func NewTarget(text string) *Target {
	raw := strings.Split(text, "\n")
	t := &Target{
		Lines:   make([]Line, len(raw)),
		offsets: make([]int, len(raw)),
	}
	cum := 0
	for i, line := range raw {
		t.Lines[i] = Line{Text: line, Indent: leadingWhitespace(line)}
		t.offsets[i] = cum
		cum += len(line) + 1 // +1 for the separating newline
	}
	t.total = cum - 1
	return t
}

// Total returns the expected input length: the sum of all line lengths plus
// one newline separator between consecutive lines.
func (t *Target) Total() int {
	return t.total
}

// Offset returns the byte offset of line i within the joined text.
func (t *Target) Offset(i int) int {
	return t.offsets[i]
}

// IndentRun returns the leading whitespace run of line i.
func (t *Target) IndentRun(i int) string {
	if i < 0 || i >= len(t.Lines) {
		return ""
	}
	return t.Lines[i].Text[:t.Lines[i].Indent]
}

// Joined returns the lines joined by single newlines.
func (t *Target) Joined() string {
	parts := make([]string, len(t.Lines))
	for i, line := range t.Lines {
		parts[i] = line.Text
	}
	return strings.Join(parts, "\n")
}

func leadingWhitespace(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}
