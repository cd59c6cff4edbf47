package render

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/vzemtsov/typeline/internal/textseg"
)

// Engine redraws the whole typing block in place. It keeps no state between
// draws; the emitted escape-sequence stream is a pure function of the target
// and the current input, so redrawing twice produces identical bytes.
type Engine struct {
	cfg    textseg.Config
	styles Styles
	out    io.Writer
}

// New returns an Engine writing to out.
func New(out io.Writer, cfg textseg.Config, styles Styles) *Engine {
	return &Engine{cfg: cfg, styles: styles, out: out}
}

// Draw clears and repaints every line of the block, walking the target's
// grapheme clusters in lock-step with the matching byte range of input.
// A full clear per line avoids stale trailing characters after backspaces.
func (e *Engine) Draw(t *Target, input string) error {
	var b strings.Builder
	for i, line := range t.Lines {
		b.WriteByte('\r')
		b.WriteString(ansi.EraseEntireLine)
		e.drawLine(&b, t.Offset(i), line, input)
		if i < len(t.Lines)-1 {
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(e.out, b.String())
	return err
}

func (e *Engine) drawLine(b *strings.Builder, lineStart int, line Line, input string) {
	for j := 0; j < len(line.Text); {
		end := textseg.ClusterEnd(line.Text, j)
		cluster := line.Text[j:end]
		leading := j < line.Indent
		pos := lineStart + j
		if pos >= len(input) {
			b.WriteString(e.styles.Pending.Render(e.displayCluster(cluster, leading)))
			j = end
			continue
		}
		typed := input[pos:textseg.ClusterEnd(input, pos)]
		switch {
		case typed == cluster:
			b.WriteString(e.styles.Correct.Render(e.displayCluster(cluster, leading)))
		case isWhitespaceCluster(typed):
			// The user's character is shown, not the target's.
			b.WriteString(e.styles.IncorrectSpace.Render(e.displayCluster(typed, leading)))
		default:
			b.WriteString(e.styles.Incorrect.Render(e.displayCluster(typed, leading)))
		}
		j = end
	}
}

// displayCluster expands a leading tab to a fixed-width block of spaces.
// Non-leading tabs and control characters render literally.
func (e *Engine) displayCluster(cluster string, leading bool) string {
	if leading && cluster == "\t" {
		return strings.Repeat(" ", e.cfg.TabWidth)
	}
	return cluster
}

// CursorPos computes the logical (row, column) for the typed input: each
// newline advances the row and resets the column, every other grapheme
// cluster adds its display width. The width rules mirror Draw exactly so the
// terminal cursor always lands on the next character to type.
func (e *Engine) CursorPos(input string) (row, col int) {
	for i := 0; i < len(input); {
		end := textseg.ClusterEnd(input, i)
		if input[i:end] == "\n" {
			row++
			col = 0
		} else {
			col += e.cfg.ClusterWidth(input[i:end])
		}
		i = end
	}
	return row, col
}

// Anchor moves the cursor from the end of a freshly drawn block of lines
// back to its first column and saves that position. All subsequent redraws
// restore this single anchor, so the block repaints without cumulative
// drift.
func (e *Engine) Anchor(lines int) error {
	var b strings.Builder
	if lines > 1 {
		b.WriteString(ansi.CursorUp(lines - 1))
	}
	b.WriteByte('\r')
	b.WriteString(ansi.SaveCursor)
	_, err := io.WriteString(e.out, b.String())
	return err
}

// Redraw restores the anchor, repaints the block, and repositions the
// terminal cursor to match the typed input.
func (e *Engine) Redraw(t *Target, input string) error {
	if _, err := io.WriteString(e.out, ansi.RestoreCursor); err != nil {
		return err
	}
	if err := e.Draw(t, input); err != nil {
		return err
	}
	return e.MoveCursor(input)
}

// MoveCursor repositions the real cursor from the saved anchor to the
// logical position derived from input.
func (e *Engine) MoveCursor(input string) error {
	row, col := e.CursorPos(input)
	var b strings.Builder
	b.WriteString(ansi.RestoreCursor)
	if row > 0 {
		b.WriteString(ansi.CursorDown(row))
	}
	if col > 0 {
		b.WriteString(ansi.CursorForward(col))
	}
	_, err := io.WriteString(e.out, b.String())
	return err
}

func isWhitespaceCluster(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	if size == 0 {
		return false
	}
	return unicode.IsSpace(r)
}
