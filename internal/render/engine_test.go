package render

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vzemtsov/typeline/internal/textseg"
)

func newTestEngine(buf *bytes.Buffer) (*Engine, Styles) {
	styles := DefaultStyles()
	return New(buf, textseg.NewConfig(4), styles), styles
}

func TestDrawPendingAndCorrect(t *testing.T) {
	var buf bytes.Buffer
	e, styles := newTestEngine(&buf)
	if err := e.Draw(NewTarget("ab"), "a"); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	want := "\r" + ansi.EraseEntireLine +
		styles.Correct.Render("a") +
		styles.Pending.Render("b")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected draw output:\n got %q\nwant %q", got, want)
	}
}

func TestDrawShowsTypedCharacterOnMismatch(t *testing.T) {
	var buf bytes.Buffer
	e, styles := newTestEngine(&buf)
	if err := e.Draw(NewTarget("ab"), "ax"); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	want := "\r" + ansi.EraseEntireLine +
		styles.Correct.Render("a") +
		styles.Incorrect.Render("x")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected draw output:\n got %q\nwant %q", got, want)
	}
}

func TestDrawWhitespaceErrorStyle(t *testing.T) {
	var buf bytes.Buffer
	e, styles := newTestEngine(&buf)
	if err := e.Draw(NewTarget("ab"), "a "); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	want := "\r" + ansi.EraseEntireLine +
		styles.Correct.Render("a") +
		styles.IncorrectSpace.Render(" ")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected draw output:\n got %q\nwant %q", got, want)
	}
}

func TestDrawExpandsLeadingTab(t *testing.T) {
	var buf bytes.Buffer
	e, styles := newTestEngine(&buf)
	if err := e.Draw(NewTarget("\tx"), ""); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	want := "\r" + ansi.EraseEntireLine +
		styles.Pending.Render("    ") +
		styles.Pending.Render("x")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected draw output:\n got %q\nwant %q", got, want)
	}
}

func TestDrawMultiLine(t *testing.T) {
	var buf bytes.Buffer
	e, styles := newTestEngine(&buf)
	if err := e.Draw(NewTarget("a\nb"), ""); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	want := "\r" + ansi.EraseEntireLine + styles.Pending.Render("a") + "\n" +
		"\r" + ansi.EraseEntireLine + styles.Pending.Render("b")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected draw output:\n got %q\nwant %q", got, want)
	}
}

func TestDrawIsDeterministic(t *testing.T) {
	target := NewTarget("hello\n  world")
	input := "helxo\n  w"
	var first, second bytes.Buffer
	e1, _ := newTestEngine(&first)
	e2, _ := newTestEngine(&second)
	if err := e1.Draw(target, input); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if err := e2.Draw(target, input); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("expected identical bytes for identical state")
	}
}

func TestCursorPos(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEngine(&buf)
	cases := []struct {
		input    string
		row, col int
	}{
		{"", 0, 0},
		{"ab", 0, 2},
		{"ab\nc", 1, 1},
		{"\t", 0, 4},
		{"e\u0301", 0, 1},
		{"🌊", 0, 2},
		{"a\nb\n", 2, 0},
	}
	for _, c := range cases {
		row, col := e.CursorPos(c.input)
		if row != c.row || col != c.col {
			t.Fatalf("CursorPos(%q) = (%d, %d), want (%d, %d)", c.input, row, col, c.row, c.col)
		}
	}
}

func TestAnchor(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEngine(&buf)
	if err := e.Anchor(3); err != nil {
		t.Fatalf("anchor failed: %v", err)
	}
	want := ansi.CursorUp(2) + "\r" + ansi.SaveCursor
	if got := buf.String(); got != want {
		t.Fatalf("unexpected anchor output: %q, want %q", got, want)
	}

	buf.Reset()
	if err := e.Anchor(1); err != nil {
		t.Fatalf("anchor failed: %v", err)
	}
	want = "\r" + ansi.SaveCursor
	if got := buf.String(); got != want {
		t.Fatalf("unexpected anchor output: %q, want %q", got, want)
	}
}

func TestMoveCursor(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEngine(&buf)
	if err := e.MoveCursor("a\nbb"); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	want := ansi.RestoreCursor + ansi.CursorDown(1) + ansi.CursorForward(2)
	if got := buf.String(); got != want {
		t.Fatalf("unexpected move output: %q, want %q", got, want)
	}

	buf.Reset()
	if err := e.MoveCursor(""); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if got := buf.String(); got != ansi.RestoreCursor {
		t.Fatalf("expected bare restore for empty input, got %q", got)
	}
}

func TestRedrawRestoresAnchorFirst(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEngine(&buf)
	target := NewTarget("ab")
	if err := e.Redraw(target, "a"); err != nil {
		t.Fatalf("redraw failed: %v", err)
	}
	got := buf.String()
	if len(got) < len(ansi.RestoreCursor) || got[:len(ansi.RestoreCursor)] != ansi.RestoreCursor {
		t.Fatalf("expected redraw to start with cursor restore, got %q", got)
	}
}
