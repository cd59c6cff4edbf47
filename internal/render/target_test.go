package render

import "testing"

func TestNewTargetOffsets(t *testing.T) {
	target := NewTarget("hello\n  world")
	if len(target.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(target.Lines))
	}
	if got := target.Offset(0); got != 0 {
		t.Fatalf("expected first line offset 0, got %d", got)
	}
	if got := target.Offset(1); got != 6 {
		t.Fatalf("expected second line offset 6, got %d", got)
	}
	if got := target.Total(); got != 13 {
		t.Fatalf("expected total length 13, got %d", got)
	}
}

func TestNewTargetSingleLine(t *testing.T) {
	target := NewTarget("abc")
	if got := target.Total(); got != 3 {
		t.Fatalf("expected total 3, got %d", got)
	}
}

func TestIndentRun(t *testing.T) {
	target := NewTarget("a\n\t  b\nc")
	if got := target.IndentRun(1); got != "\t  " {
		t.Fatalf("expected indent run %q, got %q", "\t  ", got)
	}
	if got := target.IndentRun(0); got != "" {
		t.Fatalf("expected empty indent run, got %q", got)
	}
	if got := target.IndentRun(5); got != "" {
		t.Fatalf("expected empty indent run out of range, got %q", got)
	}
}

func TestJoinedRoundTrip(t *testing.T) {
	text := "one\n  two\nthree"
	target := NewTarget(text)
	if got := target.Joined(); got != text {
		t.Fatalf("expected joined text %q, got %q", text, got)
	}
	if got := target.Total(); got != len(text) {
		t.Fatalf("expected total %d, got %d", len(text), got)
	}
}
