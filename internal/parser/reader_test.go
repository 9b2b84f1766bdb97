package parser

import (
	"io"
	"strings"
	"testing"
)

func TestLineReaderNext(t *testing.T) {
	lr := NewLineReader(strings.NewReader("one\ntwo\nthree"))

	want := []Line{
		{Text: "one\n", Num: 1},
		{Text: "two\n", Num: 2},
		{Text: "three", Num: 3}, // no terminator on the last line
	}

	for i, w := range want {
		got, err := lr.Next()
		if err != nil {
			t.Fatalf("line %d: unexpected error %v", i+1, err)
		}
		if got != w {
			t.Errorf("line %d: got %+v, want %+v", i+1, got, w)
		}
	}

	if _, err := lr.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last line, got %v", err)
	}
}

func TestLineReaderUnread(t *testing.T) {
	lr := NewLineReader(strings.NewReader("one\ntwo\n"))

	first, err := lr.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lr.Unread()
	again, err := lr.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != first {
		t.Errorf("replayed line %+v, want %+v", again, first)
	}
	if lr.LineNum() != 1 {
		t.Errorf("replay advanced the line counter to %d", lr.LineNum())
	}

	second, err := lr.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Num != 2 || second.Text != "two\n" {
		t.Errorf("got %+v after replay, want line 2", second)
	}
}

func TestLineReaderEmptyInput(t *testing.T) {
	lr := NewLineReader(strings.NewReader(""))
	if _, err := lr.Next(); err != io.EOF {
		t.Errorf("expected io.EOF on empty input, got %v", err)
	}
	if lr.LineNum() != 0 {
		t.Errorf("line counter moved on empty input: %d", lr.LineNum())
	}
}
