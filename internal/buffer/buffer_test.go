package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{""}},
		{"single", "abc", []string{"abc"}},
		{"trailing newline", "abc\n", []string{"abc"}},
		{"two trailing newlines", "abc\n\n", []string{"abc", ""}},
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"cr", "a\rb", []string{"a", "b"}},
		{"blank middle", "ab\n\nxyz", []string{"ab", "", "xyz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString("", tt.input)
			if b.LineCount() != len(tt.want) {
				t.Fatalf("LineCount() = %d, want %d", b.LineCount(), len(tt.want))
			}
			for i, want := range tt.want {
				got, ok := b.Line(i)
				if !ok || got != want {
					t.Errorf("Line(%d) = %q, %v, want %q", i, got, ok, want)
				}
			}
		})
	}
}

func TestLinePastEnd(t *testing.T) {
	b := NewFromString("x", "one\ntwo")

	if _, ok := b.Line(2); ok {
		t.Error("expected no line past end")
	}
	if _, ok := b.Line(-1); ok {
		t.Error("expected no line before start")
	}
}

func TestName(t *testing.T) {
	if got := New("").Name(); got != Placeholder {
		t.Errorf("Name() = %q, want %q", got, Placeholder)
	}
	if got := New("notes.txt").Name(); got != "notes.txt" {
		t.Errorf("Name() = %q, want notes.txt", got)
	}
}

func TestInsert(t *testing.T) {
	b := NewFromString("", "héllo\n")

	if err := b.Insert(1, 0, 'X'); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got, _ := b.Line(0); got != "hXéllo" {
		t.Errorf("line = %q, want %q", got, "hXéllo")
	}

	// Appending at the end of the line is allowed.
	if err := b.Insert(len([]rune("hXéllo")), 0, '!'); err != nil {
		t.Fatalf("Insert at end: %v", err)
	}
	if got, _ := b.Line(0); got != "hXéllo!" {
		t.Errorf("line = %q, want %q", got, "hXéllo!")
	}
	if !b.Modified() {
		t.Error("expected buffer to be modified")
	}
}

func TestInsertOutOfRange(t *testing.T) {
	b := NewFromString("", "ab")

	tests := []struct {
		col, line int
	}{
		{3, 0},
		{-1, 0},
		{0, 1},
		{0, -1},
	}
	for _, tt := range tests {
		err := b.Insert(tt.col, tt.line, 'x')
		if !errors.Is(err, ErrPositionOutOfRange) {
			t.Errorf("Insert(%d, %d) = %v, want ErrPositionOutOfRange", tt.col, tt.line, err)
		}
	}
	if b.Modified() {
		t.Error("rejected inserts should not modify the buffer")
	}
}

func TestNewFromReader(t *testing.T) {
	b, err := NewFromReader("r", strings.NewReader("one\r\ntwo\r\n"))
	if err != nil {
		t.Fatalf("NewFromReader: %v", err)
	}
	if b.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", b.LineCount())
	}
	for i, want := range []string{"one", "two"} {
		if got, _ := b.Line(i); got != want {
			t.Errorf("Line(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("first\nsecond\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b.Name() != path {
		t.Errorf("Name() = %q, want %q", b.Name(), path)
	}
	if b.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", b.LineCount())
	}
}

func TestOpenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	b, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b.Name() != path || b.LineCount() != 1 {
		t.Errorf("got name %q with %d lines", b.Name(), b.LineCount())
	}
}

func TestOpenEmptyPath(t *testing.T) {
	b, err := Open("")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b.Name() != Placeholder || b.LineCount() != 1 {
		t.Errorf("got name %q with %d lines", b.Name(), b.LineCount())
	}
}

func TestOpenDirectory(t *testing.T) {
	_, err := Open(t.TempDir())
	if !errors.Is(err, ErrIsDirectory) {
		t.Errorf("Open(dir) = %v, want ErrIsDirectory", err)
	}
}
