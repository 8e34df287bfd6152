// Package buffer provides the line-oriented text buffer the editor session
// edits. Lines are stored without terminators; columns are rune indexes.
//
// Line endings are normalized to LF on load. A buffer always has at least
// one (possibly empty) line.
package buffer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	// ErrPositionOutOfRange indicates a line or column outside the buffer.
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrIsDirectory indicates Open was given a directory.
	ErrIsDirectory = errors.New("is a directory")
)

// Placeholder is the display name of a buffer without a source file.
const Placeholder = "[No Name]"

// Buffer is an in-memory list of lines.
// Buffer is not safe for concurrent use.
type Buffer struct {
	name     string
	lines    []string
	modified bool
}

// New creates an empty buffer with the given display name.
func New(name string) *Buffer {
	return &Buffer{name: name, lines: []string{""}}
}

// NewFromString creates a buffer holding s.
func NewFromString(name, s string) *Buffer {
	return &Buffer{name: name, lines: splitLines(s)}
}

// NewFromReader creates a buffer from an io.Reader.
func NewFromReader(name string, r io.Reader) (*Buffer, error) {
	// Read everything first so CRLF pairs split across reads are normalized.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(name, string(data)), nil
}

// Open loads the file at path. A path that does not exist yet yields an
// empty buffer named after it; an empty path yields an unnamed buffer.
func Open(path string) (*Buffer, error) {
	if path == "" {
		return New(""), nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open %s: %w", path, ErrIsDirectory)
	}

	b, err := NewFromReader(path, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// splitLines normalizes CRLF and CR to LF and splits on LF.
// A single trailing newline terminates the last line rather than
// starting a new empty one.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Name returns the display name: the source path, or Placeholder.
func (b *Buffer) Name() string {
	if b.name == "" {
		return Placeholder
	}
	return b.name
}

// Line returns the text of line n and false past the end of the buffer.
func (b *Buffer) Line(n int) (string, bool) {
	if n < 0 || n >= len(b.lines) {
		return "", false
	}
	return b.lines[n], true
}

// LineCount returns the number of lines, always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Insert inserts r on the given line before column col. col may equal the
// line length to append.
func (b *Buffer) Insert(col, line int, r rune) error {
	if line < 0 || line >= len(b.lines) {
		return fmt.Errorf("insert at line %d of %d: %w", line, len(b.lines), ErrPositionOutOfRange)
	}
	runes := []rune(b.lines[line])
	if col < 0 || col > len(runes) {
		return fmt.Errorf("insert at column %d of %d: %w", col, len(runes), ErrPositionOutOfRange)
	}

	var sb strings.Builder
	sb.Grow(len(b.lines[line]) + utf8.RuneLen(r))
	sb.WriteString(string(runes[:col]))
	sb.WriteRune(r)
	sb.WriteString(string(runes[col:]))
	b.lines[line] = sb.String()
	b.modified = true
	return nil
}

// Modified reports whether the buffer changed since it was loaded.
func (b *Buffer) Modified() bool {
	return b.modified
}
