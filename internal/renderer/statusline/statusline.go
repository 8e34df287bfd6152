// Package statusline renders the three-segment status line: mode,
// file name and cursor position, joined by powerline separator glyphs.
package statusline

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/kestrel/internal/input/mode"
	"github.com/dshills/kestrel/internal/renderer/backend"
	"github.com/dshills/kestrel/internal/renderer/core"
)

// Separator glyphs (Powerline private-use code points).
const (
	SeparatorRight rune = '\ue0b0' // between mode and file segments
	SeparatorLeft  rune = '\ue0b2' // between file and position segments
)

// Fixed palette. The light accent marks the mode and position segments,
// the dark neutral the file segment.
var (
	AccentColor  = core.MustHex("#8ec07c")
	NeutralColor = core.MustHex("#3c3836")
)

// Segment is a run of styled text in the status line.
type Segment struct {
	Text  string
	Style core.Style
}

// Width returns the display width of the segment.
func (s Segment) Width() int {
	return runewidth.StringWidth(s.Text)
}

// StatusLine holds the state shown in the status line.
type StatusLine struct {
	mode     mode.Mode
	filename string
	col, row int // screen-relative cursor
	width    int

	accentStyle  core.Style
	neutralStyle core.Style
}

// New creates a status line in Normal mode.
func New() *StatusLine {
	return &StatusLine{
		mode:         mode.Normal,
		accentStyle:  core.DefaultStyle().WithBackground(AccentColor).WithForeground(core.ColorBlack).Bold(),
		neutralStyle: core.DefaultStyle().WithBackground(NeutralColor).WithForeground(core.ColorWhite),
	}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(m mode.Mode) {
	s.mode = m
}

// SetFilename updates the displayed file name.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetPosition updates the displayed screen cursor position.
func (s *StatusLine) SetPosition(col, row int) {
	s.col = col
	s.row = row
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = max(width, 0)
}

// Segments returns the five runs that make up the status line, left to
// right: mode, separator, file, separator, position.
//
// The file segment is padded or truncated to exactly
// width - modeWidth - positionWidth - 2 columns, floored at 0.
func (s *StatusLine) Segments() []Segment {
	modeSeg := Segment{Text: " " + s.mode.DisplayName() + " ", Style: s.accentStyle}
	posSeg := Segment{Text: fmt.Sprintf(" %d:%d ", s.col, s.row), Style: s.accentStyle}

	fileWidth := max(s.width-modeSeg.Width()-posSeg.Width()-2, 0)
	fileText := runewidth.FillRight(runewidth.Truncate(" "+s.filename, fileWidth, ""), fileWidth)
	fileSeg := Segment{Text: fileText, Style: s.neutralStyle}

	return []Segment{
		modeSeg,
		{Text: string(SeparatorRight), Style: transition(modeSeg.Style, fileSeg.Style)},
		fileSeg,
		{Text: string(SeparatorLeft), Style: transition(posSeg.Style, fileSeg.Style)},
		posSeg,
	}
}

// transition styles a separator glyph so that it reads as the edge of the
// from segment drawn over the to segment's background.
func transition(from, to core.Style) core.Style {
	return core.DefaultStyle().WithForeground(from.Background).WithBackground(to.Background)
}

// Render draws the status line on the given row. Cells past the width
// are dropped.
func (s *StatusLine) Render(b backend.Backend, row int) {
	x := 0
	for _, seg := range s.Segments() {
		for _, r := range seg.Text {
			w := core.RuneWidth(r)
			if r == SeparatorRight || r == SeparatorLeft {
				// Private-use glyphs are ambiguous-width; the layout counts one cell.
				w = 1
			}
			if w == 0 {
				continue
			}
			if x+w > s.width {
				return
			}
			b.SetCell(x, row, core.Cell{Rune: r, Width: w, Style: seg.Style})
			x += w
		}
	}
}
