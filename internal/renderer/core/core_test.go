package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF8000", ColorFromRGB(255, 128, 0), false},
		{"ff8000", ColorFromRGB(255, 128, 0), false},
		{"#fff", ColorFromRGB(255, 255, 255), false},
		{"#12345", Color{}, true},
		{"zzzzzz", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ColorFromHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ColorFromHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equals(tt.want) {
			t.Errorf("ColorFromHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex should panic on invalid input")
		}
	}()
	MustHex("not a color")
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(Color{Default: true, R: 9}) {
		t.Error("default colors should be equal regardless of components")
	}
	if ColorFromRGB(3, 0, 0).Equals(ColorFromRGB(3, 0, 1)) {
		t.Error("colors with different components should differ")
	}
	if got := ColorFromRGB(1, 2, 3).String(); got != "#010203" {
		t.Errorf("String() = %q", got)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().WithForeground(ColorBlack).WithBackground(ColorWhite).Bold()
	if !s.Attributes.Has(AttrBold) {
		t.Error("Bold() should set AttrBold")
	}
	if !s.Foreground.Equals(ColorBlack) || !s.Background.Equals(ColorWhite) {
		t.Errorf("unexpected colors: %+v", s)
	}
	if s.Equals(DefaultStyle()) {
		t.Error("styled and default style should differ")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r         rune
		want      int
		wantCells int
	}{
		{'a', 1, 1},
		{'\t', 0, 1},
		{0x7F, 0, 1},
		{'世', 2, 2},
		{'\u0301', 0, 0},
	}

	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
		if got := CellWidth(tt.r); got != tt.wantCells {
			t.Errorf("CellWidth(%q) = %d, want %d", tt.r, got, tt.wantCells)
		}
	}
}

func TestCells(t *testing.T) {
	c := NewCell('x')
	if c.Width != 1 || !c.Style.Equals(DefaultStyle()) {
		t.Errorf("NewCell = %+v", c)
	}
	if !EmptyCell().Equals(NewCell(' ')) {
		t.Error("EmptyCell should equal a default-styled space")
	}
}
