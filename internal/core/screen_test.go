package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3, 2) = %q, expected '@'", got)
	}

	// Out of bounds is silently ignored / returns space
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '#', ColorBrightCyan)

	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorBrightCyan {
		t.Errorf("GetCell(1, 1) = %+v, expected '#' in bright cyan", cell)
	}

	if oob := s.GetCell(99, 99); oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected default space", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.Set(0, 0, 'A')
	s.SetCell(3, 2, 'B', ColorRed)

	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear left cell (%d, %d) = %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "Hi!")

	if s.Row(1) != "  Hi!     " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "long")
	if s.Get(9, 0) != 'o' {
		t.Errorf("expected clipped text, got %q", s.Get(9, 0))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'K')

	s.Resize(8, 6)
	if s.Get(1, 1) != 'K' {
		t.Error("Resize lost content within the preserved area")
	}
	if s.Width() != 8 || s.Height() != 6 {
		t.Errorf("Resize dimensions = %dx%d", s.Width(), s.Height())
	}

	s.Resize(2, 2)
	if s.Get(1, 1) != 'K' {
		t.Error("Shrinking resize lost in-bounds content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", got)
	}
}
