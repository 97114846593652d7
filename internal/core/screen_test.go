package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("dimensions = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", got)
	}

	// Out of bounds writes are dropped
	s.SetColor(-1, 0, 'A', ColorRed)
	s.SetColor(100, 0, 'A', ColorRed)
	s.SetColor(0, -1, 'A', ColorRed)
	s.SetColor(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0) != blankCell || s.GetCell(100, 0) != blankCell {
		t.Error("out of bounds GetCell should return a blank cell")
	}
	if rowText(s, 0) != "          " {
		t.Errorf("row 0 = %q", rowText(s, 0))
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#', ColorGreen)

	if got := s.GetCell(4, 4); got.Rune != '#' || got.Color != ColorGreen {
		t.Errorf("after Fill got %+v", got)
	}

	s.Clear()
	if got := s.GetCell(4, 4); got != blankCell {
		t.Errorf("after Clear got %+v", got)
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "Hello", ColorCyan)

	if row := rowText(s, 1); !strings.HasPrefix(row, "  Hello") {
		t.Errorf("row 1 = %q", row)
	}
	if s.GetCell(2, 1).Color != ColorCyan {
		t.Error("DrawTextColor lost the color")
	}

	// Clipped at the right edge
	s.DrawTextColor(18, 0, "Hello", ColorCyan)
	if rowText(s, 0)[18:] != "He" {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorYellow)

	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Error("DrawTextCentered placed text at the wrong column")
	}
	if s.GetCell(x, 2).Color != ColorYellow {
		t.Error("DrawTextCentered lost the color")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorBlue)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).Rune != '#' {
				t.Errorf("expected '#' at (%d, %d), got %q", x, y, s.GetCell(x, y).Rune)
			}
		}
	}
	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(5, 5).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' || s.GetCell(x, 4).Rune != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(rowText(s, 0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", rowText(s, 0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(rowText(s, 0), "Hello") {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", rowText(s, 0))
	}
	if len([]rune(rowText(s, 7))) != 15 {
		t.Errorf("new rows should be padded to width, got %d", len(rowText(s, 7)))
	}
}

func rowText(s *Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}
