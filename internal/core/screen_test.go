package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorPink)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorPink {
		t.Errorf("GetCell(5, 5) = %+v, expected X/pink", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorNone {
		t.Error("Out of bounds GetCell should be uncoloured")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', ColorSun)

	s.Clear()

	if got := s.GetCell(1, 1); got.Rune != ' ' || got.Color != ColorNone {
		t.Errorf("After Clear, expected blank cell, got %+v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected to start with %q", got, "  Hello")
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "█▒x", ColorMint)

	if s.Get(0, 0) != '█' || s.Get(1, 0) != '▒' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte text not laid out one rune per cell: %q", s.Row(0))
	}
	if s.GetCell(1, 0).Color != ColorMint {
		t.Error("DrawTextColored should colour every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, got row %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'A')
	s.Set(4, 4, 'B')

	s.Resize(3, 3)

	if s.Get(1, 1) != 'A' {
		t.Error("Resize should keep content inside the new bounds")
	}
	if s.Width() != 3 || s.Height() != 3 {
		t.Errorf("Resize dimensions = %dx%d, expected 3x3", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q, expected %q", got, "abc\nde ")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 1, 10, '-', ColorGray)

	if got := s.Row(1); got != " -----" {
		t.Errorf("row = %q, expected the line clipped at the edge", got)
	}
	if c := s.GetCell(2, 1); c.Color != ColorGray {
		t.Errorf("cell colour = %v, expected %v", c.Color, ColorGray)
	}
}
