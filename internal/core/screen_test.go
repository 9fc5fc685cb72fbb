package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(5, 3)

	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 5x3", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		if row := s.Row(y); row != "     " {
			t.Errorf("row %d = %q, want blanks", y, row)
		}
	}
}

func TestScreenSetAndGet(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(1, 1, '@', ColorUnit)

	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorUnit {
		t.Errorf("GetCell(1, 1) = %+v, want '@' in ColorUnit", cell)
	}

	// Out of bounds writes are ignored and reads return blanks.
	s.Set(10, 10, '#', ColorUnit)
	if got := s.Get(10, 10); got != ' ' {
		t.Errorf("Get(10, 10) = %q, want space", got)
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "Ой", ColorHeadline)

	// Two runes in ten cells start at column 4.
	if got := s.Get(4, 0); got != 'О' {
		t.Errorf("Get(4, 0) = %q, want 'О'", got)
	}
	if got := s.Get(5, 0); got != 'й' {
		t.Errorf("Get(5, 0) = %q, want 'й'", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorContainer)

	expected := strings.Join([]string{
		"┌──┐",
		"│  │",
		"└──┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nwant\n%s", got, expected)
	}
}

func TestScreenDrawBoxTooSmall(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawBox(NewRect(0, 0, 1, 3), ColorContainer)

	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Error("DrawBox with width 1 should draw nothing")
	}
}

func TestScreenFillRectClips(t *testing.T) {
	s := NewScreen(4, 2)
	s.FillRect(NewRect(2, 1, 5, 5), '=', ColorContainer)

	if got := s.String(); got != "    \n  ==" {
		t.Errorf("String() = %q", got)
	}
	if c := s.GetCell(3, 1); c.Color != ColorContainer {
		t.Errorf("cell color = %v, want ColorContainer", c.Color)
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(0, 0, 'x', ColorDefault)
	s.Resize(5, 2)

	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 5x2", s.Width(), s.Height())
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) after resize = %q, want space", got)
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-1, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, want empty", s.String())
	}
}
