package grid

import (
	"strings"
	"testing"

	"github.com/koisuji02/webterm/internal/core"
)

func TestFrameOverlayCentersOnBoard(t *testing.T) {
	f := Frame{Title: "Test", Cols: 10, Rows: 10}
	w, h := f.Size()
	dst := core.NewScreen(w, h)

	origin, ok := f.Draw(dst, 0)
	if !ok {
		t.Fatal("screen should fit the frame")
	}
	for x := 0; x < f.Cols; x++ {
		f.Plot(dst, origin, core.Pt(x, 5), core.ColorSun)
	}
	f.Overlay(dst, origin, "Game Over", "R")

	// Box is 13x5 centred on board cell (5, 5)
	row := dst.Row(origin.Y + 4)
	if !strings.Contains(row, "Game Over") {
		t.Fatalf("overlay title not on the centre row: %q", row)
	}
	// The filled row under the box is blanked
	if got := dst.Get(origin.X+10, origin.Y+5); got != ' ' {
		t.Errorf("cell under the overlay = %q, expected blank", got)
	}
	// Board cells outside the box are untouched
	if got := dst.Get(origin.X, origin.Y+5); got != '█' {
		t.Errorf("cell beside the overlay = %q, expected a block", got)
	}
}
