package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 15, 20, 10)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"top-left corner", Pt(10, 15), true},
		{"inside", Pt(15, 20), true},
		{"bottom-right inside", Pt(29, 24), true},
		{"right edge (exclusive)", Pt(30, 20), false},
		{"bottom edge (exclusive)", Pt(15, 25), false},
		{"outside left", Pt(5, 20), false},
		{"outside top", Pt(15, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if c := r.Center(); c != Pt(15, 17) {
		t.Errorf("Center() = %v, expected (15, 17)", c)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, -2)

	if got := p.Add(Pt(1, 1)); got != Pt(4, -1) {
		t.Errorf("Add = %v, expected (4, -1)", got)
	}
	if got := p.Neg(); got != Pt(-3, 2) {
		t.Errorf("Neg = %v, expected (-3, 2)", got)
	}
	if got := p.Add(p.Neg()); got != (Point{}) {
		t.Errorf("p + -p = %v, expected origin", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
