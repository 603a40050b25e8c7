package geom

import "testing"

func TestAddSub(t *testing.T) {
	p := Point{X: 3, Y: -2}
	q := Point{X: -1, Y: 5}

	if got := p.Add(q); got != (Point{X: 2, Y: 3}) {
		t.Fatalf("Add = %v, expected {2 3}", got)
	}
	if got := p.Sub(q); got != (Point{X: 4, Y: -7}) {
		t.Fatalf("Sub = %v, expected {4 -7}", got)
	}
}

func TestNeighborsReturnsSurroundingPoints(t *testing.T) {
	p := Point{X: 1, Y: 5}
	expected := [8]Point{
		{X: 0, Y: 6}, {X: 1, Y: 6}, {X: 2, Y: 6},
		{X: 0, Y: 5}, {X: 2, Y: 5},
		{X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4},
	}

	if got := Neighbors(p); got != expected {
		t.Fatalf("Neighbors(%v) = %v, expected %v", p, got, expected)
	}
}

func TestNeighborsExcludesCenter(t *testing.T) {
	p := Point{X: 0, Y: 0}
	for _, n := range Neighbors(p) {
		if n == p {
			t.Fatalf("neighborhood of %v contains the point itself", p)
		}
	}
}
