package life

import (
	"testing"

	"sparselife/pkg/geom"
)

func TestFromPointsContainsInitialPoints(t *testing.T) {
	points := []geom.Point{{X: 5, Y: 2}, {X: 5, Y: 2}}
	g := FromPoints(points)

	if _, ok := g.AgeOf(points[0]); !ok {
		t.Fatalf("point %v not alive after construction", points[0])
	}
	if g.Population() != 1 {
		t.Fatalf("population = %d, expected duplicates to collapse to 1", g.Population())
	}
}

func TestTickKillsCellsWithFewerThanTwoNeighbors(t *testing.T) {
	g := FromPoints([]geom.Point{{X: 0, Y: 0}, {X: 5, Y: 2}, {X: 5, Y: 3}})
	g.Tick()

	if g.Population() != 0 {
		t.Fatalf("population = %d after tick, expected isolated cells to die", g.Population())
	}
}

func TestTickKillsCellsWithMoreThanThreeNeighbors(t *testing.T) {
	g := FromPoints([]geom.Point{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 1},
	})
	g.Tick()

	if _, ok := g.AgeOf(geom.Point{X: 1, Y: 1}); ok {
		t.Fatalf("cell (1,1) survived with 4 neighbors")
	}
}

func TestTickBirthsCellWithExactlyThreeNeighbors(t *testing.T) {
	g := FromPoints([]geom.Point{{X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}})
	g.Tick()

	if _, ok := g.AgeOf(geom.Point{X: 0, Y: 0}); !ok {
		t.Fatalf("cell (0,0) was not born with 3 neighbors")
	}
}

func TestTickPreservesCellsWithTwoNeighbors(t *testing.T) {
	g := FromPoints([]geom.Point{{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}})
	g.Tick()

	if _, ok := g.AgeOf(geom.Point{X: 5, Y: 2}); !ok {
		t.Fatalf("cell (5,2) with 2 neighbors did not survive")
	}
}

func TestTickSurvivalKeepsBirthGeneration(t *testing.T) {
	g := FromPoints([]geom.Point{
		{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 6, Y: 2}, {X: 5, Y: 3},
	})
	g.Tick()

	age, ok := g.AgeOf(geom.Point{X: 5, Y: 2})
	if !ok {
		t.Fatalf("cell (5,2) with 3 neighbors did not survive")
	}
	if age != 1 {
		t.Fatalf("age = %d, expected 1: survival must not reset the birth stamp", age)
	}
}

func TestTickAdvancesGeneration(t *testing.T) {
	g := Empty()
	if g.Generation() != 0 {
		t.Fatalf("fresh grid generation = %d, expected 0", g.Generation())
	}
	g.Tick()
	if g.Generation() != 1 {
		t.Fatalf("generation = %d after one tick, expected 1", g.Generation())
	}
}

func TestTickOnEmptyGridIsTotal(t *testing.T) {
	g := Empty()
	for i := 0; i < 1000; i++ {
		g.Tick()
	}
	if g.Generation() != 1000 {
		t.Fatalf("generation = %d after 1000 ticks, expected 1000", g.Generation())
	}
	if g.Population() != 0 {
		t.Fatalf("population = %d, expected empty grid to stay empty", g.Population())
	}
}

func TestTickStampsNewbornsWithCurrentGeneration(t *testing.T) {
	g := FromPoints([]geom.Point{{X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}})

	if age, ok := g.AgeOf(geom.Point{X: 0, Y: 1}); !ok || age != 0 {
		t.Fatalf("seed cell age = %d (alive=%v), expected 0", age, ok)
	}

	g.Tick()

	age, ok := g.AgeOf(geom.Point{X: 0, Y: 0})
	if !ok {
		t.Fatalf("cell (0,0) was not born")
	}
	if age != 0 {
		t.Fatalf("newborn age = %d, expected 0: birth stamp must be the post-tick generation", age)
	}
}

func TestAgeOfDeadPoint(t *testing.T) {
	g := Empty()
	if _, ok := g.AgeOf(geom.Point{}); ok {
		t.Fatalf("dead point reported an age")
	}
}

func TestAgeOfAlivePoint(t *testing.T) {
	p := geom.Point{X: 0, Y: 1}
	g := FromPoints([]geom.Point{p})

	age, ok := g.AgeOf(p)
	if !ok || age != 0 {
		t.Fatalf("AgeOf = (%d, %v), expected (0, true)", age, ok)
	}
}

func TestAgeTracksSurvivingCellAcrossTicks(t *testing.T) {
	// A block is a still life: every cell survives every tick.
	g := FromPoints([]geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1},
	})

	for k := uint64(1); k <= 5; k++ {
		g.Tick()
		age, ok := g.AgeOf(geom.Point{X: 0, Y: 0})
		if !ok {
			t.Fatalf("block cell died at generation %d", k)
		}
		if age != k {
			t.Fatalf("age = %d at generation %d, expected %d", age, k, k)
		}
	}
}

func TestAddPointStampsCurrentGeneration(t *testing.T) {
	p := geom.Point{X: 0, Y: 0}
	g := Empty()

	g.Tick().AddPoint(p)

	age, ok := g.AgeOf(p)
	if !ok || age != 0 {
		t.Fatalf("AgeOf = (%d, %v), expected a fresh cell of age 0", age, ok)
	}
}

func TestAddPointDoesNotOverwriteExistingStamp(t *testing.T) {
	// Pad the seed so the cell survives the tick between the two adds.
	p := geom.Point{X: 0, Y: 0}
	g := FromPoints([]geom.Point{p, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}})
	g.Tick()

	g.AddPoint(p)

	age, ok := g.AgeOf(p)
	if !ok || age != 1 {
		t.Fatalf("AgeOf = (%d, %v), expected age 1: re-adding must keep the original stamp", age, ok)
	}
}

func TestRemovePoint(t *testing.T) {
	p := geom.Point{X: 0, Y: 0}
	g := FromPoints([]geom.Point{p})

	g.RemovePoint(p)
	if _, ok := g.AgeOf(p); ok {
		t.Fatalf("point alive after removal")
	}

	// Removing a dead point is a no-op.
	g.RemovePoint(p)
	if _, ok := g.AgeOf(p); ok {
		t.Fatalf("point alive after double removal")
	}
}

func TestBlinkerOscillates(t *testing.T) {
	g := FromPoints([]geom.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}})

	g.Tick()
	for _, p := range []geom.Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}} {
		if _, ok := g.AgeOf(p); !ok {
			t.Fatalf("cell %v dead after first tick, expected horizontal blinker", p)
		}
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d after first tick, expected 3", g.Population())
	}

	g.Tick()
	for _, p := range []geom.Point{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}} {
		if _, ok := g.AgeOf(p); !ok {
			t.Fatalf("cell %v dead after second tick, expected vertical blinker", p)
		}
	}
}

func TestTickIsDeterministic(t *testing.T) {
	seed := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1}, {X: 1, Y: 2},
	}
	a := FromPoints(seed)
	b := FromPoints(seed)

	for i := 0; i < 16; i++ {
		a.Tick()
		b.Tick()
	}

	if a.Generation() != b.Generation() {
		t.Fatalf("generations diverged: %d vs %d", a.Generation(), b.Generation())
	}
	if a.Population() != b.Population() {
		t.Fatalf("populations diverged: %d vs %d", a.Population(), b.Population())
	}
	a.ForEach(func(p geom.Point, birth uint64) {
		age, ok := b.AgeOf(p)
		if !ok {
			t.Fatalf("cell %v alive in one grid only", p)
		}
		if age != a.Generation()-birth {
			t.Fatalf("cell %v age diverged", p)
		}
	})
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	topLeft := geom.Point{X: -10, Y: -10}
	bottomRight := geom.Point{X: 10, Y: 10}

	a := Random(42, topLeft, bottomRight)
	b := Random(42, topLeft, bottomRight)

	if a.Population() != b.Population() {
		t.Fatalf("populations diverged for equal seeds: %d vs %d", a.Population(), b.Population())
	}
	a.ForEach(func(p geom.Point, _ uint64) {
		if _, ok := b.AgeOf(p); !ok {
			t.Fatalf("cell %v present in only one grid", p)
		}
	})
}

func TestRandomStaysInsideRegion(t *testing.T) {
	topLeft := geom.Point{X: -4, Y: 2}
	bottomRight := geom.Point{X: 4, Y: 8}
	g := Random(7, topLeft, bottomRight)

	if g.Population() == 0 {
		t.Fatalf("random grid came up empty")
	}
	area := (bottomRight.X - topLeft.X) * (bottomRight.Y - topLeft.Y)
	if int64(g.Population()) > area*8/10 {
		t.Fatalf("population %d exceeds the 80%% sample budget of area %d", g.Population(), area)
	}
	g.ForEach(func(p geom.Point, _ uint64) {
		if p.X < topLeft.X || p.X >= bottomRight.X || p.Y < topLeft.Y || p.Y >= bottomRight.Y {
			t.Fatalf("cell %v outside region [%v, %v)", p, topLeft, bottomRight)
		}
	})
}

func TestBoundsTracksAliveCells(t *testing.T) {
	g := Empty()
	if _, _, ok := g.Bounds(); ok {
		t.Fatalf("empty grid reported bounds")
	}

	g.AddPoint(geom.Point{X: -3, Y: 7}).AddPoint(geom.Point{X: 5, Y: -1})
	min, max, ok := g.Bounds()
	if !ok {
		t.Fatalf("grid with cells reported no bounds")
	}
	if min != (geom.Point{X: -3, Y: -1}) || max != (geom.Point{X: 5, Y: 7}) {
		t.Fatalf("bounds = %v..%v, expected {-3 -1}..{5 7}", min, max)
	}
}
