package geom

// Point is a coordinate on the unbounded simulation plane. Points are
// plain values: comparable, freely copied, usable as map keys.
type Point struct {
	X, Y int64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Less orders points by X, then Y. Used for stable dumps.
func (p Point) Less(q Point) bool {
	return p.X < q.X || (p.X == q.X && p.Y < q.Y)
}

// neighborhoodOffsets enumerates the Moore neighborhood, top row first.
// The order is fixed so neighbor enumeration is reproducible.
var neighborhoodOffsets = [8]Point{
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

// Neighbors returns the 8 points surrounding p.
func Neighbors(p Point) [8]Point {
	var out [8]Point
	for i, off := range neighborhoodOffsets {
		out[i] = p.Add(off)
	}
	return out
}
