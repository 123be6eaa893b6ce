package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a cell coordinate. Pointer positions may be negative or beyond the
// grid; check them with Grid.Contains before indexing.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Rect is an inclusive cell rectangle with Min <= Max on both axes.
type Rect struct {
	Min, Max Point
}

// RectFromCorners builds a Rect from two opposite corners given in any order.
func RectFromCorners(a, b Point) Rect {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return Rect{Min: a, Max: b}
}

// Dx returns the number of columns covered by the rectangle.
func (r Rect) Dx() int { return r.Max.X - r.Min.X + 1 }

// Dy returns the number of rows covered by the rectangle.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y + 1 }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
