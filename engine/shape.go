package engine

import (
	"math"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
)

// Shape is a falling polyomino. Its cells are offsets relative to the anchor
// X,Y. Y is fractional so the shape falls smoothly, collisions use floor(Y).
type Shape struct {
	// ID is only used to pick a colour when rendering.
	ID uuid.UUID
	X  int
	Y  float64

	// Width and Height are the size of the bounding box of the offsets.
	Width, Height int

	offsets []Point
	index   *intmap.Map[int64, struct{}]
}

// NewShape returns a shape anchored at x,y. Duplicated offsets are dropped.
func NewShape(x int, y float64, offsets []Point) *Shape {
	s := &Shape{
		ID:    uuid.New(),
		X:     x,
		Y:     y,
		index: intmap.New[int64, struct{}](len(offsets) + 4),
	}
	for _, p := range offsets {
		s.insert(p)
	}
	s.recalcBounds()
	return s
}

func (s *Shape) insert(p Point) bool {
	k := pointKey(p)
	if s.index.Has(k) {
		return false
	}
	s.index.Put(k, struct{}{})
	s.offsets = append(s.offsets, p)
	return true
}

func (s *Shape) recalcBounds() {
	_, _, s.Width, s.Height = bounds(s.offsets)
}

// Len returns the number of cells of the shape.
func (s *Shape) Len() int { return len(s.offsets) }

// Offsets returns a copy of the cells relative to the anchor.
func (s *Shape) Offsets() []Point {
	out := make([]Point, len(s.offsets))
	copy(out, s.offsets)
	return out
}

// AbsolutePoints returns the board cells the shape covers.
func (s *Shape) AbsolutePoints() []Point {
	row := int(math.Floor(s.Y))
	out := make([]Point, len(s.offsets))
	for i, p := range s.offsets {
		out[i] = Point{X: s.X + p.X, Y: row + p.Y}
	}
	return out
}

// Occupies reports whether the shape covers the board cell x,y.
func (s *Shape) Occupies(x, y int) bool {
	return s.index.Has(pointKey(Point{X: x - s.X, Y: y - int(math.Floor(s.Y))}))
}

// Bottom returns the lowest board row covered by the shape.
func (s *Shape) Bottom() int {
	row := int(math.Floor(s.Y))
	bottom := math.MinInt
	for _, p := range s.offsets {
		bottom = max(bottom, row+p.Y)
	}
	return bottom
}

func (s *Shape) MoveDown(speed float64) {
	s.Y += speed
}

// AddBlock attaches a cell at relX,relY. It returns false and leaves the
// shape untouched when the cell is already part of it.
func (s *Shape) AddBlock(relX, relY int) bool {
	if !s.insert(Point{X: relX, Y: relY}) {
		return false
	}
	s.recalcBounds()
	return true
}

// IsPerfectRectangle reports whether the cells fill their bounding box.
func (s *Shape) IsPerfectRectangle() bool {
	return isExactRectangle(s.offsets)
}

/*
Templates is the catalogue new shapes are drawn from.

.	Block		L		T		Square

.	0 1 2		0 1 2		0 1 2		0 1 2
0	O X X		O X X		O O O		O O X
1	X X X		O O X		X O X		O O X

.	Line		U		S		Z

.	0 1 2		0 1 2		0 1 2		0 1 2
0	O X X		O X O		X O O		O O X
1	O X X		O O O		O O X		X O O
2	O X X
*/
var Templates = [][]Point{
	{{0, 0}},
	{{0, 0}, {0, 1}, {1, 1}},
	{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}},
	{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
}

// newRandomShape draws a template and a column so that the whole shape is
// on the board, and places it right above the top row.
func newRandomShape(r Rand) *Shape {
	template := Templates[r.IntN(len(Templates))]
	var width, height int
	for _, p := range template {
		width = max(width, p.X+1)
		height = max(height, p.Y+1)
	}
	x := r.IntN(GridWidth - width)
	return NewShape(x, float64(-height), template)
}
