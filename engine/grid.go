package engine

import "github.com/kamstrup/intmap"

type BlockKind uint8

const (
	BlockEmpty BlockKind = iota
	BlockSolid
	BlockPlayer1
	BlockPlayer2
)

// Block is the content of a board cell. The zero value is an empty cell.
type Block struct {
	Kind  BlockKind
	Color string
	Owner int
}

// Grid is the persistent board. It's created once per game and never resized.
// Every query outside [0,GridWidth)x[0,GridHeight) is rejected.
type Grid struct {
	cells [GridHeight][GridWidth]Block
}

func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) IsValid(x, y int) bool {
	return x >= 0 && x < GridWidth && y >= 0 && y < GridHeight
}

func (g *Grid) IsEmpty(x, y int) bool {
	return g.IsValid(x, y) && g.cells[y][x].Kind == BlockEmpty
}

// Cell returns the block at x,y. ok is false when x,y is out of the board.
func (g *Grid) Cell(x, y int) (b Block, ok bool) {
	if !g.IsValid(x, y) {
		return Block{}, false
	}
	return g.cells[y][x], true
}

// SetBlock writes b at x,y. Out of range writes are ignored.
func (g *Grid) SetBlock(x, y int, b Block) {
	if g.IsValid(x, y) {
		g.cells[y][x] = b
	}
}

// CheckRectangleMatch flood-fills the 4-connected occupied component that
// contains start and returns it when it forms a perfect rectangle. It
// returns nil when start is empty or out of the board, or when the
// component has gaps in its bounding box.
func (g *Grid) CheckRectangleMatch(start Point) []Point {
	if !g.IsValid(start.X, start.Y) || g.IsEmpty(start.X, start.Y) {
		return nil
	}

	visited := intmap.New[int, struct{}](16)
	visited.Put(start.Y*GridWidth+start.X, struct{}{})
	queue := []Point{start}
	var component []Point

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		component = append(component, p)

		for _, n := range [4]Point{
			{p.X + 1, p.Y},
			{p.X - 1, p.Y},
			{p.X, p.Y + 1},
			{p.X, p.Y - 1},
		} {
			if !g.IsValid(n.X, n.Y) || g.IsEmpty(n.X, n.Y) {
				continue
			}
			key := n.Y*GridWidth + n.X
			if visited.Has(key) {
				continue
			}
			visited.Put(key, struct{}{})
			queue = append(queue, n)
		}
	}

	if !isExactRectangle(component) {
		return nil
	}
	return component
}

// ClearBlocks empties every cell in points.
func (g *Grid) ClearBlocks(points []Point) {
	for _, p := range points {
		g.SetBlock(p.X, p.Y, Block{})
	}
}
