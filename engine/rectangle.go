package engine

// Point is a cell position. Depending on the context it's either absolute
// on the board or relative to a shape's anchor.
type Point struct {
	X, Y int
}

// bounds returns the bounding box of points as its top-left corner and size.
// An empty set has a zero size.
func bounds(points []Point) (minX, minY, width, height int) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return minX, minY, maxX - minX + 1, maxY - minY + 1
}

// isExactRectangle reports whether points fill their bounding box without
// gaps. Both the falling shapes and the board components are checked with
// it. points must not hold duplicates.
func isExactRectangle(points []Point) bool {
	if len(points) == 0 {
		return false
	}
	_, _, w, h := bounds(points)
	return len(points) == w*h
}

// pointKey packs a point into a single integer usable as a set key.
func pointKey(p Point) int64 {
	return int64(p.X)<<32 | int64(uint32(p.Y)) //nolint:gosec
}
