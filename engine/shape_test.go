package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPerfectRectangle(t *testing.T) {
	tests := []struct {
		name    string
		offsets []Point
		want    bool
	}{
		{name: "single block", offsets: []Point{{0, 0}}, want: true},
		{name: "square", offsets: Templates[3], want: true},
		{name: "line", offsets: Templates[4], want: true},
		{name: "L has a gap", offsets: Templates[1], want: false},
		{name: "T has gaps", offsets: Templates[2], want: false},
		{name: "U has a hole on top", offsets: Templates[5], want: false},
		{name: "S", offsets: Templates[6], want: false},
		{name: "Z", offsets: Templates[7], want: false},
		{name: "3x2 away from the anchor", offsets: []Point{{2, 3}, {3, 3}, {4, 3}, {2, 4}, {3, 4}, {4, 4}}, want: true},
		{name: "two cells apart", offsets: []Point{{0, 0}, {2, 0}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewShape(0, 0, tt.offsets)
			assert.Equal(t, tt.want, s.IsPerfectRectangle())
			assert.Equal(t, tt.want, s.Len() == s.Width*s.Height)
		})
	}
}

func TestAddBlock(t *testing.T) {
	s := NewShape(5, 2.5, []Point{{0, 0}, {1, 0}, {0, 1}})
	require.Equal(t, 3, s.Len())
	require.False(t, s.IsPerfectRectangle())

	assert.False(t, s.AddBlock(0, 1), "adding an existing cell must fail")
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.AddBlock(1, 1))
	assert.Equal(t, 4, s.Len())
	assert.True(t, s.IsPerfectRectangle())

	assert.False(t, s.AddBlock(1, 1))
	assert.Equal(t, 4, s.Len())

	assert.True(t, s.AddBlock(1, 2))
	assert.Equal(t, 2, s.Width)
	assert.Equal(t, 3, s.Height)
	assert.False(t, s.IsPerfectRectangle())
}

func TestNewShapeDropsDuplicates(t *testing.T) {
	s := NewShape(0, 0, []Point{{0, 0}, {0, 0}, {1, 0}})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []Point{{0, 0}, {1, 0}}, s.Offsets())
}

func TestAbsolutePoints(t *testing.T) {
	s := NewShape(4, 7.8, []Point{{0, 0}, {1, 0}, {1, 1}})
	assert.Equal(t, []Point{{4, 7}, {5, 7}, {5, 8}}, s.AbsolutePoints())
	assert.Equal(t, 8, s.Bottom())

	assert.True(t, s.Occupies(5, 8))
	assert.True(t, s.Occupies(4, 7))
	assert.False(t, s.Occupies(4, 8))
	assert.False(t, s.Occupies(6, 7))

	s.MoveDown(0.3)
	assert.InDelta(t, 8.1, s.Y, 1e-9)
	assert.True(t, s.Occupies(4, 8))
	assert.Equal(t, 9, s.Bottom())
}

func TestNewRandomShape(t *testing.T) {
	for i, template := range Templates {
		var width, height int
		for _, p := range template {
			width = max(width, p.X+1)
			height = max(height, p.Y+1)
		}
		for _, col := range []int{0, GridWidth} {
			s := newRandomShape(&SequenceRand{Ints: []int{i, col}})
			assert.Equal(t, len(template), s.Len())
			assert.Equal(t, float64(-height), s.Y)
			assert.GreaterOrEqual(t, s.X, 0)
			assert.LessOrEqual(t, s.X+width, GridWidth, "template %d must start on the board", i)
		}
	}
}

func TestShapeIDsAreUnique(t *testing.T) {
	a := NewShape(0, 0, Templates[0])
	b := NewShape(0, 0, Templates[0])
	assert.NotEqual(t, a.ID, b.ID)
}
