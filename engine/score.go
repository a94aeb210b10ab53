package engine

import "math"

const (
	pointsPerCell = 100
	sizeBonusBase = 1.4
	sizeBonusCap  = 12
)

// RectangleScore returns the points of a cleared width x height rectangle.
// Bigger rectangles get an exponential bonus: area*100*1.4^min(area-2,12).
func RectangleScore(width, height int, multiplier float64) int {
	area := width * height
	bonus := math.Pow(sizeBonusBase, float64(min(area-2, sizeBonusCap)))
	return int(math.Floor(float64(area*pointsPerCell) * bonus * multiplier))
}

// Stats is the end of game summary.
type Stats struct {
	Score      int
	Rectangles int
	MaxCombo   int
	ShotsFired int
	ShotsHit   int
}

// Accuracy returns the percentage of shots that hit a shape, 0 when nothing
// was fired.
func (s Stats) Accuracy() int {
	if s.ShotsFired == 0 {
		return 0
	}
	return int(math.Round(float64(s.ShotsHit) / float64(s.ShotsFired) * 100))
}
