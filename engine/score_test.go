package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleScore(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		multiplier    float64
		want          int
	}{
		{name: "2x2 without combo", width: 2, height: 2, multiplier: 1, want: 400},
		{name: "1x2 without combo", width: 1, height: 2, multiplier: 1, want: 200},
		{name: "3x2 with x2 combo", width: 3, height: 2, multiplier: 2, want: int(math.Floor(6 * 100 * math.Pow(1.4, 4) * 2))},
		{name: "2x2 with x1.5 combo", width: 2, height: 2, multiplier: 1.5, want: 600},
		{name: "bonus is capped", width: 4, height: 5, multiplier: 1, want: int(math.Floor(20 * 100 * math.Pow(1.4, 12)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectangleScore(tt.width, tt.height, tt.multiplier))
		})
	}
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 0, Stats{}.Accuracy())
	assert.Equal(t, 100, Stats{ShotsFired: 4, ShotsHit: 4}.Accuracy())
	assert.Equal(t, 67, Stats{ShotsFired: 3, ShotsHit: 2}.Accuracy())
	assert.Equal(t, 33, Stats{ShotsFired: 3, ShotsHit: 1}.Accuracy())
}
