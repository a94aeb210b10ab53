// Package engine contains the simulation of the game: shapes falling down
// the board, bullets attaching blocks to them and rectangles being cleared.
//
// The engine is frame driven. Update() advances one frame, MovePlayer() and
// PlayerShoot() may be called between frames. Invalid commands are ignored.
package engine

const (
	// GridWidth and GridHeight are the board dimensions in cells.
	// Columns are 0 > 19 left to right, rows are 0 > 19 top to bottom.
	GridWidth  = 20
	GridHeight = 20
)

// Config holds the tunables of a game. DefaultConfig() returns the values
// the game is balanced for.
type Config struct {
	SpeedSmoothing float64 // fraction of the gap to the target speed closed every frame
	MicroRamp      float64 // extra speed reached at the end of a tier

	WaveMinTier         int     // first tier index with breathing waves
	IntenseDuration     int     // frames
	CalmDuration        int     // frames
	CalmSpeedMultiplier float64 // applied to the fall speed while calm
	IntenseSpawnFactor  float64 // applied to the spawn interval while intense

	ComboWindow  int // frames allowed between two clears to keep the streak
	ComboDisplay int // frames the combo stays on screen

	PowerUpDuration   int     // frames
	PowerUpDropChance float64 // chance of a drop on every rectangle clear
	PowerUpFallFactor float64 // falling power-ups move this much faster than shapes
	SlowMotionFactor  float64

	BulletCap          int
	RapidFireBulletCap int
	BulletSpeed        float64 // cells per frame
}

// DefaultConfig returns the configuration the game ships with.
func DefaultConfig() Config {
	return Config{
		SpeedSmoothing: 0.005,
		MicroRamp:      0.004,

		WaveMinTier:         2,
		IntenseDuration:     360, // 6 seconds at 60fps
		CalmDuration:        240, // 4 seconds at 60fps
		CalmSpeedMultiplier: 0.6,
		IntenseSpawnFactor:  0.65,

		ComboWindow:  150,
		ComboDisplay: 90,

		PowerUpDuration:   300,
		PowerUpDropChance: 0.20,
		PowerUpFallFactor: 1.5,
		SlowMotionFactor:  0.4,

		BulletCap:          3,
		RapidFireBulletCap: 8,
		BulletSpeed:        1,
	}
}
