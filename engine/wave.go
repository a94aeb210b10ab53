package engine

// WaveState is the breathing wave: from WaveMinTier on, the game alternates
// between an intense phase (faster spawns) and a calm one (slower falls).
type WaveState struct {
	Active              bool // intense phase
	Timer               int  // frames left in the phase
	IntenseDuration     int
	CalmDuration        int
	CalmSpeedMultiplier float64
}

func newWave(c Config) WaveState {
	return WaveState{
		IntenseDuration:     c.IntenseDuration,
		CalmDuration:        c.CalmDuration,
		CalmSpeedMultiplier: c.CalmSpeedMultiplier,
	}
}

// update counts the phase down and flips it when it runs out. Below minTier
// the wave is held inactive.
func (w *WaveState) update(tier, minTier int) {
	if tier < minTier {
		w.Active = false
		w.Timer = 0
		return
	}

	w.Timer--
	if w.Timer <= 0 {
		w.Active = !w.Active
		if w.Active {
			w.Timer = w.IntenseDuration
		} else {
			w.Timer = w.CalmDuration
		}
	}
}

// Calm reports whether the fall speed is currently slowed down.
func (w WaveState) Calm() bool {
	return !w.Active && w.Timer > 0
}
