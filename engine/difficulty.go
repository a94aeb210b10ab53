package engine

// DifficultyLevel is a tier of the game. The active tier is the highest one
// whose MinScore has been reached.
type DifficultyLevel struct {
	Name      string
	MinScore  int
	Speed     float64 // cells per frame
	SpawnRate int     // frames between spawns
	Color     string  // HUD colour
}

var DifficultyLevels = []DifficultyLevel{
	{Name: "Débutant", MinScore: 0, Speed: 0.012, SpawnRate: 280, Color: "#22d3ee"},
	{Name: "Normal", MinScore: 1000, Speed: 0.018, SpawnRate: 220, Color: "#34d399"},
	{Name: "Rapide", MinScore: 3000, Speed: 0.026, SpawnRate: 170, Color: "#fbbf24"},
	{Name: "Intense", MinScore: 6000, Speed: 0.034, SpawnRate: 130, Color: "#fb923c"},
	{Name: "Expert", MinScore: 10000, Speed: 0.042, SpawnRate: 100, Color: "#f87171"},
	{Name: "Tachyon", MinScore: 16000, Speed: 0.052, SpawnRate: 75, Color: "#e879f9"},
}

// TierFor returns the index of the tier reached with score.
func TierFor(score int) int {
	for i := len(DifficultyLevels) - 1; i >= 0; i-- {
		if score >= DifficultyLevels[i].MinScore {
			return i
		}
	}
	return 0
}

// progressInTier returns how far score went from tier's threshold to the
// next one, in [0,1]. The last tier is always complete.
func progressInTier(tier, score int) float64 {
	if tier+1 >= len(DifficultyLevels) {
		return 1
	}
	curr, next := DifficultyLevels[tier], DifficultyLevels[tier+1]
	return min(1, float64(score-curr.MinScore)/float64(next.MinScore-curr.MinScore))
}

// difficulty eases the fall speed toward the current tier's speed instead
// of snapping to it.
type difficulty struct {
	index     int
	speed     float64
	target    float64
	spawnRate int
}

func newDifficulty() difficulty {
	l := DifficultyLevels[0]
	return difficulty{speed: l.Speed, target: l.Speed, spawnRate: l.SpawnRate}
}

func (d *difficulty) level() DifficultyLevel { return DifficultyLevels[d.index] }

// update selects the tier for score and moves the speed one step toward its
// target. It reports whether the tier changed.
func (d *difficulty) update(score int, smoothing, ramp float64) bool {
	changed := false
	if idx := TierFor(score); idx != d.index {
		d.index = idx
		d.target = DifficultyLevels[idx].Speed
		d.spawnRate = DifficultyLevels[idx].SpawnRate
		changed = true
	}

	d.speed += (d.target - d.speed) * smoothing
	d.speed += progressInTier(d.index, score) * ramp * smoothing
	return changed
}
