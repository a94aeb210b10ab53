package engine

import "github.com/google/uuid"

// ShapeState is a shape as seen by a renderer.
type ShapeState struct {
	ID    uuid.UUID
	X     int
	Y     float64
	Cells []Point // absolute board cells
}

// PlayerState is a player as seen by a renderer.
type PlayerState struct {
	ID          int
	X           int
	Color       string
	GlowPhase   float64
	ThrustPhase float64
	Recoil      float64
}

// Snapshot is a copy of the game state taken after a frame. It shares
// nothing with the engine so it's safe to read from another goroutine.
type Snapshot struct {
	Frame           int
	Score           int
	GameOver        bool
	Difficulty      DifficultyLevel
	DifficultyIndex int
	Speed           float64
	Combo           ComboState
	Wave            WaveState
	Shapes          []ShapeState
	Players         []PlayerState
	Bullets         []Bullet
	FallingPowerUps []PowerUp
	ActivePowerUps  []ActivePowerUp
	Particles       []Particle
	Stats           Stats
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() *Snapshot {
	s := &Snapshot{
		Frame:           e.frame,
		Score:           e.score,
		GameOver:        e.gameOver,
		Difficulty:      e.difficulty.level(),
		DifficultyIndex: e.difficulty.index,
		Speed:           e.difficulty.speed,
		Combo:           e.combo,
		Wave:            e.wave,
		Shapes:          make([]ShapeState, len(e.shapes)),
		Players:         make([]PlayerState, len(e.players)),
		Bullets:         append([]Bullet(nil), e.bullets...),
		FallingPowerUps: append([]PowerUp(nil), e.falling...),
		ActivePowerUps:  append([]ActivePowerUp(nil), e.active...),
		Particles:       append([]Particle(nil), e.particles...),
		Stats:           e.Stats(),
	}
	for i, sh := range e.shapes {
		s.Shapes[i] = ShapeState{ID: sh.ID, X: sh.X, Y: sh.Y, Cells: sh.AbsolutePoints()}
	}
	for i, p := range e.players {
		s.Players[i] = PlayerState{
			ID:          p.ID,
			X:           p.X,
			Color:       p.Color,
			GlowPhase:   p.GlowPhase,
			ThrustPhase: p.ThrustPhase,
			Recoil:      p.Recoil,
		}
	}
	return s
}

// ActivePowerUp returns the running power-up of type t for owner.
func (s *Snapshot) ActivePowerUp(t PowerUpType, owner int) (ActivePowerUp, bool) {
	for _, a := range s.ActivePowerUps {
		if a.Type == t && a.Owner == owner {
			return a, true
		}
	}
	return ActivePowerUp{}, false
}
