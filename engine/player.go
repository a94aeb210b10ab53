package engine

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	glowStep   = 0.06
	thrustStep = 0.12

	// recoil goes from 1 to 0 losing 0.08 per frame.
	recoilFrames = 12.5
)

// Player is a ship on the bottom row. The animation phases only matter to
// renderers, they never block the game logic.
type Player struct {
	ID    int
	X     int
	Color string

	GlowPhase   float64
	ThrustPhase float64
	Recoil      float64

	recoil *gween.Tween
}

func newPlayer(id, x int, color string) *Player {
	return &Player{ID: id, X: x, Color: color}
}

// kick starts the recoil animation of a shot.
func (p *Player) kick() {
	p.Recoil = 1
	p.recoil = gween.New(1, 0, recoilFrames, ease.Linear)
}

// animate advances the animation phases by one frame.
func (p *Player) animate() {
	p.GlowPhase += glowStep
	p.ThrustPhase += thrustStep
	if p.recoil == nil {
		return
	}
	v, done := p.recoil.Update(1)
	p.Recoil = float64(v)
	if done {
		p.Recoil = 0
		p.recoil = nil
	}
}
