package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerAnimation(t *testing.T) {
	p := newPlayer(Player1, 3, player1Color)
	p.animate()
	assert.InDelta(t, glowStep, p.GlowPhase, 1e-9)
	assert.InDelta(t, thrustStep, p.ThrustPhase, 1e-9)
	assert.Equal(t, 0.0, p.Recoil)

	p.kick()
	assert.Equal(t, 1.0, p.Recoil)

	p.animate()
	assert.InDelta(t, 0.92, p.Recoil, 1e-5)

	for range 11 {
		p.animate()
	}
	assert.InDelta(t, 0.04, p.Recoil, 1e-5)

	p.animate()
	assert.Equal(t, 0.0, p.Recoil)
	p.animate()
	assert.Equal(t, 0.0, p.Recoil)

	assert.InDelta(t, 15*glowStep, p.GlowPhase, 1e-9)
	assert.Equal(t, 3, p.X, "animation never moves the ship")
}

func TestKickRestartsRecoil(t *testing.T) {
	p := newPlayer(Player2, 0, player2Color)
	p.kick()
	for range 5 {
		p.animate()
	}
	assert.InDelta(t, 0.6, p.Recoil, 1e-5)
	p.kick()
	assert.Equal(t, 1.0, p.Recoil)
	p.animate()
	assert.InDelta(t, 0.92, p.Recoil, 1e-5)
}
