package engine

import (
	"log/slog"
	"math"
	"slices"
)

type PowerUpType uint8

const (
	RapidFire  PowerUpType = iota // per player: more bullets in flight
	MultiShot                     // per player: three bullets per shot
	TimeFreeze                    // global: shapes stop falling
	SlowMotion                    // global: shapes fall slower
)

var PowerUpTypes = []PowerUpType{RapidFire, MultiShot, TimeFreeze, SlowMotion}

func (t PowerUpType) String() string {
	switch t {
	case RapidFire:
		return "RAPID_FIRE"
	case MultiShot:
		return "MULTI_SHOT"
	case TimeFreeze:
		return "TIME_FREEZE"
	case SlowMotion:
		return "SLOW_MOTION"
	default:
		return "UNKNOWN"
	}
}

// Color is the tint of the particles emitted when t is picked up.
func (t PowerUpType) Color() string {
	switch t {
	case RapidFire:
		return "#ef4444"
	case MultiShot:
		return "#f59e0b"
	case TimeFreeze:
		return "#06b6d4"
	case SlowMotion:
		return "#8b5cf6"
	default:
		return "#ffffff"
	}
}

// PowerUp is a power-up falling down the board.
type PowerUp struct {
	Type  PowerUpType
	X, Y  float64
	Speed float64
}

// ActivePowerUp is a running effect. There's at most one per Type and Owner.
type ActivePowerUp struct {
	Type      PowerUpType
	Owner     int
	Remaining int // frames
}

const powerUpDropSpeed = 0.02

// HasPowerUp reports whether any player has t running.
func (e *Engine) HasPowerUp(t PowerUpType) bool {
	return slices.ContainsFunc(e.active, func(a ActivePowerUp) bool { return a.Type == t })
}

func (e *Engine) hasPlayerPowerUp(t PowerUpType, owner int) bool {
	return slices.ContainsFunc(e.active, func(a ActivePowerUp) bool {
		return a.Type == t && a.Owner == owner
	})
}

// activatePowerUp starts t for owner, replacing and restarting an instance
// of the same type that owner may already have.
func (e *Engine) activatePowerUp(t PowerUpType, owner int, source string) {
	e.active = slices.DeleteFunc(e.active, func(a ActivePowerUp) bool {
		return a.Type == t && a.Owner == owner
	})
	e.active = append(e.active, ActivePowerUp{Type: t, Owner: owner, Remaining: e.cfg.PowerUpDuration})
	e.logger.Debug("power-up activated",
		slog.String("type", t.String()),
		slog.Int("owner", owner),
		slog.String("source", source),
	)
}

func (e *Engine) tickActivePowerUps() {
	for i := range e.active {
		e.active[i].Remaining--
	}
	e.active = slices.DeleteFunc(e.active, func(a ActivePowerUp) bool { return a.Remaining <= 0 })
}

// trySpawnPowerUp drops a random power-up at x,y with the configured chance.
func (e *Engine) trySpawnPowerUp(x, y float64) {
	if e.rand.Float64() >= e.cfg.PowerUpDropChance {
		return
	}
	t := PowerUpTypes[e.rand.IntN(len(PowerUpTypes))]
	e.falling = append(e.falling, PowerUp{Type: t, X: x, Y: y, Speed: powerUpDropSpeed})
}

// updateFallingPowerUps moves the falling power-ups down. Once on the bottom
// row a power-up is picked up by the player standing on floor(X); nobody
// there and it's lost after passing GridHeight+1.
func (e *Engine) updateFallingPowerUps(speed float64) {
	kept := e.falling[:0]
	for _, pu := range e.falling {
		pu.Y += speed * e.cfg.PowerUpFallFactor
		if pu.Y >= GridHeight-1 {
			if p := e.playerAt(int(math.Floor(pu.X))); p != nil {
				e.activatePowerUp(pu.Type, p.ID, "pickup")
				e.spawnPowerUpParticles(pu.X, pu.Y, pu.Type)
				continue
			}
			if pu.Y > GridHeight+1 {
				continue
			}
		}
		kept = append(kept, pu)
	}
	e.falling = kept
}
