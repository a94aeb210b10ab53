package engine

import "math"

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota
	ParticleGlow
	ParticleStar
	ParticleRing
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleSpark:
		return "spark"
	case ParticleGlow:
		return "glow"
	case ParticleStar:
		return "star"
	case ParticleRing:
		return "ring"
	default:
		return "unknown"
	}
}

// Particle is a short lived visual effect. Life goes from 1 to 0 in MaxLife
// frames and Alpha mirrors it.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   string
	Kind    ParticleKind
	Alpha   float64
}

const (
	particleGravity  = 0.015
	particleFriction = 0.98
	particleShrink   = 0.995

	// particles per event
	ImpactParticles       = 8
	ClearParticlesPerCell = 4
	PowerUpParticles      = 20
	LevelUpParticles      = 40
)

var clearColors = []string{"#fbbf24", "#f59e0b", "#fef3c7", "#ffffff"}

// step integrates one frame and reports whether the particle is still alive.
func (p *Particle) step() bool {
	p.Life -= 1 / p.MaxLife
	p.X += p.VX
	p.Y += p.VY
	p.VY += particleGravity
	p.VX *= particleFriction
	p.Alpha = max(0, p.Life)
	p.Size *= particleShrink
	return p.Life > 0
}

func (e *Engine) updateParticles() {
	kept := e.particles[:0]
	for _, p := range e.particles {
		if p.step() {
			kept = append(kept, p)
		}
	}
	clear(e.particles[len(kept):])
	e.particles = kept
}

func (e *Engine) emit(p Particle) {
	p.Life = 1
	p.Alpha = 1
	e.particles = append(e.particles, p)
}

func (e *Engine) spawnImpactParticles(x, y float64, owner int) {
	color := "#ffffff"
	if p := e.player(owner); p != nil {
		color = p.Color
	}
	for i := range ImpactParticles {
		angle := 2*math.Pi*float64(i)/ImpactParticles + e.rand.Float64()*0.3
		e.emit(Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * 0.08,
			VY:      math.Sin(angle)*0.08 - 0.02,
			MaxLife: 25 + e.rand.Float64()*15,
			Size:    3 + e.rand.Float64()*3,
			Color:   color,
			Kind:    ParticleSpark,
		})
	}
}

func (e *Engine) spawnClearParticles(s *Shape) {
	for _, pt := range s.AbsolutePoints() {
		for range ClearParticlesPerCell {
			angle := e.rand.Float64() * 2 * math.Pi
			speed := 0.05 + e.rand.Float64()*0.15
			kind := ParticleGlow
			if e.rand.Float64() > 0.5 {
				kind = ParticleStar
			}
			e.emit(Particle{
				X:       float64(pt.X) + 0.5,
				Y:       float64(pt.Y) + 0.5,
				VX:      math.Cos(angle) * speed,
				VY:      math.Sin(angle)*speed - 0.06,
				MaxLife: 35 + e.rand.Float64()*25,
				Size:    4 + e.rand.Float64()*5,
				Color:   clearColors[e.rand.IntN(len(clearColors))],
				Kind:    kind,
			})
		}
	}
}

func (e *Engine) spawnPowerUpParticles(x, y float64, t PowerUpType) {
	for range PowerUpParticles {
		angle := e.rand.Float64() * 2 * math.Pi
		speed := 0.06 + e.rand.Float64()*0.12
		e.emit(Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			MaxLife: 30 + e.rand.Float64()*20,
			Size:    3 + e.rand.Float64()*6,
			Color:   t.Color(),
			Kind:    ParticleRing,
		})
	}
}

// spawnLevelUpParticles sends stars up from below the board in the colour
// of the new tier.
func (e *Engine) spawnLevelUpParticles() {
	color := e.difficulty.level().Color
	for range LevelUpParticles {
		e.emit(Particle{
			X:       e.rand.Float64() * GridWidth,
			Y:       GridHeight + 1,
			VX:      (e.rand.Float64() - 0.5) * 0.2,
			VY:      -(0.15 + e.rand.Float64()*0.25),
			MaxLife: 50 + e.rand.Float64()*30,
			Size:    3 + e.rand.Float64()*5,
			Color:   color,
			Kind:    ParticleStar,
		})
	}
}
