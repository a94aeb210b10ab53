package engine

import (
	"log/slog"
	"math"
	"slices"
)

const (
	Player1 = 1
	Player2 = 2

	player1Color = "#ef4444"
	player2Color = "#3b82f6"
)

// Bullet flies up its owner's column until it leaves the board or hits
// something.
type Bullet struct {
	X     int
	Y     float64
	Owner int
	Speed float64
}

// Engine is the whole game state. It's not safe for concurrent use: Update,
// MovePlayer and PlayerShoot must be called from a single goroutine.
type Engine struct {
	cfg    Config
	rand   Rand
	logger *slog.Logger

	grid      *Grid
	players   []*Player
	shapes    []*Shape
	bullets   []Bullet
	falling   []PowerUp
	active    []ActivePowerUp
	particles []Particle

	difficulty       difficulty
	wave             WaveState
	combo            ComboState
	stats            Stats
	score            int
	frame            int
	framesSinceSpawn int
	gameOver         bool
}

type Option func(*Engine)

func WithConfig(c Config) Option {
	return func(e *Engine) { e.cfg = c }
}

// WithRand replaces the random source, tests use it to script every draw.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rand = r }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns a game ready for its first Update.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:    DefaultConfig(),
		rand:   globalRand{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(e)
	}

	e.grid = NewGrid()
	e.players = []*Player{
		newPlayer(Player1, GridWidth/3, player1Color),
		newPlayer(Player2, 2*GridWidth/3, player2Color),
	}
	e.difficulty = newDifficulty()
	e.wave = newWave(e.cfg)
	e.combo = newCombo(e.cfg.ComboWindow)
	return e
}

// Update advances the game by one frame. It does nothing once the game is over.
func (e *Engine) Update() {
	if e.gameOver {
		return
	}
	e.frame++

	for _, p := range e.players {
		p.animate()
	}

	e.updateDifficulty()
	e.wave.update(e.difficulty.index, e.cfg.WaveMinTier)
	e.combo.tick()
	e.tickActivePowerUps()

	speed := e.effectiveSpeed()
	e.spawnShapes()

	if !e.HasPowerUp(TimeFreeze) {
		e.moveShapes(speed)
		if e.gameOver {
			e.logger.Debug("game over",
				slog.Int("frame", e.frame),
				slog.Int("score", e.score),
			)
			return
		}
	}

	e.updateBullets()
	e.updateFallingPowerUps(speed)
	e.updateParticles()
}

func (e *Engine) updateDifficulty() {
	if e.difficulty.update(e.score, e.cfg.SpeedSmoothing, e.cfg.MicroRamp) {
		e.spawnLevelUpParticles()
		e.logger.Debug("difficulty changed",
			slog.String("tier", e.difficulty.level().Name),
			slog.Int("index", e.difficulty.index),
			slog.Int("score", e.score),
		)
	}
}

// effectiveSpeed returns the fall speed of this frame once the calm wave
// and slow motion are applied.
func (e *Engine) effectiveSpeed() float64 {
	speed := e.difficulty.speed
	if e.wave.Calm() {
		speed *= e.wave.CalmSpeedMultiplier
	}
	if e.HasPowerUp(SlowMotion) {
		speed *= e.cfg.SlowMotionFactor
	}
	return speed
}

func (e *Engine) spawnShapes() {
	e.framesSinceSpawn++
	interval := e.difficulty.spawnRate
	if e.wave.Active {
		interval = int(math.Floor(float64(interval) * e.cfg.IntenseSpawnFactor))
	}
	if e.framesSinceSpawn > interval {
		e.shapes = append(e.shapes, newRandomShape(e.rand))
		e.framesSinceSpawn = 0
	}
}

// moveShapes lets every shape fall. A shape reaching the row above the
// players ends the game.
func (e *Engine) moveShapes(speed float64) {
	for _, s := range e.shapes {
		s.MoveDown(speed)
		if s.Bottom() >= GridHeight-1 {
			e.gameOver = true
		}
	}
}

// updateBullets moves the bullets up and resolves their hits. A bullet hits
// at most one thing per frame: a falling power-up first, then the first
// shape in the list covering its cell. Removals are applied once every
// bullet has moved.
func (e *Engine) updateBullets() {
	var bulletsToRemove, shapesToRemove []int

bullets:
	for bi := range e.bullets {
		b := &e.bullets[bi]
		b.Y -= b.Speed
		if b.Y < 0 {
			bulletsToRemove = append(bulletsToRemove, bi)
			continue
		}

		for i := len(e.falling) - 1; i >= 0; i-- {
			pu := e.falling[i]
			if b.X == int(math.Floor(pu.X)) && math.Abs(b.Y-pu.Y) < 1 {
				e.activatePowerUp(pu.Type, b.Owner, "shot")
				e.spawnPowerUpParticles(pu.X, pu.Y, pu.Type)
				e.falling = slices.Delete(e.falling, i, i+1)
				bulletsToRemove = append(bulletsToRemove, bi)
				continue bullets
			}
		}

		row := int(math.Floor(b.Y))
		for si, s := range e.shapes {
			// a shape cleared earlier this frame is gone already.
			if slices.Contains(shapesToRemove, si) || !s.Occupies(b.X, row) {
				continue
			}
			e.stats.ShotsHit++

			// the new block goes right below the hit cell, on the bullet's side.
			relX := b.X - s.X
			relY := int(math.Ceil(b.Y)) + 1 - int(math.Floor(s.Y))
			if s.AddBlock(relX, relY) {
				bulletsToRemove = append(bulletsToRemove, bi)
				e.spawnImpactParticles(float64(b.X), b.Y, b.Owner)
				if s.IsPerfectRectangle() {
					e.clearShape(s)
					shapesToRemove = append(shapesToRemove, si)
				}
			}
			break
		}
	}

	// remove in reverse order to avoid index shift issues.
	for i := len(bulletsToRemove) - 1; i >= 0; i-- {
		idx := bulletsToRemove[i]
		e.bullets = slices.Delete(e.bullets, idx, idx+1)
	}
	slices.Sort(shapesToRemove)
	for i := len(shapesToRemove) - 1; i >= 0; i-- {
		idx := shapesToRemove[i]
		e.shapes = slices.Delete(e.shapes, idx, idx+1)
	}
}

// clearShape scores a shape that became a perfect rectangle.
func (e *Engine) clearShape(s *Shape) {
	e.combo.register(e.cfg.ComboDisplay)
	e.stats.MaxCombo = max(e.stats.MaxCombo, e.combo.Count)
	e.stats.Rectangles++

	points := RectangleScore(s.Width, s.Height, e.combo.Multiplier)
	e.score += points
	e.logger.Debug("rectangle cleared",
		slog.Int("width", s.Width),
		slog.Int("height", s.Height),
		slog.Int("points", points),
		slog.Int("combo", e.combo.Count),
	)

	e.spawnClearParticles(s)
	e.trySpawnPowerUp(
		float64(s.X)+float64(s.Width)/2,
		math.Floor(s.Y)+float64(s.Height)/2,
	)
}

// MovePlayer moves a player one column left (-1) or right (1). Moves off the
// board or onto the other player are ignored.
func (e *Engine) MovePlayer(id, direction int) {
	if e.gameOver || (direction != -1 && direction != 1) {
		return
	}
	p := e.player(id)
	if p == nil {
		return
	}
	x := p.X + direction
	if x < 0 || x >= GridWidth || e.playerAt(x) != nil {
		return
	}
	p.X = x
}

// PlayerShoot fires from the player's column, or from the three columns
// around it with MultiShot. Nothing is fired while the player already has
// as many bullets in flight as allowed.
func (e *Engine) PlayerShoot(id int) {
	if e.gameOver {
		return
	}
	p := e.player(id)
	if p == nil {
		return
	}

	limit := e.cfg.BulletCap
	if e.hasPlayerPowerUp(RapidFire, id) {
		limit = e.cfg.RapidFireBulletCap
	}
	if e.liveBullets(id) >= limit {
		return
	}

	e.stats.ShotsFired++
	p.kick()

	columns := []int{p.X}
	if e.hasPlayerPowerUp(MultiShot, id) {
		columns = []int{p.X - 1, p.X, p.X + 1}
	}
	for _, x := range columns {
		if x < 0 || x >= GridWidth {
			continue
		}
		e.bullets = append(e.bullets, Bullet{X: x, Y: GridHeight - 1, Owner: id, Speed: e.cfg.BulletSpeed})
	}
}

func (e *Engine) player(id int) *Player {
	for _, p := range e.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (e *Engine) playerAt(x int) *Player {
	for _, p := range e.players {
		if p.X == x {
			return p
		}
	}
	return nil
}

func (e *Engine) liveBullets(owner int) int {
	n := 0
	for _, b := range e.bullets {
		if b.Owner == owner {
			n++
		}
	}
	return n
}

func (e *Engine) Score() int                      { return e.score }
func (e *Engine) GameOver() bool                  { return e.gameOver }
func (e *Engine) Frame() int                      { return e.frame }
func (e *Engine) Difficulty() DifficultyLevel     { return e.difficulty.level() }
func (e *Engine) DifficultyIndex() int            { return e.difficulty.index }
func (e *Engine) Speed() float64                  { return e.difficulty.speed }
func (e *Engine) Combo() ComboState               { return e.combo }
func (e *Engine) Wave() WaveState                 { return e.wave }
func (e *Engine) Grid() *Grid                     { return e.grid }
func (e *Engine) Shapes() []*Shape                { return e.shapes }
func (e *Engine) Players() []*Player              { return e.players }
func (e *Engine) Bullets() []Bullet               { return e.bullets }
func (e *Engine) FallingPowerUps() []PowerUp      { return e.falling }
func (e *Engine) ActivePowerUps() []ActivePowerUp { return e.active }
func (e *Engine) Particles() []Particle           { return e.particles }

// Stats returns the summary shown when the game is over.
func (e *Engine) Stats() Stats {
	s := e.stats
	s.Score = e.score
	return s
}
