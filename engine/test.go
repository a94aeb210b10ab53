package engine

import (
	"sync"
	"time"
)

// MockTicker is a mock implementation of the ticker interface.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	interval    time.Duration
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
	m.interval = d
}

// TickWithin ticks unless nothing reads the tick within d.
func (m *MockTicker) TickWithin(d time.Duration) bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-time.After(d):
		return false
	}
}

// Interval returns the duration of the last Reset.
func (m *MockTicker) Interval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// SequenceRand replays the given values in order, starting over once
// exhausted. An empty sequence always returns 0.
type SequenceRand struct {
	Floats []float64
	Ints   []int
	fi, ii int
}

func (r *SequenceRand) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0
	}
	v := r.Floats[r.fi%len(r.Floats)]
	r.fi++
	return v
}

// IntN returns the next value of Ints clamped to [0,n).
func (r *SequenceRand) IntN(n int) int {
	if len(r.Ints) == 0 {
		return 0
	}
	v := r.Ints[r.ii%len(r.Ints)]
	r.ii++
	return max(0, min(v, n-1))
}

// NewTestEngine returns an engine with a scripted random source that never
// drops power-ups (every float draw is 0.99).
func NewTestEngine(opts ...Option) *Engine {
	return New(append([]Option{WithRand(&SequenceRand{Floats: []float64{0.99}})}, opts...)...)
}

// SetScore forces the score. The tier follows on the next Update.
func (e *Engine) SetScore(score int) { e.score = score }

// AddShape puts s on the board.
func (e *Engine) AddShape(s *Shape) { e.shapes = append(e.shapes, s) }

// AddFallingPowerUp drops a power-up of type t at x,y.
func (e *Engine) AddFallingPowerUp(t PowerUpType, x, y float64) {
	e.falling = append(e.falling, PowerUp{Type: t, X: x, Y: y, Speed: powerUpDropSpeed})
}

// ActivatePowerUp starts t for owner as if it was picked up.
func (e *Engine) ActivatePowerUp(t PowerUpType, owner int) {
	e.activatePowerUp(t, owner, "test")
}

// SetPlayerX moves a player without the move rules.
func (e *Engine) SetPlayerX(id, x int) {
	if p := e.player(id); p != nil {
		p.X = x
	}
}
