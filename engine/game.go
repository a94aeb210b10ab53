package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Command string

const (
	MoveLeft  Command = "left"  // Moves the player one column to the left.
	MoveRight Command = "right" // Moves the player one column to the right.
	Shoot     Command = "shoot" // Fires from the player's column.
)

// Action is a command issued by one of the players.
type Action struct {
	Player  int
	Command Command
}

type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// Game drives an Engine in real time. A single goroutine owns the engine:
// it applies the players' actions between frames, runs a frame on every
// tick and publishes a Snapshot after it.
type Game struct {
	id uuid.UUID

	updateCh chan *Snapshot
	actionCh chan Action
	doneCh   chan struct{}
	ticker   Ticker
	frame    time.Duration
	opts     []Option
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewGame returns a game running at fps frames per second. opts are passed
// to every engine the game starts.
func NewGame(fps int, l *slog.Logger, opts ...Option) *Game {
	if fps <= 0 {
		fps = 60
	}
	// the ticker is reset to the frame duration when the game starts.
	return NewConfigurableGame(newWrappedTicker(time.Hour), time.Second/time.Duration(fps), l, opts...)
}

func NewConfigurableGame(ticker Ticker, frame time.Duration, l *slog.Logger, opts ...Option) *Game {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	// time.Ticker panics on a non-positive interval.
	frame = max(frame, time.Nanosecond)
	return &Game{
		updateCh: make(chan *Snapshot),
		actionCh: make(chan Action, 16),
		ticker:   ticker,
		frame:    frame,
		opts:     opts,
		logger:   l,
	}
}

// Start begins a new game, stopping the running one if any. The game is
// stopped by Stop() from the moment Start returns, and its first snapshot
// is sent on GetUpdate() before the first frame.
func (g *Game) Start() {
	// actions queued for a previous game.
	for len(g.actionCh) > 0 {
		<-g.actionCh
	}

	e := New(g.opts...)
	done := make(chan struct{})
	id := uuid.New()
	g.mu.Lock()
	if g.doneCh != nil {
		close(g.doneCh)
	}
	g.id = id
	g.doneCh = done
	g.mu.Unlock()

	g.logger.Info("game started", slog.String("session", id.String()))
	go g.run(e, done)
}

// Stop ends the running game. Calling it when no game is running is a no-op.
func (g *Game) Stop() {
	g.ticker.Stop()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.doneCh != nil {
		close(g.doneCh)
		g.doneCh = nil
	}
}

// Session returns the id of the last game started.
func (g *Game) Session() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

// Action queues a for the next frame. Actions are dropped when the queue
// is full or no game is running.
func (g *Game) Action(a Action) {
	select {
	case g.actionCh <- a:
	default:
	}
}

func (g *Game) GetUpdate() <-chan *Snapshot {
	return g.updateCh
}

func (g *Game) run(e *Engine, done <-chan struct{}) {
	select {
	case g.updateCh <- e.Snapshot():
	case <-done:
		return
	}
	g.listen(e, done)
}

func (g *Game) listen(e *Engine, done <-chan struct{}) {
	g.ticker.Reset(g.frame)
	session := slog.String("session", g.Session().String())
	for {
		select {
		case <-g.ticker.C():
			// the tick may belong to a newer game.
			select {
			case <-done:
				g.logger.Info("game stopped", session)
				return
			default:
			}
			g.drain(e)
			e.Update()
			s := e.Snapshot()
			select {
			case g.updateCh <- s:
			case <-done:
				return
			}
			if s.GameOver {
				g.stopTicker(done)
				g.logger.Info("game over",
					session,
					slog.Int("score", s.Stats.Score),
					slog.Int("rectangles", s.Stats.Rectangles),
					slog.Int("max_combo", s.Stats.MaxCombo),
					slog.Int("accuracy", s.Stats.Accuracy()),
				)
				return
			}
		case a := <-g.actionCh:
			apply(e, a)
		case <-done:
			g.logger.Info("game stopped", session)
			return
		}
	}
}

// stopTicker stops the ticker unless a newer game owns it.
func (g *Game) stopTicker(done <-chan struct{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.doneCh == done {
		g.ticker.Stop()
	}
}

// drain applies the actions queued since the last frame.
func (g *Game) drain(e *Engine) {
	for {
		select {
		case a := <-g.actionCh:
			apply(e, a)
		default:
			return
		}
	}
}

func apply(e *Engine, a Action) {
	switch a.Command {
	case MoveLeft:
		e.MovePlayer(a.Player, -1)
	case MoveRight:
		e.MovePlayer(a.Player, 1)
	case Shoot:
		e.PlayerShoot(a.Player)
	}
}
