package client

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"ageofrock/engine"

	"github.com/eiannone/keyboard"
)

type clientState int

const (
	lobby clientState = iota
	playing
)

type state struct {
	current clientState
	mu      sync.Mutex
}

func (s *state) get() clientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *state) set(c clientState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

type game interface {
	Start()
	GetUpdate() <-chan *engine.Snapshot
	Action(engine.Action)
	Stop()
}

type renderer interface {
	game(*engine.Snapshot)
	lobby(message)
}

// Client runs the two players' game on a single terminal.
type Client struct {
	game   game
	render renderer
	logger *slog.Logger
	kbCh   <-chan keyboard.KeyEvent
	state  *state
	stopCh chan struct{}
}

type Options struct {
	FPS     int
	NoColor bool
	Writer  io.Writer
	Logger  *slog.Logger
}

func New(o *Options) (*Client, error) {
	l := o.Logger
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	var w io.Writer = os.Stdout
	if o.Writer != nil {
		w = o.Writer
	}
	r, err := newRender(w, l, o.NoColor, o.FPS)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	kb, err := keyboard.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		game:   engine.NewGame(o.FPS, l, engine.WithLogger(l)),
		render: r,
		logger: l,
		kbCh:   kb,
		state:  &state{current: lobby},
	}, nil
}

// Start shows the lobby and blocks until the players quit.
func (c *Client) Start() {
	c.render.game(nil)
	c.render.lobby(welcome())
	var wg sync.WaitGroup
	wg.Add(1)
	go c.listenKB(&wg)
	wg.Wait()
	c.stop()
}

func (c *Client) listenKB(wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		event, ok := <-c.kbCh
		if !ok {
			c.logger.Error("Keyboard events channel closed unexpectedly")
			return
		}
		if event.Err != nil {
			c.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
			return
		}
		if event.Key == keyboard.KeyCtrlC {
			return
		}
		switch c.state.get() {
		case lobby:
			switch event.Rune {
			case 'p':
				c.stop()
				c.state.set(playing)
				c.stopCh = make(chan struct{})
				c.game.Start()
				go c.listenGame(c.stopCh)
			case 'q':
				return
			}
		case playing:
			if event.Key == keyboard.KeyEsc {
				c.state.set(lobby)
				c.stop()
				continue
			}
			if a, ok := keyAction(event); ok {
				c.game.Action(a)
			}
		}
	}
}

// stop ends the running game, if any.
func (c *Client) stop() {
	if c.stopCh == nil {
		return
	}
	close(c.stopCh)
	c.stopCh = nil
	c.game.Stop()
}

// listenGame renders the game until it's over or stop is closed. It's the
// only one drawing while a game runs.
func (c *Client) listenGame(stop <-chan struct{}) {
	for {
		select {
		case s := <-c.game.GetUpdate():
			c.render.game(s)
			if s.GameOver {
				c.logger.Debug("game over", slog.Int("score", s.Stats.Score))
				c.state.set(lobby)
				c.render.lobby(gameOver(s.Stats))
				return
			}
		case <-stop:
			c.render.lobby(welcome())
			return
		}
	}
}

// keyAction maps a key to a player action. Player 1 plays on the left of
// the keyboard, player 2 on the arrows.
func keyAction(e keyboard.KeyEvent) (engine.Action, bool) {
	switch {
	case e.Rune == 'a' || e.Rune == 'A':
		return engine.Action{Player: engine.Player1, Command: engine.MoveLeft}, true
	case e.Rune == 'd' || e.Rune == 'D':
		return engine.Action{Player: engine.Player1, Command: engine.MoveRight}, true
	case e.Key == keyboard.KeySpace:
		return engine.Action{Player: engine.Player1, Command: engine.Shoot}, true
	case e.Key == keyboard.KeyArrowLeft:
		return engine.Action{Player: engine.Player2, Command: engine.MoveLeft}, true
	case e.Key == keyboard.KeyArrowRight:
		return engine.Action{Player: engine.Player2, Command: engine.MoveRight}, true
	case e.Key == keyboard.KeyEnter || e.Key == keyboard.KeyArrowUp:
		return engine.Action{Player: engine.Player2, Command: engine.Shoot}, true
	}
	return engine.Action{}, false
}
