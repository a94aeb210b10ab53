package engine

import (
	"testing"
	"time"
)

func TestListenEndsOnGameOver(t *testing.T) {
	ticker := NewMockTicker()
	game := NewConfigurableGame(ticker, time.Millisecond, nil)
	e := NewTestEngine()
	e.AddShape(NewShape(0, 18.999, []Point{{0, 0}}))
	done := make(chan struct{})
	game.doneCh = done
	exited := make(chan struct{})
	go func() {
		game.listen(e, done)
		close(exited)
	}()

	ticker.Tick()
	s := <-game.GetUpdate()
	if !s.GameOver {
		t.Fatalf("Expected game over")
	}

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("Expected listen to return after game over")
	}
	if !ticker.IsStop() {
		t.Errorf("Expected ticker to be stopped")
	}
}

func TestListenStopsWhileBlocked(t *testing.T) {
	ticker := NewMockTicker()
	game := NewConfigurableGame(ticker, time.Millisecond, nil)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		game.listen(NewTestEngine(), done)
		close(exited)
	}()

	// nobody reads the update of this tick.
	ticker.Tick()
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("Expected listen to return once done")
	}
}

func TestFrameIsNeverZero(t *testing.T) {
	ticker := NewMockTicker()
	game := NewConfigurableGame(ticker, 0, nil)
	game.Start()
	<-game.GetUpdate()
	time.Sleep(10 * time.Millisecond)
	if d := ticker.Interval(); d <= 0 {
		t.Errorf("Expected a positive frame duration, got %v", d)
	}
	game.Stop()

	if g := NewGame(2_000_000_000, nil); g.frame <= 0 {
		t.Errorf("Expected a positive frame duration, got %v", g.frame)
	}
}
