package client

import (
	"log/slog"
	"strings"
	"testing"

	"ageofrock/engine"

	"github.com/google/uuid"
)

func emptyBoard() [engine.GridHeight][engine.GridWidth]string {
	var want [engine.GridHeight][engine.GridWidth]string
	for y := range want {
		for x := range want[y] {
			want[y][x] = "  "
		}
	}
	return want
}

func TestBoard(t *testing.T) {
	t.Run("nil snapshot renders an empty board", func(t *testing.T) {
		if got := board(&templateData{}); got != emptyBoard() {
			t.Errorf("want empty board, got %v", got)
		}
		if got := board(nil); got != emptyBoard() {
			t.Errorf("want empty board, got %v", got)
		}
	})

	t.Run("no colour", func(t *testing.T) {
		s := &engine.Snapshot{
			Shapes: []engine.ShapeState{{
				ID:    uuid.New(),
				Cells: []engine.Point{{X: 5, Y: 10}, {X: 6, Y: 10}, {X: 5, Y: 11}},
			}},
			Players: []engine.PlayerState{
				{ID: engine.Player1, X: 6, Color: "#ef4444"},
				{ID: engine.Player2, X: 13, Color: "#3b82f6"},
			},
			Bullets:         []engine.Bullet{{X: 6, Y: 14.5, Owner: engine.Player1}},
			FallingPowerUps: []engine.PowerUp{{Type: engine.MultiShot, X: 2.7, Y: 3.2}},
			Particles: []engine.Particle{
				{X: 9.5, Y: 9.5, Kind: engine.ParticleStar},
				{X: 5.2, Y: 10.2, Kind: engine.ParticleSpark}, // under the shape
				{X: -3, Y: 2, Kind: engine.ParticleSpark},     // off the board
			},
		}
		want := emptyBoard()
		want[10][5] = "[]"
		want[10][6] = "[]"
		want[11][5] = "[]"
		want[19][6] = "/\\"
		want[19][13] = "/\\"
		want[14][6] = "||"
		want[3][2] = "◆ "
		want[9][9] = "* "

		got := board(&templateData{Snapshot: s, NoColor: true})
		if got != want {
			t.Errorf("want %v, got %v", want, got)
		}
	})

	t.Run("players are coloured", func(t *testing.T) {
		s := &engine.Snapshot{
			Players: []engine.PlayerState{{ID: engine.Player1, X: 0, Color: "#ef4444"}},
		}
		got := board(&templateData{Snapshot: s})
		if want := "\x1b[38;2;239;68;68m/\\\x1b[0m"; got[19][0] != want {
			t.Errorf("want %q, got %q", want, got[19][0])
		}
	})
}

func TestHUD(t *testing.T) {
	e := engine.NewTestEngine()
	e.ActivatePowerUp(engine.RapidFire, engine.Player2)
	e.Update()
	s := e.Snapshot()

	got := hud(&templateData{Snapshot: s, NoColor: true, FPS: 60})
	for i, l := range got {
		if !strings.HasSuffix(l, clearLine) {
			t.Errorf("line %d doesn't clear the rest of the line: %q", i, l)
		}
	}
	want := map[int]string{
		0: "AGE OF ROCK",
		2: "Score   0",
		3: "Tier    Débutant",
		4: "Speed   0.012",
		5: "",
		6: "Wave    -",
		8: "Power-ups",
		9: "⚡ RAPID_FIRE P2 5.0s",
	}
	for i, w := range want {
		if l := strings.TrimSuffix(got[i], clearLine); l != w {
			t.Errorf("line %d: want %q, got %q", i, w, l)
		}
	}
}

func TestHUDCombo(t *testing.T) {
	s := &engine.Snapshot{
		Combo: engine.ComboState{Count: 3, Multiplier: 2, DisplayTimer: 10},
		Wave:  engine.WaveState{Active: true, Timer: 10},
	}
	got := hud(&templateData{Snapshot: s, NoColor: true})
	if l := strings.TrimSuffix(got[5], clearLine); l != "Combo   x3  (x2)" {
		t.Errorf("want combo line, got %q", l)
	}
	if l := strings.TrimSuffix(got[6], clearLine); l != "Wave    INTENSE" {
		t.Errorf("want intense wave, got %q", l)
	}

	s.Combo.DisplayTimer = 0
	got = hud(&templateData{Snapshot: s, NoColor: true})
	if got[5] != clearLine {
		t.Errorf("want no combo once the display timer ran out, got %q", got[5])
	}
}

func TestRender(t *testing.T) {
	w := &strings.Builder{}
	r, err := newRender(w, slog.New(slog.DiscardHandler), true, 60)
	if err != nil {
		t.Fatalf("newRender: %v", err)
	}

	r.game(engine.NewTestEngine().Snapshot())
	out := w.String()
	if !strings.HasPrefix(out, resetPos) {
		t.Errorf("want output to start at the top left corner")
	}
	// borders plus one line per row.
	if n := strings.Count(out, "\r\n"); n != engine.GridHeight+2 {
		t.Errorf("want %d lines, got %d", engine.GridHeight+2, n)
	}
	if !strings.Contains(out, "/\\") {
		t.Errorf("want players on the board")
	}

	w.Reset()
	r.lobby(welcome())
	out = w.String()
	if !strings.Contains(out, "AGE OF ROCK") || !strings.Contains(out, "(p)lay   (q)uit") {
		t.Errorf("want the lobby, got %q", out)
	}
	if n := strings.Count(out, "\033["); n != len(welcome())+2 {
		t.Errorf("want %d positioned lines, got %d", len(welcome())+2, n)
	}
}

func TestGameOverMessage(t *testing.T) {
	m := gameOver(engine.Stats{Score: 1200, Rectangles: 2, MaxCombo: 3, ShotsFired: 4, ShotsHit: 3})
	want := []string{
		"Score           1200",
		"Rectangles         2",
		"Max combo         x3",
		"Accuracy         75%",
	}
	for i, w := range want {
		if m[3+i] != w {
			t.Errorf("line %d: want %q, got %q", 3+i, w, m[3+i])
		}
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "ab", width: 6, want: "  ab  "},
		{in: "abc", width: 6, want: " abc  "},
		{in: "← →", width: 5, want: " ← → "},
		{in: "abcdef", width: 4, want: "abcd"},
	}
	for _, tt := range tests {
		if got := center(tt.in, tt.width); got != tt.want {
			t.Errorf("center(%q, %d): want %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}
