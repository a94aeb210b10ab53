package client

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync"
	"text/template"

	"ageofrock/engine"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	resetPos  = "\033[H"  // Reset cursor position to 0,0
	clearLine = "\033[K"  // Erase to the end of the line
	reset     = "\033[0m" // Reset all attributes

	// lobby box geometry, in screen cells.
	boxWidth = 34
	boxCol   = 5
	boxRow   = 12
)

//go:embed "layout.tmpl"
var layout string

// shapePalette is indexed by the first byte of the shape id.
var shapePalette = []string{
	"#f43f5e", "#f97316", "#eab308", "#84cc16",
	"#10b981", "#06b6d4", "#6366f1", "#d946ef",
}

var powerUpIcons = map[engine.PowerUpType]string{
	engine.RapidFire:  "⚡",
	engine.MultiShot:  "◆",
	engine.TimeFreeze: "❄",
	engine.SlowMotion: "◎",
}

var particleGlyphs = map[engine.ParticleKind]string{
	engine.ParticleSpark: "·",
	engine.ParticleGlow:  "•",
	engine.ParticleStar:  "*",
	engine.ParticleRing:  "o",
}

type templateData struct {
	Snapshot *engine.Snapshot
	NoColor  bool
	FPS      int
}

// message is a set of lines shown in a box over the board.
type message []string

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	noColor  bool
	fps      int

	mu sync.Mutex
}

func newRender(w io.Writer, l *slog.Logger, noColor bool, fps int) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &render{
		writer:   w,
		logger:   l,
		template: tmp,
		noColor:  noColor,
		fps:      fps,
	}, nil
}

// game draws the board and the HUD. A nil snapshot draws an empty board.
func (r *render) game(s *engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.writer, resetPos)
	td := &templateData{Snapshot: s, NoColor: r.noColor, FPS: r.fps}
	if err := r.template.Execute(r.writer, td); err != nil {
		r.logger.Error("unable to execute template in game()", slog.String("error", err.Error()))
	}
}

// lobby draws m in a box centred over the board.
func (r *render) lobby(m message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	top := boxRow - len(m)/2 - 1
	border := "+" + strings.Repeat("-", boxWidth) + "+"
	fmt.Fprintf(r.writer, "\033[%d;%dH%s", top, boxCol, border)
	for i, l := range m {
		fmt.Fprintf(r.writer, "\033[%d;%dH|%s|", top+1+i, boxCol, center(l, boxWidth))
	}
	fmt.Fprintf(r.writer, "\033[%d;%dH%s", top+1+len(m), boxCol, border)
}

func welcome() message {
	return message{
		"",
		"AGE OF ROCK",
		"",
		"P1   A D move   SPACE shoot",
		"P2   ← → move   ENTER shoot",
		"",
		"(p)lay   (q)uit",
		"",
	}
}

func gameOver(st engine.Stats) message {
	return message{
		"",
		"GAME OVER",
		"",
		fmt.Sprintf("Score       %8d", st.Score),
		fmt.Sprintf("Rectangles  %8d", st.Rectangles),
		fmt.Sprintf("Max combo   %8s", fmt.Sprintf("x%d", st.MaxCombo)),
		fmt.Sprintf("Accuracy    %8s", fmt.Sprintf("%d%%", st.Accuracy())),
		"",
		"(p)lay again   (q)uit",
		"",
	}
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"board": board,
		"hud":   hud,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	l := strings.ReplaceAll(layout, "\n", "\r\n")
	return template.New("layout").Funcs(funcMap).Parse(l)
}

// board returns the cells of the board, two screen columns each. Players
// are drawn over bullets, bullets over shapes, shapes over power-ups and
// power-ups over particles.
func board(td *templateData) [engine.GridHeight][engine.GridWidth]string {
	var rendered [engine.GridHeight][engine.GridWidth]string
	for y := range rendered {
		for x := range rendered[y] {
			rendered[y][x] = "  "
		}
	}
	if td == nil || td.Snapshot == nil {
		return rendered
	}
	s := td.Snapshot
	set := func(x, y int, cell string) {
		if x >= 0 && x < engine.GridWidth && y >= 0 && y < engine.GridHeight {
			rendered[y][x] = cell
		}
	}

	for _, p := range s.Particles {
		x, y := int(math.Floor(p.X)), int(math.Floor(p.Y))
		set(x, y, paint(td.NoColor, p.Color, runewidth.FillRight(particleGlyphs[p.Kind], 2)))
	}
	for _, pu := range s.FallingPowerUps {
		x, y := int(math.Floor(pu.X)), int(math.Floor(pu.Y))
		set(x, y, paint(td.NoColor, pu.Type.Color(), runewidth.FillRight(powerUpIcons[pu.Type], 2)))
	}
	for _, sh := range s.Shapes {
		color := shapePalette[int(sh.ID[0])%len(shapePalette)]
		for _, c := range sh.Cells {
			set(c.X, c.Y, block(td.NoColor, color))
		}
	}
	for _, b := range s.Bullets {
		set(b.X, int(math.Floor(b.Y)), paint(td.NoColor, ownerColor(s, b.Owner), "||"))
	}
	for _, p := range s.Players {
		ship := "/\\"
		if p.Recoil > 0.5 && !td.NoColor {
			ship = "\033[1m" + ship
		}
		set(p.X, engine.GridHeight-1, paint(td.NoColor, p.Color, ship))
	}
	return rendered
}

// hud returns the text shown on the right of each board row.
func hud(td *templateData) [engine.GridHeight]string {
	var lines [engine.GridHeight]string
	if td == nil || td.Snapshot == nil {
		lines[0] = bold(td == nil || td.NoColor, "AGE OF ROCK")
		return withClearLine(lines)
	}
	s := td.Snapshot
	lines[0] = bold(td.NoColor, "AGE OF ROCK")
	lines[2] = fmt.Sprintf("Score   %d", s.Score)
	lines[3] = "Tier    " + paint(td.NoColor, s.Difficulty.Color, s.Difficulty.Name)
	lines[4] = fmt.Sprintf("Speed   %.3f", s.Speed)
	if s.Combo.DisplayTimer > 0 && s.Combo.Count > 0 {
		lines[5] = fmt.Sprintf("Combo   x%d  (x%g)", s.Combo.Count, s.Combo.Multiplier)
	}
	lines[6] = "Wave    " + waveLabel(s.Wave)

	i := 8
	if len(s.ActivePowerUps) > 0 {
		lines[i] = "Power-ups"
		i++
	}
	for _, a := range s.ActivePowerUps {
		if i >= engine.GridHeight-3 {
			break
		}
		lines[i] = fmt.Sprintf("%s %s P%d %.1fs",
			paint(td.NoColor, a.Type.Color(), runewidth.FillRight(powerUpIcons[a.Type], 2)),
			a.Type, a.Owner, seconds(a.Remaining, td.FPS),
		)
		i++
	}

	lines[engine.GridHeight-2] = paint(td.NoColor, ownerColor(s, engine.Player1), "P1") + "  A D  SPACE"
	lines[engine.GridHeight-1] = paint(td.NoColor, ownerColor(s, engine.Player2), "P2") + "  ← →  ENTER"
	return withClearLine(lines)
}

func withClearLine(lines [engine.GridHeight]string) [engine.GridHeight]string {
	for i := range lines {
		lines[i] += clearLine
	}
	return lines
}

func waveLabel(w engine.WaveState) string {
	switch {
	case w.Active:
		return "INTENSE"
	case w.Calm():
		return "calm"
	default:
		return "-"
	}
}

func seconds(frames, fps int) float64 {
	if fps <= 0 {
		fps = 60
	}
	return float64(frames) / float64(fps)
}

func ownerColor(s *engine.Snapshot, id int) string {
	for _, p := range s.Players {
		if p.ID == id {
			return p.Color
		}
	}
	return ""
}

// fg returns the 24-bit foreground escape sequence for a #rrggbb colour,
// or an empty string if hex isn't a colour.
func fg(hex string) string {
	r, g, b := tcell.GetColor(hex).RGB()
	if r < 0 || g < 0 || b < 0 {
		return ""
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", r, g, b)
}

func paint(noColor bool, hex, s string) string {
	if noColor {
		return s
	}
	c := fg(hex)
	if c == "" {
		return s
	}
	return c + s + reset
}

func block(noColor bool, hex string) string {
	c := fg(hex)
	if noColor || c == "" {
		return "[]"
	}
	return "\033[7m" + c + "[]" + reset
}

func bold(noColor bool, s string) string {
	if noColor {
		return s
	}
	return "\033[1m" + s + reset
}

func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w > width {
		return runewidth.Truncate(s, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
