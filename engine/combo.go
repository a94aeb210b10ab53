package engine

// ComboMultipliers is indexed by min(streak, len-1).
var ComboMultipliers = []float64{1, 1.5, 2, 2.5, 3, 4}

// ComboMultiplier returns the score multiplier for a streak of count clears.
func ComboMultiplier(count int) float64 {
	return ComboMultipliers[max(0, min(count, len(ComboMultipliers)-1))]
}

// ComboState tracks the streak of rectangles cleared within MaxWindow
// frames of each other.
type ComboState struct {
	Count        int
	Multiplier   float64
	Timer        int // frames left to extend the streak
	MaxWindow    int
	DisplayTimer int // frames left to show the combo
}

func newCombo(window int) ComboState {
	return ComboState{Multiplier: 1, MaxWindow: window}
}

// tick counts the window down. The streak is lost when it runs out.
func (c *ComboState) tick() {
	if c.Timer > 0 {
		c.Timer--
		if c.Timer <= 0 {
			c.Count = 0
			c.Multiplier = 1
		}
	}
	if c.DisplayTimer > 0 {
		c.DisplayTimer--
	}
}

// register extends the streak with a new clear.
func (c *ComboState) register(display int) {
	c.Count++
	c.Timer = c.MaxWindow
	c.DisplayTimer = display
	c.Multiplier = ComboMultiplier(c.Count)
}
