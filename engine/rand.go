package engine

import "math/rand/v2"

// Rand is the source of every random draw of the engine: shape templates,
// spawn columns, power-up drops and particle jitter. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }
