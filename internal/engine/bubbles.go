package engine

import (
	"math"
	"math/rand"
)

// BubbleState is the two-state bubble lifecycle.
type BubbleState uint8

const (
	BubbleRising BubbleState = iota
	BubblePopping
)

const (
	bubbleSpawnThreshold = 0.4 // minimum bass before spawns start
	bubbleMaxPerFrame    = 3
	bubbleBuoyancy       = 0.06
	bubbleDrag           = 0.98
	bubbleJitter         = 0.3
)

// Bubble rises under buoyancy until it ages out, leaves the surface,
// or a treble burst pops it; popping accumulates progress and the
// bubble is removed once progress reaches 1.
type Bubble struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Hue     float64
	Age     float64
	MaxAge  float64
	State   BubbleState
	PopProg float64
}

// BubblePool grows by bass-driven spawning and shrinks by removal.
type BubblePool struct {
	B []Bubble
}

func newBubblePool() *BubblePool {
	return &BubblePool{}
}

// Reset drops all live bubbles.
func (bp *BubblePool) Reset() {
	bp.B = bp.B[:0]
}

// Step advances physics and lifecycle one frame. Removal uses
// swap-remove so a forward scan visits every entry exactly once.
// nolint:gosec // G404 - weak random is fine for visual effects
func (bp *BubblePool) Step(w, h, hueBase float64, audio Features) {
	// Spawn on bass transients, probabilistically.
	if audio.Bass > bubbleSpawnThreshold {
		for i := 0; i < bubbleMaxPerFrame; i++ {
			if rand.Float64() < (audio.Bass-bubbleSpawnThreshold)*0.5 {
				bp.spawn(w, h, hueBase)
			}
		}
	}

	for i := 0; i < len(bp.B); {
		b := &bp.B[i]

		switch b.State {
		case BubbleRising:
			b.VY -= bubbleBuoyancy * (1 + audio.Bass)
			b.VX += (rand.Float64() - 0.5) * bubbleJitter
			b.VX *= bubbleDrag
			b.VY *= bubbleDrag
			b.X += b.VX
			b.Y += b.VY
			b.Age++

			popped := b.Age > b.MaxAge ||
				b.Y+b.Radius < 0 ||
				b.X+b.Radius < 0 ||
				b.X-b.Radius > w
			if !popped && audio.Treble > 0.7 && rand.Float64() < audio.Treble*0.05 {
				popped = true
			}
			if popped {
				b.State = BubblePopping
				b.PopProg = 0
			}
			i++

		case BubblePopping:
			b.PopProg += 0.08 + audio.Treble*0.1
			if b.PopProg >= 1 {
				bp.B[i] = bp.B[len(bp.B)-1]
				bp.B = bp.B[:len(bp.B)-1]
				continue
			}
			i++
		}
	}
}

// nolint:gosec // G404 - weak random is fine for visual effects
func (bp *BubblePool) spawn(w, h, hueBase float64) {
	bp.B = append(bp.B, Bubble{
		X:      rand.Float64() * w,
		Y:      h + 10,
		VX:     (rand.Float64() - 0.5) * 1.5,
		VY:     -1 - rand.Float64()*2,
		Radius: 4 + rand.Float64()*18,
		Hue:    math.Mod(hueBase+rand.Float64()*90, 360),
		MaxAge: 120 + rand.Float64()*240,
		State:  BubbleRising,
	})
}
