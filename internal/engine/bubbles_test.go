package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBubblePool_NoSpawnWithoutBass(t *testing.T) {
	bp := newBubblePool()

	for i := 0; i < 500; i++ {
		bp.Step(300, 200, 0, Features{})
	}
	assert.Empty(t, bp.B)
}

func TestBubblePool_SpawnsOnBass(t *testing.T) {
	bp := newBubblePool()

	for i := 0; i < 200; i++ {
		bp.Step(300, 200, 0, Features{Bass: 1})
	}
	assert.NotEmpty(t, bp.B)
}

func TestBubble_AgeTransitionsToPopping(t *testing.T) {
	bp := newBubblePool()
	bp.B = append(bp.B, Bubble{
		X: 150, Y: 100, Radius: 10,
		Age: 11, MaxAge: 10, // already over age
		State: BubbleRising,
	})

	bp.Step(300, 200, 0, Features{})
	assert.Len(t, bp.B, 1)
	assert.Equal(t, BubblePopping, bp.B[0].State)
	assert.Zero(t, bp.B[0].PopProg)
}

func TestBubble_PoppingIsRemoved(t *testing.T) {
	bp := newBubblePool()
	bp.B = append(bp.B, Bubble{
		X: 150, Y: 100, Radius: 10, MaxAge: 1000,
		State: BubblePopping, PopProg: 0.95,
	})

	bp.Step(300, 200, 0, Features{})
	assert.Empty(t, bp.B)
}

func TestBubble_OffscreenPops(t *testing.T) {
	bp := newBubblePool()
	bp.B = append(bp.B,
		Bubble{X: 150, Y: -20, Radius: 5, MaxAge: 1000, State: BubbleRising},
		Bubble{X: -30, Y: 100, Radius: 5, MaxAge: 1000, State: BubbleRising},
		Bubble{X: 330, Y: 100, Radius: 5, MaxAge: 1000, State: BubbleRising},
	)

	bp.Step(300, 200, 0, Features{})
	for _, b := range bp.B {
		assert.Equal(t, BubblePopping, b.State)
	}
}

func TestBubblePool_SwapRemoveVisitsEveryEntry(t *testing.T) {
	bp := newBubblePool()

	// Alternate doomed and healthy bubbles; one step must remove every
	// doomed one without skipping its swapped-in successor.
	for i := 0; i < 10; i++ {
		b := Bubble{X: 150, Y: 100, Radius: 5, MaxAge: 1000, State: BubbleRising}
		if i%2 == 0 {
			b.State = BubblePopping
			b.PopProg = 1
		}
		bp.B = append(bp.B, b)
	}

	bp.Step(300, 200, 0, Features{})
	assert.Len(t, bp.B, 5)
	for _, b := range bp.B {
		assert.Equal(t, BubbleRising, b.State)
	}
}

func TestBubblePool_EventualDrain(t *testing.T) {
	bp := newBubblePool()
	for i := 0; i < 50; i++ {
		bp.Step(300, 200, 0, Features{Bass: 1})
	}
	assert.NotEmpty(t, bp.B)

	// Silence: no spawns, every bubble ages out and pops.
	for i := 0; i < 3000 && len(bp.B) > 0; i++ {
		bp.Step(300, 200, 0, Features{})
	}
	assert.Empty(t, bp.B)
}
