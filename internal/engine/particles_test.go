package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticleCountFor(t *testing.T) {
	assert.Equal(t, 0, particleCountFor(0, 0))
	assert.Equal(t, 12, particleCountFor(100, 100))
	assert.Equal(t, 1200, particleCountFor(4000, 4000))
}

func TestParticleField_ReseedBounds(t *testing.T) {
	f := newParticleField(300, 200)
	assert.Len(t, f.P, 300*200/800)

	for i := range f.P {
		p := &f.P[i]
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 300.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 200.0)
		assert.Positive(t, p.MaxLife)
	}
}

func TestParticle_TrailRing(t *testing.T) {
	var p Particle

	// Overfill the ring; only the newest entries survive.
	for i := 0; i < trailCapacity+15; i++ {
		p.pushTrail(float64(i), float64(i))
	}
	assert.Equal(t, trailCapacity, p.TrailLen())

	// Oldest first, most recent last.
	x, _ := p.trailAt(0)
	assert.Equal(t, 15.0, x)
	x, _ = p.trailAt(trailCapacity - 1)
	assert.Equal(t, float64(trailCapacity+14), x)
}

func TestParticleField_StepWrapsAtEdges(t *testing.T) {
	f := newParticleField(300, 200)

	for i := 0; i < 300; i++ {
		f.Step(300, 200, 150, 100, Features{Overall: 1, Bass: 1, Treble: 1})
	}

	for i := range f.P {
		p := &f.P[i]
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 300.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 200.0)
		assert.LessOrEqual(t, p.TrailLen(), trailCapacity)
	}
}

func TestParticleField_SpeedClamp(t *testing.T) {
	f := newParticleField(300, 200)
	maxSpeed := flockBaseSpeed + 3 // full treble

	for i := 0; i < 50; i++ {
		f.Step(300, 200, 150, 100, Features{Treble: 1, Bass: 1})
	}

	for i := range f.P {
		p := &f.P[i]
		speed := p.VX*p.VX + p.VY*p.VY
		assert.LessOrEqual(t, speed, maxSpeed*maxSpeed+1e-9)
	}
}

func TestParticleField_EmptyStep(t *testing.T) {
	f := &ParticleField{}
	// Must be a no-op, not a panic.
	f.Step(300, 200, 150, 100, Features{})
}
