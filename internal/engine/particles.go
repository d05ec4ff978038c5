package engine

import (
	"math"
	"math/rand"
)

const (
	maxParticles    = 1200
	particleArea    = 800 // surface pixels per particle
	trailCapacity   = 20
	flockPerception = 60.0
	flockBaseSpeed  = 2.0
)

// Particle is one member of the swarm. Particles never die; they wrap
// at the surface edges and only their trail is truncated.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	HueOff  float64
	Life    float64
	MaxLife float64
	Rot     float64
	RotVel  float64

	// Trailing position history, a fixed-capacity ring.
	trail     [trailCapacity][2]float64
	trailHead int // next write slot
	trailLen  int
}

// pushTrail records the current position, discarding the oldest entry
// once the ring is full.
func (p *Particle) pushTrail(x, y float64) {
	p.trail[p.trailHead] = [2]float64{x, y}
	p.trailHead = (p.trailHead + 1) % trailCapacity
	if p.trailLen < trailCapacity {
		p.trailLen++
	}
}

// clearTrail drops the history, used when the particle wraps so the
// trail does not streak across the whole surface.
func (p *Particle) clearTrail() {
	p.trailHead = 0
	p.trailLen = 0
}

// trailAt returns the i-th trail entry, oldest first, i in [0, TrailLen).
func (p *Particle) trailAt(i int) (x, y float64) {
	idx := (p.trailHead - p.trailLen + i + trailCapacity) % trailCapacity
	return p.trail[idx][0], p.trail[idx][1]
}

// TrailLen returns the number of recorded trail positions.
func (p *Particle) TrailLen() int {
	return p.trailLen
}

// ParticleField is a dense arena of swarm particles sized by surface
// area. It is reseeded wholesale on resize.
type ParticleField struct {
	P []Particle
}

// particleCountFor returns the pool size for a surface, proportional
// to area and capped.
func particleCountFor(w, h int) int {
	n := w * h / particleArea
	if n > maxParticles {
		n = maxParticles
	}
	if n < 0 {
		n = 0
	}
	return n
}

func newParticleField(w, h int) *ParticleField {
	f := &ParticleField{}
	f.Reseed(w, h)
	return f
}

// Reseed discards all particles and scatters a fresh pool across the
// surface.
// nolint:gosec // G404 - weak random is fine for visual effects
func (f *ParticleField) Reseed(w, h int) {
	n := particleCountFor(w, h)
	f.P = make([]Particle, n)
	for i := range f.P {
		p := &f.P[i]
		p.X = rand.Float64() * float64(w)
		p.Y = rand.Float64() * float64(h)
		p.VX = (rand.Float64() - 0.5) * 2
		p.VY = (rand.Float64() - 0.5) * 2
		p.Size = 1.5 + rand.Float64()*2.5
		p.HueOff = rand.Float64() * 60
		p.MaxLife = 200 + rand.Float64()*400
		p.Life = rand.Float64() * p.MaxLife
		p.Rot = rand.Float64() * 2 * math.Pi
		p.RotVel = (rand.Float64() - 0.5) * 0.1
	}
}

// Step advances the flock one frame: alignment, cohesion and
// separation within the perception radius, a weak bass-scaled pull
// toward the center, a treble-raised speed cap, then integration with
// edge wrapping.
func (f *ParticleField) Step(w, h, cx, cy float64, audio Features) {
	if len(f.P) == 0 {
		return
	}

	maxSpeed := flockBaseSpeed + audio.Treble*3
	centerPull := 0.0005 + audio.Bass*0.002

	for i := range f.P {
		p := &f.P[i]

		var alignX, alignY float64
		var cohX, cohY float64
		var sepX, sepY float64
		neighbors := 0

		for j := range f.P {
			if j == i {
				continue
			}
			q := &f.P[j]
			dx := q.X - p.X
			dy := q.Y - p.Y
			dist := math.Hypot(dx, dy)
			if dist == 0 || dist > flockPerception {
				continue
			}
			neighbors++
			alignX += q.VX
			alignY += q.VY
			cohX += q.X
			cohY += q.Y
			sepX -= dx / dist
			sepY -= dy / dist
		}

		if neighbors > 0 {
			n := float64(neighbors)
			p.VX += (alignX/n - p.VX) * 0.05
			p.VY += (alignY/n - p.VY) * 0.05
			p.VX += (cohX/n - p.X) * 0.002
			p.VY += (cohY/n - p.Y) * 0.002
			p.VX += sepX / n * 0.3
			p.VY += sepY / n * 0.3
		}

		p.VX += (cx - p.X) * centerPull
		p.VY += (cy - p.Y) * centerPull

		speed := math.Hypot(p.VX, p.VY)
		if speed > maxSpeed {
			p.VX = p.VX / speed * maxSpeed
			p.VY = p.VY / speed * maxSpeed
		}

		p.X += p.VX
		p.Y += p.VY
		p.Rot += p.RotVel
		p.Life++
		if p.Life > p.MaxLife {
			p.Life = 0
		}

		wrapped := false
		if p.X < 0 {
			p.X += w
			wrapped = true
		} else if p.X >= w {
			p.X -= w
			wrapped = true
		}
		if p.Y < 0 {
			p.Y += h
			wrapped = true
		} else if p.Y >= h {
			p.Y -= h
			wrapped = true
		}
		if wrapped {
			p.clearTrail()
		}

		p.pushTrail(p.X, p.Y)
	}
}
