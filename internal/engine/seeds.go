package engine

import (
	"math"
	"math/rand"
)

const (
	seedCountMin = 15
	seedCountMax = 24
)

// Seed is one Voronoi site. Seeds are created once per surface and
// only mutated in place afterwards, perpetually orbiting the center.
type Seed struct {
	X, Y float64
	Hue  float64

	angle     float64
	baseDist  float64 // orbit radius as a fraction of min dimension
	speed     float64 // radians per frame
	wobble    float64 // per-seed phase for the bass push
}

// SeedSet is the fixed Voronoi site collection.
type SeedSet struct {
	S []Seed
}

// seedCountFor scales the site count with surface area, staying within
// the 15-24 range.
func seedCountFor(w, h int) int {
	n := seedCountMin + w*h/150000
	if n > seedCountMax {
		n = seedCountMax
	}
	return n
}

// nolint:gosec // G404 - weak random is fine for visual effects
func newSeedSet(w, h int) *SeedSet {
	set := &SeedSet{S: make([]Seed, seedCountFor(w, h))}
	for i := range set.S {
		s := &set.S[i]
		s.angle = rand.Float64() * 2 * math.Pi
		s.baseDist = 0.08 + rand.Float64()*0.4
		s.speed = 0.003 + rand.Float64()*0.01
		if rand.Float64() < 0.5 {
			s.speed = -s.speed
		}
		s.wobble = rand.Float64() * 2 * math.Pi
		s.Hue = float64(i) / float64(len(set.S)) * 360
	}
	return set
}

// Step orbits every seed around the center. Bass pushes seeds outward,
// mid speeds the orbit and rotates hues.
func (set *SeedSet) Step(cx, cy, minDim, t float64, audio Features) {
	for i := range set.S {
		s := &set.S[i]
		s.angle += s.speed * (1 + audio.Mid*2)

		dist := s.baseDist * minDim * (1 + audio.Bass*0.4*math.Sin(t*2+s.wobble))
		s.X = cx + math.Cos(s.angle)*dist
		s.Y = cy + math.Sin(s.angle)*dist
		s.Hue = math.Mod(s.Hue+audio.Mid*1.5, 360)
	}
}
