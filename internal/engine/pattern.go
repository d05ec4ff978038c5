package engine

// Pattern identifies one of the procedural visual patterns.
// The set is closed: renderer dispatch matches exhaustively on it.
type Pattern int

// Patterns in cycle order. The scheduler advances through this
// sequence cyclically and never picks at random.
const (
	PatternFractal Pattern = iota
	PatternRays
	PatternTunnel
	PatternBubbles
	PatternVoronoi
	PatternWaves
	PatternSwarm
	PatternMandala
	PatternDNA
	PatternPlasma

	patternCount
)

var patternNames = [patternCount]string{
	PatternFractal: "fractal",
	PatternRays:    "rays",
	PatternTunnel:  "tunnel",
	PatternBubbles: "bubbles",
	PatternVoronoi: "voronoi",
	PatternWaves:   "waves",
	PatternSwarm:   "swarm",
	PatternMandala: "mandala",
	PatternDNA:     "dna",
	PatternPlasma:  "plasma",
}

// String returns the pattern's canonical name.
func (p Pattern) String() string {
	if p < 0 || p >= patternCount {
		return "unknown"
	}
	return patternNames[p]
}

// Next returns the pattern following p in the fixed cycle.
func (p Pattern) Next() Pattern {
	return (p + 1) % patternCount
}

// ParsePattern resolves a pattern by its canonical name.
func ParsePattern(name string) (Pattern, bool) {
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), true
		}
	}
	return 0, false
}

// Patterns returns all patterns in cycle order.
func Patterns() []Pattern {
	out := make([]Pattern, patternCount)
	for i := range out {
		out[i] = Pattern(i)
	}
	return out
}
