package engine

// renderSwarm steps the flock and draws each particle's trail as a
// fading line, then the particle itself.
func renderSwarm(f *frame, field *ParticleField) {
	field.Step(f.w, f.h, f.cx, f.cy, f.audio)

	for i := range field.P {
		p := &field.P[i]
		hue := f.hue + p.HueOff

		n := p.TrailLen()
		if n > 1 {
			px, py := p.trailAt(0)
			for t := 1; t < n; t++ {
				x, y := p.trailAt(t)
				fade := float64(t) / float64(n)
				col := hsl(hue, 0.8, 0.25+fade*0.3)
				f.cv.ThickLine(px, py, x, y, 1, col, f.alpha*fade*0.7)
				px, py = x, y
			}
		}

		pulse := 0.5 + 0.5*p.Life/p.MaxLife
		col := hsl(hue, 0.9, 0.5+f.audio.Overall*0.2)
		f.cv.FillCircle(p.X, p.Y, p.Size*pulse, col, f.alpha)
	}
}
