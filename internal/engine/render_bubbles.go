package engine

// renderBubbles steps the bubble pool and draws rising bubbles as
// rings with a highlight, popping ones as an expanding, fading burst.
func renderBubbles(f *frame, pool *BubblePool) {
	pool.Step(f.w, f.h, f.hue, f.audio)

	for i := range pool.B {
		b := &pool.B[i]

		switch b.State {
		case BubbleRising:
			ageFade := 1 - b.Age/b.MaxAge
			col := hsl(b.Hue, 0.7, 0.55)
			f.cv.Circle(b.X, b.Y, b.Radius, col, f.alpha*clamp01(0.3+ageFade*0.7))

			// Specular highlight, upper left.
			hl := hsl(b.Hue, 0.3, 0.85)
			f.cv.FillCircle(b.X-b.Radius*0.35, b.Y-b.Radius*0.35, b.Radius*0.2, hl, f.alpha*0.7)

		case BubblePopping:
			burst := b.Radius * (1 + b.PopProg*1.5)
			col := hsl(b.Hue, 0.9, 0.7)
			f.cv.Circle(b.X, b.Y, burst, col, f.alpha*(1-b.PopProg))
		}
	}
}
