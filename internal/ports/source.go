package ports

// SpectrumSource delivers one frequency-magnitude frame per animation
// tick. Magnitudes are 8-bit (0-255); bin count is fixed for the life
// of the source.
//
// The engine never retains a frame beyond the Render call, so sources
// may reuse internal buffers freely.
type SpectrumSource interface {
	// Bins returns the fixed number of frequency bins per frame.
	Bins() int

	// Frame fills dst with the next frame's magnitudes. dst must hold
	// at least Bins() bytes. Returns domain.ErrSourceClosed after
	// Close, domain.ErrShortFrame when dst is too small.
	Frame(dst []byte) error

	// Close releases the source. Safe to call more than once.
	Close() error
}
