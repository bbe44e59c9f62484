package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples.
	SamplesPerPixel uint32

	// Max path length. Paths still bouncing after this many hits are black.
	NumBounces uint32

	// Number of render workers. If zero, one worker per CPU is used.
	Workers int

	// Base seed for the per-worker random number generators.
	Seed int64
}

// Check that the options describe a renderable frame.
func (o Options) Validate() error {
	switch {
	case o.FrameW == 0 || o.FrameH == 0:
		return ErrInvalidFrameDims
	case o.SamplesPerPixel == 0:
		return ErrInvalidSampleCount
	case o.NumBounces == 0:
		return ErrInvalidBounceCount
	case o.Workers < 0:
		return ErrInvalidWorkerCount
	}
	return nil
}
