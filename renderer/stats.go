package renderer

import "time"

type BlockStat struct {
	// The block start row and height.
	BlockY uint32
	BlockH uint32

	// The percentage of total frame area the block represents.
	FramePercent float32

	// Number of primary rays traced for this block.
	PrimaryRays uint64

	// Render time for assigned block
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual block stats.
	Blocks []BlockStat

	// Total number of primary rays.
	PrimaryRays uint64

	// Total render time for entire frame.
	RenderTime time.Duration
}
