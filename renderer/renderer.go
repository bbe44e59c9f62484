package renderer

import (
	"context"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/achilleasa/go-raytrace/log"
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// Renderer traces frames of a world on the CPU. The frame is split into
// horizontal blocks that are rendered in parallel; each block owns a random
// number generator seeded from Options.Seed and the block index so frames
// rendered with the same options are reproducible.
type Renderer struct {
	logger log.Logger

	world  scene.Hittable
	camera *scene.Camera
	opts   Options

	stats FrameStats
}

// Create a new renderer for the given world and camera. The camera projection
// is set up to match the frame aspect ratio.
func New(world scene.Hittable, camera *scene.Camera, opts Options) (*Renderer, error) {
	if world == nil {
		return nil, ErrSceneNotDefined
	}
	if camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}

	camera.SetupProjection(float64(opts.FrameW) / float64(opts.FrameH))

	return &Renderer{
		logger: log.New("renderer"),
		world:  world,
		camera: camera,
		opts:   opts,
	}, nil
}

// Render a frame. If ctx is cancelled before all blocks complete, Render
// returns ErrInterrupted.
func (r *Renderer) Render(ctx context.Context) (*Frame, error) {
	frame := newFrame(int(r.opts.FrameW), int(r.opts.FrameH))
	blockAssignment := scheduleBlocks(r.opts.FrameH, r.opts.Workers)

	r.stats = FrameStats{
		Blocks: make([]BlockStat, len(blockAssignment)),
	}

	start := time.Now()
	var wg sync.WaitGroup
	var blockY uint32 = 0
	for idx, blockH := range blockAssignment {
		r.stats.Blocks[idx].BlockY = blockY
		r.stats.Blocks[idx].BlockH = blockH
		r.stats.Blocks[idx].FramePercent = 100.0 * float32(blockH) / float32(r.opts.FrameH)

		wg.Add(1)
		go func(idx int, blockY, blockH uint32) {
			defer wg.Done()
			r.renderBlock(ctx, frame, idx, blockY, blockH)
		}(idx, blockY, blockH)

		blockY += blockH
	}
	wg.Wait()

	r.stats.RenderTime = time.Since(start)
	for _, blockStat := range r.stats.Blocks {
		r.stats.PrimaryRays += blockStat.PrimaryRays
	}

	if ctx.Err() != nil {
		r.logger.Noticef("frame interrupted after %d ms", r.stats.RenderTime.Nanoseconds()/1e6)
		return nil, ErrInterrupted
	}

	r.logger.Debugf(
		"rendered %dx%d frame (%d spp) using %d blocks in %d ms",
		r.opts.FrameW, r.opts.FrameH, r.opts.SamplesPerPixel, len(blockAssignment),
		r.stats.RenderTime.Nanoseconds()/1e6,
	)
	return frame, nil
}

// Get render statistics for the last rendered frame.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Render the rows [blockY, blockY+blockH) of the frame. Each worker writes to
// its own rows and its own stats entry.
func (r *Renderer) renderBlock(ctx context.Context, frame *Frame, idx int, blockY, blockH uint32) {
	start := time.Now()
	rng := rand.New(rand.NewSource(r.opts.Seed + int64(idx)))
	frameW := float64(r.opts.FrameW)
	frameH := float64(r.opts.FrameH)
	spp := r.opts.SamplesPerPixel

	var rays uint64 = 0
	for y := blockY; y < blockY+blockH; y++ {
		if ctx.Err() != nil {
			break
		}

		for x := uint32(0); x < r.opts.FrameW; x++ {
			var color types.Vec3
			for s := uint32(0); s < spp; s++ {
				u := (float64(x) + rng.Float64()) / frameW
				v := 1 - (float64(y)+rng.Float64())/frameH
				source, towards := r.camera.Ray(rng, u, v)
				color = color.Add(Trace(rng, r.world, source, towards, r.opts.NumBounces))
			}
			rays += uint64(spp)
			frame.Pix[int(y)*frame.Width+int(x)] = color.Div(float64(spp))
		}
	}

	r.stats.Blocks[idx].PrimaryRays = rays
	r.stats.Blocks[idx].RenderTime = time.Since(start)
}

// Split frameH rows into at most workers contiguous blocks of equal height.
// Rows that do not divide evenly are appended to the first block.
func scheduleBlocks(frameH uint32, workers int) []uint32 {
	numBlocks := uint32(workers)
	if numBlocks > frameH {
		numBlocks = frameH
	}

	blockAssignment := make([]uint32, numBlocks)
	var scheduledRows uint32 = 0
	for idx := range blockAssignment {
		blockAssignment[idx] = frameH / numBlocks
		scheduledRows += blockAssignment[idx]
	}
	blockAssignment[0] += frameH - scheduledRows

	return blockAssignment
}
