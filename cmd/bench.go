package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/achilleasa/go-raytrace/asset/compiler/bvh"
	"github.com/achilleasa/go-raytrace/renderer"
	core "github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/urfave/cli"
)

type benchResult struct {
	world  string
	stats  renderer.FrameStats
	mean   types.Vec3
	hitDur time.Duration
}

// Render a scene using both the plain object list and the BVH and compare
// their performance and output.
func Bench(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		NumBounces:      uint32(ctx.Int("depth")),
		Workers:         ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	sc, err := loadScene(ctx.Args().First(), opts.Seed)
	if err != nil {
		return err
	}

	objects := sc.Objects.Take()
	worlds := []struct {
		name  string
		world core.Hittable
	}{
		{"list", core.NewList(objects...)},
		{"bvh", bvh.FromObjects(objects)},
	}

	// Allow the user to abort long renders
	renderCtx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancelFn()

	results := make([]benchResult, 0, len(worlds))
	for _, w := range worlds {
		logger.Noticef("rendering %dx%d frame using %s world", opts.FrameW, opts.FrameH, w.name)
		r, err := renderer.New(w.world, sc.Camera, opts)
		if err != nil {
			return err
		}

		frame, err := r.Render(renderCtx)
		if err != nil {
			return err
		}

		hitDur := timeRandomRays(w.world, ctx.Int("rays"), opts.Seed)
		results = append(results, benchResult{
			world:  w.name,
			stats:  r.Stats(),
			mean:   frame.Mean(),
			hitDur: hitDur,
		})
	}

	mismatches := countMismatches(worlds[0].world, worlds[1].world, ctx.Int("rays"), opts.Seed)
	if mismatches != 0 {
		logger.Warningf("list and bvh disagree on %d out of %d random rays", mismatches, ctx.Int("rays"))
	}

	displayHostInfo()
	displayBenchResults(results, ctx.Int("rays"), mismatches)
	return nil
}

// Cast random rays against world and report the elapsed time. The rays are
// generated up front so only intersection tests are timed.
func timeRandomRays(world core.Hittable, count int, seed int64) time.Duration {
	sources, dirs := randomRays(count, seed)

	start := time.Now()
	for index := range sources {
		world.Hit(sources[index], dirs[index])
	}
	return time.Since(start)
}

// Count the random rays for which the two worlds report a different hit.
func countMismatches(w1, w2 core.Hittable, count int, seed int64) int {
	sources, dirs := randomRays(count, seed)

	mismatches := 0
	for index := range sources {
		h1 := w1.Hit(sources[index], dirs[index])
		h2 := w2.Hit(sources[index], dirs[index])
		if h1.T != h2.T || h1.Point != h2.Point {
			mismatches++
		}
	}
	return mismatches
}

func randomRays(count int, seed int64) (sources, dirs []types.Vec3) {
	rng := rand.New(rand.NewSource(seed))
	sources = make([]types.Vec3, count)
	dirs = make([]types.Vec3, count)
	for index := 0; index < count; index++ {
		sources[index] = types.RandomVec3(rng).Mul(15).Add(types.XYZ(0, 15, 0))
		dirs[index] = types.RandomVec3(rng)
	}
	return sources, dirs
}

func displayHostInfo() {
	cores, err := cpu.Counts(true)
	if err != nil {
		logger.Warningf("could not query cpu count: %v", err)
	}

	model := "unknown"
	if infoList, err := cpu.Info(); err == nil && len(infoList) > 0 {
		model = infoList[0].ModelName
	}

	logger.Noticef("host: %s (%d logical cores)", model, cores)
}

func displayBenchResults(results []benchResult, rays, mismatches int) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"World", "Blocks", "Primary rays", "Render time", "Random rays", "Intersect time", "Mean color"})
	for _, res := range results {
		table.Append([]string{
			res.world,
			fmt.Sprintf("%d", len(res.stats.Blocks)),
			fmt.Sprintf("%d", res.stats.PrimaryRays),
			fmt.Sprintf("%s", res.stats.RenderTime),
			fmt.Sprintf("%d", rays),
			fmt.Sprintf("%s", res.hitDur),
			fmt.Sprintf("(%.3f, %.3f, %.3f)", res.mean[0], res.mean[1], res.mean[2]),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "MISMATCHES", fmt.Sprintf("%d", mismatches)})

	table.Render()
	logger.Noticef("benchmark results\n%s", buf.String())

	if len(results) == 0 {
		return
	}

	var blockBuf bytes.Buffer
	blockTable := tablewriter.NewWriter(&blockBuf)
	blockTable.SetAutoFormatHeaders(false)
	blockTable.SetHeader([]string{"World", "Block", "Block height", "% of frame", "Render time"})
	for _, res := range results {
		for index, stat := range res.stats.Blocks {
			blockTable.Append([]string{
				res.world,
				fmt.Sprintf("%d", index),
				fmt.Sprintf("%d", stat.BlockH),
				fmt.Sprintf("%02.1f %%", stat.FramePercent),
				fmt.Sprintf("%s", stat.RenderTime),
			})
		}
	}
	blockTable.Render()
	logger.Debugf("block statistics\n%s", blockBuf.String())
}
