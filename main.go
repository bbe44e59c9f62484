package main

import (
	"os"

	"github.com/achilleasa/go-raytrace/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-raytrace"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "info",
			Usage: "display scene and bvh information",
			Description: `
Load a scene definition and display statistics about its objects and materials
as well as the BVH tree that is built to accelerate ray intersection tests.

Pass "random" instead of a scene file to generate the random sphere scene.`,
			ArgsUsage: "scene_file.scene",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for the random scene",
				},
			},
			Action: cmd.ShowSceneInfo,
		},
		{
			Name:  "bench",
			Usage: "compare rendering with and without a bvh",
			Description: `
Render a frame of the scene twice: once by testing every ray against the plain
object list and once using a BVH tree. Then cast random rays through both worlds
and report any rays for which they disagree.`,
			ArgsUsage: "scene_file.scene",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 320,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 180,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 8,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 16,
					Usage: "max number of bounces per path",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = one per cpu)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for random number generation",
				},
				cli.IntFlag{
					Name:  "rays",
					Value: 100000,
					Usage: "number of random rays for comparing the list and bvh worlds",
				},
			},
			Action: cmd.Bench,
		},
	}

	app.Run(os.Args)
}
