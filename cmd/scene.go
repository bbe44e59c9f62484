package cmd

import (
	"errors"
	"math/rand"

	"github.com/achilleasa/go-raytrace/asset/compiler/bvh"
	"github.com/achilleasa/go-raytrace/asset/scene"
	"github.com/achilleasa/go-raytrace/asset/scene/reader"
	"github.com/urfave/cli"
)

// The scene argument that selects the procedurally generated scene.
const randomSceneName = "random"

// Display scene and BVH info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := loadScene(ctx.Args().First(), ctx.Int64("seed"))
	if err != nil {
		return err
	}

	logger.Noticef("camera: %s", sc.Camera)
	logger.Noticef("scene information:\n%s", sc.Stats())

	tree := bvh.Build(sc.Objects)
	logger.Noticef("bvh information:\n%s", tree.Stats())

	return nil
}

// Load a scene file or generate the random scene using the given seed.
func loadScene(name string, seed int64) (*scene.Scene, error) {
	if name == randomSceneName {
		logger.Infof("generating random scene (seed %d)", seed)
		return scene.Random(rand.New(rand.NewSource(seed))), nil
	}

	logger.Infof("reading scene: %s", name)
	return reader.ReadScene(name)
}
