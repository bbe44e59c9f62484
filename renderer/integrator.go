package renderer

import (
	"math/rand"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

var (
	skyHorizon = types.Uniform(1)
	skyZenith  = types.XYZ(0.5, 0.7, 1.0)
)

// Follow a path starting at source along towards and return the collected
// color. Every hit attenuates the path by the surface albedo and continues
// along the scattered direction; escaping rays pick up the sky gradient.
// Paths that are still bouncing after maxBounces hits contribute no light.
func Trace(rng *rand.Rand, world scene.Hittable, source, towards types.Vec3, maxBounces uint32) types.Vec3 {
	color := types.Uniform(1)
	for bounce := uint32(0); bounce < maxBounces; bounce++ {
		hit := world.Hit(source, towards)
		if !hit.IsHit() {
			return color.MulVec(sky(towards))
		}

		color = color.MulVec(hit.Material.Albedo())
		towards = hit.Material.Scatter(rng, towards, hit.Normal)
		source = hit.Point
	}

	return types.Vec3{}
}

// Blend between the horizon and zenith colors based on the ray elevation.
func sky(towards types.Vec3) types.Vec3 {
	t := 0.5 * (towards.Normalize()[1] + 1)
	return skyHorizon.Mul(1 - t).Add(skyZenith.Mul(t))
}
