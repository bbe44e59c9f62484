package scene

import (
	"math/rand"

	core "github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// Generate the classic "many random spheres" scene: a large ground sphere, a
// 22x22 grid of small spheres with random materials and three large feature
// spheres (glass, matte and mirror metal).
func Random(rng *rand.Rand) *Scene {
	cam := core.NewCamera(30)
	cam.Eye = types.XYZ(13, 2, 3)
	cam.LookAt = types.Vec3{}
	cam.Up = types.XYZ(0, 1, 0)

	sc := New(cam)
	for i := -11; i < 11; i++ {
		for j := -11; j < 11; j++ {
			center := types.XYZ(
				float64(i)+0.9*rng.Float64(), 0.2, float64(j)+0.9*rng.Float64(),
			)
			sc.Objects.Add(core.NewSphere(center, 0.2, randomMaterial(rng)))
		}
	}

	sc.Materials["ground"] = core.NewMatte(types.Uniform(0.9))
	sc.Materials["glass"] = core.NewGlass(types.Uniform(1), 0, 1.5)
	sc.Materials["clay"] = core.NewMatte(types.XYZ(0.4, 0.2, 0.1))
	sc.Materials["mirror"] = core.NewMetal(types.XYZ(0.7, 0.6, 0.5), 0)

	sc.Objects.Add(core.NewSphere(types.XYZ(0, -1000, 0), 1000, sc.Materials["ground"]))
	sc.Objects.Add(core.NewSphere(types.XYZ(0, 1, 0), 1, sc.Materials["glass"]))
	sc.Objects.Add(core.NewSphere(types.XYZ(-4, 1, 0), 1, sc.Materials["clay"]))
	sc.Objects.Add(core.NewSphere(types.XYZ(4, 1, 0), 1, sc.Materials["mirror"]))

	return sc
}

// Pick a random material kind with random parameters: blur in [0, 0.5),
// refractive index in [1, 2) and albedo components in [0, 1).
func randomMaterial(rng *rand.Rand) core.Material {
	kind := int(rng.Float64() * 3)
	blur := rng.Float64() / 2
	ior := rng.Float64() + 1
	albedo := types.RandomVec3(rng).Add(types.Uniform(1)).Div(2)

	switch kind {
	case 0:
		return core.NewMatte(albedo)
	case 1:
		return core.NewMetal(albedo, blur)
	default:
		return core.NewGlass(albedo, blur, ior)
	}
}
