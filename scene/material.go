package scene

import (
	"math"
	"math/rand"

	"github.com/achilleasa/go-raytrace/types"
)

type MaterialType uint8

const (
	MatteMaterial MaterialType = iota
	MetalMaterial
	GlassMaterial
)

// String returns the material type name.
func (mt MaterialType) String() string {
	switch mt {
	case MatteMaterial:
		return "matte"
	case MetalMaterial:
		return "metal"
	case GlassMaterial:
		return "glass"
	}
	return "unknown"
}

// The Material interface is implemented by all surface materials.
//
// Materials are immutable values. Scatter draws any randomness it needs from
// the supplied generator so that each worker can own an independent stream.
type Material interface {
	// Get the material type.
	Type() MaterialType

	// Get the reflectance color used when shading.
	Albedo() types.Vec3

	// Compute the outgoing direction for a ray arriving along incoming at a
	// surface with the given (not necessarily normalized) normal.
	Scatter(rng *rand.Rand, incoming, normal types.Vec3) types.Vec3
}

// Matte is a Lambertian diffuse material.
type Matte struct {
	Color types.Vec3
}

// Create a new matte material.
func NewMatte(albedo types.Vec3) *Matte {
	return &Matte{Color: albedo}
}

func (m *Matte) Type() MaterialType { return MatteMaterial }
func (m *Matte) Albedo() types.Vec3 { return m.Color }

// Bounce towards normal + a random point in the unit ball. The incoming
// direction is ignored.
func (m *Matte) Scatter(rng *rand.Rand, _, normal types.Vec3) types.Vec3 {
	return normal.Normalize().Add(types.RandomInBall(rng, 1))
}

// Metal is a specular reflector. Blur is the radius of the ball used to
// perturb the mirror direction; 0 gives a perfect mirror.
type Metal struct {
	Color types.Vec3
	Blur  float64
}

// Create a new metal material.
func NewMetal(albedo types.Vec3, blur float64) *Metal {
	return &Metal{Color: albedo, Blur: blur}
}

func (m *Metal) Type() MaterialType { return MetalMaterial }
func (m *Metal) Albedo() types.Vec3 { return m.Color }

// Reflect the normalized incoming direction about the normal and apply blur.
func (m *Metal) Scatter(rng *rand.Rand, incoming, normal types.Vec3) types.Vec3 {
	return blurred(rng, reflect(incoming.Normalize(), normal.Normalize()), m.Blur)
}

// Glass is a dielectric that either reflects or refracts incoming rays.
type Glass struct {
	Color types.Vec3
	Blur  float64

	// Index of refraction of the material relative to the surrounding medium.
	IOR float64
}

// Create a new glass material.
func NewGlass(albedo types.Vec3, blur, ior float64) *Glass {
	return &Glass{Color: albedo, Blur: blur, IOR: ior}
}

func (g *Glass) Type() MaterialType { return GlassMaterial }
func (g *Glass) Albedo() types.Vec3 { return g.Color }

// Pick between reflection and refraction. Whether the ray enters or exits the
// medium is decided by the sign of incoming . normal; the normal is expected
// to point out of the medium. Total internal reflection always reflects,
// otherwise reflection is chosen with the Schlick probability.
func (g *Glass) Scatter(rng *rand.Rand, incoming, normal types.Vec3) types.Vec3 {
	ui := incoming.Normalize()
	un := normal.Normalize()

	// Orient the normal against the incoming ray.
	ratio := 1.0 / g.IOR
	facing := un
	if ui.Dot(un) > 0 {
		ratio = g.IOR
		facing = un.Neg()
	}

	cosI := -ui.Dot(facing)
	sinSq := 1 - cosI*cosI

	// Squared cosine of the refracted angle according to Snell's law.
	cosSqT := 1 - ratio*ratio*sinSq

	if cosSqT < 0 || rng.Float64() < schlick(cosI, ratio) {
		return blurred(rng, reflect(ui, un), g.Blur)
	}

	refracted := ui.Mul(ratio).Add(facing.Mul(ratio*cosI - math.Sqrt(cosSqT)))
	return blurred(rng, refracted, g.Blur)
}

// Reflect dir about the unit normal n.
func reflect(dir, n types.Vec3) types.Vec3 {
	return dir.Sub(n.Mul(2 * dir.Dot(n)))
}

// Perturb dir by a random point in a ball of the given radius.
func blurred(rng *rand.Rand, dir types.Vec3, radius float64) types.Vec3 {
	if radius == 0 {
		return dir
	}
	return dir.Add(types.RandomInBall(rng, radius))
}

// Schlick's approximation of the Fresnel reflectance.
func schlick(cosine, ratio float64) float64 {
	r0 := (1 - ratio) / (1 + ratio)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
