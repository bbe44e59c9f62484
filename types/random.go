package types

import "math/rand"

// Generate a vector whose components are uniformly distributed in [-1, 1).
func RandomVec3(rng *rand.Rand) Vec3 {
	return Vec3{
		2*rng.Float64() - 1,
		2*rng.Float64() - 1,
		2*rng.Float64() - 1,
	}
}

// Generate a uniformly distributed point inside (or on) a ball with the given
// radius centered at the origin. Samples are drawn by rejection from the
// enclosing cube.
func RandomInBall(rng *rand.Rand, radius float64) Vec3 {
	for {
		v := RandomVec3(rng)
		if v.LenSq() <= 1 {
			return v.Mul(radius)
		}
	}
}

// Generate a uniformly distributed point inside a disk with the given radius
// lying on the XY plane. Only the first two components are used by callers.
func RandomInDisk(rng *rand.Rand, radius float64) (x, y float64) {
	for {
		x, y = 2*rng.Float64()-1, 2*rng.Float64()-1
		if x*x+y*y <= 1 {
			return x * radius, y * radius
		}
	}
}
