package scene

import (
	"math"

	"github.com/achilleasa/go-raytrace/types"
)

// A HitRecord describes the nearest intersection of a ray with a surface.
//
// A record with T == +Inf is a miss; its remaining fields are unset and must
// not be read. For hits, T is the (strictly positive) ray parameter at which
// the surface was struck, measured in multiples of the ray direction.
type HitRecord struct {
	T float64

	// The intersection point and the (unnormalized) surface normal.
	Point  types.Vec3
	Normal types.Vec3

	// The material at the intersection point.
	Material Material
}

// Create a record for a ray that missed.
func Miss() HitRecord {
	return HitRecord{T: math.Inf(1)}
}

// Create a record for a ray that hit a surface at distance t.
func Hit(t float64, point, normal types.Vec3, mat Material) HitRecord {
	return HitRecord{T: t, Point: point, Normal: normal, Material: mat}
}

// Returns true if this record describes an intersection.
func (hr HitRecord) IsHit() bool {
	return !math.IsInf(hr.T, 1)
}

// Return the nearest of two records. Misses always lose; on ties a wins.
func Nearest(a, b HitRecord) HitRecord {
	if b.T < a.T {
		return b
	}
	return a
}
