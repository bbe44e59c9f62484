package scene

import (
	"math"

	"github.com/achilleasa/go-raytrace/types"
)

// Sphere is a Hittable defined by a center and a radius. The material may be
// shared with other spheres.
type Sphere struct {
	Center   types.Vec3
	Radius   float64
	Material Material
}

// Create new sphere.
func NewSphere(center types.Vec3, radius float64, mat Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Get the (unnormalized) outward normal at a point on the sphere surface.
func (s *Sphere) normal(point types.Vec3) types.Vec3 {
	return point.Sub(s.Center)
}

// Intersect the ray with the sphere by solving the quadratic
// |source + t*towards - center|^2 = radius^2 for t.
//
// The near root is preferred when it lies in front of the ray source; otherwise
// the far root is used (source inside the sphere). A tangent ray
// (discriminant == 0) is reported as a hit where both roots coincide.
func (s *Sphere) Hit(source, towards types.Vec3) HitRecord {
	oc := s.normal(source)
	a := towards.LenSq()
	b := oc.Dot(towards)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant < 0 {
		return Miss()
	}

	base := math.Sqrt(discriminant)
	if near := (-b - base) / a; near > 0 {
		point := source.Add(towards.Mul(near))
		return Hit(near, point, s.normal(point), s.Material)
	}
	if far := (-b + base) / a; far > 0 {
		point := source.Add(towards.Mul(far))
		return Hit(far, point, s.normal(point), s.Material)
	}

	return Miss()
}

// Get the sphere bounding box.
func (s *Sphere) Bounds() Box {
	r := types.Uniform(s.Radius)
	return NewBox(s.Center.Sub(r), s.Center.Add(r))
}
