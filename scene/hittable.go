package scene

import "github.com/achilleasa/go-raytrace/types"

// The Hittable interface is implemented by all scene objects that can be
// intersected by a ray: spheres, lists and BVH trees.
//
// Hittables are read-only once constructed so a single instance can be safely
// queried by any number of goroutines.
type Hittable interface {
	// Find the nearest intersection of the ray source + t*towards with t > 0.
	Hit(source, towards types.Vec3) HitRecord

	// Get the bounding box of the object.
	Bounds() Box
}
