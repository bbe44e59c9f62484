package scene

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/achilleasa/go-raytrace/types"
)

// The camera type controls how primary rays are generated. Rays are produced
// by interpolating across an image plane that passes through LookAt.
type Camera struct {
	Eye    types.Vec3
	LookAt types.Vec3
	Up     types.Vec3

	// Vertical field of view in degrees.
	FOV float64

	// Lens radius; 0 gives a pinhole camera.
	Aperture float64

	// Image plane lower-left corner and spanning vectors. Updated by
	// SetupProjection.
	Corner     types.Vec3
	Horizontal types.Vec3
	Vertical   types.Vec3
}

// Create a camera at the origin looking down the -Z axis.
func NewCamera(fov float64) *Camera {
	return &Camera{
		Eye:    types.Vec3{0, 0, 0},
		LookAt: types.Vec3{0, 0, -1},
		Up:     types.Vec3{0, 1, 0},
		FOV:    fov,
	}
}

// Setup the image plane for the given width/height aspect ratio. Must be
// called after changing any of the camera placement fields.
func (c *Camera) SetupProjection(aspect float64) {
	vision := c.LookAt.Sub(c.Eye)

	halfAngle := math.Pi * c.FOV / 360.0
	height := math.Tan(halfAngle) * vision.Len()
	width := height * aspect

	// Make the up vector orthogonal to the view direction
	unit := vision.Normalize()
	up := c.Up.Sub(unit.Mul(c.Up.Dot(unit))).Normalize()
	horizon := vision.Cross(up).Normalize()

	up = up.Mul(height)
	horizon = horizon.Mul(width)

	c.Corner = c.LookAt.Sub(up).Sub(horizon)
	c.Horizontal = horizon.Mul(2)
	c.Vertical = up.Mul(2)
}

// Generate a ray towards the image plane point at (u, v) where both
// coordinates are in [0, 1] and (0, 0) is the lower-left corner. When the
// camera has a non-zero aperture the ray origin is jittered across the lens.
func (c *Camera) Ray(rng *rand.Rand, u, v float64) (source, towards types.Vec3) {
	source = c.Eye
	if c.Aperture > 0 {
		ai, aj := types.RandomInDisk(rng, c.Aperture)
		source = source.
			Add(c.Horizontal.Normalize().Mul(ai)).
			Add(c.Vertical.Normalize().Mul(aj))
	}

	end := c.Corner.Add(c.Horizontal.Mul(u)).Add(c.Vertical.Mul(v))
	return source, end.Sub(source)
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\nEye    : (%3.3f, %3.3f, %3.3f)\nLookAt : (%3.3f, %3.3f, %3.3f)\nUp     : (%3.3f, %3.3f, %3.3f)\nFOV    : %3.1f, aperture: %3.3f",
		c.Eye[0], c.Eye[1], c.Eye[2],
		c.LookAt[0], c.LookAt[1], c.LookAt[2],
		c.Up[0], c.Up[1], c.Up[2],
		c.FOV, c.Aperture,
	)
}
