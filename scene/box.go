package scene

import (
	"math"

	"github.com/achilleasa/go-raytrace/types"
)

// An Interval is a closed scalar range used as an axis-aligned bound.
type Interval struct {
	Lo float64
	Hi float64
}

// Return a copy of the interval with its endpoints swapped if required so
// that Lo <= Hi.
func (iv Interval) Ordered() Interval {
	if iv.Lo <= iv.Hi {
		return iv
	}
	return Interval{Lo: iv.Hi, Hi: iv.Lo}
}

// Return the smallest interval containing both iv and other.
func (iv Interval) Union(other Interval) Interval {
	return Interval{Lo: math.Min(iv.Lo, other.Lo), Hi: math.Max(iv.Hi, other.Hi)}
}

// Box is an axis-aligned bounding box described by one ordered interval per
// axis.
type Box struct {
	X, Y, Z Interval
}

// Create a box spanning the two given corners. The corners do not need to be
// sorted.
func NewBox(a, b types.Vec3) Box {
	return Box{
		X: Interval{a[0], b[0]}.Ordered(),
		Y: Interval{a[1], b[1]}.Ordered(),
		Z: Interval{a[2], b[2]}.Ordered(),
	}
}

// Return the smallest box containing both a and b.
func Wrap(a, b Box) Box {
	return a.Wrap(b)
}

// Return the smallest box containing both b and other.
func (b Box) Wrap(other Box) Box {
	return Box{
		X: b.X.Union(other.X),
		Y: b.Y.Union(other.Y),
		Z: b.Z.Union(other.Z),
	}
}

// Get the interval for the given axis index (0: X, 1: Y, 2: Z).
func (b Box) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// Get the box min corner.
func (b Box) Min() types.Vec3 {
	return types.Vec3{b.X.Lo, b.Y.Lo, b.Z.Lo}
}

// Get the box max corner.
func (b Box) Max() types.Vec3 {
	return types.Vec3{b.X.Hi, b.Y.Hi, b.Z.Hi}
}

// Get the box center.
func (b Box) Center() types.Vec3 {
	return types.Vec3{
		(b.X.Lo + b.X.Hi) / 2,
		(b.Y.Lo + b.Y.Hi) / 2,
		(b.Z.Lo + b.Z.Hi) / 2,
	}
}

// Check whether the ray source + t*towards passes through the box using the
// slab test. A zero direction component yields an infinite inverse which
// IEEE arithmetic turns into an unbounded (or empty) slab for that axis, so
// it is deliberately left unguarded. Grazing rays (tMin == tMax) miss.
func (b Box) Through(source, towards types.Vec3) bool {
	minimum := b.Min()
	maximum := b.Max()

	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	for i := 0; i < 3; i++ {
		invB := 1.0 / towards[i]
		tSmall := (minimum[i] - source[i]) * invB
		tLarge := (maximum[i] - source[i]) * invB
		if invB < 0 {
			tSmall, tLarge = tLarge, tSmall
		}

		if tSmall > tMin {
			tMin = tSmall
		}
		if tLarge < tMax {
			tMax = tLarge
		}
	}

	return tMin < tMax
}
