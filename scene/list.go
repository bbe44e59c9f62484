package scene

import "github.com/achilleasa/go-raytrace/types"

// List is a Hittable aggregate that tests every child object for each ray.
//
// A List is populated while a scene is being built. Once its contents are
// handed over to a BVH via Take, the list is marked as consumed and any
// further attempt to append to it panics.
type List struct {
	objects  []Hittable
	consumed bool
}

// Create a new list containing the given objects.
func NewList(objects ...Hittable) *List {
	l := &List{objects: make([]Hittable, 0, len(objects))}
	l.objects = append(l.objects, objects...)
	return l
}

// Append an object to the list.
func (l *List) Add(obj Hittable) {
	if l.consumed {
		panic("scene: cannot add objects to a consumed list")
	}
	l.objects = append(l.objects, obj)
}

// Get the number of objects in the list.
func (l *List) Len() int {
	return len(l.objects)
}

// Get the object at index.
func (l *List) At(index int) Hittable {
	return l.objects[index]
}

// Returns true if the list contents have been moved out via Take.
func (l *List) Consumed() bool {
	return l.consumed
}

// Move the list contents to the caller. After this call the list is empty
// and can no longer be modified.
func (l *List) Take() []Hittable {
	if l.consumed {
		panic("scene: list already consumed")
	}
	objects := l.objects
	l.objects = nil
	l.consumed = true
	return objects
}

// Return the nearest hit across all list objects. An empty list always misses.
func (l *List) Hit(source, towards types.Vec3) HitRecord {
	closest := Miss()
	for _, obj := range l.objects {
		if hit := obj.Hit(source, towards); hit.T < closest.T {
			closest = hit
		}
	}
	return closest
}

// Get the box wrapping all list objects. Bounding an empty list is a
// programming error and causes a panic.
func (l *List) Bounds() Box {
	return BoundsOf(l.objects)
}

// Get the box wrapping all objects in a slice. Panics if the slice is empty.
func BoundsOf(objects []Hittable) Box {
	if len(objects) == 0 {
		panic("scene: cannot compute the bounds of an empty object list")
	}

	bounds := objects[0].Bounds()
	for _, obj := range objects[1:] {
		bounds = bounds.Wrap(obj.Bounds())
	}
	return bounds
}
