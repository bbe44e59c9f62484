package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/achilleasa/go-raytrace/types"
)

const testEpsilon = 1e-9

func approxVec(v1, v2 types.Vec3, eps float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(v1[i]-v2[i]) > eps {
			return false
		}
	}
	return true
}

func randomBox(rng *rand.Rand) Box {
	return NewBox(types.RandomVec3(rng).Mul(10), types.RandomVec3(rng).Mul(10))
}

func TestNewBoxOrdersCorners(t *testing.T) {
	b := NewBox(types.XYZ(1, -2, 3), types.XYZ(-1, 2, -3))

	expMin := types.XYZ(-1, -2, -3)
	expMax := types.XYZ(1, 2, 3)
	if b.Min() != expMin {
		t.Fatalf("expected box min to be %v; got %v", expMin, b.Min())
	}
	if b.Max() != expMax {
		t.Fatalf("expected box max to be %v; got %v", expMax, b.Max())
	}
	if b.Center() != (types.Vec3{}) {
		t.Fatalf("expected box center to be the origin; got %v", b.Center())
	}

	iv := Interval{5, -5}.Ordered()
	if iv.Lo != -5 || iv.Hi != 5 {
		t.Fatalf("expected ordered interval to be [-5, 5]; got [%f, %f]", iv.Lo, iv.Hi)
	}

	for axis, exp := range []Interval{b.X, b.Y, b.Z} {
		if b.Axis(axis) != exp {
			t.Fatalf("expected axis %d interval to be %v; got %v", axis, exp, b.Axis(axis))
		}
	}
}

func TestBoxWrapAlgebra(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a, b, c := randomBox(rng), randomBox(rng), randomBox(rng)

		if Wrap(a, b) != Wrap(b, a) {
			t.Fatalf("expected wrap to be commutative for %v and %v", a, b)
		}
		if Wrap(Wrap(a, b), c) != Wrap(a, Wrap(b, c)) {
			t.Fatalf("expected wrap to be associative for %v, %v and %v", a, b, c)
		}
		if Wrap(a, a) != a {
			t.Fatalf("expected wrap(b, b) == b for %v", a)
		}

		w := Wrap(a, b)
		if types.MinVec3(a.Min(), b.Min()) != w.Min() || types.MaxVec3(a.Max(), b.Max()) != w.Max() {
			t.Fatalf("expected wrapped box %v to tightly contain %v and %v", w, a, b)
		}
	}
}

func TestBoxThrough(t *testing.T) {
	box := NewBox(types.XYZ(-1, -1, -1), types.XYZ(1, 1, 1))

	type spec struct {
		name    string
		source  types.Vec3
		towards types.Vec3
		exp     bool
	}
	specs := []spec{
		{"x axis towards center", types.XYZ(-5, 0, 0), types.XYZ(1, 0, 0), true},
		{"y axis towards center", types.XYZ(0, -5, 0), types.XYZ(0, 1, 0), true},
		{"z axis towards center", types.XYZ(0, 0, 5), types.XYZ(0, 0, -1), true},
		{"unnormalized direction", types.XYZ(0, 0, 5), types.XYZ(0, 0, -0.01), true},
		{"diagonal", types.XYZ(-5, -5, -5), types.XYZ(1, 1, 1), true},
		{"outside on y slab", types.XYZ(-5, 3, 0), types.XYZ(1, 0, 0), false},
		{"outside on z slab", types.XYZ(0, -5, -1.5), types.XYZ(0, 1, 0), false},
		{"skew miss", types.XYZ(-5, 0, 0), types.XYZ(1, 2, 0), false},
		{"grazing edge", types.XYZ(-3, -1, 0), types.XYZ(1, 1, 0), false},
	}

	for _, s := range specs {
		if got := box.Through(s.source, s.towards); got != s.exp {
			t.Fatalf("[%s] expected through to return %t; got %t", s.name, s.exp, got)
		}
	}
}
