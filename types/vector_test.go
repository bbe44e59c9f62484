package types

import (
	"math"
	"math/rand"
	"testing"
)

const testEpsilon = 1e-9

func approxEqual(v1, v2 Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(v1[i]-v2[i]) > testEpsilon {
			return false
		}
	}
	return true
}

func TestVectorOps(t *testing.T) {
	a := XYZ(1, 2, 3)
	b := XYZ(-4, 5, 0.5)

	type spec struct {
		name string
		got  Vec3
		exp  Vec3
	}
	specs := []spec{
		{"add", a.Add(b), XYZ(-3, 7, 3.5)},
		{"sub", a.Sub(b), XYZ(5, -3, 2.5)},
		{"mul", a.Mul(2), XYZ(2, 4, 6)},
		{"div", a.Div(2), XYZ(0.5, 1, 1.5)},
		{"mulVec", a.MulVec(b), XYZ(-4, 10, 1.5)},
		{"neg", a.Neg(), XYZ(-1, -2, -3)},
		{"cross", XYZ(1, 0, 0).Cross(XYZ(0, 1, 0)), XYZ(0, 0, 1)},
		{"min", MinVec3(a, b), XYZ(-4, 2, 0.5)},
		{"max", MaxVec3(a, b), XYZ(1, 5, 3)},
		{"uniform", Uniform(0.25), XYZ(0.25, 0.25, 0.25)},
	}

	for _, s := range specs {
		if !approxEqual(s.got, s.exp) {
			t.Fatalf("[%s] expected %v; got %v", s.name, s.exp, s.got)
		}
	}

	if dot := a.Dot(b); dot != 7.5 {
		t.Fatalf("expected dot product to be 7.5; got %f", dot)
	}

	if l := XYZ(3, 4, 0).Len(); l != 5 {
		t.Fatalf("expected length to be 5; got %f", l)
	}

	if m := b.MaxComponent(); m != 5 {
		t.Fatalf("expected max component to be 5; got %f", m)
	}
}

func TestNormalize(t *testing.T) {
	v := XYZ(10, -3, 7).Normalize()
	if math.Abs(v.Len()-1) > testEpsilon {
		t.Fatalf("expected normalized vector to have unit length; got %f", v.Len())
	}

	exp := XYZ(0, 0, -1)
	if got := XYZ(0, 0, -42).Normalize(); !approxEqual(got, exp) {
		t.Fatalf("expected %v; got %v", exp, got)
	}
}

func TestRandomSamplers(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := RandomVec3(rng)
		for axis := 0; axis < 3; axis++ {
			if v[axis] < -1 || v[axis] >= 1 {
				t.Fatalf("expected random component in [-1, 1); got %f", v[axis])
			}
		}

		ball := RandomInBall(rng, 0.5)
		if ball.Len() > 0.5+testEpsilon {
			t.Fatalf("expected ball sample within radius 0.5; got length %f", ball.Len())
		}

		x, y := RandomInDisk(rng, 2)
		if x*x+y*y > 4+testEpsilon {
			t.Fatalf("expected disk sample within radius 2; got (%f, %f)", x, y)
		}
	}

	if v := RandomInBall(rng, 0); v != (Vec3{}) {
		t.Fatalf("expected zero radius ball sample to be the origin; got %v", v)
	}
}
