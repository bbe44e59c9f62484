package bvh

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
)

// Generate count non-overlapping spheres on a jittered 3D grid.
func sphereField(rng *rand.Rand, count int) []scene.Hittable {
	materials := []scene.Material{
		scene.NewMatte(types.Uniform(0.5)),
		scene.NewMetal(types.Uniform(0.8), 0.1),
		scene.NewGlass(types.Uniform(1), 0, 1.5),
	}

	side := int(math.Ceil(math.Cbrt(float64(count))))
	objects := make([]scene.Hittable, 0, count)
	for index := 0; len(objects) < count; index++ {
		i, j, k := index%side, (index/side)%side, index/(side*side)
		center := types.XYZ(float64(3*i), float64(3*j), float64(3*k)).
			Add(types.RandomVec3(rng).Mul(0.4))
		radius := 0.2 + 0.8*rng.Float64()
		objects = append(objects, scene.NewSphere(center, radius, materials[index%len(materials)]))
	}
	return objects
}

func TestBuildShapes(t *testing.T) {
	type spec struct {
		count    int
		expNodes int
		expDepth int
	}
	specs := []spec{
		{1, 0, 0},
		{2, 1, 1},
		{3, 2, 2},
		{4, 3, 2},
		{7, 6, 3},
		{1000, 999, 10},
	}

	rng := rand.New(rand.NewSource(1))
	for _, s := range specs {
		objects := sphereField(rng, s.count)
		list := scene.NewList(objects...)
		expBounds := list.Bounds()

		tree := Build(list)
		if tree.Len() != s.count {
			t.Fatalf("[%d objects] expected tree to hold %d objects; got %d", s.count, s.count, tree.Len())
		}
		if len(tree.Nodes()) != s.expNodes {
			t.Fatalf("[%d objects] expected %d nodes; got %d", s.count, s.expNodes, len(tree.Nodes()))
		}
		if tree.Depth() != s.expDepth {
			t.Fatalf("[%d objects] expected depth %d; got %d", s.count, s.expDepth, tree.Depth())
		}
		if got := tree.Bounds(); got != expBounds {
			t.Fatalf("[%d objects] expected tree bounds %v; got %v", s.count, expBounds, got)
		}
		if !list.Consumed() {
			t.Fatalf("[%d objects] expected source list to be consumed", s.count)
		}
	}
}

func TestSingleObjectTreeIsBareLeaf(t *testing.T) {
	sphere := scene.NewSphere(types.XYZ(1, 2, 3), 1, scene.NewMatte(types.Uniform(1)))
	tree := FromObjects([]scene.Hittable{sphere})

	if len(tree.Nodes()) != 0 {
		t.Fatalf("expected single object tree to have no nodes; got %d", len(tree.Nodes()))
	}

	source, towards := types.XYZ(1, 2, -10), types.XYZ(0, 0, 1)
	if got, exp := tree.Hit(source, towards), sphere.Hit(source, towards); got != exp {
		t.Fatalf("expected %+v; got %+v", exp, got)
	}
}

func TestNodeBoxesContainChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tree := FromObjects(sphereField(rng, 200))

	childBox := func(ref int32) scene.Box {
		if isLeaf(ref) {
			return tree.objects[objectIndex(ref)].Bounds()
		}
		return tree.nodes[ref].Box
	}

	for index, node := range tree.Nodes() {
		exp := scene.Wrap(childBox(node.LData), childBox(node.RData))
		if node.Box != exp {
			t.Fatalf("expected node %d box %v; got %v", index, exp, node.Box)
		}
		for _, ref := range []int32{node.LData, node.RData} {
			if !isLeaf(ref) && int(ref) <= index {
				t.Fatalf("expected child node %d to follow parent %d", ref, index)
			}
		}
	}
}

func TestTreeMatchesList(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	objects := sphereField(rng, 300)
	list := scene.NewList(objects...)
	tree := FromObjects(objects)

	type ray struct {
		source, towards types.Vec3
	}
	rays := make([]ray, 0)

	// Random rays from around and inside the field.
	for i := 0; i < 2000; i++ {
		rays = append(rays, ray{
			types.RandomVec3(rng).Mul(40).Add(types.Uniform(10)),
			types.RandomVec3(rng),
		})
	}

	// Axis-aligned rays through sphere centers, from inside spheres and
	// rays that miss every object.
	for _, obj := range objects[:50] {
		center := obj.Bounds().Center()
		rays = append(rays,
			ray{center.Sub(types.XYZ(100, 0, 0)), types.XYZ(1, 0, 0)},
			ray{center.Add(types.XYZ(0, 100, 0)), types.XYZ(0, -3, 0)},
			ray{center, types.XYZ(0, 0, 1)},
		)
	}
	rays = append(rays,
		ray{types.XYZ(-100, -100, -100), types.XYZ(-1, 0, 0)},
		ray{types.XYZ(0, 500, 0), types.XYZ(1, 0, 1)},
	)

	// Rays grazing the overall bounding box faces.
	bounds := tree.Bounds()
	rays = append(rays,
		ray{types.XYZ(bounds.X.Lo-1, bounds.Y.Hi, bounds.Z.Lo), types.XYZ(1, 0, 0)},
		ray{types.XYZ(bounds.X.Lo, bounds.Y.Lo-1, bounds.Z.Hi), types.XYZ(0, 1, 0)},
		ray{types.XYZ(bounds.X.Hi, bounds.Y.Hi, bounds.Z.Lo-1), types.XYZ(0, 0, 1)},
	)

	hits := 0
	for index, r := range rays {
		exp := list.Hit(r.source, r.towards)
		got := tree.Hit(r.source, r.towards)
		if got != exp {
			t.Fatalf("[ray %d] expected bvh hit %+v; got %+v", index, exp, got)
		}
		if got.IsHit() {
			hits++
		}
	}

	if hits == 0 || hits == len(rays) {
		t.Fatalf("expected a mix of hits and misses; got %d hits out of %d rays", hits, len(rays))
	}
}

func TestFromObjectsLeavesInputUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	objects := sphereField(rng, 50)
	original := make([]scene.Hittable, len(objects))
	copy(original, objects)

	FromObjects(objects)
	for index := range objects {
		if objects[index] != original[index] {
			t.Fatalf("expected input slice to be left unmodified at index %d", index)
		}
	}
}

func TestEmptyBuildPanics(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Fatal("expected building a tree from an empty list to panic")
		}
	}()
	Build(scene.NewList())
}

func TestSplitAxisAndSort(t *testing.T) {
	mat := scene.NewMatte(types.Uniform(1))
	workList := []scene.Hittable{
		scene.NewSphere(types.XYZ(5, 0, 0), 1, mat),
		scene.NewSphere(types.XYZ(-5, 0, 0), 1, mat),
		scene.NewSphere(types.XYZ(0, 0, 0), 1, mat),
		scene.NewSphere(types.XYZ(-5, 1, 0), 1, mat),
	}

	// Signed offsets from the mean cancel out exactly so the tie goes to Z.
	if axis := splitAxis(workList); axis != ZAxis {
		t.Fatalf("expected split axis %s; got %s", ZAxis, axis)
	}

	sortByAxis(workList, XAxis)
	expX := []float64{-5, -5, 0, 5}
	for index, item := range workList {
		if got := item.Bounds().Center()[0]; got != expX[index] {
			t.Fatalf("expected item %d center x to be %f; got %f", index, expX[index], got)
		}
	}

	// Stable: the two items at x = -5 keep their relative order.
	if workList[0].Bounds().Center()[1] != 0 || workList[1].Bounds().Center()[1] != 1 {
		t.Fatal("expected sort to preserve the order of equal keys")
	}
}

func TestTreeStats(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	tree := FromObjects(sphereField(rng, 10))

	out := tree.Stats()
	for _, exp := range []string{"Objects", "Nodes", "Max depth", "Build time"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected stats table to contain %q; got:\n%s", exp, out)
		}
	}
}
