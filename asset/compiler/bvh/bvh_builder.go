package bvh

import (
	"sort"
	"time"

	"github.com/achilleasa/go-raytrace/log"
	"github.com/achilleasa/go-raytrace/scene"
)

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// String returns the axis name.
func (a Axis) String() string {
	return [...]string{"X", "Y", "Z"}[a]
}

// Bvh node definition. LData and RData reference the left and right child:
//
// - a value >= 0 is the index of a child node in the tree node list
// - a value < 0 references a leaf; the leaf object index is -value-1
type Node struct {
	Box scene.Box

	LData int32
	RData int32
}

// Encode an object index as a leaf reference.
func leafRef(objIndex int) int32 {
	return -int32(objIndex) - 1
}

// Returns true if ref points to a leaf object.
func isLeaf(ref int32) bool {
	return ref < 0
}

// Decode the object index of a leaf reference.
func objectIndex(ref int32) int {
	return int(-ref - 1)
}

type stats struct {
	objects   int
	nodes     int
	maxDepth  int
	buildTime time.Duration
}

type builder struct {
	logger log.Logger

	// The objects being partitioned. Sub-slices are sorted in place while
	// partitioning so leaves reference objects by their final index.
	objects []scene.Hittable

	// Bvh nodes stored as a contiguous list
	nodes []Node

	// Stats
	stats stats
}

// Tree is a bounding volume hierarchy over a set of hittables. It is built
// once and then treated as read-only so it can be shared across goroutines.
type Tree struct {
	objects []scene.Hittable
	nodes   []Node

	// Reference to the root node or, for single-object trees, the root leaf.
	root int32

	stats stats
}

// Build a BVH from the contents of list. The list is consumed: its objects
// are moved into the tree and it can no longer be modified.
//
// Building a tree from an empty list is a programming error and panics.
func Build(list *scene.List) *Tree {
	return build(list.Take())
}

// Build a BVH from a copy of the given object slice.
func FromObjects(objects []scene.Hittable) *Tree {
	objCopy := make([]scene.Hittable, len(objects))
	copy(objCopy, objects)
	return build(objCopy)
}

func build(objects []scene.Hittable) *Tree {
	if len(objects) == 0 {
		panic("bvh: cannot build a tree with no objects")
	}

	b := &builder{
		logger:  log.New("bvh builder"),
		objects: objects,
		nodes:   make([]Node, 0, len(objects)-1),
		stats: stats{
			objects: len(objects),
		},
	}

	start := time.Now()
	root := b.partition(0, len(objects), 0)
	b.stats.buildTime = time.Since(start)
	b.logger.Debugf(
		"BVH tree build time: %d ms, objects: %d, maxDepth: %d, nodes: %d",
		b.stats.buildTime.Nanoseconds()/1e6,
		b.stats.objects, b.stats.maxDepth, b.stats.nodes,
	)

	return &Tree{
		objects: b.objects,
		nodes:   b.nodes,
		root:    root,
		stats:   b.stats,
	}
}

// Partition objects[lo:hi] and return a reference to the generated subtree.
//
// A single object becomes a bare leaf and a pair of objects becomes a node
// with two leaves. Larger sets are sorted by their bbox centers along the
// axis with the largest accumulated center deviation and split in half.
func (b *builder) partition(lo, hi, depth int) int32 {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	workList := b.objects[lo:hi]
	switch len(workList) {
	case 0:
		panic("bvh: cannot partition an empty work list")
	case 1:
		return leafRef(lo)
	case 2:
		if depth+1 > b.stats.maxDepth {
			b.stats.maxDepth = depth + 1
		}
		return b.addNode(leafRef(lo), leafRef(lo+1))
	}

	sortByAxis(workList, splitAxis(workList))

	// Reserve a slot so that parents precede their children
	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, Node{})
	b.stats.nodes++

	mid := lo + len(workList)/2
	left := b.partition(lo, mid, depth+1)
	right := b.partition(mid, hi, depth+1)
	b.nodes[nodeIndex] = Node{
		Box:   scene.Wrap(b.bounds(left), b.bounds(right)),
		LData: left,
		RData: right,
	}

	return int32(nodeIndex)
}

// Append a node wrapping two children and return its index.
func (b *builder) addNode(left, right int32) int32 {
	nodeIndex := len(b.nodes)
	b.nodes = append(b.nodes, Node{
		Box:   scene.Wrap(b.bounds(left), b.bounds(right)),
		LData: left,
		RData: right,
	})
	b.stats.nodes++
	return int32(nodeIndex)
}

// Get the bounding box of a node or leaf reference.
func (b *builder) bounds(ref int32) scene.Box {
	if isLeaf(ref) {
		return b.objects[objectIndex(ref)].Bounds()
	}
	return b.nodes[ref].Box
}

// Select the split axis. The mean of all bbox centers is calculated and then
// the per-axis sum of the signed center offsets from the mean; the axis with
// the largest sum wins, with ties resolved towards Z.
func splitAxis(workList []scene.Hittable) Axis {
	var mean [3]float64
	for _, item := range workList {
		center := item.Bounds().Center()
		for axis := 0; axis < 3; axis++ {
			mean[axis] += center[axis]
		}
	}
	for axis := 0; axis < 3; axis++ {
		mean[axis] /= float64(len(workList))
	}

	var deviation [3]float64
	for _, item := range workList {
		center := item.Bounds().Center()
		for axis := 0; axis < 3; axis++ {
			deviation[axis] += center[axis] - mean[axis]
		}
	}

	switch {
	case deviation[0] > deviation[1] && deviation[0] > deviation[2]:
		return XAxis
	case deviation[1] > deviation[2]:
		return YAxis
	default:
		return ZAxis
	}
}

// Stable-sort the work list by the bbox center coordinate along axis.
func sortByAxis(workList []scene.Hittable, axis Axis) {
	type keyedItem struct {
		key  float64
		item scene.Hittable
	}

	keyed := make([]keyedItem, len(workList))
	for index, item := range workList {
		keyed[index] = keyedItem{key: item.Bounds().Center()[axis], item: item}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key < keyed[j].key
	})

	for index, ki := range keyed {
		workList[index] = ki.item
	}
}
