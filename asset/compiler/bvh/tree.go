package bvh

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/types"
	"github.com/olekukonko/tablewriter"
)

var _ scene.Hittable = (*Tree)(nil)

// Find the nearest intersection by walking the tree. Subtrees whose box is
// missed by the ray are skipped; otherwise both children are always visited.
func (t *Tree) Hit(source, towards types.Vec3) scene.HitRecord {
	return t.hit(t.root, source, towards)
}

func (t *Tree) hit(ref int32, source, towards types.Vec3) scene.HitRecord {
	if isLeaf(ref) {
		return t.objects[objectIndex(ref)].Hit(source, towards)
	}

	node := &t.nodes[ref]
	if !node.Box.Through(source, towards) {
		return scene.Miss()
	}

	return scene.Nearest(
		t.hit(node.LData, source, towards),
		t.hit(node.RData, source, towards),
	)
}

// Get the bounding box of the whole tree.
func (t *Tree) Bounds() scene.Box {
	if isLeaf(t.root) {
		return t.objects[objectIndex(t.root)].Bounds()
	}
	return t.nodes[t.root].Box
}

// Get the number of objects stored in the tree leaves.
func (t *Tree) Len() int {
	return len(t.objects)
}

// Get the list of internal tree nodes. The root node (if any) is at index 0.
func (t *Tree) Nodes() []Node {
	return t.nodes
}

// Get the max leaf depth. A single-object tree has depth 0.
func (t *Tree) Depth() int {
	return t.stats.maxDepth
}

// Build a tabular representation of tree statistics.
func (t *Tree) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"BVH", "Value"})
	table.Append([]string{"Objects", fmt.Sprintf("%d", t.stats.objects)})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", t.stats.nodes)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", t.stats.maxDepth)})
	table.Append([]string{"Build time", t.stats.buildTime.String()})
	table.Render()
	return buf.String()
}
