package scene

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/achilleasa/go-raytrace/asset/compiler/bvh"
	core "github.com/achilleasa/go-raytrace/scene"
	"github.com/olekukonko/tablewriter"
)

// Scene bundles everything needed to render: a camera, the list of scene
// objects and the named materials they reference.
type Scene struct {
	Camera *core.Camera

	// The scene objects. The list is consumed when the scene is converted
	// into a BVH-backed world.
	Objects *core.List

	// Named materials. Materials may be shared by any number of objects.
	Materials map[string]core.Material
}

// Create an empty scene with the given camera.
func New(camera *core.Camera) *Scene {
	return &Scene{
		Camera:    camera,
		Objects:   core.NewList(),
		Materials: make(map[string]core.Material),
	}
}

// Get the hittable used for tracing rays. When useBVH is true the object
// list is moved into a BVH tree; otherwise the list itself is returned.
func (sc *Scene) World(useBVH bool) core.Hittable {
	if useBVH {
		return bvh.Build(sc.Objects)
	}
	return sc.Objects
}

// Build a tabular representation of scene statistics.
func (sc *Scene) Stats() string {
	counts := make(map[core.MaterialType]int)
	for index := 0; index < sc.Objects.Len(); index++ {
		if sphere, ok := sc.Objects.At(index).(*core.Sphere); ok && sphere.Material != nil {
			counts[sphere.Material.Type()]++
		}
	}

	matTypes := make([]core.MaterialType, 0, len(counts))
	for matType := range counts {
		matTypes = append(matTypes, matType)
	}
	sort.Slice(matTypes, func(i, j int) bool { return matTypes[i] < matTypes[j] })

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Asset Type", "Asset", "Count"})
	table.Append([]string{"Objects", "---", fmt.Sprintf("%d", sc.Objects.Len())})
	for _, matType := range matTypes {
		table.Append([]string{"", matType.String(), fmt.Sprintf("%d", counts[matType])})
	}
	table.Append([]string{"Materials", "named", fmt.Sprintf("%d", len(sc.Materials))})
	table.Render()
	return buf.String()
}
