package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// extractMesh merges the triangle primitives of a mesh into one local-space pick mesh.
// Non-triangle primitives (points, lines, strips) are skipped. A mesh with no triangles yields nil.
//
// Parameters:
//   - index: the mesh index in the document
//
// Returns:
//   - *scene.Mesh: the pick mesh or nil
//   - error: error if an accessor cannot be read
func (p *gltfParser) extractMesh(index int) (*scene.Mesh, error) {
	doc := p.document
	if index < 0 || index >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh index %d out of range", index)
	}

	var tris [][3]mgl32.Vec3
	for pi, prim := range doc.Meshes[index].Primitives {
		if prim.Mode != nil && *prim.Mode != gltfModeTriangles {
			continue
		}
		posIndex, ok := prim.Attributes["POSITION"]
		if !ok {
			continue
		}
		rows, err := p.readFloats(posIndex, gltfAccessorTypeVec3)
		if err != nil {
			return nil, fmt.Errorf("primitive %d positions: %w", pi, err)
		}
		positions := make([]mgl32.Vec3, len(rows))
		for i, r := range rows {
			positions[i] = mgl32.Vec3{r[0], r[1], r[2]}
		}

		var indices []uint32
		if prim.Indices != nil {
			if indices, err = p.readIndices(*prim.Indices); err != nil {
				return nil, fmt.Errorf("primitive %d indices: %w", pi, err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := indices[i], indices[i+1], indices[i+2]
			if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
				return nil, fmt.Errorf("primitive %d: index out of range", pi)
			}
			tris = append(tris, [3]mgl32.Vec3{positions[a], positions[b], positions[c]})
		}
	}
	if len(tris) == 0 {
		return nil, nil
	}
	return scene.NewTriangleMesh(tris), nil
}
