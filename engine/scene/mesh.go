package scene

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is the pickable geometry of a node, in the node's local space.
// Triangles are optional; without them hit-tests fall back to the bounding box.
type Mesh struct {
	Bounds    common.Box3
	Triangles [][3]mgl32.Vec3
}

// NewBoxMesh returns a mesh described only by its bounds.
func NewBoxMesh(min, max mgl32.Vec3) *Mesh {
	return &Mesh{Bounds: common.Box3{Min: min, Max: max}}
}

// NewTriangleMesh returns a mesh from a triangle soup and computes its bounds.
func NewTriangleMesh(triangles [][3]mgl32.Vec3) *Mesh {
	b := common.EmptyBox3()
	for _, tri := range triangles {
		b = b.ExpandByPoint(tri[0]).ExpandByPoint(tri[1]).ExpandByPoint(tri[2])
	}
	return &Mesh{Bounds: b, Triangles: triangles}
}

// Intersect tests a local-space ray against the mesh.
// The bounds act as a broad phase before the triangle test.
//
// Parameters:
//   - r: ray in the mesh's local space
//
// Returns:
//   - mgl32.Vec3: the local-space hit point
//   - bool: true on hit
func (m *Mesh) Intersect(r common.Ray) (mgl32.Vec3, bool) {
	t, ok := r.IntersectBox(m.Bounds)
	if !ok {
		return mgl32.Vec3{}, false
	}
	if len(m.Triangles) == 0 {
		return r.At(t), true
	}
	best := float32(-1)
	for _, tri := range m.Triangles {
		if d, hit := r.IntersectTriangle(tri[0], tri[1], tri[2]); hit && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return mgl32.Vec3{}, false
	}
	return r.At(best), true
}

// IntersectNode tests a world-space ray against a node's mesh and returns the world-space
// distance from the ray origin to the hit point.
//
// Parameters:
//   - n: the node whose mesh is tested
//   - r: world-space ray
//
// Returns:
//   - float32: distance along the world ray
//   - bool: true on hit, false if the node has no mesh or the ray misses
func IntersectNode(n Node, r common.Ray) (float32, bool) {
	m := n.Mesh()
	if m == nil {
		return 0, false
	}
	world := n.WorldMatrix()
	inv := world.Inv()
	local, ok := m.Intersect(r.Transform(inv))
	if !ok {
		return 0, false
	}
	return common.TransformPoint(world, local).Sub(r.Origin).Len(), true
}
