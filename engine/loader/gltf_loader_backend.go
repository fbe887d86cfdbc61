package loader

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// gltfLoaderBackendImpl is the implementation of gltfLoaderBackend.
type gltfLoaderBackendImpl struct{}

// gltfLoaderBackend is a loaderBackend implementation for glTF/GLB files.
// It keeps the node hierarchy with local transforms, turns mesh positions into pick
// triangles and converts node animations into clips. Rotations become Euler XYZ angles.
type gltfLoaderBackend interface {
	loaderBackend
}

var _ gltfLoaderBackend = &gltfLoaderBackendImpl{}

// newGLTFLoaderBackend creates a new glTF loader backend.
//
// Returns:
//   - gltfLoaderBackend: the loader backend for glTF/GLB files
func newGLTFLoaderBackend() gltfLoaderBackend {
	return &gltfLoaderBackendImpl{}
}

func (b *gltfLoaderBackendImpl) Load(path string, r io.Reader) (scene.Graph, error) {
	p, err := parseGLTF(r)
	if err != nil {
		return nil, err
	}
	doc := p.document

	names := gltfNodeNames(doc)
	built := make([]scene.Node, len(doc.Nodes))
	var build func(i int) (scene.Node, error)
	build = func(i int) (scene.Node, error) {
		if i < 0 || i >= len(doc.Nodes) {
			return nil, fmt.Errorf("node index %d out of range", i)
		}
		if built[i] != nil {
			return nil, fmt.Errorf("node %q is referenced twice", names[i])
		}
		gn := &doc.Nodes[i]
		pos, rot, scale := gltfNodeTransform(gn)
		opts := []scene.NodeBuilderOption{
			scene.WithPosition(pos),
			scene.WithRotation(rot),
			scene.WithScale(scale),
		}
		if gn.Mesh != nil {
			mesh, err := p.extractMesh(*gn.Mesh)
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", names[i], err)
			}
			if mesh != nil {
				opts = append(opts, scene.WithMesh(mesh))
			}
		}
		n := scene.NewNode(names[i], opts...)
		built[i] = n
		for _, c := range gn.Children {
			child, err := build(c)
			if err != nil {
				return nil, err
			}
			n.AddChild(child)
		}
		return n, nil
	}

	root := scene.NewNode(path)
	for _, i := range gltfRootNodes(doc) {
		n, err := build(i)
		if err != nil {
			return nil, err
		}
		root.AddChild(n)
	}

	clips, err := p.extractClips(names)
	if err != nil {
		return nil, err
	}
	return scene.NewGraph(path, root, clips...), nil
}

// gltfRootNodes returns the root nodes of the default scene, or of the first scene when none is marked.
// Documents without scenes treat every parentless node as a root.
func gltfRootNodes(doc *gltfDocument) []int {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			idx = *doc.Scene
		}
		return doc.Scenes[idx].Nodes
	}
	child := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			if c >= 0 && c < len(child) {
				child[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// gltfNodeNames assigns every node its authored name, falling back to node_<index>.
func gltfNodeNames(doc *gltfDocument) []string {
	names := make([]string, len(doc.Nodes))
	for i, n := range doc.Nodes {
		names[i] = common.Coalesce(n.Name, fmt.Sprintf("node_%d", i))
	}
	return names
}

// gltfNodeTransform returns the local translation, Euler XYZ rotation and scale of a node.
// A matrix is decomposed assuming it carries no shear.
func gltfNodeTransform(n *gltfNode) (mgl32.Vec3, mgl32.Vec3, mgl32.Vec3) {
	pos, scale := mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}
	q := mgl32.QuatIdent()

	if n.Matrix != nil {
		m := mgl32.Mat4(*n.Matrix)
		pos = m.Col(3).Vec3()
		for i := 0; i < 3; i++ {
			scale[i] = m.Col(i).Vec3().Len()
		}
		var rot mgl32.Mat4
		for i := 0; i < 3; i++ {
			if scale[i] == 0 {
				return pos, mgl32.Vec3{}, scale
			}
			rot.SetCol(i, m.Col(i).Vec3().Mul(1/scale[i]).Vec4(0))
		}
		rot.SetCol(3, mgl32.Vec4{0, 0, 0, 1})
		return pos, common.EulerFromQuat(mgl32.Mat4ToQuat(rot)), scale
	}

	if n.Translation != nil {
		pos = mgl32.Vec3(*n.Translation)
	}
	if n.Rotation != nil {
		q = gltfQuat(*n.Rotation)
	}
	if n.Scale != nil {
		scale = mgl32.Vec3(*n.Scale)
	}
	return pos, common.EulerFromQuat(q), scale
}

// gltfQuat converts glTF (x, y, z, w) order into a quaternion.
func gltfQuat(v [4]float32) mgl32.Quat {
	return mgl32.Quat{W: v[3], V: mgl32.Vec3{v[0], v[1], v[2]}}
}
