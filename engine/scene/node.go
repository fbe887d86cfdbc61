package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/go-gl/mathgl/mgl32"
)

type nodeImpl struct {
	mu *sync.Mutex

	name     string
	parent   Node
	children []Node

	position mgl32.Vec3
	rotation mgl32.Vec3 // Euler XYZ, radians
	scale    mgl32.Vec3

	visible  bool
	mesh     *Mesh
	material material.Material
}

// Node is a named element of the scene hierarchy.
// Position, rotation and scale are expressed relative to the parent node; world
// transforms are derived on demand by walking the parent chain.
type Node interface {
	// Name returns the node's authored name.
	//
	// Returns:
	//   - string: the node name
	Name() string

	// Parent returns the parent node, or nil for a root.
	//
	// Returns:
	//   - Node: the parent or nil
	Parent() Node

	// Children returns a copy of the direct children.
	//
	// Returns:
	//   - []Node: the children in insertion order
	Children() []Node

	// AddChild attaches child beneath this node, detaching it from any previous parent.
	//
	// Parameters:
	//   - child: the node to attach
	AddChild(child Node)

	// RemoveChild detaches child if it is a direct child of this node.
	//
	// Parameters:
	//   - child: the node to detach
	RemoveChild(child Node)

	// Position returns the local translation.
	//
	// Returns:
	//   - mgl32.Vec3: translation relative to the parent
	Position() mgl32.Vec3

	// Rotation returns the local Euler XYZ rotation in radians.
	//
	// Returns:
	//   - mgl32.Vec3: rotation angles
	Rotation() mgl32.Vec3

	// Scale returns the local scale.
	//
	// Returns:
	//   - mgl32.Vec3: scale factors
	Scale() mgl32.Vec3

	// SetPosition sets the local translation.
	//
	// Parameters:
	//   - p: translation relative to the parent
	SetPosition(p mgl32.Vec3)

	// SetRotation sets the local Euler XYZ rotation in radians.
	//
	// Parameters:
	//   - r: rotation angles
	SetRotation(r mgl32.Vec3)

	// SetScale sets the local scale.
	//
	// Parameters:
	//   - s: scale factors
	SetScale(s mgl32.Vec3)

	// LocalMatrix returns T * R * S for this node.
	//
	// Returns:
	//   - mgl32.Mat4: the local transform
	LocalMatrix() mgl32.Mat4

	// WorldMatrix returns the product of all ancestor local matrices and this node's.
	//
	// Returns:
	//   - mgl32.Mat4: the world transform
	WorldMatrix() mgl32.Mat4

	// WorldPosition returns the node origin in world space.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	WorldPosition() mgl32.Vec3

	// Visible reports whether the node is drawn.
	Visible() bool

	// SetVisible toggles drawing of the node.
	SetVisible(visible bool)

	// Mesh returns the node's geometry, or nil for groups and marker nodes.
	//
	// Returns:
	//   - *Mesh: the geometry or nil
	Mesh() *Mesh

	// Material returns the material currently assigned to the node's mesh.
	//
	// Returns:
	//   - material.Material: the material, or nil
	Material() material.Material

	// SetMaterial assigns a material to the node's mesh.
	//
	// Parameters:
	//   - m: the material to assign
	SetMaterial(m material.Material)

	// Traverse visits this node and every descendant depth-first, parents before children.
	//
	// Parameters:
	//   - fn: the visitor
	Traverse(fn func(Node))

	// FindByName returns the first node in the subtree with the given name, or nil.
	//
	// Parameters:
	//   - name: the node name to search for
	//
	// Returns:
	//   - Node: the matching node or nil
	FindByName(name string) Node

	// setParent is used by AddChild to keep parent links consistent.
	setParent(parent Node)
}

var _ Node = &nodeImpl{}

// NewNode creates a scene node with an identity transform.
//
// Parameters:
//   - name: the node name
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the new node
func NewNode(name string, options ...NodeBuilderOption) Node {
	n := &nodeImpl{
		mu:      &sync.Mutex{},
		name:    name,
		scale:   mgl32.Vec3{1, 1, 1},
		visible: true,
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

func (n *nodeImpl) Name() string {
	return n.name
}

func (n *nodeImpl) Parent() Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.parent
}

func (n *nodeImpl) Children() []Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *nodeImpl) AddChild(child Node) {
	if child == nil {
		return
	}
	if prev := child.Parent(); prev != nil {
		prev.RemoveChild(child)
	}
	n.mu.Lock()
	n.children = append(n.children, child)
	n.mu.Unlock()
	child.setParent(n)
}

func (n *nodeImpl) RemoveChild(child Node) {
	n.mu.Lock()
	removed := false
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			removed = true
			break
		}
	}
	n.mu.Unlock()
	if removed {
		child.setParent(nil)
	}
}

func (n *nodeImpl) setParent(parent Node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.parent = parent
}

func (n *nodeImpl) Position() mgl32.Vec3 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.position
}

func (n *nodeImpl) Rotation() mgl32.Vec3 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rotation
}

func (n *nodeImpl) Scale() mgl32.Vec3 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.scale
}

func (n *nodeImpl) SetPosition(p mgl32.Vec3) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.position = p
}

func (n *nodeImpl) SetRotation(r mgl32.Vec3) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rotation = r
}

func (n *nodeImpl) SetScale(s mgl32.Vec3) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.scale = s
}

func (n *nodeImpl) LocalMatrix() mgl32.Mat4 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return common.BuildModelMatrix(n.position, n.rotation, n.scale)
}

func (n *nodeImpl) WorldMatrix() mgl32.Mat4 {
	local := n.LocalMatrix()
	parent := n.Parent()
	if parent == nil {
		return local
	}
	return parent.WorldMatrix().Mul4(local)
}

func (n *nodeImpl) WorldPosition() mgl32.Vec3 {
	return n.WorldMatrix().Col(3).Vec3()
}

func (n *nodeImpl) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

func (n *nodeImpl) SetVisible(visible bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visible = visible
}

func (n *nodeImpl) Mesh() *Mesh {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.mesh
}

func (n *nodeImpl) Material() material.Material {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.material
}

func (n *nodeImpl) SetMaterial(m material.Material) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.material = m
}

func (n *nodeImpl) Traverse(fn func(Node)) {
	fn(n)
	for _, c := range n.Children() {
		c.Traverse(fn)
	}
}

func (n *nodeImpl) FindByName(name string) Node {
	if n.name == name {
		return n
	}
	for _, c := range n.Children() {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}
