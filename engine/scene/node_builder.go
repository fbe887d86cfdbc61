package scene

import (
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/go-gl/mathgl/mgl32"
)

// NodeBuilderOption is a functional option for configuring a Node.
type NodeBuilderOption func(*nodeImpl)

// WithPosition sets the initial local translation.
//
// Parameters:
//   - p: translation relative to the parent
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithPosition(p mgl32.Vec3) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.position = p
	}
}

// WithRotation sets the initial local Euler XYZ rotation in radians.
//
// Parameters:
//   - r: rotation angles
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithRotation(r mgl32.Vec3) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.rotation = r
	}
}

// WithScale sets the initial local scale.
//
// Parameters:
//   - s: scale factors
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithScale(s mgl32.Vec3) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.scale = s
	}
}

// WithMesh attaches geometry to the node.
func WithMesh(m *Mesh) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.mesh = m
	}
}

// WithMaterial assigns the initial material.
func WithMaterial(m material.Material) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.material = m
	}
}

// WithChildren attaches child nodes at construction time.
//
// Parameters:
//   - children: the nodes to attach
//
// Returns:
//   - NodeBuilderOption: option function to apply
func WithChildren(children ...Node) NodeBuilderOption {
	return func(n *nodeImpl) {
		for _, c := range children {
			if c == nil {
				continue
			}
			n.children = append(n.children, c)
			c.setParent(n)
		}
	}
}
