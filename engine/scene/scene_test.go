package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeHierarchy(t *testing.T) {
	leaf := NewNode("leaf", WithPosition(mgl32.Vec3{0, 1, 0}))
	mid := NewNode("mid", WithPosition(mgl32.Vec3{2, 0, 0}), WithChildren(leaf))
	root := NewNode("root", WithChildren(mid))

	assert.Equal(t, mid, leaf.Parent())
	assert.Equal(t, root, root.FindByName("root"))
	assert.Equal(t, leaf, root.FindByName("leaf"))
	assert.Nil(t, root.FindByName("missing"))
	assert.True(t, leaf.WorldPosition().Sub(mgl32.Vec3{2, 1, 0}).Len() < 1e-5)

	var names []string
	root.Traverse(func(n Node) { names = append(names, n.Name()) })
	assert.Equal(t, []string{"root", "mid", "leaf"}, names)
}

func TestNodeReparent(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	a.AddChild(c)
	b.AddChild(c)

	assert.Empty(t, a.Children())
	assert.Equal(t, []Node{c}, b.Children())
	assert.Equal(t, b, c.Parent())
}

func TestWorldMatrixRotatedParent(t *testing.T) {
	child := NewNode("child", WithPosition(mgl32.Vec3{0, 0, 1}))
	NewNode("parent", WithRotation(mgl32.Vec3{0, math32.Pi / 2, 0}), WithChildren(child))

	assert.True(t, child.WorldPosition().Sub(mgl32.Vec3{1, 0, 0}).Len() < 1e-5)
}

func TestMaterialIdentity(t *testing.T) {
	m := material.NewMaterial(material.WithName("baked"))
	n := NewNode("mesh", WithMaterial(m))
	hover := material.NewMaterial()

	captured := n.Material()
	n.SetMaterial(hover)
	n.SetMaterial(captured)
	assert.True(t, n.Material() == m)
}

func TestTrackSample(t *testing.T) {
	tr := Track{
		Node:     "lid",
		Property: PropertyRotation,
		Times:    []float32{0, 1, 2},
		Values:   []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 2, 0}},
	}

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, tr.Sample(-1))
	assert.True(t, tr.Sample(0.5).Sub(mgl32.Vec3{0.5, 0, 0}).Len() < 1e-5)
	assert.True(t, tr.Sample(1.5).Sub(mgl32.Vec3{1, 1, 0}).Len() < 1e-5)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, tr.Sample(9))

	n := NewNode("lid")
	tr.Apply(n, 2)
	assert.Equal(t, mgl32.Vec3{1, 2, 0}, n.Rotation())
}

func TestNewClipDuration(t *testing.T) {
	c := NewClip("Opening",
		Track{Node: "a", Times: []float32{0, 0.5}, Values: make([]mgl32.Vec3, 2)},
		Track{Node: "b", Times: []float32{0, 1.25}, Values: make([]mgl32.Vec3, 2)},
	)
	assert.Equal(t, float32(1.25), c.Duration)

	g := NewGraph("box.glb", NewNode("root"), c)
	assert.Equal(t, c, g.Clip("Opening"))
	assert.Nil(t, g.Clip("Opened"))
}

func TestIntersectNode(t *testing.T) {
	n := NewNode("box",
		WithPosition(mgl32.Vec3{0, 0, -5}),
		WithScale(mgl32.Vec3{2, 2, 2}),
		WithMesh(NewBoxMesh(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5})),
	)
	ray := common.Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{0, 0, -1}}

	d, ok := IntersectNode(n, ray)
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-4)

	_, ok = IntersectNode(n, common.Ray{Origin: mgl32.Vec3{3, 0, 0}, Direction: mgl32.Vec3{0, 0, -1}})
	assert.False(t, ok)

	_, ok = IntersectNode(NewNode("group"), ray)
	assert.False(t, ok)
}

func TestTriangleMeshIntersect(t *testing.T) {
	m := NewTriangleMesh([][3]mgl32.Vec3{{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}}})
	assert.Equal(t, mgl32.Vec3{-1, -1, 0}, m.Bounds.Min)

	p, ok := m.Intersect(common.Ray{Origin: mgl32.Vec3{0, 0, 3}, Direction: mgl32.Vec3{0, 0, -1}})
	require.True(t, ok)
	assert.True(t, p.Sub(mgl32.Vec3{}).Len() < 1e-5)

	_, ok = m.Intersect(common.Ray{Origin: mgl32.Vec3{0.9, 0.9, 3}, Direction: mgl32.Vec3{0, 0, -1}})
	assert.False(t, ok, "inside bounds, outside triangle")
}
