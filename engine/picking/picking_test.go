package picking

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rig struct {
	cam   camera.Camera
	hover material.Material
	baked material.Material
	glass material.Material
	lid   scene.Node
	body  scene.Node
	obj   InteractiveObject
}

func newRig() *rig {
	r := &rig{
		hover: NewHoverMaterial(),
		baked: material.NewMaterial(material.WithName("baked")),
		glass: material.NewMaterial(material.WithName("glass"), material.WithOpacity(0.16)),
	}
	unit := scene.NewBoxMesh(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5})
	r.body = scene.NewNode("front", scene.WithMesh(unit), scene.WithMaterial(r.baked))
	r.lid = scene.NewNode("LightbulbGlass", scene.WithMesh(unit), scene.WithMaterial(r.glass), scene.WithPosition(mgl32.Vec3{0, 1, 0}))
	root := scene.NewNode("box", scene.WithChildren(r.body, r.lid, scene.NewNode("InfoPoint")))
	r.obj = NewInteractiveObject("box", r.hover, root)

	ctrl := camera.NewCameraController(camera.WithPosition(mgl32.Vec3{0, 0, 5}))
	r.cam = camera.NewCamera(camera.WithController(ctrl))
	return r
}

func TestMaterialRoundTripIdentity(t *testing.T) {
	r := newRig()
	r.obj.ApplyHover()
	assert.True(t, r.body.Material() == r.hover)
	assert.True(t, r.lid.Material() == r.hover)

	r.obj.RestoreDefaults()
	assert.True(t, r.body.Material() == r.baked)
	assert.True(t, r.lid.Material() == r.glass)

	m, ok := r.obj.DefaultMaterial(r.lid)
	require.True(t, ok)
	assert.True(t, m == r.glass)
}

func TestIntersectNearest(t *testing.T) {
	r := newRig()
	ray := r.cam.Ray(mgl32.Vec2{})
	d, ok := r.obj.Intersect(ray)
	require.True(t, ok)
	assert.InDelta(t, 4.5, d, 1e-3)

	r.body.SetVisible(false)
	_, ok = r.obj.Intersect(ray)
	assert.False(t, ok, "lid sits above the center ray")
}

func TestGateHover(t *testing.T) {
	r := newRig()
	g := NewGate()
	g.Register(r.obj, nil)

	assert.False(t, g.OnPointerMove(mgl32.Vec2{}, r.cam), "disabled until enabled")

	g.Enable()
	assert.True(t, g.OnPointerMove(mgl32.Vec2{}, r.cam))
	assert.Equal(t, CursorPointer, g.Cursor())
	assert.True(t, r.body.Material() == r.hover)

	assert.False(t, g.OnPointerMove(mgl32.Vec2{0.9, -0.9}, r.cam))
	assert.Equal(t, CursorDefault, g.Cursor())
	assert.True(t, r.body.Material() == r.baked)
}

func TestGateActivatesOnce(t *testing.T) {
	r := newRig()
	g := NewGate()
	count := 0
	g.Register(r.obj, func() { count++ })
	g.Enable()

	g.OnPointerMove(mgl32.Vec2{}, r.cam)
	assert.True(t, g.OnPointerDown(mgl32.Vec2{}, r.cam))
	assert.False(t, g.OnPointerDown(mgl32.Vec2{}, r.cam))
	assert.Equal(t, 1, count)
	assert.False(t, g.Enabled())
	assert.Equal(t, CursorDefault, g.Cursor())
	assert.True(t, r.body.Material() == r.baked, "defaults restored on activation")

	g.Enable()
	assert.True(t, g.OnPointerDown(mgl32.Vec2{}, r.cam))
	assert.Equal(t, 2, count)
}

func TestGateMissDoesNotActivate(t *testing.T) {
	r := newRig()
	g := NewGate()
	called := false
	g.Register(r.obj, func() { called = true })
	g.Enable()

	assert.False(t, g.OnPointerDown(mgl32.Vec2{0.9, 0.9}, r.cam))
	assert.False(t, called)
	assert.True(t, g.Enabled())
}

func TestRegisterReplacesTarget(t *testing.T) {
	r := newRig()
	g := NewGate()
	g.Register(r.obj, nil)
	g.Enable()
	g.OnPointerMove(mgl32.Vec2{}, r.cam)

	other := NewInteractiveObject("device", r.hover, scene.NewNode("GameBoy"))
	g.Register(other, nil)

	assert.True(t, r.body.Material() == r.baked, "previous target restored")
	assert.False(t, g.Enabled())
	assert.Equal(t, other, g.Object())
}

func TestHoverMaterial(t *testing.T) {
	m := NewHoverMaterial()
	assert.Equal(t, material.KindBasic, m.Kind())
	assert.Equal(t, [4]float32{0, 1, 0, 0.5}, m.BaseColor())
	assert.True(t, m.Transparent())
	assert.False(t, m.DepthWrite())
}
