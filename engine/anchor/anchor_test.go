package anchor

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera(eye, target mgl32.Vec3, aspect float32) camera.Camera {
	ctrl := camera.NewCameraController(camera.WithPosition(eye), camera.WithTarget(target))
	return camera.NewCamera(camera.WithController(ctrl), camera.WithAspect(aspect))
}

func TestProjectForwardAndBackward(t *testing.T) {
	eye := mgl32.Vec3{0, 1, 4}
	cam := newTestCamera(eye, mgl32.Vec3{0, 1, 0}, 800.0/600.0)
	p := NewProjector(800, 600)

	front := p.Project(eye.Add(mgl32.Vec3{0, 0, -1}), cam)
	assert.True(t, front.Visible)
	assert.InDelta(t, 0, front.X, 1e-3)
	assert.InDelta(t, 0, front.Y, 1e-3)

	behind := p.Project(eye.Add(mgl32.Vec3{0, 0, 1}), cam)
	assert.False(t, behind.Visible)

	assert.False(t, p.Project(eye, cam).Visible, "point at the eye")
}

func TestProjectScreenConvention(t *testing.T) {
	cam := newTestCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 1)
	p := NewProjector(400, 400)

	above := p.Project(mgl32.Vec3{0, 1, 0}, cam)
	require.True(t, above.Visible)
	assert.Less(t, above.Y, float32(0), "points above center have negative screen y")

	right := p.Project(mgl32.Vec3{1, 0, 0}, cam)
	assert.Greater(t, right.X, float32(0))
}

func TestProjectReflectsViewportChange(t *testing.T) {
	cam := newTestCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 1)
	p := NewProjector(400, 400)

	a := p.Project(mgl32.Vec3{1, 0, 0}, cam)
	p.SetViewport(800, 400)
	b := p.Project(mgl32.Vec3{1, 0, 0}, cam)

	assert.InDelta(t, a.X*2, b.X, 1e-3)
	w, h := p.Viewport()
	assert.Equal(t, 800, w)
	assert.Equal(t, 400, h)
}

func TestHotspotTracksAndHides(t *testing.T) {
	cam := newTestCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 1)
	marker := NewMarker()
	h := NewHotspot(mgl32.Vec3{}, NewProjector(400, 400), WithElement(marker), WithOffset(mgl32.Vec3{0.025, 0.015, 0}))

	h.Update(cam)
	require.True(t, h.Visible())
	assert.True(t, marker.Shown())
	x, y := marker.Position()
	assert.Greater(t, x, float32(0))
	assert.Less(t, y, float32(0))
	assert.Equal(t, mgl32.Vec3{0.025, 0.015, 0}, h.Anchor())

	h.Disable()
	assert.False(t, marker.Shown())
	h.Update(cam)
	assert.False(t, marker.Shown(), "disabled hotspots do not track")
	assert.False(t, h.Hit(mgl32.Vec2{}))
}

func TestHotspotHit(t *testing.T) {
	cam := newTestCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 1)
	h := NewHotspot(mgl32.Vec3{}, NewProjector(400, 400), WithHitRadius(10))
	h.Update(cam)

	assert.True(t, h.Hit(mgl32.Vec2{0, 0}))
	assert.True(t, h.Hit(mgl32.Vec2{0.04, 0}), "8px away")
	assert.False(t, h.Hit(mgl32.Vec2{0.1, 0}), "20px away")
}

func TestMarkerRemove(t *testing.T) {
	m := NewMarker()
	m.Remove()
	m.SetVisible(true)
	assert.False(t, m.Shown())
	assert.True(t, m.Removed())
}
