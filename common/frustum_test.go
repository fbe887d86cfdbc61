package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func testViewProj(eye, center mgl32.Vec3) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 80)
	view := mgl32.LookAtV(eye, center, WorldUp)
	return proj.Mul4(view)
}

func TestFrustumContainsPoint(t *testing.T) {
	eye := mgl32.Vec3{1, 2, 3}
	f := ExtractFrustumFromMatrix(testViewProj(eye, mgl32.Vec3{1, 2, 0}))

	assert.True(t, f.ContainsPoint(mgl32.Vec3{1, 2, 2}), "one unit forward")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{1, 2, 4}), "one unit backward")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{1, 2, 2.95}), "closer than near plane")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{1, 2, -100}), "beyond far plane")
	assert.False(t, f.ContainsPoint(mgl32.Vec3{50, 2, 2}), "far to the right")
}

func TestFrustumSetFromMatrixReuse(t *testing.T) {
	var f Frustum
	f.SetFromMatrix(testViewProj(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}))
	assert.True(t, f.ContainsPoint(mgl32.Vec3{0, 0, -5}))

	f.SetFromMatrix(testViewProj(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}))
	assert.False(t, f.ContainsPoint(mgl32.Vec3{0, 0, -5}))
	assert.True(t, f.ContainsPoint(mgl32.Vec3{0, 0, 5}))
}

func TestFrustumPlanesNormalized(t *testing.T) {
	f := ExtractFrustumFromMatrix(testViewProj(mgl32.Vec3{0, 1, 5}, mgl32.Vec3{}))
	for i, p := range f.Planes {
		assert.InDelta(t, 1.0, p.Normal.Len(), 1e-4, "plane %d", i)
	}
}
