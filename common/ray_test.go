package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayFromNDCCenter(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 5}
	vp := testViewProj(eye, mgl32.Vec3{})
	r := RayFromNDC(mgl32.Vec2{0, 0}, eye, vp.Inv())

	assert.Equal(t, eye, r.Origin)
	assert.InDelta(t, 0, r.Direction[0], 1e-4)
	assert.InDelta(t, 0, r.Direction[1], 1e-4)
	assert.InDelta(t, -1, r.Direction[2], 1e-4)
}

func TestRayIntersectBox(t *testing.T) {
	b := Box3{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}

	d, ok := Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, -1}}.IntersectBox(b)
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-5)

	_, ok = Ray{Origin: mgl32.Vec3{0, 3, 5}, Direction: mgl32.Vec3{0, 0, -1}}.IntersectBox(b)
	assert.False(t, ok, "passes above")

	_, ok = Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, 1}}.IntersectBox(b)
	assert.False(t, ok, "box behind origin")

	d, ok = Ray{Origin: mgl32.Vec3{}, Direction: mgl32.Vec3{1, 0, 0}}.IntersectBox(b)
	require.True(t, ok)
	assert.Zero(t, d, "origin inside")
}

func TestRayIntersectTriangle(t *testing.T) {
	a, b, c := mgl32.Vec3{-1, -1, 0}, mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 1, 0}

	d, ok := Ray{Origin: mgl32.Vec3{0, 0, 2}, Direction: mgl32.Vec3{0, 0, -1}}.IntersectTriangle(a, b, c)
	require.True(t, ok)
	assert.InDelta(t, 2, d, 1e-5)

	d, ok = Ray{Origin: mgl32.Vec3{0, 0, -2}, Direction: mgl32.Vec3{0, 0, 1}}.IntersectTriangle(a, b, c)
	require.True(t, ok, "back face")
	assert.InDelta(t, 2, d, 1e-5)

	_, ok = Ray{Origin: mgl32.Vec3{2, 2, 2}, Direction: mgl32.Vec3{0, 0, -1}}.IntersectTriangle(a, b, c)
	assert.False(t, ok)

	_, ok = Ray{Origin: mgl32.Vec3{0, 0, 2}, Direction: mgl32.Vec3{1, 0, 0}}.IntersectTriangle(a, b, c)
	assert.False(t, ok, "parallel")
}
