package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// DistanceToPoint returns the signed distance from the plane to p.
// Positive values lie on the side the normal points to.
func (p Plane) DistanceToPoint(v mgl32.Vec3) float32 {
	return p.Normal.Dot(v) + p.Distance
}

// Frustum represents the six planes of a camera view volume.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumFromMatrix extracts frustum planes from a view-projection matrix.
// The matrix should be the combined Projection * View matrix with OpenGL clip depth [-1, 1].
// Uses the Gribb/Hartmann method for plane extraction.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the view-projection matrix (column-major)
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProj mgl32.Mat4) Frustum {
	var f Frustum
	f.SetFromMatrix(viewProj)
	return f
}

// SetFromMatrix overwrites the planes in place from a view-projection matrix.
// Lets a caller keep one Frustum value alive across frames.
//
// Parameters:
//   - m: the view-projection matrix (column-major)
func (f *Frustum) SetFromMatrix(m mgl32.Mat4) {
	row := func(i int) mgl32.Vec4 { return m.Row(i) }
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	f.Planes[FrustumLeft] = planeFromVec4(r3.Add(r0))
	f.Planes[FrustumRight] = planeFromVec4(r3.Sub(r0))
	f.Planes[FrustumBottom] = planeFromVec4(r3.Add(r1))
	f.Planes[FrustumTop] = planeFromVec4(r3.Sub(r1))
	f.Planes[FrustumNear] = planeFromVec4(r3.Add(r2))
	f.Planes[FrustumFar] = planeFromVec4(r3.Sub(r2))
}

// ContainsPoint reports whether p lies inside or on every plane of the frustum.
func (f *Frustum) ContainsPoint(p mgl32.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// planeFromVec4 builds a plane from (a, b, c, d) and normalizes it so the normal has unit length.
func planeFromVec4(v mgl32.Vec4) Plane {
	p := Plane{Normal: v.Vec3(), Distance: v[3]}
	length := p.Normal.Len()
	if length > 0 {
		invLen := 1.0 / length
		p.Normal = p.Normal.Mul(invLen)
		p.Distance *= invLen
	}
	return p
}
