package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// rayEpsilon guards the triangle test against near-parallel rays.
const rayEpsilon = 1e-7

// Ray is a half-line starting at Origin and extending along the unit Direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// RayFromNDC builds a picking ray through a normalized device coordinate.
// The origin is the camera eye; the direction passes through the unprojected
// point halfway into the depth range.
//
// Parameters:
//   - ndc: pointer position in [-1, 1] with +y up
//   - eye: camera position in world space
//   - invViewProj: inverse of Projection * View
//
// Returns:
//   - Ray: the world-space ray
func RayFromNDC(ndc mgl32.Vec2, eye mgl32.Vec3, invViewProj mgl32.Mat4) Ray {
	p := TransformPoint(invViewProj, mgl32.Vec3{ndc[0], ndc[1], 0.5})
	dir := p.Sub(eye)
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: eye, Direction: dir}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps the ray into another space. The direction is not re-normalized,
// so parameters returned by intersection tests stay comparable to the source space.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Origin:    TransformPoint(m, r.Origin),
		Direction: TransformDirection(m, r.Direction),
	}
}

// IntersectBox runs a slab test against b.
//
// Returns:
//   - float32: the entry parameter (0 when the origin is inside the box)
//   - bool: false when the ray misses or the box lies entirely behind the origin
func (r Ray) IntersectBox(b Box3) (float32, bool) {
	if b.Empty() {
		return 0, false
	}
	tMin := math32.Inf(-1)
	tMax := math32.Inf(1)
	for i := 0; i < 3; i++ {
		if r.Direction[i] == 0 {
			if r.Origin[i] < b.Min[i] || r.Origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Direction[i]
		t0 := (b.Min[i] - r.Origin[i]) * inv
		t1 := (b.Max[i] - r.Origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = math32.Max(tMin, t0)
		tMax = math32.Min(tMax, t1)
		if tMin > tMax {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return 0, true
	}
	return tMin, true
}

// IntersectTriangle runs the Moller-Trumbore test against triangle (a, b, c).
// Both faces are hit.
//
// Returns:
//   - float32: the hit parameter along the ray
//   - bool: false when the ray misses or the hit lies behind the origin
func (r Ray) IntersectTriangle(a, b, c mgl32.Vec3) (float32, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < rayEpsilon {
		return 0, false
	}
	inv := 1 / det
	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
