package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBox3 returns an inverted box that any Expand call will overwrite.
func EmptyBox3() Box3 {
	inf := math32.Inf(1)
	return Box3{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// Empty reports whether the box encloses no volume (any Min component exceeds Max).
func (b Box3) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Contains reports whether p lies inside or on the boundary of the box.
func (b Box3) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Clamp returns p with every component clamped into [Min, Max].
func (b Box3) Clamp(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		mgl32.Clamp(p[0], b.Min[0], b.Max[0]),
		mgl32.Clamp(p[1], b.Min[1], b.Max[1]),
		mgl32.Clamp(p[2], b.Min[2], b.Max[2]),
	}
}

// ExpandByPoint grows the box to include p.
func (b Box3) ExpandByPoint(p mgl32.Vec3) Box3 {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
	return b
}

// Union returns the smallest box enclosing both b and o.
func (b Box3) Union(o Box3) Box3 {
	if o.Empty() {
		return b
	}
	return b.ExpandByPoint(o.Min).ExpandByPoint(o.Max)
}

// Center returns the midpoint of the box.
func (b Box3) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Transform returns the axis-aligned box enclosing the eight transformed corners of b.
//
// Parameters:
//   - m: the transform to apply (column-major)
//
// Returns:
//   - Box3: the enclosing box in the transformed space
func (b Box3) Transform(m mgl32.Mat4) Box3 {
	if b.Empty() {
		return b
	}
	out := EmptyBox3()
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		out = out.ExpandByPoint(TransformPoint(m, corner))
	}
	return out
}
