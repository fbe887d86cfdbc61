package tween

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Target is a numeric-valued property a tween can drive.
// Values must return a fresh slice; SetValues receives one value per component.
type Target interface {
	Values() []float32
	SetValues(v []float32)
}

type vec3Target struct {
	get func() mgl32.Vec3
	set func(mgl32.Vec3)
}

// NewVec3Target adapts a getter/setter pair, such as a node's Position/SetPosition, into a Target.
//
// Parameters:
//   - get: reads the current value
//   - set: writes a new value
//
// Returns:
//   - Target: the adapted target
func NewVec3Target(get func() mgl32.Vec3, set func(mgl32.Vec3)) Target {
	return &vec3Target{get: get, set: set}
}

func (t *vec3Target) Values() []float32 {
	v := t.get()
	return []float32{v[0], v[1], v[2]}
}

func (t *vec3Target) SetValues(v []float32) {
	cur := t.get()
	for i := 0; i < 3 && i < len(v); i++ {
		cur[i] = v[i]
	}
	t.set(cur)
}

// FloatTarget is a Target backed by a plain float slice. Useful for driving values
// that are read back by a callback rather than written into another object.
type FloatTarget []float32

func (t FloatTarget) Values() []float32 {
	out := make([]float32, len(t))
	copy(out, t)
	return out
}

func (t FloatTarget) SetValues(v []float32) {
	copy(t, v)
}
