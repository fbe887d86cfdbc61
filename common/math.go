package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the +Y up axis shared by the camera, controller and scene graph.
var WorldUp = mgl32.Vec3{0, 1, 0}

// EulerXYZ builds a rotation matrix from Euler angles applied in X, Y, Z order.
// The resulting matrix is Rx * Ry * Rz, which matches the intrinsic XYZ convention
// used by the authored scene files.
//
// Parameters:
//   - rot: rotation angles in radians around each axis
//
// Returns:
//   - mgl32.Mat4: the rotation matrix (column-major)
func EulerXYZ(rot mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(rot[0]).
		Mul4(mgl32.HomogRotate3DY(rot[1])).
		Mul4(mgl32.HomogRotate3DZ(rot[2]))
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is X * Y * Z. All matrices are column-major.
//
// Parameters:
//   - pos: translation in parent space
//   - rot: rotation angles in radians around each axis
//   - scale: scale factors along each axis
//
// Returns:
//   - mgl32.Mat4: T * R * S
func BuildModelMatrix(pos, rot, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(EulerXYZ(rot)).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// TransformPoint applies a 4x4 matrix to a point, including the perspective divide.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v[3])
}

// TransformDirection applies the rotational/scaling part of a 4x4 matrix to a direction.
func TransformDirection(m mgl32.Mat4, d mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

// LerpVec3 linearly interpolates between a and b by t.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// NDCToPixel converts normalized device coordinates into top-left origin pixel coordinates.
//
// Parameters:
//   - ndc: x, y in [-1, 1] with +y up
//   - width, height: viewport size in pixels
//
// Returns:
//   - mgl32.Vec2: pixel position with +y down
func NDCToPixel(ndc mgl32.Vec2, width, height int) mgl32.Vec2 {
	return mgl32.Vec2{
		(ndc[0] + 1) * 0.5 * float32(width),
		(1 - ndc[1]) * 0.5 * float32(height),
	}
}

// PixelToNDC converts top-left origin pixel coordinates into normalized device coordinates.
// A zero-sized viewport maps everything to the origin.
//
// Parameters:
//   - x, y: pixel coordinates with +y down
//   - width, height: viewport size in pixels
//
// Returns:
//   - mgl32.Vec2: x, y in [-1, 1] with +y up
func PixelToNDC(x, y float64, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		float32(x/float64(width))*2 - 1,
		-float32(y/float64(height))*2 + 1,
	}
}

// WrapAngle maps an angle into (-pi, pi].
func WrapAngle(a float32) float32 {
	a = math32.Mod(a+math32.Pi, 2*math32.Pi)
	if a <= 0 {
		a += 2 * math32.Pi
	}
	return a - math32.Pi
}

// EulerFromQuat converts a rotation into Euler XYZ angles compatible with EulerXYZ.
// Near gimbal lock (|pitch| at pi/2) the Z angle is folded into X.
//
// Parameters:
//   - q: a unit quaternion
//
// Returns:
//   - mgl32.Vec3: rotation angles in radians
func EulerFromQuat(q mgl32.Quat) mgl32.Vec3 {
	m := q.Normalize().Mat4()
	m13 := mgl32.Clamp(m.At(0, 2), -1, 1)
	y := math32.Asin(m13)
	if math32.Abs(m13) < 0.9999999 {
		return mgl32.Vec3{
			math32.Atan2(-m.At(1, 2), m.At(2, 2)),
			y,
			math32.Atan2(-m.At(0, 1), m.At(0, 0)),
		}
	}
	return mgl32.Vec3{math32.Atan2(m.At(2, 1), m.At(1, 1)), y, 0}
}
