package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial camera position.
//
// Parameters:
//   - p: world-space camera position
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(p mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = p
	}
}

// WithTarget sets the initial orbit target.
//
// Parameters:
//   - t: world-space look-at point
//
// Returns:
//   - CameraControllerOption: functional option to set the target position
func WithTarget(t mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = t
	}
}

// WithProfile sets the initial control profile.
//
// Parameters:
//   - p: a profile obtained from NewControlProfile
//
// Returns:
//   - CameraControllerOption: functional option to set the profile
func WithProfile(p ControlProfile) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.profile = p
	}
}

// WithLens sets the field of view and aspect ratio used to scale pointer motion.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: width / height
//
// Returns:
//   - CameraControllerOption: functional option to set the lens
func WithLens(fovY, aspect float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.fovY = fovY
		cc.aspect = aspect
	}
}
