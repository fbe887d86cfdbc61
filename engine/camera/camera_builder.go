package camera

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption configures a camera at construction. Matrices are computed
// once after every option has been applied.
type CameraBuilderOption func(*cameraImpl)

// WithUp overrides the world up vector (defaults to +Y).
func WithUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = up
	}
}

// WithFov sets the vertical field of view in radians.
// The controller receives it too so pointer motion scales with the lens.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = common.Positive(fov, c.fov)
	}
}

// WithAspect sets the aspect ratio (width / height) directly.
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = common.Positive(aspect, c.aspect)
	}
}

// WithViewport derives the aspect ratio from a viewport size in pixels.
// A degenerate viewport keeps the current aspect.
//
// Parameters:
//   - width, height: viewport size in pixels
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithViewport(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		if width > 0 && height > 0 {
			c.aspect = float32(width) / float32(height)
		}
	}
}

// WithClipPlanes sets the near and far clipping distances.
// Planes that are not positive or not ordered near < far are ignored.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if near > 0 && far > near {
			c.near, c.far = near, far
		}
	}
}

// WithController attaches the controller the camera reads its pose from.
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
