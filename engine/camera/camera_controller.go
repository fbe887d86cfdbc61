package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// State is the camera placement a controller exposes to the rest of the engine.
type State struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

// CameraController defines the constrained orbit control system.
// Controllers own positional state (position, target) and the live ControlProfile.
// Camera reads from the controller and computes view/projection matrices.
// Input methods only accumulate motion; Update applies it under the live profile's limits.
type CameraController interface {
	orbitCameraController
	planarCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the orbit target (look-at point).
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// SetPosition sets the camera's world-space position directly. Limits are applied on the next Update.
	//
	// Parameters:
	//   - p: world-space coordinates
	SetPosition(p mgl32.Vec3)

	// SetTarget sets the orbit target directly. Limits are applied on the next Update.
	//
	// Parameters:
	//   - t: world-space coordinates
	SetTarget(t mgl32.Vec3)

	// State returns the position and look-at point as one consistent snapshot.
	//
	// Returns:
	//   - State: the current camera state
	State() State

	// Profile returns the live control profile.
	//
	// Returns:
	//   - ControlProfile: the profile in effect
	Profile() ControlProfile

	// SetProfile atomically replaces every limit and input flag with those of p and
	// discards motion accumulated under the previous profile.
	//
	// Parameters:
	//   - p: the new profile
	SetProfile(p ControlProfile)

	// SetLens informs the controller of the camera's field of view and aspect ratio,
	// which scale pointer motion into world units.
	//
	// Parameters:
	//   - fovY: vertical field of view in radians
	//   - aspect: width / height
	SetLens(fovY, aspect float32)

	// Update applies pending motion and the profile limits, then re-derives the camera position.
	// When the profile has a target clamp box, the target is clamped and the camera is
	// translated by the same delta so the camera-to-target offset is preserved.
	// Call once per tick.
	//
	// Returns:
	//   - bool: true if the position or target changed
	Update() bool
}

// orbitCameraController defines rotation and dolly input around the target.
type orbitCameraController interface {
	// Rotate accumulates an orbit drag expressed in normalized device units.
	// A drag across the full viewport height turns the camera by one full turn.
	//
	// Parameters:
	//   - dx, dy: pointer delta in NDC (+x right, +y up)
	Rotate(dx, dy float32)

	// Dolly accumulates a zoom step. Positive delta moves away from the target.
	//
	// Parameters:
	//   - delta: scroll amount, typically +/-1 per wheel notch
	Dolly(delta float32)
}

// planarCameraController defines target translation input.
// Panning shifts both position and target, preserving the orbit relationship.
type planarCameraController interface {
	// Pan accumulates a screen-space pan expressed in normalized device units.
	//
	// Parameters:
	//   - dx, dy: pointer delta in NDC (+x right, +y up)
	Pan(dx, dy float32)
}
