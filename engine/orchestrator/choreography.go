package orchestrator

import (
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/engine/tween"
	"github.com/go-gl/mathgl/mgl32"
)

// Choreography holds the timings and offsets of the scripted camera and device moves.
type Choreography struct {
	// BoxApproach is the duration of the fly-in from the overview to the box.
	BoxApproach time.Duration
	// ViewOffset is added to the box ViewPoint to get the inspection camera position.
	ViewOffset mgl32.Vec3

	// DeviceRehome returns the camera to the inspection pose before the device moves.
	DeviceRehome time.Duration
	// DeviceApproach is the duration of the device move in front of the camera.
	DeviceApproach time.Duration
	// DeviceDirection is the camera-local direction the device is placed along.
	DeviceDirection mgl32.Vec3
	// DeviceDistance is how far from the camera the device ends up.
	DeviceDistance float32
	// DeviceRotate is the duration of the device turn towards the viewer.
	DeviceRotate time.Duration
	// DeviceRotation is the final Euler XYZ rotation of the device, in radians.
	DeviceRotation mgl32.Vec3

	// DragSensitivity converts dragged pixels into radians of device rotation.
	DragSensitivity float32

	// Easing shapes every scripted tween.
	Easing tween.EasingFunc
}

// DefaultChoreography returns the showcase timings.
func DefaultChoreography() Choreography {
	return Choreography{
		BoxApproach:     2000 * time.Millisecond,
		ViewOffset:      mgl32.Vec3{-0.2, 0.3, 0},
		DeviceRehome:    300 * time.Millisecond,
		DeviceApproach:  1200 * time.Millisecond,
		DeviceDirection: mgl32.Vec3{-0.72, -0.47, -6},
		DeviceDistance:  0.72,
		DeviceRotate:    1500 * time.Millisecond,
		DeviceRotation:  mgl32.Vec3{-1.9116387600233435, -2.38, -1.53},
		DragSensitivity: 0.005,
		Easing:          tween.QuadraticInOut,
	}
}
