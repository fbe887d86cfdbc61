package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Pose is the camera placement handed to the renderer each frame.
type Pose struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Target      mgl32.Vec3
}

type cameraImpl struct {
	mu *sync.Mutex

	up mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	position mgl32.Vec3
	target   mgl32.Vec3

	viewMatrix                  mgl32.Mat4
	projectionMatrix            mgl32.Mat4
	viewProjectionMatrix        mgl32.Mat4
	inverseViewProjectionMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for the perspective camera.
// The camera holds perspective settings and computes view/projection matrices
// from an attached CameraController each frame via Update().
type Camera interface {
	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: up vector
	Up() mgl32.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Position returns the eye position captured at the last Update.
	//
	// Returns:
	//   - mgl32.Vec3: world-space eye position
	Position() mgl32.Vec3

	// Orientation returns the camera's world rotation captured at the last Update.
	// The camera looks down its local -Z axis.
	//
	// Returns:
	//   - mgl32.Quat: world-from-camera rotation
	Orientation() mgl32.Quat

	// Pose returns position, orientation and look-at point as one snapshot.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose

	// ViewMatrix returns the current view matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix (column-major, clip depth [-1, 1]).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns Projection * View.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// InverseViewProjectionMatrix returns the inverse of Projection * View, used to unproject pointer positions.
	//
	// Returns:
	//   - mgl32.Mat4: the inverse view-projection matrix
	InverseViewProjectionMatrix() mgl32.Mat4

	// Ray builds a world-space picking ray through a pointer position.
	//
	// Parameters:
	//   - ndc: pointer position in [-1, 1] with +y up
	//
	// Returns:
	//   - common.Ray: ray from the eye through the pointer
	Ray(ndc mgl32.Vec2) common.Ray

	// Controller returns the attached CameraController, or nil.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// Update reads position/target from the controller and recomputes matrices.
	// Should be called once per tick after the controller has updated.
	// If no controller is attached, this method does nothing.
	Update()

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: up vector
	SetUp(up mgl32.Vec3)

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetController attaches a CameraController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings
// (45 degree vertical fov, near 0.1, far 80).
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                          &sync.Mutex{},
		up:                          common.WorldUp,
		fov:                         mgl32.DegToRad(45),
		aspect:                      1.0,
		near:                        0.1,
		far:                         80.0,
		viewMatrix:                  mgl32.Ident4(),
		projectionMatrix:            mgl32.Ident4(),
		viewProjectionMatrix:        mgl32.Ident4(),
		inverseViewProjectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.syncLens()
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Orientation() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation()
}

func (c *cameraImpl) Pose() Pose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Pose{
		Position:    c.position,
		Orientation: c.orientation(),
		Target:      c.target,
	}
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) InverseViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseViewProjectionMatrix
}

func (c *cameraImpl) Ray(ndc mgl32.Vec2) common.Ray {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.RayFromNDC(ndc, c.position, c.inverseViewProjectionMatrix)
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.syncLens()
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.syncLens()
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.syncLens()
	c.updateMatrices()
}

// syncLens pushes the field of view and aspect ratio to the controller.
// Caller must hold the mutex.
func (c *cameraImpl) syncLens() {
	if c.controller != nil {
		c.controller.SetLens(c.fov, c.aspect)
	}
}

// orientation derives the world rotation from the view matrix. Caller must hold the mutex.
func (c *cameraImpl) orientation() mgl32.Quat {
	return mgl32.Mat4ToQuat(c.viewMatrix.Inv()).Normalize()
}

// LookRotation returns the world rotation of a camera at eye looking at target.
// The camera looks down its local -Z axis. A degenerate pose yields the identity.
//
// Parameters:
//   - eye: camera position
//   - target: look-at point
//   - up: world up vector
//
// Returns:
//   - mgl32.Quat: world-from-camera rotation
func LookRotation(eye, target, up mgl32.Vec3) mgl32.Quat {
	if eye.Sub(target).Len() <= 1e-8 {
		return mgl32.QuatIdent()
	}
	return mgl32.Mat4ToQuat(mgl32.LookAtV(eye, target, up).Inv()).Normalize()
}

// updateMatrices recalculates the view, projection, view-projection, and inverse matrices.
// It reads position and target from the attached controller. A degenerate pose where
// position and target coincide keeps the previous view matrix.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.controller != nil {
		state := c.controller.State()
		c.position = state.Position
		c.target = state.LookAt
	}

	if c.position.Sub(c.target).Len() > 1e-8 {
		c.viewMatrix = mgl32.LookAtV(c.position, c.target, c.up)
	}
	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.inverseViewProjectionMatrix = c.viewProjectionMatrix.Inv()
}
