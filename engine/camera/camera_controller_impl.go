package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// polarEpsilon keeps the camera off the poles where the look-at basis degenerates.
	polarEpsilon = 1e-6
	// dollyBase is the per-notch distance scale.
	dollyBase = 0.95
	// motionEpsilon is the smallest pending motion still worth applying.
	motionEpsilon = 1e-6
)

// cameraControllerImpl is the single implementation of CameraController.
// Position and target are the source of truth; spherical coordinates are re-derived
// from their offset on every Update, so externally set positions are honored.
type cameraControllerImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	target   mgl32.Vec3

	profile ControlProfile

	// Pending motion, consumed by Update
	deltaTheta float32
	deltaPhi   float32
	panOffset  mgl32.Vec3
	scale      float32

	fovY   float32
	aspect float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new constrained orbit controller.
// Without WithProfile the controller starts with an unconstrained free-orbit profile.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	free, _ := NewControlProfile("free")
	cc := &cameraControllerImpl{
		mu:       &sync.Mutex{},
		position: mgl32.Vec3{0, 0, 1},
		profile:  free,
		scale:    1,
		fovY:     mgl32.DegToRad(45),
		aspect:   1,
	}

	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) SetPosition(p mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = p
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) SetTarget(t mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = t
}

func (cc *cameraControllerImpl) State() State {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return State{Position: cc.position, LookAt: cc.target}
}

func (cc *cameraControllerImpl) Profile() ControlProfile {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.profile
}

func (cc *cameraControllerImpl) SetProfile(p ControlProfile) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.profile = p
	cc.resetMotion()
}

func (cc *cameraControllerImpl) SetLens(fovY, aspect float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if fovY > 0 {
		cc.fovY = fovY
	}
	if aspect > 0 {
		cc.aspect = aspect
	}
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) Rotate(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.profile.enabled || !cc.profile.enableRotate {
		return
	}
	speed := cc.profile.rotateSpeed
	// NDC x spans aspect * 2 viewport-height units; a full-height drag is one turn.
	cc.deltaTheta -= math32.Pi * dx * cc.aspect * speed
	cc.deltaPhi += math32.Pi * dy * speed
}

func (cc *cameraControllerImpl) Dolly(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.profile.enabled || !cc.profile.enableZoom || delta == 0 {
		return
	}
	step := math32.Pow(dollyBase, cc.profile.zoomSpeed*math32.Abs(delta))
	if delta > 0 {
		cc.scale /= step
	} else {
		cc.scale *= step
	}
}

// --- planarCameraController implementation ---

func (cc *cameraControllerImpl) Pan(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if !cc.profile.enabled || !cc.profile.enablePan {
		return
	}
	right, up := cc.screenAxes()
	// world units covered by half the viewport height at the target distance
	halfHeight := cc.position.Sub(cc.target).Len() * math32.Tan(cc.fovY/2)
	speed := cc.profile.panSpeed

	cc.panOffset = cc.panOffset.
		Add(right.Mul(-dx * cc.aspect * halfHeight * speed)).
		Add(up.Mul(-dy * halfHeight * speed))
}

// --- Update ---

func (cc *cameraControllerImpl) Update() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	p := cc.profile
	if !p.enabled {
		cc.resetMotion()
		return false
	}

	before, beforeTarget := cc.position, cc.target
	offset := cc.position.Sub(cc.target)

	radius := offset.Len()
	theta, phi := float32(0), math32.Pi/2
	if radius > 0 {
		theta = math32.Atan2(offset[0], offset[2])
		phi = math32.Acos(mgl32.Clamp(offset[1]/radius, -1, 1))
	}

	if p.enableDamping {
		theta += cc.deltaTheta * p.dampingFactor
		phi += cc.deltaPhi * p.dampingFactor
	} else {
		theta += cc.deltaTheta
		phi += cc.deltaPhi
	}

	theta = clampAzimuth(theta, p.azimuth)
	phi = p.polar.Clamp(phi)
	phi = mgl32.Clamp(phi, polarEpsilon, math32.Pi-polarEpsilon)

	radius = p.distance.Clamp(radius * cc.scale)

	target := cc.target
	if p.enableDamping {
		target = target.Add(cc.panOffset.Mul(p.dampingFactor))
	} else {
		target = target.Add(cc.panOffset)
	}

	sinPhi, cosPhi := math32.Sincos(phi)
	sinTheta, cosTheta := math32.Sincos(theta)
	offset = mgl32.Vec3{radius * sinPhi * sinTheta, radius * cosPhi, radius * sinPhi * cosTheta}
	position := target.Add(offset)

	if box, ok := p.TargetClamp(); ok {
		clamped := box.Clamp(target)
		shift := target.Sub(clamped)
		target = clamped
		position = position.Sub(shift)
	}

	cc.position = position
	cc.target = target

	if p.enableDamping {
		keep := 1 - p.dampingFactor
		cc.deltaTheta *= keep
		cc.deltaPhi *= keep
		cc.panOffset = cc.panOffset.Mul(keep)
		if math32.Abs(cc.deltaTheta) < motionEpsilon {
			cc.deltaTheta = 0
		}
		if math32.Abs(cc.deltaPhi) < motionEpsilon {
			cc.deltaPhi = 0
		}
		if cc.panOffset.Len() < motionEpsilon {
			cc.panOffset = mgl32.Vec3{}
		}
	} else {
		cc.deltaTheta, cc.deltaPhi = 0, 0
		cc.panOffset = mgl32.Vec3{}
	}
	cc.scale = 1

	return before.Sub(cc.position).Len() > motionEpsilon ||
		beforeTarget.Sub(cc.target).Len() > motionEpsilon
}

// --- internal helpers ---

// resetMotion drops all pending input. Caller must hold the mutex.
func (cc *cameraControllerImpl) resetMotion() {
	cc.deltaTheta, cc.deltaPhi = 0, 0
	cc.panOffset = mgl32.Vec3{}
	cc.scale = 1
}

// screenAxes computes the camera's right and up vectors consistent with the LookAt matrix.
// Returns zero vectors when position and target coincide or the view is vertical.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) screenAxes() (right, up mgl32.Vec3) {
	back := cc.position.Sub(cc.target)
	if back.Len() < 1e-8 {
		return
	}
	back = back.Normalize()
	right = common.WorldUp.Cross(back)
	if right.Len() < 1e-8 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}
	right = right.Normalize()
	up = back.Cross(right)
	return
}

// clampAzimuth wraps theta to the turn centered on the range midpoint and clamps it.
// Ranges may extend past +/-pi to express an interval across the back of the orbit.
func clampAzimuth(theta float32, r Range) float32 {
	if !r.Bounded() {
		return theta
	}
	center := (r.Min + r.Max) / 2
	theta = center + common.WrapAngle(theta-center)
	return r.Clamp(theta)
}
