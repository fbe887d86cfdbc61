package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/picking"
	"github.com/Carmen-Shannon/oxy-showcase/engine/telemetry"
	"github.com/Carmen-Shannon/oxy-showcase/engine/tween"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNoTransition is returned by Trigger when the current mode has no row for the trigger.
var ErrNoTransition = errors.New("no transition")

type orchestrator struct {
	mu *sync.Mutex

	logger   zerolog.Logger
	onError  func(error)
	recorder telemetry.Recorder
	profiles map[string]camera.ControlProfile
	choreo   Choreography

	stage         Stage
	controller    camera.CameraController
	orbitPosition tween.Target
	orbitTarget   tween.Target

	mode    ViewMode
	pending bool

	pointer      mgl32.Vec2
	pressed      bool
	button       Button
	dragging     bool
	hotspotHover bool
	resize       *[2]int

	// seconds since the scheduler epoch, summed in float64 and converted once per tick
	elapsed float64
}

// Orchestrator is the view mode state machine.
//
// It owns no rendering state: each transition reconfigures the camera controller,
// schedules tweens or clips on the stage's collaborators and enables the hit-test
// surface the next mode listens to. While a transition waits for its completion
// callback, every externally raised trigger is refused with a TransitionReentrancyError.
//
// Runtime failures never stop Tick; they are passed to the error handler.
type Orchestrator interface {
	// Tick advances the frame: tweens, then clips, then the orbit controller, then the
	// camera matrices, then the hotspot projection. A pending resize is applied first.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Tick(dt float32)

	// Trigger raises a trigger against the current mode.
	//
	// Parameters:
	//   - t: the trigger
	//
	// Returns:
	//   - error: ErrNoTransition (wrapped) if the mode does not accept t,
	//     *common.TransitionReentrancyError while a transition is pending,
	//     *common.MissingAssetError if the transition's assets are absent
	Trigger(t Trigger) error

	// Mode returns the active view mode.
	Mode() ViewMode

	// Pending reports whether a transition is waiting for a completion callback.
	Pending() bool

	// CameraPose returns the camera pose the renderer should draw with.
	CameraPose() camera.Pose

	// OnPointerMove handles pointer motion. Depending on the mode it drags the device,
	// orbits the camera while a button is held, and updates hover state.
	//
	// Parameters:
	//   - ndc: pointer position in [-1, 1], +y up
	OnPointerMove(ndc mgl32.Vec2)

	// OnPointerDown handles a button press: hotspot clicks, object activation and drag start.
	//
	// Parameters:
	//   - ndc: pointer position in [-1, 1], +y up
	//   - button: the pressed button
	OnPointerDown(ndc mgl32.Vec2, button Button)

	// OnPointerUp ends any drag.
	OnPointerUp()

	// OnScroll forwards a wheel step to the controller as a dolly.
	//
	// Parameters:
	//   - delta: scroll amount, positive away from the target
	OnScroll(delta float32)

	// OnResize records a new viewport size, applied to the camera and projector on the next Tick.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	OnResize(width, height int)

	// Cursor returns the cursor affordance the host should show.
	Cursor() string
}

var _ Orchestrator = &orchestrator{}

// New creates an orchestrator in Overview with the overview profile live, the hotspot
// enabled and the box registered, but not yet hit-testable.
//
// Parameters:
//   - stage: the collaborators to coordinate
//   - options: functional options to configure the orchestrator
//
// Returns:
//   - Orchestrator: the new orchestrator
//   - error: *common.ConfigError if the stage or profiles are incomplete
func New(stage Stage, options ...OrchestratorBuilderOption) (Orchestrator, error) {
	if err := stage.validate(); err != nil {
		return nil, err
	}

	o := &orchestrator{
		mu:     &sync.Mutex{},
		logger: zerolog.Nop(),
		choreo: DefaultChoreography(),
		stage:  stage,
		mode:   Overview,
	}
	o.elapsed = stage.Scheduler.Now().Seconds()
	for _, option := range options {
		option(o)
	}

	if o.profiles == nil {
		profiles, err := camera.DefaultProfiles()
		if err != nil {
			return nil, err
		}
		o.profiles = profiles
	}
	for _, name := range []string{camera.ProfileOverview, camera.ProfileLocked, camera.ProfileInspectBox, camera.ProfileDisabled} {
		if _, ok := o.profiles[name]; !ok {
			return nil, &common.ConfigError{Field: "profiles." + name, Reason: "is required"}
		}
	}
	if o.choreo.Easing == nil {
		o.choreo.Easing = tween.QuadraticInOut
	}

	if o.recorder == nil {
		recorder, err := telemetry.NewRecorder()
		if err != nil {
			return nil, err
		}
		o.recorder = recorder
	}
	if err := o.recorder.ObserveMode(func() (int64, string) {
		m := o.Mode()
		return int64(m), m.String()
	}); err != nil {
		return nil, err
	}

	o.controller = stage.Camera.Controller()
	o.orbitPosition = tween.NewVec3Target(o.controller.Position, o.controller.SetPosition)
	o.orbitTarget = tween.NewVec3Target(o.controller.Target, o.controller.SetTarget)

	o.controller.SetProfile(o.profiles[camera.ProfileOverview])
	stage.Hotspot.Enable()
	stage.Gate.Register(stage.Box, o.activator(TriggerBoxActivated))
	stage.BoxPlayer.OnFinished(o.clipFinished)

	return o, nil
}

func (o *orchestrator) Tick(dt float32) {
	o.mu.Lock()
	resize := o.resize
	o.resize = nil
	if dt > 0 {
		o.elapsed += float64(dt)
	}
	now := secondsToDuration(o.elapsed)
	o.mu.Unlock()

	if resize != nil {
		o.stage.Projector.SetViewport(resize[0], resize[1])
		if resize[0] > 0 && resize[1] > 0 {
			o.stage.Camera.SetAspect(float32(resize[0]) / float32(resize[1]))
		}
	}
	if dt < 0 {
		dt = 0
	}

	o.stage.Scheduler.Tick(now)
	o.stage.BoxPlayer.Update(dt)
	o.controller.Update()
	o.stage.Camera.Update()
	o.stage.Hotspot.Update(o.stage.Camera)
}

func (o *orchestrator) Trigger(t Trigger) error {
	return o.advance(t, false)
}

func (o *orchestrator) Mode() ViewMode {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mode
}

func (o *orchestrator) Pending() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending
}

func (o *orchestrator) CameraPose() camera.Pose {
	return o.stage.Camera.Pose()
}

func (o *orchestrator) OnPointerMove(ndc mgl32.Vec2) {
	o.mu.Lock()
	mode := o.mode
	prev := o.pointer
	o.pointer = ndc
	pressed, button, dragging := o.pressed, o.button, o.dragging
	o.mu.Unlock()

	if dragging {
		o.dragDevice(prev, ndc)
		return
	}
	if pressed {
		delta := ndc.Sub(prev)
		switch button {
		case ButtonPrimary:
			o.controller.Rotate(delta[0], delta[1])
		case ButtonSecondary:
			o.controller.Pan(delta[0], delta[1])
		}
	}

	hover := mode == Overview && o.stage.Hotspot.Hit(ndc)
	o.mu.Lock()
	o.hotspotHover = hover
	o.mu.Unlock()

	o.stage.Gate.OnPointerMove(ndc, o.stage.Camera)
}

func (o *orchestrator) OnPointerDown(ndc mgl32.Vec2, button Button) {
	o.mu.Lock()
	mode := o.mode
	o.pointer = ndc
	o.pressed = true
	o.button = button
	o.dragging = mode == DeviceInteractive && button == ButtonPrimary
	o.mu.Unlock()

	if button != ButtonPrimary || mode == DeviceInteractive {
		return
	}

	activated := false
	if mode == Overview && o.stage.Hotspot.Hit(ndc) {
		activated = true
		_ = o.Trigger(TriggerHotspotClicked)
	} else if o.stage.Gate.OnPointerDown(ndc, o.stage.Camera) {
		activated = true
	}

	if activated {
		o.mu.Lock()
		o.pressed = false
		o.hotspotHover = false
		o.mu.Unlock()
	}
}

func (o *orchestrator) OnPointerUp() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pressed = false
	o.dragging = false
}

func (o *orchestrator) OnScroll(delta float32) {
	o.controller.Dolly(delta)
}

func (o *orchestrator) OnResize(width, height int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resize = &[2]int{width, height}
}

func (o *orchestrator) Cursor() string {
	o.mu.Lock()
	mode, dragging, hover := o.mode, o.dragging, o.hotspotHover
	o.mu.Unlock()

	switch {
	case mode == DeviceInteractive && dragging:
		return picking.CursorGrab
	case hover:
		return picking.CursorPointer
	default:
		return o.stage.Gate.Cursor()
	}
}

// --- transitions ---

// advance runs the table row for t. Completion triggers come from callbacks the
// orchestrator registered itself and are the only ones accepted while pending.
func (o *orchestrator) advance(t Trigger, completion bool) error {
	o.mu.Lock()
	from := o.mode
	if o.pending && !completion {
		o.mu.Unlock()
		return o.report(from, t, &common.TransitionReentrancyError{Mode: from.String(), Trigger: t.String()})
	}
	tr, ok := transitions[transitionKey{mode: from, trigger: t}]
	if !ok {
		o.mu.Unlock()
		o.logger.Debug().Str("mode", from.String()).Str("trigger", t.String()).Msg("trigger ignored")
		return fmt.Errorf("%w: %s in %s", ErrNoTransition, t, from)
	}
	o.pending = true
	o.mu.Unlock()

	if err := o.perform(tr); err != nil {
		o.mu.Lock()
		o.pending = false
		o.mu.Unlock()
		if tr.restore != nil {
			tr.restore(o)
		}
		return o.report(from, t, err)
	}

	o.mu.Lock()
	o.mode = tr.to
	o.pending = tr.awaits
	o.mu.Unlock()

	id := uuid.NewString()
	o.logger.Debug().
		Str("from", from.String()).
		Str("to", tr.to.String()).
		Str("trigger", t.String()).
		Str("transition_id", id).
		Bool("pending", tr.awaits).
		Msg("view mode transition")
	o.recorder.Transition(context.Background(), from.String(), tr.to.String(), t.String(), id)
	return nil
}

func (o *orchestrator) perform(tr transition) error {
	if tr.check != nil {
		if err := tr.check(o); err != nil {
			return err
		}
	}
	return tr.run(o)
}

// complete raises a completion trigger. Failures are already reported.
func (o *orchestrator) complete(t Trigger) {
	_ = o.advance(t, true)
}

// report logs and forwards a transition failure and returns it.
func (o *orchestrator) report(mode ViewMode, t Trigger, err error) error {
	var reentrancy *common.TransitionReentrancyError
	event := o.logger.Error()
	if errors.As(err, &reentrancy) {
		event = o.logger.Warn()
	}
	event.Err(err).Str("mode", mode.String()).Str("trigger", t.String()).Msg("transition failed")

	o.recorder.TransitionError(context.Background(), mode.String(), t.String(), err)
	if o.onError != nil {
		o.onError(err)
	}
	return err
}

func (o *orchestrator) activator(t Trigger) func() {
	return func() {
		obj := o.stage.Box
		if t == TriggerDeviceActivated {
			obj = o.stage.Device
		}
		o.recorder.Activation(context.Background(), obj.Name())
		_ = o.Trigger(t)
	}
}

func (o *orchestrator) clipFinished(clip string) {
	if clip != ClipOpening || o.Mode() != BoxOpening {
		return
	}
	o.complete(TriggerOpeningFinished)
}

// inspectionPose returns the camera position and orbit target used to look at the box.
func (o *orchestrator) inspectionPose() (eye, target mgl32.Vec3) {
	return o.stage.BoxViewPoint.Add(o.choreo.ViewOffset), o.stage.BoxInfoPoint
}

// dragDevice turns the device by the pixel distance between two pointer positions:
// horizontal motion drives rotation-y, vertical motion (+y down) drives rotation-x.
func (o *orchestrator) dragDevice(from, to mgl32.Vec2) {
	w, h := o.stage.Projector.Viewport()
	d := common.NDCToPixel(to, w, h).Sub(common.NDCToPixel(from, w, h))
	s := o.choreo.DragSensitivity

	dev := o.stage.DeviceNode
	rot := dev.Rotation()
	rot[1] += d[0] * s
	rot[0] += d[1] * s
	dev.SetRotation(rot)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
