package orchestrator

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/Carmen-Shannon/oxy-showcase/engine/tween"
	"github.com/go-gl/mathgl/mgl32"
)

// Clip names played on the box.
const (
	ClipOpening = "Opening"
	ClipOpened  = "Opened"
)

// transition is one row of the mode table.
//
// check runs before anything is touched and must not have side effects; run performs
// the recipe including the on-enter work of the destination. If either fails the mode
// stays at from and restore, when set, puts the trigger surface back. awaits marks
// transitions that leave a completion callback pending.
type transition struct {
	from    ViewMode
	trigger Trigger
	to      ViewMode
	check   func(o *orchestrator) error
	run     func(o *orchestrator) error
	restore func(o *orchestrator)
	awaits  bool
}

type transitionKey struct {
	mode    ViewMode
	trigger Trigger
}

var transitionTable = []transition{
	{
		from:    Overview,
		trigger: TriggerHotspotClicked,
		to:      ApproachingBox,
		run:     approachBox,
		awaits:  true,
	},
	{
		from:    ApproachingBox,
		trigger: TriggerBoxApproached,
		to:      InspectingBox,
		run:     inspectBox,
	},
	{
		from:    InspectingBox,
		trigger: TriggerBoxActivated,
		to:      BoxOpening,
		check:   requireClip(ClipOpening),
		run:     openBox,
		restore: reenableGate,
		awaits:  true,
	},
	{
		from:    BoxOpening,
		trigger: TriggerOpeningFinished,
		to:      BoxOpened,
		check:   requireClip(ClipOpened),
		run:     boxOpened,
	},
	{
		from:    BoxOpened,
		trigger: TriggerDeviceActivated,
		to:      ApproachingDevice,
		run:     approachDevice,
		restore: reenableGate,
		awaits:  true,
	},
	{
		from:    ApproachingDevice,
		trigger: TriggerDeviceApproached,
		to:      DeviceRotating,
		run:     rotateDevice,
		awaits:  true,
	},
	{
		from:    DeviceRotating,
		trigger: TriggerDeviceRotated,
		to:      DeviceInteractive,
		check:   requireScreenMaterial,
		run:     enableDeviceDrag,
	},
}

// transitions indexes transitionTable by (mode, trigger). Filled in init: the recipes
// reach the lookup through advance.
var transitions map[transitionKey]transition

func init() {
	transitions = make(map[transitionKey]transition, len(transitionTable))
	for _, tr := range transitionTable {
		transitions[transitionKey{mode: tr.from, trigger: tr.trigger}] = tr
	}
}

// --- checks ---

func requireClip(name string) func(o *orchestrator) error {
	return func(o *orchestrator) error {
		if !o.stage.BoxPlayer.HasClip(name) {
			return &common.MissingAssetError{Kind: common.AssetKindClip, Name: name}
		}
		return nil
	}
}

func requireScreenMaterial(o *orchestrator) error {
	if o.stage.ScreenMaterial == nil {
		return &common.MissingAssetError{Kind: common.AssetKindMaterial, Name: o.stage.Screen.Name()}
	}
	return nil
}

func reenableGate(o *orchestrator) {
	o.stage.Gate.Enable()
}

// --- recipes ---

// approachBox flies the camera to the box viewpoint with position and orbit target
// tweened together. The transition completes with the position tween.
func approachBox(o *orchestrator) error {
	o.stage.Hotspot.Disable()
	o.controller.SetProfile(o.profiles[camera.ProfileLocked])

	eye, target := o.inspectionPose()
	o.stage.Scheduler.Schedule(tween.NewVec3Tween(o.orbitTarget, target, o.choreo.BoxApproach,
		tween.WithEasing(o.choreo.Easing),
	))
	o.stage.Scheduler.Schedule(tween.NewVec3Tween(o.orbitPosition, eye, o.choreo.BoxApproach,
		tween.WithEasing(o.choreo.Easing),
		tween.WithOnComplete(func() { o.complete(TriggerBoxApproached) }),
	))
	return nil
}

func inspectBox(o *orchestrator) error {
	o.controller.SetProfile(o.profiles[camera.ProfileInspectBox])
	o.stage.Gate.Enable()
	return nil
}

func openBox(o *orchestrator) error {
	if err := o.stage.BoxPlayer.Play(ClipOpening); err != nil {
		return err
	}
	o.stage.Gate.Disable()
	return nil
}

func boxOpened(o *orchestrator) error {
	if err := o.stage.BoxPlayer.Play(ClipOpened); err != nil {
		return err
	}
	o.stage.Gate.Register(o.stage.Device, o.activator(TriggerDeviceActivated))
	o.stage.Gate.Enable()
	return nil
}

// approachDevice switches the controls off and re-homes the camera to the inspection
// pose so the camera-relative device goal does not depend on where the user orbited to.
func approachDevice(o *orchestrator) error {
	o.stage.Gate.Disable()
	o.controller.SetProfile(o.profiles[camera.ProfileDisabled])

	eye, target := o.inspectionPose()
	o.stage.Scheduler.Schedule(tween.NewVec3Tween(o.orbitTarget, target, o.choreo.DeviceRehome,
		tween.WithEasing(o.choreo.Easing),
	))
	o.stage.Scheduler.Schedule(tween.NewVec3Tween(o.orbitPosition, eye, o.choreo.DeviceRehome,
		tween.WithEasing(o.choreo.Easing),
		tween.WithOnComplete(func() { o.moveDevice(eye, target) }),
	))
	return nil
}

// moveDevice tweens the device to a point in front of a camera at eye looking at target.
func (o *orchestrator) moveDevice(eye, target mgl32.Vec3) {
	goal := o.deviceGoal(eye, target)
	dev := o.stage.DeviceNode
	o.stage.Scheduler.Schedule(tween.NewVec3Tween(tween.NewVec3Target(dev.Position, dev.SetPosition), goal, o.choreo.DeviceApproach,
		tween.WithEasing(o.choreo.Easing),
		tween.WithOnComplete(func() { o.complete(TriggerDeviceApproached) }),
	))
}

// deviceGoal returns the device position, in its parent's space, for a camera at eye looking at target.
func (o *orchestrator) deviceGoal(eye, target mgl32.Vec3) mgl32.Vec3 {
	rot := camera.LookRotation(eye, target, o.stage.Camera.Up())
	dir := rot.Rotate(o.choreo.DeviceDirection).Normalize()
	world := eye.Add(dir.Mul(o.choreo.DeviceDistance))
	return toParentSpace(o.stage.DeviceNode, world)
}

func rotateDevice(o *orchestrator) error {
	dev := o.stage.DeviceNode
	o.stage.Scheduler.Schedule(tween.NewVec3Tween(tween.NewVec3Target(dev.Rotation, dev.SetRotation), o.choreo.DeviceRotation, o.choreo.DeviceRotate,
		tween.WithEasing(o.choreo.Easing),
		tween.WithOnComplete(func() { o.complete(TriggerDeviceRotated) }),
	))
	return nil
}

func enableDeviceDrag(o *orchestrator) error {
	mat := o.stage.ScreenMaterial
	if video := mat.Video(); video != nil {
		if err := video.Play(); err != nil {
			return fmt.Errorf("start screen video: %w", err)
		}
	}
	o.stage.Screen.SetMaterial(mat)
	return nil
}

// toParentSpace converts a world point into the local space of n's parent.
func toParentSpace(n scene.Node, world mgl32.Vec3) mgl32.Vec3 {
	parent := n.Parent()
	if parent == nil {
		return world
	}
	return common.TransformPoint(parent.WorldMatrix().Inv(), world)
}
