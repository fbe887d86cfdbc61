package orchestrator

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/anchor"
	"github.com/Carmen-Shannon/oxy-showcase/engine/animator"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/picking"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/Carmen-Shannon/oxy-showcase/engine/tween"
	"github.com/go-gl/mathgl/mgl32"
)

// Stage is the set of collaborators the orchestrator coordinates.
// The orchestrator holds these references for its whole lifetime and owns none of them.
type Stage struct {
	Camera    camera.Camera
	Scheduler tween.Scheduler
	Projector anchor.Projector
	Hotspot   anchor.Hotspot
	Gate      picking.Gate

	Box          picking.InteractiveObject
	BoxPlayer    animator.Player
	BoxViewPoint mgl32.Vec3
	BoxInfoPoint mgl32.Vec3

	Device     picking.InteractiveObject
	DeviceNode scene.Node
	Screen     scene.Node
	// ScreenMaterial is the video material applied once the device faces the viewer.
	// It may be nil, in which case the final transition fails with a MissingAssetError.
	ScreenMaterial material.Material
}

// validate checks that every required collaborator is present.
func (s Stage) validate() error {
	missing := func(field string) error {
		return &common.ConfigError{Field: "stage." + field, Reason: "is required"}
	}
	switch {
	case s.Camera == nil:
		return missing("camera")
	case s.Camera.Controller() == nil:
		return &common.ConfigError{Field: "stage.camera", Reason: "has no controller attached"}
	case s.Scheduler == nil:
		return missing("scheduler")
	case s.Projector == nil:
		return missing("projector")
	case s.Hotspot == nil:
		return missing("hotspot")
	case s.Gate == nil:
		return missing("gate")
	case s.Box == nil:
		return missing("box")
	case s.BoxPlayer == nil:
		return missing("box_player")
	case s.Device == nil:
		return missing("device")
	case s.DeviceNode == nil:
		return missing("device_node")
	case s.Screen == nil:
		return missing("screen")
	}
	return nil
}
