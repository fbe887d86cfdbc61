package config

import (
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/model"
	"github.com/Carmen-Shannon/oxy-showcase/engine/orchestrator"
	"github.com/go-gl/mathgl/mgl32"
)

// Build creates the camera and its orbit controller at the configured start pose.
//
// Parameters:
//   - aspect: initial width / height of the viewport
//
// Returns:
//   - camera.Camera: the camera with its controller attached
//   - error: *common.ConfigError if the pose vectors are malformed
func (cc CameraConfig) Build(aspect float32) (camera.Camera, error) {
	pos, err := vec3("camera.position", cc.Position)
	if err != nil {
		return nil, err
	}
	target, err := vec3("camera.target", cc.Target)
	if err != nil {
		return nil, err
	}
	ctrl := camera.NewCameraController(camera.WithPosition(pos), camera.WithTarget(target))
	return camera.NewCamera(
		camera.WithFov(mgl32.DegToRad(cc.Fov)),
		camera.WithClipPlanes(cc.Near, cc.Far),
		camera.WithAspect(aspect),
		camera.WithController(ctrl),
	), nil
}

// Build converts the configured timings into the orchestrator's choreography.
func (cc ChoreographyConfig) Build() (orchestrator.Choreography, error) {
	c := orchestrator.DefaultChoreography()
	var err error
	if c.ViewOffset, err = vec3("choreography.viewOffset", cc.ViewOffset); err != nil {
		return c, err
	}
	if c.DeviceDirection, err = vec3("choreography.deviceDirection", cc.DeviceDirection); err != nil {
		return c, err
	}
	if c.DeviceRotation, err = vec3("choreography.deviceRotation", cc.DeviceRotation); err != nil {
		return c, err
	}
	c.BoxApproach = cc.BoxApproach
	c.DeviceRehome = cc.DeviceRehome
	c.DeviceApproach = cc.DeviceApproach
	c.DeviceRotate = cc.DeviceRotate
	c.DeviceDistance = cc.DeviceDistance
	c.DragSensitivity = cc.DragSensitivity
	return c, nil
}

// OffsetVec returns the hotspot offset from the box InfoPoint.
func (hc HotspotConfig) OffsetVec() (mgl32.Vec3, error) {
	return vec3("hotspot.offset", hc.Offset)
}

// RoomPaths returns the room asset paths, relative to Root.
func (ac AssetsConfig) RoomPaths() model.RoomPaths {
	return model.RoomPaths{Scene: ac.Room.Scene, Baked: ac.Room.Baked}
}

// BoxPaths returns the box asset paths.
func (ac AssetsConfig) BoxPaths() model.BoxPaths {
	return model.BoxPaths{Scene: ac.Box.Scene, Baked: ac.Box.Baked, Content: ac.Box.Content}
}

// DevicePaths returns the device asset paths.
func (ac AssetsConfig) DevicePaths() model.DevicePaths {
	return model.DevicePaths{Scene: ac.Device.Scene, Baked: ac.Device.Baked, Video: ac.Device.Video}
}
