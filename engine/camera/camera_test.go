package camera

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewControlProfileRejectsInvertedRange(t *testing.T) {
	_, err := NewControlProfile("inspect", WithPolarRange(1.3, 0.6))
	require.Error(t, err)

	var cfgErr *common.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "inspect.polar", cfgErr.Field)

	_, err = NewControlProfile("far", WithDistanceRange(-1, 2))
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "far.distance", cfgErr.Field)

	_, err = NewControlProfile("rail", WithTargetClamp(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-1, 0, 0}))
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "rail.target_clamp", cfgErr.Field)
}

func TestDefaultProfiles(t *testing.T) {
	profiles, err := DefaultProfiles()
	require.NoError(t, err)
	require.Len(t, profiles, 4)

	overview := profiles[ProfileOverview]
	box, ok := overview.TargetClamp()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{-1, 0.7, -3}, box.Min)
	assert.False(t, overview.EnableZoom())
	assert.True(t, overview.EnableDamping())

	assert.False(t, profiles[ProfileDisabled].Enabled())
	assert.False(t, profiles[ProfileLocked].EnableRotate())
	assert.True(t, profiles[ProfileInspectBox].EnableRotate())
	assert.False(t, profiles[ProfileInspectBox].EnablePan())
}

func TestSetProfileReplacesAllLimits(t *testing.T) {
	profiles, err := DefaultProfiles()
	require.NoError(t, err)
	free, err := NewControlProfile("free")
	require.NoError(t, err)

	cc := NewCameraController(WithProfile(profiles[ProfileOverview]))
	cc.SetProfile(free)

	p := cc.Profile()
	_, clamped := p.TargetClamp()
	assert.False(t, clamped)
	assert.True(t, p.EnableZoom())
	assert.False(t, p.EnableDamping())
	assert.False(t, p.Azimuth().Bounded())
	assert.Equal(t, "free", p.Name())
}

func TestSetProfileDropsPendingMotion(t *testing.T) {
	free, err := NewControlProfile("free")
	require.NoError(t, err)

	cc := NewCameraController(WithPosition(mgl32.Vec3{0, 0, 1}), WithProfile(free))
	cc.Rotate(0.3, 0)
	cc.SetProfile(free)

	assert.False(t, cc.Update())
	assert.True(t, cc.Position().Sub(mgl32.Vec3{0, 0, 1}).Len() < 1e-5)
}

func TestTargetClampPreservesOffset(t *testing.T) {
	rail, err := NewControlProfile("rail",
		WithTargetClamp(mgl32.Vec3{-1, 0.7, -3}, mgl32.Vec3{1, 0.7, -3}),
	)
	require.NoError(t, err)

	cc := NewCameraController(
		WithTarget(mgl32.Vec3{5, 0.7, -3}),
		WithPosition(mgl32.Vec3{5, 0.7, -2}),
		WithProfile(rail),
	)
	assert.True(t, cc.Update())

	target := cc.Target()
	assert.True(t, target.Sub(mgl32.Vec3{1, 0.7, -3}).Len() < 1e-5, "target %v", target)
	offset := cc.Position().Sub(target)
	assert.True(t, offset.Sub(mgl32.Vec3{0, 0, 1}).Len() < 1e-5, "offset %v", offset)
}

func TestDistanceClamp(t *testing.T) {
	p, err := NewControlProfile("near", WithDistanceRange(1, 2))
	require.NoError(t, err)

	cc := NewCameraController(WithPosition(mgl32.Vec3{0, 0, 5}), WithProfile(p))
	cc.Update()
	assert.InDelta(t, 2, cc.Position().Len(), 1e-5)

	cc.Dolly(-100)
	cc.Update()
	assert.InDelta(t, 1, cc.Position().Len(), 1e-5)
}

func TestDisabledProfileIgnoresInput(t *testing.T) {
	profiles, err := DefaultProfiles()
	require.NoError(t, err)

	start := mgl32.Vec3{0, 1, 4}
	cc := NewCameraController(WithPosition(start), WithProfile(profiles[ProfileDisabled]))
	cc.Rotate(0.5, 0.5)
	cc.Pan(0.2, 0.2)
	cc.Dolly(3)

	assert.False(t, cc.Update())
	assert.Equal(t, start, cc.Position())
	assert.Equal(t, mgl32.Vec3{}, cc.Target())
}

func TestAzimuthClamp(t *testing.T) {
	p, err := NewControlProfile("inspect", WithAzimuthRange(-3*math32.Pi/4, -math32.Pi/2))
	require.NoError(t, err)

	cc := NewCameraController(WithPosition(mgl32.Vec3{0, 0, 1}), WithProfile(p))
	cc.Update()
	assert.True(t, cc.Position().Sub(mgl32.Vec3{-1, 0, 0}).Len() < 1e-5, "position %v", cc.Position())
}

func TestAzimuthRangeAcrossBack(t *testing.T) {
	p, err := NewControlProfile("back", WithAzimuthRange(math32.Pi/1.2, 2*math32.Pi-math32.Pi/1.2))
	require.NoError(t, err)

	// theta = -3.0 is the same direction as 3.28, inside the range once unwrapped
	start := mgl32.Vec3{math32.Sin(-3), 0, math32.Cos(-3)}
	cc := NewCameraController(WithPosition(start), WithProfile(p))
	cc.Update()
	assert.True(t, cc.Position().Sub(start).Len() < 1e-5, "position %v", cc.Position())
}

func TestDampedRotateAppliesFraction(t *testing.T) {
	p, err := NewControlProfile("damped", WithDamping(true))
	require.NoError(t, err)

	cc := NewCameraController(WithPosition(mgl32.Vec3{0, 0, 1}), WithProfile(p), WithLens(mgl32.DegToRad(45), 1))
	cc.Rotate(0.1, 0)
	assert.True(t, cc.Update())

	want := -math32.Sin(math32.Pi * 0.1 * 0.05)
	assert.InDelta(t, want, cc.Position()[0], 1e-5)
}

func TestLockedProfileFollowsExternalPose(t *testing.T) {
	profiles, err := DefaultProfiles()
	require.NoError(t, err)

	cc := NewCameraController(WithProfile(profiles[ProfileLocked]))
	cc.SetTarget(mgl32.Vec3{1, 1, 1})
	cc.SetPosition(mgl32.Vec3{1, 1, 3})
	cc.Rotate(1, 1)
	cc.Update()

	assert.True(t, cc.Position().Sub(mgl32.Vec3{1, 1, 3}).Len() < 1e-5)
	assert.True(t, cc.Target().Sub(mgl32.Vec3{1, 1, 1}).Len() < 1e-5)
}

func TestCameraPoseAndRay(t *testing.T) {
	cc := NewCameraController(WithPosition(mgl32.Vec3{0, 0, 5}))
	cam := NewCamera(WithController(cc), WithAspect(16.0/9.0))

	pose := cam.Pose()
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, pose.Position)
	assert.Equal(t, mgl32.Vec3{}, pose.Target)

	forward := pose.Orientation.Rotate(mgl32.Vec3{0, 0, -1})
	assert.True(t, forward.Sub(mgl32.Vec3{0, 0, -1}).Len() < 1e-5, "forward %v", forward)

	ray := cam.Ray(mgl32.Vec2{0, 0})
	assert.True(t, ray.Direction.Sub(mgl32.Vec3{0, 0, -1}).Len() < 1e-4, "dir %v", ray.Direction)

	frustum := common.ExtractFrustumFromMatrix(cam.ViewProjectionMatrix())
	assert.True(t, frustum.ContainsPoint(mgl32.Vec3{}))
	assert.False(t, frustum.ContainsPoint(mgl32.Vec3{0, 0, 10}))
}

func TestCameraFollowsController(t *testing.T) {
	cc := NewCameraController(WithPosition(mgl32.Vec3{0, 0, 5}))
	cam := NewCamera(WithController(cc))

	cc.SetPosition(mgl32.Vec3{3, 0, 0})
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, cam.Position())

	cam.Update()
	assert.Equal(t, mgl32.Vec3{3, 0, 0}, cam.Position())
}

func TestLookRotationForward(t *testing.T) {
	eye := mgl32.Vec3{1, 2, 3}
	q := LookRotation(eye, mgl32.Vec3{1, 2, -7}, mgl32.Vec3{0, 1, 0})
	forward := q.Rotate(mgl32.Vec3{0, 0, -1})
	assert.Less(t, forward.Sub(mgl32.Vec3{0, 0, -1}).Len(), float32(1e-5))

	q = LookRotation(eye, mgl32.Vec3{11, 2, 3}, mgl32.Vec3{0, 1, 0})
	forward = q.Rotate(mgl32.Vec3{0, 0, -1})
	assert.Less(t, forward.Sub(mgl32.Vec3{1, 0, 0}).Len(), float32(1e-5))

	assert.Equal(t, mgl32.QuatIdent(), LookRotation(eye, eye, mgl32.Vec3{0, 1, 0}))
}

func TestCameraLensOptions(t *testing.T) {
	cam := NewCamera(WithViewport(1280, 720), WithClipPlanes(0.5, 40), WithFov(-1))
	assert.InDelta(t, 1280.0/720.0, cam.Aspect(), 1e-6)
	assert.Equal(t, float32(0.5), cam.Near())
	assert.Equal(t, float32(40), cam.Far())
	assert.InDelta(t, mgl32.DegToRad(45), cam.Fov(), 1e-6, "non-positive fov keeps the default")

	cam = NewCamera(WithViewport(0, 720), WithClipPlanes(5, 1))
	assert.Equal(t, float32(1), cam.Aspect())
	assert.Equal(t, float32(0.1), cam.Near())
	assert.Equal(t, float32(80), cam.Far())
}
