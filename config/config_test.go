package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/orchestrator"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 60, cfg.Window.TickRate)
	assert.Equal(t, 5*time.Second, cfg.Window.ProfilerInterval)
	assert.Equal(t, "models/GameBox/GameBox.glb", cfg.Assets.Box.Scene)
	assert.Equal(t, "models/GameBoy/GlitchNoiseStatic.mp4", cfg.Assets.Device.Video)
	assert.Equal(t, float32(45), cfg.Camera.Fov)
	assert.Equal(t, float32(0.1), cfg.Camera.Near)
	assert.Equal(t, []float32{0, 0.7, -3}, cfg.Camera.Target)
	assert.Equal(t, 2*time.Second, cfg.Choreography.BoxApproach)
	assert.Equal(t, 300*time.Millisecond, cfg.Choreography.DeviceRehome)
	assert.Equal(t, float32(0.005), cfg.Choreography.DragSensitivity)
}

func TestLoad_WithFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `
logLevel: debug
window:
  width: 800
  height: 600
choreography:
  boxApproach: 1s
profiles:
  overview:
    polar: [1.0, 1.4]
    pan: false
`)
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, time.Second, cfg.Choreography.BoxApproach)
	assert.Equal(t, 1200*time.Millisecond, cfg.Choreography.DeviceApproach)
	require.Contains(t, cfg.ProfileOverrides, camera.ProfileOverview)
	assert.Equal(t, []float32{1.0, 1.4}, cfg.ProfileOverrides[camera.ProfileOverview].Polar)

	profiles, err := cfg.Profiles()
	require.NoError(t, err)
	overview := profiles[camera.ProfileOverview]
	assert.Equal(t, camera.Range{Min: 1.0, Max: 1.4}, overview.Polar())
	assert.False(t, overview.EnablePan())
	assert.True(t, overview.EnableRotate(), "unset fields keep the built-in value")
	_, clamped := overview.TargetClamp()
	assert.True(t, clamped)
	assert.Len(t, profiles, 4)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("SHOWCASE_WINDOW_WIDTH", "640")
	t.Setenv("SHOWCASE_LOGLEVEL", "warn")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, "window: [unclosed\n")
	_, err := Load(dir)
	var cfgErr *common.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, FileName, cfgErr.Field)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, "window:\n  width: -1\n")
	_, err := Load(dir)
	var cfgErr *common.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "window", cfgErr.Field)

	viper.Reset()
	dir = writeConfig(t, "camera:\n  target: [0, 1]\n")
	_, err = Load(dir)
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "camera.target", cfgErr.Field)
}

func TestProfiles_InvertedBound(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `
profiles:
  inspect-box:
    polar: [1.3, 0.6]
`)
	cfg, err := Load(dir)
	require.NoError(t, err)

	_, err = cfg.Profiles()
	var cfgErr *common.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "inspect-box.polar", cfgErr.Field)
}

func TestProfiles_UnknownName(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `
profiles:
  cinematic:
    zoom: true
`)
	cfg, err := Load(dir)
	require.NoError(t, err)

	_, err = cfg.Profiles()
	var cfgErr *common.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "profiles.cinematic", cfgErr.Field)
}

func TestBuildDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	choreo, err := cfg.Choreography.Build()
	require.NoError(t, err)
	want := orchestrator.DefaultChoreography()
	assert.Equal(t, want.BoxApproach, choreo.BoxApproach)
	assert.Equal(t, want.DeviceApproach, choreo.DeviceApproach)
	assert.Equal(t, want.DeviceRotate, choreo.DeviceRotate)
	assert.Equal(t, want.ViewOffset, choreo.ViewOffset)
	assert.Equal(t, want.DeviceDirection, choreo.DeviceDirection)
	assert.Equal(t, want.DeviceRotation, choreo.DeviceRotation)
	assert.Equal(t, want.DeviceDistance, choreo.DeviceDistance)
	assert.NotNil(t, choreo.Easing)

	cam, err := cfg.Camera.Build(16.0 / 9)
	require.NoError(t, err)
	assert.InDelta(t, mgl32.DegToRad(45), cam.Fov(), 1e-6)
	assert.Equal(t, float32(80), cam.Far())
	assert.Equal(t, mgl32.Vec3{0, 0.7, -3}, cam.Controller().Target())

	offset, err := cfg.Hotspot.OffsetVec()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{0.025, 0.015, 0}, offset)
	assert.Equal(t, "models/Attic/Attic.jpg", cfg.Assets.RoomPaths().Baked)
}
