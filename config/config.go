// Package config loads the showcase settings from defaults, an optional showcase.yaml and SHOWCASE_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/spf13/viper"
)

// FileName is the optional configuration file looked up in the config directory.
const FileName = "showcase.yaml"

// EnvPrefix prefixes every environment override, e.g. SHOWCASE_WINDOW_WIDTH.
const EnvPrefix = "SHOWCASE"

// Config is the typed view of the loaded settings.
type Config struct {
	LogLevel         string                   `mapstructure:"logLevel"`
	Workers          int                      `mapstructure:"workers"`
	Window           WindowConfig             `mapstructure:"window"`
	Assets           AssetsConfig             `mapstructure:"assets"`
	Camera           CameraConfig             `mapstructure:"camera"`
	Hotspot          HotspotConfig            `mapstructure:"hotspot"`
	Choreography     ChoreographyConfig       `mapstructure:"choreography"`
	ProfileOverrides map[string]ProfileConfig `mapstructure:"profiles"`
}

// WindowConfig holds host window and loop settings.
type WindowConfig struct {
	Title            string        `mapstructure:"title"`
	Width            int           `mapstructure:"width"`
	Height           int           `mapstructure:"height"`
	TickRate         int           `mapstructure:"tickRate"`
	Profiler         bool          `mapstructure:"profiler"`
	ProfilerInterval time.Duration `mapstructure:"profilerInterval"`
}

// AssetsConfig locates every model asset relative to Root.
type AssetsConfig struct {
	Root   string       `mapstructure:"root"`
	Room   RoomAssets   `mapstructure:"room"`
	Box    BoxAssets    `mapstructure:"box"`
	Device DeviceAssets `mapstructure:"device"`
}

// RoomAssets locates the room scene and its baked texture.
type RoomAssets struct {
	Scene string `mapstructure:"scene"`
	Baked string `mapstructure:"baked"`
}

// BoxAssets locates the box scene and its textures.
type BoxAssets struct {
	Scene   string `mapstructure:"scene"`
	Baked   string `mapstructure:"baked"`
	Content string `mapstructure:"content"`
}

// DeviceAssets locates the device scene, texture and screen video.
type DeviceAssets struct {
	Scene string `mapstructure:"scene"`
	Baked string `mapstructure:"baked"`
	Video string `mapstructure:"video"`
}

// CameraConfig holds the lens and the initial pose. Fov is in degrees.
type CameraConfig struct {
	Fov      float32   `mapstructure:"fov"`
	Near     float32   `mapstructure:"near"`
	Far      float32   `mapstructure:"far"`
	Position []float32 `mapstructure:"position"`
	Target   []float32 `mapstructure:"target"`
}

// HotspotConfig positions the hotspot relative to the box InfoPoint.
type HotspotConfig struct {
	Offset    []float32 `mapstructure:"offset"`
	HitRadius float32   `mapstructure:"hitRadius"`
}

// ChoreographyConfig holds the scripted move timings and offsets.
type ChoreographyConfig struct {
	BoxApproach     time.Duration `mapstructure:"boxApproach"`
	ViewOffset      []float32     `mapstructure:"viewOffset"`
	DeviceRehome    time.Duration `mapstructure:"deviceRehome"`
	DeviceApproach  time.Duration `mapstructure:"deviceApproach"`
	DeviceDirection []float32     `mapstructure:"deviceDirection"`
	DeviceDistance  float32       `mapstructure:"deviceDistance"`
	DeviceRotate    time.Duration `mapstructure:"deviceRotate"`
	DeviceRotation  []float32     `mapstructure:"deviceRotation"`
	DragSensitivity float32       `mapstructure:"dragSensitivity"`
}

// Load reads configuration and sets default values.
// configDir is the directory searched for showcase.yaml; a missing file is not an error.
//
// Parameters:
//   - configDir: the directory containing the optional config file
//
// Returns:
//   - *Config: the typed configuration
//   - error: *common.ConfigError if the file is malformed or a value is invalid
func Load(configDir string) (*Config, error) {
	setDefaults()

	viper.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &common.ConfigError{Field: FileName, Reason: err.Error()}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, &common.ConfigError{Field: FileName, Reason: fmt.Sprintf("decode: %v", err)}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("workers", 3)

	viper.SetDefault("window.title", "Showcase")
	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.tickRate", 60)
	viper.SetDefault("window.profiler", false)
	viper.SetDefault("window.profilerInterval", "5s")

	viper.SetDefault("assets.root", "static")
	viper.SetDefault("assets.room.scene", "models/Attic/Attic.glb")
	viper.SetDefault("assets.room.baked", "models/Attic/Attic.jpg")
	viper.SetDefault("assets.box.scene", "models/GameBox/GameBox.glb")
	viper.SetDefault("assets.box.baked", "models/GameBox/GameBox.jpg")
	viper.SetDefault("assets.box.content", "models/GameBox/GameBoxContent.jpg")
	viper.SetDefault("assets.device.scene", "models/GameBoy/GameBoy.glb")
	viper.SetDefault("assets.device.baked", "models/GameBoy/GameBoy.jpg")
	viper.SetDefault("assets.device.video", "models/GameBoy/GlitchNoiseStatic.mp4")

	viper.SetDefault("camera.fov", 45)
	viper.SetDefault("camera.near", 0.1)
	viper.SetDefault("camera.far", 80)
	viper.SetDefault("camera.position", []float32{0.006640298903466361, 0.7857970312012988, -3.839395644569804})
	viper.SetDefault("camera.target", []float32{0, 0.7, -3})

	viper.SetDefault("hotspot.offset", []float32{0.025, 0.015, 0})
	viper.SetDefault("hotspot.hitRadius", 24)

	viper.SetDefault("choreography.boxApproach", "2s")
	viper.SetDefault("choreography.viewOffset", []float32{-0.2, 0.3, 0})
	viper.SetDefault("choreography.deviceRehome", "300ms")
	viper.SetDefault("choreography.deviceApproach", "1200ms")
	viper.SetDefault("choreography.deviceDirection", []float32{-0.72, -0.47, -6})
	viper.SetDefault("choreography.deviceDistance", 0.72)
	viper.SetDefault("choreography.deviceRotate", "1500ms")
	viper.SetDefault("choreography.deviceRotation", []float32{-1.9116387600233435, -2.38, -1.53})
	viper.SetDefault("choreography.dragSensitivity", 0.005)
}

// validate checks the values that would otherwise fail late.
func (c *Config) validate() error {
	switch {
	case c.Workers <= 0:
		return &common.ConfigError{Field: "workers", Reason: "must be positive"}
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return &common.ConfigError{Field: "window", Reason: fmt.Sprintf("invalid size %dx%d", c.Window.Width, c.Window.Height)}
	case c.Window.TickRate <= 0:
		return &common.ConfigError{Field: "window.tickRate", Reason: "must be positive"}
	case c.Camera.Fov <= 0 || c.Camera.Fov >= 180:
		return &common.ConfigError{Field: "camera.fov", Reason: "must lie within (0, 180) degrees"}
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return &common.ConfigError{Field: "camera.near", Reason: fmt.Sprintf("need 0 < near < far, got %g and %g", c.Camera.Near, c.Camera.Far)}
	}

	vectors := map[string][]float32{
		"camera.position":              c.Camera.Position,
		"camera.target":                c.Camera.Target,
		"hotspot.offset":               c.Hotspot.Offset,
		"choreography.viewOffset":      c.Choreography.ViewOffset,
		"choreography.deviceDirection": c.Choreography.DeviceDirection,
		"choreography.deviceRotation":  c.Choreography.DeviceRotation,
	}
	for field, v := range vectors {
		if _, err := vec3(field, v); err != nil {
			return err
		}
	}
	return nil
}
