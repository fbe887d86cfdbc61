package model

import (
	"context"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/loader"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
)

// Node names the device scene is expected to carry.
const (
	DeviceRootName = "GameBoy"
	ScreenName     = "Screen"
)

// DevicePaths locates the device assets.
type DevicePaths struct {
	Scene string
	Baked string
	Video string
}

// Device is the handheld revealed inside the box.
// Its screen video material is prepared at load time but only applied by the caller.
type Device struct {
	mu     sync.Mutex
	cfg    modelConfig
	loader loader.Loader
	paths  DevicePaths

	video         material.VideoSource
	videoMaterial material.Material
	graph         scene.Graph
	root          scene.Node
	screen        scene.Node
}

var _ Model = &Device{}

// NewDevice creates an initialized, unloaded device.
//
// Parameters:
//   - l: the asset loader
//   - paths: scene, texture and video paths
//   - options: functional options
//
// Returns:
//   - *Device: the device
func NewDevice(l loader.Loader, paths DevicePaths, options ...ModelBuilderOption) *Device {
	d := &Device{
		cfg:    newModelConfig(options),
		loader: l,
		paths:  paths,
	}
	d.Init()
	return d
}

func (d *Device) Name() string {
	return "device"
}

func (d *Device) Init() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.graph, d.root, d.screen, d.videoMaterial = nil, nil, nil, nil
	d.video = d.loader.NewVideoElement(d.paths.Video)
}

// Load attaches the device. A missing video file does not fail the load; the screen
// material is simply unavailable and VideoMaterial returns nil.
func (d *Device) Load(ctx context.Context, world scene.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.graph != nil {
		return nil
	}

	g, err := d.loader.LoadScene(d.paths.Scene)
	if err != nil {
		return err
	}
	root := g.Find(DeviceRootName)
	if root == nil {
		return &common.MissingAssetError{Kind: common.AssetKindNode, Name: DeviceRootName}
	}
	screen := root.FindByName(ScreenName)
	if screen == nil {
		return &common.MissingAssetError{Kind: common.AssetKindNode, Name: ScreenName}
	}

	baked, err := d.loader.LoadImageMaterial(d.paths.Baked)
	if err != nil {
		return err
	}
	assignMaterials(g.Root(), func(scene.Node) material.Material { return baked })

	videoMaterial, err := d.loader.LoadVideoMaterial(d.video)
	if err != nil {
		d.cfg.logger.Warn().Err(err).Str("model", d.Name()).Msg("screen video unavailable")
		videoMaterial = nil
	}

	world.AddChild(g.Root())
	d.graph, d.root, d.screen, d.videoMaterial = g, root, screen, videoMaterial

	d.cfg.logger.Debug().Str("model", d.Name()).Bool("video", videoMaterial != nil).Msg("model loaded")
	return nil
}

// Graph returns the loaded scene, or nil before Load.
func (d *Device) Graph() scene.Graph {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.graph
}

// Root returns the interactive device node, or nil before Load.
func (d *Device) Root() scene.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.root
}

// Screen returns the screen mesh node, or nil before Load.
func (d *Device) Screen() scene.Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.screen
}

// Video returns the screen video source.
func (d *Device) Video() material.VideoSource {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.video
}

// VideoMaterial returns the prepared screen material, or nil if the video could not be loaded.
func (d *Device) VideoMaterial() material.Material {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.videoMaterial
}
