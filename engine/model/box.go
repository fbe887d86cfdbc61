package model

import (
	"context"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/loader"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Node and clip names the box scene is expected to carry.
const (
	InfoPointName      = "InfoPoint"
	ViewPointName      = "ViewPoint"
	LightbulbGlassName = "LightbulbGlass"

	ClipOpening = "Opening"
	ClipOpened  = "Opened"
)

// boxShellPrefixes name the meshes forming the box itself; everything else inside is content.
var boxShellPrefixes = []string{"front", "back", "left", "right"}

// BoxPaths locates the box assets.
type BoxPaths struct {
	Scene   string
	Baked   string
	Content string
}

// Box is the openable game box with its info and view marker nodes.
type Box struct {
	mu     sync.Mutex
	cfg    modelConfig
	loader loader.Loader
	paths  BoxPaths

	glass     material.Material
	graph     scene.Graph
	infoPoint scene.Node
	viewPoint scene.Node
}

var _ Model = &Box{}

// NewBox creates an initialized, unloaded box.
//
// Parameters:
//   - l: the asset loader
//   - paths: scene and texture paths
//   - options: functional options
//
// Returns:
//   - *Box: the box
func NewBox(l loader.Loader, paths BoxPaths, options ...ModelBuilderOption) *Box {
	b := &Box{
		cfg:    newModelConfig(options),
		loader: l,
		paths:  paths,
	}
	b.Init()
	return b
}

func (b *Box) Name() string {
	return "box"
}

func (b *Box) Init() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.graph, b.infoPoint, b.viewPoint = nil, nil, nil
	b.glass = material.NewMaterial(
		material.WithName(LightbulbGlassName),
		material.WithHexColor(0x2c2b2b),
		material.WithOpacity(0.16),
	)
}

func (b *Box) Load(ctx context.Context, world scene.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.graph != nil {
		return nil
	}

	g, err := b.loader.LoadScene(b.paths.Scene)
	if err != nil {
		return err
	}
	info := g.Find(InfoPointName)
	if info == nil {
		return &common.MissingAssetError{Kind: common.AssetKindNode, Name: InfoPointName}
	}
	view := g.Find(ViewPointName)
	if view == nil {
		return &common.MissingAssetError{Kind: common.AssetKindNode, Name: ViewPointName}
	}

	baked, err := b.loader.LoadImageMaterial(b.paths.Baked)
	if err != nil {
		return err
	}
	content, err := b.loader.LoadImageMaterial(b.paths.Content)
	if err != nil {
		return err
	}

	assignMaterials(g.Root(), func(n scene.Node) material.Material {
		switch {
		case n.Name() == LightbulbGlassName:
			return b.glass
		case hasAnyPrefix(n.Name(), boxShellPrefixes...):
			return baked
		default:
			return content
		}
	})
	world.AddChild(g.Root())
	b.graph, b.infoPoint, b.viewPoint = g, info, view

	b.cfg.logger.Debug().Str("model", b.Name()).Int("clips", len(g.Clips())).Msg("model loaded")
	return nil
}

// Graph returns the loaded scene, or nil before Load.
func (b *Box) Graph() scene.Graph {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.graph
}

// Root returns the root of the loaded box hierarchy, or nil before Load.
func (b *Box) Root() scene.Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.graph == nil {
		return nil
	}
	return b.graph.Root()
}

// InfoPoint returns the world position of the hotspot marker node.
func (b *Box) InfoPoint() mgl32.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.infoPoint == nil {
		return mgl32.Vec3{}
	}
	return b.infoPoint.WorldPosition()
}

// ViewPoint returns the world position the camera approaches the box from.
func (b *Box) ViewPoint() mgl32.Vec3 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.viewPoint == nil {
		return mgl32.Vec3{}
	}
	return b.viewPoint.WorldPosition()
}
