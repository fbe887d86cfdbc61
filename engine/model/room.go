package model

import (
	"context"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/engine/loader"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
)

// RoomPaths locates the room assets.
type RoomPaths struct {
	Scene string
	Baked string
}

// Room is the static attic environment.
type Room struct {
	mu     sync.Mutex
	cfg    modelConfig
	loader loader.Loader
	paths  RoomPaths

	windowGlass material.Material
	graph       scene.Graph
}

var _ Model = &Room{}

// WindowGlassName is the mesh that receives the translucent glass material.
const WindowGlassName = "WindowGlass"

// NewRoom creates an initialized, unloaded room.
//
// Parameters:
//   - l: the asset loader
//   - paths: scene and texture paths
//   - options: functional options
//
// Returns:
//   - *Room: the room
func NewRoom(l loader.Loader, paths RoomPaths, options ...ModelBuilderOption) *Room {
	r := &Room{
		cfg:    newModelConfig(options),
		loader: l,
		paths:  paths,
	}
	r.Init()
	return r
}

func (r *Room) Name() string {
	return "room"
}

func (r *Room) Init() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.graph = nil
	r.windowGlass = material.NewMaterial(
		material.WithName(WindowGlassName),
		material.WithHexColor(0x818181),
		material.WithOpacity(0.12),
	)
}

func (r *Room) Load(ctx context.Context, world scene.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.graph != nil {
		return nil
	}

	g, err := r.loader.LoadScene(r.paths.Scene)
	if err != nil {
		return err
	}
	baked, err := r.loader.LoadImageMaterial(r.paths.Baked)
	if err != nil {
		return err
	}

	assignMaterials(g.Root(), func(n scene.Node) material.Material {
		if n.Name() == WindowGlassName {
			return r.windowGlass
		}
		return baked
	})
	world.AddChild(g.Root())
	r.graph = g

	r.cfg.logger.Debug().Str("model", r.Name()).Str("scene", r.paths.Scene).Msg("model loaded")
	return nil
}

// Graph returns the loaded scene, or nil before Load.
func (r *Room) Graph() scene.Graph {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.graph
}
