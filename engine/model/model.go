package model

import (
	"context"
	"strings"

	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/rs/zerolog"
)

// Model is a loadable piece of the showcase scene.
//
// Init resets the model and prepares everything that needs no I/O. Load fetches the model's
// assets, assigns its materials and attaches it under world. A model is loaded at most once
// per Init; calling Load again after a successful load is a no-op.
type Model interface {
	// Name identifies the model in logs.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Init resets loaded state and builds the model's constant materials.
	Init()

	// Load fetches assets and attaches the model's scene under world.
	//
	// Parameters:
	//   - ctx: cancels the load before any I/O starts
	//   - world: the node the model's root is attached to
	//
	// Returns:
	//   - error: *common.AssetLoadError on fetch/parse failure, *common.MissingAssetError if a required node is absent
	Load(ctx context.Context, world scene.Node) error
}

// modelConfig carries the options shared by every model constructor.
type modelConfig struct {
	logger zerolog.Logger
}

func newModelConfig(options []ModelBuilderOption) modelConfig {
	cfg := modelConfig{logger: zerolog.Nop()}
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// assignMaterials walks root and sets the material chosen by pick on every mesh node.
// A nil choice leaves the node's material untouched.
func assignMaterials(root scene.Node, pick func(n scene.Node) material.Material) {
	root.Traverse(func(n scene.Node) {
		if n.Mesh() == nil {
			return
		}
		if m := pick(n); m != nil {
			n.SetMaterial(m)
		}
	})
}

// hasAnyPrefix reports whether name starts with one of prefixes.
func hasAnyPrefix(name string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
