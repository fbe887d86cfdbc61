package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/rs/zerolog"
)

// ManifestSuffix is appended to a binary scene path to find its scene manifest.
const ManifestSuffix = ".yaml"

// loader is the implementation of the Loader interface.
type loader struct {
	mu     sync.RWMutex
	logger zerolog.Logger

	fsys fs.FS

	sceneCache   map[string]scene.Graph
	textureCache map[string]*common.TextureData

	manifests loaderBackend
	binaries  loaderBackend
}

// Loader is the asset collaborator of the showcase: it resolves scene graphs and
// materials by path from a filesystem and caches what it decodes.
//
// All failures are returned as *common.AssetLoadError wrapping the cause.
type Loader interface {
	// LoadScene decodes the scene graph at path and caches it.
	// Binary scene paths (.glb, .gltf) prefer a sidecar manifest (path + ".yaml") when one
	// exists and are otherwise decoded as glTF; manifest paths (.yaml, .yml) are decoded directly.
	// A cached graph is returned as-is on subsequent calls.
	//
	// Parameters:
	//   - path: slash-separated path inside the loader filesystem
	//
	// Returns:
	//   - scene.Graph: the decoded scene
	//   - error: *common.AssetLoadError if the file is missing, unsupported or malformed
	LoadScene(path string) (scene.Graph, error)

	// LoadImageMaterial decodes a PNG or JPEG texture and wraps it in an image material.
	// Textures are decoded unflipped and cached by path; each call returns a new material.
	//
	// Parameters:
	//   - path: slash-separated path inside the loader filesystem
	//   - options: extra material options applied after the texture
	//
	// Returns:
	//   - material.Material: the image material
	//   - error: *common.AssetLoadError if the texture cannot be read or decoded
	LoadImageMaterial(path string, options ...material.MaterialBuilderOption) (material.Material, error)

	// NewVideoElement creates a muted, looping video source for a path. It does not touch the filesystem.
	//
	// Parameters:
	//   - path: slash-separated path inside the loader filesystem
	//   - options: video options overriding the defaults
	//
	// Returns:
	//   - material.VideoSource: the unstarted video source
	NewVideoElement(path string, options ...material.VideoOption) material.VideoSource

	// LoadVideoMaterial wraps a video source in a video material after checking its file exists.
	//
	// Parameters:
	//   - video: the video source
	//   - options: extra material options applied after the video
	//
	// Returns:
	//   - material.Material: the video material
	//   - error: *common.AssetLoadError if the source has no path or its file is missing
	LoadVideoMaterial(video material.VideoSource, options ...material.MaterialBuilderOption) (material.Material, error)

	// Get retrieves a cached scene by the path it was loaded with. Returns nil if not found.
	//
	// Parameters:
	//   - path: the path passed to LoadScene
	//
	// Returns:
	//   - scene.Graph: the cached graph or nil
	Get(path string) scene.Graph

	// Scenes returns a copy of the scene cache.
	//
	// Returns:
	//   - map[string]scene.Graph: all cached scenes keyed by path
	Scenes() map[string]scene.Graph
}

var _ Loader = &loader{}

// NewLoader creates a new Loader reading from the working directory unless WithFS or WithRoot is given.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new Loader instance
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:           sync.RWMutex{},
		logger:       zerolog.Nop(),
		fsys:         os.DirFS("."),
		sceneCache:   make(map[string]scene.Graph),
		textureCache: make(map[string]*common.TextureData),
		manifests:    newManifestLoaderBackend(),
		binaries:     newGLTFLoaderBackend(),
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) LoadScene(p string) (scene.Graph, error) {
	key := cleanPath(p)

	l.mu.RLock()
	if cached, ok := l.sceneCache[key]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	source, backend, err := l.resolveSource(key)
	if err != nil {
		return nil, &common.AssetLoadError{Path: key, Err: err}
	}

	f, err := l.fsys.Open(source)
	if err != nil {
		return nil, &common.AssetLoadError{Path: key, Err: err}
	}
	defer f.Close()

	g, err := backend.Load(key, f)
	if err != nil {
		return nil, &common.AssetLoadError{Path: key, Err: fmt.Errorf("failed to decode %s: %w", source, err)}
	}

	l.mu.Lock()
	if cached, ok := l.sceneCache[key]; ok {
		l.mu.Unlock()
		return cached, nil
	}
	l.sceneCache[key] = g
	l.mu.Unlock()

	l.logger.Debug().Str("path", key).Int("clips", len(g.Clips())).Msg("scene loaded")
	return g, nil
}

func (l *loader) LoadImageMaterial(p string, options ...material.MaterialBuilderOption) (material.Material, error) {
	key := cleanPath(p)
	tex, err := l.texture(key)
	if err != nil {
		return nil, err
	}
	opts := append([]material.MaterialBuilderOption{material.WithName(key), material.WithTexture(tex)}, options...)
	return material.NewMaterial(opts...), nil
}

func (l *loader) NewVideoElement(p string, options ...material.VideoOption) material.VideoSource {
	return material.NewVideoElement(cleanPath(p), options...)
}

func (l *loader) LoadVideoMaterial(video material.VideoSource, options ...material.MaterialBuilderOption) (material.Material, error) {
	if video == nil || video.Path() == "" {
		return nil, &common.AssetLoadError{Err: material.ErrNoVideoSource}
	}
	key := cleanPath(video.Path())
	if _, err := fs.Stat(l.fsys, key); err != nil {
		return nil, &common.AssetLoadError{Path: key, Err: err}
	}
	opts := append([]material.MaterialBuilderOption{material.WithName(key), material.WithVideo(video)}, options...)
	return material.NewMaterial(opts...), nil
}

func (l *loader) Get(p string) scene.Graph {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sceneCache[cleanPath(p)]
}

func (l *loader) Scenes() map[string]scene.Graph {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]scene.Graph, len(l.sceneCache))
	for k, v := range l.sceneCache {
		result[k] = v
	}
	return result
}

// texture returns the cached texture for key, decoding it on first use.
func (l *loader) texture(key string) (*common.TextureData, error) {
	l.mu.RLock()
	if cached, ok := l.textureCache[key]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	f, err := l.fsys.Open(key)
	if err != nil {
		return nil, &common.AssetLoadError{Path: key, Err: err}
	}
	defer f.Close()

	tex, err := common.DecodeTexture(key, f)
	if err != nil {
		return nil, &common.AssetLoadError{Path: key, Err: err}
	}
	tex.FlipY = false

	l.mu.Lock()
	l.textureCache[key] = tex
	l.mu.Unlock()

	l.logger.Debug().Str("path", key).Uint32("width", tex.Width).Uint32("height", tex.Height).Msg("texture decoded")
	return tex, nil
}

// errUnsupportedFormat is returned for scene paths with an unknown extension.
var errUnsupportedFormat = errors.New("unsupported scene format")

// resolveSource maps a scene path to the file to open and the backend that decodes it.
func (l *loader) resolveSource(p string) (string, loaderBackend, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return p, l.manifests, nil
	case ".glb", ".gltf":
		if _, err := fs.Stat(l.fsys, p+ManifestSuffix); err == nil {
			return p + ManifestSuffix, l.manifests, nil
		}
		return p, l.binaries, nil
	default:
		return "", nil, fmt.Errorf("%w: %q", errUnsupportedFormat, path.Ext(p))
	}
}

// cleanPath normalizes a path for fs.FS lookups and cache keys.
func cleanPath(p string) string {
	return strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(p, "\\", "/")), "/")
}
