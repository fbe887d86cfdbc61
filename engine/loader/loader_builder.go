package loader

import (
	"io/fs"
	"os"

	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/rs/zerolog"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithFS is an option builder that sets the filesystem assets are read from.
//
// Parameters:
//   - fsys: the asset filesystem
//
// Returns:
//   - LoaderBuilderOption: a function that applies the filesystem option to a loader
func WithFS(fsys fs.FS) LoaderBuilderOption {
	return func(l *loader) {
		l.fsys = fsys
	}
}

// WithRoot is an option builder that reads assets from a directory on disk.
//
// Parameters:
//   - dir: the asset root directory
//
// Returns:
//   - LoaderBuilderOption: a function that applies the root option to a loader
func WithRoot(dir string) LoaderBuilderOption {
	return func(l *loader) {
		l.fsys = os.DirFS(dir)
	}
}

// WithLogger is an option builder that sets the logger used for load events.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - LoaderBuilderOption: a function that applies the logger option to a loader
func WithLogger(logger zerolog.Logger) LoaderBuilderOption {
	return func(l *loader) {
		l.logger = logger
	}
}

// WithScene is an option builder that pre-populates the scene cache with a graph.
//
// Parameters:
//   - key: the cache key for the scene
//   - g: the graph to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the scene option to a loader
func WithScene(key string, g scene.Graph) LoaderBuilderOption {
	return func(l *loader) {
		l.sceneCache[cleanPath(key)] = g
	}
}
