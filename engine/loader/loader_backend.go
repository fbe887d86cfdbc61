package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
)

// loaderBackend defines the generic interface for decoding scene graphs from streams.
// Concrete implementations (e.g., manifestLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load decodes a scene graph.
	//
	// Parameters:
	//   - path: the scene path, recorded on the graph
	//   - r: the reader providing the encoded scene
	//
	// Returns:
	//   - scene.Graph: the decoded graph
	//   - error: error if decoding fails
	Load(path string, r io.Reader) (scene.Graph, error)
}
