package scene

import (
	"sync"
)

type graphImpl struct {
	mu *sync.Mutex

	path  string
	root  Node
	clips []*Clip
}

// Graph is a loaded scene: a node hierarchy plus the animation clips authored with it.
type Graph interface {
	// Path returns the asset path the graph was loaded from.
	//
	// Returns:
	//   - string: the source path
	Path() string

	// Root returns the top-level node of the graph.
	//
	// Returns:
	//   - Node: the root node
	Root() Node

	// Clips returns a copy of the authored clips.
	//
	// Returns:
	//   - []*Clip: the clips in authored order
	Clips() []*Clip

	// Clip returns the clip with the given name, or nil.
	//
	// Parameters:
	//   - name: the clip name
	//
	// Returns:
	//   - *Clip: the matching clip or nil
	Clip(name string) *Clip

	// Find returns the first node in the graph with the given name, or nil.
	//
	// Parameters:
	//   - name: the node name
	//
	// Returns:
	//   - Node: the matching node or nil
	Find(name string) Node

	// Traverse visits every node depth-first.
	//
	// Parameters:
	//   - fn: the visitor
	Traverse(fn func(Node))
}

var _ Graph = &graphImpl{}

// NewGraph creates a graph around an existing root.
//
// Parameters:
//   - path: the source asset path
//   - root: the top-level node
//   - clips: the authored clips
//
// Returns:
//   - Graph: the new graph
func NewGraph(path string, root Node, clips ...*Clip) Graph {
	if root == nil {
		root = NewNode(path)
	}
	return &graphImpl{
		mu:    &sync.Mutex{},
		path:  path,
		root:  root,
		clips: clips,
	}
}

func (g *graphImpl) Path() string {
	return g.path
}

func (g *graphImpl) Root() Node {
	return g.root
}

func (g *graphImpl) Clips() []*Clip {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Clip, len(g.clips))
	copy(out, g.clips)
	return out
}

func (g *graphImpl) Clip(name string) *Clip {
	g.mu.Lock()
	defer g.mu.Unlock()
	return FindClip(g.clips, name)
}

func (g *graphImpl) Find(name string) Node {
	return g.root.FindByName(name)
}

func (g *graphImpl) Traverse(fn func(Node)) {
	g.root.Traverse(fn)
}
