package loader

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// manifestLoaderBackendImpl is the implementation of manifestLoaderBackend.
type manifestLoaderBackendImpl struct{}

// manifestLoaderBackend is a loaderBackend implementation for YAML scene manifests.
type manifestLoaderBackend interface {
	loaderBackend
}

var _ manifestLoaderBackend = &manifestLoaderBackendImpl{}

// newManifestLoaderBackend creates a new manifest loader backend.
//
// Returns:
//   - manifestLoaderBackend: the loader backend for scene manifests
func newManifestLoaderBackend() manifestLoaderBackend {
	return &manifestLoaderBackendImpl{}
}

func (b *manifestLoaderBackendImpl) Load(path string, r io.Reader) (scene.Graph, error) {
	var doc manifestDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	rootName := doc.Name
	if rootName == "" {
		rootName = path
	}
	root := scene.NewNode(rootName)
	seen := make(map[string]bool)
	for i := range doc.Nodes {
		n, err := buildManifestNode(&doc.Nodes[i], seen)
		if err != nil {
			return nil, err
		}
		root.AddChild(n)
	}

	clips := make([]*scene.Clip, 0, len(doc.Clips))
	for _, mc := range doc.Clips {
		c, err := buildManifestClip(mc)
		if err != nil {
			return nil, err
		}
		clips = append(clips, c)
	}

	return scene.NewGraph(path, root, clips...), nil
}

// buildManifestNode converts a manifest node and its children into scene nodes.
// Node names must be unique within a manifest since models and clips address nodes by name.
func buildManifestNode(mn *manifestNode, seen map[string]bool) (scene.Node, error) {
	if mn.Name == "" {
		return nil, fmt.Errorf("node without a name")
	}
	if seen[mn.Name] {
		return nil, fmt.Errorf("duplicate node name %q", mn.Name)
	}
	seen[mn.Name] = true

	pos, err := manifestVec3(mn.Position, mgl32.Vec3{}, mn.Name+".position")
	if err != nil {
		return nil, err
	}
	rot, err := manifestVec3(mn.Rotation, mgl32.Vec3{}, mn.Name+".rotation")
	if err != nil {
		return nil, err
	}
	scale, err := manifestVec3(mn.Scale, mgl32.Vec3{1, 1, 1}, mn.Name+".scale")
	if err != nil {
		return nil, err
	}

	opts := []scene.NodeBuilderOption{
		scene.WithPosition(pos),
		scene.WithRotation(rot),
		scene.WithScale(scale),
	}

	mesh, err := manifestMesh(mn)
	if err != nil {
		return nil, err
	}
	if mesh != nil {
		opts = append(opts, scene.WithMesh(mesh))
	}

	for i := range mn.Children {
		child, err := buildManifestNode(&mn.Children[i], seen)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scene.WithChildren(child))
	}

	n := scene.NewNode(mn.Name, opts...)
	if mn.Visible != nil {
		n.SetVisible(*mn.Visible)
	}
	return n, nil
}

// manifestMesh builds the pick mesh of a node: explicit triangles win over bounds.
func manifestMesh(mn *manifestNode) (*scene.Mesh, error) {
	if len(mn.Triangles) > 0 {
		tris := make([][3]mgl32.Vec3, 0, len(mn.Triangles))
		for i, t := range mn.Triangles {
			if len(t) != 3 {
				return nil, fmt.Errorf("%s.triangles[%d]: want 3 vertices, got %d", mn.Name, i, len(t))
			}
			var tri [3]mgl32.Vec3
			for j := range 3 {
				v, err := manifestVec3(t[j], mgl32.Vec3{}, fmt.Sprintf("%s.triangles[%d][%d]", mn.Name, i, j))
				if err != nil {
					return nil, err
				}
				tri[j] = v
			}
			tris = append(tris, tri)
		}
		return scene.NewTriangleMesh(tris), nil
	}
	if mn.Bounds != nil {
		lo, err := manifestVec3(mn.Bounds.Min, mgl32.Vec3{}, mn.Name+".bounds.min")
		if err != nil {
			return nil, err
		}
		hi, err := manifestVec3(mn.Bounds.Max, mgl32.Vec3{}, mn.Name+".bounds.max")
		if err != nil {
			return nil, err
		}
		for i := range 3 {
			if lo[i] > hi[i] {
				return nil, fmt.Errorf("%s.bounds: min %v exceeds max %v", mn.Name, lo, hi)
			}
		}
		return scene.NewBoxMesh(lo, hi), nil
	}
	return nil, nil
}

// buildManifestClip converts a manifest clip, checking that every track is well formed.
// Tracks may reference nodes outside this manifest; the animation player reports those at play time.
func buildManifestClip(mc manifestClip) (*scene.Clip, error) {
	if mc.Name == "" {
		return nil, fmt.Errorf("clip without a name")
	}
	tracks := make([]scene.Track, 0, len(mc.Tracks))
	for i, mt := range mc.Tracks {
		field := fmt.Sprintf("%s.tracks[%d]", mc.Name, i)
		prop, err := manifestProperty(mt.Property)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		if len(mt.Times) == 0 || len(mt.Times) != len(mt.Values) {
			return nil, fmt.Errorf("%s: %d times for %d values", field, len(mt.Times), len(mt.Values))
		}
		values := make([]mgl32.Vec3, len(mt.Values))
		for k, raw := range mt.Values {
			if k > 0 && mt.Times[k] < mt.Times[k-1] {
				return nil, fmt.Errorf("%s: times must be ascending", field)
			}
			v, err := manifestVec3(raw, mgl32.Vec3{}, fmt.Sprintf("%s.values[%d]", field, k))
			if err != nil {
				return nil, err
			}
			values[k] = v
		}
		tracks = append(tracks, scene.Track{
			Node:     mt.Node,
			Property: prop,
			Times:    mt.Times,
			Values:   values,
		})
	}
	return scene.NewClip(mc.Name, tracks...), nil
}

func manifestProperty(s string) (scene.Property, error) {
	switch s {
	case "position", "translation", "":
		return scene.PropertyPosition, nil
	case "rotation":
		return scene.PropertyRotation, nil
	case "scale":
		return scene.PropertyScale, nil
	default:
		return 0, fmt.Errorf("unknown property %q", s)
	}
}

// manifestVec3 converts a 3-element list, returning def when the list is absent.
func manifestVec3(v []float32, def mgl32.Vec3, field string) (mgl32.Vec3, error) {
	if v == nil {
		return def, nil
	}
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%s: want 3 components, got %d", field, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}
