package picking

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/material"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scene"
)

type interactiveObject struct {
	mu *sync.Mutex

	name  string
	roots []scene.Node
	hover material.Material

	// meshes in traversal order with the material each carried when captured
	meshes   []scene.Node
	defaults map[scene.Node]material.Material
	hovered  bool
}

// InteractiveObject is a pickable hierarchy whose meshes can switch between their
// captured default materials and a shared hover material.
type InteractiveObject interface {
	// Name identifies the object in logs.
	Name() string

	// Roots returns the hierarchies that make up the object.
	Roots() []scene.Node

	// Hovered reports whether the hover material is currently applied.
	Hovered() bool

	// ApplyHover assigns the hover material to every captured mesh.
	ApplyHover()

	// RestoreDefaults puts back the material each mesh carried at capture time.
	RestoreDefaults()

	// DefaultMaterial returns the material captured for a mesh node.
	//
	// Parameters:
	//   - n: a mesh node of the object
	//
	// Returns:
	//   - material.Material: the captured material
	//   - bool: false if n is not one of the object's meshes
	DefaultMaterial(n scene.Node) (material.Material, bool)

	// Intersect tests a world-space ray against every visible mesh of the object.
	//
	// Parameters:
	//   - r: world-space ray
	//
	// Returns:
	//   - float32: distance to the nearest hit
	//   - bool: true if any mesh was hit
	Intersect(r common.Ray) (float32, bool)
}

var _ InteractiveObject = &interactiveObject{}

// NewInteractiveObject captures the current material of every mesh under roots.
// Capture happens once; later material changes are not recorded as defaults.
//
// Parameters:
//   - name: identifies the object
//   - hover: the shared hover material
//   - roots: the hierarchies forming the object
//
// Returns:
//   - InteractiveObject: the new object
func NewInteractiveObject(name string, hover material.Material, roots ...scene.Node) InteractiveObject {
	o := &interactiveObject{
		mu:       &sync.Mutex{},
		name:     name,
		roots:    roots,
		hover:    hover,
		defaults: make(map[scene.Node]material.Material),
	}
	for _, root := range roots {
		root.Traverse(func(n scene.Node) {
			if n.Mesh() == nil {
				return
			}
			if _, seen := o.defaults[n]; seen {
				return
			}
			o.meshes = append(o.meshes, n)
			o.defaults[n] = n.Material()
		})
	}
	return o
}

func (o *interactiveObject) Name() string {
	return o.name
}

func (o *interactiveObject) Roots() []scene.Node {
	out := make([]scene.Node, len(o.roots))
	copy(out, o.roots)
	return out
}

func (o *interactiveObject) Hovered() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.hovered
}

func (o *interactiveObject) ApplyHover() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.hovered {
		return
	}
	for _, n := range o.meshes {
		n.SetMaterial(o.hover)
	}
	o.hovered = true
}

func (o *interactiveObject) RestoreDefaults() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.hovered {
		return
	}
	for _, n := range o.meshes {
		n.SetMaterial(o.defaults[n])
	}
	o.hovered = false
}

func (o *interactiveObject) DefaultMaterial(n scene.Node) (material.Material, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	m, ok := o.defaults[n]
	return m, ok
}

func (o *interactiveObject) Intersect(r common.Ray) (float32, bool) {
	nearest, hit := float32(0), false
	for _, n := range o.meshes {
		if !n.Visible() {
			continue
		}
		d, ok := scene.IntersectNode(n, r)
		if ok && (!hit || d < nearest) {
			nearest, hit = d, true
		}
	}
	return nearest, hit
}
