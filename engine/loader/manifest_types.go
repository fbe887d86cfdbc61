package loader

// manifestDocument is the top-level structure of a scene manifest.
// A manifest describes the node hierarchy, pickable geometry and animation clips of a scene
// in the engine's own terms; it is exported alongside the binary scene it describes.
type manifestDocument struct {
	Name  string         `yaml:"name"`
	Nodes []manifestNode `yaml:"nodes"`
	Clips []manifestClip `yaml:"clips"`
}

// manifestNode is one node of the hierarchy. Transform fields default to identity.
type manifestNode struct {
	Name      string          `yaml:"name"`
	Position  []float32       `yaml:"position"`
	Rotation  []float32       `yaml:"rotation"`
	Scale     []float32       `yaml:"scale"`
	Visible   *bool           `yaml:"visible"`
	Bounds    *manifestBounds `yaml:"bounds"`
	Triangles [][][]float32   `yaml:"triangles"`
	Children  []manifestNode  `yaml:"children"`
}

// manifestBounds is a local-space axis-aligned box used as the node's pick mesh.
type manifestBounds struct {
	Min []float32 `yaml:"min"`
	Max []float32 `yaml:"max"`
}

// manifestClip is a named animation clip.
type manifestClip struct {
	Name   string          `yaml:"name"`
	Tracks []manifestTrack `yaml:"tracks"`
}

// manifestTrack keys one transform channel of a node. Rotations are Euler XYZ radians.
type manifestTrack struct {
	Node     string      `yaml:"node"`
	Property string      `yaml:"property"`
	Times    []float32   `yaml:"times"`
	Values   [][]float32 `yaml:"values"`
}
