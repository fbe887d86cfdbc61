package material

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
)

// Kind identifies how a material sources its color.
type Kind int

const (
	// KindBasic is an unlit flat color, optionally translucent.
	KindBasic Kind = iota
	// KindImage samples a baked image texture.
	KindImage
	// KindVideo samples the current frame of a video source.
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "basic"
	}
}

// material is the implementation of the Material interface.
type material struct {
	name        string
	kind        Kind
	baseColor   [4]float32
	transparent bool
	doubleSided bool
	depthWrite  bool
	texture     *common.TextureData
	video       VideoSource
}

// Material defines the surface description a renderer needs to draw a mesh.
//
// Materials are immutable after construction and are compared by identity:
// swapping a mesh's material and swapping it back must yield the same reference.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Kind retrieves how the material sources its color.
	//
	// Returns:
	//   - Kind: basic, image or video
	Kind() Kind

	// BaseColor retrieves the RGBA color of the material. Alpha carries the opacity.
	//
	// Returns:
	//   - [4]float32: the base color as RGBA values
	BaseColor() [4]float32

	// Opacity retrieves the alpha component of the base color.
	//
	// Returns:
	//   - float32: opacity in [0, 1]
	Opacity() float32

	// Transparent reports whether the material is alpha blended.
	//
	// Returns:
	//   - bool: true if blended
	Transparent() bool

	// DoubleSided reports whether back faces are drawn.
	//
	// Returns:
	//   - bool: true if both faces are drawn
	DoubleSided() bool

	// DepthWrite reports whether the material writes depth.
	//
	// Returns:
	//   - bool: true if depth is written
	DepthWrite() bool

	// Texture retrieves the decoded image texture, or nil for non-image materials.
	//
	// Returns:
	//   - *common.TextureData: the texture, or nil
	Texture() *common.TextureData

	// Video retrieves the video source, or nil for non-video materials.
	//
	// Returns:
	//   - VideoSource: the video, or nil
	Video() VideoSource
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// The kind is derived from the options: a video source wins over a texture, which wins over a flat color.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		baseColor:  [4]float32{1, 1, 1, 1},
		depthWrite: true,
	}
	for _, opt := range options {
		opt(m)
	}
	switch {
	case m.video != nil:
		m.kind = KindVideo
	case m.texture != nil:
		m.kind = KindImage
	default:
		m.kind = KindBasic
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Kind() Kind {
	return m.kind
}

func (m *material) BaseColor() [4]float32 {
	return m.baseColor
}

func (m *material) Opacity() float32 {
	return m.baseColor[3]
}

func (m *material) Transparent() bool {
	return m.transparent
}

func (m *material) DoubleSided() bool {
	return m.doubleSided
}

func (m *material) DepthWrite() bool {
	return m.depthWrite
}

func (m *material) Texture() *common.TextureData {
	return m.texture
}

func (m *material) Video() VideoSource {
	return m.video
}
