package material

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithBaseColor is an option builder that sets the RGBA color of the material.
//
// Parameters:
//   - color: the base color as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the base color option to a material
func WithBaseColor(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor = color
	}
}

// WithHexColor sets the RGB components from a 0xRRGGBB value, leaving opacity untouched.
//
// Parameters:
//   - hex: the packed color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the color option to a material
func WithHexColor(hex uint32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor[0] = float32((hex>>16)&0xff) / 255
		m.baseColor[1] = float32((hex>>8)&0xff) / 255
		m.baseColor[2] = float32(hex&0xff) / 255
	}
}

// WithOpacity sets the alpha component and marks the material transparent when below one.
//
// Parameters:
//   - opacity: alpha in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the opacity option to a material
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.baseColor[3] = opacity
		if opacity < 1 {
			m.transparent = true
		}
	}
}

// WithTransparent toggles alpha blending.
func WithTransparent(transparent bool) MaterialBuilderOption {
	return func(m *material) {
		m.transparent = transparent
	}
}

// WithDoubleSided toggles drawing of back faces.
func WithDoubleSided(doubleSided bool) MaterialBuilderOption {
	return func(m *material) {
		m.doubleSided = doubleSided
	}
}

// WithDepthWrite toggles depth writes.
func WithDepthWrite(depthWrite bool) MaterialBuilderOption {
	return func(m *material) {
		m.depthWrite = depthWrite
	}
}

// WithTexture attaches a decoded image texture.
//
// Parameters:
//   - texture: the decoded texture
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexture(texture *common.TextureData) MaterialBuilderOption {
	return func(m *material) {
		m.texture = texture
	}
}

// WithVideo attaches a video source.
//
// Parameters:
//   - video: the video source sampled each frame
//
// Returns:
//   - MaterialBuilderOption: a function that applies the video option to a material
func WithVideo(video VideoSource) MaterialBuilderOption {
	return func(m *material) {
		m.video = video
	}
}
