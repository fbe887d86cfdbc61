// package common contains plain types and helpers shared across the showcase engine: math, geometry tests,
// the error taxonomy and decoded asset payloads.
package common

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
)

// TextureData holds decoded RGBA pixel data for an image material.
type TextureData struct {
	// Path is the asset path the texture was decoded from.
	Path string
	// Pixels is the RGBA pixel data, 4 bytes per pixel, row-major.
	Pixels []byte
	// Width is the texture width in pixels.
	Width uint32
	// Height is the texture height in pixels.
	Height uint32
	// FlipY records whether rows should be flipped on upload. Baked textures are authored unflipped.
	FlipY bool
}

// DecodeTexture decodes a PNG or JPEG stream into RGBA pixel data.
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - path: asset path used for error reporting
//   - r: the encoded image stream
//
// Returns:
//   - *TextureData: the decoded texture
//   - error: error if decoding fails
func DecodeTexture(path string, r io.Reader) (*TextureData, error) {
	if r == nil {
		return nil, fmt.Errorf("texture %s has no data", path)
	}
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	return &TextureData{
		Path:   path,
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}, nil
}
