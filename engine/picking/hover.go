package picking

import "github.com/Carmen-Shannon/oxy-showcase/engine/material"

// HoverColor is the highlight tint applied to hovered objects.
const HoverColor = 0x00ff00

// NewHoverMaterial creates the shared translucent highlight material.
//
// Returns:
//   - material.Material: a basic green material at half opacity that does not write depth
func NewHoverMaterial() material.Material {
	return material.NewMaterial(
		material.WithName("hover"),
		material.WithHexColor(HoverColor),
		material.WithOpacity(0.5),
		material.WithDepthWrite(false),
	)
}
