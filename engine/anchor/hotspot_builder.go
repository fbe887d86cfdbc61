package anchor

import "github.com/go-gl/mathgl/mgl32"

// HotspotBuilderOption is a functional option for configuring a Hotspot during construction.
type HotspotBuilderOption func(*hotspot)

// WithOffset shifts the tracked point away from the anchor in world space.
//
// Parameters:
//   - offset: world-space offset
//
// Returns:
//   - HotspotBuilderOption: a function that applies the offset
func WithOffset(offset mgl32.Vec3) HotspotBuilderOption {
	return func(h *hotspot) {
		h.offset = offset
	}
}

// WithElement attaches the visual the hotspot drives. Defaults to a headless Marker.
func WithElement(e Element) HotspotBuilderOption {
	return func(h *hotspot) {
		h.element = e
	}
}

// WithHitRadius sets the pointer tolerance in pixels.
func WithHitRadius(radius float32) HotspotBuilderOption {
	return func(h *hotspot) {
		if radius > 0 {
			h.hitRadius = radius
		}
	}
}

// WithEnabled sets whether the hotspot starts tracking.
func WithEnabled(enabled bool) HotspotBuilderOption {
	return func(h *hotspot) {
		h.enabled = enabled
	}
}
