package anchor

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultHitRadius is the pointer tolerance around a hotspot, in pixels.
const DefaultHitRadius = 24

type hotspot struct {
	mu *sync.Mutex

	anchor    mgl32.Vec3
	offset    mgl32.Vec3
	hitRadius float32

	projector Projector
	element   Element

	enabled bool
	screen  ScreenPosition
}

// Hotspot keeps a 2D element glued to a 3D anchor point while the camera moves.
type Hotspot interface {
	// Anchor returns the world point the element tracks, offset included.
	//
	// Returns:
	//   - mgl32.Vec3: world-space anchor
	Anchor() mgl32.Vec3

	// Update reprojects the anchor and pushes position and visibility to the element.
	// Does nothing while the hotspot is disabled.
	//
	// Parameters:
	//   - cam: the active camera
	Update(cam camera.Camera)

	// Enable resumes per-tick tracking.
	Enable()

	// Disable stops tracking and hides the element.
	Disable()

	// Enabled reports whether the hotspot is tracking.
	Enabled() bool

	// Visible reports the visibility computed by the last Update.
	Visible() bool

	// Screen returns the position computed by the last Update.
	Screen() ScreenPosition

	// Hit reports whether a pointer at ndc falls on the element. Only an enabled,
	// visible hotspot can be hit.
	//
	// Parameters:
	//   - ndc: pointer position in [-1, 1], +y up
	//
	// Returns:
	//   - bool: true if the pointer is within the hit radius
	Hit(ndc mgl32.Vec2) bool

	// Element returns the attached visual.
	Element() Element
}

var _ Hotspot = &hotspot{}

// NewHotspot creates an enabled hotspot anchored at a world point.
//
// Parameters:
//   - anchor: world-space point, usually a marker node's world position
//   - projector: shared projector carrying the viewport
//   - options: functional options to configure the hotspot
//
// Returns:
//   - Hotspot: the new hotspot
func NewHotspot(anchor mgl32.Vec3, projector Projector, options ...HotspotBuilderOption) Hotspot {
	h := &hotspot{
		mu:        &sync.Mutex{},
		anchor:    anchor,
		hitRadius: DefaultHitRadius,
		projector: projector,
		enabled:   true,
	}
	for _, option := range options {
		option(h)
	}
	if h.element == nil {
		h.element = NewMarker()
	}
	return h
}

func (h *hotspot) Anchor() mgl32.Vec3 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.anchor.Add(h.offset)
}

func (h *hotspot) Update(cam camera.Camera) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.enabled {
		return
	}
	h.screen = h.projector.Project(h.anchor.Add(h.offset), cam)
	h.element.SetTransform(h.screen.X, h.screen.Y)
	h.element.SetVisible(h.screen.Visible)
}

func (h *hotspot) Enable() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.enabled = true
}

func (h *hotspot) Disable() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.enabled = false
	h.screen.Visible = false
	h.element.SetVisible(false)
}

func (h *hotspot) Enabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.enabled
}

func (h *hotspot) Visible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.screen.Visible
}

func (h *hotspot) Screen() ScreenPosition {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.screen
}

func (h *hotspot) Hit(ndc mgl32.Vec2) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.enabled || !h.screen.Visible {
		return false
	}
	w, ht := h.projector.Viewport()
	px := ndc[0] * float32(w) / 2
	py := -ndc[1] * float32(ht) / 2
	d := mgl32.Vec2{px - h.screen.X, py - h.screen.Y}
	return d.Len() <= h.hitRadius
}

func (h *hotspot) Element() Element {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.element
}
