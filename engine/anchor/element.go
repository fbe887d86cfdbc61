package anchor

import "sync"

// Element is the 2D visual attached to a hotspot, positioned in viewport-centered pixels.
type Element interface {
	SetTransform(x, y float32)
	SetVisible(visible bool)
	Remove()
}

// Marker is a headless Element that records the last state it was given.
// Hosts without a DOM-like overlay use it and read its state when drawing.
type Marker struct {
	mu      sync.Mutex
	x, y    float32
	visible bool
	removed bool
}

var _ Element = &Marker{}

// NewMarker creates a hidden marker at the viewport center.
func NewMarker() *Marker {
	return &Marker{}
}

func (m *Marker) SetTransform(x, y float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.x, m.y = x, y
}

func (m *Marker) SetVisible(visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = visible && !m.removed
}

func (m *Marker) Remove() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = true
	m.visible = false
}

// Position returns the last transform.
func (m *Marker) Position() (float32, float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.x, m.y
}

// Shown reports whether the marker is currently displayed.
func (m *Marker) Shown() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}

// Removed reports whether Remove was called.
func (m *Marker) Removed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removed
}
