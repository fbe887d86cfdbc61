package picking

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// Cursor affordances reported to the host.
const (
	CursorDefault = "default"
	CursorPointer = "pointer"
	CursorGrab    = "grab"
)

type gate struct {
	mu     *sync.Mutex
	logger zerolog.Logger

	object     InteractiveObject
	onActivate func()
	enabled    bool
	cursor     string
}

// Gate ray-tests pointer events against the one registered InteractiveObject.
//
// Hovering swaps the object's meshes to the hover material; a pointer-down on the object
// restores its defaults, disables the gate and then calls the activate callback once.
// The gate stays disabled until Enable is called again, so a repeated click cannot
// activate twice.
type Gate interface {
	// Register makes obj the only hit-test target. The gate starts disabled for it;
	// any hover state on a previously registered object is restored first.
	//
	// Parameters:
	//   - obj: the interactive object
	//   - onActivate: called after a pointer-down hits obj
	Register(obj InteractiveObject, onActivate func())

	// Enable starts hit-testing the registered object.
	Enable()

	// Disable stops hit-testing and restores the object's default materials.
	Disable()

	// Enabled reports whether hit-testing is active.
	Enabled() bool

	// Object returns the registered object, or nil.
	Object() InteractiveObject

	// OnPointerMove updates hover state for a pointer position.
	//
	// Parameters:
	//   - ndc: pointer position in [-1, 1], +y up
	//   - cam: the active camera
	//
	// Returns:
	//   - bool: true if the pointer is over the object
	OnPointerMove(ndc mgl32.Vec2, cam camera.Camera) bool

	// OnPointerDown activates the object when the pointer hits it.
	//
	// Parameters:
	//   - ndc: pointer position in [-1, 1], +y up
	//   - cam: the active camera
	//
	// Returns:
	//   - bool: true if the activate callback ran
	OnPointerDown(ndc mgl32.Vec2, cam camera.Camera) bool

	// Cursor returns the cursor affordance for the current hover state.
	Cursor() string
}

var _ Gate = &gate{}

// NewGate creates an empty, disabled gate.
//
// Parameters:
//   - options: functional options to configure the gate
//
// Returns:
//   - Gate: the new gate
func NewGate(options ...GateBuilderOption) Gate {
	g := &gate{
		mu:     &sync.Mutex{},
		logger: zerolog.Nop(),
		cursor: CursorDefault,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *gate) Register(obj InteractiveObject, onActivate func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
	g.object = obj
	g.onActivate = onActivate
	g.enabled = false
	if obj != nil {
		g.logger.Debug().Str("object", obj.Name()).Msg("hit-test target registered")
	}
}

func (g *gate) Enable() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.object == nil {
		return
	}
	g.enabled = true
}

func (g *gate) Disable() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
	g.enabled = false
}

func (g *gate) Enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled
}

func (g *gate) Object() InteractiveObject {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.object
}

func (g *gate) OnPointerMove(ndc mgl32.Vec2, cam camera.Camera) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.enabled || g.object == nil {
		return false
	}
	if _, hit := g.object.Intersect(cam.Ray(ndc)); hit {
		g.object.ApplyHover()
		g.cursor = CursorPointer
		return true
	}
	g.reset()
	return false
}

func (g *gate) OnPointerDown(ndc mgl32.Vec2, cam camera.Camera) bool {
	g.mu.Lock()
	if !g.enabled || g.object == nil {
		g.mu.Unlock()
		return false
	}
	d, hit := g.object.Intersect(cam.Ray(ndc))
	if !hit {
		g.mu.Unlock()
		return false
	}
	g.reset()
	g.enabled = false
	name := g.object.Name()
	activate := g.onActivate
	g.mu.Unlock()

	g.logger.Debug().Str("object", name).Float32("distance", d).Msg("object activated")
	if activate != nil {
		activate()
	}
	return true
}

func (g *gate) Cursor() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cursor
}

// reset clears hover state. Caller must hold the mutex.
func (g *gate) reset() {
	if g.object != nil {
		g.object.RestoreDefaults()
	}
	g.cursor = CursorDefault
}
