package anchor

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// ScreenPosition is a projected point in pixels relative to the viewport center, +y down.
type ScreenPosition struct {
	X       float32
	Y       float32
	Visible bool
}

type projector struct {
	mu      *sync.Mutex
	width   int
	height  int
	frustum common.Frustum
}

// Projector maps world points to viewport-centered screen coordinates.
// The frustum used for the visibility test is reused between calls.
type Projector interface {
	// SetViewport sets the viewport size in pixels. Takes effect on the next Project.
	//
	// Parameters:
	//   - width: viewport width
	//   - height: viewport height
	SetViewport(width, height int)

	// Viewport returns the viewport size in pixels.
	//
	// Returns:
	//   - int: width
	//   - int: height
	Viewport() (int, int)

	// Project transforms point through the camera. X and Y are NDC scaled by half the viewport,
	// with Y flipped so that +y points down the screen. Visible is true only when the point is
	// inside the camera frustum and not coincident with the camera position.
	//
	// Parameters:
	//   - point: world-space point
	//   - cam: the active camera
	//
	// Returns:
	//   - ScreenPosition: the projected position and visibility
	Project(point mgl32.Vec3, cam camera.Camera) ScreenPosition
}

var _ Projector = &projector{}

// NewProjector creates a Projector for a viewport of the given size.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - Projector: the new projector
func NewProjector(width, height int) Projector {
	return &projector{
		mu:     &sync.Mutex{},
		width:  width,
		height: height,
	}
}

func (p *projector) SetViewport(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = width
	p.height = height
}

func (p *projector) Viewport() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

func (p *projector) Project(point mgl32.Vec3, cam camera.Camera) ScreenPosition {
	viewProj := cam.ViewProjectionMatrix()
	eye := cam.Position()

	p.mu.Lock()
	defer p.mu.Unlock()

	clip := viewProj.Mul4x1(point.Vec4(1))
	if clip[3] == 0 {
		return ScreenPosition{}
	}
	ndc := clip.Vec3().Mul(1 / clip[3])

	p.frustum.SetFromMatrix(viewProj)
	return ScreenPosition{
		X:       ndc[0] * float32(p.width) / 2,
		Y:       -ndc[1] * float32(p.height) / 2,
		Visible: p.frustum.ContainsPoint(point) && point.Sub(eye).Len() > 0,
	}
}
