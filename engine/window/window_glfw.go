package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	window  *glfw.Window
	running bool
	cursors map[string]*glfw.Cursor
	cursor  string
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
// Every callback only pushes onto the event queue; nothing reaches the orchestrator until the engine drains it.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		window:  win,
		running: true,
		cursors: map[string]*glfw.Cursor{
			"pointer": glfw.CreateStandardCursor(glfw.HandCursor),
			"grab":    glfw.CreateStandardCursor(glfw.HandCursor),
		},
		cursor: "default",
	}
	w.internalWindow = gw

	// Cursor positions arrive in screen coordinates, which differ from the framebuffer on high-DPI displays.
	toNDC := func(x, y float64) mgl32.Vec2 {
		sw, sh := win.GetSize()
		return common.PixelToNDC(x, y, sw, sh)
	}

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		if action == glfw.Press {
			w.queue.Push(common.InputEvent{Kind: common.EventKeyDown, Key: uint32(key)})
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.queue.Push(common.InputEvent{Kind: common.EventScroll, Delta: float32(yoff)})
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := mouseButton(button)
		if !ok {
			return
		}
		ev := common.InputEvent{Button: b, NDC: toNDC(win.GetCursorPos())}
		switch action {
		case glfw.Press:
			ev.Kind = common.EventPointerDown
		case glfw.Release:
			ev.Kind = common.EventPointerUp
		default:
			return
		}
		w.queue.Push(ev)
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.queue.Push(common.InputEvent{Kind: common.EventPointerMove, NDC: toNDC(xpos, ypos)})
	})

	// Framebuffer size is what the renderer and the anchor projector need.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		w.queue.Push(common.InputEvent{Kind: common.EventResize, Width: width, Height: height})
	})

	// The framebuffer may differ from the requested size on high-DPI displays.
	w.width, w.height = win.GetFramebufferSize()
	w.queue.Push(common.InputEvent{Kind: common.EventResize, Width: w.width, Height: w.height})

	return nil
}

// mouseButton maps GLFW buttons onto the host-independent set.
func mouseButton(b glfw.MouseButton) (common.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return common.MouseLeft, true
	case glfw.MouseButtonRight:
		return common.MouseRight, true
	case glfw.MouseButtonMiddle:
		return common.MouseMiddle, true
	}
	return 0, false
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	gw := w.internalWindow.(*glfwWindow)
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformSetCursor swaps the cursor shape when the affordance changes.
func platformSetCursor(w *engineWindow, name string) {
	if w.internalWindow == nil {
		return
	}
	gw := w.internalWindow.(*glfwWindow)
	if gw.cursor == name {
		return
	}
	gw.cursor = name
	// A nil cursor restores the default arrow.
	gw.window.SetCursor(gw.cursors[name])
}

// platformIsRunningCheck returns whether the GLFW window is still active.
// Returns false if the internal window is nil, the running flag is cleared, or GLFW reports ShouldClose.
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the cursors and the GLFW window and terminates the GLFW library.
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	for _, c := range gw.cursors {
		c.Destroy()
	}
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
