package common

// Virtual key codes handled by the host window.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyEsc = 256 // Escape key (GLFW)
	KeyP   = 80  // P key (ASCII)
)
