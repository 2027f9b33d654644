// Package render drives the fractal shader from window events.
//
// A Controller owns the RenderState and implements FrameDriver, the set of
// callbacks an event loop makes. It never touches OpenGL or the window system
// directly; those sit behind the GPU and Window interfaces so the controller
// can run against fakes.
package render

import (
	"image"

	"github.com/stewi1014/glmona/input"
	"github.com/stewi1014/glmona/programs"
)

// GPU is the graphics state a Controller draws with.
type GPU interface {
	// Load compiles and links p and resolves its uniform locations.
	// A GPU holds a single program for its lifetime.
	Load(p programs.Program) error
	EnableMultisample()
	Viewport(width, height int)
	// Bind makes the loaded program current.
	Bind()
	SetUniforms(u programs.Uniforms)
	// DrawQuad draws the unit quad, which the vertex stage stretches over the viewport.
	DrawQuad()
	Flush()
	// ReadPixels reads the framebuffer in GL row order, bottom row first.
	ReadPixels(width, height int) (*image.RGBA, error)
}

// Window is the part of the window system a Controller needs.
type Window interface {
	FramebufferSize() (width, height int)
	PostRedisplay()
	ToggleFullscreen()
	RequestClose()
}

// FrameDriver receives event loop callbacks, one at a time.
type FrameDriver interface {
	OnIdle()
	OnDraw()
	OnKey(k input.Key)
	OnResize(width, height int)
}

var (
	_ FrameDriver   = (*Controller)(nil)
	_ input.Actions = (*Controller)(nil)
)
