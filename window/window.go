// Package window provides the GLFW window and event loop that drive a
// render.FrameDriver.
package window

import (
	"context"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/glmona/input"
	"github.com/stewi1014/glmona/render"
)

// Samples is the multisample count requested for the framebuffer.
const Samples = 4

var arrowKeys = map[glfw.Key]input.Key{
	glfw.KeyUp:    input.KeyUp,
	glfw.KeyDown:  input.KeyDown,
	glfw.KeyLeft:  input.KeyLeft,
	glfw.KeyRight: input.KeyRight,
}

// New opens a single-buffered, multisampled window with a current
// OpenGL 4.6 core context. glfw.Init must have been called on this thread.
func New(width, height int, title string) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.False)
	glfw.WindowHint(glfw.Samples, Samples)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &Window{
		Window: window,
	}
	w.MakeContextCurrent()

	return w, nil
}

// Window is a GLFW window that implements render.Window.
type Window struct {
	*glfw.Window

	redisplay bool

	// Windowed placement, restored when leaving fullscreen.
	windowedX, windowedY          int
	windowedWidth, windowedHeight int
}

func (w *Window) FramebufferSize() (width, height int) {
	return w.GetFramebufferSize()
}

// PostRedisplay asks the loop to draw on its next iteration.
func (w *Window) PostRedisplay() {
	w.redisplay = true
}

func (w *Window) RequestClose() {
	w.SetShouldClose(true)
}

func (w *Window) ToggleFullscreen() {
	if w.GetMonitor() != nil {
		w.SetMonitor(nil, w.windowedX, w.windowedY, w.windowedWidth, w.windowedHeight, 0)
		return
	}

	w.windowedX, w.windowedY = w.GetPos()
	w.windowedWidth, w.windowedHeight = w.GetSize()

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return
	}
	mode := monitor.GetVideoMode()
	w.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

// Run hands window events to driver until the window is asked to close or
// ctx is done. Callbacks are made one at a time on the calling thread.
func (w *Window) Run(ctx context.Context, driver render.FrameDriver) {
	w.SetCharCallback(charCallback(driver))
	w.SetKeyCallback(keyCallback(driver))
	w.SetFramebufferSizeCallback(framebufferSizeCallback(driver))
	w.SetRefreshCallback(func(*glfw.Window) {
		w.PostRedisplay()
	})

	w.redisplay = true
	for !w.ShouldClose() && ctx.Err() == nil {
		driver.OnIdle()
		if w.redisplay {
			w.redisplay = false
			driver.OnDraw()
		}
		glfw.PollEvents()
	}
}

func charCallback(driver render.FrameDriver) glfw.CharCallback {
	return func(_ *glfw.Window, char rune) {
		driver.OnKey(input.Key(char))
	}
}

// keyCallback forwards arrow keys on press and repeat.
func keyCallback(driver render.FrameDriver) glfw.KeyCallback {
	return func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if k, ok := arrowKeys[key]; ok {
			driver.OnKey(k)
		}
	}
}

// framebufferSizeCallback reports sizes in pixels, not screen coordinates,
// so they stay right on HiDPI displays.
func framebufferSizeCallback(driver render.FrameDriver) glfw.FramebufferSizeCallback {
	return func(_ *glfw.Window, width, height int) {
		driver.OnResize(width, height)
	}
}

var _ render.Window = (*Window)(nil)
