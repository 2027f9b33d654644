package render

import (
	"fmt"
	"log"

	"github.com/stewi1014/glmona/input"
	"github.com/stewi1014/glmona/programs"
)

// Options configures a Controller.
type Options struct {
	Zoom int
	// SnapshotDir is where Snapshot writes images.
	SnapshotDir string
	// Logger receives the periodic frame count and snapshot results.
	Logger *log.Logger
}

// DefaultOptions returns zoom 1, snapshots in the working directory and the default logger.
func DefaultOptions() Options {
	return Options{
		Zoom:        defaultZoom,
		SnapshotDir: ".",
		Logger:      log.Default(),
	}
}

// New loads program onto gpu and returns a Controller sized to a window of
// width by height.
func New(
	gpu GPU,
	window Window,
	program programs.Program,
	width, height int,
	opts Options,
) (*Controller, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.SnapshotDir == "" {
		opts.SnapshotDir = "."
	}

	if err := gpu.Load(program); err != nil {
		return nil, fmt.Errorf("loading program %v: %w", program.Name, err)
	}

	c := &Controller{
		gpu:         gpu,
		window:      window,
		log:         opts.Logger,
		snapshotDir: opts.SnapshotDir,
		state:       newRenderState(opts.Zoom),
	}
	c.keys = input.NewDispatcher(c)

	gpu.EnableMultisample()
	c.Resize(width, height)

	return c, nil
}

// Controller drives the fractal program from window and key events.
type Controller struct {
	gpu    GPU
	window Window
	keys   *input.Dispatcher
	log    *log.Logger

	snapshotDir string

	state RenderState
}

// State returns a copy of the current state.
func (c *Controller) State() RenderState {
	return c.state
}

// Resize sets the logical resolution from the reported window size.
// The viewport always follows the real framebuffer, which is asked for
// separately so it stays correct regardless of zoom.
func (c *Controller) Resize(width, height int) {
	c.state.Width = scale(width, c.state.Zoom)
	c.state.Height = scale(height, c.state.Zoom)

	c.gpu.Viewport(c.window.FramebufferSize())
}

func (c *Controller) Draw() {
	c.gpu.Bind()
	c.gpu.SetUniforms(c.state.uniforms())
	c.gpu.DrawQuad()
	c.gpu.Flush()

	if c.state.Paused {
		return
	}

	c.state.Frame++
	if c.state.Frame%diagnosticInterval == 0 {
		c.log.Println("frame", c.state.Frame)
	}
}

func (c *Controller) ToggleJulia()      { c.state.DrawJulia = !c.state.DrawJulia }
func (c *Controller) ToggleDerivative() { c.state.DrawDerivative = !c.state.DrawDerivative }
func (c *Controller) TogglePause()      { c.state.Paused = !c.state.Paused }

func (c *Controller) AdjustLineWidth(factor float64) {
	c.state.LineWidth *= factor
}

func (c *Controller) AdjustFadeWidth(factor float64) {
	c.state.FadeWidth *= factor
}

func (c *Controller) Quit() {
	c.window.RequestClose()
}

func (c *Controller) ToggleFullscreen() {
	c.window.ToggleFullscreen()
}

func (c *Controller) OnIdle() {
	c.window.PostRedisplay()
}

func (c *Controller) OnDraw() {
	c.Draw()
}

func (c *Controller) OnKey(k input.Key) {
	c.keys.Dispatch(k)
}

func (c *Controller) OnResize(width, height int) {
	c.Resize(width, height)
}
