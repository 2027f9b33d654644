package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glmona/programs"
)

const (
	defaultZoom      = 1
	defaultLineWidth = 0.001
	defaultFadeWidth = 0.001

	// diagnosticInterval is how many frames pass between frame count log lines.
	diagnosticInterval = 1000
)

// RenderState is the view state behind each draw.
type RenderState struct {
	// Width and Height are the logical resolution given to the shader.
	Width, Height int
	// Zoom scales the logical resolution; positive values multiply it and
	// others divide it by |Zoom|+1.
	Zoom int

	Frame int

	DrawJulia      bool
	DrawDerivative bool
	Paused         bool

	LineWidth float64
	FadeWidth float64
}

func newRenderState(zoom int) RenderState {
	return RenderState{
		Zoom:      zoom,
		LineWidth: defaultLineWidth,
		FadeWidth: defaultFadeWidth,
	}
}

// scale applies zoom to a window dimension.
func scale(n, zoom int) int {
	if zoom > 0 {
		return n * zoom
	}
	return n / (-zoom + 1)
}

func (s RenderState) uniforms() programs.Uniforms {
	return programs.Uniforms{
		Resolution:     mgl32.Vec2{float32(s.Width), float32(s.Height)},
		Time:           float32(s.Frame),
		DrawJulia:      s.DrawJulia,
		DrawDerivative: s.DrawDerivative,
		LineWidth:      float32(s.LineWidth),
		FadeWidth:      float32(s.FadeWidth),
	}
}
