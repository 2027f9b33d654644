package programs

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is uploaded to the fragment shader on every draw.
// The uniform tag of each field is the GLSL name it is bound to.
type Uniforms struct {
	Resolution     mgl32.Vec2 `uniform:"resolution"`
	Time           float32    `uniform:"time"`
	DrawJulia      bool       `uniform:"draw_julia"`
	DrawDerivative bool       `uniform:"draw_derivative"`
	LineWidth      float32    `uniform:"line_width"`
	FadeWidth      float32    `uniform:"fade_width"`
}

// UniformNames returns the GLSL names of the Uniforms fields in field order.
func UniformNames() []string {
	t := reflect.TypeOf(Uniforms{})
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		names = append(names, t.Field(i).Tag.Get("uniform"))
	}
	return names
}
