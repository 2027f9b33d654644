package gpu

import (
	"log"
	"reflect"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glmona/programs"
)

var (
	typeVec2    = reflect.TypeOf(mgl32.Vec2{})
	typeFloat32 = reflect.TypeOf(float32(0))
	typeBool    = reflect.TypeOf(false)
)

// uniformSetter is the slice of GL that uniform upload goes through.
type uniformSetter interface {
	Uniform1i(loc, v int32)
	Uniform1f(loc int32, v float32)
	Uniform2f(loc int32, x, y float32)
}

type glUniforms struct{}

func (glUniforms) Uniform1i(loc, v int32)            { gl.Uniform1i(loc, v) }
func (glUniforms) Uniform1f(loc int32, v float32)    { gl.Uniform1f(loc, v) }
func (glUniforms) Uniform2f(loc int32, x, y float32) { gl.Uniform2f(loc, x, y) }

// SetUniforms uploads every field of u to the location resolved for its tag.
// The program must be bound.
func (d *Device) SetUniforms(u programs.Uniforms) {
	v := reflect.ValueOf(u)
	for i := 0; i < v.NumField(); i++ {
		loc, ok := d.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]
		if !ok || loc < 0 {
			continue
		}
		setUniform(d.setter, loc, v.Field(i))
	}
}

func setUniform(s uniformSetter, loc int32, f reflect.Value) {
	switch f.Type() {
	case typeVec2:
		vec := f.Interface().(mgl32.Vec2)
		s.Uniform2f(loc, vec.X(), vec.Y())
	case typeFloat32:
		s.Uniform1f(loc, float32(f.Float()))
	case typeBool:
		var b int32
		if f.Bool() {
			b = 1
		}
		s.Uniform1i(loc, b)
	default:
		log.Printf("unsupported uniform type %v", f.Type())
	}
}
