package gpu

import (
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stewi1014/glmona/programs"
)

// Load compiles and links program and looks up every uniform it is fed.
// A Device keeps its first program for good; loading again is an error.
func (d *Device) Load(program programs.Program) error {
	if d.program != 0 {
		return ErrProgramLoaded
	}

	vertexShader, err := compileShader(program.VertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(program.FragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	handle, err := linkProgram(vertexShader, fragmentShader)
	if err != nil {
		return err
	}

	d.program = handle
	d.uniformLocations = make(map[string]int32)
	for _, name := range programs.UniformNames() {
		loc := gl.GetUniformLocation(d.program, gl.Str(name+"\x00"))
		if loc < 0 {
			// Unused uniforms are optimised out by the driver.
			log.Printf("uniform %v is not active in %v", name, program.Name)
		}
		d.uniformLocations[name] = loc
	}

	return nil
}

func linkProgram(shaders ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, shader := range shaders {
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(program, l, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}

	for _, shader := range shaders {
		gl.DetachShader(program, shader)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	source += "\x00"
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %v", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}
