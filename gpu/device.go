// Package gpu implements render.GPU on OpenGL 4.6.
package gpu

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// positionAttrib matches the layout location of position in the vertex shader.
const positionAttrib = 0

var ErrProgramLoaded = errors.New("program already loaded")

// New initialises OpenGL on the current context and uploads the quad.
// With debug set, GL debug output is logged.
func New(debug bool) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl.Init: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	if debug {
		gl.DebugMessageCallback(glDebugMessage, nil)
		gl.Enable(gl.DEBUG_OUTPUT)
	}

	// Corners of [0,1]², drawn as a fan.
	verticies := []float32{
		0, 0,
		0, 1,
		1, 1,
		1, 0,
	}

	d := &Device{setter: glUniforms{}}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verticies)*4, gl.Ptr(verticies), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(positionAttrib)
	gl.VertexAttribPointerWithOffset(positionAttrib, 2, gl.FLOAT, false, 2*4, 0)

	return d, nil
}

// Device owns the GL objects for one program and its full-screen quad.
type Device struct {
	vao uint32
	vbo uint32

	program          uint32
	uniformLocations map[string]int32
	setter           uniformSetter
}

func (d *Device) EnableMultisample() {
	gl.Enable(gl.MULTISAMPLE)
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) Bind() {
	gl.UseProgram(d.program)
}

func (d *Device) DrawQuad() {
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
}

func (d *Device) Flush() {
	gl.Flush()
}

func (d *Device) ReadPixels(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %vx%v", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("glReadPixels: error 0x%x", code)
	}
	return img, nil
}

// Destroy releases the program and quad.
func (d *Device) Destroy() {
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
}
