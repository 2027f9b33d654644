package programs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFragmentPath is the fragment shader read at startup, relative to the
// working directory.
const DefaultFragmentPath = "mandelbrot.frag"

var ErrEmptyShader = errors.New("shader source is empty")

//go:embed default.vert
var defaultVertexShader string

// Program is the source of a vertex and fragment shader pair, ready to be
// compiled and linked by the GPU.
type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
}

// Load reads the fragment shader at path and pairs it with the default vertex
// shader, which stretches a [0,1] quad over the whole viewport.
func Load(path string) (Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Program{}, fmt.Errorf("reading fragment shader: %w", err)
	}

	if strings.TrimSpace(string(src)) == "" {
		return Program{}, fmt.Errorf("%v: %w", path, ErrEmptyShader)
	}

	return Program{
		Name:           strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		VertexShader:   defaultVertexShader,
		FragmentShader: string(src),
	}, nil
}
