package gpu

import (
	"errors"
	"testing"

	"github.com/stewi1014/glmona/programs"
)

func TestLoad_Twice(t *testing.T) {
	d := &Device{program: 1}
	err := d.Load(programs.Program{
		Name:           "second",
		VertexShader:   "void main() {}",
		FragmentShader: "void main() {}",
	})
	if !errors.Is(err, ErrProgramLoaded) {
		t.Fatalf("Load on a loaded device = %v, want %v", err, ErrProgramLoaded)
	}
	if d.program != 1 {
		t.Errorf("program handle changed to %v", d.program)
	}
}

func TestReadPixels_InvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative height", 10, -1},
		{"negative both", -3, -3},
	}

	d := &Device{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := d.ReadPixels(tt.width, tt.height)
			if err == nil {
				t.Fatalf("ReadPixels(%v, %v) returned no error", tt.width, tt.height)
			}
			if img != nil {
				t.Errorf("ReadPixels(%v, %v) returned an image", tt.width, tt.height)
			}
		})
	}
}
