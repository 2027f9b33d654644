package gpu

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stewi1014/glmona/programs"
)

type recordingSetter struct {
	calls []string
}

func (r *recordingSetter) Uniform1i(loc, v int32) {
	r.calls = append(r.calls, fmt.Sprintf("1i(%d, %d)", loc, v))
}

func (r *recordingSetter) Uniform1f(loc int32, v float32) {
	r.calls = append(r.calls, fmt.Sprintf("1f(%d, %g)", loc, v))
}

func (r *recordingSetter) Uniform2f(loc int32, x, y float32) {
	r.calls = append(r.calls, fmt.Sprintf("2f(%d, %g, %g)", loc, x, y))
}

var allLocations = map[string]int32{
	"resolution":      0,
	"time":            1,
	"draw_julia":      2,
	"draw_derivative": 3,
	"line_width":      4,
	"fade_width":      5,
}

func TestSetUniforms(t *testing.T) {
	tests := []struct {
		name      string
		locations map[string]int32
		uniforms  programs.Uniforms
		want      []string
	}{
		{
			name:      "all active",
			locations: allLocations,
			uniforms: programs.Uniforms{
				Resolution:     mgl32.Vec2{960, 540},
				Time:           42,
				DrawJulia:      true,
				DrawDerivative: false,
				LineWidth:      0.5,
				FadeWidth:      0.25,
			},
			want: []string{
				"2f(0, 960, 540)",
				"1f(1, 42)",
				"1i(2, 1)",
				"1i(3, 0)",
				"1f(4, 0.5)",
				"1f(5, 0.25)",
			},
		},
		{
			name: "inactive uniforms skipped",
			locations: map[string]int32{
				"resolution":      7,
				"time":            -1,
				"draw_julia":      -1,
				"draw_derivative": 3,
				"line_width":      -1,
				"fade_width":      -1,
			},
			uniforms: programs.Uniforms{
				Resolution:     mgl32.Vec2{1, 2},
				Time:           3,
				DrawDerivative: true,
			},
			want: []string{
				"2f(7, 1, 2)",
				"1i(3, 1)",
			},
		},
		{
			name:      "nothing resolved",
			locations: map[string]int32{},
			uniforms:  programs.Uniforms{Time: 1},
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setter := &recordingSetter{}
			d := &Device{uniformLocations: tt.locations, setter: setter}
			d.SetUniforms(tt.uniforms)
			if diff := cmp.Diff(tt.want, setter.calls); diff != "" {
				t.Errorf("SetUniforms calls (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetUniforms_CoversEveryName(t *testing.T) {
	setter := &recordingSetter{}
	d := &Device{uniformLocations: allLocations, setter: setter}
	d.SetUniforms(programs.Uniforms{})
	if got, want := len(setter.calls), len(programs.UniformNames()); got != want {
		t.Errorf("got %v uploads, want one per uniform (%v)", got, want)
	}
}
