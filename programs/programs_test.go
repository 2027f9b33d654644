package programs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUniformNames(t *testing.T) {
	want := []string{
		"resolution",
		"time",
		"draw_julia",
		"draw_derivative",
		"line_width",
		"fade_width",
	}
	if diff := cmp.Diff(want, UniformNames()); diff != "" {
		t.Errorf("UniformNames() (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "julia.frag")
	src := "#version 450\nvoid main() {}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", path, err)
	}

	want := Program{
		Name:           "julia",
		VertexShader:   defaultVertexShader,
		FragmentShader: src,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load(%q) (-want +got):\n%s", path, diff)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.frag"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load of missing file returned %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.frag")
	if err := os.WriteFile(path, []byte(" \n\t\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrEmptyShader) {
		t.Errorf("Load of empty file returned %v, want ErrEmptyShader", err)
	}
}

func TestDefaultVertexShader(t *testing.T) {
	if !regexp.MustCompile(`layout\s*\(\s*location\s*=\s*0\s*\)\s*in\s+vec4\s+position`).MatchString(defaultVertexShader) {
		t.Errorf("vertex shader does not take position at location 0:\n%s", defaultVertexShader)
	}
}

// The shipped fragment shader must declare every uniform the renderer uploads.
func TestShippedFragmentShader(t *testing.T) {
	p, err := Load(filepath.Join("..", DefaultFragmentPath))
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range UniformNames() {
		re := regexp.MustCompile(`uniform\s+\w+\s+` + name + `\s*;`)
		if !re.MatchString(p.FragmentShader) {
			t.Errorf("%v does not declare uniform %q", DefaultFragmentPath, name)
		}
	}
}
