package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Snapshot saves the current framebuffer as a PNG in the snapshot directory.
// Errors are logged; a failed snapshot leaves no file behind.
func (c *Controller) Snapshot() {
	name, err := c.saveSnapshot()
	if err != nil {
		c.log.Println("snapshot failed:", err)
		return
	}
	c.log.Println("saved", name)
}

func (c *Controller) saveSnapshot() (name string, err error) {
	width, height := c.window.FramebufferSize()
	img, err := c.gpu.ReadPixels(width, height)
	if err != nil {
		return "", fmt.Errorf("reading framebuffer: %w", err)
	}
	flipOpaque(img)

	name = filepath.Join(c.snapshotDir, fmt.Sprintf("glmona-%d.png", c.state.Frame))
	file, err := os.Create(name)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(file.Name())
		}
	}()

	if err = png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding %v: %w", name, err)
	}
	return name, nil
}

// flipOpaque turns a bottom-up GL readback into a top-down image and drops
// its alpha, which the window's RGB framebuffer leaves undefined.
func flipOpaque(img *image.RGBA) {
	b := img.Bounds()
	rowLen := b.Dx() * 4
	tmp := make([]byte, rowLen)

	for top, bottom := 0, b.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := img.Pix[top*img.Stride : top*img.Stride+rowLen]
		u := img.Pix[bottom*img.Stride : bottom*img.Stride+rowLen]
		copy(tmp, t)
		copy(t, u)
		copy(u, tmp)
	}

	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
}
