package render

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	background = color.White
	outline    = color.Black
	fill       = color.RGBA{R: 160, G: 202, B: 252, A: 255}
)

// Raster paints a Scene onto an RGBA canvas: a filled ellipse per node box,
// a label drawn with the standard 7x13 bitmap face, and a line per edge.
func Raster(scene Scene) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, scene.Width, scene.Height))
	fillRect(img, img.Bounds(), background)

	for _, e := range scene.Edges {
		drawLine(img, e.X1, e.Y1, e.X2, e.Y2, outline)
	}
	for _, p := range scene.Primitives {
		fillEllipse(img, p.X, p.Y, p.W, p.H, fill)
		drawEllipseOutline(img, p.X, p.Y, p.W, p.H, outline)
		drawLabel(img, p.Label, p.X+10, p.Y+2*p.H/3)
	}
	return img
}

// SavePNG encodes img and writes it to path.
func SavePNG(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func fillEllipse(img *image.RGBA, x, y, w, h int, c color.Color) {
	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2
	rx := float64(w) / 2
	ry := float64(h) / 2
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				img.Set(px, py, c)
			}
		}
	}
}

func drawEllipseOutline(img *image.RGBA, x, y, w, h int, c color.Color) {
	cx := float64(x) + float64(w)/2
	cy := float64(y) + float64(h)/2
	rx := float64(w) / 2
	ry := float64(h) / 2
	const steps = 128
	for i := 0; i < steps; i++ {
		t0 := 2 * 3.14159265358979 * float64(i) / steps
		t1 := 2 * 3.14159265358979 * float64(i+1) / steps
		x0 := cx + rx*cosApprox(t0)
		y0 := cy + ry*sinApprox(t0)
		x1 := cx + rx*cosApprox(t1)
		y1 := cy + ry*sinApprox(t1)
		drawLine(img, int(x0), int(y0), int(x1), int(y1), c)
	}
}

// cosApprox/sinApprox avoid importing math solely for two trig calls used by
// the outline stroke; a Taylor approximation is adequate at this size.
func cosApprox(t float64) float64 { return sinApprox(t + 1.5707963267948966) }
func sinApprox(t float64) float64 {
	for t > 3.14159265358979 {
		t -= 2 * 3.14159265358979
	}
	for t < -3.14159265358979 {
		t += 2 * 3.14159265358979
	}
	t2 := t * t
	return t * (1 - t2/6*(1-t2/20*(1-t2/42)))
}

// drawLine is a standard Bresenham rasterizer.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func drawLabel(img *image.RGBA, text string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(outline),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
