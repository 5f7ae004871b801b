package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/vector"

	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Canvas is an in-memory RGBA Surface rasterised with x/image/vector.
// Face coordinates are multiplied by Scale, then shifted by Offset.
type Canvas struct {
	Scale  float64
	Offset image.Point

	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas allocates a width x height canvas.
func NewCanvas(width, height int, scale float64) *Canvas {
	return &Canvas{
		Scale: scale,
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		z:     vector.NewRasterizer(width, height),
	}
}

// Image exposes the pixels painted so far.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(pts []engine.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.begin()
	x, y := c.xy(pts[0])
	c.z.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = c.xy(p)
		c.z.LineTo(x, y)
	}
	c.z.ClosePath()
	c.flush(col)
}

// StrokePath draws width-wide segments through pts with round joins and
// caps. closed adds the segment from the last point back to the first.
func (c *Canvas) StrokePath(pts []engine.Point, closed bool, width float64, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	half := width * c.Scale / 2

	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		ax, ay := c.xy(pts[i])
		bx, by := c.xy(pts[(i+1)%len(pts)])
		c.segment(ax, ay, bx, by, float32(half), col)
	}
	for _, p := range pts {
		x, y := c.xy(p)
		c.disc(x, y, float32(half), col)
	}
}

// FillCircle fills a disc of radius (face units) around center.
func (c *Canvas) FillCircle(center engine.Point, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	x, y := c.xy(center)
	c.disc(x, y, float32(radius*c.Scale), col)
}

// segment fills the quad covering a stroke from a to b.
func (c *Canvas) segment(ax, ay, bx, by, half float32, col color.Color) {
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	nx, ny := -dy/length*half, dx/length*half

	c.begin()
	c.z.MoveTo(ax+nx, ay+ny)
	c.z.LineTo(bx+nx, by+ny)
	c.z.LineTo(bx-nx, by-ny)
	c.z.LineTo(ax-nx, ay-ny)
	c.z.ClosePath()
	c.flush(col)
}

// disc fills a circle built from four cubic arcs.
func (c *Canvas) disc(cx, cy, r float32, col color.Color) {
	if r <= 0 {
		return
	}
	k := r * kappa

	c.begin()
	c.z.MoveTo(cx+r, cy)
	c.z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	c.z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	c.z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	c.z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	c.z.ClosePath()
	c.flush(col)
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
}

func (c *Canvas) flush(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// xy maps a face point to the centre of its pixel on the canvas.
func (c *Canvas) xy(p engine.Point) (float32, float32) {
	x := (float64(p.X)+0.5)*c.Scale + float64(c.Offset.X)
	y := (float64(p.Y)+0.5)*c.Scale + float64(c.Offset.Y)
	return float32(x), float32(y)
}

// RenderFitted paints face centred on a width x height canvas, scaled to
// the shorter edge.
func RenderFitted(face engine.Face, p Palette, width, height int) *image.RGBA {
	width, height = max(width, 1), max(height, 1)
	size := min(width, height)

	c := NewCanvas(width, height, float64(size)/config.FaceSize)
	c.Offset = image.Pt((width-size)/2, (height-size)/2)
	Paint(c, face, p)
	return c.Image()
}

// RenderImage paints face on a fresh size x size canvas.
func RenderImage(face engine.Face, p Palette, size int) *image.RGBA {
	if size <= 0 {
		size = config.FaceSize
	}
	c := NewCanvas(size, size, float64(size)/config.FaceSize)
	Paint(c, face, p)
	return c.Image()
}

// EncodePNG renders face and encodes it as PNG.
func EncodePNG(face engine.Face, p Palette, size int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, RenderImage(face, p, size)); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPNGEncode, err)
	}
	return buf.Bytes(), nil
}
