package ui

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-clock/internal/engine"
	"github.com/tartampluch/go-clock/internal/render"
)

// clockFaceMinSize keeps the dial legible when the window shrinks.
const clockFaceMinSize = 200

// ClockFace is a widget that paints the most recent engine.Face.
// SetFace may be called from any goroutine; Refresh must run on the
// Fyne thread.
type ClockFace struct {
	widget.BaseWidget

	palette render.Palette

	mu   sync.RWMutex
	face engine.Face
}

// NewClockFace creates an empty dial painted with palette.
func NewClockFace(palette render.Palette) *ClockFace {
	c := &ClockFace{palette: palette}
	c.ExtendBaseWidget(c)
	return c
}

// SetFace stores the frame to paint on the next refresh.
func (c *ClockFace) SetFace(f engine.Face) {
	c.mu.Lock()
	c.face = f
	c.mu.Unlock()
}

// Face returns the frame currently displayed.
func (c *ClockFace) Face() engine.Face {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.face
}

// CreateRenderer implements fyne.Widget.
func (c *ClockFace) CreateRenderer() fyne.WidgetRenderer {
	raster := canvas.NewRaster(c.draw)
	raster.SetMinSize(fyne.NewSize(clockFaceMinSize, clockFaceMinSize))
	return widget.NewSimpleRenderer(raster)
}

// draw is the raster generator; w and h are in device pixels.
func (c *ClockFace) draw(w, h int) image.Image {
	return render.RenderFitted(c.Face(), c.palette, w, h)
}
