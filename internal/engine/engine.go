package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// Renderer is the "render now" entry point of the core: it turns a wall
// clock instant into a complete Face.
//
// The layout may be replaced while another goroutine renders; each frame
// uses one layout throughout.
type Renderer struct {
	Clock Clock // Interface for time mocking.

	builder atomic.Pointer[Builder]
}

// NewRenderer creates a Renderer reading the real clock.
func NewRenderer(layout Layout) *Renderer {
	r := &Renderer{Clock: RealClock{}}
	r.SetLayout(layout)
	return r
}

// Layout returns the layout used for the next frame.
func (r *Renderer) Layout() Layout {
	return r.builder.Load().Layout
}

// SetLayout replaces the layout for subsequent frames.
func (r *Renderer) SetLayout(layout Layout) {
	r.builder.Store(NewBuilder(layout))
}

// RenderNow renders the face for the Renderer's current clock reading.
func (r *Renderer) RenderNow() (Face, error) {
	return r.Render(r.Clock.Now())
}

// Render decomposes now and builds the geometry of every part.
// Projector errors keep their kind (errors.Is ErrInvalidPeriod); the
// caller decides whether to skip the frame.
func (r *Renderer) Render(now time.Time) (Face, error) {
	t := Decompose(MillisOfDay(now))

	face, err := r.builder.Load().Build(t)
	if err != nil {
		return Face{}, fmt.Errorf("%s: %w", config.ErrRenderFrame, err)
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug(config.MsgFrameRendered,
			config.LogKeyComponent, config.CompEngine,
			slog.Group(config.LogKeyDial,
				slog.Float64(config.LogKeyHours, t.Hours),
				slog.Float64(config.LogKeyMinutes, t.Minutes),
				slog.Float64(config.LogKeySeconds, t.Seconds),
			),
			config.LogKeyShapes, len(face.Shapes),
		)
	}
	return face, nil
}
