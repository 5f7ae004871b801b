package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// Scheduler is the redraw trigger: it renders a frame on every tick and
// hands it to OnFrame. A failed frame goes to OnError and is skipped.
type Scheduler struct {
	Renderer *Renderer
	OnFrame  func(Face)
	OnError  func(error)

	interval time.Duration
	retune   chan time.Duration
}

// NewScheduler creates a Scheduler ticking every interval.
// Non-positive intervals fall back to config.DefaultTickInterval.
func NewScheduler(r *Renderer, interval time.Duration, onFrame func(Face)) *Scheduler {
	return &Scheduler{
		Renderer: r,
		OnFrame:  onFrame,
		interval: sanitizeInterval(interval),
		retune:   make(chan time.Duration, config.ChannelBufferSize),
	}
}

// SetInterval changes the tick interval of a running scheduler.
// If a change is already pending, the newer value replaces it.
func (s *Scheduler) SetInterval(d time.Duration) {
	d = sanitizeInterval(d)
	for {
		select {
		case s.retune <- d:
			return
		default:
		}
		select {
		case <-s.retune:
		default:
		}
	}
}

// Run renders an initial frame, then one per tick until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompScheduler)

	s.tick()

	current := s.interval
	ticker := time.NewTicker(current)
	defer ticker.Stop()

	log.Info(config.MsgSchedulerStart, config.LogKeyInterval, current)

	for {
		select {
		case <-ctx.Done():
			log.Info(config.MsgSchedulerStop)
			return nil

		case d := <-s.retune:
			if d != current {
				log.Info(config.MsgUpdateTick, config.LogKeyOld, current, config.LogKeyNew, d)
				current = d
				ticker.Reset(current)
			}

		case <-ticker.C:
			s.tick()
		}
	}
}

// tick renders one frame and dispatches it.
func (s *Scheduler) tick() {
	face, err := s.Renderer.RenderNow()
	if err != nil {
		if s.OnError != nil {
			s.OnError(err)
			return
		}
		slog.Error(config.MsgFrameSkipped,
			config.LogKeyComponent, config.CompScheduler,
			config.LogKeyError, err)
		return
	}
	if s.OnFrame != nil {
		s.OnFrame(face)
	}
}

func sanitizeInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return config.DefaultTickInterval
	}
	return d
}
