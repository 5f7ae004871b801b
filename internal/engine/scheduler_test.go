package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/engine"
)

func TestScheduler_DeliversFrames(t *testing.T) {
	at := time.Date(2025, 1, 1, 9, 30, 0, 0, time.Local)
	r := engine.NewRenderer(engine.DefaultLayout())
	r.Clock = MockClock{CurrentTime: at}

	frames := make(chan engine.Face, 16)
	s := engine.NewScheduler(r, 5*time.Millisecond, func(f engine.Face) {
		select {
		case frames <- f:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// The first frame arrives before the first tick.
	for i := 0; i < 3; i++ {
		select {
		case f := <-frames:
			assert.InDelta(t, 9.5, f.Time.Hours, 1e-9)
		case <-time.After(2 * time.Second):
			t.Fatal("no frame delivered")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_Retune(t *testing.T) {
	r := engine.NewRenderer(engine.DefaultLayout())

	frames := make(chan struct{}, 64)
	s := engine.NewScheduler(r, time.Hour, func(engine.Face) {
		select {
		case frames <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// Initial frame only; the hourly ticker never fires.
	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatal("no initial frame")
	}

	s.SetInterval(5 * time.Millisecond)

	require.Eventually(t, func() bool {
		select {
		case <-frames:
			return true
		default:
			return false
		}
	}, 2*time.Second, time.Millisecond, "retuned ticker never fired")

	cancel()
	require.NoError(t, <-done)
}

func TestScheduler_SetIntervalNeverBlocks(t *testing.T) {
	s := engine.NewScheduler(engine.NewRenderer(engine.DefaultLayout()), 0, nil)

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			s.SetInterval(time.Duration(i) * time.Millisecond)
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("SetInterval blocked without a running scheduler")
	}
}
