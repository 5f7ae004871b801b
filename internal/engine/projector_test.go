package engine_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/engine"
)

func TestProject_InvalidPeriod(t *testing.T) {
	for _, period := range []float64{0, -1, -60, math.Inf(-1), math.NaN()} {
		_, err := engine.Project(3, period, 100)
		assert.ErrorIs(t, err, engine.ErrInvalidPeriod, "period %v", period)
	}
}

func TestProject_CardinalPoints(t *testing.T) {
	tests := []struct {
		name      string
		direction float64
		wantDX    int
		wantDY    int
	}{
		{"Twelve", 0, 0, -100},
		{"Three", 3, 100, 0},
		{"Six", 6, 0, 100},
		{"Nine", 9, -100, 0},
		{"FullTurn", 12, 0, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, err := engine.Project(tt.direction, 12, 100)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantDX, off.DX, 1)
			assert.InDelta(t, tt.wantDY, off.DY, 1)
		})
	}
}

func TestProject_KnownOffsets(t *testing.T) {
	off, err := engine.Project(3, 12, 300)
	require.NoError(t, err)
	assert.True(t, off.DX >= 299 && off.DX <= 300, "DX=%d", off.DX)
	assert.InDelta(t, 0, off.DY, 1)

	off, err = engine.Project(7.5, 12, 100)
	require.NoError(t, err)
	assert.True(t, off.DX >= -73 && off.DX <= -70, "DX=%d", off.DX)
	assert.True(t, off.DY >= 70 && off.DY <= 73, "DY=%d", off.DY)
}

func TestProject_Magnitude(t *testing.T) {
	periods := []float64{12, 60, 7}
	radii := []float64{0, 1, 25, -25, 100, 190, 270}

	for _, p := range periods {
		for _, r := range radii {
			for d := -p; d <= 2*p; d += p / 17 {
				off, err := engine.Project(d, p, r)
				require.NoError(t, err)

				mag := math.Hypot(float64(off.DX), float64(off.DY))
				assert.GreaterOrEqual(t, mag, math.Abs(r)-1, "d=%v p=%v r=%v", d, p, r)
				assert.LessOrEqual(t, mag, math.Abs(r)+1, "d=%v p=%v r=%v", d, p, r)
			}
		}
	}
}

func TestProject_NegativeRadiusMirrors(t *testing.T) {
	pos, err := engine.Project(2, 12, 50)
	require.NoError(t, err)
	neg, err := engine.Project(2, 12, -50)
	require.NoError(t, err)

	assert.InDelta(t, -pos.DX, neg.DX, 1)
	assert.InDelta(t, -pos.DY, neg.DY, 1)
}

func TestPoint_Add(t *testing.T) {
	p := engine.Point{X: 300, Y: 300}.Add(engine.Offset{DX: -4, DY: 12})
	assert.Equal(t, engine.Point{X: 296, Y: 312}, p)
}
