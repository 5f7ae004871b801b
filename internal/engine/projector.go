package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tartampluch/go-clock/internal/config"
)

// ErrInvalidPeriod is returned by Project when the dial period is not
// strictly positive. Callers pass fixed periods, so it signals a
// programming error rather than a condition to retry.
var ErrInvalidPeriod = errors.New(config.ErrInvalidPeriod)

// Offset is a displacement from the dial center in canvas pixels.
// Y grows downwards.
type Offset struct {
	DX, DY int
}

// Project converts a position on a circular dial into a Cartesian offset.
//
// direction is measured in the same unit as period: 3 out of 12 is a
// quarter turn. Zero points to 12 o'clock and angles grow clockwise.
// A negative radius places the point on the opposite side of the center.
func Project(direction, period, radius float64) (Offset, error) {
	// The negated comparison also rejects NaN.
	if !(period > 0) {
		return Offset{}, fmt.Errorf("%w: %v", ErrInvalidPeriod, period)
	}

	angle := 2 * math.Pi * direction / period
	sin, cos := math.Sincos(angle)

	return Offset{
		DX: int(math.Round(radius * sin)),
		DY: int(math.Round(-radius * cos)),
	}, nil
}
