// Package render paints clock faces onto a drawing surface.
//
// The engine produces geometry only; everything about colors, stroke
// widths and pixels lives here.
package render

import (
	"image/color"

	"github.com/tartampluch/go-clock/internal/engine"
)

// Palette is the immutable styling of a face. Build it once with
// DefaultPalette (or a literal) and pass it to Paint.
type Palette struct {
	Background  color.NRGBA
	Tick        color.NRGBA
	HandFill    color.NRGBA // dark fill of the tapered hands
	HandOutline color.NRGBA // highlight stroked over the fill
	SecondHand  color.NRGBA
	Hub         color.NRGBA

	OutlineWidth float64
	LineWidth    float64 // minute hand in line style
	SecondWidth  float64
}

// DefaultPalette mirrors the classic grey dial with black marks.
func DefaultPalette() Palette {
	return Palette{
		Background:   color.NRGBA{R: 0xbe, G: 0xbe, B: 0xbe, A: 0xff},
		Tick:         color.NRGBA{A: 0xff},
		HandFill:     color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		HandOutline:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		SecondHand:   color.NRGBA{R: 0xc0, G: 0x10, B: 0x10, A: 0xff},
		Hub:          color.NRGBA{R: 0xc0, G: 0x10, B: 0x10, A: 0xff},
		OutlineWidth: 2,
		LineWidth:    6,
		SecondWidth:  2,
	}
}

// fillColor returns the fill for a part.
func (p Palette) fillColor(part engine.Part) color.NRGBA {
	switch part {
	case engine.PartTick:
		return p.Tick
	case engine.PartHub:
		return p.Hub
	case engine.PartSecondHand:
		return p.SecondHand
	default:
		return p.HandFill
	}
}

// strokeStyle returns the color and width used to stroke a shape.
func (p Palette) strokeStyle(s engine.Shape) (color.NRGBA, float64) {
	switch {
	case s.Part == engine.PartSecondHand:
		return p.SecondHand, p.SecondWidth
	case s.Primitive == engine.PrimitiveLine:
		return p.HandFill, p.LineWidth
	case s.Part == engine.PartTick:
		return p.Tick, p.OutlineWidth
	default:
		return p.HandOutline, p.OutlineWidth
	}
}
