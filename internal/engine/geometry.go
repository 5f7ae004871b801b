package engine

import (
	"fmt"

	"github.com/tartampluch/go-clock/internal/config"
)

// Point is an absolute canvas coordinate.
type Point struct {
	X, Y int
}

// Add translates p by an offset.
func (p Point) Add(o Offset) Point {
	return Point{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Part identifies which element of the clock face a shape draws.
// The drawing surface uses it to pick colors and stroke widths.
type Part int

const (
	PartTick Part = iota
	PartHourHand
	PartMinuteHand
	PartSecondHand
	PartHub
)

func (p Part) String() string {
	switch p {
	case PartTick:
		return "tick"
	case PartHourHand:
		return "hour_hand"
	case PartMinuteHand:
		return "minute_hand"
	case PartSecondHand:
		return "second_hand"
	case PartHub:
		return "hub"
	default:
		return fmt.Sprintf("part(%d)", int(p))
	}
}

// Primitive tells the drawing surface how to interpret a shape's points.
type Primitive int

const (
	// PrimitivePolygon is a closed polygon through all points.
	PrimitivePolygon Primitive = iota
	// PrimitiveLine is an open polyline through all points.
	PrimitiveLine
	// PrimitiveCircle is a disc of Radius around Points[0].
	PrimitiveCircle
)

// Shape is one drawable element of the face.
// When both Fill and Stroke are set the surface fills first, then strokes
// the same vertex list.
type Shape struct {
	Part      Part
	Primitive Primitive
	Points    []Point
	Radius    int
	Fill      bool
	Stroke    bool
}

// Face is a complete frame, shapes listed in paint order.
type Face struct {
	Time   DecomposedTime
	Shapes []Shape
}

// MinuteStyle selects how the minute hand is drawn.
type MinuteStyle int

const (
	// MinuteTapered draws a seven-vertex tapered polygon.
	MinuteTapered MinuteStyle = iota
	// MinuteLine draws a single line from the center.
	MinuteLine
)

func (s MinuteStyle) String() string {
	if s == MinuteLine {
		return config.MinuteStyleLine
	}
	return config.MinuteStyleTapered
}

// ParseMinuteStyle maps a preference value to a MinuteStyle.
// Unknown values fall back to MinuteTapered.
func ParseMinuteStyle(s string) MinuteStyle {
	if s == config.MinuteStyleLine {
		return MinuteLine
	}
	return MinuteTapered
}

// Layout holds the fixed dimensions of the face.
type Layout struct {
	Center Point

	HourLength   float64
	MinuteLength float64
	SecondLength float64
	HubRadius    int

	MinuteStyle MinuteStyle
	ShowSeconds bool

	TickInner     float64
	TickOuter     float64
	TickHalfWidth float64 // in hours
}

// DefaultLayout returns the layout of a 600x600 face.
func DefaultLayout() Layout {
	return Layout{
		Center:        Point{X: config.FaceSize / 2, Y: config.FaceSize / 2},
		HourLength:    config.HourHandLength,
		MinuteLength:  config.MinuteHandLength,
		SecondLength:  config.SecondHandLength,
		HubRadius:     config.HubRadius,
		MinuteStyle:   MinuteTapered,
		ShowSeconds:   true,
		TickInner:     config.TickInnerRadius,
		TickOuter:     config.TickOuterRadius,
		TickHalfWidth: config.TickHalfWidth,
	}
}

// vertex is one row of a hand's outline table: an offset from the hand's
// direction and the distance from the center.
type vertex struct {
	offset float64
	radius float64
}

// Builder assembles the vertex lists of the hands and ticks.
type Builder struct {
	Layout Layout
}

// NewBuilder creates a Builder for the given layout.
func NewBuilder(layout Layout) *Builder {
	return &Builder{Layout: layout}
}

// HourHand returns the tapered hour hand polygon, filled and outlined.
func (b *Builder) HourHand(hours float64) (Shape, error) {
	l := b.Layout.HourLength
	table := []vertex{
		{0, -20},
		{-4, 20},
		{-0.1, l},
		{0.1, l},
		{4, 20},
		{0, -20},
	}
	pts, err := b.outline(hours, config.HourPeriod, table)
	if err != nil {
		return Shape{}, fmt.Errorf("%s: %w", PartHourHand, err)
	}
	return Shape{Part: PartHourHand, Primitive: PrimitivePolygon, Points: pts, Fill: true, Stroke: true}, nil
}

// MinuteHand returns the minute hand in the layout's MinuteStyle.
func (b *Builder) MinuteHand(minutes float64) (Shape, error) {
	l := b.Layout.MinuteLength

	if b.Layout.MinuteStyle == MinuteLine {
		pts, err := b.outline(minutes, config.MinutePeriod, []vertex{{0, 0}, {0, l}})
		if err != nil {
			return Shape{}, fmt.Errorf("%s: %w", PartMinuteHand, err)
		}
		return Shape{Part: PartMinuteHand, Primitive: PrimitiveLine, Points: pts, Stroke: true}, nil
	}

	table := []vertex{
		{0, -25},
		{-20, 15},
		{-0.4, l - 15},
		{0, l},
		{0.4, l - 15},
		{20, 15},
		{0, -25},
	}
	pts, err := b.outline(minutes, config.MinutePeriod, table)
	if err != nil {
		return Shape{}, fmt.Errorf("%s: %w", PartMinuteHand, err)
	}
	return Shape{Part: PartMinuteHand, Primitive: PrimitivePolygon, Points: pts, Fill: true, Stroke: true}, nil
}

// SecondHand returns a line from the center to the second hand's tip.
func (b *Builder) SecondHand(seconds float64) (Shape, error) {
	pts, err := b.outline(seconds, config.SecondPeriod, []vertex{{0, 0}, {0, b.Layout.SecondLength}})
	if err != nil {
		return Shape{}, fmt.Errorf("%s: %w", PartSecondHand, err)
	}
	return Shape{Part: PartSecondHand, Primitive: PrimitiveLine, Points: pts, Stroke: true}, nil
}

// Hub returns the filled disc at the center of the face.
func (b *Builder) Hub() Shape {
	return Shape{
		Part:      PartHub,
		Primitive: PrimitiveCircle,
		Points:    []Point{b.Layout.Center},
		Radius:    b.Layout.HubRadius,
		Fill:      true,
	}
}

// Ticks returns one filled quadrilateral per hour position.
func (b *Builder) Ticks() ([]Shape, error) {
	w := b.Layout.TickHalfWidth
	table := []vertex{
		{-w, b.Layout.TickInner},
		{-w, b.Layout.TickOuter},
		{w, b.Layout.TickOuter},
		{w, b.Layout.TickInner},
	}

	ticks := make([]Shape, 0, config.TickCount)
	for h := 0; h < config.TickCount; h++ {
		pts, err := b.outline(float64(h), config.HourPeriod, table)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", PartTick, h, err)
		}
		ticks = append(ticks, Shape{Part: PartTick, Primitive: PrimitivePolygon, Points: pts, Fill: true})
	}
	return ticks, nil
}

// Build assembles a whole frame for t: ticks, hour, minute and second
// hands, then the hub.
func (b *Builder) Build(t DecomposedTime) (Face, error) {
	ticks, err := b.Ticks()
	if err != nil {
		return Face{}, err
	}

	hour, err := b.HourHand(t.Hours)
	if err != nil {
		return Face{}, err
	}
	minute, err := b.MinuteHand(t.Minutes)
	if err != nil {
		return Face{}, err
	}

	shapes := make([]Shape, 0, len(ticks)+4)
	shapes = append(shapes, ticks...)
	shapes = append(shapes, hour, minute)

	if b.Layout.ShowSeconds {
		second, err := b.SecondHand(t.Seconds)
		if err != nil {
			return Face{}, err
		}
		shapes = append(shapes, second)
	}

	shapes = append(shapes, b.Hub())
	return Face{Time: t, Shapes: shapes}, nil
}

// outline projects every row of table around direction and translates the
// result to the layout center.
func (b *Builder) outline(direction, period float64, table []vertex) ([]Point, error) {
	pts := make([]Point, len(table))
	for i, v := range table {
		off, err := Project(direction+v.offset, period, v.radius)
		if err != nil {
			return nil, err
		}
		pts[i] = b.Layout.Center.Add(off)
	}
	return pts, nil
}
