package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/config"
	"github.com/tartampluch/go-clock/internal/engine"
)

func TestDefaultLayout(t *testing.T) {
	l := engine.DefaultLayout()

	assert.Equal(t, engine.Point{X: 300, Y: 300}, l.Center)
	assert.Equal(t, engine.MinuteTapered, l.MinuteStyle)
	assert.True(t, l.ShowSeconds)
	assert.Less(t, l.HourLength, l.MinuteLength, "hour hand must be the shortest")
	assert.Less(t, l.MinuteLength, l.SecondLength)
	assert.Less(t, l.SecondLength, l.TickInner, "hands must not reach the ticks")
}

func TestBuilder_HourHand(t *testing.T) {
	b := engine.NewBuilder(engine.DefaultLayout())

	// Three o'clock: the tip points right, the tail left.
	hand, err := b.HourHand(3)
	require.NoError(t, err)

	assert.Equal(t, engine.PartHourHand, hand.Part)
	assert.Equal(t, engine.PrimitivePolygon, hand.Primitive)
	assert.True(t, hand.Fill)
	assert.True(t, hand.Stroke)
	require.Len(t, hand.Points, 6)

	tail := hand.Points[0]
	assert.InDelta(t, 280, tail.X, 1)
	assert.InDelta(t, 300, tail.Y, 1)

	for _, tip := range hand.Points[2:4] {
		assert.InDelta(t, 400, tip.X, 1)
	}
	// Closed outline.
	assert.Equal(t, hand.Points[0], hand.Points[5])
}

func TestBuilder_MinuteHand_Tapered(t *testing.T) {
	b := engine.NewBuilder(engine.DefaultLayout())

	hand, err := b.MinuteHand(0)
	require.NoError(t, err)

	assert.Equal(t, engine.PartMinuteHand, hand.Part)
	assert.Equal(t, engine.PrimitivePolygon, hand.Primitive)
	require.Len(t, hand.Points, 7)

	tip := hand.Points[3]
	assert.Equal(t, engine.Point{X: 300, Y: 300 - config.MinuteHandLength}, tip)

	// The wings sit on either side of the shaft.
	assert.Less(t, hand.Points[1].X, 300)
	assert.Greater(t, hand.Points[5].X, 300)
	assert.Equal(t, hand.Points[0], hand.Points[6])
}

func TestBuilder_MinuteHand_Line(t *testing.T) {
	layout := engine.DefaultLayout()
	layout.MinuteStyle = engine.MinuteLine
	b := engine.NewBuilder(layout)

	hand, err := b.MinuteHand(15)
	require.NoError(t, err)

	assert.Equal(t, engine.PrimitiveLine, hand.Primitive)
	assert.False(t, hand.Fill)
	assert.True(t, hand.Stroke)
	require.Len(t, hand.Points, 2)
	assert.Equal(t, layout.Center, hand.Points[0])
	assert.Equal(t, engine.Point{X: 300 + config.MinuteHandLength, Y: 300}, hand.Points[1])
}

func TestBuilder_SecondHandAndHub(t *testing.T) {
	b := engine.NewBuilder(engine.DefaultLayout())

	hand, err := b.SecondHand(30)
	require.NoError(t, err)
	assert.Equal(t, engine.PrimitiveLine, hand.Primitive)
	require.Len(t, hand.Points, 2)
	assert.Equal(t, engine.Point{X: 300, Y: 300 + config.SecondHandLength}, hand.Points[1])

	hub := b.Hub()
	assert.Equal(t, engine.PrimitiveCircle, hub.Primitive)
	assert.Equal(t, []engine.Point{{X: 300, Y: 300}}, hub.Points)
	assert.Equal(t, config.HubRadius, hub.Radius)
	assert.True(t, hub.Fill)
}

func TestBuilder_Ticks(t *testing.T) {
	b := engine.NewBuilder(engine.DefaultLayout())

	ticks, err := b.Ticks()
	require.NoError(t, err)
	require.Len(t, ticks, config.TickCount)

	for _, tick := range ticks {
		assert.Equal(t, engine.PartTick, tick.Part)
		assert.Len(t, tick.Points, 4)
		assert.True(t, tick.Fill)
		assert.False(t, tick.Stroke)
	}

	// Twelve o'clock is a thin upright quad between radius 240 and 270.
	assert.Equal(t, []engine.Point{
		{X: 297, Y: 60},
		{X: 297, Y: 30},
		{X: 303, Y: 30},
		{X: 303, Y: 60},
	}, ticks[0].Points)
}

func TestBuilder_Build_PaintOrder(t *testing.T) {
	b := engine.NewBuilder(engine.DefaultLayout())

	face, err := b.Build(engine.Decompose(0))
	require.NoError(t, err)
	require.Len(t, face.Shapes, config.TickCount+4)

	for _, s := range face.Shapes[:config.TickCount] {
		assert.Equal(t, engine.PartTick, s.Part)
	}
	rest := face.Shapes[config.TickCount:]
	assert.Equal(t, engine.PartHourHand, rest[0].Part)
	assert.Equal(t, engine.PartMinuteHand, rest[1].Part)
	assert.Equal(t, engine.PartSecondHand, rest[2].Part)
	assert.Equal(t, engine.PartHub, rest[3].Part)
}

func TestBuilder_Build_WithoutSeconds(t *testing.T) {
	layout := engine.DefaultLayout()
	layout.ShowSeconds = false

	face, err := engine.NewBuilder(layout).Build(engine.Decompose(0))
	require.NoError(t, err)

	for _, s := range face.Shapes {
		assert.NotEqual(t, engine.PartSecondHand, s.Part)
	}
	assert.Equal(t, engine.PartHub, face.Shapes[len(face.Shapes)-1].Part)
}

func TestBuilder_HourHandAfternoon(t *testing.T) {
	b := engine.NewBuilder(engine.DefaultLayout())

	// 13:56:22.113 is just before two o'clock.
	d := engine.Decompose(50_182_113)
	hand, err := b.HourHand(d.Hours)
	require.NoError(t, err)

	tip := hand.Points[2]
	assert.Greater(t, tip.X, 300, "tip must be right of center")
	assert.Less(t, tip.Y, 300, "tip must be above center")
}

func TestMinuteStyle_Parse(t *testing.T) {
	assert.Equal(t, engine.MinuteLine, engine.ParseMinuteStyle(config.MinuteStyleLine))
	assert.Equal(t, engine.MinuteTapered, engine.ParseMinuteStyle(config.MinuteStyleTapered))
	assert.Equal(t, engine.MinuteTapered, engine.ParseMinuteStyle("bogus"))

	assert.Equal(t, config.MinuteStyleLine, engine.MinuteLine.String())
	assert.Equal(t, config.MinuteStyleTapered, engine.MinuteTapered.String())
}

func TestPart_String(t *testing.T) {
	assert.Equal(t, "hour_hand", engine.PartHourHand.String())
	assert.Equal(t, "hub", engine.PartHub.String())
	assert.Equal(t, "part(42)", engine.Part(42).String())
}
