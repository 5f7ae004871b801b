package render

import (
	"image/color"

	"github.com/tartampluch/go-clock/internal/engine"
)

// Surface is the drawing collaborator. Points are in face coordinates;
// implementations map them to their own pixel space.
type Surface interface {
	Clear(c color.Color)
	FillPolygon(pts []engine.Point, c color.Color)
	StrokePath(pts []engine.Point, closed bool, width float64, c color.Color)
	FillCircle(center engine.Point, radius float64, c color.Color)
}

// Paint draws every shape of face in order. Shapes with both Fill and
// Stroke are filled first and then stroked on the same vertex list.
func Paint(s Surface, face engine.Face, p Palette) {
	s.Clear(p.Background)

	for _, shape := range face.Shapes {
		if len(shape.Points) == 0 {
			continue
		}

		if shape.Fill {
			fill := p.fillColor(shape.Part)
			switch shape.Primitive {
			case engine.PrimitiveCircle:
				s.FillCircle(shape.Points[0], float64(shape.Radius), fill)
			case engine.PrimitivePolygon:
				s.FillPolygon(shape.Points, fill)
			}
		}

		if shape.Stroke && shape.Primitive != engine.PrimitiveCircle {
			c, w := p.strokeStyle(shape)
			s.StrokePath(shape.Points, shape.Primitive == engine.PrimitivePolygon, w, c)
		}
	}
}
