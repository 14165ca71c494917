package imgstack

import "math"

// ColorStop is a color at an offset along a gradient in [0, 1].
type ColorStop struct {
	Offset float64
	Color  Color
}

// LinearAxis is the drawable form of a linear gradient: the axis endpoints
// and the color stops along it.
type LinearAxis struct {
	X1, Y1 float64
	X2, Y2 float64
	Stops  []ColorStop
}

// RadialShape is the drawable form of a radial gradient: center, radius, and
// the color stops from center to rim.
type RadialShape struct {
	CX, CY float64
	R      float64
	Stops  []ColorStop
}

// LinearGeometry computes the axis endpoints for a linear gradient over a
// width x height rectangle.
//
// The rotation is normalized into [0, 360) and the endpoints are derived by
// piecewise-linear interpolation across five angular sectors. Each sector
// sweeps one pair of rectangle edges into each other as the rotation
// increases, so at the sector boundaries (0, 45, 135, 225, 315, 360 degrees)
// the axis lands exactly on the rectangle's corners or edge midpoints.
func LinearGeometry(width, height float64, spec *GradientSpec) LinearAxis {
	rot := normalizeDegrees(spec.Rotation)

	var x1, y1, x2, y2 float64
	switch {
	case rot < 45:
		// Left edge sweeping from the midpoint up to the top-left corner.
		y1 = height / 2 * (45 - rot) / 45
		x2 = width
		y2 = height - y1
	case rot < 135:
		// Top edge sweeping left to right.
		x1 = width * (rot - 45) / 90
		x2 = width - x1
		y2 = height
	case rot < 225:
		// Right edge sweeping top to bottom.
		x1 = width
		y1 = height * (rot - 135) / 90
		y2 = height - y1
	case rot < 315:
		// Bottom edge sweeping right to left.
		x1 = width * (1 - (rot-225)/90)
		y1 = height
		x2 = width - x1
	default:
		// Left edge again, closing the cycle back to the midpoint.
		y1 = height - height/2*(rot-315)/45
		x2 = width
		y2 = height - y1
	}

	return LinearAxis{
		X1: x1, Y1: y1,
		X2: x2, Y2: y2,
		Stops: gradientStops(spec),
	}
}

// RadialGeometry computes the center, radius, and stops for a radial
// gradient over a width x height rectangle. The center is the rectangle
// center and the radius is half the shorter side.
func RadialGeometry(width, height float64, spec *GradientSpec) RadialShape {
	return RadialShape{
		CX:    width / 2,
		CY:    height / 2,
		R:     math.Min(width, height) / 2,
		Stops: gradientStops(spec),
	}
}

// gradientStops builds the stop pair (spread, start), (1, end).
func gradientStops(spec *GradientSpec) []ColorStop {
	return []ColorStop{
		{Offset: spec.Spread, Color: spec.Start},
		{Offset: 1, Color: spec.End},
	}
}

// normalizeDegrees folds an angle into [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// paintLinear fills buf with a linear gradient by projecting each pixel
// center onto the gradient axis.
func paintLinear(buf *Buffer, axis LinearAxis) {
	dx := axis.X2 - axis.X1
	dy := axis.Y2 - axis.Y1
	lengthSq := dx*dx + dy*dy

	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			var t float64
			if lengthSq > 0 {
				px := float64(x) + 0.5 - axis.X1
				py := float64(y) + 0.5 - axis.Y1
				t = (px*dx + py*dy) / lengthSq
			}
			buf.SetPixel(x, y, colorAtOffset(axis.Stops, t))
		}
	}
}

// paintRadial fills buf with a radial gradient from distance to the center.
func paintRadial(buf *Buffer, shape RadialShape) {
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			var t float64
			if shape.R > 0 {
				px := float64(x) + 0.5 - shape.CX
				py := float64(y) + 0.5 - shape.CY
				t = math.Sqrt(px*px+py*py) / shape.R
			}
			buf.SetPixel(x, y, colorAtOffset(shape.Stops, t))
		}
	}
}

// colorAtOffset evaluates the stop list at offset t, clamping beyond the
// first and last stops and interpolating between adjacent stops.
func colorAtOffset(stops []ColorStop, t float64) Color {
	if len(stops) == 0 {
		return Transparent
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Offset {
			continue
		}
		prev := stops[i-1]
		span := stops[i].Offset - prev.Offset
		if span <= 0 {
			return stops[i].Color
		}
		return prev.Color.Lerp(stops[i].Color, (t-prev.Offset)/span)
	}
	return last.Color
}
