package imgstack

import "math"

// placement is the ephemeral, per-render geometric and pixel data for one
// layer: the resolved post-filter raster, the draw offset centering it on
// the canvas, and the transform, opacity, and blend mode copied from the
// layer. Placements are rebuilt on every render call and never persisted.
type placement struct {
	buf          *Buffer
	offX, offY   float64
	opacity      float64
	blendMode    string
	tx, ty       float64
	sx, sy       float64
	rot          float64
	flipH, flipV bool
}

// newPlacement builds the placement for a resolved layer raster, centering
// the raster's natural size on the canvas.
func newPlacement(c *Canvas, l *Layer, buf *Buffer) *placement {
	return &placement{
		buf:       buf,
		offX:      (float64(c.Width) - float64(buf.Width())) / 2,
		offY:      (float64(c.Height) - float64(buf.Height())) / 2,
		opacity:   clampOpacity(l.Opacity),
		blendMode: l.BlendMode,
		tx:        l.TX,
		ty:        l.TY,
		sx:        l.SX,
		sy:        l.SY,
		rot:       l.Rot,
		flipH:     l.FlipH,
		flipV:     l.FlipV,
	}
}

// hasPivot returns true when the placement's rotate/scale/flip group is
// non-identity and a pivoted transform must be applied.
func (p *placement) hasPivot() bool {
	return p.rot != 0 || p.sx != 1 || p.sy != 1 || p.flipH || p.flipV
}

// scaleFactors returns the effective scale with flips folded in as negated
// axes.
func (p *placement) scaleFactors() (float64, float64) {
	sx, sy := p.sx, p.sy
	if p.flipH {
		sx = -sx
	}
	if p.flipV {
		sy = -sy
	}
	return sx, sy
}

// drawMatrix computes the affine placement of the layer on the canvas:
// translate by the centering offset plus (tx, ty), then, when the
// rotate/scale/flip group is non-identity, pivot it around the canvas
// center. Translation applies before the pivot group.
func (p *placement) drawMatrix(c *Canvas) Matrix {
	m := Translate(p.offX+p.tx, p.offY+p.ty)
	if !p.hasPivot() {
		return m
	}
	sx, sy := p.scaleFactors()
	angle := p.rot * math.Pi / 180
	pivot := RotateScaleAt(angle, sx, sy, float64(c.Width)/2, float64(c.Height)/2)
	return pivot.Multiply(m)
}

// bounds computes the minimal on-canvas bounding rectangle of the placed
// layer. The rotate/scale/flip group pivots around the layer's own center
// here, composed after the centering offset and translation. The four
// corners of the untransformed raster are transformed, the axis-aligned
// min/max box is intersected with the canvas, the origin is rounded to
// nearest and the size rounded up.
//
// The result bounds all further per-layer raster work; a zero-area result
// means the layer lands entirely off-canvas.
func (p *placement) bounds(c *Canvas) Rect {
	w := float64(p.buf.Width())
	h := float64(p.buf.Height())

	m := Translate(p.offX+p.tx, p.offY+p.ty)
	if p.hasPivot() {
		sx, sy := p.scaleFactors()
		angle := p.rot * math.Pi / 180
		m = m.Multiply(RotateScaleAt(angle, sx, sy, w/2, h/2))
	}

	corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range corners {
		x, y := m.TransformPoint(corner[0], corner[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	// Clamp to the canvas in float space before rounding.
	minX = math.Max(minX, 0)
	minY = math.Max(minY, 0)
	maxX = math.Min(maxX, float64(c.Width))
	maxY = math.Min(maxY, float64(c.Height))

	width := math.Max(0, maxX-minX)
	height := math.Max(0, maxY-minY)

	r := Rect{
		X:      int(math.Round(minX)),
		Y:      int(math.Round(minY)),
		Width:  int(math.Ceil(width)),
		Height: int(math.Ceil(height)),
	}
	return r.Intersect(Rect{Width: c.Width, Height: c.Height})
}

// clampOpacity clamps an opacity value to [0, 1].
func clampOpacity(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
