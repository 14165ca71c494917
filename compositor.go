package imgstack

import (
	"fmt"

	"github.com/AlexxNica/imgstack/blend"
)

// composite merges ordered placements into one canvas-sized buffer.
//
// The bottommost placement seeds the output with a plain draw. The rest are
// partitioned into maximal contiguous runs by native-blend capability and
// folded strictly in order: each run's output is the next run's input, so
// the partitioning only ever changes the implementation path, never the
// resulting layer order.
func (r *Renderer) composite(c *Canvas, placements []*placement) (*Buffer, error) {
	if len(placements) == 0 {
		return nil, nil
	}

	native := r.backend.NativeModes()

	out := r.backend.NewBuffer(c.Width, c.Height)
	if err := r.drawPlain(out, c, placements[0]); err != nil {
		return nil, err
	}

	rest := placements[1:]
	runs := splitRuns(native, rest)
	if len(runs) > 0 {
		Logger().Debug("composite", "placements", len(placements), "runs", len(runs))
	}

	var err error
	for _, run := range runs {
		if run.native {
			err = r.compositeNative(out, c, run.placements)
		} else {
			out, err = r.compositeManual(out, c, run.placements)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// blendRun is a maximal contiguous group of placements sharing the same
// native/manual classification.
type blendRun struct {
	native     bool
	placements []*placement
}

// splitRuns partitions placements into maximal same-capability runs,
// preserving order. The default source-over mode always counts as native.
func splitRuns(native map[string]bool, placements []*placement) []blendRun {
	var runs []blendRun
	for _, p := range placements {
		capable := nativeCapable(native, p.blendMode)
		if n := len(runs); n > 0 && runs[n-1].native == capable {
			runs[n-1].placements = append(runs[n-1].placements, p)
			continue
		}
		runs = append(runs, blendRun{native: capable, placements: []*placement{p}})
	}
	return runs
}

// nativeCapable reports whether mode can be composited by the backend
// directly.
func nativeCapable(native map[string]bool, mode string) bool {
	return mode == BlendSourceOver || native[mode]
}

// drawPlain draws a placement with its transform and opacity only, no blend
// function. Used for the seed layer and for source-over placements.
func (r *Renderer) drawPlain(out *Buffer, c *Canvas, p *placement) error {
	return r.backend.Draw(out, p.buf, p.drawMatrix(c), p.opacity, "")
}

// compositeNative draws each placement with the backend's composite
// operation named after its blend mode, mutating out in place.
func (r *Renderer) compositeNative(out *Buffer, c *Canvas, run []*placement) error {
	for _, p := range run {
		op := p.blendMode
		if op == BlendSourceOver {
			op = ""
		}
		if err := r.backend.Draw(out, p.buf, p.drawMatrix(c), p.opacity, op); err != nil {
			return err
		}
	}
	return nil
}

// compositeManual extracts each placement's transformed pixels within its
// bounding rectangle and invokes the registered manual blend function.
// Zero-area rectangles are skipped; an unregistered blend mode is fatal.
func (r *Renderer) compositeManual(out *Buffer, c *Canvas, run []*placement) (*Buffer, error) {
	for _, p := range run {
		rect := p.bounds(c)
		if rect.Empty() {
			Logger().Warn("skip off-canvas placement", "blendmode", p.blendMode)
			continue
		}

		fn, ok := r.blends.Get(p.blendMode)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchBlendMode, p.blendMode)
		}

		// Rasterize the placed layer at full opacity; the blend function
		// receives the opacity and applies it itself.
		tmp := r.backend.NewBuffer(c.Width, c.Height)
		if err := r.backend.Draw(tmp, p.buf, p.drawMatrix(c), 1, ""); err != nil {
			return nil, err
		}

		next := out.Clone()
		err := fn(out.Data(), next.Data(), c.Width, c.Height, blend.Source{
			Data:    tmp.Region(rect),
			Width:   rect.Width,
			Height:  rect.Height,
			Opacity: p.opacity,
			DX:      rect.X,
			DY:      rect.Y,
		})
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}
