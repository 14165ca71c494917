package imgstack

import (
	"context"
	"fmt"

	"github.com/AlexxNica/imgstack/filter"
)

// renderLayer runs one layer's pipeline: resolve the content, apply the
// mask, then the filter chain. Each stage produces a fresh buffer and
// discards its input; stages never share pixels mutably.
func (r *Renderer) renderLayer(ctx context.Context, l *Layer, c *Canvas, depth int) (*Buffer, error) {
	buf, err := r.resolveContent(ctx, l, c, depth)
	if err != nil {
		return nil, err
	}

	buf, err = r.applyMask(ctx, l, buf, depth)
	if err != nil {
		return nil, err
	}

	return r.applyFilters(l.Filters, buf)
}

// applyMask renders the layer's mask canvas, converts it to grayscale, and
// multiplies it into the buffer's alpha via the synthetic "mask" filter.
// A nil mask or a mask with zero layers is an identity.
func (r *Renderer) applyMask(ctx context.Context, l *Layer, buf *Buffer, depth int) (*Buffer, error) {
	if l.Mask == nil || len(l.Mask.Layers) == 0 {
		return buf, nil
	}

	// The mask renders at the masked buffer's size. Work on a copy of the
	// canvas header so a mask shared between layers never sees a
	// concurrent size change.
	mask := *l.Mask
	mask.Width = buf.Width()
	mask.Height = buf.Height()

	rendered, err := r.renderGray(ctx, &mask, depth+1)
	if err != nil {
		return nil, err
	}

	return r.applyFilters([]FilterSpec{{
		Name: "mask",
		Options: map[string]any{
			"data":   rendered.Data(),
			"width":  rendered.Width(),
			"height": rendered.Height(),
			"dx":     0,
			"dy":     0,
		},
	}}, buf)
}

// applyFilters sequences a filter chain over the buffer with ping-pong
// double buffering: each filter reads the previous output and writes a
// fresh buffer. An empty chain returns the input unchanged without
// allocating.
func (r *Renderer) applyFilters(specs []FilterSpec, buf *Buffer) (*Buffer, error) {
	if len(specs) == 0 {
		return buf, nil
	}

	in := buf
	for _, spec := range specs {
		fn, ok := r.filters.Get(spec.Name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoSuchFilter, spec.Name)
		}

		out := NewBuffer(in.Width(), in.Height())
		if err := fn(in.Data(), out.Data(), in.Width(), in.Height(), filter.Options(spec.Options)); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrFilter, spec.Name, err)
		}
		in = out
	}
	return in, nil
}
