package imgstack

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/AlexxNica/imgstack/blend"
	"github.com/AlexxNica/imgstack/filter"
)

// defaultMaxDepth caps nested-canvas and mask recursion.
const defaultMaxDepth = 16

// Renderer flattens canvases into raster buffers.
//
// The backend and registries are fixed at construction, so renderers with
// different capabilities can run concurrently without interference. A
// Renderer is safe for concurrent use; every render call works on its own
// buffers.
type Renderer struct {
	backend  Backend
	blends   *blend.Registry
	filters  *filter.Registry
	maxDepth int
	workers  int
}

// NewRenderer creates a renderer. With no options it uses the software
// backend, the standard blend modes, and the standard filters.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		backend:  o.backend,
		blends:   o.blends,
		filters:  o.filters,
		maxDepth: o.maxDepth,
		workers:  o.workers,
	}
}

// Render flattens the canvas into a single buffer.
//
// Layers are resolved concurrently and composited in their original order.
// A canvas with zero layers yields (nil, nil): no image, not an error.
// The first failure anywhere in the layer stage or the compositing stage
// aborts the render; in-flight sibling layer work is cancelled through the
// context and its results discarded.
func (r *Renderer) Render(ctx context.Context, c *Canvas) (*Buffer, error) {
	return r.render(ctx, c, 0)
}

// RenderGray flattens the canvas and converts the result to grayscale with
// the standard luminance filter. The mask stage renders mask canvases
// through this variant.
func (r *Renderer) RenderGray(ctx context.Context, c *Canvas) (*Buffer, error) {
	return r.renderGray(ctx, c, 0)
}

// RenderAsync runs Render on its own goroutine and delivers the result to
// done exactly once.
func (r *Renderer) RenderAsync(ctx context.Context, c *Canvas, done func(*Buffer, error)) {
	go func() {
		done(r.Render(ctx, c))
	}()
}

func (r *Renderer) render(ctx context.Context, c *Canvas, depth int) (*Buffer, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil canvas", ErrInvalidContent)
	}
	if depth > r.maxDepth {
		return nil, fmt.Errorf("%w: depth %d", ErrRecursionLimit, depth)
	}
	if len(c.Layers) == 0 {
		return nil, nil
	}

	Logger().Debug("render",
		"width", c.Width,
		"height", c.Height,
		"layers", len(c.Layers),
		"depth", depth)

	// Fan out the per-layer pipelines; results land at their original
	// indices so compositing order never depends on completion order.
	bufs := make([]*Buffer, len(c.Layers))
	g, gctx := errgroup.WithContext(ctx)
	if r.workers > 0 {
		g.SetLimit(r.workers)
	}
	for i, layer := range c.Layers {
		i, layer := i, layer
		g.Go(func() error {
			buf, err := r.renderLayer(gctx, layer, c, depth)
			if err != nil {
				return err
			}
			bufs[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	placements := make([]*placement, len(bufs))
	for i, buf := range bufs {
		placements[i] = newPlacement(c, c.Layers[i], buf)
	}

	return r.composite(c, placements)
}

func (r *Renderer) renderGray(ctx context.Context, c *Canvas, depth int) (*Buffer, error) {
	buf, err := r.render(ctx, c, depth)
	if err != nil || buf == nil {
		return nil, err
	}
	return r.applyFilters([]FilterSpec{{Name: "grayscale"}}, buf)
}
