package imgstack

import (
	"context"
	"fmt"
)

// resolveContent turns a layer's content descriptor into a raster buffer.
// Fills and gradients size themselves from the layer's width/height
// overrides, falling back to the canvas size; file and image sources keep
// their natural dimensions; nested canvases recurse through the full
// pipeline.
func (r *Renderer) resolveContent(ctx context.Context, l *Layer, c *Canvas, depth int) (*Buffer, error) {
	switch l.Content.Kind {
	case ContentFile:
		if l.Content.Path == "" {
			return nil, fmt.Errorf("%w: empty file path", ErrInvalidContent)
		}
		return r.backend.LoadFile(ctx, l.Content.Path)

	case ContentFill:
		buf := r.backend.NewBuffer(r.contentSize(l, c))
		buf.Fill(l.Content.Color)
		return buf, nil

	case ContentGradient:
		return r.resolveGradient(l, c)

	case ContentRaster:
		if l.Content.Raster == nil {
			return nil, fmt.Errorf("%w: nil raster", ErrInvalidContent)
		}
		// Cloned so downstream stages never mutate caller-owned pixels.
		return l.Content.Raster.Clone(), nil

	case ContentImage:
		if l.Content.Image == nil {
			return nil, fmt.Errorf("%w: nil image", ErrInvalidContent)
		}
		return r.backend.FromImage(l.Content.Image)

	case ContentCanvas:
		if l.Content.Canvas == nil {
			return nil, fmt.Errorf("%w: nil nested canvas", ErrInvalidContent)
		}
		buf, err := r.render(ctx, l.Content.Canvas, depth+1)
		if err != nil {
			return nil, err
		}
		if buf == nil {
			// An empty nested canvas contributes transparent pixels.
			return r.backend.NewBuffer(l.Content.Canvas.Width, l.Content.Canvas.Height), nil
		}
		return buf, nil

	default:
		return nil, fmt.Errorf("%w: unknown content kind %d", ErrInvalidContent, l.Content.Kind)
	}
}

// resolveGradient allocates the gradient's buffer and paints it from the
// generated geometry.
func (r *Renderer) resolveGradient(l *Layer, c *Canvas) (*Buffer, error) {
	spec := l.Content.Gradient
	if spec == nil {
		return nil, fmt.Errorf("%w: nil gradient spec", ErrInvalidContent)
	}

	width, height := r.contentSize(l, c)
	buf := r.backend.NewBuffer(width, height)

	switch spec.Type {
	case GradientRadial:
		paintRadial(buf, RadialGeometry(float64(width), float64(height), spec))
	case GradientLinear:
		paintLinear(buf, LinearGeometry(float64(width), float64(height), spec))
	default:
		return nil, fmt.Errorf("%w: unknown gradient type %d", ErrInvalidContent, spec.Type)
	}
	return buf, nil
}

// contentSize is the sizing rule shared by fills and gradients: the layer's
// explicit width/height override the canvas dimensions.
func (r *Renderer) contentSize(l *Layer, c *Canvas) (int, int) {
	width := c.Width
	if l.Width > 0 {
		width = l.Width
	}
	height := c.Height
	if l.Height > 0 {
		height = l.Height
	}
	return width, height
}
