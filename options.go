package imgstack

import (
	"github.com/AlexxNica/imgstack/blend"
	"github.com/AlexxNica/imgstack/filter"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default software rendering with the standard registries
//	r := imgstack.NewRenderer()
//
//	// Custom backend (dependency injection)
//	r := imgstack.NewRenderer(imgstack.WithBackend(myBackend))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	backend  Backend
	blends   *blend.Registry
	filters  *filter.Registry
	maxDepth int
	workers  int
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		backend:  NewSoftwareBackend(),
		blends:   blend.Default(),
		filters:  filter.Default(),
		maxDepth: defaultMaxDepth,
		workers:  0, // one goroutine per layer
	}
}

// WithBackend sets a custom rasterization backend.
func WithBackend(b Backend) Option {
	return func(o *rendererOptions) {
		if b != nil {
			o.backend = b
		}
	}
}

// WithBlendRegistry sets the manual blend function registry consulted for
// blend modes the backend cannot composite natively.
func WithBlendRegistry(r *blend.Registry) Option {
	return func(o *rendererOptions) {
		if r != nil {
			o.blends = r
		}
	}
}

// WithFilterRegistry sets the filter registry used by layer filter chains
// and the mask stage.
func WithFilterRegistry(r *filter.Registry) Option {
	return func(o *rendererOptions) {
		if r != nil {
			o.filters = r
		}
	}
}

// WithMaxDepth caps the recursion depth for nested canvases and masks.
// A render exceeding the cap fails with ErrRecursionLimit. Default 16.
func WithMaxDepth(depth int) Option {
	return func(o *rendererOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithWorkers limits how many layer pipelines run concurrently within one
// render. Zero (the default) runs every layer on its own goroutine.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		if n >= 0 {
			o.workers = n
		}
	}
}
