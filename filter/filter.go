// Package filter provides pixel filters for the layer pipeline.
//
// A filter is a pure transform from an input RGBA byte buffer to a fresh
// output buffer of the same dimensions. The renderer sequences a layer's
// filter chain through ping-pong double buffering; filters never interpret
// each other's semantics.
package filter

import "sync"

// Options carries per-invocation filter parameters. Values are looked up by
// name with typed accessors; missing or mistyped values fall back to the
// accessor's default.
type Options map[string]any

// Float returns the float64 option under key, accepting ints too.
func (o Options) Float(key string, def float64) float64 {
	switch v := o[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// Int returns the int option under key.
func (o Options) Int(key string, def int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}

// Bytes returns the []byte option under key, or nil.
func (o Options) Bytes(key string) []byte {
	v, _ := o[key].([]byte)
	return v
}

// Func transforms the in buffer into the out buffer. Both hold
// width*height*4 straight-alpha RGBA bytes; in must not be modified and out
// starts zeroed.
type Func func(in, out []byte, width, height int, opts Options) error

// Registry maps filter names to filter functions.
//
// A registry is explicit per-renderer configuration, not ambient global
// state. Thread safety: Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register registers fn under the given filter name.
// An existing function with the same name is replaced.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
}

// Get returns the function registered under name.
func (r *Registry) Get(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered filter names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	return names
}

// Default returns a registry with the standard filters: grayscale, mask,
// invert, brightness, opacity, and blur.
func Default() *Registry {
	r := NewRegistry()
	r.Register("grayscale", Grayscale)
	r.Register("mask", Mask)
	r.Register("invert", Invert)
	r.Register("brightness", Brightness)
	r.Register("opacity", Opacity)
	r.Register("blur", Blur)
	return r
}
