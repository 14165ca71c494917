// Package blend provides manual per-pixel blend functions for layer
// compositing.
//
// A blend function merges one layer's extracted pixel data onto the
// accumulated composite below it. The renderer only reaches for these when
// the rasterization backend reports a blend mode as not natively supported;
// native modes are composited by the backend directly.
//
// Separable modes follow the W3C Compositing and Blending Level 1
// specification, operating on straight (non-premultiplied) RGBA bytes.
package blend

import "sync"

// Source is one layer's extracted pixel data, handed to a blend function
// together with its canvas offset and opacity.
type Source struct {
	// Data holds Width*Height*4 straight-alpha RGBA bytes.
	Data []byte

	// Width, Height are the dimensions of Data in pixels.
	Width, Height int

	// Opacity in [0, 1] is applied to the source alpha before blending.
	Opacity float64

	// DX, DY place Data's top-left corner on the canvas.
	DX, DY int
}

// Func blends src onto the base buffer and writes the result into out.
// base and out are canvasWidth*canvasHeight*4 straight-alpha RGBA bytes;
// out is pre-filled with base, so a function only needs to write the pixels
// it touches. base must not be modified.
type Func func(base, out []byte, canvasWidth, canvasHeight int, src Source) error

// Registry maps blend mode names to manual blend functions.
//
// A registry is explicit per-renderer configuration, not ambient global
// state, so renderers with different mode sets can run concurrently.
// Thread safety: Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register registers fn under the given mode name.
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

// Names returns the registered mode names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	return names
}

// Default returns a registry with the standard separable blend modes:
// multiply, screen, overlay, darken, lighten, color-dodge, color-burn,
// hard-light, soft-light, difference, and exclusion.
func Default() *Registry {
	r := NewRegistry()
	r.Register("multiply", Separable(multiplyChan))
	r.Register("screen", Separable(screenChan))
	r.Register("overlay", Separable(overlayChan))
	r.Register("darken", Separable(minByte))
	r.Register("lighten", Separable(maxByte))
	r.Register("color-dodge", Separable(colorDodgeChan))
	r.Register("color-burn", Separable(colorBurnChan))
	r.Register("hard-light", Separable(hardLightChan))
	r.Register("soft-light", Separable(softLightChan))
	r.Register("difference", Separable(differenceChan))
	r.Register("exclusion", Separable(exclusionChan))
	return r
}
