// Package imgstack flattens an ordered stack of image layers into a single
// raster buffer.
//
// A [Canvas] holds layers bottom-to-top. Each [Layer] carries its content
// (a file reference, solid fill, gradient, pre-rendered raster, image handle,
// or a nested Canvas), a geometric transform, an opacity, a blend mode, an
// optional mask canvas, and an optional filter chain. A [Renderer] resolves
// every layer to pixels concurrently, then composites them in order into one
// [Buffer].
//
// Compositing splits the stack into contiguous runs by blend-mode
// capability: modes the backend reports as native are drawn with the
// backend's composite operation, everything else goes through the manual
// per-pixel blend functions registered in a [blend.Registry].
//
// # Quick Start
//
//	c := imgstack.NewCanvas(256, 256)
//	c.AddLayer(imgstack.NewLayer(imgstack.FillContent(imgstack.RGB(1, 0, 0))))
//
//	top := imgstack.NewLayer(imgstack.FillContent(imgstack.RGB(0, 0, 1)))
//	top.Opacity = 0.5
//	top.BlendMode = "multiply"
//	c.AddLayer(top)
//
//	r := imgstack.NewRenderer()
//	buf, err := r.Render(context.Background(), c)
//
// By default a Renderer uses the software backend, the standard blend modes
// from [blend.Default], and the standard filters from [filter.Default]. All
// of these are replaceable via functional options on [NewRenderer].
package imgstack
