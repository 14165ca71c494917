package imgstack

import "image"

// BlendSourceOver is the default blend mode. Layers with this mode are drawn
// as a plain alpha-composited overlay without consulting the blend
// registries.
const BlendSourceOver = "source-over"

// Canvas is an ordered stack of layers plus pixel dimensions. Index 0 is the
// bottommost layer. A canvas is the unit of composition, both top-level and
// nested (as a layer's content or as a mask).
type Canvas struct {
	Width  int
	Height int
	Layers []*Layer
}

// NewCanvas creates an empty canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height}
}

// AddLayer appends a layer on top of the stack.
func (c *Canvas) AddLayer(l *Layer) {
	c.Layers = append(c.Layers, l)
}

// Layer is one visual element in a canvas. Content determines the pixels,
// the remaining fields determine how those pixels are placed and merged into
// the composite.
type Layer struct {
	Content Content

	// Opacity is the layer opacity in [0, 1].
	Opacity float64

	// BlendMode names the pixel-combination rule used when compositing this
	// layer onto the accumulated result below it. Defaults to
	// BlendSourceOver.
	BlendMode string

	// TX, TY translate the layer on the canvas.
	TX, TY float64

	// SX, SY scale the layer around the canvas center. Default 1, 1.
	SX, SY float64

	// Rot rotates the layer around the canvas center, in degrees.
	Rot float64

	// FlipH, FlipV mirror the layer around the canvas center.
	FlipH, FlipV bool

	// Width, Height override the canvas dimensions for fills and gradients.
	// Zero means "use the canvas size".
	Width, Height int

	// Mask is an optional canvas whose rendered, grayscale result modulates
	// this layer's alpha. Nil means no mask; a mask with zero layers is an
	// identity.
	Mask *Canvas

	// Filters is an ordered chain of pixel filters applied to the layer
	// before compositing. Empty means identity.
	Filters []FilterSpec
}

// FilterSpec names one filter invocation in a layer's filter chain.
type FilterSpec struct {
	Name    string
	Options map[string]any
}

// NewLayer creates a layer with the given content and default opacity,
// blend mode, and transform.
func NewLayer(content Content) *Layer {
	return &Layer{
		Content:   content,
		Opacity:   1,
		BlendMode: BlendSourceOver,
		SX:        1,
		SY:        1,
	}
}

// ContentKind discriminates the variants of a layer's content.
type ContentKind uint8

const (
	// ContentNone is the zero value; resolving it fails.
	ContentNone ContentKind = iota

	// ContentFile references an image file to be decoded by the backend.
	ContentFile

	// ContentFill is a uniform solid fill.
	ContentFill

	// ContentGradient is a linear or radial gradient fill.
	ContentGradient

	// ContentRaster is a pre-rendered pixel buffer used as-is.
	ContentRaster

	// ContentImage is a decoded image handle drawn by the backend.
	ContentImage

	// ContentCanvas is a nested canvas rendered recursively.
	ContentCanvas
)

// Content is a tagged union over a layer's content kinds. Exactly one
// payload field is meaningful, selected by Kind. Use the *Content
// constructors rather than filling the struct directly.
type Content struct {
	Kind     ContentKind
	Path     string
	Color    Color
	Gradient *GradientSpec
	Raster   *Buffer
	Image    image.Image
	Canvas   *Canvas
}

// FileContent references an image file on disk (or any path the backend can
// decode).
func FileContent(path string) Content {
	return Content{Kind: ContentFile, Path: path}
}

// FillContent fills the layer uniformly with a color.
func FillContent(c Color) Content {
	return Content{Kind: ContentFill, Color: c}
}

// GradientContent fills the layer with a linear or radial gradient.
func GradientContent(spec *GradientSpec) Content {
	return Content{Kind: ContentGradient, Gradient: spec}
}

// RasterContent uses a pre-rendered buffer as the layer's pixels.
func RasterContent(buf *Buffer) Content {
	return Content{Kind: ContentRaster, Raster: buf}
}

// ImageContent draws a decoded image handle as the layer's pixels.
func ImageContent(img image.Image) Content {
	return Content{Kind: ContentImage, Image: img}
}

// CanvasContent renders a nested canvas as the layer's pixels.
func CanvasContent(c *Canvas) Content {
	return Content{Kind: ContentCanvas, Canvas: c}
}

// GradientType selects the gradient geometry.
type GradientType uint8

const (
	// GradientLinear sweeps colors along an axis through the rectangle.
	GradientLinear GradientType = iota

	// GradientRadial sweeps colors outward from the rectangle center.
	GradientRadial
)

// GradientSpec describes a two-color gradient fill.
type GradientSpec struct {
	// Type selects linear or radial geometry.
	Type GradientType

	// Rotation orients a linear gradient, in degrees. Ignored for radial.
	Rotation float64

	// Spread is the offset of the start color stop in [0, 1). Default 0.
	Spread float64

	// Start and End are the gradient's end-point colors.
	Start, End Color
}
