package imgstack

import (
	"context"
	"image"
)

// Backend is the rasterization surface the renderer draws with. It
// allocates buffers, decodes external sources, and composites one buffer
// onto another under an affine transform.
//
// The renderer never assumes more of a backend than this interface; the
// shipped implementation is [NewSoftwareBackend].
type Backend interface {
	// NewBuffer allocates a transparent buffer of the given size.
	NewBuffer(width, height int) *Buffer

	// LoadFile decodes the image at path into a buffer sized to the
	// source's natural dimensions.
	LoadFile(ctx context.Context, path string) (*Buffer, error)

	// FromImage draws a decoded image handle into a buffer sized to the
	// image's natural dimensions.
	FromImage(img image.Image) (*Buffer, error)

	// Draw composites src onto dst under the affine transform m with the
	// given opacity. op names a native composite operation; the empty
	// string (or BlendSourceOver) means plain alpha compositing. Draw fails
	// for op names not reported by NativeModes.
	Draw(dst, src *Buffer, m Matrix, opacity float64, op string) error

	// NativeModes reports which blend mode names the backend can composite
	// natively. Modes absent from the map go through the manual blend
	// registry.
	NativeModes() map[string]bool
}
