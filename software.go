package imgstack

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	// Register the common decoders so LoadFile handles them transparently.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SoftwareBackend is a pure-Go rasterization backend built on the standard
// image packages and golang.org/x/image/draw. It composites source-over
// natively; every other blend mode is left to the manual blend registry.
type SoftwareBackend struct{}

// NewSoftwareBackend creates a software backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// NewBuffer allocates a transparent buffer.
func (*SoftwareBackend) NewBuffer(width, height int) *Buffer {
	return NewBuffer(width, height)
}

// LoadFile decodes the image file at path into a buffer of the image's
// natural size. PNG, JPEG, GIF, BMP, TIFF, and WebP are supported.
func (*SoftwareBackend) LoadFile(ctx context.Context, path string) (*Buffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSourceLoad, path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSourceLoad, path, err)
	}

	Logger().Debug("decoded image file",
		"path", path,
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())

	return FromImage(img), nil
}

// FromImage draws a decoded image handle into a buffer of its natural size.
func (*SoftwareBackend) FromImage(img image.Image) (*Buffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrSourceLoad)
	}
	return FromImage(img), nil
}

// Draw composites src onto dst under the transform m with the given
// opacity. Integer translations take an exact per-pixel path; everything
// else goes through bilinear resampling.
func (*SoftwareBackend) Draw(dst, src *Buffer, m Matrix, opacity float64, op string) error {
	if op != "" && op != BlendSourceOver {
		return fmt.Errorf("imgstack: software backend: unsupported composite op %q", op)
	}

	opacity = clampOpacity(opacity)
	if opacity == 0 || src.Width() == 0 || src.Height() == 0 {
		return nil
	}

	dstImg := dst.ToImage()
	srcImg := src.ToImage()

	var mask image.Image
	if opacity < 1 {
		mask = image.NewUniform(color.Alpha{A: clamp255(opacity * 255)})
	}

	if m.IsTranslation() && m.C == math.Trunc(m.C) && m.F == math.Trunc(m.F) {
		r := srcImg.Bounds().Add(image.Pt(int(m.C), int(m.F)))
		draw.DrawMask(dstImg, r, srcImg, image.Point{}, mask, image.Point{}, draw.Over)
		return nil
	}

	xdraw.BiLinear.Transform(
		dstImg,
		f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F},
		srcImg,
		srcImg.Bounds(),
		xdraw.Over,
		&xdraw.Options{SrcMask: mask},
	)
	return nil
}

// NativeModes reports source-over as the only native composite operation.
func (*SoftwareBackend) NativeModes() map[string]bool {
	return map[string]bool{BlendSourceOver: true}
}
