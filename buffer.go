package imgstack

import "image"

// Buffer represents a rectangular pixel buffer in straight-alpha RGBA
// format, 4 bytes per pixel.
//
// Buffers are produced fresh per pipeline stage and are not shared mutably
// between stages; the renderer hands exclusive ownership of the final buffer
// to the caller.
type Buffer struct {
	width  int
	height int
	data   []uint8
}

// NewBuffer creates a new transparent buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Data returns the raw pixel data (RGBA, straight alpha).
func (b *Buffer) Data() []uint8 {
	return b.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// silently dropped.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i+0] = clamp255(c.R * 255)
	b.data[i+1] = clamp255(c.G * 255)
	b.data[i+2] = clamp255(c.B * 255)
	b.data[i+3] = clamp255(c.A * 255)
}

// GetPixel returns the color of a single pixel, or Transparent when the
// coordinates are out of bounds.
func (b *Buffer) GetPixel(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := (y*b.width + x) * 4
	return Color{
		R: float64(b.data[i+0]) / 255,
		G: float64(b.data[i+1]) / 255,
		B: float64(b.data[i+2]) / 255,
		A: float64(b.data[i+3]) / 255,
	}
}

// Fill sets every pixel to the given color.
func (b *Buffer) Fill(c Color) {
	r := clamp255(c.R * 255)
	g := clamp255(c.G * 255)
	bl := clamp255(c.B * 255)
	a := clamp255(c.A * 255)

	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = r
		b.data[i+1] = g
		b.data[i+2] = bl
		b.data[i+3] = a
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &Buffer{
		width:  b.width,
		height: b.height,
		data:   data,
	}
}

// Region copies the pixel bytes of the given rectangle out of the buffer.
// The rectangle is clamped to the buffer bounds first; the returned slice
// holds Width*Height*4 bytes for the clamped rectangle.
func (b *Buffer) Region(r Rect) []uint8 {
	r = r.Intersect(Rect{Width: b.width, Height: b.height})
	out := make([]uint8, r.Width*r.Height*4)
	for y := 0; y < r.Height; y++ {
		src := ((r.Y+y)*b.width + r.X) * 4
		dst := y * r.Width * 4
		copy(out[dst:dst+r.Width*4], b.data[src:src+r.Width*4])
	}
	return out
}

// SetRegion writes raw pixel bytes into the given rectangle. Rows outside
// the buffer bounds are dropped; data must hold r.Width*r.Height*4 bytes.
func (b *Buffer) SetRegion(r Rect, data []uint8) {
	clamped := r.Intersect(Rect{Width: b.width, Height: b.height})
	for y := 0; y < clamped.Height; y++ {
		srcY := clamped.Y - r.Y + y
		src := (srcY*r.Width + (clamped.X - r.X)) * 4
		dst := ((clamped.Y+y)*b.width + clamped.X) * 4
		copy(b.data[dst:dst+clamped.Width*4], data[src:src+clamped.Width*4])
	}
}

// ToImage converts the buffer to an image.NRGBA sharing the pixel data.
func (b *Buffer) ToImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// FromImage creates a buffer from an image, converting to straight-alpha
// RGBA.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	b := NewBuffer(bounds.Dx(), bounds.Dy())

	// Fast path: NRGBA with a natural stride can be copied row by row.
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.height; y++ {
			srcOff := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			dstOff := y * b.width * 4
			copy(b.data[dstOff:dstOff+b.width*4], src.Pix[srcOff:srcOff+b.width*4])
		}
		return b
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return b
}
