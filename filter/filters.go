package filter

// Grayscale converts to grayscale using the standard luminance weights
// 0.299/0.587/0.114, preserving alpha. The mask stage uses this to turn a
// rendered mask canvas into an alpha map.
func Grayscale(in, out []byte, width, height int, _ Options) error {
	for i := 0; i < len(in); i += 4 {
		gray := byte((int(in[i])*299 + int(in[i+1])*587 + int(in[i+2])*114) / 1000)
		out[i+0] = gray
		out[i+1] = gray
		out[i+2] = gray
		out[i+3] = in[i+3]
	}
	return nil
}

// Mask multiplies the input's alpha by a grayscale mask.
//
// Options:
//   - "data": []byte, the mask pixels (RGBA, as produced by Grayscale)
//   - "width", "height": mask dimensions
//   - "dx", "dy": mask offset on the input
//
// Pixels outside the mask rectangle keep their alpha. A mask pixel's weight
// combines its gray level and its own alpha, so transparent mask regions
// hide the layer.
func Mask(in, out []byte, width, height int, opts Options) error {
	copy(out, in)

	data := opts.Bytes("data")
	mw := opts.Int("width", 0)
	mh := opts.Int("height", 0)
	dx := opts.Int("dx", 0)
	dy := opts.Int("dy", 0)
	if data == nil || mw <= 0 || mh <= 0 {
		return nil
	}

	for y := 0; y < mh; y++ {
		ty := dy + y
		if ty < 0 || ty >= height {
			continue
		}
		for x := 0; x < mw; x++ {
			tx := dx + x
			if tx < 0 || tx >= width {
				continue
			}
			mi := (y*mw + x) * 4
			ti := (ty*width + tx) * 4

			weight := uint16(data[mi]) * uint16(data[mi+3]) / 255
			out[ti+3] = byte(uint16(in[ti+3]) * weight / 255)
		}
	}
	return nil
}

// Invert inverts the color channels, preserving alpha.
func Invert(in, out []byte, width, height int, _ Options) error {
	for i := 0; i < len(in); i += 4 {
		out[i+0] = 255 - in[i]
		out[i+1] = 255 - in[i+1]
		out[i+2] = 255 - in[i+2]
		out[i+3] = in[i+3]
	}
	return nil
}

// Brightness scales the color channels by the "amount" option (default 1).
func Brightness(in, out []byte, width, height int, opts Options) error {
	amount := opts.Float("amount", 1)
	if amount < 0 {
		amount = 0
	}

	for i := 0; i < len(in); i += 4 {
		out[i+0] = scaleChan(in[i], amount)
		out[i+1] = scaleChan(in[i+1], amount)
		out[i+2] = scaleChan(in[i+2], amount)
		out[i+3] = in[i+3]
	}
	return nil
}

// Opacity scales the alpha channel by the "amount" option (default 1).
func Opacity(in, out []byte, width, height int, opts Options) error {
	amount := opts.Float("amount", 1)
	if amount < 0 {
		amount = 0
	}
	if amount > 1 {
		amount = 1
	}

	for i := 0; i < len(in); i += 4 {
		out[i+0] = in[i]
		out[i+1] = in[i+1]
		out[i+2] = in[i+2]
		out[i+3] = byte(float64(in[i+3])*amount + 0.5)
	}
	return nil
}

// Blur applies a separable box blur with the integer "radius" option
// (default 1). Radius 0 is the identity.
func Blur(in, out []byte, width, height int, opts Options) error {
	radius := opts.Int("radius", 1)
	if radius <= 0 {
		copy(out, in)
		return nil
	}

	tmp := make([]byte, len(in))
	boxBlurPass(in, tmp, width, height, radius, true)
	boxBlurPass(tmp, out, width, height, radius, false)
	return nil
}

// boxBlurPass averages each pixel with its neighbors along one axis.
func boxBlurPass(in, out []byte, width, height, radius int, horizontal bool) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a, n int
			for k := -radius; k <= radius; k++ {
				sx, sy := x, y
				if horizontal {
					sx += k
				} else {
					sy += k
				}
				if sx < 0 || sx >= width || sy < 0 || sy >= height {
					continue
				}
				i := (sy*width + sx) * 4
				r += int(in[i])
				g += int(in[i+1])
				b += int(in[i+2])
				a += int(in[i+3])
				n++
			}
			i := (y*width + x) * 4
			out[i+0] = byte(r / n)
			out[i+1] = byte(g / n)
			out[i+2] = byte(b / n)
			out[i+3] = byte(a / n)
		}
	}
}

// scaleChan scales a channel value, clamping at 255.
func scaleChan(v byte, amount float64) byte {
	scaled := float64(v) * amount
	if scaled > 255 {
		return 255
	}
	return byte(scaled + 0.5)
}
