package blend

import "math"

// Separable builds a blend Func from a per-channel blend function B(s, d)
// over unmultiplied source and destination channel values.
//
// Per affected pixel the source channels are blended with the backdrop
// channels through B, then the result is alpha-composited over the backdrop
// with the standard source-over formula, using the source alpha scaled by
// the source opacity.
func Separable(blendChan func(s, d byte) byte) Func {
	return func(base, out []byte, canvasWidth, canvasHeight int, src Source) error {
		opacity := src.Opacity
		if opacity < 0 {
			opacity = 0
		}
		if opacity > 1 {
			opacity = 1
		}

		for y := 0; y < src.Height; y++ {
			cy := src.DY + y
			if cy < 0 || cy >= canvasHeight {
				continue
			}
			for x := 0; x < src.Width; x++ {
				cx := src.DX + x
				if cx < 0 || cx >= canvasWidth {
					continue
				}

				si := (y*src.Width + x) * 4
				di := (cy*canvasWidth + cx) * 4

				sa := byte(float64(src.Data[si+3]) * opacity)
				if sa == 0 {
					continue
				}

				da := base[di+3]

				br := blendChan(src.Data[si+0], base[di+0])
				bg := blendChan(src.Data[si+1], base[di+1])
				bb := blendChan(src.Data[si+2], base[di+2])

				// Where the backdrop is transparent the blend result has
				// nothing to combine with; keep the raw source channels.
				if da == 0 {
					br = src.Data[si+0]
					bg = src.Data[si+1]
					bb = src.Data[si+2]
				}

				out[di+0], out[di+1], out[di+2], out[di+3] =
					compositeOver(br, bg, bb, sa, base[di+0], base[di+1], base[di+2], da)
			}
		}
		return nil
	}
}

// compositeOver applies the Porter-Duff source-over formula on straight
// alpha channels:
//
//	outA = srcA + dstA*(1 - srcA)
//	outC = (srcC*srcA + dstC*dstA*(1 - srcA)) / outA
func compositeOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if sa == 255 {
		return sr, sg, sb, 255
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	srcA := float64(sa) / 255
	dstA := float64(da) / 255
	outA := srcA + dstA*(1-srcA)
	if outA == 0 {
		return 0, 0, 0, 0
	}

	r := (float64(sr)*srcA + float64(dr)*dstA*(1-srcA)) / outA
	g := (float64(sg)*srcA + float64(dg)*dstA*(1-srcA)) / outA
	b := (float64(sb)*srcA + float64(db)*dstA*(1-srcA)) / outA

	return byte(r + 0.5), byte(g + 0.5), byte(b + 0.5), byte(outA*255 + 0.5)
}

// multiplyChan multiplies source and backdrop.
// Formula: B(Cb, Cs) = Cb * Cs
func multiplyChan(s, d byte) byte {
	return mulDiv255(s, d)
}

// screenChan is the inverse multiply, always lighter.
// Formula: B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func screenChan(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// overlayChan is HardLight with swapped operands: backdrop below mid-gray is
// multiplied, above is screened.
func overlayChan(s, d byte) byte {
	return hardLightChan(d, s)
}

// colorDodgeChan brightens the backdrop to reflect the source.
// Formula: B(Cb, Cs) = min(1, Cb / (1 - Cs))
func colorDodgeChan(s, d byte) byte {
	if s == 255 {
		return 255
	}
	result := (uint16(d) * 255) / uint16(255-s)
	if result > 255 {
		return 255
	}
	return byte(result)
}

// colorBurnChan darkens the backdrop to reflect the source.
// Formula: B(Cb, Cs) = 1 - min(1, (1 - Cb) / Cs)
func colorBurnChan(s, d byte) byte {
	if s == 0 {
		return 0
	}
	result := (uint16(255-d) * 255) / uint16(s)
	if result > 255 {
		return 0
	}
	return 255 - byte(result)
}

// hardLightChan multiplies or screens depending on the source value.
// The doubled products can exceed a byte, so the math stays in uint16.
func hardLightChan(s, d byte) byte {
	if s <= 128 {
		return byte(div255(2 * uint16(s) * uint16(d)))
	}
	return 255 - byte(div255(2*uint16(255-s)*uint16(255-d)))
}

// softLightChan is the W3C soft-light formula, computed in float for
// precision.
func softLightChan(s, d byte) byte {
	sf := float64(s) / 255
	df := float64(d) / 255

	var result float64
	if sf <= 0.5 {
		result = df - (1-2*sf)*df*(1-df)
	} else {
		var dx float64
		if df <= 0.25 {
			dx = ((16*df-12)*df + 4) * df
		} else {
			dx = math.Sqrt(df)
		}
		result = df + (2*sf-1)*(dx-df)
	}

	if result < 0 {
		return 0
	}
	if result > 1 {
		return 255
	}
	return byte(result*255 + 0.5)
}

// differenceChan is the absolute channel difference.
func differenceChan(s, d byte) byte {
	if s > d {
		return s - d
	}
	return d - s
}

// exclusionChan is like difference with lower contrast.
// Formula: B(Cb, Cs) = Cb + Cs - 2 * Cb * Cs
func exclusionChan(s, d byte) byte {
	sum := uint16(s) + uint16(d)
	diff := sum - 2*uint16(mulDiv255(s, d))
	if diff > 255 {
		return 255
	}
	return byte(diff)
}
