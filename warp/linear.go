package warp

import (
	"math"

	"github.com/nvr-ai/go-imgproc/common"
)

// warpLinear traverses the output grid row-major and resolves each pixel
// with bilinear sampling.
func warpLinear[T Elem, M mapper](dst, src *Image[T], m M, opt Options[T]) {
	forEachRowRange(dst.Height, opt.Parallel, opt.Workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			linearRow(dst, src, m, opt, y)
		}
	})
}

// linearRow fills one output row. Coordinates are mapped in float64; the
// four-tap blend accumulates in float32 and converts back per element type
// (round and clamp for uint8, raw store for float32).
//
// The interior fast path blends without per-tap checks. On the border path
// every tap is resolved independently through the border policy:
//
//   - constant: out-of-range taps contribute the fill value.
//   - replicate: tap coordinates clamp to the nearest border index.
//   - transparent: the pixel is skipped when the top-left tap is out of
//     range; otherwise the remaining taps clamp and the blend proceeds.
func linearRow[T Elem, M mapper](dst, src *Image[T], m M, opt Options[T], y int) {
	c := dst.Channels
	w, h := src.Width, src.Height
	stride := src.Stride
	fill := float32(opt.Value)
	fy := float64(y)
	dstRow := dst.Pix[y*dst.Stride:]
	for x := 0; x < dst.Width; x++ {
		u, v := m.Map(float64(x), fy)
		uf := math.Floor(u)
		vf := math.Floor(v)
		x0 := int(uf)
		y0 := int(vf)
		fu := float32(u - uf)
		fv := float32(v - vf)
		w00 := (1 - fu) * (1 - fv)
		w10 := fu * (1 - fv)
		w01 := (1 - fu) * fv
		w11 := fu * fv
		di := x * c

		if x0 >= 0 && y0 >= 0 && x0+1 < w && y0+1 < h {
			i00 := y0*stride + x0*c
			i01 := i00 + stride
			for k := 0; k < c; k++ {
				acc := w00*float32(src.Pix[i00+k]) +
					w10*float32(src.Pix[i00+c+k]) +
					w01*float32(src.Pix[i01+k]) +
					w11*float32(src.Pix[i01+c+k])
				dstRow[di+k] = fromFloat[T](acc)
			}
			continue
		}

		switch opt.Border {
		case common.BorderConstant:
			in00 := uint(x0) < uint(w) && uint(y0) < uint(h)
			in10 := uint(x0+1) < uint(w) && uint(y0) < uint(h)
			in01 := uint(x0) < uint(w) && uint(y0+1) < uint(h)
			in11 := uint(x0+1) < uint(w) && uint(y0+1) < uint(h)
			i00 := y0*stride + x0*c
			i01 := i00 + stride
			for k := 0; k < c; k++ {
				s00, s10, s01, s11 := fill, fill, fill, fill
				if in00 {
					s00 = float32(src.Pix[i00+k])
				}
				if in10 {
					s10 = float32(src.Pix[i00+c+k])
				}
				if in01 {
					s01 = float32(src.Pix[i01+k])
				}
				if in11 {
					s11 = float32(src.Pix[i01+c+k])
				}
				dstRow[di+k] = fromFloat[T](w00*s00 + w10*s10 + w01*s01 + w11*s11)
			}
		case common.BorderReplicate:
			cx0 := clampInt(x0, 0, w-1)
			cy0 := clampInt(y0, 0, h-1)
			cx1 := clampInt(x0+1, 0, w-1)
			cy1 := clampInt(y0+1, 0, h-1)
			blendTaps(dstRow[di:], src, cx0, cy0, cx1, cy1, w00, w10, w01, w11, c)
		case common.BorderTransparent:
			if uint(x0) >= uint(w) || uint(y0) >= uint(h) {
				continue
			}
			cx1 := clampInt(x0+1, 0, w-1)
			cy1 := clampInt(y0+1, 0, h-1)
			blendTaps(dstRow[di:], src, x0, y0, cx1, cy1, w00, w10, w01, w11, c)
		}
	}
}

// blendTaps blends four resolved (always in-range) tap coordinates.
func blendTaps[T Elem](dst []T, src *Image[T], x0, y0, x1, y1 int, w00, w10, w01, w11 float32, c int) {
	i00 := y0*src.Stride + x0*c
	i10 := y0*src.Stride + x1*c
	i01 := y1*src.Stride + x0*c
	i11 := y1*src.Stride + x1*c
	for k := 0; k < c; k++ {
		acc := w00*float32(src.Pix[i00+k]) +
			w10*float32(src.Pix[i10+k]) +
			w01*float32(src.Pix[i01+k]) +
			w11*float32(src.Pix[i11+k])
		dst[k] = fromFloat[T](acc)
	}
}

// fromFloat converts an accumulated sample back to the element type. uint8
// rounds half away from zero and clamps to [0, 255]; float32 stores the
// accumulation unchanged. The switch resolves per instantiation, so the
// pixel loops never inspect types dynamically.
func fromFloat[T Elem](v float32) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		if v <= 0 {
			return T(0)
		}
		if v >= 255 {
			return T(255)
		}
		return T(v + 0.5)
	default:
		return T(v)
	}
}
