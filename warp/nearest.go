package warp

import (
	"math"

	"github.com/nvr-ai/go-imgproc/common"
)

// warpNearest traverses the output grid row-major and resolves each pixel
// with nearest-point sampling.
func warpNearest[T Elem, M mapper](dst, src *Image[T], m M, opt Options[T]) {
	forEachRowRange(dst.Height, opt.Parallel, opt.Workers, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			nearestRow(dst, src, m, opt, y)
		}
	})
}

// nearestRow fills one output row. The in-range pick copies the source
// pixel directly; out-of-range picks go through the border policy.
//
// Rounding convention: half-way coordinates round away from zero
// (math.Round), so the rule is stable on both sides of the axes.
func nearestRow[T Elem, M mapper](dst, src *Image[T], m M, opt Options[T], y int) {
	c := dst.Channels
	w, h := src.Width, src.Height
	fy := float64(y)
	dstRow := dst.Pix[y*dst.Stride:]
	for x := 0; x < dst.Width; x++ {
		u, v := m.Map(float64(x), fy)
		sx := int(math.Round(u))
		sy := int(math.Round(v))
		di := x * c
		if uint(sx) < uint(w) && uint(sy) < uint(h) {
			si := sy*src.Stride + sx*c
			copy(dstRow[di:di+c], src.Pix[si:si+c])
			continue
		}
		switch opt.Border {
		case common.BorderConstant:
			for k := 0; k < c; k++ {
				dstRow[di+k] = opt.Value
			}
		case common.BorderReplicate:
			si := clampInt(sy, 0, h-1)*src.Stride + clampInt(sx, 0, w-1)*c
			copy(dstRow[di:di+c], src.Pix[si:si+c])
		case common.BorderTransparent:
			// Destination keeps its prior contents.
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
