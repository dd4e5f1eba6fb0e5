// Package threshold implements locally adaptive thresholding for 8-bit
// single-channel images. The local statistic is a blockSize x blockSize
// mean, either unweighted (separable box filter with a sliding window) or
// Gaussian-weighted, with replicate borders. It is a collaborator of the
// resampling engine, not part of it: the two share only the border
// enumeration.
package threshold

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-imgproc/common"
)

// AdaptiveThreshold binarizes src into dst against a per-pixel local
// threshold T(x, y) = localMean(x, y) - delta.
//
// Arguments:
//   - height, width: image dimensions.
//   - inStride, outStride: elements per row of src and dst.
//   - src, dst: caller-owned single-channel 8-bit buffers.
//   - maxValue: value written for pixels on the "set" side, clamped to
//     [0, 255].
//   - method: common.AdaptiveMean or common.AdaptiveGaussian.
//   - thresholdType: common.ThresholdBinary writes maxValue where
//     src > T and 0 elsewhere; common.ThresholdBinaryInv inverts that.
//   - blockSize: neighborhood side length, odd and >= 3.
//   - delta: constant subtracted from the local mean.
//   - border: only common.BorderReplicate is supported.
//
// Returns:
//   - error: non-nil for nil/short buffers, an even or too-small
//     blockSize, or an unsupported border type.
func AdaptiveThreshold(
	height, width, inStride int,
	src []uint8,
	outStride int,
	dst []uint8,
	maxValue int,
	method common.AdaptiveMethod,
	thresholdType common.ThresholdType,
	blockSize int,
	delta float64,
	border common.BorderType,
) error {
	if src == nil || dst == nil {
		return errors.New("threshold: nil pixel buffer")
	}
	if height <= 0 || width <= 0 {
		return errors.Errorf("threshold: invalid dimensions %dx%d", width, height)
	}
	if len(src) < (height-1)*inStride+width || len(dst) < (height-1)*outStride+width {
		return errors.New("threshold: pixel buffer too short for dimensions")
	}
	if blockSize < 3 || blockSize%2 == 0 {
		return errors.Errorf("threshold: block size must be odd and >= 3, got %d", blockSize)
	}
	if border != common.BorderReplicate {
		return errors.Errorf("threshold: unsupported border type %s", border)
	}

	var mv uint8
	switch {
	case maxValue < 0:
		mv = 0
	case maxValue > 255:
		mv = 255
	default:
		mv = uint8(maxValue)
	}

	mean := make([]float32, height*width)
	switch method {
	case common.AdaptiveMean:
		boxMean(src, mean, height, width, inStride, blockSize/2)
	case common.AdaptiveGaussian:
		gaussianMean(src, mean, height, width, inStride, blockSize)
	default:
		return errors.Errorf("threshold: unsupported adaptive method %s", method)
	}

	lo, hi := uint8(0), mv
	if thresholdType == common.ThresholdBinaryInv {
		lo, hi = mv, 0
	} else if thresholdType != common.ThresholdBinary {
		return errors.Errorf("threshold: unsupported threshold type %s", thresholdType)
	}

	d := float32(delta)
	for y := 0; y < height; y++ {
		srcRow := src[y*inStride:]
		dstRow := dst[y*outStride:]
		meanRow := mean[y*width:]
		for x := 0; x < width; x++ {
			if float32(srcRow[x]) > meanRow[x]-d {
				dstRow[x] = hi
			} else {
				dstRow[x] = lo
			}
		}
	}
	return nil
}

// boxMean computes the sliding-window mean of the (2r+1)^2 neighborhood
// with replicate borders, separably: a horizontal pass with an O(1)
// per-pixel update, then a vertical pass over the row sums.
func boxMean(src []uint8, out []float32, height, width, stride, r int) {
	window := 2*r + 1
	rowSum := make([]float32, height*width)

	for y := 0; y < height; y++ {
		srcRow := src[y*stride:]
		load := func(x int) float32 {
			return float32(srcRow[clampIndex(x, width)])
		}
		var sum float32
		for dx := -r; dx <= r; dx++ {
			sum += load(dx)
		}
		dstRow := rowSum[y*width:]
		for x := 0; x < width; x++ {
			dstRow[x] = sum
			sum += load(x+r+1) - load(x-r)
		}
	}

	inv := 1 / float32(window*window)
	for x := 0; x < width; x++ {
		load := func(y int) float32 {
			return rowSum[clampIndex(y, height)*width+x]
		}
		var sum float32
		for dy := -r; dy <= r; dy++ {
			sum += load(dy)
		}
		for y := 0; y < height; y++ {
			out[y*width+x] = sum * inv
			sum += load(y+r+1) - load(y-r)
		}
	}
}

// gaussianMean computes a Gaussian-weighted neighborhood mean, separably,
// with replicate borders.
func gaussianMean(src []uint8, out []float32, height, width, stride, blockSize int) {
	weights := gaussianWeights(blockSize)
	r := blockSize / 2

	tmp := make([]float32, height*width)
	for y := 0; y < height; y++ {
		srcRow := src[y*stride:]
		dstRow := tmp[y*width:]
		for x := 0; x < width; x++ {
			var acc float32
			for i, wt := range weights {
				acc += wt * float32(srcRow[clampIndex(x+i-r, width)])
			}
			dstRow[x] = acc
		}
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			var acc float32
			for i, wt := range weights {
				acc += wt * tmp[clampIndex(y+i-r, height)*width+x]
			}
			out[y*width+x] = acc
		}
	}
}

// gaussianWeights returns a normalized 1D Gaussian kernel of length
// blockSize with sigma = 0.3*((blockSize-1)*0.5 - 1) + 0.8.
func gaussianWeights(blockSize int) []float32 {
	sigma := 0.3*(float32(blockSize-1)*0.5-1) + 0.8
	r := blockSize / 2
	weights := make([]float32, blockSize)
	var sum float32
	for i := range weights {
		d := float32(i - r)
		weights[i] = math32.Exp(-d * d / (2 * sigma * sigma))
		sum += weights[i]
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// clampIndex maps i into [0, n) by clamping, the replicate border rule.
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
