package warp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/nvr-ai/go-imgproc/common"
	"github.com/nvr-ai/go-imgproc/internal/imageutil"
)

// TestLinearIntegerCoordsExact checks that bilinear sampling at
// integer-valued mapped coordinates (fu = fv = 0) reproduces the input
// exactly, with no blending error.
func TestLinearIntegerCoordsExact(t *testing.T) {
	t.Run("float32", func(t *testing.T) {
		src := NewImage[float32](5, 6, 3)
		imageutil.RandomFill(src.Pix, 10, -100, 100)
		dst := NewImage[float32](5, 6, 3)
		require.NoError(t, AffineLinear(dst, src, identityAffine, Options[float32]{}))
		assert.Equal(t, src.Pix, dst.Pix)
	})
	t.Run("uint8", func(t *testing.T) {
		src := NewImage[uint8](5, 6, 1)
		imageutil.RandomFill(src.Pix, 11, 0, 256)
		dst := NewImage[uint8](5, 6, 1)
		// Integer translation keeps fu = fv = 0 away from the origin too.
		m := AffineMatrix{1, 0, 2, 0, 1, 1}
		require.NoError(t, AffineLinear(dst, src, m, Options[uint8]{Border: common.BorderReplicate}))
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				assert.Equal(t, src.Pix[(y+1)*6+x+2], dst.Pix[y*6+x], "pixel (%d,%d)", x, y)
			}
		}
	})
}

// TestLinearFractionalBlend checks the four-tap blend at a half-pixel
// offset: the result is the exact average of the 2x2 neighborhood.
func TestLinearFractionalBlend(t *testing.T) {
	src := &Image[uint8]{Height: 2, Width: 2, Stride: 2, Channels: 1, Pix: []uint8{10, 20, 30, 40}}
	dst := NewImage[uint8](1, 1, 1)

	m := AffineMatrix{
		1, 0, 0.5,
		0, 1, 0.5,
	}
	require.NoError(t, AffineLinear(dst, src, m, Options[uint8]{}))
	assert.Equal(t, uint8(25), dst.Pix[0], "equal-weight blend of {10,20,30,40}")
}

// TestLinearRotation2x2Float3C is the fixed scenario: a 2x2 three-channel
// float image under a 90-degree rotation (output-to-input matrix
// [0,1,0, -1,0,1]) with linear sampling and a constant zero border. Every
// mapped coordinate is integral, so each output pixel must equal one
// source pixel exactly:
//
//	out(x, y) samples (u, v) = (y, 1-x)
func TestLinearRotation2x2Float3C(t *testing.T) {
	src := &Image[float32]{
		Height: 2, Width: 2, Stride: 6, Channels: 3,
		Pix: []float32{
			1, 2, 3 /* (0,0) */, 4, 5, 6, /* (1,0) */
			7, 8, 9 /* (0,1) */, 10, 11, 12, /* (1,1) */
		},
	}
	dst := NewImage[float32](2, 2, 3)

	m := AffineMatrix{
		0, 1, 0,
		-1, 0, 1,
	}
	require.NoError(t, AffineLinear(dst, src, m, Options[float32]{Border: common.BorderConstant, Value: 0}))

	want := []float32{
		7, 8, 9 /* out(0,0) <- src(0,1) */, 1, 2, 3, /* out(1,0) <- src(0,0) */
		10, 11, 12 /* out(0,1) <- src(1,1) */, 4, 5, 6, /* out(1,1) <- src(1,0) */
	}
	assert.Equal(t, want, dst.Pix)
}

// TestLinearConstantPartialCoverage checks that out-of-range taps under a
// constant border contribute the fill value weighted by their bilinear
// weight: at (-0.5, -0.5) only the (0,0) tap is in range, with weight 1/4.
func TestLinearConstantPartialCoverage(t *testing.T) {
	src := &Image[float32]{Height: 2, Width: 2, Stride: 2, Channels: 1, Pix: []float32{100, 0, 0, 0}}
	dst := NewImage[float32](1, 1, 1)

	m := AffineMatrix{
		1, 0, -0.5,
		0, 1, -0.5,
	}
	require.NoError(t, AffineLinear(dst, src, m, Options[float32]{Border: common.BorderConstant, Value: 0}))
	assert.InDelta(t, 25.0, dst.Pix[0], 1e-4, "0.25 * P(0,0) + 0.75 * border")

	// A nonzero fill contributes on the three missing taps.
	require.NoError(t, AffineLinear(dst, src, m, Options[float32]{Border: common.BorderConstant, Value: 40}))
	assert.InDelta(t, 55.0, dst.Pix[0], 1e-4, "0.25 * P(0,0) + 0.75 * 40")
}

// TestLinearTransparentPartialCoverage pins the transparent-mode rule for
// partially covered neighborhoods: the pixel is skipped when the top-left
// tap is out of range, otherwise the remaining taps clamp and the blend
// proceeds.
func TestLinearTransparentPartialCoverage(t *testing.T) {
	src := &Image[float32]{Height: 2, Width: 2, Stride: 2, Channels: 1, Pix: []float32{1, 2, 3, 4}}

	t.Run("top-left out skips the pixel", func(t *testing.T) {
		dst := NewImage[float32](1, 1, 1)
		dst.Pix[0] = -777 // sentinel
		m := AffineMatrix{1, 0, -0.5, 0, 1, -0.5}
		require.NoError(t, AffineLinear(dst, src, m, Options[float32]{Border: common.BorderTransparent}))
		assert.Equal(t, float32(-777), dst.Pix[0])
	})

	t.Run("top-left in blends with clamped taps", func(t *testing.T) {
		dst := NewImage[float32](1, 1, 1)
		dst.Pix[0] = -777
		// Maps to (1.5, 1.5): top-left tap (1,1) in range, the other
		// three clamp onto it, so the blend collapses to P(1,1).
		m := AffineMatrix{1, 0, 1.5, 0, 1, 1.5}
		require.NoError(t, AffineLinear(dst, src, m, Options[float32]{Border: common.BorderTransparent}))
		assert.InDelta(t, 4.0, dst.Pix[0], 1e-5)
	})
}

// TestRoundTripMAE warps a smooth image forward with a perspective matrix
// and back with its gonum-computed inverse; the interior must reconstruct
// within a small mean absolute error. Bilinear sampling reproduces linear
// ramps exactly, so the remaining error is float rounding.
func TestRoundTripMAE(t *testing.T) {
	const size = 64
	const margin = 6

	src := NewImage[float32](size, size, 1)
	imageutil.GradientFill(src.Pix, size, size, size, 1)

	forward := PerspectiveMatrix{
		1.02, 0.01, -0.5,
		-0.015, 0.99, 0.7,
		0.00002, -0.00001, 1,
	}
	fm := mat.NewDense(3, 3, []float64{
		forward[0], forward[1], forward[2],
		forward[3], forward[4], forward[5],
		forward[6], forward[7], forward[8],
	})
	var im mat.Dense
	require.NoError(t, im.Inverse(fm), "forward matrix must be invertible")
	var inverse PerspectiveMatrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inverse[i*3+j] = im.At(i, j)
		}
	}

	mid := NewImage[float32](size, size, 1)
	out := NewImage[float32](size, size, 1)
	opt := Options[float32]{Border: common.BorderReplicate}
	require.NoError(t, PerspectiveLinear(mid, src, forward, opt))
	require.NoError(t, PerspectiveLinear(out, mid, inverse, opt))

	var want, got []float32
	for y := margin; y < size-margin; y++ {
		for x := margin; x < size-margin; x++ {
			want = append(want, src.Pix[y*size+x])
			got = append(got, out.Pix[y*size+x])
		}
	}
	mae := imageutil.MeanAbsError(want, got)
	assert.Less(t, float64(mae), 0.5, "interior reconstruction error")
}
