// Package imageutil provides deterministic buffer generators and digests
// for kernel tests and benchmarks. It deliberately avoids importing the
// kernel packages; everything works on flat strided slices.
package imageutil

import (
	"crypto/md5"
	"fmt"
	"math"
	"math/rand"

	"github.com/chewxy/math32"
)

// Elem mirrors the element set supported by the kernels.
type Elem interface {
	uint8 | float32
}

// RandomFill fills pix with uniform values in [lo, hi) from a seeded
// source, so repeated runs see identical data.
func RandomFill[T Elem](pix []T, seed int64, lo, hi float64) {
	rng := rand.New(rand.NewSource(seed))
	span := hi - lo
	for i := range pix {
		pix[i] = T(lo + rng.Float64()*span)
	}
}

// GradientFill writes a smooth diagonal ramp scaled to [0, 255] into a
// strided single-plane or interleaved buffer. Smooth inputs keep bilinear
// resampling error bounded, which the round-trip tests rely on.
func GradientFill[T Elem](pix []T, height, width, stride, channels int) {
	den := float64(width + height - 2)
	if den <= 0 {
		den = 1
	}
	for y := 0; y < height; y++ {
		row := pix[y*stride:]
		for x := 0; x < width; x++ {
			v := T(255 * float64(x+y) / den)
			for k := 0; k < channels; k++ {
				row[x*channels+k] = v
			}
		}
	}
}

// Checksum returns a hex-encoded MD5 digest of the buffer contents, byte
// stable across runs. float32 elements hash their IEEE-754 bit patterns.
func Checksum[T Elem](pix []T) string {
	hash := md5.New()
	switch p := any(pix).(type) {
	case []uint8:
		hash.Write(p)
	case []float32:
		var b [4]byte
		for _, v := range p {
			bits := math.Float32bits(v)
			b[0] = byte(bits)
			b[1] = byte(bits >> 8)
			b[2] = byte(bits >> 16)
			b[3] = byte(bits >> 24)
			hash.Write(b[:])
		}
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}

// MeanAbsError returns the mean absolute difference between two equally
// sized buffers.
func MeanAbsError(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	var sum float32
	for i := range a {
		sum += math32.Abs(a[i] - b[i])
	}
	return sum / float32(len(a))
}
