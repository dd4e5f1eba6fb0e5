package warp

import (
	"fmt"
	"testing"

	"github.com/nvr-ai/go-imgproc/common"
	"github.com/nvr-ai/go-imgproc/internal/imageutil"
)

// The standard resolution ladder, QVGA through 4K UHD.
var benchSizes = []struct {
	w, h int
}{
	{320, 240},
	{640, 480},
	{1280, 720},
	{1920, 1080},
	{3840, 2160},
}

var benchMatrixAffine = AffineMatrix{
	0.98, 0.06, -4,
	-0.06, 0.98, 6,
}

var benchMatrixPerspective = PerspectiveMatrix{
	0.98, 0.06, -4,
	-0.06, 0.98, 6,
	0.00002, -0.00001, 1,
}

func benchImages(b *testing.B, w, h, channels int) (dst, src *Image[uint8]) {
	b.Helper()
	src = NewImage[uint8](h, w, channels)
	dst = NewImage[uint8](h, w, channels)
	imageutil.RandomFill(src.Pix, 42, 0, 256)
	b.SetBytes(int64(h * w * channels))
	b.ResetTimer()
	return dst, src
}

func BenchmarkAffineNearestPoint(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%dx3", size.w, size.h), func(b *testing.B) {
			dst, src := benchImages(b, size.w, size.h, 3)
			opt := Options[uint8]{Border: common.BorderConstant}
			for i := 0; i < b.N; i++ {
				if err := AffineNearestPoint(dst, src, benchMatrixAffine, opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAffineLinear(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%dx3", size.w, size.h), func(b *testing.B) {
			dst, src := benchImages(b, size.w, size.h, 3)
			opt := Options[uint8]{Border: common.BorderConstant}
			for i := 0; i < b.N; i++ {
				if err := AffineLinear(dst, src, benchMatrixAffine, opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPerspectiveLinear(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%dx3", size.w, size.h), func(b *testing.B) {
			dst, src := benchImages(b, size.w, size.h, 3)
			opt := Options[uint8]{Border: common.BorderConstant}
			for i := 0; i < b.N; i++ {
				if err := PerspectiveLinear(dst, src, benchMatrixPerspective, opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPerspectiveLinearParallel(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%dx3", size.w, size.h), func(b *testing.B) {
			dst, src := benchImages(b, size.w, size.h, 3)
			opt := Options[uint8]{Border: common.BorderConstant, Parallel: true}
			for i := 0; i < b.N; i++ {
				if err := PerspectiveLinear(dst, src, benchMatrixPerspective, opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPerspectiveLinearFloat32(b *testing.B) {
	for _, size := range benchSizes[:3] {
		b.Run(fmt.Sprintf("%dx%dx1", size.w, size.h), func(b *testing.B) {
			src := NewImage[float32](size.h, size.w, 1)
			dst := NewImage[float32](size.h, size.w, 1)
			imageutil.RandomFill(src.Pix, 42, 0, 1)
			b.SetBytes(int64(size.h * size.w * 4))
			b.ResetTimer()
			opt := Options[float32]{Border: common.BorderReplicate}
			for i := 0; i < b.N; i++ {
				if err := PerspectiveLinear(dst, src, benchMatrixPerspective, opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
