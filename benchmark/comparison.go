package benchmark

import (
	"image"
	"time"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"github.com/nvr-ai/go-imgproc/internal/imageutil"
	"github.com/nvr-ai/go-imgproc/warp"
)

// ScaleComparison reports how long a pure-scale bilinear warp takes next
// to two third-party resamplers on identical inputs. It exists to keep the
// engine honest, not to validate pixel output: the libraries differ in
// filtering details, so only the timings are comparable.
type ScaleComparison struct {
	SrcWidth   int           `json:"src_width"`
	SrcHeight  int           `json:"src_height"`
	DstWidth   int           `json:"dst_width"`
	DstHeight  int           `json:"dst_height"`
	Iterations int           `json:"iterations"`
	WarpLinear time.Duration `json:"warp_linear"`
	NfntResize time.Duration `json:"nfnt_resize"`
	XImageDraw time.Duration `json:"x_image_draw"`
}

// CompareScale times a dstW x dstH bilinear rescale of a random
// srcW x srcH RGBA image through the warp engine, nfnt/resize and
// x/image/draw. Durations are totals over all iterations.
func CompareScale(srcW, srcH, dstW, dstH, iterations int) (*ScaleComparison, error) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 || iterations <= 0 {
		return nil, errors.New("benchmark: dimensions and iterations must be positive")
	}

	src := warp.NewImage[uint8](srcH, srcW, 4)
	dst := warp.NewImage[uint8](dstH, dstW, 4)
	imageutil.RandomFill(src.Pix, randomSeed, 0, 256)

	// The same pixels as an image.RGBA for the library calls.
	srcImg := image.NewRGBA(image.Rect(0, 0, srcW, srcH))
	copy(srcImg.Pix, src.Pix)
	dstImg := image.NewRGBA(image.Rect(0, 0, dstW, dstH))

	// Output-to-input scale matrix.
	m := warp.AffineMatrix{
		float64(srcW) / float64(dstW), 0, 0,
		0, float64(srcH) / float64(dstH), 0,
	}
	opt := warp.Options[uint8]{}

	cmp := &ScaleComparison{
		SrcWidth:   srcW,
		SrcHeight:  srcH,
		DstWidth:   dstW,
		DstHeight:  dstH,
		Iterations: iterations,
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := warp.AffineLinear(dst, src, m, opt); err != nil {
			return nil, errors.Wrap(err, "warp rescale")
		}
	}
	cmp.WarpLinear = time.Since(start)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		resize.Resize(uint(dstW), uint(dstH), srcImg, resize.Bilinear)
	}
	cmp.NfntResize = time.Since(start)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		xdraw.ApproxBiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), xdraw.Src, nil)
	}
	cmp.XImageDraw = time.Since(start)

	return cmp, nil
}
