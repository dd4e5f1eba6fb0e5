// Package warp implements generic 2D geometric resampling: affine and
// perspective warps over strided, caller-owned pixel buffers, with
// nearest-point or bilinear sampling and configurable border policies.
//
// Every operation maps each output pixel back into source space through a
// caller-supplied output-to-input matrix, samples the source, and writes
// the result at the strided destination offset. Calls are stateless and
// reentrant: identical inputs produce bit-identical outputs regardless of
// the worker count.
//
// Validation is deliberately minimal. Only catastrophic misuse (nil or
// short buffers, unsupported channel counts) is reported; malformed
// strides, degenerate matrices and the like are undefined behavior by
// contract, matching the documented caller obligation.
package warp

import "github.com/pkg/errors"

// AffineNearestPoint warps src into dst using a 2x3 output-to-input affine
// matrix and nearest-point sampling.
//
// Arguments:
//   - dst: destination view; fully overwritten except where the
//     transparent border policy skips pixels.
//   - src: source view, read-only during the call.
//   - m: output-to-input affine coefficients, row-major.
//   - opt: border policy and execution options; the zero value selects a
//     constant border with fill value 0, serial execution.
//
// Returns:
//   - error: non-nil only for catastrophic misuse.
func AffineNearestPoint[T Elem](dst, src *Image[T], m AffineMatrix, opt Options[T]) error {
	if err := checkArgs(dst, src); err != nil {
		return err
	}
	warpNearest(dst, src, m, opt)
	return nil
}

// AffineLinear warps src into dst using a 2x3 output-to-input affine
// matrix and bilinear sampling. Arguments and failure semantics match
// AffineNearestPoint.
func AffineLinear[T Elem](dst, src *Image[T], m AffineMatrix, opt Options[T]) error {
	if err := checkArgs(dst, src); err != nil {
		return err
	}
	warpLinear(dst, src, m, opt)
	return nil
}

// PerspectiveNearestPoint warps src into dst using a 3x3 output-to-input
// projective matrix and nearest-point sampling. Arguments and failure
// semantics match AffineNearestPoint.
func PerspectiveNearestPoint[T Elem](dst, src *Image[T], m PerspectiveMatrix, opt Options[T]) error {
	if err := checkArgs(dst, src); err != nil {
		return err
	}
	warpNearest(dst, src, m, opt)
	return nil
}

// PerspectiveLinear warps src into dst using a 3x3 output-to-input
// projective matrix and bilinear sampling. Arguments and failure semantics
// match AffineNearestPoint.
func PerspectiveLinear[T Elem](dst, src *Image[T], m PerspectiveMatrix, opt Options[T]) error {
	if err := checkArgs(dst, src); err != nil {
		return err
	}
	warpLinear(dst, src, m, opt)
	return nil
}

// checkArgs is the entire validation surface of the engine.
func checkArgs[T Elem](dst, src *Image[T]) error {
	if dst == nil || src == nil {
		return ErrNilBuffer
	}
	if err := src.validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dst.validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if src.Channels != dst.Channels {
		return errors.Wrapf(ErrChannels, "source has %d channels, destination %d", src.Channels, dst.Channels)
	}
	return nil
}
