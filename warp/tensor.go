package warp

import (
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
)

// ImageFromTensor views a rank-3 HWC *tensor.Dense as an Image without
// copying pixel data. The tensor must be row-major with a unit stride in
// the channel dimension; a padded row stride is carried through to the
// view. Mutations through the view are visible in the tensor and vice
// versa, so the usual caller-ownership rules apply for the duration of a
// warp call.
func ImageFromTensor[T Elem](t *tensor.Dense) (*Image[T], error) {
	if t == nil {
		return nil, ErrNilBuffer
	}
	shape := t.Shape()
	if len(shape) != 3 {
		return nil, errors.Errorf("warp: want a rank-3 HWC tensor, got shape %v", shape)
	}
	h, w, c := shape[0], shape[1], shape[2]
	if c != 1 && c != 3 && c != 4 {
		return nil, errors.Wrapf(ErrChannels, "tensor shape %v", shape)
	}
	strides := t.Strides()
	if strides[2] != 1 || strides[1] != c {
		return nil, errors.Errorf("warp: want packed HWC strides, got %v", strides)
	}
	data, ok := t.Data().([]T)
	if !ok {
		return nil, errors.Errorf("warp: tensor element type %v does not match view element type", t.Dtype())
	}
	return &Image[T]{
		Height:   h,
		Width:    w,
		Stride:   strides[0],
		Channels: c,
		Pix:      data,
	}, nil
}
