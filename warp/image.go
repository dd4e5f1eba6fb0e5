package warp

import "github.com/pkg/errors"

// Elem is the closed set of pixel element types the engine operates on.
type Elem interface {
	uint8 | float32
}

// Image is a strided, row-major view over a caller-owned pixel buffer.
//
// Stride counts elements per row and must be at least Width*Channels;
// padding beyond that is never touched. Channels must be 1, 3 or 4. The
// engine only reads a source view and only writes a destination view; it
// never allocates or frees the backing slice.
type Image[T Elem] struct {
	Height   int
	Width    int
	Stride   int
	Channels int
	Pix      []T
}

// NewImage allocates a packed view (Stride = Width*Channels) for callers
// that do not manage their own buffers, such as tests and the benchmark
// harness. The returned buffer is owned by the caller like any other.
func NewImage[T Elem](height, width, channels int) *Image[T] {
	return &Image[T]{
		Height:   height,
		Width:    width,
		Stride:   width * channels,
		Channels: channels,
		Pix:      make([]T, height*width*channels),
	}
}

// Sentinel errors for the cheaply detectable misuse cases. Anything
// subtler than these is the caller's contract.
var (
	// ErrNilBuffer reports a view with no backing pixel slice.
	ErrNilBuffer = errors.New("warp: nil pixel buffer")
	// ErrShortBuffer reports a pixel slice too small for the view geometry.
	ErrShortBuffer = errors.New("warp: pixel buffer too short for view")
	// ErrChannels reports a channel count outside {1, 3, 4}.
	ErrChannels = errors.New("warp: channel count must be 1, 3 or 4")
)

// validate catches catastrophic misuse only: a missing buffer, an
// impossible channel count, or a buffer that cannot hold the last row.
// Stride consistency beyond that is not checked.
func (im *Image[T]) validate() error {
	if im.Pix == nil {
		return ErrNilBuffer
	}
	if im.Channels != 1 && im.Channels != 3 && im.Channels != 4 {
		return ErrChannels
	}
	if im.Height > 0 {
		need := (im.Height-1)*im.Stride + im.Width*im.Channels
		if len(im.Pix) < need {
			return ErrShortBuffer
		}
	}
	return nil
}
