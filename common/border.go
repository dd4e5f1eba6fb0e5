// Package common holds the enumerations shared across the image-processing
// kernels. Everything here is an immutable constant; the package carries no
// process-wide state.
package common

// BorderType selects how a kernel resolves samples that fall outside the
// source image bounds.
type BorderType int

const (
	// BorderConstant substitutes a caller-supplied value for every channel
	// of an out-of-range sample, independent of neighboring in-range samples.
	BorderConstant BorderType = iota
	// BorderReplicate clamps each out-of-range coordinate component to the
	// nearest valid border index.
	BorderReplicate
	// BorderTransparent leaves the destination pixel's existing contents
	// untouched when the required source samples are unreachable.
	BorderTransparent
)

// String returns the canonical lowercase name of the border type.
func (b BorderType) String() string {
	switch b {
	case BorderConstant:
		return "constant"
	case BorderReplicate:
		return "replicate"
	case BorderTransparent:
		return "transparent"
	default:
		return "unknown"
	}
}
