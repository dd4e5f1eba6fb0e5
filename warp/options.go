package warp

import "github.com/nvr-ai/go-imgproc/common"

// Options configures a warp call. The zero value is the documented default:
// constant border with fill value 0, serial execution.
type Options[T Elem] struct {
	// Border selects the out-of-range resolution policy.
	Border common.BorderType
	// Value is the fill element for common.BorderConstant. It is applied
	// to every channel of an out-of-range sample and ignored by the other
	// border types.
	Value T
	// Parallel partitions the output grid by row ranges across goroutines.
	// Each worker writes disjoint rows, so output is bit-identical to the
	// serial path for any worker count.
	Parallel bool
	// Workers caps the goroutine count when Parallel is set. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int
}
