package common

// AdaptiveMethod selects how the adaptive-threshold kernel computes the
// per-pixel local statistic.
type AdaptiveMethod int

const (
	// AdaptiveMean uses the unweighted mean of the blockSize x blockSize
	// neighborhood.
	AdaptiveMean AdaptiveMethod = iota
	// AdaptiveGaussian uses a Gaussian-weighted mean of the neighborhood.
	AdaptiveGaussian
)

// String returns the canonical lowercase name of the method.
func (m AdaptiveMethod) String() string {
	switch m {
	case AdaptiveMean:
		return "mean"
	case AdaptiveGaussian:
		return "gaussian"
	default:
		return "unknown"
	}
}

// ThresholdType selects the output polarity of a threshold comparison.
type ThresholdType int

const (
	// ThresholdBinary writes maxValue where the source exceeds the local
	// threshold and zero elsewhere.
	ThresholdBinary ThresholdType = iota
	// ThresholdBinaryInv writes zero where the source exceeds the local
	// threshold and maxValue elsewhere.
	ThresholdBinaryInv
)

// String returns the canonical lowercase name of the threshold type.
func (t ThresholdType) String() string {
	switch t {
	case ThresholdBinary:
		return "binary"
	case ThresholdBinaryInv:
		return "binary-inv"
	default:
		return "unknown"
	}
}
