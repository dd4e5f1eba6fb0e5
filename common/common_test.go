package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "constant", BorderConstant.String())
	assert.Equal(t, "replicate", BorderReplicate.String())
	assert.Equal(t, "transparent", BorderTransparent.String())
	assert.Equal(t, "mean", AdaptiveMean.String())
	assert.Equal(t, "gaussian", AdaptiveGaussian.String())
	assert.Equal(t, "binary", ThresholdBinary.String())
	assert.Equal(t, "binary-inv", ThresholdBinaryInv.String())
}

func TestUnknownEnumStrings(t *testing.T) {
	assert.Equal(t, "unknown", BorderType(99).String())
	assert.Equal(t, "unknown", AdaptiveMethod(99).String())
	assert.Equal(t, "unknown", ThresholdType(99).String())
}
