package warp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffineMatrixMap(t *testing.T) {
	m := AffineMatrix{
		2, 0.5, 1,
		-0.25, 3, -2,
	}
	u, v := m.Map(4, 2)
	assert.InDelta(t, 2*4+0.5*2+1, u, 1e-12)
	assert.InDelta(t, -0.25*4+3*2-2, v, 1e-12)
}

func TestPerspectiveMatrixMap(t *testing.T) {
	t.Run("uniform scale cancels in the divide", func(t *testing.T) {
		m := PerspectiveMatrix{
			2, 0, 0,
			0, 2, 0,
			0, 0, 2,
		}
		u, v := m.Map(3, 5)
		assert.InDelta(t, 3, u, 1e-12)
		assert.InDelta(t, 5, v, 1e-12)
	})

	t.Run("homogeneous divide", func(t *testing.T) {
		m := PerspectiveMatrix{
			1, 0, 0,
			0, 1, 0,
			0.1, 0.2, 1,
		}
		// w = 0.1*10 + 0.2*5 + 1 = 3
		u, v := m.Map(10, 5)
		assert.InDelta(t, 10.0/3.0, u, 1e-12)
		assert.InDelta(t, 5.0/3.0, v, 1e-12)
	})
}
