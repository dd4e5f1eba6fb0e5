package warp

// AffineMatrix holds the six coefficients of a 2x3 output-to-input affine
// mapping in row-major order:
//
//	u = m[0]*x + m[1]*y + m[2]
//	v = m[3]*x + m[4]*y + m[5]
//
// The caller supplies already-computed output-to-input coefficients; the
// engine performs no inversion and no degeneracy checks.
type AffineMatrix [6]float64

// Map converts integer output coordinates to floating source coordinates.
func (m AffineMatrix) Map(x, y float64) (u, v float64) {
	u = m[0]*x + m[1]*y + m[2]
	v = m[3]*x + m[4]*y + m[5]
	return u, v
}

// PerspectiveMatrix holds the nine coefficients of a 3x3 projective
// output-to-input mapping in row-major order. Map performs the homogeneous
// divide:
//
//	w = m[6]*x + m[7]*y + m[8]
//	u = (m[0]*x + m[1]*y + m[2]) / w
//	v = (m[3]*x + m[4]*y + m[5]) / w
//
// A denominator at or near zero is undefined behavior by contract; the
// engine performs no degeneracy check in the hot path.
type PerspectiveMatrix [9]float64

// Map converts integer output coordinates to floating source coordinates.
func (m PerspectiveMatrix) Map(x, y float64) (u, v float64) {
	w := m[6]*x + m[7]*y + m[8]
	u = (m[0]*x + m[1]*y + m[2]) / w
	v = (m[3]*x + m[4]*y + m[5]) / w
	return u, v
}

// mapper abstracts the two matrix kinds. The engine loops are generic over
// the concrete matrix type, so Map resolves statically per instantiation
// and the affine/perspective distinction costs nothing per pixel.
type mapper interface {
	Map(x, y float64) (u, v float64)
}
