package qprep

import (
	"math"
	"math/cmplx"
)

// Unitary2 is a 2x2 complex matrix, row-major. It only ever lives for the
// duration of a synthesis call, carrying the single-qubit operation that
// merges one amplitude pair.
type Unitary2 [2][2]complex128

// identity2 is the degenerate-pair fallback.
var identity2 = Unitary2{{1, 0}, {0, 1}}

// Mul returns u·v.
func (u Unitary2) Mul(v Unitary2) Unitary2 {
	var out Unitary2
	for i := range 2 {
		for j := range 2 {
			out[i][j] = u[i][0]*v[0][j] + u[i][1]*v[1][j]
		}
	}
	return out
}

// Dagger returns the conjugate transpose of u.
func (u Unitary2) Dagger() Unitary2 {
	return Unitary2{
		{cmplx.Conj(u[0][0]), cmplx.Conj(u[1][0])},
		{cmplx.Conj(u[0][1]), cmplx.Conj(u[1][1])},
	}
}

// Apply returns u acting on the column vector (a, b).
func (u Unitary2) Apply(a, b complex128) (complex128, complex128) {
	return u[0][0]*a + u[0][1]*b, u[1][0]*a + u[1][1]*b
}

// zyzAngles factors a unitary as e^{i·alpha} · Rz(beta) · Ry(gamma) · Rz(delta)
// with Rz(t) = diag(e^{-it/2}, e^{it/2}) and Ry the real rotation. The
// factorization is exact for any unitary input.
func zyzAngles(u Unitary2) (alpha, beta, gamma, delta float64) {
	det := u[0][0]*u[1][1] - u[0][1]*u[1][0]
	alpha = cmplx.Phase(det) / 2

	// v is u with the global phase removed, an exact SU(2) element of the form
	// [[a, -conj(b)], [b, conj(a)]].
	phase := cmplx.Exp(complex(0, -alpha))
	a := phase * u[0][0]
	b := phase * u[1][0]

	absA, absB := cmplx.Abs(a), cmplx.Abs(b)
	gamma = 2 * math.Atan2(absB, absA)

	const eps = 1e-12
	switch {
	case absB < eps:
		beta = -2 * cmplx.Phase(a)
	case absA < eps:
		beta = 2 * cmplx.Phase(b)
	default:
		beta = cmplx.Phase(b) - cmplx.Phase(a)
		delta = -cmplx.Phase(b) - cmplx.Phase(a)
	}
	return alpha, beta, gamma, delta
}
