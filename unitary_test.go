package qprep

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// rzMatrix and ryMatrix build the rotation conventions the decomposition and
// the executor share: Rz(t) = diag(e^{-it/2}, e^{it/2}), Ry(t) real.
func rzMatrix(t float64) Unitary2 {
	return Unitary2{
		{cmplx.Exp(complex(0, -t/2)), 0},
		{0, cmplx.Exp(complex(0, t/2))},
	}
}

func ryMatrix(t float64) Unitary2 {
	c, s := complex(math.Cos(t/2), 0), complex(math.Sin(t/2), 0)
	return Unitary2{{c, -s}, {s, c}}
}

// randomUnitary2 draws a Haar-ish random 2x2 unitary: random SU(2) element
// from a normalized complex pair, times a random global phase.
func randomUnitary2(r *rand.Rand) Unitary2 {
	a := complex(r.NormFloat64(), r.NormFloat64())
	b := complex(r.NormFloat64(), r.NormFloat64())
	norm := complex(math.Hypot(cmplx.Abs(a), cmplx.Abs(b)), 0)
	a, b = a/norm, b/norm
	phase := cmplx.Exp(complex(0, 2*math.Pi*r.Float64()))
	return Unitary2{
		{phase * a, phase * -cmplx.Conj(b)},
		{phase * b, phase * cmplx.Conj(a)},
	}
}

func requireUnitaryEqual(t *testing.T, want, got Unitary2, tol float64) {
	t.Helper()
	for i := range 2 {
		for j := range 2 {
			require.InDelta(t, real(want[i][j]), real(got[i][j]), tol)
			require.InDelta(t, imag(want[i][j]), imag(got[i][j]), tol)
		}
	}
}

func TestZYZAnglesReconstruct(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for range 50 {
		u := randomUnitary2(r)
		alpha, beta, gamma, delta := zyzAngles(u)

		rebuilt := rzMatrix(beta).Mul(ryMatrix(gamma)).Mul(rzMatrix(delta))
		phase := cmplx.Exp(complex(0, alpha))
		for i := range 2 {
			for j := range 2 {
				rebuilt[i][j] *= phase
			}
		}
		requireUnitaryEqual(t, u, rebuilt, 1e-10)
	}
}

func TestZYZAnglesSpecialCases(t *testing.T) {
	tests := []struct {
		name string
		u    Unitary2
	}{
		{"identity", identity2},
		{"pure rz", rzMatrix(1.3)},
		{"pure ry", ryMatrix(2.1)},
		{"anti-diagonal", Unitary2{{0, 1}, {-1, 0}}},
		{"phase only", Unitary2{{1i, 0}, {0, 1i}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alpha, beta, gamma, delta := zyzAngles(tt.u)
			rebuilt := rzMatrix(beta).Mul(ryMatrix(gamma)).Mul(rzMatrix(delta))
			phase := cmplx.Exp(complex(0, alpha))
			for i := range 2 {
				for j := range 2 {
					rebuilt[i][j] *= phase
				}
			}
			requireUnitaryEqual(t, tt.u, rebuilt, 1e-12)
		})
	}
}

func TestUnitary2DaggerAndApply(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	u := randomUnitary2(r)

	requireUnitaryEqual(t, identity2, u.Mul(u.Dagger()), 1e-12)

	a, b := u.Apply(1, 0)
	require.InDelta(t, real(u[0][0]), real(a), 1e-15)
	require.InDelta(t, real(u[1][0]), real(b), 1e-15)
}
