package qprep

import (
	"math"
	"math/cmplx"
)

// Verification reports how close an executed statevector came to its target,
// after removing the unobservable global phase.
type Verification struct {
	// Norm of the executed result; unitary sequences keep it at 1.
	Norm float64
	// MaxAbsError is max_i |w_i - v_i| over the phase-normalized vectors.
	MaxAbsError float64
	// FidelityError is | |⟨w|v⟩| - 1 |.
	FidelityError float64
}

// Verify compares an executed result against the target vector. Both vectors
// are normalized by the phase of the target's first nonzero entry before the
// element-wise comparison; the fidelity term is phase-free by construction.
func Verify(result []complex128, target *AmplitudeVector) Verification {
	v := target.Amplitudes()
	ref := 0
	for i, a := range v {
		if cmplx.Abs(a) > 1e-12 {
			ref = i
			break
		}
	}

	w := alignPhase(result, ref)
	v = alignPhase(v, ref)

	maxErr := 0.0
	var inner complex128
	for i := range v {
		maxErr = math.Max(maxErr, cmplx.Abs(w[i]-v[i]))
		inner += cmplx.Conj(w[i]) * v[i]
	}
	return Verification{
		Norm:          vectorNorm(result),
		MaxAbsError:   maxErr,
		FidelityError: math.Abs(cmplx.Abs(inner) - 1),
	}
}

// alignPhase divides every entry of v by the phase of v[ref].
func alignPhase(v []complex128, ref int) []complex128 {
	phase := cmplx.Exp(complex(0, cmplx.Phase(v[ref])))
	out := make([]complex128, len(v))
	for i, a := range v {
		out[i] = a / phase
	}
	return out
}
