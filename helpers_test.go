package qprep

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomState draws a dense random complex vector of length 2^n and
// normalizes it. Seeded by the caller for determinism.
func randomState(t *testing.T, r *rand.Rand, n int) *AmplitudeVector {
	t.Helper()
	amps := make([]complex128, 1<<n)
	for i := range amps {
		amps[i] = complex(r.NormFloat64(), r.NormFloat64())
	}
	norm := complex(vectorNorm(amps), 0)
	for i := range amps {
		amps[i] /= norm
	}
	v, err := NewAmplitudeVector(amps)
	require.NoError(t, err)
	return v
}

// basisState returns the computational basis vector |index⟩ on n qubits.
func basisState(t *testing.T, n, index int) *AmplitudeVector {
	t.Helper()
	amps := make([]complex128, 1<<n)
	amps[index] = 1
	v, err := NewAmplitudeVector(amps)
	require.NoError(t, err)
	return v
}

// ascendingQubits returns the labels 0..n-1, most-significant first.
func ascendingQubits(n int) []int {
	qs := make([]int, n)
	for i := range qs {
		qs[i] = i
	}
	return qs
}

// executeAndVerify runs seq from |0...0⟩ and checks it against target within
// tol, returning the verification for further assertions.
func executeAndVerify(t *testing.T, seq *Sequence, target *AmplitudeVector, tol float64) Verification {
	t.Helper()
	sv, err := Execute(seq, target.NumQubits())
	require.NoError(t, err)

	got := Verify(sv.Amplitudes, target)
	require.InDelta(t, 1, got.Norm, 1e-9, "executed norm must stay 1")
	require.Less(t, got.MaxAbsError, tol, "amplitude error beyond tolerance")
	require.Less(t, got.FidelityError, tol, "fidelity error beyond tolerance")
	return got
}
