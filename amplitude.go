package qprep

import (
	"fmt"
	"math"
	"math/bits"
)

// NormTolerance is how far the Euclidean norm of an input vector may deviate
// from 1 before it is rejected. The same threshold decides when a sub-state is
// degenerate enough to take the identity fallback during synthesis.
const NormTolerance = 1e-8

// InvalidStateError reports an amplitude vector that cannot describe a qubit
// register: wrong dimension or non-unit norm. No gates are emitted for such
// inputs.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return "invalid state: " + e.Reason
}

// AmplitudeVector is a validated complex amplitude vector of length 2^n.
// Index i corresponds to the binary expansion of i over the qubit list,
// most-significant qubit first. Instances are never mutated after creation.
type AmplitudeVector struct {
	amps      []complex128
	numQubits int
}

// NewAmplitudeVector validates amps and wraps it. The length must be an exact
// power of two and the Euclidean norm must be within NormTolerance of 1;
// violations return *InvalidStateError. The input slice is copied.
func NewAmplitudeVector(amps []complex128) (*AmplitudeVector, error) {
	n := len(amps)
	if n == 0 || n&(n-1) != 0 {
		return nil, &InvalidStateError{Reason: fmt.Sprintf("dimension %d is not a power of two", n)}
	}
	norm := vectorNorm(amps)
	if math.Abs(norm-1) > NormTolerance {
		return nil, &InvalidStateError{Reason: fmt.Sprintf("norm %g deviates from 1 by more than %g", norm, NormTolerance)}
	}
	cp := make([]complex128, n)
	copy(cp, amps)
	return &AmplitudeVector{amps: cp, numQubits: bits.TrailingZeros(uint(n))}, nil
}

// NumQubits returns n for a vector of length 2^n.
func (v *AmplitudeVector) NumQubits() int { return v.numQubits }

// Len returns the vector dimension 2^n.
func (v *AmplitudeVector) Len() int { return len(v.amps) }

// Amplitudes returns a copy of the underlying amplitudes.
func (v *AmplitudeVector) Amplitudes() []complex128 {
	cp := make([]complex128, len(v.amps))
	copy(cp, v.amps)
	return cp
}

// At returns the amplitude at basis index i.
func (v *AmplitudeVector) At(i int) complex128 { return v.amps[i] }

// vectorNorm returns the Euclidean norm of v.
func vectorNorm(v []complex128) float64 {
	sum := 0.0
	for _, a := range v {
		re, im := real(a), imag(a)
		sum += re*re + im*im
	}
	return math.Sqrt(sum)
}
