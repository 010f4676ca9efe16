package qprep

import (
	"fmt"
	"math"
	"math/cmplx"
)

// StateVector is a dense n-qubit statevector. Amplitude index i encodes qubit
// q in bit n-1-q, so the binary expansion of i reads the qubit list
// most-significant first, matching AmplitudeVector indexing.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector returns |0...0⟩ on numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// Execute applies seq to |0...0⟩ on numQubits qubits and returns the result.
// All qubit labels in seq must lie in [0, numQubits).
func Execute(seq *Sequence, numQubits int) (*StateVector, error) {
	sv := NewStateVector(numQubits)
	for _, g := range seq.Gates() {
		if err := sv.ApplyGate(g); err != nil {
			return nil, err
		}
	}
	return sv, nil
}

// ApplyGate applies a single gate in place.
func (s *StateVector) ApplyGate(g Gate) error {
	if g.Target < 0 || g.Target >= s.NumQubits {
		return fmt.Errorf("gate %s targets qubit outside register of size %d", g, s.NumQubits)
	}
	switch g.Kind {
	case KindRY:
		s.applyRY(g.Target, g.Theta)
	case KindRZ:
		s.applyRZ(g.Target, g.Theta)
	case KindCNOT:
		if g.Control < 0 || g.Control >= s.NumQubits {
			return fmt.Errorf("gate %s controls qubit outside register of size %d", g, s.NumQubits)
		}
		s.applyCX(g.Control, g.Target)
	case KindH:
		s.applyH(g.Target)
	case KindS:
		s.applyS(g.Target)
	default:
		return fmt.Errorf("unknown gate kind %v", g.Kind)
	}
	return nil
}

// bitOf maps a qubit label to its amplitude-index bit mask.
func (s *StateVector) bitOf(q int) int {
	return 1 << (s.NumQubits - 1 - q)
}

func (s *StateVector) applyH(q int) {
	factor := complex(1.0/math.Sqrt2, 0)
	bit := s.bitOf(q)
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = factor * (a + b)
			s.Amplitudes[j] = factor * (a - b)
		}
	}
}

func (s *StateVector) applyS(q int) {
	bit := s.bitOf(q)
	for i := range s.Amplitudes {
		if i&bit != 0 {
			s.Amplitudes[i] *= 1i
		}
	}
}

func (s *StateVector) applyRY(q int, theta float64) {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	bit := s.bitOf(q)
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = c*a - sn*b
			s.Amplitudes[j] = sn*a + c*b
		}
	}
}

func (s *StateVector) applyRZ(q int, theta float64) {
	phase := cmplx.Exp(complex(0, theta/2))
	bit := s.bitOf(q)
	for i := range s.Amplitudes {
		if i&bit != 0 {
			s.Amplitudes[i] *= phase
		} else {
			s.Amplitudes[i] *= cmplx.Conj(phase)
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	cBit, tBit := s.bitOf(control), s.bitOf(target)
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// Norm returns the Euclidean norm of the statevector.
func (s *StateVector) Norm() float64 {
	return vectorNorm(s.Amplitudes)
}
