package qprep

import (
	"fmt"
	"math/cmplx"
)

// RecursivePrepare synthesizes a preparation circuit for v over the given
// qubits (most-significant first) by recursive uniformly controlled
// nullification, after Bergholm, Vartiainen, Möttönen and Salomaa.
//
// Each level pairs adjacent amplitudes, builds for every pair the 2x2 unitary
// that rotates it onto (r, 0), and synthesizes the pairs as one uniformly
// controlled gate on the last qubit. The nullified half-length vector, phase
// corrected by the residual of that gate, is prepared recursively; the level
// itself is appended as its dagger, because preparation composes in reverse of
// nullification. Recursion depth is exactly v.NumQubits().
func RecursivePrepare(v *AmplitudeVector, qubits []int) (*Sequence, error) {
	if len(qubits) != v.NumQubits() {
		return nil, fmt.Errorf("state of %d qubits given %d qubit labels", v.NumQubits(), len(qubits))
	}
	return recursivePrepare(v.Amplitudes(), qubits), nil
}

func recursivePrepare(state []complex128, qubits []int) *Sequence {
	n := len(qubits)
	if n == 0 {
		// A 0-qubit state is a bare global phase; nothing to prepare.
		return NewSequence()
	}

	half := len(state) / 2
	nullified := make([]complex128, half)
	unitaries := make([]Unitary2, half)
	for i := range half {
		s0, s1 := state[2*i], state[2*i+1]
		r := vectorNorm([]complex128{s0, s1})
		nullified[i] = complex(r, 0)
		if r > NormTolerance {
			rc := complex(r, 0)
			// Dagger of the matrix whose first column is the normalized pair,
			// so the pair itself maps to (r, 0).
			unitaries[i] = Unitary2{
				{s0 / rc, -cmplx.Conj(s1) / rc},
				{s1 / rc, cmplx.Conj(s0) / rc},
			}.Dagger()
		} else {
			unitaries[i] = identity2
		}
	}

	ucc, residual, err := UniformlyControlled(unitaries, qubits[:n-1], qubits[n-1])
	if err != nil {
		// Unreachable: pair count matches control count by construction.
		panic(err)
	}

	// Every second residual entry is the phase the level imprints on the
	// surviving |...0⟩ amplitudes; divide it out so the recursion prepares
	// the state the dagger of this level expects.
	for i := range half {
		nullified[i] /= residual[2*i]
	}

	seq := recursivePrepare(nullified, qubits[:n-1])
	seq.Extend(ucc.Dagger())
	return seq
}
