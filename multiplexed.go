package qprep

import (
	"fmt"
	"math"
	"math/cmplx"
)

// MultiplexOptions configures MultiplexedPrepare. The choice affects gate
// count and order only, never the prepared state.
type MultiplexOptions struct {
	// Ordering sequences the control bit strings of each multiplexor.
	Ordering Ordering
	// ReverseZ fuses the Y and Z multiplexors of a level: the Z rotations are
	// issued walking the bit-string order backward, reusing the control parity
	// the Y pass left open instead of closing and reopening it with CNOTs.
	ReverseZ bool
}

// DefaultMultiplexOptions is Gray-code ordering with the reversed Z pass,
// the cheapest configuration.
func DefaultMultiplexOptions() MultiplexOptions {
	return MultiplexOptions{Ordering: OrderGray, ReverseZ: true}
}

// MultiplexedPrepare synthesizes a preparation circuit for v over the given
// qubits (most-significant first) level by level, after Shende, Bullock and
// Markov. At level i the vector is split into 2^i blocks; each block reduces
// to the norms and mean phases of its two halves, which fix how qubit i must
// rotate conditioned on the qubits above it: the norms set the multiplexed RY
// angle, the mean-phase difference the multiplexed RZ angle. The conditioned
// rotations are expanded into single rotations and transition CNOTs. There is
// no recursion.
func MultiplexedPrepare(v *AmplitudeVector, qubits []int, opt MultiplexOptions) (*Sequence, error) {
	if len(qubits) != v.NumQubits() {
		return nil, fmt.Errorf("state of %d qubits given %d qubit labels", v.NumQubits(), len(qubits))
	}

	n := v.NumQubits()
	state := v.Amplitudes()
	seq := NewSequence()
	for i := range n {
		blockLen := 1 << (n - i - 1)
		count := 1 << i
		thetas := make([]float64, count)
		phis := make([]float64, count)
		for j := range count {
			lower := state[2*j*blockLen : (2*j+1)*blockLen]
			upper := state[(2*j+1)*blockLen : (2*j+2)*blockLen]
			normLower, meanLower := blockProfile(lower)
			normUpper, meanUpper := blockProfile(upper)
			if math.Hypot(normLower, normUpper) <= NormTolerance {
				// Dead block: nothing reaches it, rotate by nothing.
				continue
			}
			thetas[j] = 2 * math.Atan2(normUpper, normLower)
			phis[j] = meanUpper - meanLower
		}
		seq.Extend(prepareMultiplexed(thetas, phis, qubits[:i], qubits[i], opt))
	}
	return seq, nil
}

// blockProfile reduces a block of amplitudes to its Euclidean norm and the
// arithmetic mean of its phases. The mean stays a plain real and is never
// reduced mod 2·pi: sibling-block differences beyond pi feed the RZ angles
// as-is, and the means telescope exactly across levels, so the last level
// leaves every amplitude with its true phase up to one global term.
func blockProfile(block []complex128) (norm, meanPhase float64) {
	for _, a := range block {
		meanPhase += cmplx.Phase(a)
	}
	meanPhase /= float64(len(block))
	return vectorNorm(block), meanPhase
}

// prepareMultiplexed emits the multiplexed RY (thetas) and RZ (phis) pair for
// one level, angles in radians, indexed by control assignment.
func prepareMultiplexed(thetas, phis []float64, controls []int, target int, opt MultiplexOptions) *Sequence {
	seq := NewSequence()
	if !opt.ReverseZ {
		// Independent full passes, each closed by its wrap-around CNOTs.
		seq.Extend(multiplexedRotation(KindRY, thetas, controls, target, opt.Ordering))
		seq.Extend(multiplexedRotation(KindRZ, phis, controls, target, opt.Ordering))
		return seq
	}

	bs, nums := orderedBitStrings(len(controls), opt.Ordering)
	last := len(bs) - 1

	// Forward Y pass, left open: no closing CNOTs after the last rotation.
	for m := range last {
		seq.Append(RY(walshAngle(bs[m], thetas, bs, nums), target))
		appendTransitionCNOTs(seq, bs[m], bs[m+1], controls, target)
	}
	seq.Append(RY(walshAngle(bs[last], thetas, bs, nums), target))

	// Z pass walked backward through the same order. The Z rotations commute
	// with each other, so the reversed walk still realizes the multiplexor
	// while unwinding the parity back to the all-zero string for free.
	seq.Append(RZ(walshAngle(bs[last], phis, bs, nums), target))
	for m := last - 1; m >= 0; m-- {
		appendTransitionCNOTs(seq, bs[m], bs[m+1], controls, target)
		seq.Append(RZ(walshAngle(bs[m], phis, bs, nums), target))
	}
	return seq
}
