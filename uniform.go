package qprep

import (
	"fmt"
	"math/cmplx"
)

// UniformlyControlled synthesizes the uniformly controlled gate that applies
// unitaries[x] to the target qubit when the control qubits (most-significant
// first) hold the bit pattern x. It returns the gate sequence C together with
// a residual phase vector R of length 2·len(unitaries), constant on each
// 2-block, such that the ideal block-diagonal gate G satisfies
//
//	G = diag(R) · C.
//
// The residual collects the ZYZ global phases e^{i·alpha_x}, which a rotation
// multiplexor cannot realize; callers divide them out of whatever state the
// gate produced.
func UniformlyControlled(unitaries []Unitary2, controls []int, target int) (*Sequence, []complex128, error) {
	k := len(controls)
	if len(unitaries) != 1<<k {
		return nil, nil, fmt.Errorf("uniformly controlled gate needs %d unitaries for %d controls, got %d",
			1<<k, k, len(unitaries))
	}

	betas := make([]float64, len(unitaries))
	gammas := make([]float64, len(unitaries))
	deltas := make([]float64, len(unitaries))
	residual := make([]complex128, 2*len(unitaries))
	for i, u := range unitaries {
		alpha, beta, gamma, delta := zyzAngles(u)
		betas[i], gammas[i], deltas[i] = beta, gamma, delta
		phase := cmplx.Exp(complex(0, alpha))
		residual[2*i] = phase
		residual[2*i+1] = phase
	}

	// G = diag(R) · muxRz(beta) · muxRy(gamma) · muxRz(delta), with the delta
	// multiplexor acting first.
	seq := NewSequence()
	seq.Extend(multiplexedRotation(KindRZ, deltas, controls, target, OrderGray))
	seq.Extend(multiplexedRotation(KindRY, gammas, controls, target, OrderGray))
	seq.Extend(multiplexedRotation(KindRZ, betas, controls, target, OrderGray))
	return seq, residual, nil
}

// multiplexedRotation expands a multiplexed single-axis rotation into
// 2^len(controls) elementary rotations interleaved with transition CNOTs.
// angles[x] is the rotation (radians) applied when the controls hold x. The
// pass closes with the wrap-around transition back to the first bit string,
// which resets the accumulated control parity, so the sequence is exactly the
// block-diagonal multiplexor.
func multiplexedRotation(kind GateKind, angles []float64, controls []int, target int, ord Ordering) *Sequence {
	bs, nums := orderedBitStrings(len(controls), ord)
	seq := NewSequence()
	for m, b := range bs {
		seq.Append(Gate{Kind: kind, Target: target, Control: -1, Theta: walshAngle(b, angles, bs, nums)})
		appendTransitionCNOTs(seq, b, bs[(m+1)%len(bs)], controls, target)
	}
	return seq
}
