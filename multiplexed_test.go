package qprep

import (
	"fmt"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func allMultiplexOptions() []MultiplexOptions {
	return []MultiplexOptions{
		{Ordering: OrderGray, ReverseZ: true},
		{Ordering: OrderGray, ReverseZ: false},
		{Ordering: OrderNatural, ReverseZ: true},
		{Ordering: OrderNatural, ReverseZ: false},
	}
}

func TestMultiplexedPrepareRandomStates(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, opt := range allMultiplexOptions() {
		for n := 1; n <= 4; n++ {
			t.Run(fmt.Sprintf("%s reverseZ=%v %d qubits", opt.Ordering, opt.ReverseZ, n), func(t *testing.T) {
				for range 10 {
					v := randomState(t, r, n)
					seq, err := MultiplexedPrepare(v, ascendingQubits(n), opt)
					require.NoError(t, err)
					executeAndVerify(t, seq, v, 1e-6)
				}
			})
		}
	}
}

// Both orderings must land on the same state; they only differ in gate
// economy, and Gray code never loses that comparison.
func TestMultiplexedPrepareOrderingEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for n := 1; n <= 4; n++ {
		v := randomState(t, r, n)

		gray, err := MultiplexedPrepare(v, ascendingQubits(n), MultiplexOptions{Ordering: OrderGray, ReverseZ: true})
		require.NoError(t, err)
		natural, err := MultiplexedPrepare(v, ascendingQubits(n), MultiplexOptions{Ordering: OrderNatural, ReverseZ: true})
		require.NoError(t, err)

		executeAndVerify(t, gray, v, 1e-6)
		executeAndVerify(t, natural, v, 1e-6)

		require.LessOrEqual(t, gray.Count(KindCNOT), natural.Count(KindCNOT))
		require.LessOrEqual(t, gray.Len(), natural.Len())
	}
}

// Basis states drive every level through the dead-block fallback and must
// come back exact, as all rotations collapse to zero angles.
func TestMultiplexedPrepareBasisStates(t *testing.T) {
	for _, opt := range allMultiplexOptions() {
		for n := 1; n <= 3; n++ {
			for index := 0; index < 1<<n; index++ {
				v := basisState(t, n, index)
				seq, err := MultiplexedPrepare(v, ascendingQubits(n), opt)
				require.NoError(t, err)
				executeAndVerify(t, seq, v, 1e-9)
			}
		}
	}
}

// Block mean phases are plain arithmetic means and their sibling differences
// can leave (-pi, pi]. Reducing such a difference mod 2·pi before it reaches
// the RZ expansion would flip the sign of the rotations for the affected
// control assignments; these states must still come back exact.
func TestMultiplexedPrepareWideMeanPhases(t *testing.T) {
	half := complex(0.5, 0)
	fwd := cmplx.Exp(complex(0, 3))
	bwd := cmplx.Exp(complex(0, -3))

	states := [][]complex128{
		// Wrapping difference in the first block only.
		{half * fwd, half * bwd, half, half},
		// Wrapping difference in both blocks.
		{half * fwd, half * bwd, half * fwd, half * bwd},
		// Large but non-wrapping differences at every level.
		{half * fwd, half, half * bwd, half},
	}
	for _, amps := range states {
		v, err := NewAmplitudeVector(amps)
		require.NoError(t, err)
		for _, opt := range allMultiplexOptions() {
			seq, err := MultiplexedPrepare(v, []int{0, 1}, opt)
			require.NoError(t, err)
			executeAndVerify(t, seq, v, 1e-9)
		}
	}
}

func TestMultiplexedPrepareUniformSuperposition(t *testing.T) {
	v, err := NewAmplitudeVector([]complex128{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)

	for _, opt := range allMultiplexOptions() {
		seq, err := MultiplexedPrepare(v, []int{0, 1}, opt)
		require.NoError(t, err)
		got := executeAndVerify(t, seq, v, 1e-9)
		require.Less(t, got.FidelityError, 1e-9)
	}
}

// Both synthesizers agree on every state, not just on their own test sets.
func TestPreparersAgree(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for n := 1; n <= 4; n++ {
		v := randomState(t, r, n)

		recursive, err := RecursivePrepare(v, ascendingQubits(n))
		require.NoError(t, err)
		multiplexed, err := MultiplexedPrepare(v, ascendingQubits(n), DefaultMultiplexOptions())
		require.NoError(t, err)

		executeAndVerify(t, recursive, v, 1e-6)
		executeAndVerify(t, multiplexed, v, 1e-6)
	}
}

func TestMultiplexedPrepareQubitCountMismatch(t *testing.T) {
	v, err := NewAmplitudeVector([]complex128{1, 0})
	require.NoError(t, err)

	_, err = MultiplexedPrepare(v, []int{0, 1}, DefaultMultiplexOptions())
	require.Error(t, err)
}

func TestDefaultMultiplexOptions(t *testing.T) {
	opt := DefaultMultiplexOptions()
	require.Equal(t, OrderGray, opt.Ordering)
	require.True(t, opt.ReverseZ)
}
