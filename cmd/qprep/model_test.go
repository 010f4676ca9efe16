package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"qprep"
)

func TestParseAmplitudes(t *testing.T) {
	v, err := parseAmplitudes("1\n0\n0\n1\n")
	require.NoError(t, err)
	require.Equal(t, 2, v.NumQubits())

	inv := 1 / math.Sqrt2
	require.InDelta(t, inv, real(v.At(0)), 1e-12)
	require.InDelta(t, inv, real(v.At(3)), 1e-12)
}

func TestParseAmplitudesComplexAndComments(t *testing.T) {
	v, err := parseAmplitudes("# ghz-ish\n0.5 0\n\n0 0.5\n-0.5 0\n0 -0.5")
	require.NoError(t, err)
	require.Equal(t, 2, v.NumQubits())
	require.InDelta(t, 0.5, imag(v.At(1)), 1e-12)
	require.InDelta(t, -0.5, real(v.At(2)), 1e-12)
}

func TestParseAmplitudesErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"# only comments\n",
		"abc\n",
		"1 2 3\n",
		"1\n0\n0\n", // length not a power of two
	} {
		_, err := parseAmplitudes(text)
		require.Error(t, err, "input %q", text)
	}
}

func TestPackStepsDisjointGatesShareColumn(t *testing.T) {
	gates := []qprep.Gate{
		qprep.H(0),
		qprep.H(1),
		qprep.CNOT(0, 1),
		qprep.RY(0.5, 2),
	}
	steps := packSteps(gates)
	require.Len(t, steps, 2)
	require.Len(t, steps[0], 3) // h, h and the ry on the free wire
	require.Len(t, steps[1], 1)
}

func TestPackStepsCNOTBlocksSpannedWires(t *testing.T) {
	gates := []qprep.Gate{
		qprep.CNOT(0, 2),
		qprep.H(1), // qubit 1 sits between control and target
	}
	steps := packSteps(gates)
	require.Len(t, steps, 2)

	cells := layoutColumn(steps[0], 3)
	require.Equal(t, roleControl, cells[0].role)
	require.Equal(t, rolePass, cells[1].role)
	require.Equal(t, roleTarget, cells[2].role)
}
