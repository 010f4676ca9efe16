package main

import "strings"

// preset is a named amplitude vector for the editor, one "re [im]" pair per
// line. Entries are normalized on synthesis, so plain integers are fine.
type preset struct {
	name  string
	lines string
}

var presets = []preset{
	{
		name:  "uniform (3 qubits)",
		lines: strings.Repeat("1\n", 8),
	},
	{
		name:  "GHZ (3 qubits)",
		lines: "1\n0\n0\n0\n0\n0\n0\n1\n",
	},
	{
		name:  "W (2 qubits)",
		lines: "0\n1\n1\n0\n",
	},
	{
		name:  "complex phases (2 qubits)",
		lines: "0.5 0\n0 0.5\n-0.5 0\n0 -0.5\n",
	},
	{
		name:  "ramp (3 qubits)",
		lines: "1\n2\n3\n4\n5\n6\n7\n8\n",
	},
}
