package qprep

import "fmt"

// GateKind tags the gate variant carried by a Gate.
type GateKind int

const (
	KindRY GateKind = iota
	KindRZ
	KindCNOT
	KindH
	KindS
)

// String returns the QASM-flavoured lowercase name of the kind.
func (k GateKind) String() string {
	switch k {
	case KindRY:
		return "ry"
	case KindRZ:
		return "rz"
	case KindCNOT:
		return "cx"
	case KindH:
		return "h"
	case KindS:
		return "s"
	}
	return fmt.Sprintf("GateKind(%d)", int(k))
}

// Gate is a single elementary operation. Control is -1 except for CNOT.
// Theta is always radians; callers working in multiples of pi convert at
// construction.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
	Theta   float64
}

// RY returns a Y-axis rotation by theta radians on target.
func RY(theta float64, target int) Gate {
	return Gate{Kind: KindRY, Target: target, Control: -1, Theta: theta}
}

// RZ returns a Z-axis rotation by theta radians on target.
func RZ(theta float64, target int) Gate {
	return Gate{Kind: KindRZ, Target: target, Control: -1, Theta: theta}
}

// CNOT returns a controlled-NOT with the given control and target.
func CNOT(control, target int) Gate {
	return Gate{Kind: KindCNOT, Target: target, Control: control}
}

// H returns a Hadamard on target.
func H(target int) Gate {
	return Gate{Kind: KindH, Target: target, Control: -1}
}

// S returns a phase gate (diag(1, i)) on target.
func S(target int) Gate {
	return Gate{Kind: KindS, Target: target, Control: -1}
}

// Dagger returns the inverse gate. Rotations negate their angle; CNOT and H
// are self-inverse. S maps to itself: the synthesizers only ever place S in
// fixed groupings that are self-consistent under sequence reversal, never
// free-standing inside an inverted block.
func (g Gate) Dagger() Gate {
	switch g.Kind {
	case KindRY, KindRZ:
		g.Theta = -g.Theta
	}
	return g
}

// String renders the gate in QASM-like form, for logs and tests.
func (g Gate) String() string {
	switch g.Kind {
	case KindCNOT:
		return fmt.Sprintf("cx q[%d], q[%d]", g.Control, g.Target)
	case KindRY, KindRZ:
		return fmt.Sprintf("%s(%s) q[%d]", g.Kind, formatAngle(g.Theta), g.Target)
	default:
		return fmt.Sprintf("%s q[%d]", g.Kind, g.Target)
	}
}
