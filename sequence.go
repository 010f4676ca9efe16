package qprep

import "strings"

// Sequence is an ordered list of gates; insertion order is execution order.
// Synthesizers build sequences with Append/Extend and hand them to callers,
// who derive new sequences through Extend and Dagger rather than editing in
// place.
type Sequence struct {
	gates []Gate
}

// NewSequence returns a sequence holding the given gates in order.
func NewSequence(gates ...Gate) *Sequence {
	s := &Sequence{}
	s.Append(gates...)
	return s
}

// Append adds gates at the end of the sequence.
func (s *Sequence) Append(gates ...Gate) {
	s.gates = append(s.gates, gates...)
}

// Extend appends every gate of other, preserving order ("s then other").
// Concatenation is associative and order-preserving.
func (s *Sequence) Extend(other *Sequence) {
	s.gates = append(s.gates, other.gates...)
}

// Dagger returns the inverse sequence: gates in reverse order, each inverted.
func (s *Sequence) Dagger() *Sequence {
	inv := &Sequence{gates: make([]Gate, len(s.gates))}
	for i, g := range s.gates {
		inv.gates[len(s.gates)-1-i] = g.Dagger()
	}
	return inv
}

// Gates returns a copy of the gate list.
func (s *Sequence) Gates() []Gate {
	cp := make([]Gate, len(s.gates))
	copy(cp, s.gates)
	return cp
}

// Len returns the number of gates.
func (s *Sequence) Len() int { return len(s.gates) }

// Count returns how many gates of the given kind the sequence holds.
func (s *Sequence) Count(kind GateKind) int {
	n := 0
	for _, g := range s.gates {
		if g.Kind == kind {
			n++
		}
	}
	return n
}

// String renders one gate per line.
func (s *Sequence) String() string {
	var sb strings.Builder
	for _, g := range s.gates {
		sb.WriteString(g.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
