package qprep

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for QASM parsing, over the synthesis gate vocabulary.
var (
	singleGateRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	singleGateParamRegex = regexp.MustCompile(`^(\w+)\s*\(\s*(` + anglePattern + `)\s*\)\s+q\[(\d+)\];?$`)
	twoQubitRegex        = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	qregRegex            = regexp.MustCompile(`qreg\s+\w+\[(\d+)\]`)
)

// ToQASM renders the sequence as a QASM 2.0 program over a register of
// numQubits qubits. Rotation angles use pi notation where they match a common
// fraction.
func (s *Sequence) ToQASM(numQubits int) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", numQubits)

	for _, g := range s.gates {
		switch g.Kind {
		case KindCNOT:
			fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", g.Control, g.Target)
		case KindRY, KindRZ:
			fmt.Fprintf(&sb, "%s(%s) q[%d];\n", g.Kind, formatAngle(g.Theta), g.Target)
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", g.Kind, g.Target)
		}
	}
	return sb.String()
}

// ParseQASM parses QASM text back into a sequence and the register size.
// Only the gates this package emits (ry, rz, cx, h, s) are accepted; any
// other statement is an error.
func ParseQASM(qasm string) (*Sequence, int, error) {
	seq := NewSequence()
	numQubits := 0

	for _, line := range strings.Split(qasm, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "", strings.HasPrefix(line, "//"),
			strings.HasPrefix(line, "OPENQASM"), strings.HasPrefix(line, "include"):
			continue
		case strings.HasPrefix(line, "qreg"):
			if matches := qregRegex.FindStringSubmatch(line); matches != nil {
				numQubits, _ = strconv.Atoi(matches[1])
			}
			continue
		case strings.HasPrefix(line, "creg"):
			continue
		}

		if matches := singleGateParamRegex.FindStringSubmatch(line); matches != nil {
			theta, ok := ParseAngle(matches[2])
			if !ok {
				return nil, 0, fmt.Errorf("bad angle in %q", line)
			}
			target, _ := strconv.Atoi(matches[3])
			switch strings.ToLower(matches[1]) {
			case "ry":
				seq.Append(RY(theta, target))
			case "rz":
				seq.Append(RZ(theta, target))
			default:
				return nil, 0, fmt.Errorf("unsupported gate in %q", line)
			}
			continue
		}

		if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
			if strings.ToLower(matches[1]) != "cx" {
				return nil, 0, fmt.Errorf("unsupported gate in %q", line)
			}
			control, _ := strconv.Atoi(matches[2])
			target, _ := strconv.Atoi(matches[3])
			seq.Append(CNOT(control, target))
			continue
		}

		if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
			target, _ := strconv.Atoi(matches[2])
			switch strings.ToLower(matches[1]) {
			case "h":
				seq.Append(H(target))
			case "s":
				seq.Append(S(target))
			default:
				return nil, 0, fmt.Errorf("unsupported gate in %q", line)
			}
			continue
		}

		return nil, 0, fmt.Errorf("cannot parse line %q", line)
	}
	return seq, numQubits, nil
}
