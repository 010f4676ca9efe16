package main

import (
	"fmt"
	"strings"

	"qprep"
)

// ──────────────────────────── Circuit layout ────────────────────────────

// packSteps lays the gate sequence out in display columns. A gate lands in
// the earliest column where every wire it spans is free; a CNOT spans the
// whole range between control and target.
func packSteps(gates []qprep.Gate) [][]qprep.Gate {
	var steps [][]qprep.Gate
	frontier := map[int]int{}
	for _, g := range gates {
		lo, hi := gateSpan(g)
		step := 0
		for q := lo; q <= hi; q++ {
			step = max(step, frontier[q])
		}
		for len(steps) <= step {
			steps = append(steps, nil)
		}
		steps[step] = append(steps[step], g)
		for q := lo; q <= hi; q++ {
			frontier[q] = step + 1
		}
	}
	return steps
}

func gateSpan(g qprep.Gate) (lo, hi int) {
	lo, hi = g.Target, g.Target
	if g.Kind == qprep.KindCNOT {
		lo, hi = min(g.Control, g.Target), max(g.Control, g.Target)
	}
	return lo, hi
}

// cellRole describes what a single (step, qubit) cell draws.
type cellRole int

const (
	roleWire cellRole = iota
	roleBox
	roleControl
	roleTarget
	rolePass
)

type cell struct {
	role cellRole
	gate qprep.Gate
	// vertical connector segments toward neighbouring wires
	vertAbove bool
	vertBelow bool
}

// layoutColumn expands one display column into per-qubit cells.
func layoutColumn(gates []qprep.Gate, numQubits int) []cell {
	cells := make([]cell, numQubits)
	for _, g := range gates {
		if g.Kind != qprep.KindCNOT {
			cells[g.Target] = cell{role: roleBox, gate: g}
			continue
		}
		lo, hi := gateSpan(g)
		for q := lo; q <= hi; q++ {
			c := cell{gate: g, vertAbove: q > lo, vertBelow: q < hi}
			switch q {
			case g.Control:
				c.role = roleControl
			case g.Target:
				c.role = roleTarget
			default:
				c.role = rolePass
			}
			cells[q] = c
		}
	}
	return cells
}

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// renderCell returns the 3 lines (top, mid, bot) of one cell, each exactly
// cellW visible characters wide.
func renderCell(c cell) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	symbolRow := func(sym string) string {
		return strings.Repeat("─", dashL) + gateStyle.Render(sym) + strings.Repeat("─", dashR)
	}
	connect := func(c cell) {
		if c.vertAbove {
			top = vertRow
		}
		if c.vertBelow {
			bot = vertRow
		}
	}

	top, bot = emptyRow, emptyRow
	switch c.role {
	case roleBox:
		margin := (cellW - nameW - 2) / 2
		rightMargin := cellW - margin - nameW - 2
		name := padCenter(c.gate.Kind.String(), nameW)
		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", nameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", nameW)+"┘") + strings.Repeat(" ", rightMargin)
	case roleControl:
		mid = symbolRow("●")
		connect(c)
	case roleTarget:
		mid = symbolRow("⊕")
		connect(c)
	case rolePass:
		top, bot = vertRow, vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
	default:
		mid = strings.Repeat("─", cellW)
	}
	return top, mid, bot
}

// ──────────────────────────── Panels ────────────────────────────

// renderCircuitPanel renders the synthesized circuit as a wire grid.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Preparation Circuit"))
	sb.WriteString("\n\n")

	if m.seq == nil || m.seq.Len() == 0 {
		sb.WriteString(dimStyle.Render("No circuit yet. Enter amplitudes and press ^E."))
		return circuitStyle.Width(width).Height(height).Render(sb.String())
	}

	steps := packSteps(m.seq.Gates())
	availWidth := width - labelW - 4
	visible := max(availWidth/cellW, 1)
	start := min(m.viewStart, max(len(steps)-visible, 0))

	if start > 0 || len(steps) > start+visible {
		fmt.Fprintf(&sb, "  showing steps %d–%d of %d\n", start, min(start+visible, len(steps))-1, len(steps))
	}

	header := strings.Repeat(" ", labelW)
	for step := start; step < min(start+visible, len(steps)); step++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", step), cellW))
	}
	sb.WriteString(header + "\n")

	columns := make([][]cell, 0, visible)
	for step := start; step < min(start+visible, len(steps)); step++ {
		columns = append(columns, layoutColumn(steps[step], m.numQubits))
	}

	for qubit := range m.numQubits {
		label := fmt.Sprintf("q[%d]", qubit)
		topLine := strings.Repeat(" ", labelW)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-4s", label)) + "──"
		botLine := strings.Repeat(" ", labelW)

		for _, col := range columns {
			top, mid, bot := renderCell(col[qubit])
			topLine += top
			midLine += mid
			botLine += bot
		}
		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %d gates  %d cx  %d ry  %d rz",
		m.seq.Len(),
		m.seq.Count(qprep.KindCNOT),
		m.seq.Count(qprep.KindRY),
		m.seq.Count(qprep.KindRZ))

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderStatePanel renders the amplitude editor plus the verification report.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder

	title := "Target State"
	if m.focus == focusState {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.editor.View())
	sb.WriteString("\n\n")

	sb.WriteString(optionStyle.Render("algorithm "))
	sb.WriteString(m.algo.String())
	if m.algo == algoMultiplexed {
		fmt.Fprintf(&sb, "  %s %s", optionStyle.Render("order"), m.opts.Ordering)
		fmt.Fprintf(&sb, "  %s %v", optionStyle.Render("rev-z"), m.opts.ReverseZ)
	}
	sb.WriteString("\n")

	if m.report != nil {
		fmt.Fprintf(&sb, "\n%s\n", titleStyle.Render("Verification"))
		fmt.Fprintf(&sb, "  norm       %.12f\n", m.report.Norm)
		fmt.Fprintf(&sb, "  max error  %.3e\n", m.report.MaxAbsError)
		fmt.Fprintf(&sb, "  fid error  %.3e\n", m.report.FidelityError)
	}

	if m.result != nil {
		sb.WriteString(dimStyle.Render("\nprepared amplitudes:\n"))
		for i, a := range m.result.Amplitudes {
			if i == 8 {
				sb.WriteString(dimStyle.Render("  …\n"))
				break
			}
			fmt.Fprintf(&sb, "  |%0*b⟩ %s\n", m.numQubits, i, qprep.FormatComplex(a))
		}
	}

	if m.statusMsg != "" {
		style := okStyle
		if m.statusErr {
			style = errStyle
		}
		sb.WriteString("\n" + style.Render(m.statusMsg))
	}

	return stateStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(optionStyle.Render("Synthesize: "))
	sb.WriteString("^E Run  ^A Algorithm  ^O Ordering  ^B Z-pass  ^P Preset\n")

	sb.WriteString(optionStyle.Render("General:    "))
	sb.WriteString("Tab Switch focus  ←→/hl Scroll circuit  ^S Save QASM  ^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}
