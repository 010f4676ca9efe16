package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qprep"
)

// focus represents which panel has keyboard input.
type focus int

const (
	focusState focus = iota
	focusCircuit
)

// algorithm selects the synthesis routine.
type algorithm int

const (
	algoMultiplexed algorithm = iota
	algoRecursive
)

func (a algorithm) String() string {
	if a == algoRecursive {
		return "recursive"
	}
	return "multiplexed"
}

// Model represents the TUI application state.
type Model struct {
	editor    textarea.Model
	algo      algorithm
	opts      qprep.MultiplexOptions
	presetIdx int

	// Last synthesis result; nil until the first successful run.
	seq       *qprep.Sequence
	numQubits int
	result    *qprep.StateVector
	report    *qprep.Verification

	focus     focus
	viewStart int // first step column currently visible
	statusMsg string
	statusErr bool
	width     int
	height    int
}

func initialModel() Model {
	ta := textarea.New()
	ta.Placeholder = "One amplitude per line: re [im]"
	ta.SetWidth(30)
	ta.SetHeight(12)
	ta.ShowLineNumbers = true
	ta.SetValue(presets[0].lines)
	ta.Focus()

	return Model{
		editor: ta,
		opts:   qprep.DefaultMultiplexOptions(),
	}
}

// parseAmplitudes reads the editor text into a normalized amplitude vector.
// Each non-empty line holds a real part and an optional imaginary part; lines
// starting with # are comments.
func parseAmplitudes(text string) (*qprep.AmplitudeVector, error) {
	var amps []complex128
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 2 {
			return nil, fmt.Errorf("line %d: want \"re\" or \"re im\", got %q", i+1, line)
		}
		re, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad real part %q", i+1, fields[0])
		}
		im := 0.0
		if len(fields) == 2 {
			im, err = strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad imaginary part %q", i+1, fields[1])
			}
		}
		amps = append(amps, complex(re, im))
	}
	if len(amps) == 0 {
		return nil, fmt.Errorf("no amplitudes entered")
	}

	norm := 0.0
	for _, a := range amps {
		norm += real(a)*real(a) + imag(a)*imag(a)
	}
	if norm > 0 {
		scale := complex(1/math.Sqrt(norm), 0)
		for i := range amps {
			amps[i] *= scale
		}
	}
	return qprep.NewAmplitudeVector(amps)
}

// synthesize runs the selected algorithm on the editor contents and verifies
// the result against the target.
func (m *Model) synthesize() {
	v, err := parseAmplitudes(m.editor.Value())
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	qubits := make([]int, v.NumQubits())
	for i := range qubits {
		qubits[i] = i
	}

	var seq *qprep.Sequence
	switch m.algo {
	case algoRecursive:
		seq, err = qprep.RecursivePrepare(v, qubits)
	default:
		seq, err = qprep.MultiplexedPrepare(v, qubits, m.opts)
	}
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	sv, err := qprep.Execute(seq, v.NumQubits())
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	report := qprep.Verify(sv.Amplitudes, v)

	m.seq = seq
	m.numQubits = v.NumQubits()
	m.result = sv
	m.report = &report
	m.viewStart = 0
	m.setStatus(fmt.Sprintf("%d gates (%d cx), max error %.2e",
		seq.Len(), seq.Count(qprep.KindCNOT), report.MaxAbsError), false)
}

func (m *Model) saveQASM() {
	if m.seq == nil {
		m.setStatus("nothing synthesized yet", true)
		return
	}
	if err := os.WriteFile("prepared.qasm", []byte(m.seq.ToQASM(m.numQubits)), 0644); err != nil {
		m.setStatus(fmt.Sprintf("save error: %v", err), true)
		return
	}
	m.setStatus("saved prepared.qasm", false)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m *Model) loadPreset(idx int) {
	m.presetIdx = (idx + len(presets)) % len(presets)
	m.editor.SetValue(presets[m.presetIdx].lines)
	m.setStatus(fmt.Sprintf("preset: %s", presets[m.presetIdx].name), false)
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		stateW := max(msg.Width/3-6, 24)
		m.editor.SetWidth(stateW)
		m.editor.SetHeight(max(msg.Height-16, 6))

	case tea.KeyMsg:
		key := msg.String()

		switch key {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.focus == focusState {
				m.focus = focusCircuit
				m.editor.Blur()
			} else {
				m.focus = focusState
				m.editor.Focus()
			}
			return m, nil
		case "ctrl+e":
			m.synthesize()
			return m, nil
		case "ctrl+s":
			m.saveQASM()
			return m, nil
		case "ctrl+a":
			m.algo = 1 - m.algo
			m.setStatus(fmt.Sprintf("algorithm: %s", m.algo), false)
			return m, nil
		case "ctrl+o":
			if m.opts.Ordering == qprep.OrderGray {
				m.opts.Ordering = qprep.OrderNatural
			} else {
				m.opts.Ordering = qprep.OrderGray
			}
			m.setStatus(fmt.Sprintf("ordering: %s", m.opts.Ordering), false)
			return m, nil
		case "ctrl+b":
			m.opts.ReverseZ = !m.opts.ReverseZ
			m.setStatus(fmt.Sprintf("reversed z pass: %v", m.opts.ReverseZ), false)
			return m, nil
		case "ctrl+p":
			m.loadPreset(m.presetIdx + 1)
			return m, nil
		}

		switch m.focus {
		case focusCircuit:
			switch key {
			case "q":
				return m, tea.Quit
			case "left", "h":
				if m.viewStart > 0 {
					m.viewStart--
				}
			case "right", "l":
				m.viewStart++
			case "home", "g":
				m.viewStart = 0
			}

		case focusState:
			var cmd tea.Cmd
			m.editor, cmd = m.editor.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	stateWidth := m.width / 3
	circuitWidth := m.width - stateWidth - 4
	controlsHeight := 6
	panelHeight := max(m.height-controlsHeight-2, 6)

	circuitPanel := m.renderCircuitPanel(circuitWidth, panelHeight)
	statePanel := m.renderStatePanel(stateWidth, panelHeight)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, statePanel)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)
}
