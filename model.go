package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fieldsPerQubit is the setup form width: initial φ, initial θ, target φ,
// target θ, target r.
const fieldsPerQubit = 5

// focus represents which screen has keyboard input.
type focus int

const (
	focusSetup focus = iota
	focusGates
	focusRunning
	focusResult
)

// runnerEventMsg delivers a RunnerEvent into the bubbletea loop.
type runnerEventMsg RunnerEvent

// waitForRunner returns a command that blocks on the runner's next event.
func waitForRunner(r *Runner) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-r.Events()
		if !ok {
			return nil
		}
		return runnerEventMsg(ev)
	}
}

// Model represents the TUI application state.
type Model struct {
	width  int
	height int
	focus  focus

	// Setup form
	numQubits int
	inputs    []textinput.Model
	inputIdx  int
	statusMsg string

	// Gate-set settings
	accepted map[string]bool
	gateIdx  int
	shortLen int
	longLen  int

	// Search state
	runner    *Runner
	prog      progress.Model
	percent   float64
	canceling bool

	// Results
	result    *SynthesisResult
	layout    Layout
	resultErr error
}

func initialModel() Model {
	m := Model{
		numQubits: 2,
		shortLen:  4,
		longLen:   6,
		accepted:  map[string]bool{"H": true, "T": true, "S": true, "Z": true, "X": true, "Y": true},
		prog:      progress.New(progress.WithDefaultGradient()),
	}
	m.rebuildInputs()
	return m
}

// fieldDefaults are the initial values of one qubit's form row: |0⟩ start,
// |0⟩ target at radius 1.
var fieldDefaults = [fieldsPerQubit]string{"0", "0", "0", "0", "1"}

// rebuildInputs resizes the form to numQubits rows, preserving values of
// rows that survive.
func (m *Model) rebuildInputs() {
	old := m.inputs
	m.inputs = make([]textinput.Model, m.numQubits*fieldsPerQubit)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 12
		ti.Width = 8
		if i < len(old) {
			ti.SetValue(old[i].Value())
		} else {
			ti.SetValue(fieldDefaults[i%fieldsPerQubit])
		}
		m.inputs[i] = ti
	}
	if m.inputIdx >= len(m.inputs) {
		m.inputIdx = len(m.inputs) - 1
	}
	m.inputs[m.inputIdx].Focus()
}

func (m *Model) focusInput(idx int) {
	m.inputs[m.inputIdx].Blur()
	m.inputIdx = (idx + len(m.inputs)) % len(m.inputs)
	m.inputs[m.inputIdx].Focus()
}

// acceptedList returns the enabled gate names in menu order.
func (m *Model) acceptedList() []string {
	var names []string
	for _, opt := range gateOptions {
		if m.accepted[opt.name] {
			names = append(names, opt.name)
		}
	}
	return names
}

// startSearch validates the form, prepares the candidate tables, and
// launches a runner. Returns the command that waits for its first event,
// or nil with statusMsg set.
func (m *Model) startSearch() tea.Cmd {
	fields := make([]string, len(m.inputs))
	for i := range m.inputs {
		fields[i] = m.inputs[i].Value()
	}
	angles, targets, msg := collectParams(m.numQubits, fields)
	if msg != "" {
		m.statusMsg = msg
		return nil
	}

	base := GenerateCandidates(m.longLen)
	converted := ConvertTable(m.acceptedList(), base)
	short := converted.FilterByLength(m.shortLen)
	long := converted.FilterByLength(m.longLen)
	if len(short) == 0 || len(long) == 0 {
		m.statusMsg = "candidate tables are empty; raise the sequence lengths"
		return nil
	}

	m.runner = NewRunner(80 * time.Millisecond)
	m.runner.Start(short, long, InitializeState(angles), targets)
	m.percent = 0
	m.canceling = false
	m.result = nil
	m.resultErr = nil
	m.focus = focusRunning
	return waitForRunner(m.runner)
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prog.Width = min(msg.Width-12, 60)

	case runnerEventMsg:
		if !msg.Done {
			m.percent = msg.Percent
			cmds = append(cmds, waitForRunner(m.runner))
			break
		}
		m.runner = nil
		switch {
		case errors.Is(msg.Err, ErrCanceled):
			m.focus = focusSetup
			m.statusMsg = "search canceled"
		case msg.Err != nil:
			m.resultErr = msg.Err
			m.focus = focusResult
		default:
			m.percent = 100
			m.result = msg.Result
			m.layout = LowerToLayout(m.numQubits, msg.Result.Gates)
			m.focus = focusResult
		}

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			if m.runner != nil {
				m.runner.Cancel()
			}
			return m, tea.Quit
		}

		switch m.focus {
		case focusSetup:
			switch key {
			case "esc":
				return m, tea.Quit
			case "tab", "down":
				m.statusMsg = ""
				m.focusInput(m.inputIdx + 1)
			case "shift+tab", "up":
				m.statusMsg = ""
				m.focusInput(m.inputIdx - 1)
			case "ctrl+a":
				m.numQubits++
				m.rebuildInputs()
			case "ctrl+x":
				if m.numQubits > 1 {
					m.numQubits--
					m.rebuildInputs()
				}
			case "ctrl+g":
				m.focus = focusGates
				m.gateIdx = 0
			case "enter":
				m.statusMsg = ""
				if cmd := m.startSearch(); cmd != nil {
					cmds = append(cmds, cmd)
				}
			default:
				var cmd tea.Cmd
				m.inputs[m.inputIdx], cmd = m.inputs[m.inputIdx].Update(msg)
				cmds = append(cmds, cmd)
			}

		case focusGates:
			switch key {
			case "esc":
				m.focus = focusSetup
			case "up", "k":
				if m.gateIdx > 0 {
					m.gateIdx--
				}
			case "down", "j":
				if m.gateIdx < len(gateOptions)-1 {
					m.gateIdx++
				}
			case "enter", " ":
				opt := gateOptions[m.gateIdx]
				if !opt.locked {
					m.accepted[opt.name] = !m.accepted[opt.name]
				}
			case "<":
				if m.shortLen > 1 {
					m.shortLen--
				}
			case ">":
				if m.shortLen < m.longLen {
					m.shortLen++
				}
			case "-":
				if m.longLen > m.shortLen {
					m.longLen--
				}
			case "+", "=":
				if m.longLen < 10 {
					m.longLen++
				}
			}

		case focusRunning:
			if key == "esc" && m.runner != nil {
				m.runner.Cancel()
				m.canceling = true
			}

		case focusResult:
			switch key {
			case "q", "esc":
				return m, tea.Quit
			case "n":
				m.focus = focusSetup
				m.statusMsg = ""
			case "s":
				if m.result != nil {
					qasm := m.layout.ToQASM(m.numQubits)
					if err := os.WriteFile("prep_circuit.qasm", []byte(qasm), 0644); err != nil {
						m.statusMsg = fmt.Sprintf("Save error: %v", err)
					} else {
						m.statusMsg = "Saved prep_circuit.qasm"
					}
				}
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var panel string
	switch m.focus {
	case focusSetup:
		panel = m.renderSetupPanel()
	case focusGates:
		panel = m.renderGateMenu()
	case focusRunning:
		panel = m.renderRunningPanel()
	case focusResult:
		panel = m.renderResultPanel()
	}

	return lipgloss.JoinVertical(lipgloss.Left, panel, m.renderControlsPanel())
}
