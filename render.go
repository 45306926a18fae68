package main

import (
	"fmt"
	"strings"
	"time"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

var fieldNames = [fieldsPerQubit]string{"init φ", "init θ", "tgt φ", "tgt θ", "tgt r"}

// ──────────────────────────── Setup panel ────────────────────────────

// renderSetupPanel renders the per-qubit parameter form.
func (m Model) renderSetupPanel() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("State Preparation"))
	sb.WriteString("\n\n")

	header := strings.Repeat(" ", 6)
	for _, name := range fieldNames {
		header += fieldLabelStyle.Render(padCenter(name, 10))
	}
	sb.WriteString(header + "\n")

	for q := 0; q < m.numQubits; q++ {
		row := qubitLabelStyle.Render(fmt.Sprintf("q[%d] ", q)) + " "
		for f := 0; f < fieldsPerQubit; f++ {
			row += " " + m.inputs[q*fieldsPerQubit+f].View()
		}
		sb.WriteString(row + "\n")
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %s   %s %d / %d\n",
		fieldLabelStyle.Render("Gate set:"), accentStyle.Render(strings.Join(m.acceptedList(), " ")),
		fieldLabelStyle.Render("Sequence lengths:"), m.shortLen, m.longLen)

	if m.statusMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(errorStyle.Render(m.statusMsg))
		sb.WriteString("\n")
	}

	return setupStyle.Render(sb.String())
}

// ──────────────────────────── Running panel ────────────────────────────

func (m Model) renderRunningPanel() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Searching"))
	sb.WriteString("\n\n")
	sb.WriteString(m.prog.ViewAs(m.percent / 100))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%5.1f%%", m.percent)
	if m.canceling {
		sb.WriteString("   " + errorStyle.Render("canceling..."))
	}

	return setupStyle.Render(sb.String())
}

// ──────────────────────────── Result panel ────────────────────────────

func (m Model) renderResultPanel() string {
	var sb strings.Builder

	if m.resultErr != nil {
		sb.WriteString(titleStyle.Render("Search Failed"))
		sb.WriteString("\n\n")
		sb.WriteString(errorStyle.Render(m.resultErr.Error()))
		return resultStyle.Render(sb.String())
	}

	sb.WriteString(titleStyle.Render("Result"))
	sb.WriteString("\n\n")

	for q, rep := range m.result.Reports {
		fmt.Fprintf(&sb, "%s  φ %s  θ %s  r %s  %s\n",
			qubitLabelStyle.Render(fmt.Sprintf("q[%d]", q)),
			formatMetric(rep.Phi), formatMetric(rep.Theta), formatMetric(rep.Radius),
			okStyle.Render(fmt.Sprintf("%.2f%%", rep.Accuracy*100)))
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderLayoutCircuit())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %v\n", fieldLabelStyle.Render("Elapsed:"), m.result.Elapsed.Round(time.Millisecond))

	if m.statusMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(okStyle.Render(m.statusMsg))
		sb.WriteString("\n")
	}

	return resultStyle.Render(sb.String())
}

// renderLayoutCircuit draws the packed circuit layout as wire art, three
// lines per qubit.
func (m Model) renderLayoutCircuit() string {
	emptyRow := strings.Repeat(" ", layoutCellW)
	halfW := layoutCellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", layoutCellW-halfW-1)
	dashL := (layoutCellW - 1) / 2
	dashR := layoutCellW - dashL - 1

	var sb strings.Builder
	for q := 0; q < m.numQubits; q++ {
		topLine := strings.Repeat(" ", 6)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-4s", fmt.Sprintf("q[%d]", q))) + "──"
		botLine := strings.Repeat(" ", 6)

		for _, column := range m.layout {
			cell := column[q]
			ctrl, tgt := cnotSpan(column)

			switch {
			case ctrl >= 0 && tgt >= 0 && (q == ctrl || q == tgt):
				sym := "●"
				if q == tgt {
					sym = "⊕"
				}
				top, bot := emptyRow, emptyRow
				if q > min(ctrl, tgt) {
					top = vertRow
				}
				if q < max(ctrl, tgt) {
					bot = vertRow
				}
				topLine += top
				midLine += strings.Repeat("─", dashL) + gateStyle.Render(sym) + strings.Repeat("─", dashR)
				botLine += bot

			case ctrl >= 0 && tgt >= 0 && q > min(ctrl, tgt) && q < max(ctrl, tgt):
				topLine += vertRow
				midLine += strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
				botLine += vertRow

			case cell != "" && cell != "I":
				margin := (layoutCellW - layoutNameW - 2) / 2
				rightMargin := layoutCellW - margin - layoutNameW - 2
				name := padCenter(cell, layoutNameW)
				topLine += strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", layoutNameW)+"┐") + strings.Repeat(" ", rightMargin)
				midLine += strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
				botLine += strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", layoutNameW)+"┘") + strings.Repeat(" ", rightMargin)

			default:
				topLine += emptyRow
				midLine += strings.Repeat("─", layoutCellW)
				botLine += emptyRow
			}
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}
	return sb.String()
}

// cnotSpan returns the control and target rows of a CNOT column, or -1s.
func cnotSpan(column []string) (ctrl, tgt int) {
	ctrl, tgt = -1, -1
	for q, cell := range column {
		switch cell {
		case "control":
			ctrl = q
		case "X":
			tgt = q
		}
	}
	if ctrl < 0 {
		tgt = -1
	}
	return
}

// ──────────────────────────── Controls panel ────────────────────────────

// renderControlsPanel renders the bottom help bar for the current screen.
func (m Model) renderControlsPanel() string {
	var sb strings.Builder

	switch m.focus {
	case focusSetup:
		sb.WriteString(accentStyle.Render("Setup:   "))
		sb.WriteString("Tab/↑↓ Move field  ^A Add qubit  ^X Remove qubit\n")
		sb.WriteString(accentStyle.Render("Actions: "))
		sb.WriteString("^G Gate set  Enter Run  Esc/^C Quit")
	case focusGates:
		sb.WriteString(accentStyle.Render("Gates:   "))
		sb.WriteString("↑↓ Move  Enter Toggle  < > Phase-1 length  - + Phase-2 length\n")
		sb.WriteString(accentStyle.Render("Actions: "))
		sb.WriteString("Esc Back  ^C Quit")
	case focusRunning:
		sb.WriteString(accentStyle.Render("Running: "))
		sb.WriteString("Esc Cancel  ^C Quit")
	case focusResult:
		sb.WriteString(accentStyle.Render("Result:  "))
		sb.WriteString("s Save QASM  n New search  q/Esc Quit")
	}

	return controlsStyle.Render(sb.String())
}
