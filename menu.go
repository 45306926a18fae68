package main

import (
	"fmt"
	"strings"
)

// gateOption is one row of the gate-set menu. Locked gates form the base
// alphabet the candidate generator searches over and cannot be disabled.
type gateOption struct {
	name   string
	label  string
	locked bool
}

var gateOptions = []gateOption{
	{name: "H", label: "Hadamard", locked: true},
	{name: "T", label: "T (π/8 phase)", locked: true},
	{name: "S", label: "S (phase)"},
	{name: "Z", label: "Pauli-Z"},
	{name: "X", label: "Pauli-X"},
	{name: "Y", label: "Pauli-Y"},
}

// renderGateMenu renders the gate-set settings screen.
func (m Model) renderGateMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Gate Set"))
	sb.WriteString("\n\n")

	for i, opt := range gateOptions {
		cursor := "  "
		if i == m.gateIdx {
			cursor = selectedStyle.Render("> ")
		}

		mark := "[ ]"
		if m.accepted[opt.name] {
			mark = okStyle.Render("[x]")
		}
		if opt.locked {
			mark = dimStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %s  %s", cursor, mark, gateStyle.Render(padCenter(opt.name, 2)), opt.label)
		if opt.locked {
			line += dimStyle.Render("  (always on)")
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s %d   %s %d\n",
		fieldLabelStyle.Render("Phase-1 max length (< >):"), m.shortLen,
		fieldLabelStyle.Render("Phase-2 max length (- +):"), m.longLen)

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑↓ Move  Enter/Space Toggle  Esc Back"))

	return setupStyle.Render(sb.String())
}
