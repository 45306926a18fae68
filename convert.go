package main

import (
	"fmt"
	"sort"
	"strings"
)

// conversionRule rewrites a run of base H/T labels into one named gate.
// The sequence is in application order (first gate leftmost).
type conversionRule struct {
	Name     string
	Sequence []string
}

// defaultConversionRules expresses S, Z, X and Y in the H/T base alphabet.
// Substituting Y costs a global phase of -i on the recorded unitary, since
// the replaced run multiplies out to i·Y.
var defaultConversionRules = []conversionRule{
	{Name: "H", Sequence: []string{"H"}},
	{Name: "T", Sequence: []string{"T"}},
	{Name: "S", Sequence: []string{"T", "T"}},
	{Name: "Z", Sequence: []string{"T", "T", "T", "T"}},
	{Name: "X", Sequence: []string{"H", "T", "T", "T", "T", "H"}},
	{Name: "Y", Sequence: []string{"H", "T", "T", "T", "T", "H", "T", "T", "T", "T"}},
}

// rulesFor returns the rules for the accepted gate names, longest sequence
// first so compound rewrites win over their own sub-patterns.
func rulesFor(accepted []string) []conversionRule {
	var rules []conversionRule
	for _, name := range accepted {
		for _, r := range defaultConversionRules {
			if r.Name == name {
				rules = append(rules, r)
			}
		}
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].Sequence) > len(rules[j].Sequence)
	})
	return rules
}

// convertSequence rewrites a label sequence in place using the rules,
// scanning left to right per rule. H and T are the base alphabet and are
// never rewrite targets themselves. Returns the rewritten labels and the
// phase-adjusted unitary.
func convertSequence(rules []conversionRule, labels []string, u Unitary) ([]string, Unitary) {
	for _, rule := range rules {
		if rule.Name == "H" || rule.Name == "T" {
			continue
		}
		rl := len(rule.Sequence)
		i := 0
		for len(labels) >= rl+i {
			match := true
			for j, want := range rule.Sequence {
				if labels[i+j] != want {
					match = false
					break
				}
			}
			if match {
				rest := append([]string{rule.Name}, labels[i+rl:]...)
				labels = append(labels[:i:i], rest...)
				if rule.Name == "Y" {
					u = u.Scale(-1i)
				}
			}
			i++
		}
	}
	return labels, u
}

// ConvertTable rewrites every entry of a candidate table into the accepted
// gate alphabet, dropping entries that still contain unaccepted labels
// afterwards. The input table is not modified.
func ConvertTable(accepted []string, table CandidateTable) CandidateTable {
	rules := rulesFor(accepted)
	acceptSet := make(map[string]bool, len(accepted))
	for _, name := range accepted {
		acceptSet[name] = true
	}

	var out CandidateTable
	for _, e := range table {
		labels := append([]string(nil), e.Labels...)
		labels, u := convertSequence(rules, labels, e.U)

		ok := true
		for _, l := range labels {
			if !acceptSet[l] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, CandidateEntry{Labels: labels, U: u})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Labels) < len(out[j].Labels)
	})
	return out
}

// ──────────────────────────── Circuit lowering ────────────────────────────

// Layout is a parallel circuit: one column per time step, one cell per
// qubit. Cells hold a gate name, "control"/"X" for a CNOT pair, or "".
type Layout [][]string

// cnotReady checks whether a CNOT record can claim a column: both of the
// single-qubit sequences emitted just before it must have drained. A placed
// CNOT owns its column alone.
func cnotReady(records []GateRecord, consumed []int, i int) bool {
	if i < 2 {
		return true
	}
	return consumed[i-2] >= len(records[i-2].Labels) && consumed[i-1] >= len(records[i-1].Labels)
}

// LowerToLayout packs an abstract gate-record list into parallel columns.
// Each pass fills one column greedily from the record list, respecting
// per-qubit exclusivity; CNOT records wait for their preceding sequences
// and then take a column of their own.
func LowerToLayout(numQubits int, records []GateRecord) Layout {
	consumed := make([]int, len(records))
	var layout Layout

	for {
		done := true
		for i, rec := range records {
			if consumed[i] < len(rec.Labels) {
				done = false
				break
			}
		}
		if done {
			break
		}

		column := make([]string, numQubits)
		add := make([]int, len(records))
		cnotMask := make([]bool, numQubits)

		for i, rec := range records {
			if consumed[i] >= len(rec.Labels) {
				continue
			}

			if rec.IsCNOT {
				cnotMask[rec.Target] = true
				cnotMask[rec.Control] = true
				if cnotReady(records, consumed, i) {
					column = make([]string, numQubits)
					column[rec.Target] = "X"
					column[rec.Control] = "control"
					add = make([]int, len(records))
					add[i] = 1
					break
				}
				continue
			}

			if column[rec.Target] == "" && !cnotMask[rec.Target] {
				column[rec.Target] = rec.Labels[consumed[i]]
				add[i] = 1

				full := true
				for _, cell := range column {
					if cell == "" {
						full = false
						break
					}
				}
				if full {
					break
				}
			}
		}

		layout = append(layout, column)
		for i := range consumed {
			consumed[i] += add[i]
		}
	}

	return layout
}

// ToQASM renders the layout as QASM 2.0.
func (l Layout) ToQASM(numQubits int) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", numQubits)

	for _, column := range l {
		control := -1
		cnotTarget := -1
		for q, cell := range column {
			switch cell {
			case "control":
				control = q
			case "X":
				if columnHasControl(column) {
					cnotTarget = q
				}
			}
		}
		if control >= 0 && cnotTarget >= 0 {
			fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", control, cnotTarget)
			continue
		}
		for q, cell := range column {
			if cell == "" || cell == "I" {
				continue
			}
			fmt.Fprintf(&sb, "%s q[%d];\n", strings.ToLower(cell), q)
		}
	}
	return sb.String()
}

func columnHasControl(column []string) bool {
	for _, cell := range column {
		if cell == "control" {
			return true
		}
	}
	return false
}
