package main

import (
	"encoding/json"
	"fmt"
	"math"
	"math/cmplx"
	"os"
)

// gateUnitaries maps the supported single-qubit gate alphabet to matrices.
var gateUnitaries = map[string]Unitary{
	"I": identityGate,
	"H": {{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)}, {complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)}},
	"T": {{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}},
	"S": {{1, 0}, {0, 1i}},
	"Z": {{1, 0}, {0, -1}},
	"X": {{0, 1}, {1, 0}},
	"Y": {{0, -1i}, {1i, 0}},
}

// CandidateEntry is one precomputed gate sequence: the labels in application
// order and the resulting 2x2 unitary (product of the labels' matrices,
// last label leftmost).
type CandidateEntry struct {
	Labels []string
	U      Unitary
}

// CandidateTable is a read-only collection of candidate sequences, shared
// safely across concurrent searches once built.
type CandidateTable []CandidateEntry

// SequenceUnitary multiplies out a label sequence. Unknown labels are an
// error so a malformed table fails at load rather than mid-search.
func SequenceUnitary(labels []string) (Unitary, error) {
	u := identityGate
	for _, l := range labels {
		g, ok := gateUnitaries[l]
		if !ok {
			return Unitary{}, fmt.Errorf("unknown gate label %q", l)
		}
		u = g.Mul(u)
	}
	return u, nil
}

// equalUpToPhase reports whether two unitaries differ only by a global
// phase factor.
func equalUpToPhase(u, v Unitary, tol float64) bool {
	var phase Complex
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(v[i][j]) > tol {
				phase = u[i][j] / v[i][j]
				if math.Abs(cmplx.Abs(phase)-1) > tol {
					return false
				}
				return u.EqualApprox(v.Scale(phase), tol)
			}
		}
	}
	return false
}

// GenerateCandidates enumerates every H/T sequence up to maxLen gates,
// breadth-first so shorter sequences come first, dropping any sequence
// whose unitary matches an earlier one up to global phase. The empty
// sequence (identity) is always entry zero.
func GenerateCandidates(maxLen int) CandidateTable {
	table := CandidateTable{{Labels: nil, U: identityGate}}

	type node struct {
		labels []string
		u      Unitary
	}
	frontier := []node{{nil, identityGate}}

	for depth := 1; depth <= maxLen; depth++ {
		var next []node
		for _, nd := range frontier {
			for _, base := range []string{"H", "T"} {
				labels := append(append([]string(nil), nd.labels...), base)
				u := gateUnitaries[base].Mul(nd.u)
				next = append(next, node{labels, u})

				dup := false
				for _, e := range table {
					if equalUpToPhase(u, e.U, 1e-9) {
						dup = true
						break
					}
				}
				if !dup {
					table = append(table, CandidateEntry{Labels: labels, U: u})
				}
			}
		}
		frontier = next
	}
	return table
}

// FilterByLength keeps entries with at most maxLen labels (the short/long
// table split).
func (t CandidateTable) FilterByLength(maxLen int) CandidateTable {
	var out CandidateTable
	for _, e := range t {
		if len(e.Labels) <= maxLen {
			out = append(out, e)
		}
	}
	return out
}

// MaxSequenceLength returns the longest label sequence in the table.
func (t CandidateTable) MaxSequenceLength() int {
	longest := 0
	for _, e := range t {
		if len(e.Labels) > longest {
			longest = len(e.Labels)
		}
	}
	return longest
}

// ──────────────────────────── JSON encoding ────────────────────────────
//
// The on-disk format keeps complex numbers as [re, im] pairs:
//   [ [["H","T"], [[[re,im],[re,im]], [[re,im],[re,im]]]], ... ]

type entryJSON [2]json.RawMessage

func (e CandidateEntry) MarshalJSON() ([]byte, error) {
	labels := e.Labels
	if labels == nil {
		labels = []string{}
	}
	var m [2][2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j] = [2]float64{real(e.U[i][j]), imag(e.U[i][j])}
		}
	}
	return json.Marshal([2]any{labels, m})
}

func (e *CandidateEntry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[0], &e.Labels); err != nil {
		return err
	}
	var m [2][2][2]float64
	if err := json.Unmarshal(raw[1], &m); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			e.U[i][j] = complex(m[i][j][0], m[i][j][1])
		}
	}
	return nil
}

// LoadCandidateTable reads a precomputed table from disk.
func LoadCandidateTable(path string) (CandidateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var table CandidateTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse candidate table %s: %w", path, err)
	}
	return table, nil
}

// SaveCandidateTable writes the table to disk in the [re,im] pair format.
func SaveCandidateTable(path string, table CandidateTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
