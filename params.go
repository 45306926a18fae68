package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDegrees parses an angle field in degrees. Plain numbers only; the
// Bloch parameters of this tool are conventionally entered in degrees.
func parseDegrees(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// parseRadius parses a target-radius field and checks the unit-ball range.
func parseRadius(s string) (float64, bool) {
	val, ok := parseDegrees(s)
	if !ok || val < 0 || val > 1 {
		return 0, false
	}
	return val, true
}

// formatMetric formats a float for the result panels.
func formatMetric(val float64) string {
	return strconv.FormatFloat(val, 'f', 5, 64)
}

// collectParams converts the setup form fields into the optimizer inputs.
// Fields per qubit, in order: initial φ, initial θ, target φ, target θ,
// target r. Returns a message naming the first bad field on failure.
func collectParams(numQubits int, fields []string) ([]QubitAngles, []Target, string) {
	angles := make([]QubitAngles, numQubits)
	targets := make([]Target, numQubits)

	for q := 0; q < numQubits; q++ {
		base := q * fieldsPerQubit

		iphi, ok := parseDegrees(fields[base])
		if !ok {
			return nil, nil, fmt.Sprintf("qubit %d: bad initial φ", q)
		}
		itheta, ok := parseDegrees(fields[base+1])
		if !ok {
			return nil, nil, fmt.Sprintf("qubit %d: bad initial θ", q)
		}
		tphi, ok := parseDegrees(fields[base+2])
		if !ok {
			return nil, nil, fmt.Sprintf("qubit %d: bad target φ", q)
		}
		ttheta, ok := parseDegrees(fields[base+3])
		if !ok {
			return nil, nil, fmt.Sprintf("qubit %d: bad target θ", q)
		}
		radius, ok := parseRadius(fields[base+4])
		if !ok {
			return nil, nil, fmt.Sprintf("qubit %d: bad target radius (want 0..1)", q)
		}

		angles[q] = QubitAngles{Phi: iphi, Theta: itheta}
		targets[q] = Target{Phi: tphi, Theta: ttheta, Radius: radius}
	}
	return angles, targets, ""
}
