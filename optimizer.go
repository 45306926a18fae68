package main

import (
	"errors"
	"math"
	"time"

	"github.com/charmbracelet/log"
)

// ErrCanceled is returned when the progress callback requests a stop. No
// partial gate list survives a cancellation.
var ErrCanceled = errors.New("synthesis canceled")

// ProgressFunc receives a monotonically increasing percentage before each
// innermost search iteration. Returning false cancels the search
// cooperatively at the next iteration boundary.
type ProgressFunc func(percent float64) bool

// Target is one qubit's requested Bloch position, angles in degrees.
type Target struct {
	Phi    float64
	Theta  float64
	Radius float64
}

// GateRecord is one committed gate application: the candidate sequence
// label and the qubit it lands on. Entangling steps emit a CNOT record
// carrying the control qubit.
type GateRecord struct {
	Labels  []string
	Target  int
	Control int // -1 except for CNOT records
	IsCNOT  bool
}

// QubitReport is a per-qubit accuracy summary of the final state.
type QubitReport struct {
	Coordinate Coordinate
	Radius     float64
	Phi        float64 // degrees
	Theta      float64 // degrees
	Accuracy   float64 // 1 - distance/2, in [0,1]
}

// SynthesisResult bundles the chosen gate list, the final state, and the
// per-qubit accuracy metrics.
type SynthesisResult struct {
	Gates   []GateRecord
	State   *StateVector
	Reports []QubitReport
	Elapsed time.Duration
}

// Per-iteration work weights for the static progress estimate: three state
// copies plus trace per inner phase-1 trial, one copy per outer, two per
// phase-2 trial.
const (
	firstInsideStep  = 3.0
	firstOutsideStep = 1.0
	secondStep       = 2.0
)

// improves reports whether diff beats the running minimum by more than the
// tie-break epsilon. At equal precision the incumbent is kept.
func improves(minDiff, diff float64) bool {
	return minDiff-1e-12 > diff
}

// Synthesize searches for a gate sequence driving the initial state toward
// the per-qubit targets. Phase 1 entangles planned qubit pairs using every
// short-table combination plus a fixed CNOT; phase 2 adjusts each qubit
// with the best long-table candidate. The candidate tables are only read;
// every trial works on a private copy of the committed state.
func Synthesize(short, long CandidateTable, initial *StateVector, targets []Target, progress ProgressFunc) (*SynthesisResult, error) {
	if progress == nil {
		progress = func(float64) bool { return true }
	}
	start := time.Now()

	numQubits := len(targets)
	targetCoords := make([]Coordinate, numQubits)
	targetRadii := make([]float64, numQubits)
	for i, t := range targets {
		targetCoords[i] = CoordinateFromAngles(t.Phi, t.Theta, t.Radius)
		targetRadii[i] = t.Radius
	}

	order, err := PlanOrder(targetRadii)
	if err != nil {
		return nil, err
	}
	log.Debug("planned entangling order", "steps", len(order))

	// Static progress estimate across both phases.
	firstStep := float64(len(short)) * (firstOutsideStep + float64(len(short))*firstInsideStep)
	secondOutsideStep := secondStep * float64(len(long))
	totalSteps := float64(len(order))*firstStep + float64(numQubits)*secondOutsideStep

	firstInsideOne := firstInsideStep / totalSteps * 100
	firstOutsideOne := (firstOutsideStep + float64(len(short))*firstInsideStep) / totalSteps * 100
	firstOne := firstStep / totalSteps * 100
	firstTotal := float64(len(order)) * firstStep / totalSteps * 100
	secondOne := secondStep / totalSteps * 100
	secondOutsideOne := secondOutsideStep / totalSteps * 100

	state := initial.Clone()
	var gates []GateRecord

	// Phase 1: entangling.
	for num, step := range order {
		minDiff := 2.0
		gateA := NewGateSpec(numQubits, step.A.Qubit, -1)
		gateB := NewGateSpec(numQubits, step.B.Qubit, -1)
		cnot := NewGateSpec(numQubits, step.B.Qubit, step.A.Qubit)

		var bestState *StateVector
		bestA, bestB := -1, -1

		for i1, d1 := range short {
			afterA := state.Clone()
			afterA.ApplyGate(gateA, d1.U)

			for i2, d2 := range short {
				pct := firstOne*float64(num) + firstOutsideOne*float64(i1) + firstInsideOne*float64(i2)
				if !progress(pct) {
					log.Debug("search canceled during entangling phase", "step", num)
					return nil, ErrCanceled
				}

				trial := afterA.Clone()
				trial.ApplyGate(gateB, d2.U)
				trial.ApplyGate(cnot, pauliX)

				rho := PartialTrace(trial, numQubits)
				diffA := RadiusDiff(BlochRadius(rho[step.A.Qubit]), step.A.Radius)
				diffB := RadiusDiff(BlochRadius(rho[step.B.Qubit]), step.B.Radius)
				diff := (diffA + diffB) / 2

				if improves(minDiff, diff) {
					minDiff = diff
					bestState = trial
					bestA, bestB = i1, i2
				}
			}
		}

		if bestState == nil {
			// Every combination scored at or above the initial bound;
			// nothing to commit for this stage.
			log.Warn("no entangling candidate improved the bound", "step", num)
			continue
		}

		state = bestState
		gates = append(gates,
			GateRecord{Labels: short[bestA].Labels, Target: step.A.Qubit, Control: -1},
			GateRecord{Labels: short[bestB].Labels, Target: step.B.Qubit, Control: -1},
			GateRecord{Labels: []string{"cnot"}, Target: step.B.Qubit, Control: step.A.Qubit, IsCNOT: true},
		)
		log.Debug("entangling step committed",
			"step", num, "qubitA", step.A.Qubit, "qubitB", step.B.Qubit, "error", minDiff)
	}

	// Phase 2: individual adjustment.
	for q := 0; q < numQubits; q++ {
		minDiff := 2.0
		spec := NewGateSpec(numQubits, q, -1)

		var bestState *StateVector
		bestIdx := -1

		for idx, d := range long {
			pct := firstTotal + secondOutsideOne*float64(q) + secondOne*float64(idx)
			if !progress(pct) {
				log.Debug("search canceled during adjustment phase", "qubit", q)
				return nil, ErrCanceled
			}

			trial := state.Clone()
			trial.ApplyGate(spec, d.U)
			rho := PartialTrace(trial, numQubits)
			diff := Distance(BlochCoordinate(rho[q]), targetCoords[q])

			if improves(minDiff, diff) {
				minDiff = diff
				bestState = trial
				bestIdx = idx
			}
		}

		if bestState == nil {
			log.Warn("no adjustment candidate improved the bound", "qubit", q)
			continue
		}

		state = bestState
		gates = append(gates, GateRecord{Labels: long[bestIdx].Labels, Target: q, Control: -1})
		log.Debug("adjustment committed", "qubit", q, "distance", minDiff)
	}

	return &SynthesisResult{
		Gates:   gates,
		State:   state,
		Reports: buildReports(state, targetCoords),
		Elapsed: time.Since(start),
	}, nil
}

// buildReports derives the per-qubit accuracy metrics of a final state.
func buildReports(state *StateVector, targetCoords []Coordinate) []QubitReport {
	numQubits := len(targetCoords)
	rho := PartialTrace(state, numQubits)
	reports := make([]QubitReport, numQubits)

	for q := 0; q < numQubits; q++ {
		coord := BlochCoordinate(rho[q])
		radius := BlochRadius(rho[q])
		theta := 0.0
		if radius > 0 {
			theta = math.Acos(coord[2]/radius) * 180 / math.Pi
		}
		phi := math.Atan2(coord[1], coord[0]) * 180 / math.Pi
		reports[q] = QubitReport{
			Coordinate: coord,
			Radius:     radius,
			Phi:        phi,
			Theta:      theta,
			Accuracy:   1 - Distance(coord, targetCoords[q])/2,
		}
	}
	return reports
}
