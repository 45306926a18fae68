package main

import (
	"math"
	"testing"
)

func TestPartialTraceProductState(t *testing.T) {
	// Unentangled product state: every qubit must come out pure (radius 1)
	// with its own Bloch direction.
	s := InitializeState([]QubitAngles{
		{Phi: 0, Theta: 90}, // +x
		{Phi: 0, Theta: 0},  // +z
	})
	rho := PartialTrace(s, 2)

	if r := BlochRadius(rho[0]); math.Abs(r-1) > 1e-9 {
		t.Errorf("qubit 0 radius = %v, want 1", r)
	}
	if r := BlochRadius(rho[1]); math.Abs(r-1) > 1e-9 {
		t.Errorf("qubit 1 radius = %v, want 1", r)
	}

	c0 := BlochCoordinate(rho[0])
	if math.Abs(c0[0]-1) > 1e-9 || math.Abs(c0[1]) > 1e-9 || math.Abs(c0[2]) > 1e-9 {
		t.Errorf("qubit 0 coordinate = %v, want (1,0,0)", c0)
	}

	c1 := BlochCoordinate(rho[1])
	if math.Abs(c1[2]-1) > 1e-9 {
		t.Errorf("qubit 1 coordinate = %v, want (0,0,1)", c1)
	}
}

func TestPartialTraceBellState(t *testing.T) {
	// H then CNOT gives (|00⟩+|11⟩)/√2; both reduced matrices are maximally
	// mixed.
	s := NewStateVector(2)
	s.ApplyGate(NewGateSpec(2, 0, -1), gateUnitaries["H"])
	s.ApplyGate(NewGateSpec(2, 1, 0), pauliX)

	rho := PartialTrace(s, 2)
	for q := 0; q < 2; q++ {
		if r := BlochRadius(rho[q]); r > 1e-9 {
			t.Errorf("qubit %d radius = %v, want 0", q, r)
		}
		if p := real(rho[q][0][0]); math.Abs(p-0.5) > 1e-9 {
			t.Errorf("qubit %d ρ00 = %v, want 0.5", q, p)
		}
	}
}

func TestCoordinateFromAngles(t *testing.T) {
	c := CoordinateFromAngles(0, 0, 1)
	if math.Abs(c[2]-1) > 1e-9 {
		t.Errorf("θ=0 should point at +z, got %v", c)
	}

	c = CoordinateFromAngles(90, 90, 0.5)
	if math.Abs(c[1]-0.5) > 1e-9 || math.Abs(c[0]) > 1e-9 || math.Abs(c[2]) > 1e-9 {
		t.Errorf("φ=θ=90, r=0.5 should give (0,0.5,0), got %v", c)
	}
}

func TestDistance(t *testing.T) {
	a := Coordinate{1, 0, 0}
	b := Coordinate{-1, 0, 0}
	if d := Distance(a, b); math.Abs(d-2) > 1e-9 {
		t.Errorf("antipodal distance = %v, want 2", d)
	}
	if d := Distance(a, a); d != 0 {
		t.Errorf("self distance = %v, want 0", d)
	}
	if d := RadiusDiff(0.3, 0.8); math.Abs(d-0.5) > 1e-9 {
		t.Errorf("RadiusDiff = %v, want 0.5", d)
	}
}
