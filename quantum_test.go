package main

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestInitializeStateNorm(t *testing.T) {
	angles := []QubitAngles{
		{Phi: 30, Theta: 60},
		{Phi: 0, Theta: 90},
		{Phi: 245, Theta: 17},
	}
	s := InitializeState(angles)

	if len(s.Amplitudes) != 8 {
		t.Fatalf("expected 8 amplitudes for 3 qubits, got %d", len(s.Amplitudes))
	}
	if norm := s.Norm(); math.Abs(norm-1) > 1e-9 {
		t.Errorf("expected unit norm, got %v", norm)
	}
}

func TestInitializeStateBasisOrdering(t *testing.T) {
	// Qubit 0 at θ=180 is |1⟩; with qubit 0 in the most significant bit the
	// register |10⟩ must land on index 2.
	s := InitializeState([]QubitAngles{{Theta: 180}, {Theta: 0}})

	if cmplx.Abs(s.Amplitudes[2]-1) > 1e-9 {
		t.Errorf("expected amplitude 1 at index 2, got %v (full state %v)", s.Amplitudes[2], s.Amplitudes)
	}
}

func TestApplyGateSelfInverse(t *testing.T) {
	s := NewStateVector(2)
	spec := NewGateSpec(2, 1, -1)

	s.ApplyGate(spec, pauliX)
	s.ApplyGate(spec, pauliX)

	if cmplx.Abs(s.Amplitudes[0]-1) > 1e-9 {
		t.Errorf("double X should restore |00⟩, got %v", s.Amplitudes)
	}
}

func TestApplyGateTargetStride(t *testing.T) {
	// X on qubit 0 of a 2-qubit register flips the high bit: |00⟩ → |10⟩.
	s := NewStateVector(2)
	s.ApplyGate(NewGateSpec(2, 0, -1), pauliX)

	if cmplx.Abs(s.Amplitudes[2]-1) > 1e-9 {
		t.Errorf("expected |10⟩ (index 2), got %v", s.Amplitudes)
	}
	if norm := s.Norm(); math.Abs(norm-1) > 1e-9 {
		t.Errorf("norm drifted to %v", norm)
	}
}

func TestApplyGateControlled(t *testing.T) {
	// CNOT with the control at 0 only fires once the control is set.
	s := NewStateVector(2)
	cnot := NewGateSpec(2, 1, 0)

	s.ApplyGate(cnot, pauliX)
	if cmplx.Abs(s.Amplitudes[0]-1) > 1e-9 {
		t.Fatalf("CNOT on |00⟩ should do nothing, got %v", s.Amplitudes)
	}

	s.ApplyGate(NewGateSpec(2, 0, -1), pauliX) // |10⟩
	s.ApplyGate(cnot, pauliX)
	if cmplx.Abs(s.Amplitudes[3]-1) > 1e-9 {
		t.Errorf("CNOT on |10⟩ should give |11⟩ (index 3), got %v", s.Amplitudes)
	}
}

func TestApplyGateMultiControl(t *testing.T) {
	// Toffoli built from two control roles: fires only on |11x⟩.
	spec := make(GateSpec, 3)
	spec[0] = RoleControl
	spec[1] = RoleControl
	spec[2] = RoleTarget

	s := NewStateVector(3)
	s.ApplyGate(NewGateSpec(3, 0, -1), pauliX) // |100⟩
	s.ApplyGate(spec, pauliX)
	if cmplx.Abs(s.Amplitudes[4]-1) > 1e-9 {
		t.Fatalf("one control unset, expected |100⟩ unchanged, got %v", s.Amplitudes)
	}

	s.ApplyGate(NewGateSpec(3, 1, -1), pauliX) // |110⟩
	s.ApplyGate(spec, pauliX)
	if cmplx.Abs(s.Amplitudes[7]-1) > 1e-9 {
		t.Errorf("both controls set, expected |111⟩ (index 7), got %v", s.Amplitudes)
	}
}

func TestGateSpecAccessors(t *testing.T) {
	spec := NewGateSpec(4, 2, 0)
	if spec.Target() != 2 {
		t.Errorf("Target() = %d, want 2", spec.Target())
	}
	if !spec.HasControl() {
		t.Error("HasControl() = false, want true")
	}

	free := NewGateSpec(4, 3, -1)
	if free.HasControl() {
		t.Error("HasControl() = true for an uncontrolled spec")
	}
}
