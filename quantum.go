package main

import (
	"math"
	"math/cmplx"
)

type Complex = complex128

// Unitary is a 2x2 single-qubit gate matrix. Unitary[r][c] is the row-r,
// column-c entry.
type Unitary [2][2]Complex

// Mul returns u·v (v applied first).
func (u Unitary) Mul(v Unitary) Unitary {
	var r Unitary
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r[i][j] = u[i][0]*v[0][j] + u[i][1]*v[1][j]
		}
	}
	return r
}

// Scale returns u multiplied by a global phase factor.
func (u Unitary) Scale(f Complex) Unitary {
	var r Unitary
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r[i][j] = f * u[i][j]
		}
	}
	return r
}

// EqualApprox reports whether u and v match entrywise within tol.
func (u Unitary) EqualApprox(v Unitary, tol float64) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.Abs(u[i][j]-v[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

var (
	identityGate = Unitary{{1, 0}, {0, 1}}
	pauliX       = Unitary{{0, 1}, {1, 0}}
)

// StateVector is a dense n-qubit register state. Amplitudes are indexed by
// the basis-configuration integer with qubit 0 in the most significant bit,
// so qubit q selects bit (NumQubits-1-q) of the index.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

func NewStateVector(numQubits int) *StateVector {
	n := 1 << numQubits
	amps := make([]Complex, n)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Norm returns the sum of squared amplitude magnitudes (≈1 for valid states).
func (s *StateVector) Norm() float64 {
	sum := 0.0
	for _, a := range s.Amplitudes {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return sum
}

// QubitAngles holds a single qubit's Bloch-sphere direction in degrees.
type QubitAngles struct {
	Phi   float64 // azimuth
	Theta float64 // polar
}

// InitializeState builds the product state of the given per-qubit angles,
// extending the register one qubit at a time: each qubit contributes
// cos(θ/2)|0⟩ + e^(iφ)sin(θ/2)|1⟩ and the vector doubles in length.
func InitializeState(angles []QubitAngles) *StateVector {
	state := []Complex{1}
	for _, a := range angles {
		theta := a.Theta * math.Pi / 180
		phi := a.Phi * math.Pi / 180
		q0 := Complex(complex(math.Cos(theta/2), 0))
		q1 := cmplx.Exp(complex(0, phi)) * complex(math.Sin(theta/2), 0)

		next := make([]Complex, 2*len(state))
		for j := range next {
			amp := q0
			if j%2 == 1 {
				amp = q1
			}
			next[j] = state[j/2] * amp
		}
		state = next
	}
	return &StateVector{Amplitudes: state, NumQubits: len(angles)}
}

// Role assigns a qubit's part in one gate application.
type Role int

const (
	RoleNone Role = iota
	RoleControl
	RoleTarget
)

// GateSpec is a role assignment over the register for one gate application:
// one target, any number of controls. Controls are active-high; the gate
// fires only on basis states where every control bit is 1.
type GateSpec []Role

// NewGateSpec builds a spec with the given target and optional single
// control (-1 for none).
func NewGateSpec(numQubits, target, control int) GateSpec {
	spec := make(GateSpec, numQubits)
	if control >= 0 {
		spec[control] = RoleControl
	}
	spec[target] = RoleTarget
	return spec
}

// Target returns the target qubit index, or -1 if none is marked.
func (g GateSpec) Target() int {
	for i, r := range g {
		if r == RoleTarget {
			return i
		}
	}
	return -1
}

// HasControl reports whether any qubit is marked as a control.
func (g GateSpec) HasControl() bool {
	for _, r := range g {
		if r == RoleControl {
			return true
		}
	}
	return false
}

// controlOffsets enumerates, over the half-stride offset space of the target
// qubit, which offsets satisfy every control constraint. The table is built
// by doubling once per non-target qubit, in qubit order: the low entry of
// each pair is the qubit-is-0 branch (killed for controls), the high entry
// the qubit-is-1 branch. The kernel indexes it as block*half + j.
func (g GateSpec) controlOffsets(target int) []bool {
	allowed := []bool{true}
	for q := range g {
		if q == target {
			continue
		}
		isControl := g[q] == RoleControl
		next := make([]bool, 2*len(allowed))
		for j, ok := range allowed {
			next[2*j] = ok && !isControl
			next[2*j+1] = ok
		}
		allowed = next
	}
	return allowed
}

// ApplyGate applies the 2x2 unitary at the spec's target qubit, in place.
// With no target marked the state is left unchanged. With controls marked,
// only amplitude pairs whose control bits are all 1 are updated.
func (s *StateVector) ApplyGate(spec GateSpec, u Unitary) {
	target := spec.Target()
	if target < 0 {
		return
	}

	n := len(s.Amplitudes)
	m := 1 << target
	stride := n / m
	half := stride / 2
	t00, t01 := u[0][0], u[0][1]
	t10, t11 := u[1][0], u[1][1]

	if !spec.HasControl() {
		for i := 0; i < m; i++ {
			x := i * stride
			for j := 0; j < half; j++ {
				i0 := x + j
				i1 := i0 + half
				sv0, sv1 := s.Amplitudes[i0], s.Amplitudes[i1]
				s.Amplitudes[i0] = sv0*t00 + sv1*t01
				s.Amplitudes[i1] = sv0*t10 + sv1*t11
			}
		}
		return
	}

	allowed := spec.controlOffsets(target)
	for i := 0; i < m; i++ {
		x := i * stride
		ip := i * half
		for j := 0; j < half; j++ {
			if !allowed[ip+j] {
				continue
			}
			i0 := x + j
			i1 := i0 + half
			sv0, sv1 := s.Amplitudes[i0], s.Amplitudes[i1]
			s.Amplitudes[i0] = sv0*t00 + sv1*t01
			s.Amplitudes[i1] = sv0*t10 + sv1*t11
		}
	}
}
