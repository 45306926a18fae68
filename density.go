package main

import (
	"math"
	"math/cmplx"
)

// DensityMatrix is a single qubit's reduced 2x2 density matrix: diagonal
// entries are the |0⟩/|1⟩ occupation probabilities, the off-diagonal pair
// the coherence term and its conjugate.
type DensityMatrix [2][2]Complex

// Coordinate is a point in the Bloch ball.
type Coordinate [3]float64

// PartialTrace reduces the joint state to one density matrix per qubit.
// The coherence term of qubit q is accumulated over the same stride/half
// index decomposition the gate kernel uses; the |0⟩ occupation is summed
// directly over basis indices whose qubit-q bit is 0, and the remaining
// entries follow from hermiticity and unit trace.
func PartialTrace(s *StateVector, numQubits int) []DensityMatrix {
	rho := make([]DensityMatrix, numQubits)
	n := 1 << numQubits

	for q := 0; q < numQubits; q++ {
		m := 1 << q
		stride := n / m
		half := stride / 2
		var coherence Complex
		for i := 0; i < m; i++ {
			x := i * stride
			for j := 0; j < half; j++ {
				i0 := x + j
				i1 := i0 + half
				coherence += s.Amplitudes[i0] * cmplx.Conj(s.Amplitudes[i1])
			}
		}
		rho[q][0][1] = coherence
	}

	for j := 0; j < n; j++ {
		p := real(s.Amplitudes[j])*real(s.Amplitudes[j]) + imag(s.Amplitudes[j])*imag(s.Amplitudes[j])
		for q := 0; q < numQubits; q++ {
			if (^j>>(numQubits-q-1))&1 == 1 {
				rho[q][0][0] += complex(p, 0)
			}
		}
	}

	for q := 0; q < numQubits; q++ {
		rho[q][1][0] = cmplx.Conj(rho[q][0][1])
		rho[q][1][1] = complex(1-cmplx.Abs(rho[q][0][0]), 0)
	}

	return rho
}

// BlochCoordinate maps a density matrix into the Bloch ball.
func BlochCoordinate(rho DensityMatrix) Coordinate {
	x := 2 * real(rho[1][0])
	y := 2 * imag(rho[1][0])
	z := cmplx.Abs(2*rho[0][0]) - 1
	return Coordinate{x, y, z}
}

// BlochRadius is the distance from the ball's center: 1 for a pure
// unentangled qubit, 0 for a maximally mixed one.
func BlochRadius(rho DensityMatrix) float64 {
	c := BlochCoordinate(rho)
	return math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
}

// CoordinateFromAngles converts spherical target parameters (degrees) into
// a Bloch coordinate.
func CoordinateFromAngles(phi, theta, radius float64) Coordinate {
	phiRad := phi * math.Pi / 180
	thetaRad := theta * math.Pi / 180
	return Coordinate{
		radius * math.Sin(thetaRad) * math.Cos(phiRad),
		radius * math.Sin(thetaRad) * math.Sin(phiRad),
		radius * math.Cos(thetaRad),
	}
}

// Distance is the Euclidean distance between two Bloch coordinates.
func Distance(a, b Coordinate) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// RadiusDiff is the absolute difference of two radii.
func RadiusDiff(a, b float64) float64 {
	return math.Abs(a - b)
}
