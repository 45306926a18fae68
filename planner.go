package main

import (
	"fmt"
	"math"
	"sort"
)

// radiusEpsilon is the tolerance below which a target radius counts as 1
// (pure, no entanglement needed).
const radiusEpsilon = 1e-5

// radiusEntry pairs a qubit index with a target radius.
type radiusEntry struct {
	Qubit  int
	Radius float64
}

// OrderStep is one planned entangling stage: qubit A is driven toward its
// own target radius while the anchor qubit B is driven toward an
// intermediate radius, then A controls a CNOT onto B.
type OrderStep struct {
	A radiusEntry
	B radiusEntry
}

// FeasibilityError reports target radii that no gate sequence can reach:
// either a single qubit requests entanglement, or the smallest requested
// radius lies below the product of the others (the register cannot supply
// that much entanglement).
type FeasibilityError struct {
	EntangledCount int
	Qubit          int
	Radius         float64
	LowerBound     float64
}

func (e *FeasibilityError) Error() string {
	if e.EntangledCount == 1 {
		return fmt.Sprintf("radius value error: only qubit %d requests entanglement (radius %.6g); entangling needs at least two participants", e.Qubit, e.Radius)
	}
	return fmt.Sprintf("radius value error: qubit %d requests radius %.6g below the entanglement lower bound %.6g", e.Qubit, e.Radius, e.LowerBound)
}

// radiusInspect checks the entanglement lower bound on radii sorted
// ascending: the product of all-but-the-smallest must not exceed the
// smallest. Returns the offending entry, the computed bound, and validity.
func radiusInspect(sorted []radiusEntry) (radiusEntry, float64, bool) {
	minRadius := 1.0
	for _, e := range sorted[1:] {
		minRadius *= e.Radius
	}
	if len(sorted) == 1 || sorted[0].Radius < minRadius {
		return sorted[0], minRadius, false
	}
	return sorted[0], minRadius, true
}

// PlanOrder decides which qubit pairs to entangle, in what order, and with
// what intermediate target radii. Qubits whose target radius is within
// radiusEpsilon of 1 need no entanglement and are excluded. An empty plan
// with a nil error means phase 1 can be skipped entirely.
func PlanOrder(targetRadii []float64) ([]OrderStep, error) {
	var entries []radiusEntry
	for i, r := range targetRadii {
		if r < 1-radiusEpsilon {
			entries = append(entries, radiusEntry{Qubit: i, Radius: r})
		}
	}
	if len(entries) == 0 {
		return nil, nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Radius < entries[j].Radius
	})

	offending, bound, ok := radiusInspect(entries)
	if !ok {
		return nil, &FeasibilityError{
			EntangledCount: len(entries),
			Qubit:          offending.Qubit,
			Radius:         offending.Radius,
			LowerBound:     bound,
		}
	}

	return addOrder(entries), nil
}

// entangleGroup is a maximal feasible set of qubits that one entangling
// chain can serve, with its normalization factor A = anchor radius divided
// by the product of the whole group's radii.
type entangleGroup struct {
	a       float64
	members []radiusEntry
}

// addOrder greedily partitions the ascending-sorted entries into feasible
// entangling groups. Within a group the running product of included radii
// must stay strictly above the anchor's (the first member's) own radius; a
// qubit that would break the bound closes the group. Entries that never
// find a valid group fall back to plain pairing with their immediate
// predecessor in sort order.
func addOrder(sorted []radiusEntry) []OrderStep {
	var groups []entangleGroup
	var singles [][2]radiusEntry
	mask := make([]int, len(sorted))
	count := 0

	for {
		count++
		judge := false
		multiply := 1.0
		newMultiply := 1.0
		var newMask []int
		index := 0
		lastData := -1

		for k := range sorted {
			if mask[k] == 0 {
				index = k
				mask[k] = count
				break
			}
		}

		for i, num := range sorted {
			if mask[i] != 0 {
				continue
			}
			if judge {
				newMultiply = multiply
			}
			newMultiply *= num.Radius
			newMask = append(newMask, i)

			if newMultiply <= sorted[index].Radius {
				newMask = newMask[:len(newMask)-1]
				lastData = i
				judge = true
				continue
			} else if judge {
				newMask = newMask[:len(newMask)-1]
				break
			}
			multiply = newMultiply
		}

		if judge {
			multiply *= sorted[lastData].Radius
			newMask = append(newMask, lastData)
			for _, d := range newMask {
				mask[d] = count
			}
			var members []radiusEntry
			for k, d := range sorted {
				if mask[k] == count {
					members = append(members, d)
				}
			}
			groups = append(groups, entangleGroup{
				a:       sorted[index].Radius / multiply,
				members: members,
			})
		} else {
			for i, d := range sorted {
				if mask[i] == 0 || mask[i] == count {
					prev := sorted[(i-1+len(sorted))%len(sorted)]
					singles = append(singles, [2]radiusEntry{prev, d})
				}
			}
			break
		}

		done := true
		for _, m := range mask {
			if m == 0 {
				done = false
				break
			}
		}
		if done {
			break
		}
	}

	var order []OrderStep
	for _, g := range groups {
		order = append(order, calcOrderChain(g)...)
	}
	for _, p := range singles {
		order = append(order, OrderStep{A: p[0], B: p[1]})
	}
	return order
}

// calcOrderChain expands one feasible group into per-stage target radii,
// always anchored against the group's smallest-radius member. For groups
// larger than two, a running coefficient A1 is narrowed at each stage by
// picking the midpoint of the feasible intermediate-radius interval; the
// first stage is pinned to the interval's lower bound. Whether a different
// interior point would synthesize better is untested.
func calcOrderChain(g entangleGroup) []OrderStep {
	members := g.members
	count := len(members)
	var order []OrderStep

	if count == 2 {
		return []OrderStep{{A: members[1], B: members[0]}}
	}

	a := g.a
	a1 := a
	minRadius := 1.0

	for i := 1; i < count; i++ {
		minRadius *= members[i].Radius
		maxRadius := minRadius * a

		floor := minRadius * a / a1
		rMin := math.Max(members[0].Radius, floor)
		rMax := math.Min(maxRadius, floor/members[i].Radius)

		average := (rMin + rMax) / 2
		x := (average - floor) / (maxRadius - floor)
		if i == 1 {
			x = 0
		}

		a0 := 1 + (a1-1)*x
		a1 = a1 / a0
		radius2 := a / a1 * minRadius

		order = append(order, OrderStep{
			A: members[i],
			B: radiusEntry{Qubit: members[0].Qubit, Radius: radius2},
		})
	}
	return order
}
