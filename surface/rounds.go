package surface

import "qcore/sim"

// ResetToZero measures qubit q of psi in Z and, if the outcome is 1,
// applies X to force it back to |0>.
func ResetToZero(psi *sim.State, q int) {
	if psi.MeasureQubitZ(q) == 1 {
		psi.Apply1Q(sim.GateX(), q)
	}
}

// PrepareAllPlusUnitary applies H to every data qubit of sc. Precondition:
// all data qubits of psi are currently |0> (typically because psi was just
// created via sim.Basis(sc.NQubits, 0)). Ancillas are left untouched.
func PrepareAllPlusUnitary(psi *sim.State, sc *Code) {
	h := sim.GateH()
	for d := 0; d < sc.NData; d++ {
		psi.Apply1Q(h, d)
	}
}

// PrepareAllPlusFresh resets every data qubit to |0> and then applies H,
// destroying any pre-existing data-qubit state.
func PrepareAllPlusFresh(psi *sim.State, sc *Code) {
	h := sim.GateH()
	for d := 0; d < sc.NData; d++ {
		ResetToZero(psi, d)
		psi.Apply1Q(h, d)
	}
}

// ZRound runs one Z-type syndrome-extraction round, detecting X-type
// errors on data qubits: for each Z-check, in order, the ancilla is reset
// to |0>, each of the check's four data supports (in stored order) is
// used as the control of a controlled-X onto the ancilla target, and the
// ancilla is measured in Z. Returns one bit per Z-check.
func ZRound(psi *sim.State, sc *Code) []int {
	syn := make([]int, len(sc.ZAnc))
	x := sim.GateX()
	for k, anc := range sc.ZAnc {
		ResetToZero(psi, anc)
		for _, d := range sc.ZCheck[k] {
			psi.ApplyControlled1Q(x, d, anc)
		}
		syn[k] = psi.MeasureQubitZ(anc)
	}
	return syn
}

// XRound runs one X-type syndrome-extraction round, detecting Z-type
// errors on data qubits: for each X-check, in order, the ancilla is reset
// to |0> then H'd into |+>, each of the check's four data supports (in
// stored order) is the controlled-X target with the ancilla as control,
// the ancilla is H'd back, and finally measured in Z. Returns one bit per
// X-check.
func XRound(psi *sim.State, sc *Code) []int {
	syn := make([]int, len(sc.XAnc))
	h := sim.GateH()
	x := sim.GateX()
	for k, anc := range sc.XAnc {
		ResetToZero(psi, anc)
		psi.Apply1Q(h, anc)
		for _, d := range sc.XCheck[k] {
			psi.ApplyControlled1Q(x, anc, d)
		}
		psi.Apply1Q(h, anc)
		syn[k] = psi.MeasureQubitZ(anc)
	}
	return syn
}
