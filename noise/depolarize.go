// Package noise implements per-data-qubit single-Pauli depolarization
// injection driven by an external RNG. This is the one noise model
// spec.md's Non-goals carve back into scope ("beyond per-data-qubit
// single-Pauli depolarization ... driven by an external RNG" is excluded,
// meaning exactly that primitive is in scope); anything richer — two-qubit
// errors, correlated noise, Kraus channels — is out of scope.
package noise

import (
	"math"
	"math/rand/v2"

	"qcore/sim"
)

// Pauli identifies which single-qubit Pauli error to apply.
type Pauli int

const (
	PauliX Pauli = iota
	PauliY
	PauliZ
)

func (p Pauli) String() string {
	switch p {
	case PauliX:
		return "X"
	case PauliY:
		return "Y"
	case PauliZ:
		return "Z"
	default:
		return "?"
	}
}

// Draw uniformly samples one of X, Y, Z using rnd.
func Draw(rnd *rand.Rand) Pauli {
	return Pauli(rnd.IntN(3))
}

// Apply applies the given single-qubit Pauli error to qubit q of psi. Z is
// applied as sim.GateRz(pi), which equals Pauli-Z up to the global phase
// spec.md treats as irrelevant; Y is applied as the standard X-then-Z
// decomposition.
func Apply(psi *sim.State, q int, p Pauli) {
	switch p {
	case PauliX:
		psi.Apply1Q(sim.GateX(), q)
	case PauliZ:
		psi.Apply1Q(sim.GateRz(math.Pi), q)
	case PauliY:
		psi.Apply1Q(sim.GateX(), q)
		psi.Apply1Q(sim.GateRz(math.Pi), q)
	}
}

// DepolarizeQubit applies, with probability p, a uniformly-random single
// Pauli error (X, Y, or Z) to qubit q of psi, using rnd as the entropy
// source. With probability 1-p, psi is left unchanged. Returns the applied
// Pauli and whether an error was actually injected.
func DepolarizeQubit(psi *sim.State, q int, p float64, rnd *rand.Rand) (applied Pauli, injected bool) {
	if rnd.Float64() >= p {
		return 0, false
	}
	pauli := Draw(rnd)
	Apply(psi, q, pauli)
	return pauli, true
}

// DepolarizeData applies DepolarizeQubit independently to every data qubit
// 0..nData-1 of psi.
func DepolarizeData(psi *sim.State, nData int, p float64, rnd *rand.Rand) map[int]Pauli {
	injected := make(map[int]Pauli)
	for q := 0; q < nData; q++ {
		if pauli, ok := DepolarizeQubit(psi, q, p, rnd); ok {
			injected[q] = pauli
		}
	}
	return injected
}
