// Package trace orchestrates repeated syndrome-extraction rounds for a
// rotated surface code, the workflow-level layer described in spec.md §9:
// because the dense simulator has no mixed-state representation, Z-type
// and X-type syndromes for the same round are extracted from two
// independently prepared state-vector runs (one seeded from |0>^n, one
// from |+>^n) with the same errors injected into both.
package trace

import (
	"math/rand/v2"

	"qcore/noise"
	"qcore/sim"
	"qcore/surface"
)

// Injection is a deterministic single-Pauli error requested by the caller
// (e.g. the CLI's --x/--y/--z flags), to be applied to a specific data
// qubit in both the Z-run and the X-run.
type Injection struct {
	Qubit int
	Pauli noise.Pauli
}

// Round holds the outcome of one full syndrome-extraction round: the
// Z-syndrome (from the |0>^n-seeded run) and the X-syndrome (from the
// |+>^n-seeded run), plus the errors injected into this round's two runs,
// keyed by data qubit. A qubit that received several errors records only
// the last one applied.
type Round struct {
	ZSyndrome []int
	XSyndrome []int
	Injected  map[int]noise.Pauli
}

// Config parameterizes a multi-round run.
type Config struct {
	Code       *surface.Code
	Rounds     int
	Injections []Injection
	NoiseP     float64
	Rand       *rand.Rand // entropy source for random depolarizing injection; nil disables it
}

// Run executes cfg.Rounds independent syndrome-extraction rounds. Each
// round runs two fresh simulations over sc.NQubits qubits: one left in the
// |0>^n basis for the Z-round, one H'd into |+>^n for the X-round. The
// same deterministic injections, and the same random depolarizing draws
// (if cfg.NoiseP > 0), are applied to both runs before their respective
// syndrome extraction — drawing the random decision once per data qubit
// and replaying it into both states, rather than letting each state roll
// its own dice, is what keeps the pair consistent.
func Run(cfg Config) []Round {
	sc := cfg.Code
	rounds := make([]Round, cfg.Rounds)

	for r := 0; r < cfg.Rounds; r++ {
		psiZ := sim.Basis(sc.NQubits, 0)
		psiX := sim.Basis(sc.NQubits, 0)
		surface.PrepareAllPlusUnitary(psiX, sc)

		injected := make(map[int]noise.Pauli)
		for _, inj := range cfg.Injections {
			noise.Apply(psiZ, inj.Qubit, inj.Pauli)
			noise.Apply(psiX, inj.Qubit, inj.Pauli)
			injected[inj.Qubit] = inj.Pauli
		}

		if cfg.NoiseP > 0 && cfg.Rand != nil {
			for q := 0; q < sc.NData; q++ {
				if cfg.Rand.Float64() < cfg.NoiseP {
					pauli := noise.Draw(cfg.Rand)
					noise.Apply(psiZ, q, pauli)
					noise.Apply(psiX, q, pauli)
					injected[q] = pauli
				}
			}
		}

		rounds[r] = Round{
			ZSyndrome: surface.ZRound(psiZ, sc),
			XSyndrome: surface.XRound(psiX, sc),
			Injected:  injected,
		}
	}

	return rounds
}
