package trace

import (
	"testing"

	"qcore/noise"
	"qcore/surface"
)

func TestRunNoInjectionYieldsZeroSyndromes(t *testing.T) {
	sc := surface.Build(3)
	rounds := Run(Config{Code: sc, Rounds: 3})
	if len(rounds) != 3 {
		t.Fatalf("got %d rounds, want 3", len(rounds))
	}
	for i, rnd := range rounds {
		for _, b := range rnd.ZSyndrome {
			if b != 0 {
				t.Errorf("round %d: Z syndrome %v, want all zero", i, rnd.ZSyndrome)
			}
		}
		for _, b := range rnd.XSyndrome {
			if b != 0 {
				t.Errorf("round %d: X syndrome %v, want all zero", i, rnd.XSyndrome)
			}
		}
	}
}

func TestRunXInjectionOnCenter(t *testing.T) {
	sc := surface.Build(3)
	center := sc.DataIdx(1, 1)
	rounds := Run(Config{
		Code:       sc,
		Rounds:     1,
		Injections: []Injection{{Qubit: center, Pauli: noise.PauliX}},
	})
	z := rounds[0].ZSyndrome
	x := rounds[0].XSyndrome
	if z[0] != 1 || z[1] != 1 {
		t.Fatalf("Z syndrome = %v, want [1 1]", z)
	}
	if x[0] != 0 || x[1] != 0 {
		t.Fatalf("X syndrome = %v, want [0 0]", x)
	}
	if rounds[0].Injected[center] != noise.PauliX {
		t.Fatalf("Injected[%d] = %v, want PauliX", center, rounds[0].Injected[center])
	}
}
