package surface

import (
	"math"
	"testing"

	"qcore/sim"
)

func TestBuildD3Completeness(t *testing.T) {
	sc := Build(3)
	if len(sc.ZCheck) != 2 || len(sc.XCheck) != 2 {
		t.Fatalf("d=3: got %d Z-checks, %d X-checks, want 2 and 2", len(sc.ZCheck), len(sc.XCheck))
	}
	if sc.NQubits != 13 {
		t.Fatalf("d=3: NQubits = %d, want 13", sc.NQubits)
	}
	if len(sc.ZAnc) != len(sc.ZCheck) || len(sc.XAnc) != len(sc.XCheck) {
		t.Fatalf("ancilla/check count mismatch")
	}
	seen := map[int]bool{}
	for _, a := range append(append([]int{}, sc.ZAnc...), sc.XAnc...) {
		if a < sc.NData {
			t.Fatalf("ancilla index %d below NData=%d", a, sc.NData)
		}
		if seen[a] {
			t.Fatalf("duplicate ancilla index %d", a)
		}
		seen[a] = true
	}
}

func TestBuildInvariantAnyD(t *testing.T) {
	for _, d := range []int{3, 5, 7, 9} {
		sc := Build(d)
		got := len(sc.ZCheck) + len(sc.XCheck)
		want := (d - 1) * (d - 1)
		if got != want {
			t.Errorf("d=%d: |z|+|x| = %d, want %d", d, got, want)
		}
	}
}

func TestBuildPanicsOnInvalidDistance(t *testing.T) {
	for _, d := range []int{2, 4, 1, 0, -3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("d=%d: expected panic", d)
				}
			}()
			Build(d)
		}()
	}
}

func TestNoErrorBothRoundsZero(t *testing.T) {
	sc := Build(3)
	psi := sim.Basis(sc.NQubits, 0)
	z := ZRound(psi, sc)
	if z[0] != 0 || z[1] != 0 {
		t.Fatalf("z_round with no error = %v, want [0 0]", z)
	}

	psi2 := sim.Basis(sc.NQubits, 0)
	PrepareAllPlusUnitary(psi2, sc)
	x := XRound(psi2, sc)
	if x[0] != 0 || x[1] != 0 {
		t.Fatalf("x_round with no error = %v, want [0 0]", x)
	}
}

func TestXErrorOnDataCenter(t *testing.T) {
	sc := Build(3)
	center := sc.DataIdx(1, 1)

	psiZ := sim.Basis(sc.NQubits, 0)
	psiZ.Apply1Q(sim.GateX(), center)
	z := ZRound(psiZ, sc)
	if z[0] != 1 || z[1] != 1 {
		t.Fatalf("z_round under X error = %v, want [1 1]", z)
	}

	psiX := sim.Basis(sc.NQubits, 0)
	PrepareAllPlusUnitary(psiX, sc)
	psiX.Apply1Q(sim.GateX(), center)
	x := XRound(psiX, sc)
	if x[0] != 0 || x[1] != 0 {
		t.Fatalf("x_round under X error = %v, want [0 0]", x)
	}
}

func TestZErrorOnDataCenter(t *testing.T) {
	sc := Build(3)
	center := sc.DataIdx(1, 1)
	z1 := sim.GateRz(math.Pi)

	psiX := sim.Basis(sc.NQubits, 0)
	PrepareAllPlusUnitary(psiX, sc)
	psiX.Apply1Q(z1, center)
	x := XRound(psiX, sc)
	if x[0] != 1 || x[1] != 1 {
		t.Fatalf("x_round under Z error = %v, want [1 1]", x)
	}

	psiZ := sim.Basis(sc.NQubits, 0)
	psiZ.Apply1Q(z1, center)
	z := ZRound(psiZ, sc)
	if z[0] != 0 || z[1] != 0 {
		t.Fatalf("z_round under Z error = %v, want [0 0]", z)
	}
}

func TestYErrorOnDataCenter(t *testing.T) {
	sc := Build(3)
	center := sc.DataIdx(1, 1)
	z1 := sim.GateRz(math.Pi)
	x1 := sim.GateX()

	psiZ := sim.Basis(sc.NQubits, 0)
	psiZ.Apply1Q(x1, center)
	psiZ.Apply1Q(z1, center)
	z := ZRound(psiZ, sc)
	if z[0] != 1 || z[1] != 1 {
		t.Fatalf("z_round under Y error = %v, want [1 1]", z)
	}

	psiX := sim.Basis(sc.NQubits, 0)
	PrepareAllPlusUnitary(psiX, sc)
	psiX.Apply1Q(x1, center)
	psiX.Apply1Q(z1, center)
	x := XRound(psiX, sc)
	if x[0] != 1 || x[1] != 1 {
		t.Fatalf("x_round under Y error = %v, want [1 1]", x)
	}
}

func TestResetToZeroForcesZero(t *testing.T) {
	psi := sim.Basis(1, 0)
	psi.Apply1Q(sim.GateH(), 0)
	ResetToZero(psi, 0)
	if m := psi.MeasureQubitZ(0); m != 0 {
		t.Fatalf("after ResetToZero, measurement = %d, want 0", m)
	}
}
