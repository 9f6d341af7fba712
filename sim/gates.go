package sim

import "math"

// GateX returns the Pauli-X matrix.
func GateX() Matrix2 {
	return Matrix2{
		{0, 1},
		{1, 0},
	}
}

// GateH returns the Hadamard matrix.
func GateH() Matrix2 {
	s := complex(1/math.Sqrt2, 0)
	return Matrix2{
		{s, s},
		{s, -s},
	}
}

// GateRz returns diag(e^{-i*theta/2}, e^{+i*theta/2}). GateRz(pi) equals
// Pauli-Z up to a global phase of -i; the simulator treats global phase as
// irrelevant.
func GateRz(theta float64) Matrix2 {
	return Matrix2{
		{complex(math.Cos(-theta/2), math.Sin(-theta/2)), 0},
		{0, complex(math.Cos(theta/2), math.Sin(theta/2))},
	}
}

// GateCNOT returns the CNOT matrix in (high, low) bit order: the
// permutation mapping 0->0, 1->1, 2->3, 3->2. This corresponds to
// control = high bit, target = low bit.
func GateCNOT() Matrix4 {
	var m Matrix4
	m[0][0] = 1
	m[1][1] = 1
	m[2][3] = 1
	m[3][2] = 1
	return m
}
