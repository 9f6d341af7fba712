package sim

// Lift1Q builds the 4x4 matrix representing C-U given a 2x2 unitary U, a
// control qubit c, and a target qubit t (c != t), suitable for Apply2Q
// with the pair (c, t). The construction depends on whether the control is
// the higher-indexed qubit of the pair or the lower-indexed one — the
// single point in this package where relative control/target ordering is
// handled, so every other caller stays oblivious to it.
func Lift1Q(u Matrix2, c, t int) Matrix4 {
	var m Matrix4
	if c > t {
		// Control is the high bit: block-diagonal. Upper-left is identity
		// (control = 0, do nothing); lower-right is U acting on the low
		// (target) qubit.
		m[0][0] = 1
		m[1][1] = 1
		m[2][2], m[2][3] = u[0][0], u[0][1]
		m[3][2], m[3][3] = u[1][0], u[1][1]
	} else {
		// Control is the low bit: U acts on the high (target) qubit only
		// when the low bit is 1, i.e. on rows/cols {1,3} = (high=0,low=1)
		// and (high=1,low=1).
		m[0][0] = 1
		m[2][2] = 1
		m[1][1], m[1][3] = u[0][0], u[0][1]
		m[3][1], m[3][3] = u[1][0], u[1][1]
	}
	return m
}

// ApplyControlled1Q applies U as a controlled gate with control qubit c and
// target qubit t to s in place, by lifting U to a 4x4 matrix and
// dispatching to Apply2Q.
func (s *State) ApplyControlled1Q(u Matrix2, c, t int) {
	if c == t {
		panic("sim: controlled gate requires distinct control and target")
	}
	s.Apply2Q(Lift1Q(u, c, t), c, t)
}
