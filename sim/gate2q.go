package sim

// Matrix4 is a 4x4 unitary in row-major order, interpreted in (high, low)
// bit order: row/column 0 = (high=0,low=0), 1 = (0,1), 2 = (1,0), 3 = (1,1) —
// regardless of the caller-supplied qubit ordering (qA, qB). Callers that
// care about control/target ordering should go through Lift1Q
// (controlled.go) rather than hand-building a Matrix4.
type Matrix4 [4][4]complex128

// Apply2Q applies the 4x4 unitary u4 to the qubit pair (qA, qB) of s in
// place. u4 must already be expressed in (high, low) order where
// high = max(qA, qB) and low = min(qA, qB).
func (s *State) Apply2Q(u4 Matrix4, qA, qB int) {
	s.checkQubit(qA)
	s.checkQubit(qB)
	if qA == qB {
		panic("sim: two-qubit gate requires distinct qubits")
	}

	low, high := qA, qB
	if low > high {
		low, high = high, low
	}
	sL := 1 << low
	sH := 1 << high
	n := len(s.Amps)

	for base := 0; base < n; base += 1 << (high + 1) {
		for mid := 0; mid < 1<<high; mid += 1 << (low + 1) {
			for off := 0; off < sL; off++ {
				i00 := base + mid + off
				i01 := i00 + sL
				i10 := i00 + sH
				i11 := i10 + sL

				v00, v01, v10, v11 := s.Amps[i00], s.Amps[i01], s.Amps[i10], s.Amps[i11]

				w00 := u4[0][0]*v00 + u4[0][1]*v01 + u4[0][2]*v10 + u4[0][3]*v11
				w01 := u4[1][0]*v00 + u4[1][1]*v01 + u4[1][2]*v10 + u4[1][3]*v11
				w10 := u4[2][0]*v00 + u4[2][1]*v01 + u4[2][2]*v10 + u4[2][3]*v11
				w11 := u4[3][0]*v00 + u4[3][1]*v01 + u4[3][2]*v10 + u4[3][3]*v11

				s.Amps[i00], s.Amps[i01], s.Amps[i10], s.Amps[i11] = w00, w01, w10, w11
			}
		}
	}
}
