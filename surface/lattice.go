// Package surface implements a rotated surface-code stabilizer-measurement
// engine on top of the sim package's dense state-vector simulator: lattice
// construction, ancilla hygiene, and Z-/X-type syndrome-extraction rounds
// for a distance-d rotated surface code on a d x d data lattice.
package surface

// Check is the ordered 4-tuple of data-qubit indices forming one
// weight-4 stabilizer's support — the four corners of a lattice plaquette,
// in the fixed order (i,j), (i+1,j), (i,j+1), (i+1,j+1).
type Check [4]int

// Code is an immutable rotated-surface-code lattice descriptor.
type Code struct {
	D      int // odd distance, D >= 3
	NData  int // D*D
	ZCheck []Check
	XCheck []Check
	ZAnc   []int
	XAnc   []int
	NQubits int
}

// DataIdx returns the data-qubit index for lattice position (row, col),
// 0 <= row, col < sc.D.
func (sc *Code) DataIdx(row, col int) int {
	return row*sc.D + col
}

// Build constructs the rotated-surface-code lattice for the given odd
// distance d (d >= 3). Enumerates the (d-1)^2 plaquettes in row-major
// order (i varies slowest); a plaquette at (i,j) is a Z-stabilizer when
// (i+j) is even, else an X-stabilizer. Ancilla indices are assigned
// contiguously after the data indices: data occupy 0..NData-1, then all
// Z-ancillas, then all X-ancillas.
//
// Build panics if d is even or less than 3 — an invalid distance is a
// precondition violation, not a recoverable runtime condition.
func Build(d int) *Code {
	if d < 3 || d%2 == 0 {
		panic("surface: distance must be an odd integer >= 3")
	}

	sc := &Code{D: d, NData: d * d}
	dataIdx := func(r, c int) int { return r*d + c }

	for i := 0; i < d-1; i++ {
		for j := 0; j < d-1; j++ {
			chk := Check{
				dataIdx(i, j),
				dataIdx(i+1, j),
				dataIdx(i, j+1),
				dataIdx(i+1, j+1),
			}
			if (i+j)%2 == 0 {
				sc.ZCheck = append(sc.ZCheck, chk)
			} else {
				sc.XCheck = append(sc.XCheck, chk)
			}
		}
	}

	next := sc.NData
	sc.ZAnc = make([]int, len(sc.ZCheck))
	for k := range sc.ZCheck {
		sc.ZAnc[k] = next
		next++
	}
	sc.XAnc = make([]int, len(sc.XCheck))
	for k := range sc.XCheck {
		sc.XAnc[k] = next
		next++
	}

	sc.NQubits = next
	return sc
}
