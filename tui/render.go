package tui

import (
	"fmt"
	"strings"

	"qcore/surface"
	"qcore/trace"
)

// cellKind classifies a lattice cell for rendering purposes.
type cellKind int

const (
	cellData cellKind = iota
	cellZAnc
	cellXAnc
	cellEmpty
)

// latticeCell maps each (row, col) position of a (2d-1) x (2d-1) rendered
// grid — data qubits on even coordinates, ancillas on odd ones — to what
// occupies it.
type latticeCell struct {
	kind  cellKind
	label string
	index int // data/ancilla index, -1 for empty
}

// buildGrid lays data qubits at (2*row, 2*col) and, for each check, its
// ancilla at the midpoint of its four corners.
func buildGrid(sc *surface.Code) [][]latticeCell {
	size := 2*sc.D - 1
	grid := make([][]latticeCell, size)
	for r := range grid {
		grid[r] = make([]latticeCell, size)
		for c := range grid[r] {
			grid[r][c] = latticeCell{kind: cellEmpty, index: -1}
		}
	}

	for row := 0; row < sc.D; row++ {
		for col := 0; col < sc.D; col++ {
			idx := sc.DataIdx(row, col)
			grid[2*row][2*col] = latticeCell{kind: cellData, label: fmt.Sprintf("%d", idx), index: idx}
		}
	}

	placeAnc := func(checks []surface.Check, anc []int, kind cellKind) {
		for k, chk := range checks {
			// chk[0] is data_idx(i,j); recover (i,j) to find the plaquette
			// midpoint in grid coordinates.
			i, j := chk[0]/sc.D, chk[0]%sc.D
			r, c := 2*i+1, 2*j+1
			grid[r][c] = latticeCell{kind: kind, label: fmt.Sprintf("%d", anc[k]), index: anc[k]}
		}
	}
	placeAnc(sc.ZCheck, sc.ZAnc, cellZAnc)
	placeAnc(sc.XCheck, sc.XAnc, cellXAnc)

	return grid
}

// renderLatticePanel draws the lattice with the current round's syndrome
// overlaid: ancillas whose syndrome bit is 1 are highlighted.
func renderLatticePanel(sc *surface.Code, rounds []trace.Round, cursor int, width, height int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Rotated Surface Code d=%d", sc.D)))
	sb.WriteString("\n\n")

	grid := buildGrid(sc)
	var syn1 map[int]bool
	if cursor >= 0 && cursor < len(rounds) {
		syn1 = make(map[int]bool)
		rnd := rounds[cursor]
		for k, anc := range sc.ZAnc {
			if rnd.ZSyndrome[k] == 1 {
				syn1[anc] = true
			}
		}
		for k, anc := range sc.XAnc {
			if rnd.XSyndrome[k] == 1 {
				syn1[anc] = true
			}
		}
	}

	for _, row := range grid {
		for _, cell := range row {
			sb.WriteString(renderCell(cell, syn1))
		}
		sb.WriteString("\n")
	}

	if cursor >= 0 && cursor < len(rounds) && len(rounds[cursor].Injected) > 0 {
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("injected: "))
		for q, p := range rounds[cursor].Injected {
			fmt.Fprintf(&sb, "%s ", activeStyle.Render(fmt.Sprintf("q%d=%s", q, p)))
		}
	}

	return latticeStyle.Width(width).Height(height).Render(sb.String())
}

func renderCell(cell latticeCell, syn1 map[int]bool) string {
	switch cell.kind {
	case cellData:
		return dataQubitStyle.Render(padCenter("["+cell.label+"]", cellW))
	case cellZAnc:
		s := "Z" + cell.label
		if syn1[cell.index] {
			return syndromeOneStyle.Render(padCenter(s+"!", cellW))
		}
		return zAncStyle.Render(padCenter(s, cellW))
	case cellXAnc:
		s := "X" + cell.label
		if syn1[cell.index] {
			return syndromeOneStyle.Render(padCenter(s+"!", cellW))
		}
		return xAncStyle.Render(padCenter(s, cellW))
	default:
		return strings.Repeat(" ", cellW)
	}
}

func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// renderLog renders the full round-by-round syndrome history, highlighting
// the selected round, for display inside the scrollable viewport.
func renderLog(sc *surface.Code, rounds []trace.Round, cursor int) string {
	var sb strings.Builder
	for i, rnd := range rounds {
		line := fmt.Sprintf("round %2d  Z=%v  X=%v", i, rnd.ZSyndrome, rnd.XSyndrome)
		if i == cursor {
			sb.WriteString(cursorRowStyle.Render("▸ " + line))
		} else {
			sb.WriteString(dimStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderControlsPanel renders the bottom help bar.
func renderControlsPanel(width, height int) string {
	var sb strings.Builder
	sb.WriteString(activeStyle.Render("Navigate: "))
	sb.WriteString("↑↓/jk Round  g/G First/Last    ")
	sb.WriteString(activeStyle.Render("Quit: "))
	sb.WriteString("q/Esc/^C")
	return controlsStyle.Width(width).Height(height).Render(sb.String())
}
