package grid

import "errors"

var (
	ErrBadLength    = errors.New("puzzle string has wrong length")
	ErrBadCharacter = errors.New("puzzle string has invalid character")
)

// IsSolved reports whether the grid is a complete, valid solution:
// every cell resolved and every unit — rows, columns, boxes, and both
// diagonals — containing each digit 1-9 exactly once. The check rebuilds
// unit contents from scratch and does not trust the resolved counter.
func (g *Grid) IsSolved() bool {
	for pos := 0; pos < CellCount; pos++ {
		if !g.Resolved(pos) {
			return false
		}
	}

	for u := 0; u < UnitCount; u++ {
		var seen uint16
		for _, pos := range g.topo.Units[u] {
			seen |= g.cells[pos]
		}
		if seen != allNine {
			return false
		}
	}
	return true
}

// Consistent reports whether no two resolved peer cells share a digit.
// Unresolved cells are ignored. Used to vet inputs before solving is
// even attempted; the solver detects the same conflicts by propagation.
func (g *Grid) Consistent() bool {
	for u := 0; u < UnitCount; u++ {
		var seen uint16
		for _, pos := range g.topo.Units[u] {
			if !g.Resolved(pos) {
				continue
			}
			if seen&g.cells[pos] != 0 {
				return false
			}
			seen |= g.cells[pos]
		}
	}
	return true
}

// isValidPosition reports whether a given position is in bounds of the grid.
func isValidPosition(pos int) bool {
	return pos >= 0 && pos < CellCount
}
