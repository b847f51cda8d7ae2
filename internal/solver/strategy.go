package solver

import (
	"math/bits"

	"github.com/rybkr/diagoku/internal/grid"
)

// The three elimination/deduction passes. Each only narrows candidate
// sets, never widens them, and each is idempotent: re-running a pass on
// its own fixed point changes nothing. None of them signal failure —
// a pass may empty a cell's candidate set, and the reduction loop's
// contradiction check catches that.

// eliminate removes every resolved cell's digit from the candidate sets
// of all its peers. Reports whether any candidate set changed.
func (s *Solver) eliminate(g *grid.Grid) bool {
	changed := false

	for pos := 0; pos < grid.CellCount; pos++ {
		digit := g.Digit(pos)
		if digit == grid.EmptyCell {
			continue
		}
		for _, peer := range g.Topology().Peers[pos] {
			if s.eliminateDigit(g, peer, digit) {
				changed = true
			}
		}
	}

	return changed
}

// onlyChoice resolves, for every unit and digit, the cell that is the
// unit's sole remaining home for that digit. Reports whether any cell
// was resolved.
func (s *Solver) onlyChoice(g *grid.Grid) bool {
	changed := false

	for u := 0; u < grid.UnitCount; u++ {
		cells := g.UnitCells(u)
		for digit := 1; digit <= 9; digit++ {
			mask := uint16(1) << (digit - 1)
			home, count := grid.InvalidCell, 0
			for _, pos := range cells {
				if g.CandidateMask(pos)&mask != 0 {
					home = pos
					count++
				}
			}
			if count == 1 && !g.Resolved(home) {
				s.assign(g, home, digit)
				changed = true
			}
		}
	}

	return changed
}

// nakedTwins finds, per unit, a two-candidate mask shared by exactly two
// cells and removes both of its digits from every other unsolved cell of
// the unit. The twins themselves and resolved cells are untouched.
// Reports whether any candidate set changed.
func (s *Solver) nakedTwins(g *grid.Grid) bool {
	changed := false

	for u := 0; u < grid.UnitCount; u++ {
		cells := g.UnitCells(u)

		// Snapshot the unit's masks: a two-candidate mask held by exactly
		// two cells is a naked pair. Pairs are processed in cell order so
		// repeated solves record identical traces; distinct pairs in one
		// unit never conflict, so order does not affect the result.
		var masks [9]uint16
		for i, pos := range cells {
			masks[i] = g.CandidateMask(pos)
		}

		for i, pair := range masks {
			if bits.OnesCount16(pair) != 2 || seenBefore(masks[:i], pair) {
				continue
			}
			n := 0
			for _, mask := range masks {
				if mask == pair {
					n++
				}
			}
			if n != 2 {
				continue
			}
			for _, pos := range cells {
				mask := g.CandidateMask(pos)
				if mask == pair || bits.OnesCount16(mask) <= 1 {
					continue
				}
				for digit := 1; digit <= 9; digit++ {
					if pair&(1<<(digit-1)) == 0 {
						continue
					}
					if s.eliminateDigit(g, pos, digit) {
						changed = true
					}
				}
			}
		}
	}

	return changed
}

func seenBefore(masks []uint16, mask uint16) bool {
	for _, m := range masks {
		if m == mask {
			return true
		}
	}
	return false
}

// assign resolves pos to digit and records the step. Re-assigning an
// already-resolved cell to the same digit is a no-op and is not recorded.
func (s *Solver) assign(g *grid.Grid, pos, digit int) {
	if g.Digit(pos) == digit {
		return
	}
	g.Assign(pos, digit)
	s.trace.add(g, pos)
}

// eliminateDigit removes one candidate, recording a step when the
// elimination leaves the cell resolved.
func (s *Solver) eliminateDigit(g *grid.Grid, pos, digit int) bool {
	was := g.Resolved(pos)
	if !g.Eliminate(pos, digit) {
		return false
	}
	if !was && g.Resolved(pos) {
		s.trace.add(g, pos)
	}
	return true
}
