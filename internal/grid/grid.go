package grid

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitmask values
const (
	allNine = 0x1ff
)

// Grid holds the candidate state of a puzzle: for every cell, a bitmask of
// the digits still possible there. Bit i represents digit i+1 (bit 0 =
// digit 1, bit 8 = digit 9). A cell is resolved when exactly one bit is
// set; an empty mask means the state is contradictory.
type Grid struct {
	cells [CellCount]uint16

	// topo describes the unit/peer structure. It is set at construction
	// time and never mutated; clones share the pointer.
	topo *Topology

	// resolved tracks singleton cells for quick completion checks.
	// Once initialized, resolved is only touched inside Assign and
	// Eliminate.
	resolved int
}

// New creates a Grid with every cell holding the full 1–9 candidate set.
// If topo is nil, the shared diagonal topology is used.
func New(topo *Topology) *Grid {
	if topo == nil {
		topo = Diagonal()
	}
	g := &Grid{topo: topo}
	for pos := 0; pos < CellCount; pos++ {
		g.cells[pos] = allNine
	}
	return g
}

// Parse creates a Grid from an 81-character puzzle string.
// Use '.' or '0' for blank cells, '1'-'9' for givens. Givens become
// singleton candidate sets; blanks keep the full set. Parse performs no
// constraint checking — a contradictory puzzle parses fine and is
// rejected by the solver.
func Parse(s string) (*Grid, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: want %d characters, got %d", ErrBadLength, CellCount, len(s))
	}

	g := New(nil)
	for pos := 0; pos < CellCount; pos++ {
		ch := s[pos]
		switch ch {
		case '.', '0':
			// Blank cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			g.Assign(pos, int(ch-'0'))
		default:
			return nil, fmt.Errorf("%w: '%c' at position %d", ErrBadCharacter, ch, pos)
		}
	}
	return g, nil
}

// Clone creates an independent copy of the Grid.
// The topology pointer is shared — Topology is immutable after construction.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

// Topology returns the grid's constraint topology.
func (g *Grid) Topology() *Topology {
	return g.topo
}

// UnitCells returns the 9 cell positions belonging to the given unit.
func (g *Grid) UnitCells(unit int) [9]int {
	return g.topo.Units[unit]
}

// Assign overwrites the candidate set at pos with the singleton {digit}.
func (g *Grid) Assign(pos, digit int) {
	was := g.Resolved(pos)
	g.cells[pos] = 1 << (digit - 1)
	if !was {
		g.resolved++
	}
}

// Eliminate removes digit from the candidate set at pos and reports
// whether the set changed. Eliminating the last candidate is allowed and
// leaves an empty mask; contradiction detection is the caller's job.
func (g *Grid) Eliminate(pos, digit int) bool {
	mask := uint16(1) << (digit - 1)
	if g.cells[pos]&mask == 0 {
		return false
	}
	was := g.Resolved(pos)
	g.cells[pos] &^= mask
	if !was && g.Resolved(pos) {
		g.resolved++
	}
	return true
}

// Resolved reports whether the cell at pos has exactly one candidate.
func (g *Grid) Resolved(pos int) bool {
	return bits.OnesCount16(g.cells[pos]) == 1
}

// Digit returns the resolved digit at pos, or EmptyCell if the cell is
// unresolved or contradictory.
func (g *Grid) Digit(pos int) int {
	if !g.Resolved(pos) {
		return EmptyCell
	}
	return bits.TrailingZeros16(g.cells[pos]) + 1
}

// CandidateMask returns the candidate bitmask at pos.
// A returned 0 indicates a contradictory state or an invalid position.
func (g *Grid) CandidateMask(pos int) uint16 {
	if !isValidPosition(pos) {
		return 0
	}
	return g.cells[pos]
}

// Candidates returns the candidate digits 1-9 at pos in ascending order.
func (g *Grid) Candidates(pos int) []int {
	mask := g.CandidateMask(pos)
	candidates := make([]int, 0, 9)
	for digit := 1; digit <= 9; digit++ {
		if mask&(1<<(digit-1)) != 0 {
			candidates = append(candidates, digit)
		}
	}
	return candidates
}

// CandidateCount returns the number of candidates at pos.
func (g *Grid) CandidateCount(pos int) int {
	return bits.OnesCount16(g.cells[pos])
}

// ResolvedCount returns the number of resolved cells.
func (g *Grid) ResolvedCount() int {
	return g.resolved
}

// HasEmptyCell reports whether any cell has run out of candidates,
// returning the first such position.
func (g *Grid) HasEmptyCell() (int, bool) {
	for pos := 0; pos < CellCount; pos++ {
		if g.cells[pos] == 0 {
			return pos, true
		}
	}
	return InvalidCell, false
}

// String returns the grid as an 81-character string.
// Unresolved cells are represented as '.', resolved cells as '1'-'9'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for pos := 0; pos < CellCount; pos++ {
		if d := g.Digit(pos); d == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(d))
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation with box lines.
func (g *Grid) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < 9; row++ {
		sb.WriteString("| ")
		for col := 0; col < 9; col++ {
			if d := g.Digit(MakePos(row, col)); d == EmptyCell {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(d))
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}
