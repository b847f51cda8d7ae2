package solver

import (
	"testing"

	"github.com/rybkr/diagoku/internal/grid"
)

// blankExcept builds an otherwise-blank puzzle string from position→digit.
func blankExcept(digits map[int]byte) string {
	buf := make([]byte, grid.CellCount)
	for i := range buf {
		buf[i] = '.'
	}
	for pos, ch := range digits {
		buf[pos] = ch
	}
	return string(buf)
}

func mustParse(t *testing.T, puzzle string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(puzzle)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestEliminateRemovesDigitFromPeers(t *testing.T) {
	pos := grid.MakePos(0, 0)
	g := mustParse(t, blankExcept(map[int]byte{pos: '5'}))
	s := New(nil)

	s.eliminate(g)

	for _, peer := range g.Topology().Peers[pos] {
		if g.CandidateMask(peer)&(1<<4) != 0 {
			t.Errorf("peer %s still admits 5", grid.CellID(peer))
		}
	}

	// Cells sharing no unit with A1 keep the full candidate set.
	far := grid.MakePos(4, 6)
	if n := g.CandidateCount(far); n != 9 {
		t.Errorf("non-peer %s has %d candidates, want 9", grid.CellID(far), n)
	}
}

func TestOnlyChoiceResolvesSoleHome(t *testing.T) {
	g := grid.New(nil)
	s := New(nil)

	// Make A5 the only cell in row A still admitting 7.
	home := grid.MakePos(0, 4)
	for col := 0; col < 9; col++ {
		if pos := grid.MakePos(0, col); pos != home {
			g.Eliminate(pos, 7)
		}
	}

	s.onlyChoice(g)

	if d := g.Digit(home); d != 7 {
		t.Errorf("A5 = %d, want 7", d)
	}
}

func TestNakedTwinsEliminatesFromUnit(t *testing.T) {
	g := grid.New(nil)
	s := New(nil)

	// Give A1 and A2 the identical candidate pair {4,6}.
	twins := []int{grid.MakePos(0, 0), grid.MakePos(0, 1)}
	for _, pos := range twins {
		for _, digit := range []int{1, 2, 3, 5, 7, 8, 9} {
			g.Eliminate(pos, digit)
		}
	}

	s.nakedTwins(g)

	pairMask := uint16(1<<3 | 1<<5)
	for _, pos := range twins {
		if g.CandidateMask(pos) != pairMask {
			t.Errorf("twin %s mask = %09b, want %09b", grid.CellID(pos), g.CandidateMask(pos), pairMask)
		}
	}
	for col := 2; col < 9; col++ {
		pos := grid.MakePos(0, col)
		if g.CandidateMask(pos)&pairMask != 0 {
			t.Errorf("%s still admits 4 or 6 after naked twins", grid.CellID(pos))
		}
	}
	// A1 and A2 also share box 1, so the pair digits leave the box too.
	if g.CandidateMask(grid.MakePos(1, 1))&pairMask != 0 {
		t.Error("B2 still admits 4 or 6 after naked twins")
	}
}

func TestNakedTwinsLeavesResolvedCells(t *testing.T) {
	g := grid.New(nil)
	s := New(nil)

	g.Assign(grid.MakePos(0, 2), 4)
	for _, pos := range []int{grid.MakePos(0, 0), grid.MakePos(0, 1)} {
		for _, digit := range []int{1, 2, 3, 5, 7, 8, 9} {
			g.Eliminate(pos, digit)
		}
	}

	s.nakedTwins(g)

	if d := g.Digit(grid.MakePos(0, 2)); d != 4 {
		t.Errorf("resolved A3 changed to %d", d)
	}
}

func TestPassesAreMonotonic(t *testing.T) {
	g := mustParse(t, diagPuzzle)
	s := New(nil)

	passes := []struct {
		name string
		run  func(*grid.Grid) bool
	}{
		{"eliminate", s.eliminate},
		{"onlyChoice", s.onlyChoice},
		{"nakedTwins", s.nakedTwins},
	}
	for _, pass := range passes {
		var before [grid.CellCount]uint16
		for pos := 0; pos < grid.CellCount; pos++ {
			before[pos] = g.CandidateMask(pos)
		}

		pass.run(g)

		for pos := 0; pos < grid.CellCount; pos++ {
			after := g.CandidateMask(pos)
			if after&^before[pos] != 0 {
				t.Fatalf("%s widened %s: %09b -> %09b",
					pass.name, grid.CellID(pos), before[pos], after)
			}
		}
	}
}

func TestPassesAreIdempotentAtFixedPoint(t *testing.T) {
	g := mustParse(t, diagPuzzle)
	s := New(nil)

	if err := s.reduce(g); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	// reduce stalls on the resolved-cell count; drive the passes the rest
	// of the way to a true fixed point of all three.
	passes := []func(*grid.Grid) bool{s.eliminate, s.onlyChoice, s.nakedTwins}
	for changed := true; changed; {
		changed = false
		for _, pass := range passes {
			if pass(g) {
				changed = true
			}
		}
	}

	var fixed [grid.CellCount]uint16
	for pos := 0; pos < grid.CellCount; pos++ {
		fixed[pos] = g.CandidateMask(pos)
	}

	for i, pass := range passes {
		if pass(g) {
			t.Fatalf("pass %d reported a change at the fixed point", i)
		}
	}
	for pos := 0; pos < grid.CellCount; pos++ {
		if g.CandidateMask(pos) != fixed[pos] {
			t.Fatalf("fixed point not stable at %s: %09b -> %09b",
				grid.CellID(pos), fixed[pos], g.CandidateMask(pos))
		}
	}
}
