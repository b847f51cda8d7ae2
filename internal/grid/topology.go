package grid

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
	CellCount   = 81
	UnitCount   = 29
)

// Unit index layout inside Topology.Units.
const (
	rowUnitBase  = 0
	colUnitBase  = 9
	boxUnitBase  = 18
	mainDiagUnit = 27
	antiDiagUnit = 28
)

const rowLetters = "ABCDEFGHI"

// Topology describes the constraint structure of a diagonal Sudoku:
// 9 rows, 9 columns, 9 boxes, and the two main diagonals, 29 units total.
//
// Topology is immutable after construction — it is safe to share the same
// pointer across Grid clones and across goroutines.
type Topology struct {
	// Units holds the 9 cell positions of each constraint unit, in
	// ascending order. Rows first, then columns, boxes, and the two
	// diagonals (top-left–bottom-right, then top-right–bottom-left).
	Units [UnitCount][9]int

	// UnitsOf maps a cell position to the indices of the units that
	// contain it: 3 for most cells, 4 on a diagonal, 5 for the center.
	UnitsOf [CellCount][]int

	// Peers maps a cell position to every other cell sharing at least
	// one unit with it, in ascending order.
	Peers [CellCount][]int
}

// diagonal is the shared Topology, built once at package init.
var diagonal = buildTopology()

// Diagonal returns the shared immutable topology for a 9×9 diagonal Sudoku.
func Diagonal() *Topology {
	return diagonal
}

func buildTopology() *Topology {
	t := &Topology{}

	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			t.Units[rowUnitBase+i][j] = MakePos(i, j)
			t.Units[colUnitBase+i][j] = MakePos(j, i)
		}
		// Box i covers rows 3*(i/3)..+2 and columns 3*(i%3)..+2.
		baseRow, baseCol := 3*(i/3), 3*(i%3)
		for j := 0; j < 9; j++ {
			t.Units[boxUnitBase+i][j] = MakePos(baseRow+j/3, baseCol+j%3)
		}
		t.Units[mainDiagUnit][i] = MakePos(i, i)
		t.Units[antiDiagUnit][i] = MakePos(8-i, i)
	}

	for u := 0; u < UnitCount; u++ {
		for _, pos := range t.Units[u] {
			t.UnitsOf[pos] = append(t.UnitsOf[pos], u)
		}
	}

	for pos := 0; pos < CellCount; pos++ {
		var inPeers [CellCount]bool
		for _, u := range t.UnitsOf[pos] {
			for _, other := range t.Units[u] {
				inPeers[other] = true
			}
		}
		inPeers[pos] = false
		peers := make([]int, 0, 32)
		for other := 0; other < CellCount; other++ {
			if inPeers[other] {
				peers = append(peers, other)
			}
		}
		t.Peers[pos] = peers
	}

	return t
}

// UnitName returns a human-readable identifier for a unit index,
// e.g. "row A", "column 3", "box 7", "main diagonal".
func (t *Topology) UnitName(u int) string {
	switch {
	case u >= rowUnitBase && u < colUnitBase:
		return "row " + string(rowLetters[u-rowUnitBase])
	case u >= colUnitBase && u < boxUnitBase:
		return "column " + string('1'+byte(u-colUnitBase))
	case u >= boxUnitBase && u < mainDiagUnit:
		return "box " + string('1'+byte(u-boxUnitBase))
	case u == mainDiagUnit:
		return "main diagonal"
	case u == antiDiagUnit:
		return "anti-diagonal"
	}
	return "unknown"
}

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// CellID returns the conventional name of a position: row letter A–I
// followed by column digit 1–9, e.g. position 0 is "A1", position 80 "I9".
func CellID(pos int) string {
	if !isValidPosition(pos) {
		return "??"
	}
	return string([]byte{rowLetters[pos/9], '1' + byte(pos%9)})
}

// onMainDiagonal reports whether a position lies on the A1–I9 diagonal.
func onMainDiagonal(pos int) bool {
	return pos/9 == pos%9
}

// onAntiDiagonal reports whether a position lies on the I1–A9 diagonal.
func onAntiDiagonal(pos int) bool {
	return pos/9+pos%9 == 8
}
