package grid

import "testing"

const (
	// Unique solution of diagPuzzle under diagonal rules.
	diagSolution = "267945381853716249491823576576438192384192657129657438642379815935281764718564923"

	// A valid classic Sudoku solution whose diagonals contain duplicates.
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestIsSolved(t *testing.T) {
	g, err := Parse(diagSolution)
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsSolved() {
		t.Error("known diagonal solution not accepted")
	}
}

func TestIsSolvedRejectsDiagonalViolation(t *testing.T) {
	g, err := Parse(classicSolution)
	if err != nil {
		t.Fatal(err)
	}
	if g.IsSolved() {
		t.Error("classic solution with duplicate diagonal digits accepted")
	}
}

func TestIsSolvedRejectsIncomplete(t *testing.T) {
	g, err := Parse(diagPuzzle)
	if err != nil {
		t.Fatal(err)
	}
	if g.IsSolved() {
		t.Error("puzzle with blanks accepted as solved")
	}
}

func TestConsistent(t *testing.T) {
	tests := []struct {
		name   string
		puzzle string
		want   bool
	}{
		{"valid givens", diagPuzzle, true},
		{"full solution", diagSolution, true},
		{"row conflict", "55" + diagPuzzle[2:], false},
		{"diagonal conflict", placeDigits(map[int]byte{MakePos(4, 4): '1', MakePos(8, 8): '1'}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.puzzle)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.Consistent(); got != tt.want {
				t.Errorf("Consistent = %v, want %v", got, tt.want)
			}
		})
	}
}

// placeDigits builds an otherwise-blank puzzle string from position→digit.
func placeDigits(digits map[int]byte) string {
	buf := make([]byte, CellCount)
	for i := range buf {
		buf[i] = '.'
	}
	for pos, ch := range digits {
		buf[pos] = ch
	}
	return string(buf)
}
