package solver

import (
	"context"
	"testing"

	"github.com/rybkr/diagoku/internal/grid"
)

func TestNilTraceIsNoOp(t *testing.T) {
	var tr *Trace
	if tr.Len() != 0 || tr.Steps() != nil {
		t.Error("nil trace should be empty")
	}
	tr.add(grid.New(nil), 0) // must not panic
}

func TestTraceRecordsResolutions(t *testing.T) {
	tr := &Trace{}
	_, _, err := Solve(context.Background(), diagPuzzle, &Options{Trace: tr})
	if err != nil {
		t.Fatal(err)
	}

	if tr.Len() == 0 {
		t.Fatal("no steps recorded")
	}

	for i, step := range tr.Steps() {
		if len(step.Grid) != grid.CellCount {
			t.Fatalf("step %d snapshot has length %d", i, len(step.Grid))
		}
		if step.Digit < 1 || step.Digit > 9 {
			t.Fatalf("step %d has digit %d", i, step.Digit)
		}
		pos := cellPos(t, step.Cell)
		if got := step.Grid[pos]; got != byte('0'+step.Digit) {
			t.Fatalf("step %d: snapshot shows %q at %s, step says %d",
				i, got, step.Cell, step.Digit)
		}
	}
}

func TestTraceIsDeterministic(t *testing.T) {
	first, second := &Trace{}, &Trace{}
	if _, _, err := Solve(context.Background(), diagPuzzle, &Options{Trace: first}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Solve(context.Background(), diagPuzzle, &Options{Trace: second}); err != nil {
		t.Fatal(err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("trace lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Steps() {
		if first.Steps()[i] != second.Steps()[i] {
			t.Fatalf("traces diverge at step %d", i)
		}
	}
}

func TestTraceNotConsultedBySolver(t *testing.T) {
	// Same puzzle, with and without a recorder: identical results.
	traced := &Trace{}
	withTrace, _, err := Solve(context.Background(), diagPuzzle, &Options{Trace: traced})
	if err != nil {
		t.Fatal(err)
	}
	without, _, err := Solve(context.Background(), diagPuzzle, nil)
	if err != nil {
		t.Fatal(err)
	}
	if withTrace.String() != without.String() {
		t.Error("recording a trace changed the solution")
	}
}

// cellPos converts a cell id like "E5" back to a linear position.
func cellPos(t *testing.T, id string) int {
	t.Helper()
	if len(id) != 2 {
		t.Fatalf("bad cell id %q", id)
	}
	pos := grid.MakePos(int(id[0]-'A'), int(id[1]-'1'))
	if pos == grid.InvalidCell {
		t.Fatalf("bad cell id %q", id)
	}
	return pos
}
