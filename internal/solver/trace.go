package solver

import "github.com/rybkr/diagoku/internal/grid"

// Step records one cell becoming resolved during solving: which cell,
// which digit, and the 81-character grid state right after the assignment.
type Step struct {
	Cell  string `json:"cell"`
	Digit int    `json:"digit"`
	Grid  string `json:"grid"`
}

// Trace is an append-only log of resolution steps, filled in order as the
// solver resolves cells. It exists purely for external consumers such as
// visualizers; the solving algorithm never reads it. A nil *Trace is a
// valid no-op recorder.
//
// Steps from abandoned search branches remain in the trace — a consumer
// replaying it sees the solver's tentative assignments as well as the
// ones that survive, which is the point of an assignment trace.
type Trace struct {
	steps []Step
}

// Steps returns the recorded steps in resolution order.
func (t *Trace) Steps() []Step {
	if t == nil {
		return nil
	}
	return t.steps
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.steps)
}

func (t *Trace) add(g *grid.Grid, pos int) {
	if t == nil {
		return
	}
	t.steps = append(t.steps, Step{
		Cell:  grid.CellID(pos),
		Digit: g.Digit(pos),
		Grid:  g.String(),
	})
}
