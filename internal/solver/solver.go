package solver

import (
	"context"
	"errors"
	"time"

	"github.com/rybkr/diagoku/internal/grid"
)

var (
	ErrNoSolution = errors.New("puzzle has no solution")
	ErrTimeout    = errors.New("solver timeout exceeded")
)

// Options configures solving behavior.
type Options struct {
	// Timeout bounds total search time. Zero means no limit beyond the
	// caller's context.
	Timeout time.Duration

	// Trace, when non-nil, receives a snapshot every time a cell is
	// resolved. It is output only; solving never consults it.
	Trace *Trace
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		Timeout: 30 * time.Second,
	}
}

// Stats captures performance characteristics of a solve.
type Stats struct {
	// Nodes counts search invocations, including the top-level one.
	Nodes    int
	Duration time.Duration
}

// Solver runs constraint propagation and backtracking search over a Grid.
type Solver struct {
	options *Options
	trace   *Trace
	nodes   int
}

// New creates a solver with the given options.
func New(options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	return &Solver{
		options: options,
		trace:   options.Trace,
	}
}

// Solve parses an 81-character puzzle string and solves it.
// Convenience wrapper around New and Solver.Solve.
func Solve(ctx context.Context, puzzle string, options *Options) (*grid.Grid, Stats, error) {
	g, err := grid.Parse(puzzle)
	if err != nil {
		return nil, Stats{}, err
	}
	return New(options).Solve(ctx, g)
}

// Solve attempts to solve the puzzle, leaving the input grid untouched.
// Returns the solved grid, or ErrNoSolution if the constraints cannot be
// satisfied, or ErrTimeout if the deadline expired first.
func (s *Solver) Solve(ctx context.Context, g *grid.Grid) (*grid.Grid, Stats, error) {
	start := time.Now()
	s.nodes = 0

	if s.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.options.Timeout)
		defer cancel()
	}

	solved, err := s.search(ctx, g.Clone())
	stats := Stats{Nodes: s.nodes, Duration: time.Since(start)}
	if err != nil {
		return nil, stats, err
	}
	return solved, stats, nil
}

// reduce applies the elimination and deduction passes until the number of
// resolved cells stops changing, mutating g in place. Returns
// ErrNoSolution as soon as any cell's candidate set becomes empty.
func (s *Solver) reduce(g *grid.Grid) error {
	for {
		before := g.ResolvedCount()

		s.eliminate(g)
		if _, empty := g.HasEmptyCell(); empty {
			return ErrNoSolution
		}
		s.onlyChoice(g)
		s.nakedTwins(g)
		if _, empty := g.HasEmptyCell(); empty {
			return ErrNoSolution
		}

		if g.ResolvedCount() == before {
			return nil
		}
	}
}

// search implements recursive backtracking with the MRV heuristic:
// reduce to a fixed point, then branch on the unresolved cell with the
// fewest candidates. Every branch works on its own clone, so a failed
// branch leaves the parent state untouched.
func (s *Solver) search(ctx context.Context, g *grid.Grid) (*grid.Grid, error) {
	s.nodes++

	select {
	case <-ctx.Done():
		return nil, ErrTimeout
	default:
	}

	if err := s.reduce(g); err != nil {
		return nil, err
	}

	if g.ResolvedCount() == grid.CellCount {
		return g, nil
	}

	pos := s.findMRVCell(g)

	for digit := 1; digit <= 9; digit++ {
		if g.CandidateMask(pos)&(1<<(digit-1)) == 0 {
			continue
		}

		branch := g.Clone()
		s.assign(branch, pos, digit)

		solved, err := s.search(ctx, branch)
		if err == nil {
			return solved, nil
		}
		if errors.Is(err, ErrTimeout) {
			return nil, err
		}
	}

	return nil, ErrNoSolution
}

// findMRVCell returns the unresolved cell with the fewest candidates.
// Ties go to the lowest position, making branch order deterministic.
func (s *Solver) findMRVCell(g *grid.Grid) int {
	mrvPos, mrvCount := grid.InvalidCell, 10

	for pos := 0; pos < grid.CellCount; pos++ {
		count := g.CandidateCount(pos)
		if count > 1 && count < mrvCount {
			mrvPos, mrvCount = pos, count
			if count == 2 {
				break
			}
		}
	}

	return mrvPos
}
