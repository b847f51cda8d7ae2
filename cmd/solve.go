package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/rybkr/diagoku/internal/grid"
	"github.com/rybkr/diagoku/internal/solver"
)

var (
	solveTimeout time.Duration
	oneline      bool
	showTrace    bool
	cpuProfile   bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle|file]",
		Short: "Solve a diagonal Sudoku puzzle",
		Long: `Solve a diagonal Sudoku puzzle given as an 81-character string.

The puzzle is taken from the argument if it parses as a grid, otherwise the
argument is treated as a file to read; with no argument the puzzle is read
from stdin.

Examples:
  diagoku solve '2.............62....1....7...6..8...3...9...7...6..4...4....8....52.............3'
  diagoku solve puzzle.txt
  echo '...' | diagoku solve --oneline`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "Solve timeout")
	solveCmd.Flags().BoolVar(&oneline, "oneline", false, "Print the solution as one 81-character line")
	solveCmd.Flags().BoolVar(&showTrace, "trace", false, "Print the assignment trace as JSON lines")
	solveCmd.Flags().BoolVar(&cpuProfile, "profile", false, "Write a CPU profile to the current directory")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	puzzle, err := readPuzzle(args)
	if err != nil {
		return err
	}

	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	opts := &solver.Options{Timeout: solveTimeout}
	if showTrace {
		opts.Trace = &solver.Trace{}
	}

	solved, stats, err := solver.Solve(context.Background(), puzzle, opts)
	if err != nil {
		return err
	}

	if showTrace {
		enc := json.NewEncoder(os.Stdout)
		for _, step := range opts.Trace.Steps() {
			if err := enc.Encode(step); err != nil {
				return err
			}
		}
	}

	if oneline {
		fmt.Println(solved.String())
	} else {
		fmt.Print(solved.Format())
	}
	logger.Debugf("solved in %v, nodes=%d, trace steps=%d",
		stats.Duration.Round(time.Microsecond), stats.Nodes, opts.Trace.Len())

	return nil
}

// readPuzzle resolves the puzzle string from the argument, a file named by
// the argument, or stdin. Whitespace is stripped so multi-line grid files
// work too.
func readPuzzle(args []string) (string, error) {
	if len(args) == 1 {
		arg := strings.TrimSpace(args[0])
		if looksLikeGrid(arg) {
			return arg, nil
		}
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("argument is neither a puzzle nor a readable file: %w", err)
		}
		return stripSpace(string(raw)), nil
	}

	raw, err := io.ReadAll(io.LimitReader(os.Stdin, 1024))
	if err != nil {
		return "", err
	}
	return stripSpace(string(raw)), nil
}

func looksLikeGrid(s string) bool {
	if len(s) != grid.CellCount {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789.", r)
	}) < 0
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
