package matrixgame

import (
	"expvar"
	"fmt"

	"github.com/golang/glog"
)

var (
	dominancePasses      = expvar.NewInt("dominance/passes")
	dominanceRowsRemoved = expvar.NewInt("dominance/rows_removed")
	dominanceColsRemoved = expvar.NewInt("dominance/cols_removed")
)

// PruneStats summarizes a run of EliminateDominated.
type PruneStats struct {
	// Number of passes, including the final pass that removed nothing.
	Passes      int
	RowsRemoved int
	ColsRemoved int
}

// EliminateDominated performs iterated elimination of strictly dominated
// strategies, in place, until neither player has a dominated strategy.
//
// Each pass finds the dominated rows (with respect to RowPayoff) and the
// dominated columns (with respect to ColPayoff) of the current game, then
// removes both at once from the strategy identifiers and from both matrices.
func (g *Game) EliminateDominated() PruneStats {
	var stats PruneStats
	for {
		rows, cols := g.pruneOnce()
		stats.Passes++
		stats.RowsRemoved += len(rows)
		stats.ColsRemoved += len(cols)
		dominancePasses.Add(1)
		dominanceRowsRemoved.Add(int64(len(rows)))
		dominanceColsRemoved.Add(int64(len(cols)))
		glog.V(2).Infof("Dominance pass %d: removed %d rows, %d cols (%d x %d remain)",
			stats.Passes, len(rows), len(cols), g.NumRows(), g.NumCols())

		if len(rows) == 0 && len(cols) == 0 {
			return stats
		}
	}
}

// pruneOnce runs a single elimination pass and returns the positions
// (relative to the game before the pass) of the rows and columns removed.
func (g *Game) pruneOnce() ([]int, []int) {
	rows := DominatedRows(g.RowPayoff)
	// A column of the column player's matrix is a row of its transpose.
	cols := DominatedRows(Transpose(g.ColPayoff))
	if len(rows) == 0 && len(cols) == 0 {
		return nil, nil
	}

	g.removeStrategies(rows, cols)
	g.checkShape()
	if g.NumRows() == 0 || g.NumCols() == 0 {
		panic(fmt.Errorf("dominance elimination removed all strategies (%d rows, %d cols remain)",
			g.NumRows(), g.NumCols()))
	}

	return rows, cols
}

// DominatedRows returns the indices of rows of payoff that are strictly
// dominated by another row, in the order they were found.
//
// Rows are compared pairwise in index order. Once a row is found to be
// dominated it is not compared again, either as dominator or dominated.
// Rows with identical payoffs do not dominate each other.
func DominatedRows(payoff [][]float64) []int {
	dominated := make([]bool, len(payoff))
	var result []int
	for r1 := 0; r1 < len(payoff)-1; r1++ {
		for r2 := r1 + 1; r2 < len(payoff); r2++ {
			if dominated[r1] || dominated[r2] {
				continue
			}

			switch compareRows(payoff[r1], payoff[r2]) {
			case 1:
				dominated[r2] = true
				result = append(result, r2)
			case -1:
				dominated[r1] = true
				result = append(result, r1)
			}
		}
	}

	return result
}

// compareRows returns 1 if a weakly dominates b with at least one strict
// improvement, -1 if b does so over a, and 0 otherwise.
func compareRows(a, b []float64) int {
	aBetter, bBetter := false, false
	for i := range a {
		if a[i] > b[i] {
			aBetter = true
		} else if a[i] < b[i] {
			bBetter = true
		}

		if aBetter && bBetter {
			return 0
		}
	}

	if aBetter {
		return 1
	} else if bBetter {
		return -1
	}

	return 0
}
