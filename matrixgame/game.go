package matrixgame

import (
	"fmt"
)

// Game is a two-player general-sum game in normal form.
//
// Both payoff matrices are indexed [row][col]. RowIDs and ColIDs tag each
// surviving strategy with a stable identifier (its index in the original
// game), so strategies can be traced back after rows and columns have
// been removed.
type Game struct {
	RowIDs []int
	ColIDs []int
	// Payoff to the row player.
	RowPayoff [][]float64
	// Payoff to the column player.
	ColPayoff [][]float64
}

// NewGame creates a Game from the row and column player's payoff matrices,
// which must have the same shape. The matrices are copied.
func NewGame(rowPayoff, colPayoff [][]float64) *Game {
	if len(rowPayoff) != len(colPayoff) {
		panic(fmt.Errorf("payoff matrices have %d and %d rows", len(rowPayoff), len(colPayoff)))
	}

	nCols := 0
	if len(rowPayoff) > 0 {
		nCols = len(rowPayoff[0])
	}

	g := &Game{
		RowIDs:    identity(len(rowPayoff)),
		ColIDs:    identity(nCols),
		RowPayoff: copyMatrix(rowPayoff),
		ColPayoff: copyMatrix(colPayoff),
	}
	g.checkShape()
	return g
}

func (g *Game) NumRows() int {
	return len(g.RowIDs)
}

func (g *Game) NumCols() int {
	return len(g.ColIDs)
}

// Clone returns a deep copy of the Game.
func (g *Game) Clone() *Game {
	return &Game{
		RowIDs:    append([]int(nil), g.RowIDs...),
		ColIDs:    append([]int(nil), g.ColIDs...),
		RowPayoff: copyMatrix(g.RowPayoff),
		ColPayoff: copyMatrix(g.ColPayoff),
	}
}

// removeStrategies drops the given row and column positions from the
// strategy identifiers and from both payoff matrices.
func (g *Game) removeStrategies(rows, cols []int) {
	keepRow := keepMask(len(g.RowIDs), rows)
	keepCol := keepMask(len(g.ColIDs), cols)

	g.RowIDs = filterInts(g.RowIDs, keepRow)
	g.ColIDs = filterInts(g.ColIDs, keepCol)
	g.RowPayoff = filterMatrix(g.RowPayoff, keepRow, keepCol)
	g.ColPayoff = filterMatrix(g.ColPayoff, keepRow, keepCol)
}

// checkShape panics if the payoff matrices are not aligned with the
// surviving strategies.
func (g *Game) checkShape() {
	nRows, nCols := len(g.RowIDs), len(g.ColIDs)
	for name, m := range map[string][][]float64{"row": g.RowPayoff, "col": g.ColPayoff} {
		if len(m) != nRows {
			panic(fmt.Errorf("%s payoff has %d rows, expected %d", name, len(m), nRows))
		}

		for i, row := range m {
			if len(row) != nCols {
				panic(fmt.Errorf("%s payoff row %d has %d columns, expected %d",
					name, i, len(row), nCols))
			}
		}
	}
}

// Transpose returns a new matrix with rows and columns swapped.
func Transpose(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return [][]float64{}
	}

	result := make([][]float64, len(m[0]))
	for j := range result {
		result[j] = make([]float64, len(m))
		for i := range m {
			result[j][i] = m[i][j]
		}
	}
	return result
}

func identity(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

func copyMatrix(m [][]float64) [][]float64 {
	result := make([][]float64, len(m))
	for i, row := range m {
		result[i] = append([]float64(nil), row...)
	}
	return result
}

func keepMask(n int, removed []int) []bool {
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}
	for _, i := range removed {
		keep[i] = false
	}
	return keep
}

func filterInts(vs []int, keep []bool) []int {
	result := make([]int, 0, len(vs))
	for i, v := range vs {
		if keep[i] {
			result = append(result, v)
		}
	}
	return result
}

func filterMatrix(m [][]float64, keepRow, keepCol []bool) [][]float64 {
	result := make([][]float64, 0, len(m))
	for i, row := range m {
		if !keepRow[i] {
			continue
		}

		newRow := make([]float64, 0, len(row))
		for j, v := range row {
			if keepCol[j] {
				newRow = append(newRow, v)
			}
		}
		result = append(result, newRow)
	}
	return result
}
