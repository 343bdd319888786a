package matrixgame

import (
	"reflect"
	"testing"
)

func TestDominatedRows(t *testing.T) {
	testCases := []struct {
		name     string
		payoff   [][]float64
		expected []int
	}{
		{"first dominates", [][]float64{{1, 1}, {0, 0}}, []int{1}},
		{"second dominates", [][]float64{{0, 0}, {1, 1}}, []int{0}},
		{"weak dominance", [][]float64{{1, 0}, {1, 1}}, []int{0}},
		{"identical rows", [][]float64{{1, 1}, {1, 1}}, nil},
		{"no dominance", [][]float64{{1, 0}, {0, 1}}, nil},
		{"chain in order", [][]float64{{3, 3}, {2, 2}, {1, 1}}, []int{1, 2}},
		{"dominated rows are skipped", [][]float64{{1, 1}, {2, 2}, {0, 0}}, []int{0, 2}},
		{"single row", [][]float64{{1, 2, 3}}, nil},
		{"no rows", [][]float64{}, nil},
	}

	for _, tc := range testCases {
		result := DominatedRows(tc.payoff)
		if !reflect.DeepEqual(result, tc.expected) {
			t.Errorf("%s: got %v, expected %v", tc.name, result, tc.expected)
		}
	}
}

func TestEliminateDominated_PrisonersDilemma(t *testing.T) {
	g := NewGame(
		[][]float64{
			{3, 0}, // Row player cooperates.
			{5, 1}, // Row player defects.
		},
		[][]float64{
			{3, 5},
			{0, 1},
		})

	stats := g.EliminateDominated()
	expectedStats := PruneStats{Passes: 2, RowsRemoved: 1, ColsRemoved: 1}
	if stats != expectedStats {
		t.Errorf("got stats %+v, expected %+v", stats, expectedStats)
	}

	expected := &Game{
		RowIDs:    []int{1},
		ColIDs:    []int{1},
		RowPayoff: [][]float64{{1}},
		ColPayoff: [][]float64{{1}},
	}
	if !reflect.DeepEqual(g, expected) {
		t.Errorf("got %+v, expected %+v", g, expected)
	}
}

// Each pass only exposes the next dominated strategy after the previous
// one has been removed.
func iteratedGame() *Game {
	return NewGame(
		[][]float64{
			{1, 1, 0},
			{0, 0, 2},
		},
		[][]float64{
			{0, 2, 1},
			{3, 1, 0},
		})
}

func TestEliminateDominated_Iterated(t *testing.T) {
	g := iteratedGame()
	stats := g.EliminateDominated()
	expectedStats := PruneStats{Passes: 4, RowsRemoved: 1, ColsRemoved: 2}
	if stats != expectedStats {
		t.Errorf("got stats %+v, expected %+v", stats, expectedStats)
	}

	expected := &Game{
		RowIDs:    []int{0},
		ColIDs:    []int{1},
		RowPayoff: [][]float64{{1}},
		ColPayoff: [][]float64{{2}},
	}
	if !reflect.DeepEqual(g, expected) {
		t.Errorf("got %+v, expected %+v", g, expected)
	}
}

func TestEliminateDominated_Idempotent(t *testing.T) {
	for _, g := range []*Game{iteratedGame(), rockPaperScissors()} {
		g.EliminateDominated()
		reduced := g.Clone()
		stats := reduced.EliminateDominated()
		if stats.RowsRemoved != 0 || stats.ColsRemoved != 0 || stats.Passes != 1 {
			t.Errorf("second elimination was not a no-op: %+v", stats)
		}

		if !reflect.DeepEqual(reduced, g) {
			t.Errorf("second elimination changed the game: got %+v, expected %+v", reduced, g)
		}
	}
}

func TestEliminateDominated_IdenticalRowsSurvive(t *testing.T) {
	g := NewGame(
		[][]float64{{1, 2}, {1, 2}, {0, 0}},
		[][]float64{{1, 1}, {1, 1}, {1, 1}})
	g.EliminateDominated()
	if !reflect.DeepEqual(g.RowIDs, []int{0, 1}) {
		t.Errorf("got rows %v, expected %v", g.RowIDs, []int{0, 1})
	}
	if !reflect.DeepEqual(g.ColIDs, []int{0, 1}) {
		t.Errorf("got cols %v, expected %v", g.ColIDs, []int{0, 1})
	}
}

func TestPruneOnce_ShapesStayAligned(t *testing.T) {
	g := iteratedGame()
	original := g.Clone()
	for pass := 1; ; pass++ {
		rows, cols := g.pruneOnce()
		if len(g.RowPayoff) != g.NumRows() || len(g.ColPayoff) != g.NumRows() {
			t.Fatalf("pass %d: payoff rows (%d, %d) do not match %d row strategies",
				pass, len(g.RowPayoff), len(g.ColPayoff), g.NumRows())
		}

		for i := range g.RowPayoff {
			if len(g.RowPayoff[i]) != g.NumCols() || len(g.ColPayoff[i]) != g.NumCols() {
				t.Fatalf("pass %d: payoff row %d does not match %d col strategies",
					pass, i, g.NumCols())
			}

			// Surviving entries must still be the original payoffs of the
			// strategies they are tagged with.
			for j := range g.RowPayoff[i] {
				r, c := g.RowIDs[i], g.ColIDs[j]
				if g.RowPayoff[i][j] != original.RowPayoff[r][c] {
					t.Errorf("pass %d: row payoff (%d, %d) is %v, expected %v",
						pass, r, c, g.RowPayoff[i][j], original.RowPayoff[r][c])
				}
				if g.ColPayoff[i][j] != original.ColPayoff[r][c] {
					t.Errorf("pass %d: col payoff (%d, %d) is %v, expected %v",
						pass, r, c, g.ColPayoff[i][j], original.ColPayoff[r][c])
				}
			}
		}

		if len(rows) == 0 && len(cols) == 0 {
			break
		}
	}
}

func TestTranspose(t *testing.T) {
	m := [][]float64{{1, 2, 3}, {4, 5, 6}}
	expected := [][]float64{{1, 4}, {2, 5}, {3, 6}}
	if result := Transpose(m); !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, expected %v", result, expected)
	}
}

func TestNewGame_MismatchedShapes(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for mismatched payoff matrices")
		}
	}()

	NewGame([][]float64{{1, 2}}, [][]float64{{1}})
}
