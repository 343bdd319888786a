package matrixgame

import (
	"expvar"
	"math/rand"

	"github.com/golang/glog"
)

var fictitiousPlayIterations = expvar.NewInt("fictitious_play/iterations")

// Solver approximates a mixed-strategy equilibrium of a bimatrix game.
//
// The returned frequencies are indexed like the rows and columns of the
// payoff matrices and each sum to 1.
type Solver interface {
	ApproximateEquilibrium(rowPayoff, colPayoff [][]float64, iterations int, seed int64) (rowFreq, colFreq []float64)
}

// FictitiousPlay is a Solver in which each player repeatedly plays a best
// response to the empirical distribution of the other player's past play.
//
// Fictitious play is not guaranteed to converge in general-sum games,
// the play frequencies after a finite number of iterations are only an
// approximation of an equilibrium.
type FictitiousPlay struct {
	// Probability with which each player plays uniformly at random
	// instead of best responding.
	MixingLambda float64
}

// ApproximateEquilibrium implements Solver.
func (fp FictitiousPlay) ApproximateEquilibrium(rowPayoff, colPayoff [][]float64, iterations int, seed int64) ([]float64, []float64) {
	var rowFreq, colFreq []float64
	fp.Run(rowPayoff, colPayoff, iterations, seed, func(i int, rowCounts, colCounts []int) {
		if i == iterations {
			rowFreq = normalize(rowCounts)
			colFreq = normalize(colCounts)
		}
	})

	return rowFreq, colFreq
}

// Run plays iterations rounds of fictitious play. After round i (starting
// from 1) cb is called with the cumulative number of times each strategy
// has been played. The count slices are reused between calls.
func (fp FictitiousPlay) Run(rowPayoff, colPayoff [][]float64, iterations int, seed int64, cb func(i int, rowCounts, colCounts []int)) {
	rng := rand.New(rand.NewSource(seed))
	rowCounts := make([]int, len(rowPayoff))
	colCounts := make([]int, len(rowPayoff[0]))
	rowUtilities := make([]float64, len(rowCounts))
	colUtilities := make([]float64, len(colCounts))
	for i := 1; i <= iterations; i++ {
		var rowSelected int
		if fp.MixingLambda > 0 && rng.Float64() < fp.MixingLambda {
			rowSelected = rng.Intn(len(rowCounts))
		} else {
			rowSelected = getRowBestResponse(rng, rowPayoff, colCounts, rowUtilities)
		}

		var colSelected int
		if fp.MixingLambda > 0 && rng.Float64() < fp.MixingLambda {
			colSelected = rng.Intn(len(colCounts))
		} else {
			colSelected = getColBestResponse(rng, colPayoff, rowCounts, colUtilities)
		}

		rowCounts[rowSelected]++
		colCounts[colSelected]++
		if iterations >= 10 && i%(iterations/10) == 0 {
			glog.V(4).Infof("After %d iterations, row weights: %v", i, normalize(rowCounts))
			glog.V(4).Infof("After %d iterations, col weights: %v", i, normalize(colCounts))
		}

		cb(i, rowCounts, colCounts)
	}

	fictitiousPlayIterations.Add(int64(iterations))
}

func getRowBestResponse(rng *rand.Rand, rowPayoff [][]float64, colCounts []int, utilities []float64) int {
	for i := range utilities {
		utilities[i] = 0
	}

	for j, c := range colCounts {
		if c == 0 {
			continue
		}
		for i := range utilities {
			utilities[i] += float64(c) * rowPayoff[i][j]
		}
	}

	_, br := argMax(rng, utilities)
	return br
}

func getColBestResponse(rng *rand.Rand, colPayoff [][]float64, rowCounts []int, utilities []float64) int {
	for j := range utilities {
		utilities[j] = 0
	}

	for i, c := range rowCounts {
		if c == 0 {
			continue
		}
		for j := range utilities {
			utilities[j] += float64(c) * colPayoff[i][j]
		}
	}

	_, br := argMax(rng, utilities)
	return br
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	if total == 0 {
		return result
	}

	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}
	return result
}

// argMax returns the maximum value and its index, choosing uniformly
// at random among ties.
func argMax(rng *rand.Rand, vs []float64) (float64, int) {
	best := vs[0]
	bestIdx := 0
	nTies := 1
	for i := 1; i < len(vs); i++ {
		v := vs[i]
		if v > best {
			best = v
			bestIdx = i
			nTies = 1
		} else if v == best {
			nTies++
			if rng.Intn(nTies) == 0 {
				bestIdx = i
			}
		}
	}

	return best, bestIdx
}
