package matrixgame

import (
	"math/rand"

	"github.com/timpalpant/go-cfr/sampling"
)

// ExpectedPayoff returns the expected value of payoff when the row and
// column players independently play the given mixed strategies.
func ExpectedPayoff(payoff [][]float64, rowFreq, colFreq []float64) float64 {
	total := 0.0
	for i, p := range rowFreq {
		for j, q := range colFreq {
			total += payoff[i][j] * p * q
		}
	}
	return total
}

// SampleExpectedPayoff estimates ExpectedPayoff for both players by
// averaging over nSamples pure strategy profiles drawn from the mixed
// strategies.
func SampleExpectedPayoff(g *Game, rowFreq, colFreq []float64, nSamples int, rng *rand.Rand) (float64, float64) {
	if nSamples <= 0 {
		return 0, 0
	}

	p := toFloat32(rowFreq)
	q := toFloat32(colFreq)
	var rowTotal, colTotal float64
	for k := 0; k < nSamples; k++ {
		i := sampling.SampleOne(p, rng.Float32())
		j := sampling.SampleOne(q, rng.Float32())
		rowTotal += g.RowPayoff[i][j]
		colTotal += g.ColPayoff[i][j]
	}

	n := float64(nSamples)
	return rowTotal / n, colTotal / n
}

func toFloat32(vs []float64) []float32 {
	result := make([]float32, len(vs))
	for i, v := range vs {
		result[i] = float32(v)
	}
	return result
}
