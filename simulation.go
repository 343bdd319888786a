package alphablotto

import (
	"expvar"
	"math"
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/alphablotto/matrixgame"
)

var (
	trialsRun       = expvar.NewInt("trials_run")
	budgetPairsDone = expvar.NewInt("budget_pairs_done")
)

// PairResult holds the outcome of simulating one pair of budgets.
type PairResult struct {
	AttackerBudget int
	DefenderBudget int
	// Seed of the first trial for this pair.
	FirstSeed int64

	// Strategies that survived elimination of dominated strategies,
	// and the average frequency with which each was played.
	DefenderStrategies []Action
	AttackerStrategies []Action
	DefenderFreqs      []float64
	AttackerFreqs      []float64
	Prune              matrixgame.PruneStats

	// Expected payoffs under the average strategies.
	DefenderPayoff float64
	AttackerPayoff float64
	// Monte Carlo estimates of the expected payoffs, if requested.
	SampledDefenderPayoff float64
	SampledAttackerPayoff float64
}

// Results accumulates the expected payoff tables for a simulation run.
// Entry [d-1][a-1] of each table is the expected payoff, rounded to
// 2 decimal places, with defender budget d and attacker budget a.
type Results struct {
	Params   Params
	Defender [][]float64
	Attacker [][]float64
	Pairs    []PairResult
	// Seed to use for the next trial.
	NextSeed int64
}

func NewResults(params Params) *Results {
	return &Results{
		Params:   params,
		Defender: newTable(params.MaxBudget),
		Attacker: newTable(params.MaxBudget),
		NextSeed: params.Seed,
	}
}

func (r *Results) add(pr PairResult) {
	d, a := pr.DefenderBudget-1, pr.AttackerBudget-1
	r.Defender[d][a] = round2(pr.DefenderPayoff)
	r.Attacker[d][a] = round2(pr.AttackerPayoff)
	r.Pairs = append(r.Pairs, pr)
}

// Simulator approximates the expected payoffs of the game for each pair
// of budgets by averaging many trials of an equilibrium Solver over the
// game with dominated strategies removed.
type Simulator struct {
	params  Params
	solver  matrixgame.Solver
	actions *ActionCache
}

func NewSimulator(params Params, solver matrixgame.Solver) (*Simulator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Simulator{
		params:  params,
		solver:  solver,
		actions: NewActionCache(params.MaxBudget + 1),
	}, nil
}

// Run simulates every pair of budgets, iterating over attacker budgets in
// the outer loop and defender budgets in the inner loop.
func (s *Simulator) Run(acc *Results) (*Results, error) {
	glog.Infof("Simulating %d budget pairs with %d trials of %d iterations each",
		s.params.MaxBudget*s.params.MaxBudget, s.params.NumTrials, s.params.Iterations)
	glog.Info("Payoffs are averaged over finite fictitious play and only approximate an equilibrium")
	for a := 1; a <= s.params.MaxBudget; a++ {
		for d := 1; d <= s.params.MaxBudget; d++ {
			var err error
			acc, err = s.SimulatePair(acc, a, d)
			if err != nil {
				return acc, err
			}
		}
	}

	return acc, nil
}

// SimulatePair simulates the game between the given attacker and defender
// budgets and records the result in acc.
func (s *Simulator) SimulatePair(acc *Results, attackerBudget, defenderBudget int) (*Results, error) {
	for _, budget := range []int{attackerBudget, defenderBudget} {
		if budget < 1 || budget > s.params.MaxBudget {
			return acc, errors.Wrapf(ErrInvalidBudget, "budget %d must be in [1, %d]",
				budget, s.params.MaxBudget)
		}
	}

	attackerActions, err := s.actions.Get(attackerBudget)
	if err != nil {
		return acc, err
	}
	defenderActions, err := s.actions.Get(defenderBudget)
	if err != nil {
		return acc, err
	}

	game := NewPayoffs(attackerActions, defenderActions)
	stats := game.EliminateDominated()
	glog.V(1).Infof("Reduced %d x %d game to %d x %d in %d passes",
		len(defenderActions), len(attackerActions), game.NumRows(), game.NumCols(), stats.Passes)
	glog.Infof("Simulating games with %d defender resources and %d attacker resources",
		defenderBudget, attackerBudget)

	firstSeed := acc.NextSeed
	defenderFreqs := make([]float64, game.NumRows())
	attackerFreqs := make([]float64, game.NumCols())
	for i := 0; i < s.params.NumTrials; i++ {
		rowFreq, colFreq := s.solver.ApproximateEquilibrium(
			game.RowPayoff, game.ColPayoff, s.params.Iterations, acc.NextSeed)
		acc.NextSeed++
		addScaled(defenderFreqs, rowFreq, 1/float64(s.params.NumTrials))
		addScaled(attackerFreqs, colFreq, 1/float64(s.params.NumTrials))
		trialsRun.Add(1)
	}

	pr := PairResult{
		AttackerBudget:     attackerBudget,
		DefenderBudget:     defenderBudget,
		FirstSeed:          firstSeed,
		DefenderStrategies: selectActions(defenderActions, game.RowIDs),
		AttackerStrategies: selectActions(attackerActions, game.ColIDs),
		DefenderFreqs:      defenderFreqs,
		AttackerFreqs:      attackerFreqs,
		Prune:              stats,
		DefenderPayoff:     matrixgame.ExpectedPayoff(game.RowPayoff, defenderFreqs, attackerFreqs),
		AttackerPayoff:     matrixgame.ExpectedPayoff(game.ColPayoff, defenderFreqs, attackerFreqs),
	}

	if s.params.NumPayoffSamples > 0 {
		rng := rand.New(rand.NewSource(firstSeed))
		pr.SampledDefenderPayoff, pr.SampledAttackerPayoff = matrixgame.SampleExpectedPayoff(
			game, defenderFreqs, attackerFreqs, s.params.NumPayoffSamples, rng)
		glog.V(1).Infof("Expected payoffs (defender, attacker): (%.3f, %.3f), sampled: (%.3f, %.3f)",
			pr.DefenderPayoff, pr.AttackerPayoff, pr.SampledDefenderPayoff, pr.SampledAttackerPayoff)
	}

	acc.add(pr)
	budgetPairsDone.Add(1)
	return acc, nil
}

func selectActions(actions []Action, ids []int) []Action {
	result := make([]Action, len(ids))
	for i, id := range ids {
		result[i] = actions[id]
	}
	return result
}

func addScaled(dst, src []float64, scale float64) {
	for i, v := range src {
		dst[i] += scale * v
	}
}

func newTable(n int) [][]float64 {
	result := make([][]float64, n)
	for i := range result {
		result[i] = make([]float64, n)
	}
	return result
}

func round2(x float64) float64 {
	return math.RoundToEven(x*100) / 100
}
