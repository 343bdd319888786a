package alphablotto

import (
	"math"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/timpalpant/alphablotto/matrixgame"
)

// uniformSolver plays every strategy with equal frequency and records the
// seeds it was called with.
type uniformSolver struct {
	seeds []int64
}

func (s *uniformSolver) ApproximateEquilibrium(rowPayoff, colPayoff [][]float64, iterations int, seed int64) ([]float64, []float64) {
	s.seeds = append(s.seeds, seed)
	return uniform(len(rowPayoff)), uniform(len(rowPayoff[0]))
}

func uniform(n int) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = 1 / float64(n)
	}
	return result
}

func testParams() Params {
	return Params{
		MaxBudget:  3,
		Iterations: 50,
		NumTrials:  4,
		Seed:       100,
	}
}

func TestSimulatePair_UniformStrategies(t *testing.T) {
	params := testParams()
	sim, err := NewSimulator(params, &uniformSolver{})
	if err != nil {
		t.Fatal(err)
	}

	acc, err := sim.SimulatePair(NewResults(params), 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	// No strategy is dominated with one resource each, so the expected
	// payoffs are the mean of each payoff matrix.
	pr := acc.Pairs[0]
	if pr.Prune.RowsRemoved != 0 || pr.Prune.ColsRemoved != 0 {
		t.Errorf("expected no dominated strategies, got %+v", pr.Prune)
	}
	if math.Abs(pr.DefenderPayoff-16.0/9) > 1e-9 {
		t.Errorf("defender payoff is %v, expected %v", pr.DefenderPayoff, 16.0/9)
	}
	if math.Abs(pr.AttackerPayoff-8.0/9) > 1e-9 {
		t.Errorf("attacker payoff is %v, expected %v", pr.AttackerPayoff, 8.0/9)
	}
	if acc.Defender[0][0] != 1.78 || acc.Attacker[0][0] != 0.89 {
		t.Errorf("got table entries (%v, %v), expected (1.78, 0.89)",
			acc.Defender[0][0], acc.Attacker[0][0])
	}
}

func TestRun_Seeds(t *testing.T) {
	params := testParams()
	solver := &uniformSolver{}
	sim, err := NewSimulator(params, solver)
	if err != nil {
		t.Fatal(err)
	}

	acc, err := sim.Run(NewResults(params))
	if err != nil {
		t.Fatal(err)
	}

	nTrials := params.MaxBudget * params.MaxBudget * params.NumTrials
	if len(solver.seeds) != nTrials {
		t.Fatalf("solver called %d times, expected %d", len(solver.seeds), nTrials)
	}

	for i, seed := range solver.seeds {
		if seed != params.Seed+int64(i) {
			t.Errorf("trial %d used seed %d, expected %d", i, seed, params.Seed+int64(i))
		}
	}

	if acc.NextSeed != params.Seed+int64(nTrials) {
		t.Errorf("next seed is %d, expected %d", acc.NextSeed, params.Seed+int64(nTrials))
	}

	// Attacker budget is the outer loop.
	expectedOrder := [][2]int{{1, 1}, {1, 2}, {1, 3}, {2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	for i, pr := range acc.Pairs {
		got := [2]int{pr.AttackerBudget, pr.DefenderBudget}
		if got != expectedOrder[i] {
			t.Errorf("pair %d is %v, expected %v", i, got, expectedOrder[i])
		}
		if pr.FirstSeed != params.Seed+int64(i*params.NumTrials) {
			t.Errorf("pair %d first seed is %d, expected %d",
				i, pr.FirstSeed, params.Seed+int64(i*params.NumTrials))
		}
	}
}

func TestRun_FictitiousPlay(t *testing.T) {
	params := testParams()
	params.NumPayoffSamples = 1000
	run := func() *Results {
		sim, err := NewSimulator(params, matrixgame.FictitiousPlay{})
		if err != nil {
			t.Fatal(err)
		}

		acc, err := sim.Run(NewResults(params))
		if err != nil {
			t.Fatal(err)
		}
		return acc
	}

	acc := run()
	if len(acc.Defender) != params.MaxBudget || len(acc.Attacker) != params.MaxBudget {
		t.Fatalf("got tables with %d and %d rows, expected %d",
			len(acc.Defender), len(acc.Attacker), params.MaxBudget)
	}

	for _, pr := range acc.Pairs {
		if len(pr.DefenderFreqs) != len(pr.DefenderStrategies) ||
			len(pr.AttackerFreqs) != len(pr.AttackerStrategies) {
			t.Errorf("(%d, %d): frequencies do not match surviving strategies",
				pr.AttackerBudget, pr.DefenderBudget)
		}

		for _, freqs := range [][]float64{pr.DefenderFreqs, pr.AttackerFreqs} {
			total := 0.0
			for _, f := range freqs {
				total += f
			}
			if math.Abs(total-1) > 1e-9 {
				t.Errorf("(%d, %d): frequencies %v sum to %v",
					pr.AttackerBudget, pr.DefenderBudget, freqs, total)
			}
		}

		for _, s := range pr.AttackerStrategies {
			if s.Sum() != pr.AttackerBudget {
				t.Errorf("attacker strategy %v does not use budget %d", s, pr.AttackerBudget)
			}
		}

		d, a := pr.DefenderBudget-1, pr.AttackerBudget-1
		if acc.Defender[d][a] != round2(pr.DefenderPayoff) {
			t.Errorf("defender table entry [%d][%d] is %v, expected %v",
				d, a, acc.Defender[d][a], round2(pr.DefenderPayoff))
		}
	}

	if again := run(); !reflect.DeepEqual(acc, again) {
		t.Error("repeated runs with the same seed gave different results")
	}
}

func TestSimulatePair_InvalidBudget(t *testing.T) {
	params := testParams()
	sim, err := NewSimulator(params, &uniformSolver{})
	if err != nil {
		t.Fatal(err)
	}

	for _, budgets := range [][2]int{{0, 1}, {1, 0}, {-1, 2}, {1, 4}} {
		_, err := sim.SimulatePair(NewResults(params), budgets[0], budgets[1])
		if errors.Cause(err) != ErrInvalidBudget {
			t.Errorf("budgets %v: got error %v, expected %v", budgets, err, ErrInvalidBudget)
		}
	}
}

func TestParams_Validate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default params are invalid: %v", err)
	}

	invalid := []func(p *Params){
		func(p *Params) { p.MaxBudget = 0 },
		func(p *Params) { p.Iterations = 0 },
		func(p *Params) { p.NumTrials = -1 },
		func(p *Params) { p.MixingLambda = 1.5 },
		func(p *Params) { p.NumPayoffSamples = -1 },
	}

	for i, modify := range invalid {
		p := DefaultParams()
		modify(&p)
		if err := p.Validate(); errors.Cause(err) != ErrInvalidParams {
			t.Errorf("case %d: got error %v, expected %v", i, err, ErrInvalidParams)
		}

		if _, err := NewSimulator(p, &uniformSolver{}); err == nil {
			t.Errorf("case %d: NewSimulator accepted invalid params %+v", i, p)
		}
	}
}

func TestRound2(t *testing.T) {
	testCases := map[float64]float64{
		1.0 / 3:   0.33,
		16.0 / 9:  1.78,
		-2.0 / 3:  -0.67,
		2:         2,
		-0.001:    0,
		0.9999999: 1,
	}

	for x, expected := range testCases {
		if got := round2(x); got != expected {
			t.Errorf("round2(%v) = %v, expected %v", x, got, expected)
		}
	}
}
