package alphablotto

import (
	"github.com/pkg/errors"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// Params configures a full simulation run.
type Params struct {
	// Budgets 1..MaxBudget are simulated for each player.
	MaxBudget int `yaml:"max_budget"`
	// Number of rounds of fictitious play in each trial.
	Iterations int `yaml:"iterations"`
	// Number of independently seeded trials per budget pair.
	NumTrials int `yaml:"num_trials"`
	// Seed of the first trial. Each subsequent trial uses the next seed.
	Seed int64 `yaml:"seed"`
	// Probability of playing uniformly at random in each round.
	MixingLambda float64 `yaml:"mixing_lambda"`
	// If > 0, the expected payoffs are cross-checked by sampling this many
	// pure strategy profiles from the averaged strategies.
	NumPayoffSamples int `yaml:"num_payoff_samples"`
}

// DefaultParams returns the parameters of the reference experiment.
func DefaultParams() Params {
	return Params{
		MaxBudget:  10,
		Iterations: 1000,
		NumTrials:  1000,
		Seed:       0,
	}
}

func (p Params) Validate() error {
	if p.MaxBudget < 1 {
		return errors.Wrapf(ErrInvalidParams, "max budget must be positive, got %d", p.MaxBudget)
	}
	if p.Iterations < 1 {
		return errors.Wrapf(ErrInvalidParams, "iterations must be positive, got %d", p.Iterations)
	}
	if p.NumTrials < 1 {
		return errors.Wrapf(ErrInvalidParams, "number of trials must be positive, got %d", p.NumTrials)
	}
	if p.MixingLambda < 0 || p.MixingLambda > 1 {
		return errors.Wrapf(ErrInvalidParams, "mixing lambda must be in [0, 1], got %v", p.MixingLambda)
	}
	if p.NumPayoffSamples < 0 {
		return errors.Wrapf(ErrInvalidParams, "number of payoff samples must be non-negative, got %d", p.NumPayoffSamples)
	}

	return nil
}
