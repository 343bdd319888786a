// Approximate the expected payoffs of three-node Blotto for every pair of
// attacker and defender budgets, and save them as tables.
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/golang/glog"

	"github.com/timpalpant/alphablotto"
	"github.com/timpalpant/alphablotto/matrixgame"
	"github.com/timpalpant/alphablotto/report"
	"github.com/timpalpant/alphablotto/report/npyio"
)

type OutputParams struct {
	Dir         string
	NPZ         string
	Archive     string
	FromArchive string
	SaveConfig  string
}

func main() {
	defaults := alphablotto.DefaultParams()
	var params alphablotto.Params
	flag.IntVar(&params.MaxBudget, "max_budget", defaults.MaxBudget,
		"Maximum resources for each player")
	flag.IntVar(&params.Iterations, "iterations", defaults.Iterations,
		"Number of rounds of fictitious play per game")
	flag.IntVar(&params.NumTrials, "num_games", defaults.NumTrials,
		"Number of games played for each pair of budgets")
	flag.Int64Var(&params.Seed, "seed", defaults.Seed,
		"Random seed of the first game")
	flag.Float64Var(&params.MixingLambda, "mixing_lambda", defaults.MixingLambda,
		"Probability of playing uniformly at random instead of best responding")
	flag.IntVar(&params.NumPayoffSamples, "payoff_samples", defaults.NumPayoffSamples,
		"Number of sampled games used to cross-check expected payoffs (0 to disable)")
	configFile := flag.String("config", "",
		"YAML file with simulation parameters (explicit flags take precedence)")

	var output OutputParams
	flag.StringVar(&output.Dir, "output_dir", ".",
		"Directory to save payoff tables (CSV) to")
	flag.StringVar(&output.NPZ, "npz", "",
		"If set, also save payoff tables to this .npz file")
	flag.StringVar(&output.Archive, "archive", "",
		"If set, save full results (gzipped gob) to this file")
	flag.StringVar(&output.FromArchive, "from_archive", "",
		"Write tables from previously archived results instead of simulating")
	flag.StringVar(&output.SaveConfig, "save_config", "",
		"If set, save the parameters used to this YAML file")
	debugAddr := flag.String("debug_addr", "localhost:4123",
		"Address to serve expvar and pprof on (empty to disable)")
	flag.Parse()

	if *debugAddr != "" {
		go http.ListenAndServe(*debugAddr, nil)
	}

	var results *alphablotto.Results
	var err error
	if output.FromArchive != "" {
		results, err = report.LoadResults(output.FromArchive)
	} else {
		if *configFile != "" {
			params = mustLoadParams(*configFile, params)
		}
		results, err = simulate(params)
	}
	if err != nil {
		glog.Fatal(err)
	}

	printResults(results)
	if err := saveResults(output, results); err != nil {
		glog.Fatal(err)
	}
}

// mustLoadParams loads params from filename, keeping the values of any
// flags that were set explicitly on the command line.
func mustLoadParams(filename string, flagParams alphablotto.Params) alphablotto.Params {
	params, err := report.LoadParams(filename, flagParams)
	if err != nil {
		glog.Fatal(err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "max_budget":
			params.MaxBudget = flagParams.MaxBudget
		case "iterations":
			params.Iterations = flagParams.Iterations
		case "num_games":
			params.NumTrials = flagParams.NumTrials
		case "seed":
			params.Seed = flagParams.Seed
		case "mixing_lambda":
			params.MixingLambda = flagParams.MixingLambda
		case "payoff_samples":
			params.NumPayoffSamples = flagParams.NumPayoffSamples
		}
	})

	return params
}

func simulate(params alphablotto.Params) (*alphablotto.Results, error) {
	glog.Infof("Running with params: %+v", params)
	solver := matrixgame.FictitiousPlay{MixingLambda: params.MixingLambda}
	sim, err := alphablotto.NewSimulator(params, solver)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := sim.Run(alphablotto.NewResults(params))
	if err != nil {
		return nil, err
	}

	glog.Infof("Finished simulating (took %v)", time.Since(start))
	return results, nil
}

func printResults(results *alphablotto.Results) {
	glog.Info("Expected payoffs:")
	glog.Infof("Defender Expected Payoff:\n%s", report.FormatTable(results.Defender))
	glog.Infof("Attacker Expected Payoff:\n%s", report.FormatTable(results.Attacker))
}

func saveResults(output OutputParams, results *alphablotto.Results) error {
	glog.Infof("Saving payoff tables to: %v", output.Dir)
	if err := report.WriteTables(output.Dir, results); err != nil {
		return err
	}

	if output.NPZ != "" {
		glog.Infof("Saving payoff tables to: %v", output.NPZ)
		err := npyio.MakeNPZ(output.NPZ, map[string][][]float64{
			"defender": results.Defender,
			"attacker": results.Attacker,
		})
		if err != nil {
			return err
		}
	}

	if output.Archive != "" && output.FromArchive == "" {
		if err := report.SaveResults(output.Archive, results); err != nil {
			return err
		}
	}

	if output.SaveConfig != "" {
		glog.Infof("Saving params to: %v", output.SaveConfig)
		if err := report.SaveParams(output.SaveConfig, results.Params); err != nil {
			return err
		}
	}

	return nil
}
