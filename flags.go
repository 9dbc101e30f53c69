package main

import (
	"errors"
	"flag"
	"time"

	"github.com/mnds/tabueqcol/descent"
)

// ErrMissingInput and ErrMissingOutput flag a required -input/-output that
// was not supplied.
var (
	ErrMissingInput  = errors.New("-input is required")
	ErrMissingOutput = errors.New("-output is required")
)

// parseFlags parses args into a descent.Config plus the input and output
// paths. Defaults match the configuration table: alpha 0.6, beta 10,
// aspiration on, time limit 1000s, max_iter 1e6, perturbation_limit 1000,
// perturbation_strength 0.16.
func parseFlags(args []string) (descent.Config, string, string, error) {
	fs := flag.NewFlagSet("tabueqcol", flag.ContinueOnError)

	input := fs.String("input", "", "path to the graph instance file (required)")
	output := fs.String("output", "", "path to the CSV results file, appended to (required)")
	seed := fs.Int64("seed", 0, "RNG seed for construction and tabu decisions")
	alpha := fs.Float64("alpha", 0.6, "tabu tenure multiplier")
	beta := fs.Int("beta", 10, "tabu tenure random span (inclusive upper bound)")
	aspiration := fs.Bool("aspiration", true, "accept an otherwise-tabu move that beats the best objective so far")
	timeLimit := fs.Int("time-limit", 1000, "wall-clock cap in whole seconds")
	maxIter := fs.Int("max-iter", 1_000_000, "iteration cap per k")
	perturbationLimit := fs.Int("perturbation-limit", 1000, "non-improving iterations before diversification")
	perturbationStrength := fs.Float64("perturbation-strength", 0.16, "fraction of n swapped during a perturbation round")
	startK := fs.Int("start-k", 0, "override the descent's starting k (0 = Hajnal-Szemeredi default)")
	debugChecks := fs.Bool("debug-checks", false, "run a full consistency revalidation after every solved k")

	if err := fs.Parse(args); err != nil {
		return descent.Config{}, "", "", err
	}
	if *input == "" {
		return descent.Config{}, "", "", ErrMissingInput
	}
	if *output == "" {
		return descent.Config{}, "", "", ErrMissingOutput
	}

	cfg := descent.Config{
		Seed:        *seed,
		TimeLimit:   time.Duration(*timeLimit) * time.Second,
		StartK:      *startK,
		DebugChecks: *debugChecks,
	}
	cfg.Alpha = *alpha
	cfg.Beta = *beta
	cfg.Aspiration = *aspiration
	cfg.MaxIter = *maxIter
	cfg.PerturbationLimit = *perturbationLimit
	cfg.PerturbationStrength = *perturbationStrength

	if err := cfg.Validate(); err != nil {
		return descent.Config{}, "", "", err
	}

	return cfg, *input, *output, nil
}
