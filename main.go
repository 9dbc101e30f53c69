package main

import (
	"fmt"
	"os"

	"github.com/mnds/tabueqcol/descent"
	"github.com/mnds/tabueqcol/instance"
	"github.com/mnds/tabueqcol/report"
)

func main() {
	cfg, inputPath, outputPath, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabueqcol: %v\n", err)
		os.Exit(1)
	}

	inFile, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabueqcol: open %s: %v\n", inputPath, err)
		os.Exit(1)
	}
	defer inFile.Close()

	inst, err := instance.LoadInstance(inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabueqcol: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("loaded %s: n=%d, max_degree=%d\n", inputPath, inst.N, inst.MaxDegree)
	fmt.Printf("alpha=%.2f beta=%d p_limit=%d p_str=%.2f aspiration=%t\n",
		cfg.Alpha, cfg.Beta, cfg.PerturbationLimit, cfg.PerturbationStrength, cfg.Aspiration)

	summary, err := descent.Run(inst, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabueqcol: %v\n", err)
		os.Exit(1)
	}

	row := report.Row{
		Instance:             inputPath,
		Seed:                 cfg.Seed,
		Alpha:                cfg.Alpha,
		Beta:                 cfg.Beta,
		PerturbationLimit:    cfg.PerturbationLimit,
		PerturbationStrength: cfg.PerturbationStrength,
		Aspiration:           cfg.Aspiration,
		InitialK:             summary.InitialK,
		FinalK:               summary.FinalK,
		DeviationPercent:     summary.DeviationPercent,
		ElapsedSeconds:       summary.Elapsed.Seconds(),
		TotalIterations:      summary.TotalIterations,
	}
	if err := report.Append(outputPath, row); err != nil {
		fmt.Fprintf(os.Stderr, "tabueqcol: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== result ===\nK %d -> %d | seed %d | time %.4fs | iterations %d\n",
		summary.InitialK, summary.FinalK, cfg.Seed, summary.Elapsed.Seconds(), summary.TotalIterations)
}
