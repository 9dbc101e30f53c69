package descent

import (
	"time"

	"github.com/mnds/tabueqcol/coloring"
	"github.com/mnds/tabueqcol/instance"
	"github.com/mnds/tabueqcol/tabu"
)

// Run performs the descent method: it starts at k = MaxDegree+1 (feasible
// by Hajnal-Szemerédi), drives a tabu.Run to zero conflicts, then retries at
// k-1 by warm-starting from the feasible coloring it just found. The
// descent stops when a k fails to resolve, k reaches 1, or cfg.TimeLimit
// elapses across the whole run.
func Run(inst *instance.Instance, cfg Config) (Summary, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	base := rngFromSeed(cfg.Seed)
	constructionRNG := deriveRNG(base, streamConstruction)
	warmStartRNG := deriveRNG(base, streamWarmStart)
	tabuRNG := deriveRNG(base, streamTabu)

	k0 := inst.MaxDegree + 1
	if cfg.StartK > 0 {
		k0 = cfg.StartK
	}
	current, err := coloring.NewGreedyState(inst, k0, constructionRNG)
	if err != nil {
		return Summary{}, err
	}

	stop := tabu.NewDeadline(cfg.TimeLimit)

	var (
		best            *coloring.State
		bestK           int
		totalIterations int
	)

	for {
		if stop.Expired() {
			break
		}

		result := tabu.Run(current, cfg.Config, stop, tabuRNG)
		totalIterations += result.Iterations

		if !result.Solved {
			break
		}

		best = current
		bestK = current.K

		if cfg.DebugChecks {
			if err := best.ValidateConsistency(); err != nil {
				return Summary{}, err
			}
		}

		if bestK == 1 {
			break
		}

		next, err := coloring.NewWarmStartState(best, warmStartRNG)
		if err != nil {
			break
		}
		current = next
	}

	summary := Summary{
		InitialK:        k0,
		FinalK:          bestK,
		TotalIterations: totalIterations,
		Elapsed:         time.Since(start),
	}
	if best != nil {
		summary.Coloring = append([]int(nil), best.Color...)
	}
	if k0 > 0 {
		summary.DeviationPercent = 100 * float64(k0-bestK) / float64(k0)
	}

	return summary, nil
}
