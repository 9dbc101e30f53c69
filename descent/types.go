package descent

import (
	"time"

	"github.com/mnds/tabueqcol/tabu"
)

// Config holds everything one descent Run needs: the tabu engine's tuning
// parameters plus the run-level seed and time budget.
type Config struct {
	tabu.Config

	// Seed drives every RNG stream this run consumes; the same Seed and
	// Instance reproduce an identical run end to end.
	Seed int64

	// StartK overrides the descent's starting k. Zero means use the
	// Hajnal-Szemerédi default (MaxDegree+1). A caller may pass a larger
	// value to exercise the reduction loop from a known non-minimal k.
	StartK int

	// TimeLimit bounds wall-clock time across the entire descent, not just
	// a single k. Non-positive means no limit.
	TimeLimit time.Duration

	// DebugChecks, when true, runs coloring.State.ValidateConsistency after
	// every solved k and returns its error instead of continuing. Never set
	// on the hot path outside debugging (-debug-checks on the CLI, or tests).
	DebugChecks bool
}

// Validate checks the embedded tabu.Config. Seed, StartK, TimeLimit and
// DebugChecks are not checked here.
func (c Config) Validate() error {
	return c.Config.Validate()
}

// Summary reports the outcome of one descent Run.
type Summary struct {
	// InitialK is the descent's starting k: MaxDegree+1 (the
	// Hajnal-Szemerédi bound) unless Config.StartK overrides it.
	InitialK int

	// FinalK is the smallest k for which a zero-conflict coloring was
	// found before the search stopped.
	FinalK int

	// TotalIterations sums tabu.Result.Iterations across every k attempted.
	TotalIterations int

	// Elapsed is the wall-clock duration of the whole Run call.
	Elapsed time.Duration

	// Coloring is the best feasible color assignment found, indexed by
	// vertex. len(Coloring) == instance.N.
	Coloring []int

	// DeviationPercent is 100*(InitialK-FinalK)/InitialK.
	DeviationPercent float64
}
