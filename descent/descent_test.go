package descent_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnds/tabueqcol/descent"
	"github.com/mnds/tabueqcol/instance"
	"github.com/mnds/tabueqcol/tabu"
)

func defaultConfig(seed int64) descent.Config {
	return descent.Config{
		Config: tabu.Config{
			MaxIter:              5000,
			Alpha:                0.6,
			Beta:                 10,
			Aspiration:           true,
			PerturbationLimit:    200,
			PerturbationStrength: 0.16,
		},
		Seed:      seed,
		TimeLimit: 5 * time.Second,
	}
}

func mustInstance(t *testing.T, n int, edges [][2]int) *instance.Instance {
	t.Helper()
	inst, err := instance.NewInstance(n, edges)
	require.NoError(t, err)
	return inst
}

func assertValidEquitableColoring(t *testing.T, inst *instance.Instance, color []int, k int) {
	t.Helper()
	require.Len(t, color, inst.N)

	sizes := make([]int, k)
	for v, c := range color {
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, k)
		sizes[c]++
		for _, u := range inst.Adj[v] {
			assert.NotEqual(t, color[v], color[u], "vertices %d and %d conflict", v, u)
		}
	}

	floor := inst.N / k
	big := floor + 1
	for c, size := range sizes {
		assert.Containsf(t, []int{floor, big}, size, "class %d size %d breaks equity", c, size)
	}
}

func TestRun_E1_CompleteGraphK4(t *testing.T) {
	inst := mustInstance(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	cfg := defaultConfig(1)
	cfg.StartK = 4
	summary, err := descent.Run(inst, cfg)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.FinalK)
	assertValidEquitableColoring(t, inst, summary.Coloring, summary.FinalK)
}

func TestRun_E2_FiveCycle(t *testing.T) {
	inst := mustInstance(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	cfg := defaultConfig(2)
	cfg.StartK = 3
	summary, err := descent.Run(inst, cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.FinalK)
	assertValidEquitableColoring(t, inst, summary.Coloring, summary.FinalK)
}

func TestRun_E3_PathOnFour(t *testing.T) {
	inst := mustInstance(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	cfg := defaultConfig(3)
	cfg.StartK = 3
	summary, err := descent.Run(inst, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.FinalK)
	assertValidEquitableColoring(t, inst, summary.Coloring, summary.FinalK)
}

func TestRun_E4_Triangle(t *testing.T) {
	inst := mustInstance(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	cfg := defaultConfig(4)
	cfg.StartK = 3
	summary, err := descent.Run(inst, cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.FinalK)
	assertValidEquitableColoring(t, inst, summary.Coloring, summary.FinalK)
}

func TestRun_E5_TwoDisjointEdges(t *testing.T) {
	inst := mustInstance(t, 4, [][2]int{{0, 1}, {2, 3}})
	cfg := defaultConfig(5)
	cfg.StartK = 3
	summary, err := descent.Run(inst, cfg)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.FinalK)
	assertValidEquitableColoring(t, inst, summary.Coloring, summary.FinalK)
}

func TestRun_E6_PlantedFivePartitionWithSpanningClique(t *testing.T) {
	const n = 50
	const parts = 5
	partOf := make([]int, n)
	for v := 0; v < n; v++ {
		partOf[v] = v % parts
	}

	seen := make(map[[2]int]bool)
	var edges [][2]int
	addEdge := func(a, b int) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		if seen[[2]int{a, b}] {
			return
		}
		seen[[2]int{a, b}] = true
		edges = append(edges, [2]int{a, b})
	}

	// Deterministic pseudo-random edges at density ~0.3 within G(50,0.3),
	// generated with a fixed linear congruential sequence so the fixture
	// needs no RNG import.
	state := uint64(42)
	nextFloat := func() float64 {
		state = state*6364136223846793005 + 1442695040888963407
		return float64(state>>11) / float64(1<<53)
	}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if partOf[a] != partOf[b] && nextFloat() < 0.3 {
				addEdge(a, b)
			}
		}
	}

	// Plant a 5-clique with one representative vertex per part, spanning
	// all parts so the equitable chromatic number cannot drop below 5.
	reps := make([]int, parts)
	for p := 0; p < parts; p++ {
		reps[p] = p
	}
	for i := 0; i < parts; i++ {
		for j := i + 1; j < parts; j++ {
			addEdge(reps[i], reps[j])
		}
	}

	inst := mustInstance(t, n, edges)
	summary, err := descent.Run(inst, defaultConfig(42))
	require.NoError(t, err)

	assert.Equal(t, 5, summary.FinalK)
	assertValidEquitableColoring(t, inst, summary.Coloring, summary.FinalK)
}

func TestRun_EmptyGraphStartsAndEndsAtOne(t *testing.T) {
	inst := mustInstance(t, 6, nil)
	summary, err := descent.Run(inst, defaultConfig(6))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.InitialK)
	assert.Equal(t, 1, summary.FinalK)
	assert.Equal(t, 0.0, summary.DeviationPercent)
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	inst := mustInstance(t, 3, [][2]int{{0, 1}})
	cfg := defaultConfig(1)
	cfg.MaxIter = 0

	_, err := descent.Run(inst, cfg)
	assert.ErrorIs(t, err, tabu.ErrNonPositiveMaxIter)
}

func TestRun_DeterministicGivenSameSeed(t *testing.T) {
	inst := mustInstance(t, 10, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 0},
	})

	s1, err := descent.Run(inst, defaultConfig(99))
	require.NoError(t, err)
	s2, err := descent.Run(inst, defaultConfig(99))
	require.NoError(t, err)

	assert.Equal(t, s1.FinalK, s2.FinalK)
	assert.Equal(t, s1.Coloring, s2.Coloring)
	assert.Equal(t, s1.TotalIterations, s2.TotalIterations)
}
