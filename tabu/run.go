package tabu

import (
	"math"
	"math/rand"

	"github.com/mnds/tabueqcol/coloring"
)

// moveKind distinguishes the two neighborhoods Run searches.
type moveKind int

const (
	moveTransfer moveKind = iota
	moveSwap
)

// candidate is one best-improvement tie-pool entry: a transfer of v to
// target (a color), or a swap of v with target (a vertex).
type candidate struct {
	kind   moveKind
	v      int
	target int
}

// candidateDelta pairs a candidate with the signed change to state.Obj it
// would cause if applied.
type candidateDelta struct {
	candidate
	delta int
}

// Run searches for a zero-conflict coloring of state by best-improvement
// tabu search over the transfer and exchange neighborhoods, stopping when
// state.Obj reaches zero, cfg.MaxIter iterations elapse, stop expires, or
// the neighborhood empties out with no admissible move. state is mutated in
// place; callers that want to keep the pre-Run state should Clone first.
//
// Transfer moves a conflicting vertex out of a class at BigSize into one at
// FloorSize, and are only ever available when n mod k != 0. Exchange moves
// swap the colors of two vertices, at least one of which is conflicting,
// and the candidate with the higher color index is skipped when both
// endpoints are conflicting to avoid considering the same unordered pair
// twice. Both neighborhoods are filtered by a tabu table (keyed on the
// vertex/color pair the move would place off-limits) unless the candidate's
// resulting objective would beat the best objective seen this Run and
// cfg.Aspiration is set.
func Run(state *coloring.State, cfg Config, stop StopCriterion, rng *rand.Rand) Result {
	result := Result{FinalObj: state.Obj}
	if state.Obj == 0 {
		result.Solved = true
		return result
	}

	table := NewTable(state.Inst.N, state.K)
	bestObj := state.Obj
	noImprove := 0
	canTransfer := state.Inst.N%state.K != 0

	iter := 0
	for iter < cfg.MaxIter && state.Obj > 0 {
		if iter%128 == 0 && stop.Expired() {
			break
		}

		if noImprove >= cfg.PerturbationLimit && cfg.PerturbationStrength > 0 {
			perturb(state, cfg.PerturbationStrength, rng)
			table.Reset()
			noImprove = 0
			iter++
			continue
		}

		var candidates []candidate
		bestDelta := math.MaxInt

		if canTransfer {
			for _, cd := range enumerateTransferCandidates(state, table, iter, cfg, bestObj) {
				candidates, bestDelta = admit(candidates, bestDelta, cd.delta, cd.candidate)
			}
		}

		for _, cd := range enumerateSwapCandidates(state, table, iter, cfg, bestObj) {
			candidates, bestDelta = admit(candidates, bestDelta, cd.delta, cd.candidate)
		}

		if len(candidates) == 0 {
			break
		}
		chosen := candidates[rng.Intn(len(candidates))]

		tenure := int(cfg.Alpha*float64(len(state.ConflictingVertices))) + rng.Intn(cfg.Beta+1)

		switch chosen.kind {
		case moveTransfer:
			oldC := state.Color[chosen.v]
			state.ApplyMove(chosen.v, chosen.target)
			table.Forbid(chosen.v, oldC, iter+tenure)
		case moveSwap:
			v, u := chosen.v, chosen.target
			cv, cu := state.Color[v], state.Color[u]
			if err := state.ApplySwap(v, u); err != nil {
				break
			}
			table.Forbid(v, cv, iter+tenure)
			table.Forbid(u, cu, iter+tenure)
		}

		if state.Obj < bestObj {
			bestObj = state.Obj
			noImprove = 0
		} else {
			noImprove++
		}

		iter++
	}

	result.Iterations = iter
	result.FinalObj = state.Obj
	result.Solved = state.Obj == 0
	return result
}

// enumerateTransferCandidates lists every admissible transfer of a
// conflicting vertex out of a BigSize class into a FloorSize class, filtered
// by the tabu table unless aspiration applies.
func enumerateTransferCandidates(state *coloring.State, table *Table, iter int, cfg Config, bestObj int) []candidateDelta {
	var out []candidateDelta
	for _, v := range state.ConflictingVertices {
		cv := state.Color[v]
		if state.ClassSize[cv] != state.BigSize {
			continue
		}
		for j := 0; j < state.K; j++ {
			if state.ClassSize[j] != state.FloorSize {
				continue
			}
			delta := state.MoveDelta(v, j)
			aspires := cfg.Aspiration && state.Obj+delta < bestObj
			if table.IsTabu(v, j, iter) && !aspires {
				continue
			}
			out = append(out, candidateDelta{candidate{moveTransfer, v, j}, delta})
		}
	}
	return out
}

// enumerateSwapCandidates lists every admissible swap between a conflicting
// vertex and any other differently-colored vertex, filtered by the tabu
// table unless aspiration applies. Each unordered pair {v,u} is considered
// at most once: when both endpoints are conflicting, the candidate with the
// higher color index is skipped, so the pair surfaces only from the higher-
// colored endpoint's iteration.
func enumerateSwapCandidates(state *coloring.State, table *Table, iter int, cfg Config, bestObj int) []candidateDelta {
	var out []candidateDelta
	for _, v := range state.ConflictingVertices {
		cv := state.Color[v]
		for u := 0; u < state.Inst.N; u++ {
			if u == v {
				continue
			}
			cu := state.Color[u]
			if cu == cv {
				continue
			}
			if state.Conflicts[u] > 0 && cu > cv {
				continue
			}
			delta, err := state.SwapDelta(v, u)
			if err != nil {
				continue
			}
			aspires := cfg.Aspiration && state.Obj+delta < bestObj
			isTabu := table.IsTabu(v, cu, iter) || table.IsTabu(u, cv, iter)
			if isTabu && !aspires {
				continue
			}
			out = append(out, candidateDelta{candidate{moveSwap, v, u}, delta})
		}
	}
	return out
}

// admit folds one evaluated candidate into the best-improvement tie pool:
// candidates strictly better than bestDelta replace the pool, candidates
// equal to it extend the pool, and worse candidates are dropped.
func admit(pool []candidate, bestDelta, delta int, c candidate) ([]candidate, int) {
	switch {
	case delta < bestDelta:
		return []candidate{c}, delta
	case delta == bestDelta:
		return append(pool, c), bestDelta
	default:
		return pool, bestDelta
	}
}

// perturb applies floor(n*strength) random swaps between distinctly colored
// vertices, used to diversify the search after PerturbationLimit iterations
// without improvement.
func perturb(state *coloring.State, strength float64, rng *rand.Rand) {
	if state.K < 2 {
		return
	}
	n := state.Inst.N
	rounds := int(float64(n) * strength)
	for applied := 0; applied < rounds; {
		v1 := rng.Intn(n)
		v2 := rng.Intn(n)
		if state.Color[v1] != state.Color[v2] {
			_ = state.ApplySwap(v1, v2)
			applied++
		}
	}
}
