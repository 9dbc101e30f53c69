package coloring

import (
	"math/rand"

	"github.com/mnds/tabueqcol/instance"
)

// NewGreedyState builds a fresh equitable k-coloring of inst from scratch.
//
// Vertices are visited in random order. Each vertex is assigned the
// smallest-indexed color that (a) keeps its class within the equity cap for
// this stage of construction and (b) introduces no new conflict with an
// already-colored neighbor; if no such color exists, a uniformly random
// color satisfying only (a) is used, and failing that (every class already
// at its cap — which equity arithmetic makes unreachable for a feasible k)
// the globally smallest class is used as a last resort.
//
// Complexity: O(n*k + m) time, dominated by the per-vertex scan of classes
// and the per-edge conflict bookkeeping.
func NewGreedyState(inst *instance.Instance, k int, rng *rand.Rand) (*State, error) {
	s, err := newEmptyState(inst, k)
	if err != nil {
		return nil, err
	}

	order := rng.Perm(inst.N)
	bigR := 0

	for _, v := range order {
		c := s.pickColorForUncolored(v, bigR, rng)
		s.colorUncoloredVertex(v, c)
		if s.ClassSize[c] == s.BigSize {
			bigR++
		}
	}

	return s, nil
}

// NewWarmStartState builds a k-1 coloring from a feasible k-coloring prev by
// removing one randomly chosen color class, remapping the remaining classes
// down to [0,k-1), and greedily re-inserting the orphaned vertices.
//
// Conflict bookkeeping for vertices that keep their (remapped) color is
// inherited from prev unchanged; the objective is corrected for edges that
// were internal to the removed class by subtracting exactly once per edge
// (scanning only the u > v direction to avoid double subtraction), then
// incrementally re-accumulated as orphans are colored.
func NewWarmStartState(prev *State, rng *rand.Rand) (*State, error) {
	targetK := prev.K - 1
	s, err := newEmptyState(prev.Inst, targetK)
	if err != nil {
		return nil, err
	}

	perm := rng.Perm(prev.K)
	removedColor := perm[prev.K-1]

	colorMap := make([]int, prev.K)
	for i := range colorMap {
		colorMap[i] = -1
	}
	next := 0
	for i := 0; i < prev.K-1; i++ {
		colorMap[perm[i]] = next
		next++
	}

	orphans := make([]int, 0, s.Inst.N/prev.K+1)
	for v := 0; v < s.Inst.N; v++ {
		oldC := prev.Color[v]
		if oldC == removedColor {
			orphans = append(orphans, v)
			continue
		}
		newC := colorMap[oldC]
		s.Color[v] = newC
		s.ClassSize[newC]++
	}

	s.Obj = prev.Obj
	for v := 0; v < s.Inst.N; v++ {
		if prev.Color[v] != removedColor {
			s.Conflicts[v] = prev.Conflicts[v]
			if s.Conflicts[v] > 0 {
				s.ConflictingIndex[v] = len(s.ConflictingVertices)
				s.ConflictingVertices = append(s.ConflictingVertices, v)
			}
			continue
		}
		if prev.Conflicts[v] > 0 {
			for _, u := range s.Inst.Adj[v] {
				if u > v && prev.Color[u] == removedColor {
					s.Obj--
				}
			}
		}
	}

	bigR := 0
	for c := 0; c < s.K; c++ {
		if s.ClassSize[c] >= s.BigSize {
			bigR++
		}
	}

	rng.Shuffle(len(orphans), func(i, j int) { orphans[i], orphans[j] = orphans[j], orphans[i] })
	for _, v := range orphans {
		c := s.pickColorForUncolored(v, bigR, rng)
		s.colorUncoloredVertex(v, c)
		if s.ClassSize[c] == s.BigSize {
			bigR++
		}
	}

	return s, nil
}

// pickColorForUncolored chooses a color for vertex v during construction,
// given that bigR classes have already reached BigSize. v must not yet be
// colored; no side effects.
func (s *State) pickColorForUncolored(v int, bigR int, rng *rand.Rand) int {
	ceiling := s.FloorSize
	if bigR < s.R {
		ceiling = s.BigSize
	}

	candidates := make([]int, 0, s.K)
	for c := 0; c < s.K; c++ {
		if s.ClassSize[c] <= ceiling-1 {
			candidates = append(candidates, c)
		}
	}

	for _, c := range candidates {
		conflictFree := true
		for _, u := range s.Inst.Adj[v] {
			if s.Color[u] == c {
				conflictFree = false
				break
			}
		}
		if conflictFree {
			return c
		}
	}

	if len(candidates) > 0 {
		return candidates[rng.Intn(len(candidates))]
	}

	smallest := 0
	for c := 1; c < s.K; c++ {
		if s.ClassSize[c] < s.ClassSize[smallest] {
			smallest = c
		}
	}
	return smallest
}

// colorUncoloredVertex assigns c to v, updates ClassSize, and accounts for
// any new conflicts this creates with v's already-colored neighbors.
func (s *State) colorUncoloredVertex(v, c int) {
	s.Color[v] = c
	s.ClassSize[c]++

	for _, u := range s.Inst.Adj[v] {
		if s.Color[u] == c {
			s.Obj++
			s.Conflicts[v]++
			s.Conflicts[u]++
			s.updateConflictStatus(v)
			s.updateConflictStatus(u)
		}
	}
}
