package coloring

import "github.com/mnds/tabueqcol/instance"

// State is a mutable k-coloring of inst with incrementally maintained
// conflict metadata.
//
// Invariants (hold whenever the state is observable, i.e. between calls):
//  1. ClassSize[c] == |{v : Color[v] == c}|.
//  2. Conflicts[v] == |{u in Adj(v) : Color[u] == Color[v]}|.
//  3. Obj == (1/2) * sum(Conflicts), i.e. the count of monochromatic edges.
//  4. v is in ConflictingVertices iff Conflicts[v] > 0; ConflictingIndex is
//     its inverse, -1 when absent.
//  5. Equity: every ClassSize[c] is FloorSize or BigSize, and exactly R
//     classes have size BigSize.
//  6. Obj == 0 iff the coloring is a proper equitable K-coloring.
type State struct {
	// Inst is the shared, never-mutated graph this coloring is defined over.
	Inst *instance.Instance

	// K is the number of color classes.
	K int

	// Color[v] is the class of vertex v, or -1 while v is still uncolored
	// during construction.
	Color []int

	// ClassSize[c] is the number of vertices currently assigned color c.
	ClassSize []int

	// Conflicts[v] is the number of neighbors of v sharing v's color.
	Conflicts []int

	// ConflictingVertices lists every v with Conflicts[v] > 0, compactly
	// (no gaps), maintained under swap-with-last removal.
	ConflictingVertices []int

	// ConflictingIndex[v] is v's position in ConflictingVertices, or -1.
	ConflictingIndex []int

	// Obj is the total number of monochromatic edges (one count per edge).
	Obj int

	// FloorSize = n/k, BigSize = FloorSize+1, R = n - k*FloorSize is the
	// target number of size-BigSize classes.
	FloorSize int
	BigSize   int
	R         int
}

// newEmptyState allocates a State for inst at k colors, with every vertex
// uncolored. Shared by NewGreedyState and NewWarmStartState.
func newEmptyState(inst *instance.Instance, k int) (*State, error) {
	if k <= 0 || k > inst.N {
		return nil, ErrInfeasibleK
	}

	n := inst.N
	s := &State{
		Inst:                 inst,
		K:                    k,
		Color:                make([]int, n),
		ClassSize:            make([]int, k),
		Conflicts:            make([]int, n),
		ConflictingVertices:  make([]int, 0, n),
		ConflictingIndex:     make([]int, n),
		FloorSize:            n / k,
	}
	s.BigSize = s.FloorSize + 1
	s.R = n - k*s.FloorSize
	for v := 0; v < n; v++ {
		s.Color[v] = -1
		s.ConflictingIndex[v] = -1
	}

	return s, nil
}

// Clone returns a full value copy of s. The Instance is shared by pointer;
// every other field is a fresh slice, so mutating the clone never affects s.
//
// Complexity: O(n+k) time and space.
func (s *State) Clone() *State {
	out := &State{
		Inst:      s.Inst,
		K:         s.K,
		FloorSize: s.FloorSize,
		BigSize:   s.BigSize,
		R:         s.R,
		Obj:       s.Obj,
	}
	out.Color = append([]int(nil), s.Color...)
	out.ClassSize = append([]int(nil), s.ClassSize...)
	out.Conflicts = append([]int(nil), s.Conflicts...)
	out.ConflictingVertices = append([]int(nil), s.ConflictingVertices...)
	out.ConflictingIndex = append([]int(nil), s.ConflictingIndex...)

	return out
}
