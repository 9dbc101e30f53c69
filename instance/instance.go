package instance

// Instance is an immutable undirected simple graph: vertex count, a
// deduplicated edge list, adjacency, and per-vertex degree. It is built once
// by NewInstance or LoadInstance and never mutated afterward; coloring.State
// holds a *Instance and only ever reads it.
type Instance struct {
	// N is the number of vertices, indexed 0..N-1.
	N int

	// Edges holds each deduplicated, undirected edge exactly once, as [2]int{u,v}
	// with u<v. len(Edges) is the edge count.
	Edges [][2]int

	// Adj holds the neighbor list of each vertex, built from Edges.
	Adj [][]int

	// Degree holds the degree of each vertex, Degree[v] == len(Adj[v]).
	Degree []int

	// MaxDegree is max(Degree), the Δ(G) used to seed k0 = Δ(G)+1.
	MaxDegree int
}

// NewInstance builds an Instance from a vertex count and a raw edge list.
// Edges are treated as unordered pairs; duplicates (in either order) are
// merged and self-loops are rejected: a self-loop can never be properly
// colored, and duplicate edges must not inflate conflict counts.
//
// Complexity: O(n + m) expected (dedup via a map), one pass to build
// adjacency and degrees.
func NewInstance(n int, rawEdges [][2]int) (*Instance, error) {
	if n <= 0 {
		return nil, ErrEmptyInstance
	}

	seen := make(map[[2]int]struct{}, len(rawEdges))
	edges := make([][2]int, 0, len(rawEdges))
	for _, e := range rawEdges {
		a, b := e[0], e[1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return nil, ErrVertexRange
		}
		if a == b {
			return nil, ErrSelfLoop
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		edges = append(edges, key)
	}

	inst := &Instance{
		N:      n,
		Edges:  edges,
		Adj:    make([][]int, n),
		Degree: make([]int, n),
	}
	for _, e := range edges {
		a, b := e[0], e[1]
		inst.Adj[a] = append(inst.Adj[a], b)
		inst.Adj[b] = append(inst.Adj[b], a)
		inst.Degree[a]++
		inst.Degree[b]++
		if inst.Degree[a] > inst.MaxDegree {
			inst.MaxDegree = inst.Degree[a]
		}
		if inst.Degree[b] > inst.MaxDegree {
			inst.MaxDegree = inst.Degree[b]
		}
	}

	return inst, nil
}
