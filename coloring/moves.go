package coloring

// MoveDelta returns the change in Obj that would result from moving v from
// its current color to newC, without mutating s.
//
// Complexity: O(deg(v)).
func (s *State) MoveDelta(v, newC int) int {
	oldC := s.Color[v]
	delta := 0
	for _, u := range s.Inst.Adj[v] {
		cu := s.Color[u]
		switch cu {
		case oldC:
			delta--
		case newC:
			delta++
		}
	}
	return delta
}

// SwapDelta returns the change in Obj that would result from exchanging the
// colors of v and u, without mutating s. v and u must not currently share a
// color; SwapDelta returns ErrSameColor otherwise.
//
// Complexity: O(deg(v) + deg(u)).
func (s *State) SwapDelta(v, u int) (int, error) {
	cv, cu := s.Color[v], s.Color[u]
	if cv == cu {
		return 0, ErrSameColor
	}

	delta := 0
	for _, w := range s.Inst.Adj[v] {
		if w == u {
			continue
		}
		cw := s.Color[w]
		switch cw {
		case cv:
			delta--
		case cu:
			delta++
		}
	}
	for _, w := range s.Inst.Adj[u] {
		if w == v {
			continue
		}
		cw := s.Color[w]
		switch cw {
		case cu:
			delta--
		case cv:
			delta++
		}
	}

	return delta, nil
}

// ApplyMove moves v to newC, updating ClassSize, Conflicts, Obj, and the
// conflicting-vertex bookkeeping in place. Resolved conflicts (v's old
// color) are retired before new ones (newC) are accounted, matching the
// two-pass scan that keeps each edge counted exactly once.
//
// Complexity: O(deg(v)).
func (s *State) ApplyMove(v, newC int) {
	oldC := s.Color[v]
	s.Color[v] = newC
	s.ClassSize[oldC]--
	s.ClassSize[newC]++

	for _, u := range s.Inst.Adj[v] {
		if s.Color[u] == oldC {
			s.Obj--
			s.Conflicts[v]--
			s.updateConflictStatus(v)
			s.Conflicts[u]--
			s.updateConflictStatus(u)
		}
	}

	for _, u := range s.Inst.Adj[v] {
		if s.Color[u] == newC {
			s.Obj++
			s.Conflicts[v]++
			s.updateConflictStatus(v)
			s.Conflicts[u]++
			s.updateConflictStatus(u)
		}
	}
}

// ApplySwap exchanges the colors of v and u via two sequential ApplyMove
// calls. v and u must not currently share a color.
//
// Complexity: O(deg(v) + deg(u)).
func (s *State) ApplySwap(v, u int) error {
	cv, cu := s.Color[v], s.Color[u]
	if cv == cu {
		return ErrSameColor
	}

	s.ApplyMove(v, cu)
	s.ApplyMove(u, cv)
	return nil
}

// updateConflictStatus keeps ConflictingVertices/ConflictingIndex in sync
// with Conflicts[x] after a counter change. O(1) via swap-with-last removal.
func (s *State) updateConflictStatus(x int) {
	if s.Conflicts[x] > 0 {
		if s.ConflictingIndex[x] == -1 {
			s.ConflictingIndex[x] = len(s.ConflictingVertices)
			s.ConflictingVertices = append(s.ConflictingVertices, x)
		}
		return
	}

	idx := s.ConflictingIndex[x]
	if idx == -1 {
		return
	}
	last := len(s.ConflictingVertices) - 1
	lastVal := s.ConflictingVertices[last]
	s.ConflictingVertices[idx] = lastVal
	s.ConflictingIndex[lastVal] = idx
	s.ConflictingVertices = s.ConflictingVertices[:last]
	s.ConflictingIndex[x] = -1
}
