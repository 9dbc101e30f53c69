package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// LoadInstance parses the instance text format: a first line "n m", followed
// by m lines "a b" with 1-indexed endpoints. Endpoints are converted to
// 0-indexed before NewInstance deduplicates and validates them.
//
// Complexity: O(n + m) time, O(m) space for the raw edge buffer.
func LoadInstance(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}

	nTok, ok := next()
	if !ok {
		return nil, fmt.Errorf("instance: read n: %w", ErrBadHeader)
	}
	mTok, ok := next()
	if !ok {
		return nil, fmt.Errorf("instance: read m: %w", ErrBadHeader)
	}
	n, err := strconv.Atoi(nTok)
	if err != nil {
		return nil, fmt.Errorf("instance: parse n %q: %w", nTok, ErrBadHeader)
	}
	m, err := strconv.Atoi(mTok)
	if err != nil {
		return nil, fmt.Errorf("instance: parse m %q: %w", mTok, ErrBadHeader)
	}
	if m < 0 {
		return nil, fmt.Errorf("instance: negative edge count %d: %w", m, ErrBadHeader)
	}

	rawEdges := make([][2]int, 0, m)
	for i := 0; i < m; i++ {
		aTok, ok := next()
		if !ok {
			return nil, fmt.Errorf("instance: edge %d: %w", i, ErrBadEdgeLine)
		}
		bTok, ok := next()
		if !ok {
			return nil, fmt.Errorf("instance: edge %d: %w", i, ErrBadEdgeLine)
		}
		a, err := strconv.Atoi(aTok)
		if err != nil {
			return nil, fmt.Errorf("instance: edge %d endpoint %q: %w", i, aTok, ErrBadEdgeLine)
		}
		b, err := strconv.Atoi(bTok)
		if err != nil {
			return nil, fmt.Errorf("instance: edge %d endpoint %q: %w", i, bTok, ErrBadEdgeLine)
		}
		// Input is 1-indexed; NewInstance expects 0-indexed.
		rawEdges = append(rawEdges, [2]int{a - 1, b - 1})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: scan instance: %w", err)
	}

	return NewInstance(n, rawEdges)
}
