package instance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnds/tabueqcol/instance"
)

func TestNewInstance_Basic(t *testing.T) {
	inst, err := instance.NewInstance(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)
	assert.Equal(t, 4, inst.N)
	assert.Len(t, inst.Edges, 4)
	assert.Equal(t, 2, inst.MaxDegree)
	for v := 0; v < 4; v++ {
		assert.Equal(t, 2, inst.Degree[v])
	}
}

func TestNewInstance_DeduplicatesEdges(t *testing.T) {
	inst, err := instance.NewInstance(3, [][2]int{{0, 1}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Len(t, inst.Edges, 1)
	assert.Equal(t, 1, inst.Degree[0])
	assert.Equal(t, 1, inst.Degree[1])
	assert.Equal(t, 0, inst.Degree[2])
}

func TestNewInstance_RejectsSelfLoop(t *testing.T) {
	_, err := instance.NewInstance(3, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, instance.ErrSelfLoop)
}

func TestNewInstance_RejectsVertexRange(t *testing.T) {
	_, err := instance.NewInstance(3, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, instance.ErrVertexRange)

	_, err = instance.NewInstance(3, [][2]int{{-1, 0}})
	assert.ErrorIs(t, err, instance.ErrVertexRange)
}

func TestNewInstance_RejectsEmpty(t *testing.T) {
	_, err := instance.NewInstance(0, nil)
	assert.ErrorIs(t, err, instance.ErrEmptyInstance)

	_, err = instance.NewInstance(-2, nil)
	assert.ErrorIs(t, err, instance.ErrEmptyInstance)
}

func TestNewInstance_EmptyEdgeSet(t *testing.T) {
	inst, err := instance.NewInstance(5, nil)
	require.NoError(t, err)
	assert.Empty(t, inst.Edges)
	assert.Equal(t, 0, inst.MaxDegree)
}

func TestLoadInstance_ParsesAndConvertsToZeroIndexed(t *testing.T) {
	src := "4 4\n1 2\n2 3\n3 4\n4 1\n"
	inst, err := instance.LoadInstance(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 4, inst.N)
	assert.Len(t, inst.Edges, 4)
	assert.Contains(t, inst.Edges, [2]int{0, 1})
	assert.Contains(t, inst.Edges, [2]int{0, 3})
}

func TestLoadInstance_RejectsSelfLoopAfterConversion(t *testing.T) {
	src := "2 1\n1 1\n"
	_, err := instance.LoadInstance(strings.NewReader(src))
	assert.ErrorIs(t, err, instance.ErrSelfLoop)
}

func TestLoadInstance_BadHeader(t *testing.T) {
	_, err := instance.LoadInstance(strings.NewReader("not-a-number 3\n"))
	assert.ErrorIs(t, err, instance.ErrBadHeader)

	_, err = instance.LoadInstance(strings.NewReader(""))
	assert.ErrorIs(t, err, instance.ErrBadHeader)
}

func TestLoadInstance_TruncatedEdgeLine(t *testing.T) {
	_, err := instance.LoadInstance(strings.NewReader("2 1\n1\n"))
	assert.ErrorIs(t, err, instance.ErrBadEdgeLine)
}
