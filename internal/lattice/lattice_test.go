package lattice

import (
	"testing"

	"github.com/pdrpinto/mlcs/internal/tables"
	"github.com/stretchr/testify/require"
)

func instance(inputs ...string) *tables.Instance {
	segs := make([][]string, len(inputs))
	for i, s := range inputs {
		segs[i] = tables.Segment(s, tables.Runes)
	}
	syms, seqs := tables.Intern(segs)
	return tables.Build(syms, seqs)
}

func TestKey(t *testing.T) {
	for _, p := range []Point{
		{0, 1, 2},
		{1 << 20, 7},
		Root(3),
		{},
	} {
		k := p.Key()
		require.Equal(t, len(p), k.Len())
		require.Equal(t, p, k.Point())
		for i := range p {
			require.Equal(t, p[i], k.Component(i))
		}
	}
	require.Equal(t, Point{1, 2}.Key(), Point{1, 2}.Key())
	require.NotEqual(t, Point{1, 2}.Key(), Point{2, 1}.Key())
	require.True(t, Root(2).IsRoot())
	require.False(t, Point{None, 0}.IsRoot())
}

func TestHeuristic(t *testing.T) {
	in := instance("ABC", "AC", "BAC")
	require.Equal(t, 0, Heuristic(in, Root(3)))
	// A matched everywhere: only C can follow.
	require.Equal(t, 1, Heuristic(in, Point{0, 0, 1}))
	// C matched everywhere: nothing follows.
	require.Equal(t, 0, Heuristic(in, Point{2, 1, 2}))
}

func TestStartsAndSuccessors(t *testing.T) {
	in := instance("ABC", "AC", "BAC")
	starts := Starts(in)
	require.Equal(t, []Point{{0, 0, 1}, {2, 1, 2}}, starts)

	require.Equal(t, []Point{{2, 1, 2}}, Successors(in, Point{0, 0, 1}))
	require.Empty(t, Successors(in, Point{2, 1, 2}))

	// From the root, successors and starts agree.
	require.Equal(t, starts, Successors(in, Root(3)))
}

func TestStartsEmpty(t *testing.T) {
	require.Empty(t, Starts(instance("ABC", "DEF")))
	require.Empty(t, Starts(instance("", "ABC")))
}
