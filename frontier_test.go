package mlcs

import (
	"testing"

	"github.com/pdrpinto/mlcs/internal/lattice"
	"github.com/stretchr/testify/require"
)

func TestFrontierOrder(t *testing.T) {
	key := func(c int32) lattice.Key { return lattice.Point{c}.Key() }
	f := map[lattice.Key]int{key(0): 3, key(1): 2, key(2): 3, key(3): 2, key(4): 3}
	h := map[lattice.Key]int{key(0): 1, key(1): 0, key(2): 0, key(3): 0, key(4): 1}

	fr := newFrontier(f, h)
	for c := int32(0); c < 5; c++ {
		fr.push(key(c))
	}
	fr.reorder()

	var got []int32
	for _, k := range fr.keys {
		got = append(got, k.Component(0))
	}
	// f ascending, then h ascending, then insertion order.
	require.Equal(t, []int32{1, 3, 2, 0, 4}, got)
	require.Equal(t, key(4), fr.last())
}
