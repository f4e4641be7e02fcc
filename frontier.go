package mlcs

import (
	"sort"

	"github.com/pdrpinto/mlcs/internal/lattice"
)

// frontier holds the points of one round ordered by f-score and then by
// heuristic, both ascending, so the most promising point is last. The
// scores are read from the search maps at comparison time.
type frontier struct {
	keys []lattice.Key
	f, h map[lattice.Key]int
}

func newFrontier(f, h map[lattice.Key]int) *frontier {
	return &frontier{f: f, h: h}
}

func (fr *frontier) Len() int { return len(fr.keys) }
func (fr *frontier) Less(i, j int) bool {
	fi, fj := fr.f[fr.keys[i]], fr.f[fr.keys[j]]
	if fi != fj {
		return fi < fj
	}
	return fr.h[fr.keys[i]] < fr.h[fr.keys[j]]
}
func (fr *frontier) Swap(i, j int) { fr.keys[i], fr.keys[j] = fr.keys[j], fr.keys[i] }

func (fr *frontier) push(k lattice.Key) {
	fr.keys = append(fr.keys, k)
}

// reorder sorts the frontier; equal points keep their insertion order.
func (fr *frontier) reorder() {
	sort.Stable(fr)
}

func (fr *frontier) last() lattice.Key {
	return fr.keys[len(fr.keys)-1]
}
