// Package lattice models the search space of the MLCS search: points are
// tuples of per-input positions and edges lead to the next common match.
package lattice

import (
	"encoding/binary"

	"github.com/pdrpinto/mlcs/internal/tables"
)

// None is the component value of the root point.
const None = tables.None

// Point holds one position per input.
type Point []int32

// Root returns the synthetic start point for d inputs.
func Root(d int) Point {
	p := make(Point, d)
	for i := range p {
		p[i] = None
	}
	return p
}

// IsRoot reports whether every component of p is None.
func (p Point) IsRoot() bool {
	for _, c := range p {
		if c != None {
			return false
		}
	}
	return true
}

// Key packs p into a comparable value.
func (p Point) Key() Key {
	buf := make([]byte, 0, 4*len(p))
	for _, c := range p {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(c))
	}
	return Key(buf)
}

// Key is the packed form of a Point, usable as a map key.
type Key string

// Len returns the number of components.
func (k Key) Len() int { return len(k) / 4 }

// Component returns the i'th component without decoding the whole point.
func (k Key) Component(i int) int32 {
	j := 4 * i
	return int32(uint32(k[j]) | uint32(k[j+1])<<8 | uint32(k[j+2])<<16 | uint32(k[j+3])<<24)
}

// Point unpacks k.
func (k Key) Point() Point {
	p := make(Point, k.Len())
	for i := range p {
		p[i] = k.Component(i)
	}
	return p
}

// Heuristic bounds how many more characters can follow p: the smallest
// pairwise suffix score over all ordered pairs of inputs. Pairs touching a
// None component are skipped, so the root scores 0.
func Heuristic(in *tables.Instance, p Point) int {
	best, seen := int32(0), false
	for i := range p {
		if p[i] == None {
			continue
		}
		for j := range p {
			if i == j || p[j] == None {
				continue
			}
			s := in.Score(i, j, p[i], p[j])
			if !seen || s < best {
				best, seen = s, true
			}
		}
	}
	return int(best)
}

// Successors returns, in alphabet order, the point reached from p by
// matching each alphabet character once more in every input. Characters
// missing from the remainder of some input contribute nothing.
func Successors(in *tables.Instance, p Point) []Point {
	var out []Point
	for a := range in.Alphabet() {
		if q, ok := successor(in, a, p); ok {
			out = append(out, q)
		}
	}
	return out
}

func successor(in *tables.Instance, a int, p Point) (Point, bool) {
	q := make(Point, len(p))
	for i, c := range p {
		next, ok := in.Next(a, i, c+1)
		if !ok {
			return nil, false
		}
		q[i] = next
	}
	return q, true
}

// Starts returns the first match of every alphabet character, the
// successors of the root.
func Starts(in *tables.Instance) []Point {
	out := make([]Point, 0, len(in.Alphabet()))
	for a := range in.Alphabet() {
		q := make(Point, in.D())
		for i := range q {
			q[i], _ = in.Next(a, i, 0)
		}
		out = append(out, q)
	}
	return out
}
