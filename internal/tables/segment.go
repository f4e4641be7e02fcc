package tables

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/rivo/uniseg"
)

// Segmentation selects what counts as one logical character.
type Segmentation int

const (
	// Runes treats every Unicode scalar value as a character.
	Runes Segmentation = iota
	// Graphemes treats every extended grapheme cluster as a character.
	Graphemes
)

func (s Segmentation) String() string {
	switch s {
	case Runes:
		return "runes"
	case Graphemes:
		return "graphemes"
	}
	return fmt.Sprintf("Segmentation(%d)", int(s))
}

// Valid reports whether s is a known segmentation mode.
func (s Segmentation) Valid() bool {
	return s == Runes || s == Graphemes
}

// Segment splits s into logical characters.
func Segment(s string, mode Segmentation) []string {
	if mode == Graphemes {
		out := make([]string, 0, len(s))
		gr := uniseg.NewGraphemes(s)
		for gr.Next() {
			out = append(out, gr.Str())
		}
		return out
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Symbols is the interned set of every character seen in the inputs.
// Ids are dense and follow the byte order of the characters, which for
// single runes is code point order.
type Symbols struct {
	values []string
	ids    map[string]int32
}

// Intern assigns ids to the characters of every input and returns the
// inputs rewritten as id sequences.
func Intern(inputs [][]string) (*Symbols, [][]int32) {
	universe := treeset.NewWith(utils.StringComparator)
	for _, in := range inputs {
		for _, c := range in {
			universe.Add(c)
		}
	}
	syms := &Symbols{
		values: make([]string, 0, universe.Size()),
		ids:    make(map[string]int32, universe.Size()),
	}
	for _, v := range universe.Values() {
		c := v.(string)
		syms.ids[c] = int32(len(syms.values))
		syms.values = append(syms.values, c)
	}
	seqs := make([][]int32, len(inputs))
	for i, in := range inputs {
		seq := make([]int32, len(in))
		for j, c := range in {
			seq[j] = syms.ids[c]
		}
		seqs[i] = seq
	}
	return syms, seqs
}

// Len returns the number of distinct characters.
func (s *Symbols) Len() int { return len(s.values) }

// String returns the character for id.
func (s *Symbols) String(id int32) string { return s.values[id] }

// ID returns the id of c, if c was seen.
func (s *Symbols) ID(c string) (int32, bool) {
	id, ok := s.ids[c]
	return id, ok
}
