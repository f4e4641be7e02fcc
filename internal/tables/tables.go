// Package tables holds the per-instance lookup tables built once before a
// search: the common alphabet, the next-occurrence table and the pairwise
// suffix scores.
package tables

import (
	"slices"
	"strings"
)

// None marks a position that does not exist.
const None int32 = -1

// Instance is the immutable preprocessing of one set of inputs. It is
// safe for concurrent readers.
type Instance struct {
	symbols  *Symbols
	seqs     [][]int32
	alphabet []int32
	// next[a][i][k] is the first index >= k of alphabet[a] in seqs[i].
	// Each row has len(seqs[i])+1 entries, the last always None.
	next [][][]int32
	// scores[i*d+j] compares seqs[i] against seqs[j].
	scores []matrix
}

// Build preprocesses the interned inputs.
func Build(symbols *Symbols, seqs [][]int32) *Instance {
	candidates := candidateAlphabet(seqs)
	alphabet, next := nextOccurrences(seqs, candidates)
	return &Instance{
		symbols:  symbols,
		seqs:     seqs,
		alphabet: alphabet,
		next:     next,
		scores:   pairScores(seqs),
	}
}

// candidateAlphabet returns the sorted distinct characters of the first
// shortest input.
func candidateAlphabet(seqs [][]int32) []int32 {
	if len(seqs) == 0 {
		return nil
	}
	shortest := seqs[0]
	for _, s := range seqs[1:] {
		if len(s) < len(shortest) {
			shortest = s
		}
	}
	alphabet := slices.Clone(shortest)
	slices.Sort(alphabet)
	return slices.Compact(alphabet)
}

// nextOccurrences scans every input backwards once per candidate and
// keeps only the candidates found in all inputs.
func nextOccurrences(seqs [][]int32, candidates []int32) ([]int32, [][][]int32) {
	alphabet := make([]int32, 0, len(candidates))
	next := make([][][]int32, 0, len(candidates))
candidate:
	for _, c := range candidates {
		rows := make([][]int32, len(seqs))
		for i, s := range seqs {
			row := make([]int32, len(s)+1)
			last := None
			row[len(s)] = None
			for k := len(s) - 1; k >= 0; k-- {
				if s[k] == c {
					last = int32(k)
				}
				row[k] = last
			}
			if last == None {
				continue candidate
			}
			rows[i] = row
		}
		alphabet = append(alphabet, c)
		next = append(next, rows)
	}
	return alphabet, next
}

func pairScores(seqs [][]int32) []matrix {
	out := make([]matrix, 0, len(seqs)*len(seqs))
	for _, s1 := range seqs {
		for _, s2 := range seqs {
			out = append(out, scoreMatrix(s1, s2))
		}
	}
	return out
}

// D returns the number of inputs.
func (in *Instance) D() int { return len(in.seqs) }

// Len returns the length of input i in characters.
func (in *Instance) Len(i int) int { return len(in.seqs[i]) }

// Alphabet returns the ids of the characters common to all inputs in
// ascending order. The slice must not be modified.
func (in *Instance) Alphabet() []int32 { return in.alphabet }

// Next returns the first index >= pos at which the a'th alphabet character
// occurs in input i.
func (in *Instance) Next(a, i int, pos int32) (int32, bool) {
	row := in.next[a][i]
	if pos < 0 || int(pos) >= len(row) {
		return None, false
	}
	v := row[pos]
	return v, v != None
}

// Score returns the suffix score of inputs i and j at positions a and b.
func (in *Instance) Score(i, j int, a, b int32) int32 {
	return in.scores[i*len(in.seqs)+j].at(int(a), int(b))
}

// Symbol returns the character at pos of input i.
func (in *Instance) Symbol(i int, pos int32) string {
	return in.symbols.String(in.seqs[i][pos])
}

// Input reassembles input i.
func (in *Instance) Input(i int) string {
	var b strings.Builder
	for _, id := range in.seqs[i] {
		b.WriteString(in.symbols.String(id))
	}
	return b.String()
}
