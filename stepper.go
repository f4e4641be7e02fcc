package mlcs

import (
	"context"
)

// RoundSnapshot exposes the state of the search after one round
type RoundSnapshot struct {
	Round int
	// MaxF is the best f-score of the frontier the round started from and
	// Threshold the lowest f-score that was expanded.
	MaxF      int
	Threshold int
	Active    int
	// Frontier lists the points waiting for the next round, least
	// promising first.
	Frontier    [][]int
	Expanded    int
	Done        bool
	Found       bool
	Subsequence string
}

// Stepper runs a search one expansion round at a time to drive UIs or
// debugging tools.
type Stepper struct {
	ctx    context.Context
	cancel context.CancelFunc
	search *search
}

// NewStepper preprocesses strs and returns a stepper positioned before the
// first round.
func NewStepper(
	parent context.Context,
	strs []string,
	options ...Option,
) (*Stepper, error) {
	state, err := prepare(strs, options)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(parent)
	return &Stepper{ctx: ctx, cancel: cancel, search: state}, nil
}

// Close stops the stepper. An unfinished search fails with
// context.Canceled on its next step.
func (s *Stepper) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one round and returns a snapshot. Once the
// search is done further steps return the final snapshot again.
func (s *Stepper) Step() (RoundSnapshot, error) {
	err := s.search.advance(s.ctx)
	return s.snapshot(), err
}

// Result returns the outcome so far.
func (s *Stepper) Result() Result {
	return s.search.result()
}

func (s *Stepper) snapshot() RoundSnapshot {
	st := s.search
	points := make([][]int, 0, st.frontier.Len())
	for _, k := range st.frontier.keys {
		p := make([]int, k.Len())
		for i := range p {
			p[i] = int(k.Component(i))
		}
		points = append(points, p)
	}
	sub, _ := st.subsequence()
	return RoundSnapshot{
		Round:       st.rounds,
		MaxF:        st.maxF,
		Threshold:   st.threshold,
		Active:      st.active,
		Frontier:    points,
		Expanded:    st.expanded,
		Done:        st.done,
		Found:       st.found,
		Subsequence: sub,
	}
}
