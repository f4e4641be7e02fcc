package mlcs

import (
	"context"
	"strings"

	"github.com/pdrpinto/mlcs/internal"
	"github.com/pdrpinto/mlcs/internal/lattice"
	"github.com/pdrpinto/mlcs/internal/tables"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// search owns the state of one run. The score and parent maps span the
// whole run: a point rediscovered in a later round is re-attached to its
// new parent and rescored.
type search struct {
	inst      *tables.Instance
	window    int
	workers   int
	maxRounds int
	log       logrus.FieldLogger

	root     lattice.Key
	g, f, h  map[lattice.Key]int
	parents  map[lattice.Key]lattice.Key
	frontier *frontier

	rounds    int
	expanded  int
	maxF      int
	threshold int
	active    int

	done     bool
	found    bool
	terminal lattice.Key
}

func newSearch(inst *tables.Instance, opts Options) *search {
	root := lattice.Root(inst.D()).Key()
	s := &search{
		inst:      inst,
		window:    opts.Window,
		workers:   opts.NumberOfWorkers,
		maxRounds: opts.MaxRounds,
		log:       opts.Logger,
		root:      root,
		g:         map[lattice.Key]int{root: 0},
		f:         map[lattice.Key]int{root: 0},
		h:         map[lattice.Key]int{root: 0},
		parents:   make(map[lattice.Key]lattice.Key),
	}
	s.frontier = newFrontier(s.f, s.h)

	if inst.D() == 1 {
		// A lone input is its own longest common subsequence.
		s.done, s.found = true, inst.Len(0) > 0
		return s
	}

	for _, q := range lattice.Starts(inst) {
		qk := q.Key()
		s.attach(root, qk, lattice.Heuristic(inst, q))
		s.frontier.push(qk)
	}
	s.frontier.reorder()
	s.done = s.frontier.Len() == 0
	return s
}

// attach records parent as the predecessor of child and scores child.
func (s *search) attach(parent, child lattice.Key, h int) {
	s.g[child] = s.g[parent] + 1
	s.h[child] = h
	s.f[child] = h + s.g[child]
	s.parents[child] = parent
}

// advance runs one round unless the round budget is spent.
func (s *search) advance(ctx context.Context) error {
	if s.done {
		return nil
	}
	if s.maxRounds > 0 && s.rounds >= s.maxRounds {
		return errors.Wrapf(ErrRoundLimit, "after %d rounds", s.rounds)
	}
	return s.step(ctx)
}

// step performs one expansion round: every frontier point whose f-score
// lies within the window below the best one is expanded, and their
// successors form the next frontier.
func (s *search) step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "mlcs: interrupted after %d rounds", s.rounds)
	}
	s.rounds++

	s.maxF = s.f[s.frontier.last()]
	s.threshold = s.maxF
	if s.maxF > s.window {
		s.threshold = s.maxF - s.window
	}
	tasks := make([]expandTask, 0, s.frontier.Len())
	for _, k := range s.frontier.keys {
		if s.f[k] >= s.threshold {
			tasks = append(tasks, expandTask{key: k, h: s.h[k]})
		}
	}
	s.active = len(tasks)

	s.log.WithFields(logrus.Fields{
		"round":     s.rounds,
		"frontier":  s.frontier.Len(),
		"active":    s.active,
		"threshold": s.threshold,
	}).Debug("mlcs: expanding frontier")

	expansions, err := s.expandAll(ctx, tasks)
	if err != nil {
		return err
	}

	next := newFrontier(s.f, s.h)
	seen := make(map[lattice.Key]struct{})
	for i, task := range tasks {
		var e expansion
		if expansions != nil {
			e = expansions[i]
		} else {
			e = expand(s.inst, task)
		}
		if e.terminal {
			s.done, s.found, s.terminal = true, true, task.key
			return nil
		}
		s.expanded++
		for j, q := range e.successors {
			qk := q.Key()
			if _, ok := seen[qk]; ok {
				continue
			}
			seen[qk] = struct{}{}
			s.attach(task.key, qk, e.heuristics[j])
			next.push(qk)
		}
	}
	next.reorder()
	s.frontier = next
	s.done = next.Len() == 0
	return nil
}

// subsequence reads the characters of the first input along the parent
// chain of the terminal point.
func (s *search) subsequence() (string, int) {
	if !s.found {
		return "", 0
	}
	if s.inst.D() == 1 {
		return s.inst.Input(0), s.inst.Len(0)
	}
	path := internal.ReconstructPath(s.parents, s.terminal, func(k lattice.Key) bool {
		return k == s.root
	})
	var b strings.Builder
	for _, k := range path {
		b.WriteString(s.inst.Symbol(0, k.Component(0)))
	}
	return b.String(), len(path)
}

func (s *search) result() Result {
	sub, n := s.subsequence()
	return Result{
		Subsequence: sub,
		Length:      n,
		Found:       s.found,
		Rounds:      s.rounds,
		Expanded:    s.expanded,
		Discovered:  len(s.g) - 1,
	}
}
