package mlcs

import (
	"context"

	"github.com/pdrpinto/mlcs/internal/lattice"
	"github.com/pdrpinto/mlcs/internal/tables"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// expandTask represents a request from the orchestrator to expand one
// active point.
type expandTask struct {
	key lattice.Key
	h   int
}

// expansion is the worker's answer: either the point is terminal or it
// lists the successors together with their heuristics.
type expansion struct {
	terminal   bool
	successors []lattice.Point
	heuristics []int
}

func expand(inst *tables.Instance, task expandTask) expansion {
	if task.h == 0 {
		return expansion{terminal: true}
	}
	successors := lattice.Successors(inst, task.key.Point())
	heuristics := make([]int, len(successors))
	for i, q := range successors {
		heuristics[i] = lattice.Heuristic(inst, q)
	}
	return expansion{successors: successors, heuristics: heuristics}
}

// expandAll expands every task on the worker pool. It returns nil when
// the search runs single threaded, in which case the orchestrator expands
// lazily and can stop at the first terminal point.
func (s *search) expandAll(ctx context.Context, tasks []expandTask) ([]expansion, error) {
	if s.workers <= 1 || len(tasks) < 2 {
		return nil, nil
	}
	out := make([]expansion, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = expand(s.inst, task)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "mlcs: expanding round %d", s.rounds)
	}
	return out, nil
}
