package analysis

import (
	"golang.org/x/sync/errgroup"

	"github.com/heliosviz/graphkit/pkg/graph"
	"github.com/heliosviz/graphkit/pkg/graph/algo"
)

// trees runs one BFS per source. Results are written to the slot matching the
// source's position in sources, so callers can reduce them in a fixed order.
func (a *Analyzer) trees(ix *graph.Index, sources []int) ([]algo.Tree, error) {
	out := make([]algo.Tree, len(sources))
	if a.workers <= 1 || len(sources) < 2 {
		for k, s := range sources {
			out[k] = algo.BFS(ix, s)
		}
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(a.workers)
	for k, s := range sources {
		g.Go(func() error {
			out[k] = algo.BFS(ix, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// fillPairs memoizes the path of every unordered pair (i, j), i < j, running
// BFS only from sources that still have a missing pair.
func (a *Analyzer) fillPairs(ix *graph.Index) error {
	n := ix.Len()
	var missing []int
	for i := range n {
		for j := i + 1; j < n; j++ {
			if _, ok := a.memo.lookup(ix.IDs[i], ix.IDs[j]); !ok {
				missing = append(missing, i)
				break
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	trees, err := a.trees(ix, missing)
	if err != nil {
		return err
	}
	for k, i := range missing {
		for j := i + 1; j < n; j++ {
			a.memo.Put(ix.IDs[i], ix.IDs[j], pathIDs(ix, trees[k].PathTo(j)))
		}
	}
	return nil
}

// pathIDs resolves positions to ids, keeping nil for an unreachable target.
func pathIDs(ix *graph.Index, pos []int) []string {
	if pos == nil {
		return nil
	}
	return ix.Resolve(pos)
}
