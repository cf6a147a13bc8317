package features

import (
	"context"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sgfilter/config"
	"github.com/timtadh/sgfilter/stores/pattern_int"
	"github.com/timtadh/sgfilter/types/graph"
	"github.com/timtadh/sgfilter/types/pattern"
	"github.com/timtadh/sgfilter/work"
)

// Count is the graph level support of a pattern in a corpus.
type Count struct {
	Pattern pattern.Pattern
	Graphs  int
	First   int
}

// Pools holds the counts of the 2-edge and 3-edge patterns of a corpus, each
// in pattern order.
type Pools struct {
	TwoEdge   []Count
	ThreeEdge []Count
}

// CountPatterns extracts the patterns of every graph in parallel and then
// folds them, in corpus order, into an inverted index of pattern to graph.
// A pattern counts once per graph containing it.
func CountPatterns(ctx context.Context, conf *config.Config, graphs []*graph.Graph) (*Pools, error) {
	extracted := make([][]pattern.Pattern, len(graphs))
	err := work.Each(ctx, conf.Workers(), len(graphs), func(_ context.Context, i int) error {
		extracted[i] = pattern.Slice(pattern.All(graphs[i]))
		return nil
	})
	if err != nil {
		return nil, err
	}

	two, err := openIndex(conf, "two-edge", 3)
	if err != nil {
		return nil, err
	}
	defer two.Delete()
	three, err := openIndex(conf, "three-edge", 4)
	if err != nil {
		return nil, err
	}
	defer three.Delete()

	for i, pats := range extracted {
		for _, p := range pats {
			idx := two
			if p.Len() == 4 {
				idx = three
			}
			if err := idx.Add(p, int32(i)); err != nil {
				return nil, err
			}
		}
	}

	pools := &Pools{}
	if pools.TwoEdge, err = counts(two); err != nil {
		return nil, err
	}
	if pools.ThreeEdge, err = counts(three); err != nil {
		return nil, err
	}
	errors.Logf("DEBUG", "counted %d 2-edge and %d 3-edge patterns over %d graphs",
		len(pools.TwoEdge), len(pools.ThreeEdge), len(graphs))
	return pools, nil
}

func openIndex(conf *config.Config, name string, arity int) (pattern_int.MultiMap, error) {
	if conf.Cache == "" {
		return pattern_int.AnonBpTree(arity)
	}
	return pattern_int.NewBpTree(conf.CacheFile(name+"-counts.bptree"), arity)
}

func counts(idx pattern_int.MultiMap) ([]Count, error) {
	cs := make([]Count, 0, 10)
	var cur *Count
	err := pattern_int.Do(idx.Iterate, func(p pattern.Pattern, g int32) error {
		if cur == nil || cur.Pattern != p {
			cs = append(cs, Count{Pattern: p, First: int(g)})
			cur = &cs[len(cs)-1]
		}
		cur.Graphs++
		if int(g) < cur.First {
			cur.First = int(g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}
