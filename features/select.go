package features

import (
	"context"
	"sort"
)

import (
	"github.com/dustin/go-humanize"
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sgfilter/config"
	"github.com/timtadh/sgfilter/stats"
	"github.com/timtadh/sgfilter/types/graph"
	"github.com/timtadh/sgfilter/types/pattern"
)

type Ranked struct {
	Count
	Score float64
}

// Rank orders counts by rarity, log(total/count), rarest first. Ties go to
// the pattern first seen earlier in the corpus and then to pattern order.
func Rank(counts []Count, total int) []Ranked {
	ranked := make([]Ranked, 0, len(counts))
	for _, c := range counts {
		ranked = append(ranked, Ranked{Count: c, Score: stats.Rarity(total, c.Graphs)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.First != b.First {
			return a.First < b.First
		}
		return a.Pattern.Less(b.Pattern)
	})
	return ranked
}

// Select ranks the 2-edge and 3-edge patterns of graphs and builds the
// feature set from them (see FromPools). The rarity denominator is
// conf.Total when set, otherwise the number of graphs.
func Select(ctx context.Context, conf *config.Config, graphs []*graph.Graph) (*FeatureSet, error) {
	if len(graphs) == 0 {
		return nil, &EmptyCorpus{}
	}
	if err := conf.Selection.Validate(); err != nil {
		return nil, err
	}
	pools, err := CountPatterns(ctx, conf, graphs)
	if err != nil {
		return nil, err
	}
	total := conf.Total
	if total <= 0 {
		total = len(graphs)
	}
	fs := FromPools(pools, total, conf.Selection)
	errors.Logf("INFO", "selected %d features from %v 2-edge and %v 3-edge patterns",
		fs.Len(), humanize.Comma(int64(len(pools.TwoEdge))), humanize.Comma(int64(len(pools.ThreeEdge))))
	return fs, nil
}

// FromPools takes from each ranked pool the sel.TopK rarest patterns and the
// band of sel.BandWidth patterns starting at rank sel.BandStart. The slices
// are concatenated as 2-edge top, 3-edge top, 2-edge band, 3-edge band. A
// pool too small for a slice contributes what it has.
func FromPools(pools *Pools, total int, sel config.Selection) *FeatureSet {
	two := Rank(pools.TwoEdge, total)
	three := Rank(pools.ThreeEdge, total)
	pats := make([]pattern.Pattern, 0, 2*(sel.TopK+sel.BandWidth))
	pats = appendSlice(pats, two, 0, sel.TopK)
	pats = appendSlice(pats, three, 0, sel.TopK)
	pats = appendSlice(pats, two, sel.BandStart, sel.BandStart+sel.BandWidth)
	pats = appendSlice(pats, three, sel.BandStart, sel.BandStart+sel.BandWidth)
	return NewFeatureSet(pats)
}

func appendSlice(pats []pattern.Pattern, ranked []Ranked, from, to int) []pattern.Pattern {
	if to > len(ranked) {
		to = len(ranked)
	}
	for i := from; i < to; i++ {
		pats = append(pats, ranked[i].Pattern)
	}
	return pats
}
