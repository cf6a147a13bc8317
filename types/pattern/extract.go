package pattern

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/timtadh/sgfilter/types/graph"
)

// Extract computes the canonical pattern set of a graph.
type Extract func(*graph.Graph) *set.SortedSet

// TwoEdge returns every 2-edge pattern of g: for each node c and each pair
// of distinct neighbors u, v of c the pattern (u, c, v).
//
// Cost is the sum over nodes of C(deg, 2).
func TwoEdge(g *graph.Graph) *set.SortedSet {
	s := set.NewSortedSet(len(g.E))
	twoEdge(s, g.V, g.Adjacency())
	return s
}

// ThreeEdge returns every 3-edge pattern of g. It is the union of
//
//   - stars: a node c with at least 3 neighbors and each triple u, v, w of
//     them gives (c, u, v, w)
//   - paths: a node v, two distinct neighbors u, w of v and a neighbor x of
//     w other than v gives (u, v, w, x)
//
// x may equal u. Then u, v, w is a triangle and the pattern repeats u.
// Because patterns only keep node ids, a star, a path and a cycle over the
// same four nodes all give the same pattern.
//
// Cost is the sum over nodes of C(deg, 3) plus the sum over v of deg(v)^2
// times the degree of its neighbors, cubic in the max degree.
func ThreeEdge(g *graph.Graph) *set.SortedSet {
	s := set.NewSortedSet(len(g.E))
	adj := g.Adjacency()
	stars(s, g.V, adj)
	paths(s, g.V, adj)
	return s
}

// All is the union of TwoEdge and ThreeEdge.
func All(g *graph.Graph) *set.SortedSet {
	s := set.NewSortedSet(2 * len(g.E))
	adj := g.Adjacency()
	twoEdge(s, g.V, adj)
	stars(s, g.V, adj)
	paths(s, g.V, adj)
	return s
}

// Slice lists the patterns of s in order.
func Slice(s *set.SortedSet) []Pattern {
	pats := make([]Pattern, 0, s.Size())
	for item, next := s.Items()(); next != nil; item, next = next() {
		pats = append(pats, item.(Pattern))
	}
	return pats
}

func add(s *set.SortedSet, p types.Hashable) {
	if !s.Has(p) {
		s.Add(p)
	}
}

func twoEdge(s *set.SortedSet, nodes []int, adj graph.Adjacency) {
	for _, c := range nodes {
		nbrs := adj[c]
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				add(s, new3(nbrs[i], c, nbrs[j]))
			}
		}
	}
}

func stars(s *set.SortedSet, nodes []int, adj graph.Adjacency) {
	for _, c := range nodes {
		nbrs := adj[c]
		if len(nbrs) < 3 {
			continue
		}
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				for k := j + 1; k < len(nbrs); k++ {
					add(s, new4(c, nbrs[i], nbrs[j], nbrs[k]))
				}
			}
		}
	}
}

func paths(s *set.SortedSet, nodes []int, adj graph.Adjacency) {
	for _, v := range nodes {
		nbrs := adj[v]
		for _, u := range nbrs {
			for _, w := range nbrs {
				if w == u {
					continue
				}
				for _, x := range adj[w] {
					if x == v {
						continue
					}
					add(s, new4(u, v, w, x))
				}
			}
		}
	}
}
