package pattern

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"math/rand"
)

import (
	"github.com/timtadh/sgfilter/types/graph"
)

func build(edges ...[2]int) *graph.Graph {
	b := graph.Build(0)
	for _, e := range edges {
		b.AddEdge(e[0], e[1])
	}
	return b.Build()
}

func star() *graph.Graph {
	return build([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
}

func path() *graph.Graph {
	return build([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
}

func disjoint() *graph.Graph {
	return build([2]int{0, 1}, [2]int{2, 3})
}

func triangle() *graph.Graph {
	return build([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
}

func mesh() *graph.Graph {
	return build(
		[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2},
		[2]int{2, 4}, [2]int{4, 5}, [2]int{5, 6}, [2]int{6, 2},
		[2]int{3, 7}, [2]int{7, 8}, [2]int{8, 9}, [2]int{1, 9},
	)
}

func TestTwoEdgeStar(x *testing.T) {
	t := assert.New(x)
	t.Equal([]Pattern{New(0, 1, 2), New(0, 1, 3), New(0, 2, 3)}, Slice(TwoEdge(star())))
}

func TestTwoEdgePath(x *testing.T) {
	t := assert.New(x)
	t.Equal([]Pattern{New(0, 1, 2), New(1, 2, 3)}, Slice(TwoEdge(path())))
}

func TestTwoEdgeDisjoint(x *testing.T) {
	t := assert.New(x)
	t.Equal(0, TwoEdge(disjoint()).Size())
	t.Equal(0, ThreeEdge(disjoint()).Size())
}

func TestThreeEdgeStarAndPathAlias(x *testing.T) {
	t := assert.New(x)
	t.Equal([]Pattern{New(0, 1, 2, 3)}, Slice(ThreeEdge(star())))
	t.Equal([]Pattern{New(0, 1, 2, 3)}, Slice(ThreeEdge(path())))
	cycle := build([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	t.True(ThreeEdge(cycle).Has(New(0, 1, 2, 3)))
	t.Equal(1, ThreeEdge(cycle).Size())
}

func TestThreeEdgeTriangle(x *testing.T) {
	t := assert.New(x)
	t.Equal(
		[]Pattern{New(0, 0, 1, 2), New(0, 1, 1, 2), New(0, 1, 2, 2)},
		Slice(ThreeEdge(triangle())),
	)
}

func TestAllIsUnion(x *testing.T) {
	t := assert.New(x)
	g := mesh()
	all := All(g)
	two := TwoEdge(g)
	three := ThreeEdge(g)
	t.Equal(two.Size()+three.Size(), all.Size())
	for _, p := range Slice(two) {
		t.True(all.Has(p), "%v missing", p)
	}
	for _, p := range Slice(three) {
		t.True(all.Has(p), "%v missing", p)
	}
}

func TestTwoEdgeCenterAdjacent(x *testing.T) {
	t := assert.New(x)
	g := mesh()
	for _, p := range Slice(TwoEdge(g)) {
		t.Equal(3, p.Len())
		t.True(p.Get(0) <= p.Get(1) && p.Get(1) <= p.Get(2), "%v not sorted", p)
		found := false
		for i := 0; i < 3; i++ {
			c, a, b := p.Get(i), p.Get((i+1)%3), p.Get((i+2)%3)
			if g.HasEdge(c, a) && g.HasEdge(c, b) {
				found = true
			}
		}
		t.True(found, "%v has no center adjacent to the others", p)
	}
}

func TestThreeEdgeSorted(x *testing.T) {
	t := assert.New(x)
	for _, p := range Slice(ThreeEdge(mesh())) {
		t.Equal(4, p.Len())
		t.Equal(3, p.Edges())
		for i := 1; i < 4; i++ {
			t.True(p.Get(i-1) <= p.Get(i), "%v not sorted", p)
		}
	}
}

func TestEdgeOrderIndependent(x *testing.T) {
	t := assert.New(x)
	g := mesh()
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		edges := make([][2]int, 0, len(g.E))
		for _, e := range g.E {
			if r.Intn(2) == 0 {
				edges = append(edges, [2]int{e.V, e.U})
			} else {
				edges = append(edges, [2]int{e.U, e.V})
			}
		}
		r.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
		h := build(edges...)
		t.Equal(Slice(TwoEdge(g)), Slice(TwoEdge(h)))
		t.Equal(Slice(ThreeEdge(g)), Slice(ThreeEdge(h)))
	}
}

func TestRelabelInvariant(x *testing.T) {
	t := assert.New(x)
	g := mesh()
	perm := rand.New(rand.NewSource(11)).Perm(10)
	edges := make([][2]int, 0, len(g.E))
	for _, e := range g.E {
		edges = append(edges, [2]int{perm[e.U], perm[e.V]})
	}
	h := build(edges...)
	relabel := func(pats []Pattern) map[Pattern]bool {
		m := make(map[Pattern]bool)
		for _, p := range pats {
			ids := p.Ids()
			for i := range ids {
				ids[i] = perm[ids[i]]
			}
			m[New(ids...)] = true
		}
		return m
	}
	asMap := func(pats []Pattern) map[Pattern]bool {
		m := make(map[Pattern]bool)
		for _, p := range pats {
			m[p] = true
		}
		return m
	}
	t.Equal(relabel(Slice(TwoEdge(g))), asMap(Slice(TwoEdge(h))))
	t.Equal(relabel(Slice(ThreeEdge(g))), asMap(Slice(ThreeEdge(h))))
}

func TestIdempotent(x *testing.T) {
	t := assert.New(x)
	g := mesh()
	t.Equal(Slice(TwoEdge(g)), Slice(TwoEdge(g)))
	t.Equal(Slice(ThreeEdge(g)), Slice(ThreeEdge(g)))
	t.Equal(Slice(All(g)), Slice(All(g)))
}
