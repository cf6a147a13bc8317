package graph

import (
	"sort"
)

type Edge struct {
	U, V int
}

// Graph is an undirected, unlabeled graph. Edges are stored with U < V,
// sorted, without duplicates. Graphs are not modified after loading.
type Graph struct {
	Idx int
	V   []int
	E   []Edge
}

// Adjacency maps each node to its sorted neighbors.
type Adjacency map[int][]int

func (g *Graph) Adjacency() Adjacency {
	adj := make(Adjacency, len(g.V))
	for _, v := range g.V {
		adj[v] = nil
	}
	for _, e := range g.E {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	for _, kids := range adj {
		sort.Ints(kids)
	}
	return adj
}

func (g *Graph) HasEdge(u, v int) bool {
	if u > v {
		u, v = v, u
	}
	i := sort.Search(len(g.E), func(i int) bool {
		e := g.E[i]
		return e.U > u || (e.U == u && e.V >= v)
	})
	return i < len(g.E) && g.E[i].U == u && g.E[i].V == v
}

// Builder collects nodes and edges for one graph and freezes them into a
// Graph.
type Builder struct {
	idx   int
	nodes map[int]bool
	edges map[Edge]bool
}

func Build(idx int) *Builder {
	return &Builder{
		idx:   idx,
		nodes: make(map[int]bool),
		edges: make(map[Edge]bool),
	}
}

func (b *Builder) AddNode(v int) *Builder {
	b.nodes[v] = true
	return b
}

// AddEdge adds the undirected edge u-v. Self loops only register the node.
func (b *Builder) AddEdge(u, v int) *Builder {
	b.nodes[u] = true
	b.nodes[v] = true
	if u == v {
		return b
	}
	if u > v {
		u, v = v, u
	}
	b.edges[Edge{u, v}] = true
	return b
}

func (b *Builder) Build() *Graph {
	g := &Graph{
		Idx: b.idx,
		V:   make([]int, 0, len(b.nodes)),
		E:   make([]Edge, 0, len(b.edges)),
	}
	for v := range b.nodes {
		g.V = append(g.V, v)
	}
	for e := range b.edges {
		g.E = append(g.E, e)
	}
	sort.Ints(g.V)
	sort.Slice(g.E, func(i, j int) bool {
		a, b := g.E[i], g.E[j]
		return a.U < b.U || (a.U == b.U && a.V < b.V)
	})
	return g
}
