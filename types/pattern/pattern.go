package pattern

import (
	"fmt"
	"sort"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/data-structures/types"
)

// Pattern is the canonical identity of a small connected substructure: the
// ascending tuple of the node ids taking part in it. A 2-edge pattern has 3
// ids and a 3-edge pattern has 4.
//
// Only the node set is kept. The edges among those nodes are not, so for
// example a 4-cycle and a 4-path over the same nodes are the same Pattern.
type Pattern struct {
	n   int
	ids [4]int
}

// New sorts ids and returns the Pattern for them. It panics unless given 3
// or 4 ids.
func New(ids ...int) Pattern {
	p, err := FromSlice(ids)
	if err != nil {
		panic(err)
	}
	return p
}

func FromSlice(ids []int) (Pattern, error) {
	var p Pattern
	if len(ids) < 3 || len(ids) > 4 {
		return p, errors.Errorf("a pattern has 3 or 4 node ids, got %v", ids)
	}
	for _, id := range ids {
		if id < 0 {
			return p, errors.Errorf("negative node id in %v", ids)
		}
	}
	p.n = len(ids)
	copy(p.ids[:], ids)
	sort.Ints(p.ids[:p.n])
	return p, nil
}

func new3(a, b, c int) Pattern {
	p := Pattern{n: 3}
	p.ids[0], p.ids[1], p.ids[2] = a, b, c
	sort.Ints(p.ids[:3])
	return p
}

func new4(a, b, c, d int) Pattern {
	p := Pattern{n: 4, ids: [4]int{a, b, c, d}}
	sort.Ints(p.ids[:])
	return p
}

// Edges is the number of edges of the substructure the pattern stands for.
func (p Pattern) Edges() int {
	return p.n - 1
}

func (p Pattern) Len() int {
	return p.n
}

func (p Pattern) Get(i int) int {
	return p.ids[i]
}

func (p Pattern) Ids() []int {
	ids := make([]int, p.n)
	copy(ids, p.ids[:p.n])
	return ids
}

func (p Pattern) Equals(o types.Equatable) bool {
	if q, is := o.(Pattern); is {
		return p == q
	}
	return false
}

// Less orders shorter patterns first then lexicographically.
func (p Pattern) Less(o types.Sortable) bool {
	q := o.(Pattern)
	if p.n != q.n {
		return p.n < q.n
	}
	for i := 0; i < p.n; i++ {
		if p.ids[i] != q.ids[i] {
			return p.ids[i] < q.ids[i]
		}
	}
	return false
}

func (p Pattern) Hash() int {
	h := 2166136261
	for i := 0; i < p.n; i++ {
		h = (h ^ p.ids[i]) * 16777619
	}
	return h
}

func (p Pattern) String() string {
	parts := make([]string, 0, p.n)
	for _, id := range p.ids[:p.n] {
		parts = append(parts, fmt.Sprint(id))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
