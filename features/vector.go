package features

import (
	"context"
	"strings"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sgfilter/config"
	"github.com/timtadh/sgfilter/types/graph"
	"github.com/timtadh/sgfilter/types/pattern"
	"github.com/timtadh/sgfilter/work"
)

// Vector has one bit per feature of the FeatureSet it was built against.
type Vector []bool

// BuildVector sets bit j iff feature j is among the 2-edge or 3-edge
// patterns of g.
func BuildVector(g *graph.Graph, fs *FeatureSet) Vector {
	pats := pattern.All(g)
	v := make(Vector, fs.Len())
	for j := range v {
		v[j] = pats.Has(fs.Get(j))
	}
	return v
}

// Ones lists the set bits in ascending order.
func (v Vector) Ones() []int {
	ones := make([]int, 0, len(v))
	for j, bit := range v {
		if bit {
			ones = append(ones, j)
		}
	}
	return ones
}

func (v Vector) String() string {
	var b strings.Builder
	b.Grow(len(v))
	for _, bit := range v {
		if bit {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func ParseVector(s string) (Vector, error) {
	v := make(Vector, len(s))
	for j := 0; j < len(s); j++ {
		switch s[j] {
		case '0':
		case '1':
			v[j] = true
		default:
			return nil, errors.Errorf("vector %q has a non 0/1 character at %d", s, j)
		}
	}
	return v, nil
}

// Matrix is a set of feature vectors, one row per graph in corpus order, all
// built against Features.
type Matrix struct {
	Features *FeatureSet
	Rows     []Vector
}

func NewMatrix(fs *FeatureSet) *Matrix {
	return &Matrix{
		Features: fs,
		Rows:     make([]Vector, 0, 10),
	}
}

// Append adds a row. The row must have exactly one bit per feature.
func (m *Matrix) Append(row Vector) error {
	if len(row) != m.Features.Len() {
		return &SchemaMismatch{Want: m.Features.Len(), Got: len(row), Reason: "row width differs from feature count"}
	}
	m.Rows = append(m.Rows, row)
	return nil
}

// Check returns a *SchemaMismatch unless m and o share a feature set.
func (m *Matrix) Check(o *Matrix) error {
	return m.Features.Check(o.Features)
}

// BuildMatrix builds the vector of every graph in parallel.
func BuildMatrix(ctx context.Context, conf *config.Config, graphs []*graph.Graph, fs *FeatureSet) (*Matrix, error) {
	rows := make([]Vector, len(graphs))
	err := work.Each(ctx, conf.Workers(), len(graphs), func(_ context.Context, i int) error {
		rows[i] = BuildVector(graphs[i], fs)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Matrix{Features: fs, Rows: rows}, nil
}
