package features

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sgfilter/types/pattern"
)

// FeatureSet is the frozen, ordered column basis of feature vectors.
type FeatureSet struct {
	pats []pattern.Pattern
	idx  map[pattern.Pattern]int
}

// NewFeatureSet drops repeated patterns, keeping the first occurrence.
func NewFeatureSet(pats []pattern.Pattern) *FeatureSet {
	fs := &FeatureSet{
		pats: make([]pattern.Pattern, 0, len(pats)),
		idx:  make(map[pattern.Pattern]int, len(pats)),
	}
	for _, p := range pats {
		if _, has := fs.idx[p]; has {
			continue
		}
		fs.idx[p] = len(fs.pats)
		fs.pats = append(fs.pats, p)
	}
	return fs
}

// exactFeatureSet is for persisted sets, where a repeat means the columns
// can no longer be trusted.
func exactFeatureSet(pats []pattern.Pattern) (*FeatureSet, error) {
	fs := NewFeatureSet(pats)
	if fs.Len() != len(pats) {
		return nil, errors.Errorf("feature set has %d repeated patterns", len(pats)-fs.Len())
	}
	return fs, nil
}

func (fs *FeatureSet) Len() int {
	return len(fs.pats)
}

func (fs *FeatureSet) Get(i int) pattern.Pattern {
	return fs.pats[i]
}

func (fs *FeatureSet) Index(p pattern.Pattern) (int, bool) {
	i, has := fs.idx[p]
	return i, has
}

func (fs *FeatureSet) Patterns() []pattern.Pattern {
	pats := make([]pattern.Pattern, len(fs.pats))
	copy(pats, fs.pats)
	return pats
}

func (fs *FeatureSet) Equals(o *FeatureSet) bool {
	return fs.Check(o) == nil
}

// Check returns a *SchemaMismatch unless o has the same patterns in the same
// order.
func (fs *FeatureSet) Check(o *FeatureSet) error {
	if fs.Len() != o.Len() {
		return &SchemaMismatch{Want: fs.Len(), Got: o.Len(), Reason: "feature sets differ in length"}
	}
	for i, p := range fs.pats {
		if p != o.pats[i] {
			return &SchemaMismatch{
				Want:   fs.Len(),
				Got:    o.Len(),
				Reason: "feature " + p.String() + " differs from " + o.pats[i].String(),
			}
		}
	}
	return nil
}
