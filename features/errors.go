package features

import (
	"fmt"
)

// SchemaMismatch is returned when vectors or matrices built against
// different feature sets are combined.
type SchemaMismatch struct {
	Want, Got int
	Reason    string
}

func (e *SchemaMismatch) Error() string {
	return fmt.Sprintf("schema mismatch: %v (want %d, got %d)", e.Reason, e.Want, e.Got)
}

// EmptyCorpus is returned when features are selected from zero graphs.
type EmptyCorpus struct{}

func (e *EmptyCorpus) Error() string {
	return "cannot select features from an empty corpus"
}
