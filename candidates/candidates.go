package candidates

import (
	"context"
	"io"
)

import (
	"github.com/dustin/go-humanize"
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/sgfilter/config"
	"github.com/timtadh/sgfilter/features"
	"github.com/timtadh/sgfilter/reporters"
	"github.com/timtadh/sgfilter/stats"
	"github.com/timtadh/sgfilter/work"
)

// List holds the database indices a query may be contained in, ascending.
type List []int

// Dominates is true when every bit set in q is set in d. Both vectors must
// be built against the same feature set.
func Dominates(d, q features.Vector) bool {
	for j, bit := range q {
		if bit && !d[j] {
			return false
		}
	}
	return true
}

// For lists the rows of db that dominate q. A query with no set bits has
// every database graph as a candidate.
func For(db *features.Matrix, q features.Vector) List {
	if len(q.Ones()) == 0 {
		return stats.Srange(len(db.Rows))
	}
	cands := make(List, 0, 10)
	for i, d := range db.Rows {
		if Dominates(d, q) {
			cands = append(cands, i)
		}
	}
	return cands
}

// Generate computes the candidate list of every query. The two matrices must
// share a feature set; otherwise a *features.SchemaMismatch is returned and
// nothing is computed.
func Generate(ctx context.Context, conf *config.Config, db, queries *features.Matrix) ([]List, error) {
	err := db.Check(queries)
	if err != nil {
		return nil, err
	}
	lists := make([]List, len(queries.Rows))
	err = work.Each(ctx, conf.Workers(), len(queries.Rows), func(_ context.Context, i int) error {
		lists[i] = For(db, queries.Rows[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	errors.Logf("INFO", "%v queries against %v graphs gave %v candidates",
		humanize.Comma(int64(len(lists))),
		humanize.Comma(int64(len(db.Rows))),
		humanize.Comma(int64(total)))
	return lists, nil
}

// Report hands each list to rptr in query order and closes it.
func Report(lists []List, rptr reporters.Reporter) error {
	for q, l := range lists {
		err := rptr.Report(q, l)
		if err != nil {
			rptr.Close()
			return err
		}
	}
	return rptr.Close()
}

// Write writes the lists in the "q # / c #" text format.
func Write(w io.Writer, lists []List) error {
	for q, l := range lists {
		err := reporters.FormatCandidates(w, q, l)
		if err != nil {
			return err
		}
	}
	return nil
}
