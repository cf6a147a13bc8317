package reporters

// Reporter receives the candidate list of each query in query order. Query
// and candidate indices are 0 based.
type Reporter interface {
	Report(query int, candidates []int) error
	Close() error
}
