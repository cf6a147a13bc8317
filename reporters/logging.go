package reporters

import (
	"github.com/timtadh/data-structures/errors"
)

type Log struct {
	level  string
	prefix string
	count  int
}

func NewLog(level, prefix string) *Log {
	if level == "" {
		level = "INFO"
	}
	return &Log{level: level, prefix: prefix}
}

func (lr *Log) Report(query int, candidates []int) error {
	lr.count++
	if lr.prefix != "" {
		errors.Logf(lr.level, "%s query %d has %d candidates", lr.prefix, query+1, len(candidates))
	} else {
		errors.Logf(lr.level, "query %d has %d candidates", query+1, len(candidates))
	}
	return nil
}

func (lr *Log) Close() error {
	return nil
}
