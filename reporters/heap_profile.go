package reporters

import (
	"fmt"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// HeapProfile writes a heap profile after every `every` reports once
// `after` reports have been seen. Each profile goes to "<path>.<count>".
type HeapProfile struct {
	path  string
	after int
	every int
	count int
}

func NewHeapProfile(path string, after, every int) (*HeapProfile, error) {
	if every <= 0 {
		return nil, errors.Errorf("every must be > 0, got %d", every)
	}
	hp := &HeapProfile{
		path:  path,
		after: after,
		every: every,
	}
	return hp, nil
}

func (hp *HeapProfile) Report(query int, candidates []int) error {
	hp.count++
	if hp.count <= hp.after || (hp.count-hp.after)%hp.every != 0 {
		return nil
	}
	f, err := os.Create(fmt.Sprintf("%v.%d", hp.path, hp.count))
	if err != nil {
		return err
	}
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (hp *HeapProfile) Close() error {
	return nil
}
