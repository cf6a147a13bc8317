package pattern_int

import (
	"sync"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/fs2"
	"github.com/timtadh/fs2/bptree"
	"github.com/timtadh/fs2/fmap"
)

import (
	"github.com/timtadh/sgfilter/types/pattern"
)

// MultiMap maps patterns of a single arity to int32 values, allowing
// duplicate keys. Iteration is in pattern order.
type MultiMap interface {
	Iterate() (Iterator, error)
	Add(key pattern.Pattern, value int32) error
	Size() int
	Close() error
	Delete() error
}

type Iterator func() (pattern.Pattern, int32, error, Iterator)

func Do(run func() (Iterator, error), do func(key pattern.Pattern, value int32) error) error {
	kvi, err := run()
	if err != nil {
		return err
	}
	var key pattern.Pattern
	var value int32
	for key, value, err, kvi = kvi(); kvi != nil; key, value, err, kvi = kvi() {
		e := do(key, value)
		if e != nil {
			return e
		}
	}
	return err
}

type BpTree struct {
	bf    *fmap.BlockFile
	bpt   *bptree.BpTree
	arity int
	mutex sync.Mutex
}

func AnonBpTree(arity int) (*BpTree, error) {
	bf, err := fmap.Anonymous(fmap.BLOCKSIZE)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf, arity)
}

func NewBpTree(path string, arity int) (*BpTree, error) {
	bf, err := fmap.CreateBlockFile(path)
	if err != nil {
		return nil, err
	}
	return newBpTree(bf, arity)
}

func newBpTree(bf *fmap.BlockFile, arity int) (*BpTree, error) {
	if arity != 3 && arity != 4 {
		bf.Close()
		return nil, errors.Errorf("patterns have arity 3 or 4, got %d", arity)
	}
	bpt, err := bptree.New(bf, 8*arity, 4)
	if err != nil {
		return nil, err
	}
	b := &BpTree{
		bf:    bf,
		bpt:   bpt,
		arity: arity,
	}
	return b, nil
}

func (b *BpTree) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bf.Close()
}

func (b *BpTree) Delete() error {
	err := b.Close()
	if err != nil {
		return err
	}
	if b.bf.Path() != "" {
		return b.bf.Remove()
	}
	return nil
}

func (b *BpTree) Size() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Size()
}

func (b *BpTree) Add(key pattern.Pattern, value int32) error {
	if key.Len() != b.arity {
		return errors.Errorf("pattern %v does not have arity %d", key, b.arity)
	}
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.bpt.Add(SerializePattern(key), SerializeInt32(value))
}

func (b *BpTree) kvIter(kvi fs2.Iterator) (it Iterator) {
	it = func() (key pattern.Pattern, value int32, err error, _ Iterator) {
		b.mutex.Lock()
		defer b.mutex.Unlock()
		var k, v []byte
		k, v, err, kvi = kvi()
		if err != nil {
			return key, 0, err, nil
		}
		if kvi == nil {
			return key, 0, nil, nil
		}
		key = DeserializePattern(k)
		value = DeserializeInt32(v)
		return key, value, nil, it
	}
	return it
}

func (b *BpTree) Iterate() (it Iterator, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	raw, err := b.bpt.Iterate()
	if err != nil {
		return nil, err
	}
	return b.kvIter(raw), nil
}
