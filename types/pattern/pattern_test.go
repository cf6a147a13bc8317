package pattern

import "testing"
import "github.com/stretchr/testify/assert"

func TestNewSorts(x *testing.T) {
	t := assert.New(x)
	p := New(3, 0, 2)
	t.Equal([]int{0, 2, 3}, p.Ids())
	t.Equal("(0, 2, 3)", p.String())
	t.Equal(2, p.Edges())
	t.True(p.Equals(New(2, 3, 0)))
	t.Equal(p.Hash(), New(0, 3, 2).Hash())
}

func TestFromSlice(x *testing.T) {
	t := assert.New(x)
	_, err := FromSlice([]int{1, 2})
	t.NotNil(err)
	_, err = FromSlice([]int{1, 2, 3, 4, 5})
	t.NotNil(err)
	_, err = FromSlice([]int{1, -2, 3})
	t.NotNil(err)
	ids := []int{4, 1, 3, 2}
	p, err := FromSlice(ids)
	t.Nil(err)
	t.Equal([]int{1, 2, 3, 4}, p.Ids())
	t.Equal([]int{4, 1, 3, 2}, ids)
	t.Panics(func() { New(1) })
}

func TestLess(x *testing.T) {
	t := assert.New(x)
	t.True(New(5, 6, 7).Less(New(0, 1, 2, 3)))
	t.False(New(0, 1, 2, 3).Less(New(5, 6, 7)))
	t.True(New(0, 1, 2).Less(New(0, 1, 3)))
	t.False(New(0, 1, 2).Less(New(0, 1, 2)))
	t.False(New(0, 1, 2).Equals(New(0, 1, 2, 2)))
}
