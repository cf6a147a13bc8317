package work

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"context"
	"fmt"
	"sync/atomic"
)

func TestEachFillsSlots(x *testing.T) {
	t := assert.New(x)
	for _, workers := range []int{0, 1, 3, 16} {
		out := make([]int, 100)
		err := Each(context.Background(), workers, len(out), func(_ context.Context, i int) error {
			out[i] = i * i
			return nil
		})
		t.Nil(err)
		for i, v := range out {
			t.Equal(i*i, v)
		}
	}
}

func TestEachStopsOnError(x *testing.T) {
	t := assert.New(x)
	var calls int32
	err := Each(context.Background(), 1, 100, func(_ context.Context, i int) error {
		atomic.AddInt32(&calls, 1)
		if i == 3 {
			return fmt.Errorf("boom")
		}
		return nil
	})
	t.EqualError(err, "boom")
	t.True(atomic.LoadInt32(&calls) < 100)
}

func TestEachCancelled(x *testing.T) {
	t := assert.New(x)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls int32
	err := Each(ctx, 4, 10, func(_ context.Context, i int) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	t.Equal(context.Canceled, err)
	t.Equal(int32(0), atomic.LoadInt32(&calls))
}
