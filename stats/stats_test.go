package stats

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"math"
)

func TestSrange(x *testing.T) {
	t := assert.New(x)
	t.Equal([]int{0, 1, 2}, Srange(3))
	t.Len(Srange(0), 0)
}

func TestRarity(x *testing.T) {
	t := assert.New(x)
	t.InDelta(math.Log(10), Rarity(10, 1), 1e-12)
	t.Equal(0.0, Rarity(10, 10))
	t.True(Rarity(10, 1) > Rarity(10, 2))
	t.True(math.IsInf(Rarity(10, 0), 1))
}
