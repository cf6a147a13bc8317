package stats

import (
	"math"
)

// Srange is [0, size).
func Srange(size int) []int {
	sample := make([]int, 0, size)
	for i := 0; i < size; i++ {
		sample = append(sample, i)
	}
	return sample
}

// Rarity scores an item present in count of total transactions. Rarer items
// score higher. An item in every transaction scores 0.
func Rarity(total, count int) float64 {
	if count <= 0 {
		return math.Inf(1)
	}
	return math.Log(float64(total) / float64(count))
}
