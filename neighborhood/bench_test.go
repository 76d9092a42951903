package neighborhood_test

import (
	"testing"

	"github.com/katalvlaran/ndmines/neighborhood"
	"github.com/katalvlaran/ndmines/tensor"
)

// BenchmarkOf5D measures neighbor enumeration for an interior 5-D cell
// (3^5 − 1 = 242 candidates).
func BenchmarkOf5D(b *testing.B) {
	shape := []int{5, 5, 5, 5, 5}
	c := tensor.Coord{2, 2, 2, 2, 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = neighborhood.Of(c, shape)
	}
}
