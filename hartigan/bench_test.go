package hartigan_test

import (
	"testing"

	"github.com/katalvlaran/lvlstat/hartigan"
	"github.com/katalvlaran/lvlstat/kmeans"
)

// benchmarkSelect runs Select over deterministic blob data with the given
// algorithm and ceiling.
func benchmarkSelect(b *testing.B, rows, cols, maxClusters int, algo kmeans.Algorithm) {
	data := threeBlobs(rows, cols)
	opts := hartigan.DefaultOptions()
	opts.Algorithm = algo
	opts.MaxIterations = 25

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hartigan.Select(data, maxClusters, opts); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

// BenchmarkSelect_Small benchmarks the full pipeline on 150×4 data, k up to 5.
func BenchmarkSelect_Small(b *testing.B) {
	benchmarkSelect(b, 150, 4, 5, kmeans.HartiganWong)
}

// BenchmarkSelect_Wide benchmarks a larger sweep, k up to 12.
func BenchmarkSelect_Wide(b *testing.B) {
	benchmarkSelect(b, 600, 6, 12, kmeans.HartiganWong)
}

// BenchmarkSelect_Lloyd benchmarks the batch collaborator variant.
func BenchmarkSelect_Lloyd(b *testing.B) {
	benchmarkSelect(b, 150, 4, 5, kmeans.Lloyd)
}
