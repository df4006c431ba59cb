package scan_test

import (
	"testing"

	"github.com/katalvlaran/lvlagg/core"
	"github.com/katalvlaran/lvlagg/na"
	"github.com/katalvlaran/lvlagg/scan"
)

// benchmarkCumsum runs Cumsum over n rows, k columns and g groups.
func benchmarkCumsum(b *testing.B, n, k, g int) {
	data := make([]float64, n*k)
	for i := range data {
		data[i] = float64(i%31) * 0.25
	}
	values, _ := core.BlockFrom(data, n, k)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i % g
	}
	out, _ := core.NewBlock[float64](n, k)
	opts := scan.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := scan.Cumsum(na.Float[float64]{}, out, values, labels, g, opts); err != nil {
			b.Fatalf("Cumsum failed: %v", err)
		}
	}
}

// BenchmarkCumsum_Narrow benchmarks one series across 16 groups.
func BenchmarkCumsum_Narrow(b *testing.B) { benchmarkCumsum(b, 100_000, 1, 16) }

// BenchmarkCumsum_Wide benchmarks eight parallel series.
func BenchmarkCumsum_Wide(b *testing.B) { benchmarkCumsum(b, 100_000, 8, 16) }

// BenchmarkCummax benchmarks the latch-free skipna path.
func BenchmarkCummax(b *testing.B) {
	const n, g = 100_000, 16
	data := make([]float64, n)
	for i := range data {
		data[i] = float64((i * 2654435761) % 1000)
	}
	values, _ := core.BlockFrom(data, n, 1)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i % g
	}
	out, _ := core.NewBlock[float64](n, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := scan.Cummax(na.Float[float64]{}, out, values, labels, g, scan.DefaultOptions()); err != nil {
			b.Fatalf("Cummax failed: %v", err)
		}
	}
}
