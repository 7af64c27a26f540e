package cost_test

import (
	"testing"

	"github.com/katalvlaran/padchain/cost"
	"github.com/katalvlaran/padchain/planner"
)

// BenchmarkCost_Depth25Cold measures a full evaluation with an empty cache.
func BenchmarkCost_Depth25Cold(b *testing.B) {
	seq, _ := planner.ParseSequence("<A^A^^>AvvvA")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cost.New().Cost(25, seq)
	}
}

// BenchmarkCost_Depth25Warm measures evaluation once the cache is populated.
func BenchmarkCost_Depth25Warm(b *testing.B) {
	seq, _ := planner.ParseSequence("<A^A^^>AvvvA")
	eng := cost.New()
	_ = eng.Cost(25, seq)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = eng.Cost(25, seq)
	}
}
