package solver_test

import (
	"testing"

	"github.com/katalvlaran/padchain/solver"
)

// BenchmarkSum_Depth25 measures a full batch with a fresh cache per run.
func BenchmarkSum_Depth25(b *testing.B) {
	codes := make([]solver.Code, len(sampleCodes))
	for i, s := range sampleCodes {
		codes[i] = solver.MustParseCode(s)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = solver.Sum(codes, 25)
	}
}
