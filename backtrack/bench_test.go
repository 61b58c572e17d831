package backtrack_test

import (
	"testing"

	"github.com/katalvlaran/algoreplay/backtrack"
)

// BenchmarkGenerateSubsets records the power set of 7 elements (383 steps).
func BenchmarkGenerateSubsets(b *testing.B) {
	elems := []string{"a", "b", "c", "d", "e", "f", "g"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = backtrack.GenerateSubsets(elems)
	}
}

// BenchmarkGenerateParentheses records n=5 (433 steps); each Step copies the
// whole tree, so cost grows quadratically in the step count.
func BenchmarkGenerateParentheses(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = backtrack.GenerateParentheses(5)
	}
}
