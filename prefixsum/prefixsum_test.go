package prefixsum_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoreplay/prefixsum"
	"github.com/katalvlaran/algoreplay/trace"
)

func TestGenerate_Counts(t *testing.T) {
	cases := []struct {
		name string
		nums []int
		k    int
		want []prefixsum.Subarray
	}{
		{"ones", []int{1, 1, 1}, 2, []prefixsum.Subarray{{0, 1}, {1, 2}}},
		{"mixed", []int{1, 2, 3}, 3, []prefixsum.Subarray{{0, 1}, {2, 2}}},
		{"zero sums", []int{1, -1, 0}, 0, []prefixsum.Subarray{{0, 1}, {0, 2}, {2, 2}}},
		{"none", []int{5}, 3, nil},
		{"empty", nil, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := prefixsum.Generate(tc.nums, tc.k)
			require.NoError(t, err)
			require.NoError(t, trace.Verify(tr))

			if diff := cmp.Diff(tc.want, tr.Last().Results, cmpEmpty()); diff != "" {
				t.Errorf("results (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tc.want), tr.Count(trace.KindCollect))
			assert.Equal(t, len(tc.nums), tr.Count(trace.KindRecord))
			assert.Equal(t, len(tc.nums), tr.Count(trace.KindScan))
			assert.Equal(t, trace.KindStart, tr.First().Kind)
			assert.Equal(t, trace.KindDone, tr.Last().Kind)
		})
	}
}

func cmpEmpty() cmp.Option {
	return cmp.FilterValues(func(a, b []prefixsum.Subarray) bool {
		return len(a) == 0 && len(b) == 0
	}, cmp.Ignore())
}

// TestGenerate_TableSnapshots: the table in each Step is frozen at that instant.
func TestGenerate_TableSnapshots(t *testing.T) {
	tr, err := prefixsum.Generate([]int{1, 1, 1}, 2)
	require.NoError(t, err)

	start := tr.First()
	assert.Equal(t, []prefixsum.Entry{{Prefix: 0, Positions: []int{-1}}}, start.Table)

	last := tr.Last()
	assert.Equal(t, []prefixsum.Entry{
		{Prefix: 0, Positions: []int{-1}},
		{Prefix: 1, Positions: []int{0}},
		{Prefix: 2, Positions: []int{1}},
		{Prefix: 3, Positions: []int{2}},
	}, last.Table)

	// Step 1 scans index 0: prefix 1, looks up -1, table unchanged.
	s := tr.At(1)
	assert.Equal(t, trace.KindScan, s.Kind)
	assert.Equal(t, 1, s.Prefix)
	assert.Equal(t, -1, s.Lookup)
	assert.Len(t, s.Table, 1)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := prefixsum.Generate(make([]int, prefixsum.MaxLen+1), 0)
	assert.ErrorIs(t, err, prefixsum.ErrTooManyNumbers)
	_, err = prefixsum.Generate([]int{prefixsum.MaxAbsValue + 1}, 0)
	assert.ErrorIs(t, err, prefixsum.ErrValueOutOfRange)
	_, err = prefixsum.Generate([]int{1}, prefixsum.MaxLen*prefixsum.MaxAbsValue+1)
	assert.ErrorIs(t, err, prefixsum.ErrValueOutOfRange)
	_, err = prefixsum.Generate([]int{1}, math.MinInt)
	assert.ErrorIs(t, err, prefixsum.ErrValueOutOfRange)
	_, err = prefixsum.Generate([]int{1}, math.MaxInt)
	assert.ErrorIs(t, err, prefixsum.ErrValueOutOfRange)
	_, err = prefixsum.Generate([]int{1}, 0, prefixsum.WithMaxSteps(-5))
	assert.ErrorIs(t, err, prefixsum.ErrOptionViolation)

	// 64 zeros with k=0 match every one of the 2080 subarrays.
	tr, err := prefixsum.Generate(make([]int, prefixsum.MaxLen), 0)
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, trace.ErrTraceTooLarge)
	assert.ErrorIs(t, err, trace.ErrInvalidInput)
}

func TestGenerate_Deterministic(t *testing.T) {
	nums := []int{3, 4, 7, 2, -3, 1, 4, 2}
	a, err := prefixsum.Generate(nums, 7)
	require.NoError(t, err)
	b, err := prefixsum.Generate(nums, 7)
	require.NoError(t, err)
	if diff := cmp.Diff(a.Steps(), b.Steps()); diff != "" {
		t.Fatalf("not deterministic:\n%s", diff)
	}
	assert.Len(t, a.Last().Results, 4)
}
