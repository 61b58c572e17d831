package trace_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoreplay/trace"
)

// tally is a minimal Snapshot used to exercise the recorder.
type tally struct {
	trace.Meta
	Results []int
}

func (s tally) ResultCount() int { return len(s.Results) }

func record(t *testing.T, kinds ...trace.Kind) *trace.Trace[tally] {
	t.Helper()
	rec := trace.NewRecorder[tally](0)
	var results []int
	for i, k := range kinds {
		if k == trace.KindCollect {
			results = append(results, i)
		}
		rec.Append(tally{Meta: rec.Meta(k, "step %d", i), Results: append([]int(nil), results...)})
	}
	tr, err := rec.Trace()
	require.NoError(t, err)

	return tr
}

func TestRecorder_SequenceAndAccessors(t *testing.T) {
	tr := record(t, trace.KindStart, trace.KindCollect, trace.KindScan, trace.KindDone)

	require.Equal(t, 4, tr.Len())
	assert.Equal(t, trace.KindStart, tr.First().Kind)
	assert.Equal(t, trace.KindDone, tr.Last().Kind)
	assert.Equal(t, "step 2", tr.At(2).Describe())
	assert.Equal(t, 1, tr.Count(trace.KindCollect))
	assert.NoError(t, trace.Verify(tr))

	for i, s := range tr.All() {
		assert.Equal(t, i, s.Sequence())
	}

	// Steps returns a copy; the trace is unaffected by edits to it.
	steps := tr.Steps()
	steps[0].Kind = trace.KindUndo
	assert.Equal(t, trace.KindStart, tr.First().Kind)
}

func TestRecorder_EmptyIsViolation(t *testing.T) {
	rec := trace.NewRecorder[tally](8)
	tr, err := rec.Trace()
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, trace.ErrContractViolation)
}

func TestRecorder_PanicsOnBrokenInvariants(t *testing.T) {
	t.Run("gap", func(t *testing.T) {
		rec := trace.NewRecorder[tally](0)
		assertViolation(t, func() {
			rec.Append(tally{Meta: trace.Meta{Seq: 1, Kind: trace.KindScan}})
		})
	})
	t.Run("retracted results", func(t *testing.T) {
		rec := trace.NewRecorder[tally](0)
		rec.Append(tally{Meta: rec.Meta(trace.KindCollect, ""), Results: []int{1}})
		assertViolation(t, func() {
			rec.Append(tally{Meta: rec.Meta(trace.KindUndo, "")})
		})
	})
	t.Run("limit", func(t *testing.T) {
		rec := trace.NewRecorder[tally](1)
		rec.Append(tally{Meta: rec.Meta(trace.KindScan, "")})
		assertViolation(t, func() {
			rec.Append(tally{Meta: rec.Meta(trace.KindScan, "")})
		})
	})
}

func assertViolation(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, trace.ErrContractViolation), "got %v", err)
	}()
	fn()
}

func TestVerify_NilTrace(t *testing.T) {
	var tr *trace.Trace[tally]
	assert.Equal(t, 0, tr.Len())
	assert.ErrorIs(t, trace.Verify(tr), trace.ErrContractViolation)
}

func TestClampSteps(t *testing.T) {
	n, err := trace.ClampSteps(0)
	require.NoError(t, err)
	assert.Equal(t, trace.DefaultMaxSteps, n)

	n, err = trace.ClampSteps(100)
	require.NoError(t, err)
	assert.Equal(t, 100, n)

	_, err = trace.ClampSteps(-1)
	assert.ErrorIs(t, err, trace.ErrInvalidInput)
	_, err = trace.ClampSteps(trace.HardStepCeiling + 1)
	assert.ErrorIs(t, err, trace.ErrInvalidInput)
}

func TestKind_Terminal(t *testing.T) {
	assert.True(t, trace.KindDone.Terminal())
	assert.True(t, trace.KindImpossible.Terminal())
	assert.False(t, trace.KindExpand.Terminal())
	assert.Equal(t, "expand", trace.KindExpand.String())
	assert.ErrorIs(t, trace.ErrTraceTooLarge, trace.ErrInvalidInput)
}
