package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDSTemplateForTimeRange(t *testing.T) {
	for _, tr := range []int{0, 1, 10} {
		templ, err := PDSTemplateForTimeRange(tr)
		require.NoError(t, err)
		assert.Equal(t, 0, templ)
	}
	for _, tr := range []int{2, 3, 4} {
		templ, err := PDSTemplateForTimeRange(tr)
		require.NoError(t, err)
		assert.Equal(t, 8, templ)
	}
	_, err := PDSTemplateForTimeRange(51)
	assert.Error(t, err)
}

func TestStatProcessForGRIB1(t *testing.T) {
	proc, incr, err := StatProcessForGRIB1(TimeRangeAccumulation, 61)
	require.NoError(t, err)
	assert.Equal(t, StatAccumulation, proc)
	assert.Equal(t, 2, incr)

	proc, _, err = StatProcessForGRIB1(TimeRangeAverage, 11)
	require.NoError(t, err)
	assert.Equal(t, StatAverage, proc)

	// Max and min temperature resolve through the parameter code.
	proc, _, err = StatProcessForGRIB1(TimeRangeValidPeriod, 15)
	require.NoError(t, err)
	assert.Equal(t, StatMaximum, proc)

	proc, _, err = StatProcessForGRIB1(TimeRangeValidPeriod, 16)
	require.NoError(t, err)
	assert.Equal(t, StatMinimum, proc)

	_, _, err = StatProcessForGRIB1(TimeRangeValidPeriod, 11)
	assert.Error(t, err)
}

func TestTimeRangeForProcess(t *testing.T) {
	cases := map[int]int{
		StatAverage:      3,
		StatAccumulation: 4,
		StatDifference:   5,
		StatMaximum:      2,
		StatMinimum:      2,
	}
	for proc, want := range cases {
		tr, ok := TimeRangeForProcess(proc)
		require.True(t, ok)
		assert.Equal(t, want, tr)
	}
	_, ok := TimeRangeForProcess(9)
	assert.False(t, ok)
}

func TestCFSRTimeRange(t *testing.T) {
	tr, ok := CFSRTimeRange(193)
	require.True(t, ok)
	assert.Equal(t, 113, tr)
	tr, ok = CFSRTimeRange(207)
	require.True(t, ok)
	assert.Equal(t, 140, tr)
	_, ok = CFSRTimeRange(192)
	assert.False(t, ok)
}

func TestHasNumInAverage(t *testing.T) {
	assert.True(t, HasNumInAverage(3))
	assert.True(t, HasNumInAverage(124))
	assert.False(t, HasNumInAverage(0))
	assert.False(t, HasNumInAverage(10))
}
