package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResultSet_SortsByOffsetThenTableID(t *testing.T) {
	rs := newResultSet([]CompletionRecord{
		{TableID: 3, OffsetMinutes: 2.5},
		{TableID: 2, OffsetMinutes: 1.0},
		{TableID: 4, OffsetMinutes: 2.5},
		{TableID: 1, OffsetMinutes: 2.5},
	})

	var ids []int
	for _, r := range rs.Records() {
		ids = append(ids, r.TableID)
	}
	assert.Equal(t, []int{2, 1, 3, 4}, ids)
}

func TestResultSet_RecordsReturnsACopy(t *testing.T) {
	rs := newResultSet([]CompletionRecord{
		{TableID: 1, OffsetMinutes: 1},
		{TableID: 2, OffsetMinutes: 2},
	})

	records := rs.Records()
	records[0].TableID = 99

	assert.Equal(t, 1, rs.At(0).TableID)
}

func TestResultSet_RealizedMinutes(t *testing.T) {
	assert.Zero(t, ResultSet{}.RealizedMinutes())

	rs := newResultSet([]CompletionRecord{
		{TableID: 1, OffsetMinutes: 4},
		{TableID: 2, OffsetMinutes: 9.5},
	})
	assert.InDelta(t, 9.5, rs.RealizedMinutes(), 1e-9)
}

func TestCompletionRecord_FinishedClock(t *testing.T) {
	start, err := ParseStartClock("07:00")
	require.NoError(t, err)

	r := CompletionRecord{
		TableID:       1,
		OffsetMinutes: 4.5,
		FinishedAt:    start.Add(time.Duration(4.5 * float64(time.Minute))),
	}
	assert.Equal(t, "07:04:30", r.FinishedClock())
}
