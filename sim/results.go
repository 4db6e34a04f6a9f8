package sim

import (
	"sort"
	"time"
)

// CompletionRecord is emitted exactly once per table, after it vacates the
// final stage.
type CompletionRecord struct {
	TableID       int
	OffsetMinutes float64   // minutes from simulation start
	FinishedAt    time.Time // start-of-day reference plus offset
}

// FinishedClock formats the absolute completion time as HH:MM:SS.
func (r CompletionRecord) FinishedClock() string {
	return r.FinishedAt.Format("15:04:05")
}

// ResultSet is the immutable, ordered outcome of one run: completion records
// sorted by offset ascending, ties broken by table id ascending.
type ResultSet struct {
	records []CompletionRecord
}

func newResultSet(records []CompletionRecord) ResultSet {
	sorted := make([]CompletionRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].OffsetMinutes != sorted[j].OffsetMinutes {
			return sorted[i].OffsetMinutes < sorted[j].OffsetMinutes
		}
		return sorted[i].TableID < sorted[j].TableID
	})
	return ResultSet{records: sorted}
}

// Len returns the number of completion records.
func (rs ResultSet) Len() int { return len(rs.records) }

// At returns the i-th record in completion order.
func (rs ResultSet) At(i int) CompletionRecord { return rs.records[i] }

// Records returns a copy of the records in completion order.
func (rs ResultSet) Records() []CompletionRecord {
	out := make([]CompletionRecord, len(rs.records))
	copy(out, rs.records)
	return out
}

// RealizedMinutes is the maximum completion offset: the duration the serving
// duty actually took. Zero for an empty result set.
func (rs ResultSet) RealizedMinutes() float64 {
	if len(rs.records) == 0 {
		return 0
	}
	return rs.records[len(rs.records)-1].OffsetMinutes
}
