// Package report derives presentation-ready aggregates from a simulation
// result set: realized duty duration, target status, a bucketed completion
// histogram, and the cumulative completion curve. It is a pure read-only
// layer over sim.ResultSet.
package report

import (
	"math"

	"github.com/mess-sim/mess-sim/sim"
)

// BucketMinutes is the histogram bucket width.
const BucketMinutes = 5.0

// Bucket counts completions with offset in [StartMinute, StartMinute+BucketMinutes).
type Bucket struct {
	StartMinute float64
	Count       int
}

// CurvePoint is one step of the cumulative completion curve: Completed
// tables had finished by OffsetMinutes.
type CurvePoint struct {
	OffsetMinutes float64
	Completed     int
}

// Summary aggregates one run against an externally supplied target duration.
type Summary struct {
	TableCount      int
	TargetMinutes   float64
	RealizedMinutes float64
	SlackMinutes    float64 // target minus realized; negative when exceeded
	TargetMet       bool
	Histogram       []Bucket     // contiguous buckets from 0 through the realized duration
	Curve           []CurvePoint // one point per completion, in completion order
}

// Summarize computes the report quantities from a result set. Safe for an
// empty result set (zero realized duration, no histogram or curve).
func Summarize(rs sim.ResultSet, targetMinutes float64) *Summary {
	s := &Summary{
		TableCount:      rs.Len(),
		TargetMinutes:   targetMinutes,
		RealizedMinutes: rs.RealizedMinutes(),
	}
	s.SlackMinutes = targetMinutes - s.RealizedMinutes
	s.TargetMet = s.SlackMinutes >= 0

	if rs.Len() == 0 {
		return s
	}

	buckets := int(math.Floor(s.RealizedMinutes/BucketMinutes)) + 1
	s.Histogram = make([]Bucket, buckets)
	for i := range s.Histogram {
		s.Histogram[i].StartMinute = float64(i) * BucketMinutes
	}
	s.Curve = make([]CurvePoint, 0, rs.Len())
	for i, r := range rs.Records() {
		s.Histogram[int(r.OffsetMinutes/BucketMinutes)].Count++
		s.Curve = append(s.Curve, CurvePoint{OffsetMinutes: r.OffsetMinutes, Completed: i + 1})
	}
	return s
}
