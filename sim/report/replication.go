package report

import (
	"math"
	"sort"
)

// ReplicationStats summarizes realized duty durations across independent
// replications of the same configuration under different seeds.
type ReplicationStats struct {
	Runs          int
	TargetMinutes float64
	MinMinutes    float64
	MeanMinutes   float64
	P95Minutes    float64
	MaxMinutes    float64
	MetCount      int // replications whose realized duration stayed within target
}

// AggregateReplications computes spread statistics over realized durations.
// Safe for an empty slice (all zero-valued fields).
func AggregateReplications(realized []float64, targetMinutes float64) *ReplicationStats {
	st := &ReplicationStats{Runs: len(realized), TargetMinutes: targetMinutes}
	if len(realized) == 0 {
		return st
	}
	sorted := append([]float64(nil), realized...)
	sort.Float64s(sorted)

	st.MinMinutes = sorted[0]
	st.MaxMinutes = sorted[len(sorted)-1]
	total := 0.0
	for _, r := range sorted {
		total += r
		if r <= targetMinutes {
			st.MetCount++
		}
	}
	st.MeanMinutes = total / float64(len(sorted))

	rank := int(math.Ceil(0.95*float64(len(sorted)))) - 1
	st.P95Minutes = sorted[rank]
	return st
}
