// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// queuedEvent pairs an Event with the sequence number it was scheduled under.
// The sequence is the deterministic tie-break between events due at the same
// instant: they fire in the order they were scheduled.
type queuedEvent struct {
	ev  Event
	seq uint64
}

// EventQueue implements heap.Interface and orders events by (due time,
// insertion sequence).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []*queuedEvent

func (eq EventQueue) Len() int { return len(eq) }
func (eq EventQueue) Less(i, j int) bool {
	if eq[i].ev.Timestamp() != eq[j].ev.Timestamp() {
		return eq[i].ev.Timestamp() < eq[j].ev.Timestamp()
	}
	return eq[i].seq < eq[j].seq
}
func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(*queuedEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, system state, and
// the event loop. One Simulator models one serving duty; it is single-use.
type Simulator struct {
	// Clock is the current virtual time in minutes from the start of the
	// duty. It never decreases and advances only to the due time of the
	// next dispatched event.
	Clock float64
	// EventQueue holds all pending simulator events: arrivals and service
	// expiries. Each table contributes a bounded number of events (one
	// arrival plus one expiry per stage), so the queue always drains.
	EventQueue EventQueue
	// Stations are the bounded server pools, in pipeline order.
	Stations [StageCount]*Station

	cfg        Config
	rng        *rand.Rand
	seq        uint64
	startOfDay time.Time
	completed  []CompletionRecord
}

// NewSimulator validates cfg and builds a simulator ready to Run. A config
// violation is reported before any event is scheduled; there are no partial
// runs.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	startOfDay, _ := ParseStartClock(cfg.StartClock) // checked by Validate
	s := &Simulator{
		EventQueue: make(EventQueue, 0),
		cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed)),
		startOfDay: startOfDay,
	}
	for i, sc := range cfg.Stages {
		s.Stations[i] = NewStation(sc.Name, sc.Capacity)
	}
	return s, nil
}

// Schedule pushes ev into the event queue. A due time before the current
// clock can only come from a defect in duration sampling, so it panics
// rather than silently clamping.
func (sim *Simulator) Schedule(ev Event) {
	if ev.Timestamp() < sim.Clock {
		panic(fmt.Sprintf("sim: %T scheduled %.6f minutes in the past", ev, sim.Clock-ev.Timestamp()))
	}
	sim.seq++
	heap.Push(&sim.EventQueue, &queuedEvent{ev: ev, seq: sim.seq})
}

// Run spawns one arrival per table at virtual time 0 (insertion order equals
// table id) and dispatches events until the queue is empty. It returns the
// completion records sorted by (offset, table id). Run must be called once
// per Simulator.
func (sim *Simulator) Run() ResultSet {
	for id := 1; id <= sim.cfg.Tables; id++ {
		sim.Schedule(&ArrivalEvent{time: 0, Table: &Table{ID: id}})
	}
	for len(sim.EventQueue) > 0 {
		qe := heap.Pop(&sim.EventQueue).(*queuedEvent)
		// advance the clock
		sim.Clock = qe.ev.Timestamp()
		logrus.Debugf("[t=%08.3f] executing %T", sim.Clock, qe.ev)
		qe.ev.Execute(sim)
	}
	logrus.Debugf("[t=%08.3f] simulation ended, %d tables served", sim.Clock, len(sim.completed))
	return newResultSet(sim.completed)
}

// sampleServiceMinutes draws the service duration for one stage, uniform in
// [mean-jitter, mean+jitter]. Exactly one variate is consumed per service
// start, so zero-jitter stages advance the generator the same way jittered
// ones do. The clamp guards the scheduler's non-negative delay invariant at
// the float boundary; Validate already excludes genuinely negative windows.
func (sim *Simulator) sampleServiceMinutes(stage int) float64 {
	sc := sim.cfg.Stages[stage]
	d := sc.MeanMinutes - sc.JitterMinutes + sim.rng.Float64()*(2*sc.JitterMinutes)
	return math.Max(d, 0)
}

// recordCompletion emits the table's single completion record, stamped with
// the current virtual time and its wall-clock equivalent.
func (sim *Simulator) recordCompletion(t *Table) {
	sim.completed = append(sim.completed, CompletionRecord{
		TableID:       t.ID,
		OffsetMinutes: sim.Clock,
		FinishedAt:    sim.startOfDay.Add(time.Duration(sim.Clock * float64(time.Minute))),
	})
}
