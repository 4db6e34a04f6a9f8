package sim

import "github.com/sirupsen/logrus"

// Table is one unit of work traversing the serving pipeline. It is an
// explicit state machine: stage holds the index of the station the table is
// currently at (or waiting for), and only the simulator's dispatch loop ever
// advances it. Stages are never skipped or repeated.
type Table struct {
	ID    int
	stage int // 0..StageCount-1 while in the pipeline, StageCount once done
}

// Stage returns the index of the stage the table is at, or StageCount once
// the table has been fully served.
func (t *Table) Stage() int { return t.stage }

// Done reports whether the table has been fully served.
func (t *Table) Done() bool { return t.stage >= StageCount }

// enterStage asks the current stage's station for a server. When the station
// is saturated the table parks in its wait queue until a release hands it
// the freed slot; there is no abandonment, every table is eventually served.
func (t *Table) enterStage(sim *Simulator) {
	st := sim.Stations[t.stage]
	if st.Acquire(t) {
		t.beginService(sim)
	} else {
		logrus.Debugf("[t=%08.3f] table %d waits at %s (%d ahead)",
			sim.Clock, t.ID, st.Name, st.QueueLen())
	}
}

// beginService samples this stage's service duration and schedules its
// expiry. Called either directly from enterStage or by a releasing table
// handing over its slot, in both cases at the current virtual time.
func (t *Table) beginService(sim *Simulator) {
	d := sim.sampleServiceMinutes(t.stage)
	sim.Schedule(&ServiceDoneEvent{time: sim.Clock + d, Table: t})
}

// finishService releases the station, resumes the oldest waiter if there is
// one, and moves the table to the next stage or to its completion record.
func (t *Table) finishService(sim *Simulator) {
	st := sim.Stations[t.stage]
	if next := st.Release(); next != nil {
		next.beginService(sim)
	}
	t.stage++
	if t.stage < StageCount {
		t.enterStage(sim)
		return
	}
	sim.recordCompletion(t)
}
