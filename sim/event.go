package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event carries a due time (in minutes of virtual time) and an Execute
// method that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent marks a table entering the pipeline at its first stage.
// All tables arrive at virtual time 0; their insertion order into the event
// queue (ascending table id) is the only thing that orders them.
type ArrivalEvent struct {
	time  float64
	Table *Table
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute starts the table's traversal at stage 0.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("[t=%08.3f] << arrival: table %d", e.time, e.Table.ID)
	e.Table.enterStage(sim)
}

// ServiceDoneEvent fires when a table's hold on its current stage expires.
type ServiceDoneEvent struct {
	time  float64
	Table *Table
}

// Timestamp returns the scheduled time of the ServiceDoneEvent.
func (e *ServiceDoneEvent) Timestamp() float64 {
	return e.time
}

// Execute releases the stage's station, wakes the oldest waiter, and moves
// the table along the pipeline.
func (e *ServiceDoneEvent) Execute(sim *Simulator) {
	logrus.Debugf("[t=%08.3f] << service done: table %d at %s",
		e.time, e.Table.ID, sim.Stations[e.Table.stage].Name)
	e.Table.finishService(sim)
}
