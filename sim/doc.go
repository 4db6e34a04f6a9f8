// Package sim provides the discrete-event simulation engine for mess-sim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - table.go: the per-table state machine (acquire → hold → release, three times)
//   - event.go: the event types that drive the simulation (arrival, service done)
//   - simulator.go: the (time, sequence)-ordered event queue and dispatch loop
//
// # Model
//
// A fixed population of tables flows through three staffed stages, each a
// Station with fixed capacity and a FIFO wait queue. The simulation is
// single-threaded and cooperative: one continuation runs to its next
// suspension point before the next event is dispatched, so stations and the
// clock need no locking. Service durations are drawn uniformly from
// [mean-jitter, mean+jitter] using a single seeded generator, which makes a
// run bit-for-bit reproducible for a fixed (Config, seed).
//
// Derived reporting (realized duration, target status, histogram, cumulative
// curve) lives in sim/report.
package sim
