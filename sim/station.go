// Implements the Station, a bounded pool of interchangeable servers with a
// FIFO wait queue. Tables that cannot be seated immediately wait in strict
// arrival order; a release hands the freed slot to the oldest waiter.

package sim

// Station models one stage's server pool. Capacity is immutable after
// construction and in-use never exceeds it.
type Station struct {
	Name     string
	capacity int
	inUse    int
	waiters  waitQueue
}

// NewStation builds a station with the given fixed capacity.
func NewStation(name string, capacity int) *Station {
	if capacity < 1 {
		panic("sim: station capacity must be >= 1")
	}
	return &Station{Name: name, capacity: capacity}
}

// Capacity returns the fixed number of servers at this station.
func (st *Station) Capacity() int { return st.capacity }

// InUse returns the number of servers currently serving a table.
func (st *Station) InUse() int { return st.inUse }

// QueueLen returns the number of tables waiting for a server.
func (st *Station) QueueLen() int { return st.waiters.Len() }

// Acquire grants t a server immediately when one is free and reports true.
// Otherwise t joins the FIFO wait queue and is granted on a later Release.
func (st *Station) Acquire(t *Table) bool {
	if st.inUse < st.capacity {
		st.inUse++
		return true
	}
	st.waiters.Enqueue(t)
	return false
}

// Release frees the slot held by a departing table. If tables are waiting,
// the oldest waiter takes over the slot and is returned so the caller can
// resume it; in-use stays constant across that handoff. Returns nil when no
// table was waiting.
func (st *Station) Release() *Table {
	if st.inUse == 0 {
		panic("sim: release on an idle station")
	}
	st.inUse--
	next := st.waiters.Dequeue()
	if next != nil {
		st.inUse++
	}
	return next
}

// waitQueue is a FIFO queue of tables blocked on a station.
type waitQueue struct {
	queue []*Table
}

// Enqueue adds a table to the back of the wait queue.
func (wq *waitQueue) Enqueue(t *Table) {
	wq.queue = append(wq.queue, t)
}

// Dequeue removes and returns the front of the queue, or nil when empty.
func (wq *waitQueue) Dequeue() *Table {
	if len(wq.queue) == 0 {
		return nil
	}
	t := wq.queue[0]
	wq.queue = wq.queue[1:]
	return t
}

// Len returns the number of waiting tables.
func (wq *waitQueue) Len() int { return len(wq.queue) }

// Peek returns the table at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *waitQueue) Peek() *Table {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}
