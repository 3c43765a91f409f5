package clock

import (
	"container/heap"
	"time"

	clk "github.com/benbjohnson/clock"
)

// Key identifies a scheduled task. Scheduling a task under a key that is already
// pending replaces the earlier task.
type Key string

type task struct {
	key   Key
	due   time.Time
	seq   uint64
	fn    func()
	index int
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler is a timer queue polled by the tick loop. Tasks never run on their
// own goroutine: they run inside Poll, on the caller's goroutine, in due order.
// While frozen, time stands still for the queue: nothing runs, and Thaw pushes
// every deadline back by the time spent frozen.
type Scheduler struct {
	source  clk.Clock
	queue   taskQueue
	pending map[Key]*task
	seq     uint64

	frozen   bool
	frozenAt time.Time
}

// NewScheduler creates an empty scheduler reading time from source.
func NewScheduler(source clk.Clock) *Scheduler {
	return &Scheduler{
		source:  source,
		pending: make(map[Key]*task),
	}
}

// After schedules fn to run at the first Poll at least d from now.
func (s *Scheduler) After(key Key, d time.Duration, fn func()) {
	s.Cancel(key)
	s.seq++
	t := &task{key: key, due: s.now().Add(d), seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	s.pending[key] = t
}

// Cancel drops the pending task under key, if any.
func (s *Scheduler) Cancel(key Key) bool {
	t, ok := s.pending[key]
	if !ok {
		return false
	}
	heap.Remove(&s.queue, t.index)
	delete(s.pending, key)
	return true
}

// Scheduled reports whether a task is pending under key.
func (s *Scheduler) Scheduled(key Key) bool {
	_, ok := s.pending[key]
	return ok
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Poll runs every task that is due and returns how many ran. Tasks scheduled by
// a running task are considered in the same poll if they are already due.
func (s *Scheduler) Poll() int {
	if s.frozen {
		return 0
	}
	now := s.source.Now()
	ran := 0
	for len(s.queue) > 0 && !s.queue[0].due.After(now) {
		t := heap.Pop(&s.queue).(*task)
		delete(s.pending, t.key)
		t.fn()
		ran++
	}
	return ran
}

func (s *Scheduler) now() time.Time {
	if s.frozen {
		return s.frozenAt
	}
	return s.source.Now()
}

// Freeze stops the queue's clock. Calling it twice is the same as once.
func (s *Scheduler) Freeze() {
	if s.frozen {
		return
	}
	s.frozen = true
	s.frozenAt = s.source.Now()
}

// Thaw restarts the queue's clock, shifting every pending deadline by the frozen
// duration. Relative order is unchanged, so the heap stays valid.
func (s *Scheduler) Thaw() {
	if !s.frozen {
		return
	}
	shift := s.source.Now().Sub(s.frozenAt)
	for _, t := range s.queue {
		t.due = t.due.Add(shift)
	}
	s.frozen = false
}

// Frozen reports whether the queue's clock is stopped.
func (s *Scheduler) Frozen() bool {
	return s.frozen
}
