package engine

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// TimerID identifies a pending timeout or interval, zero is never issued
type TimerID uint64

type timer struct {
	id       TimerID
	deadline time.Time
	interval time.Duration // zero for one-shot timers
	seq      uint64        // FIFO among equal deadlines
	fn       func()
	index    int
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Loop is a single-threaded cooperative task queue with timers
// Callbacks run one at a time on the goroutine driving RunDue/Advance/Run
// Any goroutine may schedule work; only the driver executes it
type Loop struct {
	clock TimeProvider

	mu     sync.Mutex
	timers timerHeap
	byID   map[TimerID]*timer
	nextID TimerID
	seq    uint64
	tasks  []func()

	wake chan struct{}
}

// NewLoop creates a loop reading time from clock
func NewLoop(clock TimeProvider) *Loop {
	return &Loop{
		clock: clock,
		byID:  make(map[TimerID]*timer),
		wake:  make(chan struct{}, 1),
	}
}

// Now returns the loop clock's current time
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// SetTimeout runs fn once after d
func (l *Loop) SetTimeout(d time.Duration, fn func()) TimerID {
	return l.schedule(d, 0, fn)
}

// SetInterval runs fn every d until cleared, first run after d
func (l *Loop) SetInterval(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		d = time.Millisecond
	}
	return l.schedule(d, d, fn)
}

func (l *Loop) schedule(d, interval time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	l.mu.Lock()
	l.nextID++
	l.seq++
	t := &timer{
		id:       l.nextID,
		deadline: l.clock.Now().Add(d),
		interval: interval,
		seq:      l.seq,
		fn:       fn,
	}
	heap.Push(&l.timers, t)
	l.byID[t.id] = t
	l.mu.Unlock()

	l.signal()
	return t.id
}

// Clear cancels a pending timer; unknown or already fired ids are ignored
func (l *Loop) Clear(id TimerID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.byID[id]
	if !ok {
		return
	}
	delete(l.byID, id)
	if t.index >= 0 {
		heap.Remove(&l.timers, t.index)
	}
}

// Post queues fn to run on the loop ahead of any due timer
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
	l.signal()
}

// Pending returns the number of scheduled timers
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byID)
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) takeTasks() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	tasks := l.tasks
	l.tasks = nil
	return tasks
}

// maxBehind is how many interval periods a timer may lag before it skips ahead
const maxBehind = 2

// popDue removes the earliest timer due at now, re-arming intervals on their own cadence
// An interval lagging more than maxBehind periods, after a stall or suspend, restarts from now
func (l *Loop) popDue(now time.Time) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.timers) == 0 || l.timers[0].deadline.After(now) {
		return nil
	}
	t := l.timers[0]
	if t.interval > 0 {
		l.seq++
		t.deadline = t.deadline.Add(t.interval)
		if now.Sub(t.deadline) > maxBehind*t.interval {
			t.deadline = now.Add(t.interval)
		}
		t.seq = l.seq
		heap.Fix(&l.timers, 0)
	} else {
		heap.Pop(&l.timers)
		delete(l.byID, t.id)
	}
	return t.fn
}

func (l *Loop) nextDeadline() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.timers) == 0 {
		return time.Time{}, false
	}
	return l.timers[0].deadline, true
}

// RunDue drains posted tasks and every timer due at the current clock reading
// Returns the number of callbacks executed
func (l *Loop) RunDue() int {
	ran := 0
	for {
		if tasks := l.takeTasks(); len(tasks) > 0 {
			for _, fn := range tasks {
				fn()
				ran++
			}
			continue
		}

		fn := l.popDue(l.clock.Now())
		if fn == nil {
			return ran
		}
		fn()
		ran++
	}
}

type settableClock interface {
	TimeProvider
	SetTime(time.Time)
}

// Advance moves a settable clock forward by d, stopping at each timer deadline on the way
// so callbacks observe the time they were scheduled for. With a real clock it only runs due work
func (l *Loop) Advance(d time.Duration) int {
	clock, ok := l.clock.(settableClock)
	if !ok {
		return l.RunDue()
	}

	target := clock.Now().Add(d)
	ran := l.RunDue()
	for {
		next, ok := l.nextDeadline()
		if !ok || next.After(target) {
			break
		}
		if next.After(clock.Now()) {
			clock.SetTime(next)
		}
		ran += l.RunDue()
	}
	clock.SetTime(target)
	ran += l.RunDue()
	return ran
}

// Run drives the loop in real time until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	idle := time.NewTimer(time.Hour)
	defer idle.Stop()

	for {
		l.RunDue()

		wait := time.Hour
		if next, ok := l.nextDeadline(); ok {
			wait = next.Sub(l.clock.Now())
			if wait < 0 {
				wait = 0
			}
		}
		idle.Reset(wait)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-idle.C:
		}
	}
}
