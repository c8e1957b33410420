package alarm

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	errorvalues "github.com/limbo/discipline/internal/error_values"
	"github.com/limbo/discipline/pkg/clock"
)

var (
	ErrInvalidFireTime = errors.New("alarm: invalid fire time")
	ErrEngineStopped   = errors.New("alarm: engine stopped")
)

type entry struct {
	alarm Alarm
	index int
}

type alarmQueue []*entry

func (q alarmQueue) Len() int { return len(q) }

func (q alarmQueue) Less(i, j int) bool {
	return q[i].alarm.At.Before(q[j].alarm.At)
}

func (q alarmQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *alarmQueue) Push(x any) {
	e := x.(*entry)
	e.index = len(*q)
	*q = append(*q, e)
}

func (q *alarmQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[0 : n-1]
	return e
}

// Engine is an in-process Platform: a time-ordered queue of one-shot alarms,
// one per key, delivered on C() when due. Pending alarms live in memory only
// and are gone after a restart.
type Engine struct {
	mu      sync.Mutex
	queue   alarmQueue
	byKey   map[string]*entry
	clock   clock.Clock
	window  time.Duration
	exact   atomic.Bool
	out     chan Alarm
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	fired   atomic.Uint64
}

type EngineOptions struct {
	Clock clock.Clock
	// Delivery granularity of inexact alarms.
	InexactWindow time.Duration
	ExactAllowed  bool
	BufferSize    int
}

func NewEngine(opts EngineOptions) *Engine {
	if opts.Clock == nil {
		opts.Clock = clock.NewSystem(nil)
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 16
	}
	e := &Engine{
		queue:  make(alarmQueue, 0),
		byKey:  make(map[string]*entry),
		clock:  opts.Clock,
		window: opts.InexactWindow,
		out:    make(chan Alarm, opts.BufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	e.exact.Store(opts.ExactAllowed)
	return e
}

// C delivers fired alarms. It is closed after Stop.
func (e *Engine) C() <-chan Alarm {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.stopped = true
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) CanScheduleExact() bool {
	return e.exact.Load()
}

// SetExactAllowed flips the exact-alarm permission, as when the user grants
// or revokes it in the system settings.
func (e *Engine) SetExactAllowed(allowed bool) {
	e.exact.Store(allowed)
}

func (e *Engine) RegisterExact(key string, at time.Time, p Payload) error {
	if !e.CanScheduleExact() {
		return errorvalues.ErrSchedulingDenied
	}
	return e.register(Alarm{Key: key, At: at, Exact: true, Payload: p})
}

func (e *Engine) RegisterInexact(key string, at time.Time, p Payload) error {
	return e.register(Alarm{Key: key, At: deferToWindow(at, e.window), Exact: false, Payload: p})
}

func (e *Engine) Cancel(key string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ent, ok := e.byKey[key]; ok {
		heap.Remove(&e.queue, ent.index)
		delete(e.byKey, key)
		e.signalWakeup()
	}
	return nil
}

// Pending returns the alarm waiting under key.
func (e *Engine) Pending(key string) (Alarm, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent, ok := e.byKey[key]
	if !ok {
		return Alarm{}, false
	}
	return ent.alarm, true
}

// Len returns the number of pending alarms.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// Fired returns how many alarms have been delivered.
func (e *Engine) Fired() uint64 {
	return e.fired.Load()
}

func (e *Engine) register(a Alarm) error {
	if a.At.IsZero() || a.Key == "" {
		return ErrInvalidFireTime
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrEngineStopped
	}
	if ent, ok := e.byKey[a.Key]; ok {
		ent.alarm = a
		heap.Fix(&e.queue, ent.index)
	} else {
		ent := &entry{alarm: a}
		heap.Push(&e.queue, ent)
		e.byKey[a.Key] = ent
	}
	e.signalWakeup()
	return nil
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := next.At.Sub(e.clock.Now())
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			for _, a := range e.popDue(e.clock.Now()) {
				select {
				case e.out <- a:
					e.fired.Add(1)
				case <-e.stopCh:
					return
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			stopTimer(timer)
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

func (e *Engine) peek() (Alarm, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.queue) == 0 {
		return Alarm{}, false
	}
	return e.queue[0].alarm, true
}

func (e *Engine) popDue(now time.Time) []Alarm {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Alarm, 0)
	for len(e.queue) > 0 {
		if e.queue[0].alarm.At.After(now) {
			break
		}
		ent := heap.Pop(&e.queue).(*entry)
		delete(e.byKey, ent.alarm.Key)
		out = append(out, ent.alarm)
	}
	return out
}

// deferToWindow rounds at up to the next multiple of window.
func deferToWindow(at time.Time, window time.Duration) time.Time {
	if window <= 0 {
		return at
	}
	t := at.Truncate(window)
	if t.Before(at) {
		t = t.Add(window)
	}
	return t
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
