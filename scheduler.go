package seamotion

import "time"

// FrameHandle is the token for one pending "run after the next display
// refresh" request. Zero means none pending.
type FrameHandle uint64

// TimerHandle is the token for one pending deferred callback. Zero means none
// pending.
type TimerHandle uint64

// scheduler is the cooperative scheduler every callback in the effect runs
// on: frame callbacks, the duration timer, nothing else. There is no
// parallelism; the contract is cancel-before-reschedule at every mutation
// point.
type scheduler interface {
	Now() time.Time
	RequestFrame(fn func(now time.Time)) FrameHandle
	CancelFrame(h FrameHandle)
	After(d time.Duration, fn func()) TimerHandle
	CancelTimer(h TimerHandle)
}

// tickScheduler is the production scheduler, pumped once per game tick from
// [Effect.Update]. A tick plays the role of the vsync-aligned refresh:
// timers that have come due fire first, then every frame callback requested
// before this tick. Frames requested during a callback wait for the next
// tick, so one request yields at most one invocation per tick.
type tickScheduler struct {
	now    func() time.Time
	nextID uint64
	frames map[FrameHandle]func(time.Time)
	order  []FrameHandle
	timers map[TimerHandle]deferredTimer
}

type deferredTimer struct {
	due time.Time
	fn  func()
}

func newTickScheduler(now func() time.Time) *tickScheduler {
	return &tickScheduler{
		now:    now,
		frames: make(map[FrameHandle]func(time.Time)),
		timers: make(map[TimerHandle]deferredTimer),
	}
}

// Now returns the scheduler's wall clock.
func (s *tickScheduler) Now() time.Time { return s.now() }

// RequestFrame queues fn to run on the next tick.
func (s *tickScheduler) RequestFrame(fn func(now time.Time)) FrameHandle {
	s.nextID++
	h := FrameHandle(s.nextID)
	s.frames[h] = fn
	s.order = append(s.order, h)
	return h
}

// CancelFrame removes a pending frame request. Unknown or already-fired
// handles are ignored.
func (s *tickScheduler) CancelFrame(h FrameHandle) {
	delete(s.frames, h)
}

// After queues fn to run on the first tick whose clock is at or past now+d.
func (s *tickScheduler) After(d time.Duration, fn func()) TimerHandle {
	s.nextID++
	h := TimerHandle(s.nextID)
	s.timers[h] = deferredTimer{due: s.now().Add(d), fn: fn}
	return h
}

// CancelTimer removes a pending timer. Unknown or already-fired handles are
// ignored.
func (s *tickScheduler) CancelTimer(h TimerHandle) {
	delete(s.timers, h)
}

// Tick fires due timers in due order, then the frame callbacks that were
// pending when the tick began. Callbacks may cancel later entries of the same
// batch; cancelled entries are skipped.
func (s *tickScheduler) Tick() {
	now := s.now()
	s.fireTimers(now)

	if len(s.order) == 0 {
		return
	}
	batch := s.order
	s.order = nil
	for _, h := range batch {
		fn, ok := s.frames[h]
		if !ok {
			continue
		}
		delete(s.frames, h)
		fn(now)
	}
}

// fireTimers runs every timer due at or before now, earliest first (ties
// break on creation order). Re-scanned after each callback because a timer
// may cancel or arm others.
func (s *tickScheduler) fireTimers(now time.Time) {
	for {
		var (
			best  TimerHandle
			found bool
		)
		for h, t := range s.timers {
			if t.due.After(now) {
				continue
			}
			if !found || s.timers[best].due.After(t.due) ||
				(s.timers[best].due.Equal(t.due) && h < best) {
				best = h
				found = true
			}
		}
		if !found {
			return
		}
		fn := s.timers[best].fn
		delete(s.timers, best)
		fn()
	}
}

// pendingFrames reports the number of un-fired frame requests.
func (s *tickScheduler) pendingFrames() int { return len(s.frames) }

// pendingTimers reports the number of un-fired timers.
func (s *tickScheduler) pendingTimers() int { return len(s.timers) }
