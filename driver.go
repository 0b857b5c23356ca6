package seamotion

import "time"

// animationDriver is the state machine that owns the frame loop and the
// optional timed cutoff. Invariants it maintains:
//
//   - at most one pending frame handle and one pending duration timer,
//   - both cancelled before any restart schedules new ones,
//   - no frame rendered outside StateRunning,
//   - the cutoff fires its end notification exactly once.
type animationDriver struct {
	sched scheduler
	state AnimationState

	speed     float64
	intensity float64
	duration  time.Duration
	startedAt time.Time

	frame FrameHandle
	timer TimerHandle

	// render submits one frame's uniforms and draw call.
	render func(elapsed time.Duration, speed, intensity float64)
	// onEnd is the animation-end notification, fired only by the cutoff.
	onEnd func()
}

func newAnimationDriver(sched scheduler) *animationDriver {
	return &animationDriver{sched: sched, state: StateIdle}
}

// Start begins (or restarts) the loop under the given motion parameters:
// cancel anything pending, reset the epoch, re-arm the cutoff, schedule the
// first frame. Calling it on a running, stopped, or errored driver is the
// restart path; the cancel-first discipline makes it safe at any time.
func (d *animationDriver) Start(speed, intensity float64, duration time.Duration) {
	d.cancelPending()
	d.speed = speed
	d.intensity = intensity
	d.duration = duration
	d.startedAt = d.sched.Now()
	d.state = StateRunning
	if duration > 0 {
		d.timer = d.sched.After(duration, d.cutoff)
	}
	d.frame = d.sched.RequestFrame(d.step)
}

// step is the per-frame callback: account elapsed time, render, re-arm.
func (d *animationDriver) step(now time.Time) {
	d.frame = 0
	if d.state != StateRunning {
		return
	}
	if d.render != nil {
		d.render(now.Sub(d.startedAt), d.speed, d.intensity)
	}
	// render may have stopped or failed the driver; only a still-running
	// loop schedules the next frame.
	if d.state == StateRunning {
		d.frame = d.sched.RequestFrame(d.step)
	}
}

// cutoff is the duration timer callback.
func (d *animationDriver) cutoff() {
	d.timer = 0
	if d.state != StateRunning {
		return
	}
	d.cancelPending()
	d.state = StateStopped
	if d.onEnd != nil {
		d.onEnd()
	}
}

// Stop halts the loop and cancels the cutoff. Subsequent calls are no-ops.
func (d *animationDriver) Stop() {
	if d.state == StateStopped {
		return
	}
	d.cancelPending()
	d.state = StateStopped
}

// awaitImage parks the driver while a source image is being acquired.
func (d *animationDriver) awaitImage() {
	d.cancelPending()
	d.state = StateLoading
}

// fail marks the current attempt terminally failed.
func (d *animationDriver) fail() {
	d.cancelPending()
	d.state = StateErrored
}

// teardown returns the driver to idle, synchronously cancelling the pending
// frame and timer. Called on unmount; forgetting either cancel would leak a
// draw into a destroyed surface or a stop notification after teardown.
func (d *animationDriver) teardown() {
	d.cancelPending()
	d.state = StateIdle
}

func (d *animationDriver) cancelPending() {
	if d.frame != 0 {
		d.sched.CancelFrame(d.frame)
		d.frame = 0
	}
	if d.timer != 0 {
		d.sched.CancelTimer(d.timer)
		d.timer = 0
	}
}

// State returns the current lifecycle state.
func (d *animationDriver) State() AnimationState { return d.state }

// Elapsed returns the wall-clock time since the loop (re)started.
func (d *animationDriver) Elapsed() time.Duration {
	if d.startedAt.IsZero() {
		return 0
	}
	return d.sched.Now().Sub(d.startedAt)
}
