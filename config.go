package seamotion

import "time"

// Speed and intensity bounds. Zero means "unset" and takes the default;
// out-of-range values are clamped, never rejected.
const (
	DefaultSpeed = 0.3
	MinSpeed     = 0.1
	MaxSpeed     = 2.0

	DefaultIntensity = 1.0
	MinIntensity     = 0.1
	MaxIntensity     = 3.0
)

// Config is the caller-facing configuration of an [Effect]. A Config is a
// value: SetConfig replaces the previous one wholesale, there is no partial
// mutation. Only Source identity matters for reloads; everything else is
// presentation or motion parameters.
type Config struct {
	// Source is the decoded raster to distort. May be nil at mount time if
	// the image is still being acquired; deliver it later with
	// [Effect.SetSource].
	Source *Source

	// Alt is a textual description of the image, shown in the errored
	// fallback.
	Alt string

	// Speed scales the passage of shader time. Zero takes DefaultSpeed.
	Speed float64

	// Intensity scales every distortion and color-modulation term.
	// Zero takes DefaultIntensity.
	Intensity float64

	// Duration, when positive, stops the animation after this wall-clock
	// interval and fires OnAnimationEnd exactly once. Zero runs forever.
	Duration time.Duration

	// Background is an optional CSS color string (e.g. "#0a1a2f",
	// "rgb(10,26,47)", "navy") painted behind the effect and behind the
	// errored fallback. Invalid values are logged and ignored.
	Background string

	// FadeIn, when positive, ramps the composited alpha from 0 to 1 over
	// this interval once the image loads. Purely presentational; the
	// distortion recipe itself is unaffected.
	FadeIn time.Duration

	// OnLoad fires once when the image has been uploaded and the loop started.
	OnLoad func()

	// OnError fires once per failed attempt with a human-readable message.
	OnError func(message string)

	// OnAnimationEnd fires exactly once when Duration elapses.
	OnAnimationEnd func()
}

// normalized returns a copy with defaults applied and motion parameters
// clamped into their documented ranges.
func (c Config) normalized() Config {
	if c.Speed == 0 {
		c.Speed = DefaultSpeed
	}
	c.Speed = clampFloat(c.Speed, MinSpeed, MaxSpeed)
	if c.Intensity == 0 {
		c.Intensity = DefaultIntensity
	}
	c.Intensity = clampFloat(c.Intensity, MinIntensity, MaxIntensity)
	if c.Duration < 0 {
		c.Duration = 0
	}
	if c.FadeIn < 0 {
		c.FadeIn = 0
	}
	return c
}

// motionEquals reports whether two normalized configs drive the animation
// identically. A change in any of these triggers a restart.
func (c Config) motionEquals(o Config) bool {
	return c.Speed == o.Speed && c.Intensity == o.Intensity && c.Duration == o.Duration
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AnimationState is the lifecycle state of an effect instance. Exactly one
// state exists per instance and transitions are serialized on the game loop
// goroutine.
type AnimationState uint8

const (
	StateIdle    AnimationState = iota // not mounted, or torn down
	StateLoading                       // mounted, waiting for a source image
	StateRunning                       // frame loop active
	StateStopped                       // duration elapsed or Stop called; restartable
	StateErrored                       // terminal for this attempt
)

// String returns the lowercase state name.
func (s AnimationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Vec2 is a 2D vector used for normalized coordinates and distortion offsets.
type Vec2 struct {
	X, Y float64
}
