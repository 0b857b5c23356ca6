package seamotion

import (
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	c := Config{}.normalized()
	if c.Speed != DefaultSpeed {
		t.Errorf("Speed = %v, want default %v", c.Speed, DefaultSpeed)
	}
	if c.Intensity != DefaultIntensity {
		t.Errorf("Intensity = %v, want default %v", c.Intensity, DefaultIntensity)
	}
	if c.Duration != 0 {
		t.Errorf("Duration = %v, want 0 (run forever)", c.Duration)
	}
}

func TestConfigClamping(t *testing.T) {
	c := Config{Speed: 99, Intensity: 0.001}.normalized()
	if c.Speed != MaxSpeed {
		t.Errorf("Speed = %v, want clamped to %v", c.Speed, MaxSpeed)
	}
	if c.Intensity != MinIntensity {
		t.Errorf("Intensity = %v, want clamped to %v", c.Intensity, MinIntensity)
	}

	c = Config{Duration: -time.Second, FadeIn: -time.Second}.normalized()
	if c.Duration != 0 || c.FadeIn != 0 {
		t.Errorf("negative durations = %v/%v, want 0/0", c.Duration, c.FadeIn)
	}
}

func TestConfigMotionEquals(t *testing.T) {
	a := Config{Speed: 0.5, Intensity: 2, Duration: time.Second}
	b := a
	if !a.motionEquals(b) {
		t.Error("identical motion params reported unequal")
	}
	b.Alt = "different presentation"
	if !a.motionEquals(b) {
		t.Error("presentational change reported as motion change")
	}
	b.Intensity = 2.5
	if a.motionEquals(b) {
		t.Error("intensity change not detected")
	}
}

func TestAnimationStateStrings(t *testing.T) {
	states := map[AnimationState]string{
		StateIdle:    "idle",
		StateLoading: "loading",
		StateRunning: "running",
		StateStopped: "stopped",
		StateErrored: "errored",
	}
	for s, want := range states {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
