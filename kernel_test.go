package seamotion

import (
	"math"
	"testing"
)

// --- Purity / determinism ---

func TestDistortionDeterministic(t *testing.T) {
	uvs := []Vec2{{0, 0}, {0.25, 0.75}, {0.5, 0.5}, {1, 1}, {0.123, 0.987}}
	speeds := []float64{0.1, 0.3, 1.0, 2.0}
	intensities := []float64{0.1, 1.0, 1.7, 3.0}
	times := []float64{0, 16.7, 1000, 123456.789}

	for _, uv := range uvs {
		for _, sp := range speeds {
			for _, in := range intensities {
				for _, ms := range times {
					a := Distortion(uv, ms, sp, in)
					b := Distortion(uv, ms, sp, in)
					if a != b {
						t.Fatalf("Distortion(%v, %v, %v, %v) not deterministic: %v vs %v",
							uv, ms, sp, in, a, b)
					}
				}
			}
		}
	}
}

func TestDistortionZeroIntensity(t *testing.T) {
	uvs := []Vec2{{0, 0}, {0.5, 0.5}, {0.9, 0.1}}
	for _, uv := range uvs {
		for _, ms := range []float64{0, 500, 99999} {
			d := Distortion(uv, ms, 1.0, 0)
			if d.X != 0 || d.Y != 0 {
				t.Errorf("Distortion(%v, %v, 1, 0) = %v, want zero vector", uv, ms, d)
			}
		}
	}
}

func TestColorModulationIdentityAtZeroIntensity(t *testing.T) {
	uv := Vec2{0.3, 0.7}
	if off := colorOffset(uv, 1234, 0.5, 0); off != 0 {
		t.Errorf("colorOffset at intensity 0 = %v, want 0", off)
	}
	if gain := colorGain(uv, 1234, 0.5, 0); gain != 1 {
		t.Errorf("colorGain at intensity 0 = %v, want 1", gain)
	}
}

// --- Scaling ---

func TestDistortionScalesLinearlyWithIntensity(t *testing.T) {
	// Every term carries intensity as a plain factor, so doubling intensity
	// doubles the vector.
	uv := Vec2{0.37, 0.62}
	one := Distortion(uv, 2500, 0.8, 1.0)
	two := Distortion(uv, 2500, 0.8, 2.0)
	if math.Abs(two.X-2*one.X) > 1e-12 || math.Abs(two.Y-2*one.Y) > 1e-12 {
		t.Errorf("intensity 2 = %v, want double of %v", two, one)
	}
}

func TestDistortionBounded(t *testing.T) {
	// Amplitudes sum to well under 0.1 at intensity 1: waves 0.02+0.015+0.01,
	// turbulence <= 0.03, ripple <= 0.008.
	for _, uv := range []Vec2{{0, 0}, {0.5, 0.5}, {1, 1}, {0.2, 0.8}} {
		for ms := 0.0; ms < 10000; ms += 731 {
			d := Distortion(uv, ms, 2.0, 1.0)
			if math.Abs(d.X) > 0.1 || math.Abs(d.Y) > 0.1 {
				t.Fatalf("Distortion(%v, %v) = %v, out of expected bound", uv, ms, d)
			}
		}
	}
}

// --- Noise field ---

func TestFBMRange(t *testing.T) {
	// 4 octaves starting at amplitude 0.5 sum to at most 0.9375.
	for x := -3.0; x < 3; x += 0.37 {
		for y := -3.0; y < 3; y += 0.41 {
			v := fbm(Vec2{x, y})
			if v < 0 || v > 0.9375 {
				t.Fatalf("fbm(%v, %v) = %v, out of [0, 0.9375]", x, y, v)
			}
		}
	}
}

func TestHashInUnitInterval(t *testing.T) {
	for x := -10.0; x < 10; x += 1.3 {
		for y := -10.0; y < 10; y += 1.7 {
			h := hash21(Vec2{x, y})
			if h < 0 || h >= 1 {
				t.Fatalf("hash21(%v, %v) = %v, out of [0, 1)", x, y, h)
			}
		}
	}
}

// --- Cover-fit mapping ---

func TestCoverUVWideImageOnSquareSurface(t *testing.T) {
	// Image aspect 2:1 on a 1:1 surface: x scales by 0.5 about center.
	got := CoverUV(Vec2{0, 0.5}, 2, 1)
	if got.X != 0.25 || got.Y != 0.5 {
		t.Errorf("CoverUV((0,0.5), 2, 1) = %v, want (0.25, 0.5)", got)
	}
}

func TestCoverUVTallImageOnSquareSurface(t *testing.T) {
	got := CoverUV(Vec2{0.5, 0}, 0.5, 1)
	if got.X != 0.5 || got.Y != 0.25 {
		t.Errorf("CoverUV((0.5,0), 0.5, 1) = %v, want (0.5, 0.25)", got)
	}
}

func TestCoverUVMatchingAspects(t *testing.T) {
	// Equal aspects leave the coordinate untouched (y branch with factor 1).
	for _, uv := range []Vec2{{0, 0}, {0.3, 0.8}, {1, 1}} {
		got := CoverUV(uv, 1.5, 1.5)
		if got != uv {
			t.Errorf("CoverUV(%v, 1.5, 1.5) = %v, want identity", uv, got)
		}
	}
}

func TestCoverUVPreservesCenter(t *testing.T) {
	center := Vec2{0.5, 0.5}
	for _, aspects := range [][2]float64{{2, 1}, {0.5, 1}, {1.78, 0.6}, {1, 1}} {
		got := CoverUV(center, aspects[0], aspects[1])
		if got != center {
			t.Errorf("CoverUV(center, %v, %v) = %v, want center unchanged",
				aspects[0], aspects[1], got)
		}
	}
}

// --- Time scaling ---

func TestKernelTimeScalesWithSpeed(t *testing.T) {
	if got := kernelTime(1000, 1.0); got != 0.3 {
		t.Errorf("kernelTime(1000, 1) = %v, want 0.3", got)
	}
	if got := kernelTime(1000, 2.0); got != 0.6 {
		t.Errorf("kernelTime(1000, 2) = %v, want 0.6", got)
	}
}
