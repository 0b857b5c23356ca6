package seamotion

import "math"

// Pure-Go mirror of the Kage kernel in shader.go. The two must stay
// arithmetic-identical constant for constant: this recipe is the effect's
// visual identity. Coordinates are normalized to [0,1] on both axes.

// kernelTime converts elapsed milliseconds and the speed parameter into
// shader time.
func kernelTime(elapsedMs, speed float64) float64 {
	return elapsedMs * speed * 0.0003
}

// hash21 is the lattice hash: fract(sin(dot(p, (12.9898, 78.233))) * 43758.5453).
func hash21(p Vec2) float64 {
	return fract(math.Sin(p.X*12.9898+p.Y*78.233) * 43758.5453)
}

// valueNoise is bilinearly-smoothed lattice noise with the quintic-like
// 3x²-2x³ ease on the interpolation factors.
func valueNoise(p Vec2) float64 {
	ix, iy := math.Floor(p.X), math.Floor(p.Y)
	fx, fy := p.X-ix, p.Y-iy

	a := hash21(Vec2{ix, iy})
	b := hash21(Vec2{ix + 1, iy})
	c := hash21(Vec2{ix, iy + 1})
	d := hash21(Vec2{ix + 1, iy + 1})

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	return mix(a, b, ux) + (c-a)*uy*(1-ux) + (d-b)*ux*uy
}

// fbm sums 4 octaves of value noise, halving amplitude and doubling frequency
// per octave (initial amplitude 0.5).
func fbm(p Vec2) float64 {
	v := 0.0
	amp := 0.5
	q := p
	for i := 0; i < 4; i++ {
		v += amp * valueNoise(q)
		q = Vec2{q.X * 2, q.Y * 2}
		amp *= 0.5
	}
	return v
}

// CoverUV remaps a raw surface coordinate to a cover-fit image coordinate:
// the axis with excess coverage is scaled about center so the image fills the
// surface without stretching, cropping symmetrically.
func CoverUV(uv Vec2, imageAspect, surfaceAspect float64) Vec2 {
	if imageAspect > surfaceAspect {
		uv.X = (uv.X-0.5)*(surfaceAspect/imageAspect) + 0.5
	} else {
		uv.Y = (uv.Y-0.5)*(imageAspect/surfaceAspect) + 0.5
	}
	return uv
}

// Distortion returns the per-pixel sampling offset for a cover-fit coordinate
// at the given elapsed time. It is a pure function: same inputs, same output.
func Distortion(uv Vec2, elapsedMs, speed, intensity float64) Vec2 {
	t := kernelTime(elapsedMs, speed)

	// Three traveling sine waves at fixed spatial frequencies and rates.
	wave1 := math.Sin(uv.Y*6+t*0.8) * 0.02 * intensity
	wave2 := math.Sin(uv.X*4+t*0.6) * 0.015 * intensity
	wave3 := math.Sin((uv.X+uv.Y)*8+t*1.2) * 0.01 * intensity

	// Fractal turbulence drifting with time.
	turb := fbm(Vec2{uv.X*3 + t*0.2, uv.Y*3 + t*0.2}) * 0.03 * intensity

	// Radial ripple emanating from center, fading toward the edges.
	dist := math.Hypot(uv.X-0.5, uv.Y-0.5)
	ripple := math.Sin(dist*20-t*1.5) * 0.008 * (1 - dist) * intensity

	return Vec2{
		X: wave1 + wave3 + turb + ripple,
		Y: wave2 + wave3 + turb*0.7 + ripple,
	}
}

// colorOffset is the additive RGB modulation applied after sampling.
func colorOffset(uv Vec2, elapsedMs, speed, intensity float64) float64 {
	t := kernelTime(elapsedMs, speed)
	return math.Sin(t+uv.X*10) * 0.05 * intensity
}

// colorGain is the multiplicative RGB modulation applied after sampling.
func colorGain(uv Vec2, elapsedMs, speed, intensity float64) float64 {
	t := kernelTime(elapsedMs, speed)
	dist := math.Hypot(uv.X-0.5, uv.Y-0.5)
	return 1 + math.Sin(t*0.8+dist*15)*0.1*intensity
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}
