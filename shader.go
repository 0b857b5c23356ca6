package seamotion

import "github.com/hajimehoshi/ebiten/v2"

// The sea-motion kernel. Keep in lockstep with kernel.go: every constant here
// has a mirror on the Go side.
//
// Sampling detail: the source texture is addressed with clamp-at-edge
// semantics and manual bilinear filtering (the distortion is sub-pixel, so
// nearest sampling would shimmer; mipmaps would blur a static image).
const kernelShaderSrc = `//kage:unit pixels

package main

var Time float
var Speed float
var Intensity float
var Resolution vec2
var ImageAspect float
var SurfaceAspect float

func hash21(p vec2) float {
	return fract(sin(dot(p, vec2(12.9898, 78.233))) * 43758.5453)
}

func valueNoise(p vec2) float {
	i := floor(p)
	f := fract(p)
	a := hash21(i)
	b := hash21(i + vec2(1, 0))
	c := hash21(i + vec2(0, 1))
	d := hash21(i + vec2(1, 1))
	u := f * f * (3.0 - 2.0*f)
	return mix(a, b, u.x) + (c-a)*u.y*(1.0-u.x) + (d-b)*u.x*u.y
}

func fbm(p vec2) float {
	v := 0.0
	amp := 0.5
	q := p
	for i := 0; i < 4; i++ {
		v += amp * valueNoise(q)
		q *= 2.0
		amp *= 0.5
	}
	return v
}

func coverUV(uv vec2) vec2 {
	r := uv
	if ImageAspect > SurfaceAspect {
		r.x = (r.x-0.5)*(SurfaceAspect/ImageAspect) + 0.5
	} else {
		r.y = (r.y-0.5)*(ImageAspect/SurfaceAspect) + 0.5
	}
	return r
}

func distortion(uv vec2, t float) vec2 {
	wave1 := sin(uv.y*6.0+t*0.8) * 0.02 * Intensity
	wave2 := sin(uv.x*4.0+t*0.6) * 0.015 * Intensity
	wave3 := sin((uv.x+uv.y)*8.0+t*1.2) * 0.01 * Intensity
	turb := fbm(uv*3.0+vec2(t*0.2, t*0.2)) * 0.03 * Intensity
	dist := length(uv - vec2(0.5, 0.5))
	ripple := sin(dist*20.0-t*1.5) * 0.008 * (1.0-dist) * Intensity
	return vec2(
		wave1+wave3+turb+ripple,
		wave2+wave3+turb*0.7+ripple,
	)
}

// texel samples the source at an absolute pixel position, clamped half a
// texel inside the region (clamp-at-edge).
func texel(p vec2) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	return imageSrc0At(clamp(p, origin+vec2(0.5), origin+size-vec2(0.5)))
}

// sampleLinear bilinearly filters the source at a normalized [0,1] coordinate.
func sampleLinear(uv vec2) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	p := origin + uv*size
	base := floor(p-vec2(0.5)) + vec2(0.5)
	f := p - base
	tl := texel(base)
	tr := texel(base + vec2(1, 0))
	bl := texel(base + vec2(0, 1))
	br := texel(base + vec2(1, 1))
	return mix(mix(tl, tr, f.x), mix(bl, br, f.x), f.y)
}

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	uv := (dst.xy - imageDstOrigin()) / Resolution
	t := Time * Speed * 0.0003

	cuv := coverUV(uv)
	c := sampleLinear(cuv + distortion(cuv, t))

	// Un-premultiply alpha before color modulation.
	if c.a > 0 {
		c.rgb /= c.a
	}

	dist := length(cuv - vec2(0.5, 0.5))
	shift := sin(t+cuv.x*10.0) * 0.05 * Intensity
	gain := 1.0 + sin(t*0.8+dist*15.0)*0.1*Intensity

	r := clamp((c.r+shift)*gain, 0.0, 1.0)
	g := clamp((c.g+shift)*gain, 0.0, 1.0)
	b := clamp((c.b+shift)*gain, 0.0, 1.0)

	return vec4(r*c.a, g*c.a, b*c.a, c.a)
}
`

// compileFunc compiles Kage source into a GPU program. Swappable so tests can
// exercise the cache and the error taxonomy without a GPU.
type compileFunc func(src []byte) (*ebiten.Shader, error)

// programCache compiles the kernel at most once per GPU context and caches a
// successful result for the context's lifetime. Failures are not cached; a
// later attempt (new config or image) recompiles.
type programCache struct {
	compile compileFunc
	program *ebiten.Shader
}

func newProgramCache() *programCache {
	return &programCache{compile: ebiten.NewShader}
}

// Program returns the compiled kernel, compiling it on first use.
func (p *programCache) Program() (*ebiten.Shader, error) {
	if p.program != nil {
		return p.program, nil
	}
	if p.compile == nil {
		return nil, newError(ErrorContextUnavailable, "no shader compiler available")
	}
	s, err := p.compile([]byte(kernelShaderSrc))
	if err != nil {
		return nil, classifyShaderError(err)
	}
	p.program = s
	return s, nil
}

// Release frees the compiled program. Only call when the GPU context itself
// is going away; a live context never needs recompilation.
func (p *programCache) Release() {
	if p.program != nil {
		p.program.Deallocate()
		p.program = nil
	}
}

// sharedPrograms is the per-process cache. Ebitengine exposes a single GPU
// context, so one compiled kernel serves every effect instance. No sync.Once:
// all access happens on the game loop goroutine.
var sharedPrograms = newProgramCache()
