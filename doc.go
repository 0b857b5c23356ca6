// Package seamotion renders a still image with a continuous GPU-computed
// fluid-distortion effect ("sea motion") for [Ebitengine].
//
// The effect perturbs every pixel's sampling coordinate with layered sine
// waves, fractal value noise, and a radial ripple, all computed in a Kage
// fragment shader. The source image is cover-fitted to the drawable surface
// (cropped symmetrically about center, never stretched) and re-rendered every
// frame until the effect is stopped, errors, or an optional duration elapses.
//
// # Quick start
//
// Create an [Effect], mount it with a [Config], and wire it into your
// [ebiten.Game]:
//
//	src, _ := seamotion.DecodeSource(reader)
//	effect := seamotion.New()
//	effect.Resize(640, 480)
//	effect.Mount(seamotion.Config{
//		Source:    src,
//		Speed:     0.3,
//		Intensity: 1.0,
//		OnLoad:    func() { log.Println("running") },
//	})
//
//	func (g *Game) Update() error        { g.effect.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.effect.Draw(s) }
//
// # Lifecycle
//
// [Effect.Mount] starts the animation loop, [Effect.SetConfig] restarts it
// when speed, intensity, duration, or the source image change,
// [Effect.Resize] tracks the container box, and [Effect.Unmount] releases
// every GPU handle and cancels every pending callback. All of it runs on the
// game loop's single goroutine; none of the methods are safe for concurrent
// use from other goroutines.
//
// Failures (shader compilation, texture upload, image load) are terminal for
// the current attempt: the effect enters an errored state, reports once via
// Config.OnError, and draws a text fallback until a new config or image is
// supplied.
//
// The distortion field itself is exposed as a pure-Go reference
// ([Distortion], [CoverUV]) mirroring the shader's arithmetic exactly.
//
// [Ebitengine]: https://ebitengine.org
package seamotion
