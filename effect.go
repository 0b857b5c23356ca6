package seamotion

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	css "github.com/mazznoer/csscolorparser"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Effect is the sea-motion effect controller. It orchestrates program
// compilation, texture upload, surface geometry, and the animation driver in
// response to lifecycle events, and surfaces load/error/animation-end
// notifications to the caller.
//
// Integrate it into an [ebiten.Game] by calling [Effect.Update] from the
// game's Update and [Effect.Draw] from its Draw. All methods must run on the
// game loop goroutine.
type Effect struct {
	sched    *tickScheduler
	driver   *animationDriver
	programs *programCache
	textures textureManager
	surface  surfaceManager

	cfg        Config
	loaded     *Source
	background color.Color
	lastErr    *Error

	mounted     bool
	errNotified bool

	fade  *gween.Tween
	alpha float64
	debug bool

	// Persistent per-frame buffers; uniform values are written in place each
	// frame so submission stays allocation-free.
	uniforms   map[string]any
	resolution [2]float32
	vertices   [4]ebiten.Vertex
	indices    [6]uint16
	trisOp     ebiten.DrawTrianglesShaderOptions
	drawOp     ebiten.DrawImageOptions
}

// New creates an unmounted effect. Call [Effect.Resize] and [Effect.Mount] to
// start it.
func New() *Effect {
	e := &Effect{
		sched:    newTickScheduler(time.Now),
		programs: sharedPrograms,
		alpha:    1,
		indices:  [6]uint16{0, 1, 2, 1, 3, 2},
	}
	e.driver = newAnimationDriver(e.sched)
	e.driver.render = e.renderFrame
	e.driver.onEnd = e.notifyEnd
	e.uniforms = map[string]any{
		"Resolution": e.resolution[:],
	}
	for i := range e.vertices {
		e.vertices[i].ColorR = 1
		e.vertices[i].ColorG = 1
		e.vertices[i].ColorB = 1
		e.vertices[i].ColorA = 1
	}
	return e
}

// Mount applies the initial configuration and, if a source image is present,
// starts the animation. With a nil Source the effect waits in the loading
// state for [Effect.SetSource].
func (e *Effect) Mount(cfg Config) {
	e.mounted = true
	e.cfg = cfg.normalized()
	e.background = parseBackground(cfg.Background)
	e.clearFailure()
	e.beginAttempt()
}

// SetConfig replaces the configuration. The image changing (by Source
// identity) triggers a full reload; speed, intensity, or duration changing
// restarts the loop under the new parameters; an errored effect treats any
// config change as the signal to re-attempt.
func (e *Effect) SetConfig(cfg Config) {
	if !e.mounted {
		e.Mount(cfg)
		return
	}
	prev := e.cfg
	e.cfg = cfg.normalized()
	e.background = parseBackground(cfg.Background)

	switch {
	case e.cfg.Source != prev.Source, e.driver.State() == StateErrored:
		e.clearFailure()
		e.beginAttempt()
	case !e.cfg.motionEquals(prev):
		if e.loaded != nil {
			e.driver.Start(e.cfg.Speed, e.cfg.Intensity, e.cfg.Duration)
		}
	}
}

// SetSource delivers a decoded image to a mounted effect (the resolve side of
// asynchronous image acquisition) and starts or restarts the animation.
func (e *Effect) SetSource(src *Source) {
	if !e.mounted {
		return
	}
	e.cfg.Source = src
	e.clearFailure()
	e.beginAttempt()
}

// SetSourceError reports a failed image acquisition (the reject side). The
// effect enters the errored state and notifies OnError once.
func (e *Effect) SetSourceError(err error) {
	if !e.mounted {
		return
	}
	e.failWith(wrapError(ErrorImageLoad, "image acquisition failed", err))
}

// Resize recomputes the surface geometry from the container's layout box.
// Call whenever the container changes size; degenerate boxes clamp to 1px.
func (e *Effect) Resize(w, h int) {
	e.surface.Resize(w, h)
}

// Unmount stops the animation, synchronously cancels the pending frame and
// duration timer, and releases the texture and surface. The compiled program
// stays with the process-wide cache, whose GPU context outlives the instance.
func (e *Effect) Unmount() {
	if !e.mounted {
		return
	}
	e.driver.teardown()
	e.textures.Release()
	e.surface.Release()
	e.fade = nil
	e.alpha = 1
	e.loaded = nil
	e.mounted = false
}

// Update pumps the cooperative scheduler by one tick (firing due timers and
// the pending frame callback) and advances the fade-in tween.
func (e *Effect) Update() {
	e.sched.Tick()
	if e.fade != nil {
		v, done := e.fade.Update(1.0 / float32(ebiten.TPS()))
		e.alpha = float64(v)
		if done {
			e.fade = nil
			e.alpha = 1
		}
	}
}

// Draw composites the effect into screen: background fill, then either the
// rendered surface or the errored-state text fallback.
func (e *Effect) Draw(screen *ebiten.Image) {
	if e.background != nil {
		screen.Fill(e.background)
	}
	if e.driver.State() == StateErrored {
		e.drawFallback(screen)
	} else if surf := e.surface.surface; surf != nil {
		e.drawOp.GeoM.Reset()
		e.drawOp.ColorScale.Reset()
		e.drawOp.ColorScale.ScaleAlpha(float32(e.alpha))
		screen.DrawImage(surf, &e.drawOp)
	}
	if e.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nstate: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), e.driver.State()))
	}
}

// SetDebugOverlay toggles an FPS/state overlay in the top-left corner.
func (e *Effect) SetDebugOverlay(enabled bool) {
	e.debug = enabled
}

// State returns the current lifecycle state.
func (e *Effect) State() AnimationState { return e.driver.State() }

// Err returns the failure that put the effect in the errored state, or nil.
func (e *Effect) Err() error {
	if e.lastErr == nil {
		return nil
	}
	return e.lastErr
}

// Elapsed returns wall-clock time since the loop (re)started.
func (e *Effect) Elapsed() time.Duration { return e.driver.Elapsed() }

// --- orchestration ---

// beginAttempt sequences one initialization attempt for the current config:
// compile (cached) → upload → start → notify load. Any step failing parks the
// effect in the errored state with a single notification.
func (e *Effect) beginAttempt() {
	src := e.cfg.Source
	if src == nil {
		e.loaded = nil
		e.textures.Release()
		e.driver.awaitImage()
		return
	}
	if _, err := e.programs.Program(); err != nil {
		e.failWith(asEffectError(err))
		return
	}
	if err := e.textures.Upload(src); err != nil {
		e.failWith(asEffectError(err))
		return
	}
	e.loaded = src
	e.driver.Start(e.cfg.Speed, e.cfg.Intensity, e.cfg.Duration)
	e.startFade()
	if e.cfg.OnLoad != nil {
		e.cfg.OnLoad()
	}
}

func (e *Effect) failWith(err *Error) {
	e.driver.fail()
	e.lastErr = err
	if !e.errNotified {
		e.errNotified = true
		if e.cfg.OnError != nil {
			e.cfg.OnError(err.Error())
		}
	}
}

func (e *Effect) clearFailure() {
	e.lastErr = nil
	e.errNotified = false
}

func (e *Effect) notifyEnd() {
	if e.cfg.OnAnimationEnd != nil {
		e.cfg.OnAnimationEnd()
	}
}

func (e *Effect) startFade() {
	if e.cfg.FadeIn > 0 {
		e.fade = gween.New(0, 1, float32(e.cfg.FadeIn.Seconds()), ease.Linear)
		e.alpha = 0
	} else {
		e.fade = nil
		e.alpha = 1
	}
}

// renderFrame submits one frame: uniform update, then a full-surface draw of
// two triangles through the kernel.
func (e *Effect) renderFrame(elapsed time.Duration, speed, intensity float64) {
	program, err := e.programs.Program()
	if err != nil {
		e.failWith(asEffectError(err))
		return
	}
	tex := e.textures.Texture()
	dst := e.surface.Surface()
	if tex == nil || dst == nil {
		return
	}

	w, h := e.surface.Size()
	e.resolution[0] = float32(w)
	e.resolution[1] = float32(h)
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	e.uniforms["Time"] = float32(elapsed.Seconds() * 1000)
	e.uniforms["Speed"] = float32(speed)
	e.uniforms["Intensity"] = float32(intensity)
	e.uniforms["ImageAspect"] = float32(e.textures.Aspect())
	e.uniforms["SurfaceAspect"] = float32(e.surface.Aspect())

	b := tex.Bounds()
	quad := [4][2]float64{{0, 0}, {float64(w), 0}, {0, float64(h)}, {float64(w), float64(h)}}
	srcQuad := [4][2]float64{
		{float64(b.Min.X), float64(b.Min.Y)},
		{float64(b.Max.X), float64(b.Min.Y)},
		{float64(b.Min.X), float64(b.Max.Y)},
		{float64(b.Max.X), float64(b.Max.Y)},
	}
	for i := range e.vertices {
		e.vertices[i].DstX = float32(quad[i][0])
		e.vertices[i].DstY = float32(quad[i][1])
		e.vertices[i].SrcX = float32(srcQuad[i][0])
		e.vertices[i].SrcY = float32(srcQuad[i][1])
	}

	dst.Clear()
	e.trisOp.Images[0] = tex
	e.trisOp.Uniforms = e.uniforms
	dst.DrawTrianglesShader(e.vertices[:], e.indices[:], program, &e.trisOp)
}

// drawFallback renders the errored-state text: the failure message plus the
// configured alt description.
func (e *Effect) drawFallback(screen *ebiten.Image) {
	if e.background == nil {
		screen.Fill(color.RGBA{0x10, 0x14, 0x1c, 0xff})
	}
	msg := "effect unavailable"
	if e.lastErr != nil {
		msg = e.lastErr.Error()
	}
	if e.cfg.Alt != "" {
		msg += "\n" + e.cfg.Alt
	}
	ebitenutil.DebugPrint(screen, msg)
}

// parseBackground parses a CSS color string. Invalid values are logged and
// treated as unset rather than failing the mount.
func parseBackground(s string) color.Color {
	if s == "" {
		return nil
	}
	c, err := css.Parse(s)
	if err != nil {
		log.Printf("seamotion: invalid background color %q: %v", s, err)
		return nil
	}
	return color.NRGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}
}
