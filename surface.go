package seamotion

import "github.com/hajimehoshi/ebiten/v2"

// surfaceManager owns the offscreen drawable the kernel renders into. The
// surface always exactly fills the container's layout box; cover-fitting the
// image happens inside the kernel via aspect-corrected coordinates, never by
// letterboxing the surface.
type surfaceManager struct {
	surface *ebiten.Image
	w, h    int
}

// Resize recomputes the surface geometry from the container box. Degenerate
// boxes clamp to 1 device pixel per axis. The surface image is recreated only
// when the size actually changes.
func (m *surfaceManager) Resize(w, h int) {
	w = max(w, 1)
	h = max(h, 1)
	if w == m.w && h == m.h {
		return
	}
	prev := m.surface
	m.w, m.h = w, h
	m.surface = nil
	if prev != nil {
		prev.Deallocate()
	}
}

// Surface returns the drawable, creating it lazily at the current geometry.
func (m *surfaceManager) Surface() *ebiten.Image {
	if m.surface == nil && m.w > 0 && m.h > 0 {
		m.surface = ebiten.NewImage(m.w, m.h)
	}
	return m.surface
}

// Size returns the surface geometry in device pixels.
func (m *surfaceManager) Size() (int, int) { return m.w, m.h }

// Aspect returns the surface aspect ratio (width / height), or 0 before the
// first Resize.
func (m *surfaceManager) Aspect() float64 {
	if m.h == 0 {
		return 0
	}
	return float64(m.w) / float64(m.h)
}

// Release frees the surface image. Geometry is kept so a later Surface call
// can recreate it.
func (m *surfaceManager) Release() {
	if m.surface != nil {
		m.surface.Deallocate()
		m.surface = nil
	}
}
