package seamotion

import "testing"

func TestSurfaceResizeSetsGeometry(t *testing.T) {
	var m surfaceManager
	m.Resize(640, 480)
	if w, h := m.Size(); w != 640 || h != 480 {
		t.Errorf("Size = %dx%d, want 640x480", w, h)
	}
	if m.Aspect() != 640.0/480.0 {
		t.Errorf("Aspect = %v, want %v", m.Aspect(), 640.0/480.0)
	}
}

func TestSurfaceResizeClampsDegenerate(t *testing.T) {
	var m surfaceManager
	m.Resize(0, 0)
	if w, h := m.Size(); w != 1 || h != 1 {
		t.Errorf("Size = %dx%d for 0x0 box, want 1x1", w, h)
	}
	m.Resize(-100, 50)
	if w, h := m.Size(); w != 1 || h != 50 {
		t.Errorf("Size = %dx%d for -100x50 box, want 1x50", w, h)
	}
	if m.Aspect() == 0 {
		t.Error("Aspect = 0 after clamped resize; division guard must not trigger")
	}
}

func TestSurfaceRecreatedOnlyOnSizeChange(t *testing.T) {
	var m surfaceManager
	m.Resize(64, 64)
	first := m.Surface()
	if first == nil {
		t.Fatal("Surface returned nil after resize")
	}

	m.Resize(64, 64) // same box: keep the image
	if m.Surface() != first {
		t.Error("surface recreated without a size change")
	}

	m.Resize(32, 64)
	second := m.Surface()
	if second == first {
		t.Error("surface not recreated after a size change")
	}
}

func TestSurfaceAspectBeforeResize(t *testing.T) {
	var m surfaceManager
	if m.Aspect() != 0 {
		t.Errorf("Aspect = %v before resize, want 0", m.Aspect())
	}
	if m.Surface() != nil {
		t.Error("Surface created before any resize")
	}
}

func TestSurfaceReleaseKeepsGeometry(t *testing.T) {
	var m surfaceManager
	m.Resize(48, 48)
	_ = m.Surface()
	m.Release()
	m.Release() // safe to repeat

	if w, h := m.Size(); w != 48 || h != 48 {
		t.Errorf("Size = %dx%d after release, want geometry retained", w, h)
	}
	if m.Surface() == nil {
		t.Error("Surface not recreatable after release")
	}
}
