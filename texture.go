package seamotion

import "github.com/hajimehoshi/ebiten/v2"

// textureManager owns the GPU texture derived from the current source image.
// At most one texture is live per effect instance: uploading a replacement
// releases the previous one immediately after the swap.
type textureManager struct {
	texture *ebiten.Image
	aspect  float64
}

// Upload creates a texture from the source and makes it current. Wrap and
// filter behavior (clamp-at-edge, bilinear, no mipmaps) lives in the kernel's
// sampling code, which is where Ebitengine expresses it.
func (m *textureManager) Upload(src *Source) error {
	if src == nil {
		return newError(ErrorTextureCreation, "no source image")
	}
	if src.width <= 0 || src.height <= 0 || len(src.pix) != src.width*src.height*4 {
		return newError(ErrorTextureCreation, "malformed source buffer (%dx%d, %d bytes)",
			src.width, src.height, len(src.pix))
	}

	tex := ebiten.NewImage(src.width, src.height)
	tex.WritePixels(src.pix)

	prev := m.texture
	m.texture = tex
	m.aspect = src.Aspect()
	if prev != nil {
		prev.Deallocate()
	}
	return nil
}

// Texture returns the current texture, or nil before the first upload.
func (m *textureManager) Texture() *ebiten.Image { return m.texture }

// Aspect returns the intrinsic aspect ratio of the uploaded image.
func (m *textureManager) Aspect() float64 { return m.aspect }

// Release frees the current texture. Safe to call repeatedly.
func (m *textureManager) Release() {
	if m.texture != nil {
		m.texture.Deallocate()
		m.texture = nil
	}
	m.aspect = 0
}
