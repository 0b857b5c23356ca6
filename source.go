package seamotion

import (
	"image"
	"io"
	"log"

	"golang.org/x/image/draw"
)

// maxSourceDim is the largest texture edge the effect will upload. Decoded
// images beyond it are downscaled on the CPU before upload; GPU texture
// limits vary by driver and 4096 is safe everywhere Ebitengine runs.
// Variable so tests can lower it.
var maxSourceDim = 4096

// Source is a decoded raster image ready for GPU upload: a premultiplied RGBA
// pixel buffer plus dimensions. The effect derives a texture from it once and
// never touches the buffer afterwards, so the caller may reuse or drop it.
type Source struct {
	pix           []byte
	width, height int
}

// NewSource converts a decoded image into a Source, downscaling if either
// dimension exceeds the supported texture size.
func NewSource(img image.Image) (*Source, error) {
	if img == nil {
		return nil, newError(ErrorImageLoad, "nil image")
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, newError(ErrorImageLoad, "empty image (%dx%d)", w, h)
	}

	if w > maxSourceDim || h > maxSourceDim {
		sw, sh := fitWithin(w, h, maxSourceDim)
		log.Printf("seamotion: source %dx%d exceeds max texture size, downscaling to %dx%d", w, h, sw, sh)
		scaled := image.NewRGBA(image.Rect(0, 0, sw, sh))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		return &Source{pix: scaled.Pix, width: sw, height: sh}, nil
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Source{pix: rgba.Pix, width: w, height: h}, nil
}

// DecodeSource decodes an image stream into a Source. The caller must have
// registered the relevant decoder (e.g. import _ "image/png").
func DecodeSource(r io.Reader) (*Source, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, wrapError(ErrorImageLoad, "decode image", err)
	}
	return NewSource(img)
}

// Width returns the uploaded pixel width.
func (s *Source) Width() int { return s.width }

// Height returns the uploaded pixel height.
func (s *Source) Height() int { return s.height }

// Aspect returns the intrinsic aspect ratio (width / height).
func (s *Source) Aspect() float64 {
	return float64(s.width) / float64(s.height)
}

// fitWithin scales (w, h) proportionally so both fit inside limit, keeping a
// minimum of 1 pixel per axis.
func fitWithin(w, h, limit int) (int, int) {
	scale := float64(limit) / float64(w)
	if h > w {
		scale = float64(limit) / float64(h)
	}
	sw := int(float64(w) * scale)
	sh := int(float64(h) * scale)
	return max(sw, 1), max(sh, 1)
}
