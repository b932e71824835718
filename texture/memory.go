package texture

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gputypes"
)

// MemoryTexture is a texture backed by an image.Alpha.
type MemoryTexture struct {
	mu   sync.RWMutex
	desc Descriptor
	img  *image.Alpha
}

// Bounds returns the texture's pixel rectangle.
func (t *MemoryTexture) Bounds() image.Rectangle {
	return t.img.Rect
}

// Descriptor returns the descriptor the texture was created with.
func (t *MemoryTexture) Descriptor() Descriptor {
	return t.desc
}

// Image returns a copy of the texture pixels.
func (t *MemoryTexture) Image() *image.Alpha {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := image.NewAlpha(t.img.Rect)
	copy(out.Pix, t.img.Pix)
	return out
}

// AlphaAt returns the value of one texel.
func (t *MemoryTexture) AlphaAt(x, y int) uint8 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.img.AlphaAt(x, y).A
}

// MemoryFactory creates CPU textures. Only single-channel formats are
// supported. The zero value is ready to use.
type MemoryFactory struct {
	mu      sync.Mutex
	created int
	uploads int
}

// NewMemoryFactory creates a memory texture factory.
func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{}
}

// CreateTexture creates a zero-initialized texture.
func (f *MemoryFactory) CreateTexture(desc Descriptor) (Texture, error) {
	if desc.Width() <= 0 || desc.Height() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, desc.Width(), desc.Height())
	}
	if desc.Format != gputypes.TextureFormatR8Unorm {
		return nil, fmt.Errorf("texture: memory factory supports R8Unorm only, got %v", desc.Format)
	}

	f.mu.Lock()
	f.created++
	f.mu.Unlock()

	return &MemoryTexture{
		desc: desc,
		img:  image.NewAlpha(image.Rect(0, 0, desc.Width(), desc.Height())),
	}, nil
}

// Upload copies pixels into rect.
func (f *MemoryFactory) Upload(tex Texture, rect image.Rectangle, pixels []byte) error {
	mt, ok := tex.(*MemoryTexture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignTexture, tex)
	}
	if err := CheckUpload(mt, rect, pixels, 1); err != nil {
		return err
	}

	mt.mu.Lock()
	w := rect.Dx()
	for y := 0; y < rect.Dy(); y++ {
		off := mt.img.PixOffset(rect.Min.X, rect.Min.Y+y)
		copy(mt.img.Pix[off:off+w], pixels[y*w:(y+1)*w])
	}
	mt.mu.Unlock()

	f.mu.Lock()
	f.uploads++
	f.mu.Unlock()
	return nil
}

// Created returns the number of textures created.
func (f *MemoryFactory) Created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

// Uploads returns the number of successful uploads.
func (f *MemoryFactory) Uploads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uploads
}
