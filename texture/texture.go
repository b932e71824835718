package texture

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// Texture-related errors.
var (
	// ErrInvalidSize is returned for textures with a non-positive dimension.
	ErrInvalidSize = errors.New("texture: dimensions must be positive")

	// ErrRegionOutOfBounds is returned when an upload rectangle leaves the texture.
	ErrRegionOutOfBounds = errors.New("texture: upload region out of bounds")

	// ErrPixelCount is returned when upload data does not match the region size.
	ErrPixelCount = errors.New("texture: pixel count does not match region")

	// ErrForeignTexture is returned when a factory is handed a texture it did not create.
	ErrForeignTexture = errors.New("texture: texture not created by this factory")
)

// Component selects the source of one sampled channel.
type Component uint8

const (
	ComponentZero Component = iota
	ComponentOne
	ComponentR
	ComponentG
	ComponentB
	ComponentA
)

// String returns a human-readable name for the component.
func (c Component) String() string {
	switch c {
	case ComponentZero:
		return "Zero"
	case ComponentOne:
		return "One"
	case ComponentR:
		return "R"
	case ComponentG:
		return "G"
	case ComponentB:
		return "B"
	case ComponentA:
		return "A"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Swizzle maps the sampled R, G, B and A channels to source components.
type Swizzle [4]Component

// IdentitySwizzle samples every channel from itself.
var IdentitySwizzle = Swizzle{ComponentR, ComponentG, ComponentB, ComponentA}

// GlyphSwizzle exposes a single-channel coverage mask as alpha.
var GlyphSwizzle = Swizzle{ComponentZero, ComponentZero, ComponentZero, ComponentR}

// Descriptor describes a texture to create.
type Descriptor struct {
	Label         string
	Size          gputypes.Extent3D
	MipLevelCount uint32
	SampleCount   uint32
	Dimension     gputypes.TextureDimension
	Format        gputypes.TextureFormat
	Usage         gputypes.TextureUsage
	Swizzle       Swizzle
}

// GlyphUsage is the usage of glyph atlas textures.
const GlyphUsage = gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding

// GlyphDescriptor returns the descriptor of a width × height glyph atlas:
// one 8-bit unorm channel sampled as alpha.
func GlyphDescriptor(width, height int) Descriptor {
	return Descriptor{
		Label: "uitext glyph atlas",
		Size: gputypes.Extent3D{
			Width:              safeUint32(width),
			Height:             safeUint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatR8Unorm,
		Usage:         GlyphUsage,
		Swizzle:       GlyphSwizzle,
	}
}

// Width returns the texture width in pixels.
func (d Descriptor) Width() int { return int(d.Size.Width) }

// Height returns the texture height in pixels.
func (d Descriptor) Height() int { return int(d.Size.Height) }

// Texture is a texture created by a Factory.
type Texture interface {
	// Bounds returns the texture's pixel rectangle, anchored at (0, 0).
	Bounds() image.Rectangle
}

// Factory creates textures and uploads pixels into them.
//
// Upload writes rect.Dx()*rect.Dy() tightly packed pixels. Uploads must
// complete before Upload returns.
type Factory interface {
	CreateTexture(desc Descriptor) (Texture, error)
	Upload(tex Texture, rect image.Rectangle, pixels []byte) error
}

// CheckUpload validates an upload against a texture. Factories call it
// before touching their backing store.
func CheckUpload(tex Texture, rect image.Rectangle, pixels []byte, bytesPerPixel int) error {
	if !rect.In(tex.Bounds()) || rect.Empty() {
		return fmt.Errorf("%w: %v not in %v", ErrRegionOutOfBounds, rect, tex.Bounds())
	}
	if want := rect.Dx() * rect.Dy() * bytesPerPixel; len(pixels) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrPixelCount, len(pixels), want)
	}
	return nil
}

func safeUint32(v int) uint32 {
	if v < 0 {
		return 0
	}
	return uint32(v)
}
