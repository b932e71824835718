package atlas

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"slices"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/uitext/font"
	"github.com/gogpu/uitext/layout"
)

// Rasterizer renders glyph coverage masks. font.Scaled implements it.
//
// Mask bounds are pixel offsets from the pen position on the baseline with
// Y increasing downward. A nil mask means the glyph has no visible pixels.
type Rasterizer interface {
	Rasterize(id font.GlyphID) (*image.Alpha, error)
}

// Glyph is a laid-out glyph of a section.
type Glyph struct {
	ID font.GlyphID

	// X, Y is the pen position on the baseline (Y down).
	X, Y float32

	Color [4]float32
}

// Section is one queued layout result.
type Section struct {
	// Owner tags every vertex emitted for this section.
	Owner uint64

	Font   font.Handle
	Size   float32
	Raster Rasterizer

	// Bounds clips the emitted pixel boxes.
	Bounds layout.Rect

	Glyphs []Glyph
}

// Key identifies a glyph image in the atlas.
type Key struct {
	Font  font.Handle
	Glyph font.GlyphID
	Size  fixed.Int26_6
}

// Entry describes a packed glyph image.
type Entry struct {
	// Rect is the glyph's location in the texture. Empty for blank glyphs.
	Rect image.Rectangle

	// Offset is the mask bounds relative to the pen position.
	Offset image.Rectangle

	// TexCoords is Rect in normalized texture coordinates.
	TexCoords layout.Rect
}

// Blank reports whether the glyph has no pixels.
func (e Entry) Blank() bool {
	return e.Rect.Empty()
}

// GlyphVertex is the input of an EmitFunc.
type GlyphVertex struct {
	Owner uint64
	Color [4]float32

	// TexCoords may extend past the clipped pixel box; emitters clamp.
	TexCoords layout.Rect

	// PixelCoords is the unclipped glyph box in section space (Y down).
	PixelCoords layout.Rect

	// Bounds is the owning section's clip rectangle.
	Bounds layout.Rect
}

// UploadFunc writes a w×h block of single-channel pixels into the texture.
type UploadFunc func(rect image.Rectangle, pixels []byte) error

// EmitFunc converts a glyph vertex into the caller's vertex type.
type EmitFunc[V any] func(GlyphVertex) V

// ActionKind is the outcome of a resolve.
type ActionKind uint8

const (
	// ActionDraw means vertices were rebuilt and must replace the old ones.
	ActionDraw ActionKind = iota
	// ActionRedraw means nothing changed since the last draw.
	ActionRedraw
)

// String returns the string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionDraw:
		return "Draw"
	case ActionRedraw:
		return "Redraw"
	default:
		return "Unknown"
	}
}

// Vertex is an emitted vertex tagged with its section owner.
type Vertex[V any] struct {
	Owner uint64
	Value V
}

// Action is the result of a successful resolve.
type Action[V any] struct {
	Kind ActionKind

	// Vertices holds, for ActionDraw, one vertex per visible queued glyph
	// in queue order. It is nil for ActionRedraw.
	Vertices []Vertex[V]
}

// Stats holds cache counters.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Resizes     uint64
	Entries     int
	Utilization float64
}

// fingerprint is what a queued glyph contributes to the drawn frame.
type fingerprint struct {
	owner  uint64
	key    Key
	x, y   float32
	color  [4]float32
	bounds layout.Rect
}

// Cache is the glyph atlas cache.
type Cache[V any] struct {
	config        Config
	width, height int
	packer        *shelfPacker
	entries       map[Key]Entry
	queue         []Section

	drawn bool
	last  []fingerprint
	next  []fingerprint

	hits, misses, resizes uint64

	log *slog.Logger
}

// New creates a cache with a texture of config.Width × config.Height.
func New[V any](config Config) (*Cache[V], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Cache[V]{
		config:  config,
		width:   config.Width,
		height:  config.Height,
		packer:  newShelfPacker(config.Width, config.Height, config.Padding),
		entries: make(map[Key]Entry),
		log:     slog.New(nopHandler{}),
	}, nil
}

// SetLogger sets the logger used for cache diagnostics. Nil disables logging.
func (c *Cache[V]) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	c.log = l
}

// Dimensions returns the current texture size.
func (c *Cache[V]) Dimensions() (width, height int) {
	return c.width, c.height
}

// Len returns the number of cached entries, blank glyphs included.
func (c *Cache[V]) Len() int {
	return len(c.entries)
}

// Lookup returns the entry for a key.
func (c *Cache[V]) Lookup(k Key) (Entry, bool) {
	e, ok := c.entries[k]
	return e, ok
}

// Stats returns cache counters.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:        c.hits,
		Misses:      c.misses,
		Resizes:     c.resizes,
		Entries:     len(c.entries),
		Utilization: c.packer.utilization(),
	}
}

// Queue stages a section for the next Resolve.
func (c *Cache[V]) Queue(s Section) {
	c.queue = append(c.queue, s)
}

// Queued returns the number of staged sections.
func (c *Cache[V]) Queued() int {
	return len(c.queue)
}

// Discard drops the queued sections without resolving them. The next
// Resolve reports ActionDraw.
func (c *Cache[V]) Discard() {
	c.discardQueue()
}

// Resize replaces the texture dimensions. Every entry is dropped; the
// queued sections are kept so the same set can be resolved again.
func (c *Cache[V]) Resize(width, height int) error {
	if width < 1 || height < 1 || width > c.config.MaxSize || height > c.config.MaxSize {
		return fmt.Errorf("%w: %dx%d (max %d)", ErrInvalidSize, width, height, c.config.MaxSize)
	}
	c.width, c.height = width, height
	c.packer.reset(width, height)
	clear(c.entries)
	c.drawn = false
	c.last = c.last[:0]
	c.resizes++
	c.log.Info("atlas: resized", "width", width, "height", height)
	return nil
}

// pendingUpload is a rasterized glyph waiting to be written.
type pendingUpload struct {
	rect image.Rectangle
	mask *image.Alpha
}

// Resolve rasterizes and uploads glyphs seen for the first time, then
// emits vertices for the queued sections.
//
// When nothing was rasterized and the queued glyphs are identical to the
// last draw, Resolve reports ActionRedraw and emits nothing. If the glyphs
// do not fit, it returns a *TextureTooSmallError and keeps the queue; call
// Resize and Resolve again. Any other error clears the queue.
func (c *Cache[V]) Resolve(upload UploadFunc, emit EmitFunc[V]) (Action[V], error) {
	added, uploads, err := c.rasterizeQueued()
	if err != nil {
		c.forget(added)
		var small *TextureTooSmallError
		if !errors.As(err, &small) {
			c.discardQueue()
		}
		return Action[V]{}, err
	}

	for _, u := range uploads {
		if err := upload(u.rect, maskPixels(u.mask)); err != nil {
			c.forget(added)
			c.discardQueue()
			return Action[V]{}, fmt.Errorf("atlas: upload %v: %w", u.rect, err)
		}
	}

	c.next = c.fingerprints(c.next[:0])
	if len(uploads) == 0 && c.drawn && slices.Equal(c.next, c.last) {
		c.queue = c.queue[:0]
		c.log.Debug("atlas: redraw", "sections", len(c.next))
		return Action[V]{Kind: ActionRedraw}, nil
	}

	vertices := c.emit(emit)
	c.last, c.next = c.next, c.last
	c.drawn = true
	c.queue = c.queue[:0]
	c.log.Debug("atlas: draw", "vertices", len(vertices), "uploads", len(uploads))
	return Action[V]{Kind: ActionDraw, Vertices: vertices}, nil
}

// rasterizeQueued creates entries for every queued glyph not yet cached.
// It returns the keys it added so a failed resolve can roll them back.
func (c *Cache[V]) rasterizeQueued() ([]Key, []pendingUpload, error) {
	var (
		added   []Key
		uploads []pendingUpload
	)
	for _, s := range c.queue {
		size := sizeKey(s.Size)
		for _, g := range s.Glyphs {
			k := Key{Font: s.Font, Glyph: g.ID, Size: size}
			if _, ok := c.entries[k]; ok {
				c.hits++
				continue
			}
			c.misses++

			mask, err := s.Raster.Rasterize(g.ID)
			if err != nil {
				return added, nil, fmt.Errorf("atlas: rasterize glyph %d: %w", g.ID, err)
			}
			if mask == nil || mask.Rect.Empty() {
				c.entries[k] = Entry{}
				added = append(added, k)
				continue
			}

			rect, ok := c.packer.pack(mask.Rect.Dx(), mask.Rect.Dy())
			if !ok {
				return added, nil, c.grow()
			}
			c.entries[k] = Entry{
				Rect:      rect,
				Offset:    mask.Rect,
				TexCoords: c.texCoords(rect),
			}
			added = append(added, k)
			uploads = append(uploads, pendingUpload{rect: rect, mask: mask})
		}
	}
	return added, uploads, nil
}

// grow returns the error describing the next texture size.
func (c *Cache[V]) grow() error {
	w, h := min(c.width*2, c.config.MaxSize), min(c.height*2, c.config.MaxSize)
	if w == c.width && h == c.height {
		return fmt.Errorf("%w: %dx%d", ErrTextureLimit, c.width, c.height)
	}
	c.log.Debug("atlas: texture too small", "width", c.width, "height", c.height,
		"suggested_width", w, "suggested_height", h)
	return &TextureTooSmallError{Width: w, Height: h}
}

func (c *Cache[V]) forget(keys []Key) {
	for _, k := range keys {
		delete(c.entries, k)
	}
}

func (c *Cache[V]) discardQueue() {
	c.queue = c.queue[:0]
	c.drawn = false
}

func (c *Cache[V]) texCoords(r image.Rectangle) layout.Rect {
	w, h := float32(c.width), float32(c.height)
	return layout.Rect{
		MinX: float32(r.Min.X) / w,
		MinY: float32(r.Min.Y) / h,
		MaxX: float32(r.Max.X) / w,
		MaxY: float32(r.Max.Y) / h,
	}
}

func (c *Cache[V]) fingerprints(dst []fingerprint) []fingerprint {
	for _, s := range c.queue {
		size := sizeKey(s.Size)
		for _, g := range s.Glyphs {
			dst = append(dst, fingerprint{
				owner:  s.Owner,
				key:    Key{Font: s.Font, Glyph: g.ID, Size: size},
				x:      g.X,
				y:      g.Y,
				color:  g.Color,
				bounds: s.Bounds,
			})
		}
	}
	return dst
}

func (c *Cache[V]) emit(emit EmitFunc[V]) []Vertex[V] {
	var out []Vertex[V]
	for _, s := range c.queue {
		size := sizeKey(s.Size)
		for _, g := range s.Glyphs {
			e := c.entries[Key{Font: s.Font, Glyph: g.ID, Size: size}]
			if e.Blank() {
				continue
			}
			gv := GlyphVertex{
				Owner:     s.Owner,
				Color:     g.Color,
				TexCoords: e.TexCoords,
				PixelCoords: layout.Rect{
					MinX: g.X + float32(e.Offset.Min.X),
					MinY: g.Y + float32(e.Offset.Min.Y),
					MaxX: g.X + float32(e.Offset.Max.X),
					MaxY: g.Y + float32(e.Offset.Max.Y),
				},
				Bounds: s.Bounds,
			}
			out = append(out, Vertex[V]{Owner: s.Owner, Value: emit(gv)})
		}
	}
	return out
}

// maskPixels returns the mask rows packed without stride padding.
func maskPixels(m *image.Alpha) []byte {
	w, h := m.Rect.Dx(), m.Rect.Dy()
	if m.Stride == w {
		return m.Pix[:w*h]
	}
	out := make([]byte, 0, w*h)
	for y := 0; y < h; y++ {
		out = append(out, m.Pix[y*m.Stride:y*m.Stride+w]...)
	}
	return out
}

// sizeKey quantizes a pixel size to 26.6 fixed point.
func sizeKey(size float32) fixed.Int26_6 {
	return fixed.Int26_6(size*64 + 0.5)
}
