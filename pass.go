package uitext

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/uitext/atlas"
	"github.com/gogpu/uitext/font"
	"github.com/gogpu/uitext/internal/color"
	"github.com/gogpu/uitext/layout"
	"github.com/gogpu/uitext/texture"
)

// Pass lays out text elements and owns their glyph atlas.
//
// A Pass is not safe for concurrent use. Process runs one complete cycle
// and must not be called from several goroutines at once.
type Pass struct {
	fonts   font.Source
	factory texture.Factory
	cache   *atlas.Cache[Vertex]
	tex     texture.Texture
	log     *slog.Logger

	// per-cycle scratch
	states []elementState
}

// elementState is what one cycle derived for one element.
type elementState struct {
	laidOut bool
	scaled  font.Scaled
	glyphs  []CachedGlyph
	origin  [2]float32
}

// New creates a pass that looks fonts up in fonts and allocates its glyph
// texture through factory.
func New(fonts font.Source, factory texture.Factory, opts ...Option) (*Pass, error) {
	if fonts == nil {
		return nil, ErrNilFontSource
	}
	if factory == nil {
		return nil, ErrNilFactory
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	cache, err := atlas.New[Vertex](o.atlas)
	if err != nil {
		return nil, fmt.Errorf("uitext: %w", err)
	}

	p := &Pass{
		fonts:   fonts,
		factory: factory,
		cache:   cache,
	}
	p.SetLogger(o.logger)

	w, h := cache.Dimensions()
	if p.tex, err = p.createTexture(w, h); err != nil {
		return nil, err
	}
	return p, nil
}

// SetLogger sets the logger of the pass and its atlas. Nil disables logging.
func (p *Pass) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	p.log = l
	propagateLogger(p.cache, l)
}

// Texture returns the current glyph texture. It changes when the atlas grows.
func (p *Pass) Texture() texture.Texture {
	return p.tex
}

// Atlas returns the glyph atlas cache.
func (p *Pass) Atlas() *atlas.Cache[Vertex] {
	return p.cache
}

// Process runs one cycle over elems, which must be in a stable order.
//
// Elements whose font is missing are skipped with a warning and their
// glyph cache is cleared. Atlas growth is handled internally. A texture
// creation or upload failure aborts the cycle, drops its queued glyphs and
// returns no updates.
func (p *Pass) Process(elems []Element) (Frame, error) {
	p.states = p.states[:0]
	for i := range elems {
		p.states = append(p.states, p.queueElement(uint64(i), &elems[i]))
	}

	for {
		action, err := p.cache.Resolve(p.upload, glyphVertex)
		var small *atlas.TextureTooSmallError
		if errors.As(err, &small) {
			if err := p.grow(small.Width, small.Height); err != nil {
				p.cache.Discard()
				return Frame{}, err
			}
			continue
		}
		if err != nil {
			return Frame{}, fmt.Errorf("uitext: resolve glyphs: %w", err)
		}

		frame := p.frame(elems, action)
		p.log.Debug("uitext: cycle",
			"action", action.Kind.String(),
			"elements", len(elems),
			"vertices", len(action.Vertices))
		return frame, nil
	}
}

// queueElement splits, lays out and queues the text of one element.
func (p *Pass) queueElement(owner uint64, e *Element) elementState {
	if e.hidden() {
		return elementState{}
	}
	st := elementState{laidOut: true}

	f, ok := p.fonts.Font(e.Text.Font)
	if !ok {
		p.log.Warn("uitext: font not loaded, skipping element", "id", e.ID, "font", e.Text.Font)
		return st
	}
	st.scaled = f.Scaled(e.Text.Size)

	t := e.Transform
	ox, oy := e.Text.Align.NormalizedOffset()
	st.origin = [2]float32{t.X + t.Width*ox, t.Y + t.Height*oy}

	tint := tintColor(e.Tint)
	base := color.MulBlend(color.ToLinear(color.RGBA(e.Text.Color)), tint)
	var selected [4]float32
	if e.Editing != nil {
		selected = color.MulBlend(color.ToLinear(color.RGBA(e.Editing.SelectedTextColor)), tint)
	}
	runs := SplitRuns(e.Text, e.Editing, base, selected)

	section := layout.Section{
		X:       st.origin[0],
		Y:       -st.origin[1],
		Width:   t.Width,
		Height:  t.Height,
		HAlign:  e.Text.Align.HorizontalAlign(),
		VAlign:  e.Text.Align.VerticalAlign(),
		Breaker: layout.BreakerFor(e.Text.LineMode),
		Runs:    runs,
	}
	laid := layout.Layout(section, st.scaled)

	if e.Text.Password {
		st.glyphs = maskedGlyphs(nil, laid, st.scaled)
	} else {
		st.glyphs = reconcileGlyphs(nil, e.Text.Content, laid, st.scaled)
	}

	queued := make([]atlas.Glyph, len(laid))
	for i, g := range laid {
		queued[i] = atlas.Glyph{ID: g.ID, X: g.X, Y: g.Y, Color: runs[g.Run].Color}
	}
	p.cache.Queue(atlas.Section{
		Owner:  owner,
		Font:   e.Text.Font,
		Size:   e.Text.Size,
		Raster: st.scaled,
		Bounds: section.Rect(),
		Glyphs: queued,
	})
	return st
}

// frame turns a resolve result into per-element updates.
func (p *Pass) frame(elems []Element, action atlas.Action[Vertex]) Frame {
	frame := Frame{Action: action.Kind, Updates: make([]Update, len(elems))}

	next := 0
	for i := range elems {
		e := &elems[i]
		st := p.states[i]
		u := Update{ID: e.ID, Skipped: !st.laidOut, CachedGlyphs: st.glyphs}

		if action.Kind == atlas.ActionDraw {
			u.VerticesReplaced = true
			start := next
			for next < len(action.Vertices) && action.Vertices[next].Owner == uint64(i) {
				next++
			}
			if next > start {
				u.Vertices = make([]Vertex, 0, next-start)
				for _, v := range action.Vertices[start:next] {
					u.Vertices = append(u.Vertices, v.Value)
				}
			}
		}

		if st.laidOut && st.scaled.Font() != nil && e.Editing != nil {
			u.Editing = editingGeometry(e, st)
		}
		frame.Updates[i] = u
	}
	return frame
}

func editingGeometry(e *Element, st elementState) *EditingGeometry {
	lm := lineMetricsOf(st.scaled)
	ed := *e.Editing

	var bg [4]float32
	if e.Tint != nil {
		bg = color.MulBlendSRGB(color.RGBA(ed.SelectedBackgroundColor), color.RGBA(*e.Tint))
	} else {
		bg = color.ToLinear(color.RGBA(ed.SelectedBackgroundColor))
	}

	return &EditingGeometry{
		SelectionVertices: selectionVertices(st.glyphs, ed, lm, bg),
		CursorPosition:    cursorPosition(st.glyphs, ed.CursorPosition, lm, st.origin),
		Height:            lm.height,
		SpaceWidth:        st.scaled.Advance(st.scaled.GlyphID(' ')),
	}
}

func (p *Pass) upload(rect image.Rectangle, pixels []byte) error {
	return p.factory.Upload(p.tex, rect, pixels)
}

// grow recreates the glyph texture at the suggested size and resizes the atlas.
func (p *Pass) grow(width, height int) error {
	tex, err := p.createTexture(width, height)
	if err != nil {
		return err
	}
	if err := p.cache.Resize(width, height); err != nil {
		return fmt.Errorf("uitext: %w", err)
	}
	p.tex = tex
	return nil
}

func (p *Pass) createTexture(width, height int) (texture.Texture, error) {
	p.log.Info("uitext: creating glyph texture", "width", width, "height", height)
	tex, err := p.factory.CreateTexture(texture.GlyphDescriptor(width, height))
	if err != nil {
		return nil, fmt.Errorf("uitext: create glyph texture %dx%d: %w", width, height, err)
	}
	return tex, nil
}
