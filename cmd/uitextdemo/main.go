// Command uitextdemo lays out a few text elements with the Go fonts and
// writes the composited result and the glyph atlas as PNG files.
package main

import (
	"flag"
	"image"
	stdcolor "image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/uitext"
	"github.com/gogpu/uitext/font"
	"github.com/gogpu/uitext/internal/color"
	"github.com/gogpu/uitext/layout"
	"github.com/gogpu/uitext/texture"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 360, "image height")
		output  = flag.String("output", "uitext.png", "output file")
		atlas   = flag.String("atlas", "atlas.png", "glyph atlas output file")
		initial = flag.Int("cache", 128, "initial glyph atlas size")
		verbose = flag.Bool("v", false, "log atlas activity")
	)
	flag.Parse()

	lib := font.NewLibrary()
	regular := mustFont(lib, goregular.TTF)
	bold := mustFont(lib, gobold.TTF)

	factory := texture.NewMemoryFactory()
	opts := []uitext.Option{uitext.WithInitialCacheSize(*initial, *initial)}
	if *verbose {
		opts = append(opts, uitext.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	pass, err := uitext.New(lib, factory, opts...)
	if err != nil {
		log.Fatalf("Failed to create pass: %v", err)
	}

	elems := demoElements(regular, bold, float32(*width))
	frame, err := pass.Process(elems)
	if err != nil {
		log.Fatalf("Failed to process: %v", err)
	}

	glyphs := make([]uitext.Glyphs, len(elems))
	for i, u := range frame.Updates {
		glyphs[i].Apply(u)
	}

	tex := pass.Texture().(*texture.MemoryTexture)
	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(stdcolor.RGBA{R: 0x20, G: 0x24, B: 0x2c, A: 0xff}), image.Point{}, draw.Src)
	for _, g := range glyphs {
		for _, v := range g.SelectionVertices {
			composite(dst, nil, v)
		}
		for _, v := range g.Vertices {
			composite(dst, tex.Image(), v)
		}
	}

	if err := savePNG(*output, dst); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	if err := savePNG(*atlas, tex.Image()); err != nil {
		log.Fatalf("Failed to save atlas: %v", err)
	}

	s := pass.Atlas().Stats()
	log.Printf("Demo saved to %s (%dx%d), atlas %s (%v, %d glyphs, %.0f%% used)\n",
		*output, *width, *height, *atlas, tex.Bounds().Size(), s.Entries, s.Utilization*100)
}

func mustFont(lib *font.Library, data []byte) font.Handle {
	f, err := font.Parse(data)
	if err != nil {
		log.Fatalf("Failed to parse font: %v", err)
	}
	return lib.Add(f)
}

func demoElements(regular, bold font.Handle, w float32) []uitext.Element {
	return []uitext.Element{
		{
			ID:        1,
			Transform: uitext.Transform{Y: 140, Width: w - 40, Height: 48},
			Text: uitext.Text{
				Content: "uitext glyph atlas",
				Font:    bold,
				Size:    40,
				Color:   uitext.White,
				Align:   layout.AlignMiddle,
			},
		},
		{
			ID:        2,
			Transform: uitext.Transform{Y: 40, Width: w - 80, Height: 80},
			Text: uitext.Text{
				Content:  "Text is laid out, wrapped to its bounds and packed into a single coverage texture.",
				Font:     regular,
				Size:     20,
				Color:    uitext.RGB(0.85, 0.87, 0.9),
				LineMode: layout.LineWrap,
				Align:    layout.AlignTopLeft,
			},
		},
		{
			ID:        3,
			Transform: uitext.Transform{Y: -60, Width: 300, Height: 32},
			Text: uitext.Text{
				Content: "Select me",
				Font:    regular,
				Size:    24,
				Color:   uitext.White,
				Align:   layout.AlignMiddleLeft,
			},
			Editing: &uitext.Editing{
				CursorPosition:          7,
				HighlightVector:         -5,
				SelectedTextColor:       uitext.Black,
				SelectedBackgroundColor: uitext.Hex("#8ab4f8"),
			},
		},
		{
			ID:        4,
			Transform: uitext.Transform{Y: -120, Width: 300, Height: 32},
			Text: uitext.Text{
				Content:  "hunter2",
				Font:     regular,
				Size:     24,
				Color:    uitext.Hex("#f28b82"),
				Align:    layout.AlignMiddleLeft,
				Password: true,
			},
			Editing: &uitext.Editing{CursorPosition: 7},
		},
	}
}

// composite draws one quad onto dst. The world origin is the image centre
// with Y up. A nil atlas draws a solid quad.
func composite(dst *image.RGBA, atlas *image.Alpha, v uitext.Vertex) {
	b := dst.Bounds()
	cx := v.Position[0] + float32(b.Dx())/2
	cy := float32(b.Dy())/2 - v.Position[1]
	r := image.Rect(
		int(cx-v.Dimensions[0]/2+0.5), int(cy-v.Dimensions[1]/2+0.5),
		int(cx+v.Dimensions[0]/2+0.5), int(cy+v.Dimensions[1]/2+0.5),
	)

	srgb := color.ToSRGB(color.RGBA(v.Color))
	src := image.NewUniform(stdcolor.NRGBA{
		R: unit8(srgb[0]), G: unit8(srgb[1]), B: unit8(srgb[2]), A: unit8(srgb[3]),
	})

	if atlas == nil {
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
		return
	}
	ab := atlas.Bounds()
	mp := image.Pt(int(v.TexCoords[0]*float32(ab.Dx())+0.5), int(v.TexCoords[1]*float32(ab.Dy())+0.5))
	draw.DrawMask(dst, r, src, image.Point{}, atlas, mp, draw.Over)
}

func unit8(f float32) uint8 {
	return uint8(max(0, min(f, 1))*255 + 0.5)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
