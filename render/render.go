// Package render rasterizes emoji cards with the gg 2D graphics library.
//
// A Renderer is built once with its fonts and output size and can draw any
// number of scenes:
//
//	r, err := render.New(render.WithSize(1024))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	scene := emojigen.Build(emojigen.Request{Prompt: "sun beach", Seed: 7})
//	if err := r.Save("card.png", scene); err != nil {
//	    return err
//	}
//
// The renderer draws emoji with whatever glyphs the configured font has.
// Without an emoji font the Go fonts are used, which lack emoji glyphs; pass
// one with WithEmojiFont for a useful picture. Only the logical layout is
// guaranteed to be the same across renderers, not the pixels.
package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/emojigen"
	"github.com/gogpu/emojigen/layout"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Format is an output image encoding.
type Format int

const (
	// PNG is lossless and keeps the transparent rounded corners.
	PNG Format = iota

	// JPEG is lossy and has no alpha; corners come out black.
	JPEG
)

// JPEGQuality is the quality used for JPEG output.
const JPEGQuality = 92

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Renderer draws scenes at a fixed size.
// A Renderer is safe for concurrent use; each Draw gets its own context.
type Renderer struct {
	size      int
	rounded   bool
	titleFont *text.FontSource
	emojiFont *text.FontSource
	color     *ColorGlyphs
	owned     []*text.FontSource
}

// New creates a Renderer.
func New(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, o.size)
	}

	r := &Renderer{
		size:      o.size,
		rounded:   o.rounded,
		titleFont: o.font,
		emojiFont: o.emojiFont,
		color:     o.color,
	}

	if r.titleFont == nil {
		src, err := goMedium()
		if err != nil {
			return nil, err
		}
		r.owned = append(r.owned, src)
		r.titleFont = src
	}
	switch {
	case r.emojiFont != nil:
	case o.font != nil:
		r.emojiFont = o.font
	default:
		src, err := goRegular()
		if err != nil {
			_ = r.Close()
			return nil, err
		}
		r.owned = append(r.owned, src)
		r.emojiFont = src
	}

	emojigen.Logger().Debug("renderer created",
		"size", r.size,
		"title_font", r.titleFont.Name(),
		"emoji_font", r.emojiFont.Name(),
		"color_glyphs", r.color != nil)

	return r, nil
}

// Close releases the fonts the Renderer loaded itself. Fonts passed in
// through options are left to the caller.
func (r *Renderer) Close() error {
	var first error
	for _, src := range r.owned {
		if err := src.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.owned = nil
	return first
}

// Size returns the edge length of the output in pixels.
func (r *Renderer) Size() int {
	return r.size
}

// metrics are the reference card lengths scaled to the output size.
type metrics struct {
	size    float64
	pad     float64
	content float64 // edge of the padded content box
}

func (r *Renderer) metrics() metrics {
	size := float64(r.size)
	pad := layout.PaddingRef * size / layout.ReferenceSize
	return metrics{size: size, pad: pad, content: size - 2*pad}
}

// scaled converts a length on the reference card to output pixels.
func (m metrics) scaled(ref float64) float64 {
	return ref * m.size / layout.ReferenceSize
}

// Draw renders scene into a new gg.Context. The caller must Close it.
func (r *Renderer) Draw(scene emojigen.Scene) (*gg.Context, error) {
	m := r.metrics()
	dc := gg.NewContext(r.size, r.size)

	if err := r.drawBackground(dc, m, scene.Palette); err != nil {
		_ = dc.Close()
		return nil, err
	}
	missing := r.drawPlacements(dc, m, scene.Placements)
	missing += r.drawHeroes(dc, m, scene.Heroes)
	if missing > 0 {
		emojigen.Logger().Warn("emoji font lacks glyphs",
			"font", r.emojiFont.Name(),
			"color", r.color != nil,
			"missing", missing,
			"drawn", len(scene.Placements)+len(scene.Heroes)-missing)
	}
	if err := r.drawTitle(dc, m, scene.Title); err != nil {
		_ = dc.Close()
		return nil, err
	}

	return dc, nil
}

func (r *Renderer) drawBackground(dc *gg.Context, m metrics, p layout.Palette) error {
	if r.rounded {
		dc.DrawRoundedRectangle(0, 0, m.size, m.size, m.scaled(layout.CornerRadiusRef))
		dc.ClipPreserve()
	} else {
		dc.DrawRectangle(0, 0, m.size, m.size)
	}

	grad := gg.NewLinearGradientBrush(0, 0, m.size, m.size).
		AddColorStop(0, gg.RGB(p.Start.R, p.Start.G, p.Start.B)).
		AddColorStop(1, gg.RGB(p.End.R, p.End.G, p.End.B))
	dc.SetFillBrush(grad)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: background: %w", err)
	}
	return nil
}

// drawPlacements draws the scattered emoji. Scale is applied through the
// face size and rotation about each emoji's centre.
func (r *Renderer) drawPlacements(dc *gg.Context, m metrics, ps []layout.Placement) int {
	base := m.content * layout.EmojiSize

	missing := 0
	for _, p := range ps {
		img := r.sprite(p.Emoji, base*p.Scale)
		if img == nil {
			missing++
			continue
		}
		x := m.pad + p.X*m.content
		y := m.pad + p.Y*m.content
		drawSprite(dc, img, x, y, p.Rotation, layout.Opacity)
	}
	return missing
}

// drawHeroes draws the foreground row centred horizontally.
func (r *Renderer) drawHeroes(dc *gg.Context, m metrics, heroes []string) int {
	px := m.content * layout.HeroSize
	spacing := m.scaled(layout.HeroSpacingRef)

	var (
		row     []*image.NRGBA
		missing int
		total   float64
	)
	for _, h := range heroes {
		img := r.sprite(h, px)
		if img == nil {
			missing++
			continue
		}
		row = append(row, img)
		total += float64(img.Bounds().Dx())
	}
	if len(row) == 0 {
		return missing
	}
	total += spacing * float64(len(row)-1)

	x := m.pad + m.content*0.5 - total/2
	y := m.pad + m.content*layout.HeroY
	for _, img := range row {
		w := float64(img.Bounds().Dx())
		drawSprite(dc, img, x+w/2, y, 0, 1)
		x += w + spacing
	}
	return missing
}

// drawTitle draws the title in a capsule at the top of the card.
func (r *Renderer) drawTitle(dc *gg.Context, m metrics, title string) error {
	if title == "" {
		return nil
	}
	dc.SetFont(r.titleFont.Face(m.scaled(layout.TitleSizeRef)))
	w, h := dc.MeasureString(title)

	padX, padY := m.scaled(14), m.scaled(8)
	cw, ch := w+2*padX, h+2*padY
	top := m.scaled(layout.TitleTopRef)

	dc.DrawRoundedRectangle(m.size/2-cw/2, top, cw, ch, ch/2)
	dc.SetRGBA(1, 1, 1, 0.55)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: title capsule: %w", err)
	}

	dc.SetColor(ink)
	dc.DrawStringAnchored(title, m.size/2, top+ch/2, 0.5, 0.5)
	return nil
}

// Encode draws scene and writes it to w.
func (r *Renderer) Encode(w io.Writer, scene emojigen.Scene, f Format) error {
	dc, err := r.Draw(scene)
	if err != nil {
		return err
	}
	defer func() { _ = dc.Close() }()

	switch f {
	case PNG:
		err = dc.EncodePNG(w)
	case JPEG:
		err = dc.EncodeJPEG(w, JPEGQuality)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("render: encode %s: %w", f, err)
	}
	return nil
}

// Save draws scene to path. The format follows the file extension.
func (r *Renderer) Save(path string, scene emojigen.Scene) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()

	if err = r.Encode(file, scene, f); err != nil {
		return err
	}

	emojigen.Logger().Info("card saved",
		"path", path,
		"format", f.String(),
		"size", r.size,
		"seed", scene.Seed)
	return nil
}
