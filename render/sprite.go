package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// ink is the color of outline emoji and the title.
var ink = color.NRGBA{R: 26, G: 26, B: 31, A: 255}

// sprite rasterizes one emoji at font size px. Color bitmaps win over
// outlines. The result is cropped to its visible pixels, or nil when the
// fonts have nothing to show for s.
func (r *Renderer) sprite(s string, px float64) *image.NRGBA {
	if r.color != nil {
		if img := r.color.Sprite(s, px); img != nil {
			return cropInk(img)
		}
	}
	return outlineSprite(r.emojiFont.Face(px), s, px)
}

// outlineSprite draws s with face into a scratch tile. Strings whose first
// rune the font lacks give nil instead of a .notdef box.
func outlineSprite(face text.Face, s string, px float64) *image.NRGBA {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !face.HasGlyph(r) {
		return nil
	}

	side := int(math.Ceil(px * 3))
	tile := image.NewRGBA(image.Rect(0, 0, side, side))
	text.Draw(tile, s, face, px, 2*px, ink)
	return cropInk(tile)
}

// cropInk copies the part of img holding every non-transparent pixel into
// a straight-alpha image at the origin, or returns nil for a blank image.
func cropInk(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	box := image.Rectangle{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			if row[4*x+3] != 0 {
				box = box.Union(image.Rect(b.Min.X+x, y, b.Min.X+x+1, y+1))
			}
		}
	}
	if box.Empty() {
		return nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(dst, dst.Bounds(), img, box.Min, draw.Src)
	return dst
}

// drawSprite centres img on (x, y), turned deg degrees about that point.
func drawSprite(dc *gg.Context, img *image.NRGBA, x, y, deg, opacity float64) {
	b := img.Bounds()
	dc.Push()
	if deg != 0 {
		dc.RotateAbout(deg*math.Pi/180, x, y)
	}
	dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:       x - float64(b.Dx())/2,
		Y:       y - float64(b.Dy())/2,
		Opacity: opacity,
	})
	dc.Pop()
}
