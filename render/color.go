package render

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"sync"
	"unicode/utf8"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gg/text"
	"github.com/gogpu/gg/text/emoji"
)

// glyphIndexer maps runes to glyph IDs. text.ParsedFont satisfies it.
type glyphIndexer interface {
	GlyphIndex(r rune) uint16
	NumGlyphs() int
}

// ColorGlyphs draws emoji from the PNG bitmaps of a color font
// (CBDT/CBLC as in Noto Color Emoji, or sbix as in Apple Color Emoji).
// Outline rendering leaves these fonts blank because they carry no
// outlines.
//
// Bitmaps are taken from the largest strike and scaled down, so each glyph
// is decoded once. ColorGlyphs is safe for concurrent use.
type ColorGlyphs struct {
	index glyphIndexer
	cbdt  *emoji.CBDTExtractor
	sbix  *emoji.SBIXParser

	mu      sync.Mutex
	decoded map[uint16]*decodedGlyph // nil value: glyph has no bitmap
}

type decodedGlyph struct {
	img  image.Image
	ppem float64
}

// NewColorGlyphs reads the color bitmap tables of the font file data. src
// must be parsed from the same data. It returns ErrNoColorGlyphs for plain
// outline fonts.
func NewColorGlyphs(data []byte, src *text.FontSource) (*ColorGlyphs, error) {
	return newColorGlyphs(data, src.Parsed())
}

func newColorGlyphs(data []byte, index glyphIndexer) (*ColorGlyphs, error) {
	c := &ColorGlyphs{
		index:   index,
		decoded: make(map[uint16]*decodedGlyph),
	}

	cbdt, cblc := sfntTable(data, "CBDT"), sfntTable(data, "CBLC")
	if cbdt != nil && cblc != nil {
		ext, err := emoji.NewCBDTExtractor(cbdt, cblc)
		if err != nil {
			return nil, fmt.Errorf("render: CBDT: %w", err)
		}
		c.cbdt = ext
		return c, nil
	}

	if sbix := sfntTable(data, "sbix"); sbix != nil {
		n := index.NumGlyphs()
		if n <= 0 || n > math.MaxUint16 {
			return nil, fmt.Errorf("render: sbix: bad glyph count %d", n)
		}
		p, err := emoji.NewSBIXParser(sbix, uint16(n))
		if err != nil {
			return nil, fmt.Errorf("render: sbix: %w", err)
		}
		c.sbix = p
		return c, nil
	}

	return nil, ErrNoColorGlyphs
}

// Sprite returns the bitmap of the first rune of s scaled to a font size of
// px pixels, or nil when there is none. Sequences that need ligatures (ZWJ
// families, flags) show their first component.
func (c *ColorGlyphs) Sprite(s string, px float64) *image.RGBA {
	g := c.glyph(s)
	if g == nil || px <= 0 {
		return nil
	}

	scale := px / g.ppem
	b := g.img.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), g.img, b, xdraw.Over, nil)
	return dst
}

func (c *ColorGlyphs) glyph(s string) *decodedGlyph {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return nil
	}
	gid := c.index.GlyphIndex(r)
	if gid == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok := c.decoded[gid]; ok {
		return g
	}
	g := c.load(gid)
	c.decoded[gid] = g
	return g
}

// load decodes gid from the largest strike. Callers hold c.mu.
func (c *ColorGlyphs) load(gid uint16) *decodedGlyph {
	var (
		bm  *emoji.BitmapGlyph
		err error
	)
	switch {
	case c.cbdt != nil:
		bm, err = c.cbdt.GetGlyphWithStrategy(gid, 0, emoji.StrikeLargest)
	case c.sbix != nil:
		bm, err = c.sbix.GetGlyph(int(gid), c.sbix.BestStrikeForPPEM(math.MaxUint16))
	default:
		return nil
	}
	if err != nil || bm == nil || bm.PPEM == 0 {
		return nil
	}

	img, err := bm.Decode()
	if err != nil {
		return nil
	}
	return &decodedGlyph{img: img, ppem: float64(bm.PPEM)}
}

// sfntTable returns the named table of an OpenType file, or nil.
// Font collections are not supported.
func sfntTable(data []byte, tag string) []byte {
	if len(data) < 12 {
		return nil
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	for i := range numTables {
		rec := 12 + 16*i
		if rec+16 > len(data) {
			return nil
		}
		if string(data[rec:rec+4]) != tag {
			continue
		}
		off := uint64(binary.BigEndian.Uint32(data[rec+8 : rec+12]))
		n := uint64(binary.BigEndian.Uint32(data[rec+12 : rec+16]))
		if off+n > uint64(len(data)) {
			return nil
		}
		return data[off : off+n]
	}
	return nil
}
