package render

import "github.com/gogpu/gg/text"

// DefaultSize is the edge length in pixels of a rendered card.
const DefaultSize = 1024

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default 1024x1024 card with the Go fonts
//	r, err := render.New()
//
//	// Small preview with a color emoji font
//	r, err := render.New(render.WithSize(360), render.WithEmojiFont(src))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	size      int
	font      *text.FontSource
	emojiFont *text.FontSource
	color     *ColorGlyphs
	rounded   bool
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		size:    DefaultSize,
		rounded: true,
	}
}

// WithSize sets the edge length of the square output in pixels.
func WithSize(px int) Option {
	return func(o *options) {
		o.size = px
	}
}

// WithFont sets the font used for the title. It is also used for emoji
// when no emoji font is given. The caller keeps ownership of src.
func WithFont(src *text.FontSource) Option {
	return func(o *options) {
		o.font = src
	}
}

// WithEmojiFont sets the font used for the scattered and hero emoji.
// The caller keeps ownership of src.
func WithEmojiFont(src *text.FontSource) Option {
	return func(o *options) {
		o.emojiFont = src
	}
}

// WithColorGlyphs draws emoji from the bitmap tables of a color font,
// falling back to the emoji font's outlines for anything they lack.
// See LoadEmojiFont.
func WithColorGlyphs(c *ColorGlyphs) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithRoundedCorners controls whether the card is clipped to a rounded
// rectangle. Enabled by default.
func WithRoundedCorners(on bool) Option {
	return func(o *options) {
		o.rounded = on
	}
}
