package render

import "errors"

// Sentinel errors for render package.
var (
	// ErrInvalidSize is returned when the output size is not positive.
	ErrInvalidSize = errors.New("render: invalid size")

	// ErrUnknownFormat is returned for output formats other than PNG and JPEG.
	ErrUnknownFormat = errors.New("render: unknown image format")

	// ErrNoColorGlyphs is returned when a font has neither CBDT/CBLC nor
	// sbix bitmap tables.
	ErrNoColorGlyphs = errors.New("render: font has no color bitmap glyphs")
)
