package layout

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Background gradient parameters in HSB.
const (
	hueShift = 0.08

	startSaturation = 0.35
	startBrightness = 0.98
	endSaturation   = 0.45
	endBrightness   = 0.95
)

// DefaultHue is the hue a new card starts with.
const DefaultHue = 0.56

// Palette is the card background: a linear gradient from the top-left
// corner (Start) to the bottom-right corner (End).
type Palette struct {
	Hue        float64
	Start, End colorful.Color
}

// Background returns the palette for hue, a fraction of the color wheel.
// Values outside [0, 1) wrap around.
func Background(hue float64) Palette {
	h := WrapHue(hue)
	return Palette{
		Hue:   h,
		Start: colorful.Hsv(h*360, startSaturation, startBrightness),
		End:   colorful.Hsv(WrapHue(h+hueShift)*360, endSaturation, endBrightness),
	}
}

// WrapHue maps hue into [0, 1). NaN and infinities map to 0.
func WrapHue(hue float64) float64 {
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		return 0
	}
	h := math.Mod(hue, 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return h
}
