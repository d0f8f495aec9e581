// Package layout computes the decorative arrangement of an emoji card.
//
// Positions are normalized to the card's content box, so the same layout can
// be drawn at any resolution. All randomness comes from a [seeded.Source]:
// the same selection and seed give the same placements.
package layout

import (
	"github.com/gogpu/emojigen/compose"
	"github.com/gogpu/emojigen/seeded"
)

// Bounds of the scattered emoji count.
const (
	MinCount = 6
	MaxCount = 14
)

// Sampling ranges, half-open.
const (
	PosMin      = 0.15
	PosMax      = 0.85
	RotationMin = -10.0 // degrees
	RotationMax = 10.0
	ScaleMin    = 0.8
	ScaleMax    = 1.4
)

// Card geometry. Lengths ending in Ref are measured against a 360 pixel
// reference card and scale with the output size.
const (
	PaddingRef      = 12.0
	HeroSpacingRef  = 8.0
	CornerRadiusRef = 24.0
	TitleSizeRef    = 22.0
	TitleTopRef     = 14.0
	ReferenceSize   = 360.0

	EmojiSize = 0.12 // of the content box's short side
	HeroSize  = 0.16
	HeroY     = 0.82
	Opacity   = 0.92

	MaxHeroes = 3
)

// Placement is one scattered emoji.
type Placement struct {
	Emoji    string
	X, Y     float64 // normalized to the content box
	Rotation float64 // degrees
	Scale    float64
}

// Count returns how many emoji are scattered for a selection of n emoji.
func Count(n int) int {
	return min(MaxCount, max(MinCount, n+MinCount))
}

// Compute draws Count(len(emojis)) placements from src.
//
// Each placement draws, in order: the emoji, X, Y, rotation and scale. When
// emojis is empty no emoji draw happens and compose.DefaultSparkle is used.
func Compute(emojis []string, src seeded.Source) []Placement {
	n := Count(len(emojis))
	out := make([]Placement, 0, n)
	for range n {
		e, ok := seeded.Pick(src, emojis)
		if !ok {
			e = compose.DefaultSparkle
		}
		out = append(out, Placement{
			Emoji:    e,
			X:        seeded.Uniform(src, PosMin, PosMax),
			Y:        seeded.Uniform(src, PosMin, PosMax),
			Rotation: seeded.Uniform(src, RotationMin, RotationMax),
			Scale:    seeded.Uniform(src, ScaleMin, ScaleMax),
		})
	}
	return out
}

// Heroes returns the foreground row: the first MaxHeroes emoji of the
// selection.
func Heroes(emojis []string) []string {
	n := min(len(emojis), MaxHeroes)
	heroes := make([]string, n)
	copy(heroes, emojis[:n])
	return heroes
}
