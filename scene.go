package emojigen

import (
	"strings"

	"github.com/gogpu/emojigen/compose"
	"github.com/gogpu/emojigen/layout"
	"github.com/gogpu/emojigen/seeded"
)

// Request holds the inputs of one card.
type Request struct {
	Prompt string
	Seed   uint64
	Hue    float64 // fraction of the color wheel, wrapped into [0, 1)
}

// Scene is everything a renderer needs to draw one card.
type Scene struct {
	Title      string
	Emojis     []string
	Heroes     []string
	Placements []layout.Placement
	Palette    layout.Palette
	Seed       uint64
}

// ComposeEmojis selects up to compose.MaxEmojis emoji for prompt.
func ComposeEmojis(prompt string) []string {
	return compose.Emojis(prompt)
}

// ComposeTitle returns the display title for prompt.
func ComposeTitle(prompt string) string {
	return compose.Title(prompt)
}

// NewGenerator returns the deterministic generator for seed.
func NewGenerator(seed uint64) *seeded.Generator {
	return seeded.New(seed)
}

// Build composes the emoji for req.Prompt with the built-in table and lays
// them out from req.Seed.
func Build(req Request) Scene {
	return BuildWith(req, ComposeEmojis(req.Prompt))
}

// BuildWith lays out a caller-provided selection. Given the same selection
// and seed it always returns the same scene.
func BuildWith(req Request, emojis []string) Scene {
	sel := make([]string, len(emojis))
	copy(sel, emojis)

	scene := Scene{
		Title:      ComposeTitle(req.Prompt),
		Emojis:     sel,
		Heroes:     layout.Heroes(sel),
		Placements: layout.Compute(sel, NewGenerator(req.Seed)),
		Palette:    layout.Background(req.Hue),
		Seed:       req.Seed,
	}

	Logger().Debug("scene built",
		"seed", req.Seed,
		"emojis", len(sel),
		"placements", len(scene.Placements),
		"hue", scene.Palette.Hue)

	return scene
}

// Clipboard returns the selection as one string, the text a host copies to
// the clipboard.
func Clipboard(emojis []string) string {
	return strings.Join(emojis, "")
}
