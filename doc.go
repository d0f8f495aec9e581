// Package emojigen turns a short text prompt into a decorative emoji card.
//
// # Overview
//
// A card is built from three inputs: a prompt, a 64-bit seed and a
// background hue. The prompt selects emoji by keyword, the seed drives a
// deterministic layout of scattered emoji, and the hue picks the gradient
// behind them.
//
//	scene := emojigen.Build(emojigen.Request{
//	    Prompt: "happy sun party",
//	    Seed:   42,
//	    Hue:    0.56,
//	})
//
//	r, _ := render.New()
//	_ = r.Save("card.png", scene)
//
// # Determinism
//
// For a fixed seed the layout stream is always the same. The emoji
// selection is not: [ComposeEmojis] shuffles with an unseeded permutation,
// so pressing "generate" twice with the same seed can show a different
// subset. Use [BuildWith] with a saved selection to replay a card exactly.
//
// # Packages
//
//   - compose: keyword table, emoji selection, titles
//   - seeded: the splitmix64 generator and sampling helpers
//   - layout: placement policy and background palette
//   - render: rasterization with github.com/gogpu/gg
//   - session: the generate and randomize controls
package emojigen

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
