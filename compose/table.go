package compose

// builtin is the default keyword table. It is never mutated; accessors hand
// out copies.
var builtin = Table{
	"happy":    {"😊", "😄", "😁", "😸", "✨", "🤩"},
	"sun":      {"🌞", "☀️", "😎", "🌤️", "🌈"},
	"party":    {"🥳", "🎉", "🎊", "🪩", "🎈", "🍰"},
	"coffee":   {"☕️", "🧋", "🍪", "💻", "⌨️"},
	"music":    {"🎵", "🎧", "🎶", "🎸", "🎹"},
	"code":     {"👨‍💻", "👩‍💻", "💻", "🧠", "⚙️", "🧩"},
	"love":     {"❤️", "💖", "💕", "💞", "💘", "😍"},
	"sparkles": {"✨", "🌟", "💫", "⭐️"},
	"beach":    {"🏖️", "🌊", "🕶️", "🦀", "🐚", "🍹"},
	"space":    {"🚀", "🪐", "🌌", "👩‍🚀", "🛰️"},
	"food":     {"🍕", "🍔", "🍟", "🍣", "🌮", "🍩", "🍪"},
	"flower":   {"🌸", "🌼", "🌻", "🌷", "🪻", "💐"},
	"winter":   {"❄️", "☃️", "🌨️", "🧣", "🧤", "⛷️"},
	"fire":     {"🔥", "⚡️", "💥", "🚀", "🏎️"},
	"calm":     {"🌿", "🧘", "🍵", "🌙", "💤"},
}

// builtinFallback is used when no token of a prompt matches a keyword.
var builtinFallback = []string{"✨", "💫", "🌟", "⭐️", "🎨", "🧠", "🚀", "💡", "🎉", "😄"}

// DefaultSparkle is the emoji a renderer substitutes when a selection is
// empty and an element must still be drawn.
const DefaultSparkle = "✨"
