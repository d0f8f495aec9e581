package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/emojigen"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// emojiFontCandidates are well-known locations of emoji fonts.
// Only TTF files are listed; TTC collections are not supported.
var emojiFontCandidates = []string{
	// Linux
	"/usr/share/fonts/truetype/noto/NotoColorEmoji.ttf",
	"/usr/share/fonts/noto/NotoColorEmoji.ttf",
	"/usr/share/fonts/google-noto-emoji/NotoColorEmoji.ttf",
	"/usr/share/fonts/truetype/ancient-scripts/Symbola_hint.ttf",
	// Windows
	"C:\\Windows\\Fonts\\seguiemj.ttf",
	// Working directory
	"./NotoColorEmoji.ttf",
	"./NotoColorEmoji-Regular.ttf",
}

// FindEmojiFont returns the path of the first emoji font found on this
// machine, or "" if there is none.
func FindEmojiFont() string {
	for _, path := range emojiFontCandidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadFont loads a TTF or OTF file. The caller must Close the result.
func LoadFont(path string) (*text.FontSource, error) {
	src, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: load font %s: %w", path, err)
	}
	return src, nil
}

// LoadEmojiFont loads an emoji font together with its color bitmaps. The
// returned ColorGlyphs is nil for outline-only fonts. Broken color tables
// are logged and the outlines used instead. The caller must Close the
// source.
//
//	src, color, err := render.LoadEmojiFont(render.FindEmojiFont())
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//	r, err := render.New(render.WithEmojiFont(src), render.WithColorGlyphs(color))
func LoadEmojiFont(path string) (*text.FontSource, *ColorGlyphs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("render: load font %s: %w", path, err)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, nil, fmt.Errorf("render: load font %s: %w", path, err)
	}

	color, err := NewColorGlyphs(data, src)
	switch {
	case errors.Is(err, ErrNoColorGlyphs):
		return src, nil, nil
	case err != nil:
		emojigen.Logger().Warn("color glyphs unusable, drawing outlines",
			"font", path,
			"error", err)
		return src, nil, nil
	}
	return src, color, nil
}

// goMedium loads the embedded Go Medium font used for titles by default.
func goMedium() (*text.FontSource, error) {
	return goFont(gomedium.TTF, "go medium")
}

// goRegular loads the embedded Go Regular font used for emoji when no other
// font is configured.
func goRegular() (*text.FontSource, error) {
	return goFont(goregular.TTF, "go regular")
}

func goFont(ttf []byte, name string) (*text.FontSource, error) {
	src, err := text.NewFontSource(ttf)
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", name, err)
	}
	return src, nil
}
