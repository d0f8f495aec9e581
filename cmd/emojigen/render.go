package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/emojigen"
	"github.com/gogpu/emojigen/render"
	"github.com/gogpu/emojigen/session"
	"github.com/gogpu/gg/text"
)

type renderFlags struct {
	seed      uint64
	next      bool
	randomize bool
	out       string
	copy      bool
}

func (a *app) renderCmd() *cobra.Command {
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "render [prompt...]",
		Short: "Draw an emoji card to a PNG or JPEG file",
		Example: `  emojigen render sun beach party
  emojigen render coffee code --seed 7 --hue 0.1 --out card.jpg
  emojigen render --randomize --emoji-font NotoEmoji-Regular.ttf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args, rf)
		},
	}

	f := cmd.Flags()
	f.Uint64Var(&rf.seed, "seed", 0, "layout seed (default: current Unix time)")
	f.Float64("hue", 0, "background hue as a fraction of the color wheel")
	f.BoolVar(&rf.next, "next", false, "advance the seed by one before drawing")
	f.BoolVar(&rf.randomize, "randomize", false, "pick a random seed and hue, and a prompt if none is given")
	f.StringVarP(&rf.out, "out", "o", "", "output file, .png or .jpg (default emoji-<seed>.png)")
	f.Int("size", 0, "card edge length in pixels")
	f.String("font", "", "TTF/OTF font for the title")
	f.String("emoji-font", "", "TTF/OTF font for emoji (default: first system emoji font found)")
	f.BoolVar(&rf.copy, "copy", false, "copy the emoji to the clipboard")
	_ = a.v.BindPFlag("render.hue", f.Lookup("hue"))
	_ = a.v.BindPFlag("render.size", f.Lookup("size"))
	_ = a.v.BindPFlag("render.font", f.Lookup("font"))
	_ = a.v.BindPFlag("render.emoji_font", f.Lookup("emoji-font"))

	return cmd
}

// state builds the session state the card is drawn from.
func (a *app) state(cmd *cobra.Command, args []string, rf renderFlags) *session.State {
	st := session.New(a.now())
	st.Prompt = prompt(args)
	st.Hue = a.cfg.Render.Hue
	if cmd.Flags().Changed("seed") {
		st.Seed = rf.seed
	}
	if rf.randomize {
		st.Randomize(a.rng)
	}
	if rf.next {
		st.Generate()
	}
	return st
}

func (a *app) runRender(cmd *cobra.Command, args []string, rf renderFlags) error {
	st := a.state(cmd, args, rf)
	scene := emojigen.BuildWith(st.Request(), a.composer.Emojis(st.Prompt))

	opts := []render.Option{
		render.WithSize(a.cfg.Render.Size),
		render.WithRoundedCorners(a.cfg.Render.Rounded),
	}
	if a.cfg.Render.Font != "" {
		src, err := render.LoadFont(a.cfg.Render.Font)
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()
		opts = append(opts, render.WithFont(src))
	}
	emojiFont, color, err := a.emojiFont()
	if err != nil {
		return err
	}
	if emojiFont != nil {
		defer func() { _ = emojiFont.Close() }()
		opts = append(opts, render.WithEmojiFont(emojiFont), render.WithColorGlyphs(color))
	}

	r, err := render.New(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	out := rf.out
	if out == "" {
		out = fmt.Sprintf("emoji-%d.png", st.Seed)
	}
	if err := r.Save(out, scene); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, titleStyle.Render(scene.Title))
	fmt.Fprintln(w, field("emoji", strings.Join(scene.Emojis, " ")))
	fmt.Fprintln(w, field("seed", fmt.Sprint(st.Seed)))
	fmt.Fprintln(w, field("hue", fmt.Sprintf("%.3f", scene.Palette.Hue)))
	fmt.Fprintln(w, field("saved", out))

	if rf.copy {
		if err := a.copyText(emojigen.Clipboard(scene.Emojis)); err != nil {
			return err
		}
		fmt.Fprintln(w, dimStyle.Render("emoji copied to clipboard"))
	}
	return nil
}

// emojiFont loads the configured emoji font, or the first one found on the
// system, with its color bitmaps if it has any. A configured font that fails
// to load is an error; a discovered one only a warning.
func (a *app) emojiFont() (*text.FontSource, *render.ColorGlyphs, error) {
	if path := a.cfg.Render.EmojiFont; path != "" {
		return render.LoadEmojiFont(path)
	}

	log := emojigen.Logger()
	path := render.FindEmojiFont()
	if path == "" {
		log.Warn("no emoji font found, emoji will be missing; set --emoji-font")
		return nil, nil, nil
	}
	src, color, err := render.LoadEmojiFont(path)
	if err != nil {
		log.Warn("system emoji font unusable", "path", path, "error", err)
		return nil, nil, nil
	}
	log.Debug("using system emoji font", "path", path, "color", color != nil)
	return src, color, nil
}
