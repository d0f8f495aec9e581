package emojigen

import (
	"slices"
	"testing"

	"github.com/gogpu/emojigen/compose"
	"github.com/gogpu/emojigen/layout"
)

func TestBuild(t *testing.T) {
	s := Build(Request{Prompt: "party confetti", Seed: 42, Hue: 0.56})

	if s.Title != "Party Confetti" {
		t.Errorf("Title = %q", s.Title)
	}
	if len(s.Emojis) == 0 || len(s.Emojis) > compose.MaxEmojis {
		t.Errorf("len(Emojis) = %d", len(s.Emojis))
	}
	if len(s.Placements) != layout.Count(len(s.Emojis)) {
		t.Errorf("len(Placements) = %d, want %d", len(s.Placements), layout.Count(len(s.Emojis)))
	}
	if !slices.Equal(s.Heroes, s.Emojis[:min(3, len(s.Emojis))]) {
		t.Errorf("Heroes = %q, want prefix of %q", s.Heroes, s.Emojis)
	}
	if s.Seed != 42 {
		t.Errorf("Seed = %d", s.Seed)
	}
	for _, p := range s.Placements {
		if !slices.Contains(s.Emojis, p.Emoji) {
			t.Errorf("placement emoji %q not in selection", p.Emoji)
		}
	}
}

func TestBuildWithReplays(t *testing.T) {
	req := Request{Prompt: "happy sun", Seed: 7, Hue: 0.2}
	first := Build(req)

	a := BuildWith(req, first.Emojis)
	if !slices.Equal(a.Placements, first.Placements) {
		t.Error("replay with saved selection changed the layout")
	}
	if a.Palette != first.Palette {
		t.Error("replay changed the palette")
	}
}

func TestBuildWithCopiesSelection(t *testing.T) {
	sel := []string{"🌞", "🌈"}
	s := BuildWith(Request{Seed: 1}, sel)
	sel[0] = "x"
	if s.Emojis[0] != "🌞" || s.Heroes[0] != "🌞" {
		t.Error("scene aliases the caller's selection")
	}
}

func TestBuildWithEmptySelection(t *testing.T) {
	s := BuildWith(Request{Seed: 9}, nil)
	if len(s.Placements) != layout.MinCount {
		t.Fatalf("len(Placements) = %d, want %d", len(s.Placements), layout.MinCount)
	}
	for _, p := range s.Placements {
		if p.Emoji != compose.DefaultSparkle {
			t.Errorf("emoji = %q, want default sparkle", p.Emoji)
		}
	}
	if s.Title != compose.DefaultTitle {
		t.Errorf("Title = %q", s.Title)
	}
}

func TestNewGenerator(t *testing.T) {
	a, b := NewGenerator(42), NewGenerator(42)
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			t.Fatal("generators with the same seed diverged")
		}
	}
}

func TestClipboard(t *testing.T) {
	if got := Clipboard([]string{"🎉", "✨"}); got != "🎉✨" {
		t.Errorf("Clipboard = %q", got)
	}
	if got := Clipboard(nil); got != "" {
		t.Errorf("Clipboard(nil) = %q", got)
	}
}
