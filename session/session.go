// Package session holds the editable state behind an emoji card and the
// two controls that change it: generate and randomize.
package session

import (
	"math/rand/v2"
	"time"

	"github.com/gogpu/emojigen"
	"github.com/gogpu/emojigen/layout"
)

// Suggestions are the prompts Randomize picks from when the prompt is empty.
var Suggestions = []string{
	"sparkles joy",
	"coffee code",
	"sun beach chill",
	"party confetti",
	"music vibe",
	"rocket innovate",
}

// State is the prompt, seed and hue a card is drawn from.
type State struct {
	Prompt string
	Seed   uint64
	Hue    float64
}

// New returns the initial state: an empty prompt, the Unix time in seconds
// as seed and the default hue.
func New(now time.Time) *State {
	return &State{
		Seed: uint64(now.Unix()),
		Hue:  layout.DefaultHue,
	}
}

// Generate moves to the next seed, wrapping at the top of the range.
func (s *State) Generate() {
	s.Seed++
}

// Randomize picks a new seed and hue from r. An empty prompt is replaced by
// one of the Suggestions.
func (s *State) Randomize(r *rand.Rand) {
	s.Seed = r.Uint64()
	s.Hue = r.Float64()
	if s.Prompt == "" {
		s.Prompt = Suggestions[r.IntN(len(Suggestions))]
	}
}

// Request converts the state into a build request.
func (s *State) Request() emojigen.Request {
	return emojigen.Request{Prompt: s.Prompt, Seed: s.Seed, Hue: s.Hue}
}
