// Package compose maps free-text prompts to emoji.
//
// A prompt is lowercased and split into tokens of letters and digits. Every
// token that names a keyword contributes that keyword's emoji to a bag; when
// nothing matches, the fallback set is used instead. The bag is shuffled
// with an unseeded permutation and cut to at most [MaxEmojis] entries, so two
// calls with the same prompt may return different subsets.
//
//	emojis := compose.Emojis("happy sun party") // e.g. [🎉 😎 😊 🌈 ...]
//	title := compose.Title("happy sun party")   // "Happy Sun Party"
//
// The built-in keyword table is fixed at build time. [New] and [Load] build a
// Composer over a custom table; the table cannot be changed afterwards.
package compose

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"

	"github.com/gogpu/gg/text/emoji"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxEmojis is the upper bound on the length of a selection.
const MaxEmojis = 10

// DefaultTitle is the title of a blank prompt.
const DefaultTitle = "Generated Emoji Vibes"

// Table maps a lowercase keyword to its ordered emoji.
type Table map[string][]string

// Composer selects emoji for prompts from one immutable keyword table.
// A Composer is safe for concurrent use.
type Composer struct {
	table    Table
	fallback []string
}

// std is the Composer over the built-in table.
var std = &Composer{table: builtin, fallback: builtinFallback}

// Default returns the Composer over the built-in keyword table.
func Default() *Composer {
	return std
}

// New builds a Composer from a keyword table and a fallback set.
//
// Keywords are trimmed and lowercased. Each keyword must be a single token,
// and each emoji entry must contain at least one emoji sequence. The inputs
// are copied; later changes to them do not affect the Composer.
func New(table Table, fallback []string) (*Composer, error) {
	if len(fallback) == 0 {
		return nil, ErrEmptyFallback
	}
	if err := checkEntries("fallback", fallback); err != nil {
		return nil, err
	}

	out := make(Table, len(table))
	for key, list := range table {
		k := strings.ToLower(strings.TrimSpace(key))
		if toks := Tokens(k); len(toks) != 1 || toks[0] != k {
			return nil, fmt.Errorf("%w: %q", ErrBadKeyword, key)
		}
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("%w: duplicate %q", ErrBadKeyword, k)
		}
		if err := checkEntries(k, list); err != nil {
			return nil, err
		}
		out[k] = slices.Clone(list)
	}

	return &Composer{table: out, fallback: slices.Clone(fallback)}, nil
}

// checkEntries reports the first entry of list that holds no emoji.
func checkEntries(name string, list []string) error {
	for i, e := range list {
		if len(emoji.ParseString(e)) == 0 {
			return fmt.Errorf("%w: %s[%d] = %q", ErrNotEmoji, name, i, e)
		}
	}
	return nil
}

// Tokens lowercases prompt and splits it on every rune that is not a
// letter, number or combining mark. Empty tokens are dropped.
func Tokens(prompt string) []string {
	return strings.FieldsFunc(strings.ToLower(prompt), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsMark(r)
	})
}

// Bag returns the unshuffled candidates for prompt: the emoji of every
// matching token in prompt order, or a copy of the fallback set when no
// token matches. The result is never empty.
func (c *Composer) Bag(prompt string) []string {
	var bag []string
	for _, tok := range Tokens(prompt) {
		if list, ok := c.table[tok]; ok {
			bag = append(bag, list...)
		}
	}
	if len(bag) == 0 {
		bag = slices.Clone(c.fallback)
	}
	return bag
}

// Emojis returns between 1 and MaxEmojis emoji for prompt.
// The order and, for large bags, the subset change from call to call.
func (c *Composer) Emojis(prompt string) []string {
	bag := c.Bag(prompt)
	rand.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	if len(bag) > MaxEmojis {
		bag = bag[:MaxEmojis:MaxEmojis]
	}
	return bag
}

// Keywords returns the table's keywords in sorted order.
func (c *Composer) Keywords() []string {
	keys := make([]string, 0, len(c.table))
	for k := range c.table {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Lookup returns a copy of the emoji for keyword.
func (c *Composer) Lookup(keyword string) ([]string, bool) {
	list, ok := c.table[keyword]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// Fallback returns a copy of the fallback set.
func (c *Composer) Fallback() []string {
	return slices.Clone(c.fallback)
}

// Emojis selects emoji for prompt from the built-in table.
func Emojis(prompt string) []string {
	return std.Emojis(prompt)
}

// Title returns prompt trimmed and title-cased, or DefaultTitle when the
// prompt is blank.
func Title(prompt string) string {
	cleaned := strings.TrimSpace(prompt)
	if cleaned == "" {
		return DefaultTitle
	}
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.Und).String(cleaned)
}
