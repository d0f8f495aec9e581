package compose

import "errors"

// Sentinel errors for compose package.
var (
	// ErrEmptyFallback is returned when a table has no fallback emoji.
	ErrEmptyFallback = errors.New("compose: empty fallback set")

	// ErrBadKeyword is returned when a keyword is empty, duplicated after
	// lowercasing, or would be split into several tokens.
	ErrBadKeyword = errors.New("compose: invalid keyword")

	// ErrNotEmoji is returned when a table entry contains no emoji sequence.
	ErrNotEmoji = errors.New("compose: entry is not an emoji")
)
