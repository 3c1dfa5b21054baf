package maplit

import "errors"

// Sentinel errors returned by option-bag validation. All are reported before
// the first entry is inserted, so a failed build never returns a partially
// populated container.
var (
	// ErrUnknownOption is returned when an option token's name is not one of
	// capacity, hasher or key_map.
	ErrUnknownOption = errors.New("maplit: unknown option")

	// ErrDuplicateOption is returned when a recognized option name appears
	// more than once in a single build call, regardless of the values.
	ErrDuplicateOption = errors.New("maplit: duplicate option")

	// ErrOptionValue is returned when a recognized option carries a value of
	// the wrong type or outside its valid range (e.g. a negative capacity,
	// or a key_map that is not a unary function over the build's key type).
	ErrOptionValue = errors.New("maplit: invalid option value")
)
