package maplit

import "k8s.io/apimachinery/pkg/util/sets"

// Recognized option names. The grammar in resolve.go rejects anything else.
const (
	optCapacity = "capacity"
	optHasher   = "hasher"
	optKeyMap   = "key_map"
)

// Option is one name=value token of a build call's option bag.
//
// The bag is an unordered collection: tokens may be given in any order and
// each recognized name may appear at most once. Use the constructors
// [Capacity], [WithHasher] and [KeyMap] for the recognized names; a token
// with any other name fails validation with [ErrUnknownOption].
type Option struct {
	Name  string
	Value any
}

// A MapAlloc allocates the backing store for an unordered map build. It
// receives the resolved capacity (the capacity option if set and nonzero,
// otherwise the entry count) and is invoked exactly once per build.
type MapAlloc[K comparable, V any] func(capacity int) map[K]V

// A SetAlloc allocates the backing store for an unordered set build.
// See [MapAlloc] for the capacity contract.
type SetAlloc[T comparable] func(capacity int) sets.Set[T]

// Capacity returns a capacity option: an explicit pre-allocation hint for
// the unordered builders. A value of 0 means "compute from the entry count",
// which is also the behavior when the option is absent. Negative values fail
// validation with [ErrOptionValue].
func Capacity(n int) Option {
	return Option{Name: optCapacity, Value: n}
}

// WithHasher returns a hasher option selecting the backing-store strategy
// for an unordered build. A nil alloc, untyped or a nil [MapAlloc] or
// [SetAlloc] value, selects the regular strategy (the runtime's make), which
// is also the default. Otherwise alloc must be a [MapAlloc] matching the
// build's key and value types for map builds, or a [SetAlloc] matching the
// element type for set builds; anything else fails validation with
// [ErrOptionValue].
func WithHasher(alloc any) Option {
	return Option{Name: optHasher, Value: alloc}
}

// KeyMap returns a key_map option: a transform applied to every key (for
// map builds) or every element (for set builds) before insertion. The
// function runs exactly once per entry, in list order; a nil fn means the
// identity. K must match the build's key or element type; a mismatch fails
// validation with [ErrOptionValue].
//
// Because a method option cannot introduce a new type parameter, KeyMap
// cannot change the key type. For type-changing construction use the
// package-level [ConvertKeys], [ConvertMap] or [ConvertSet].
func KeyMap[K any](fn func(K) K) Option {
	return Option{Name: optKeyMap, Value: fn}
}
