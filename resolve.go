package maplit

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"
)

// record is the canonical resolved form of an option bag. The zero value
// holds the defaults: compute capacity from the entry count, allocate with
// the runtime's make, insert keys untransformed.
type record struct {
	capacity int
	hasher   any
	keyMap   any

	capacitySet bool
	hasherSet   bool
	keyMapSet   bool
}

// resolve folds an option bag into its canonical record. Tokens are
// consumed one at a time; because each recognized name may be set at most
// once and unknown names abort immediately, any permutation of the same bag
// resolves to the same record (or fails the same way).
func resolve(bag []Option) (record, error) {
	return munch(record{}, bag)
}

// munch consumes the head token of the bag, folds it into rec, and recurses
// on the tail. The empty bag terminates the recursion.
func munch(rec record, bag []Option) (record, error) {
	if len(bag) == 0 {
		return rec, nil
	}
	tok := bag[0]
	switch tok.Name {
	case optCapacity:
		if rec.capacitySet {
			return record{}, fmt.Errorf("%w: %q", ErrDuplicateOption, tok.Name)
		}
		n, ok := tok.Value.(int)
		if !ok {
			return record{}, fmt.Errorf("%w: capacity must be an int, got %T", ErrOptionValue, tok.Value)
		}
		if n < 0 {
			return record{}, fmt.Errorf("%w: capacity must be non-negative, got %d", ErrOptionValue, n)
		}
		rec.capacity, rec.capacitySet = n, true
	case optHasher:
		if rec.hasherSet {
			return record{}, fmt.Errorf("%w: %q", ErrDuplicateOption, tok.Name)
		}
		rec.hasher, rec.hasherSet = tok.Value, true
	case optKeyMap:
		if rec.keyMapSet {
			return record{}, fmt.Errorf("%w: %q", ErrDuplicateOption, tok.Name)
		}
		rec.keyMap, rec.keyMapSet = tok.Value, true
	default:
		return record{}, fmt.Errorf("%w: %q", ErrUnknownOption, tok.Name)
	}
	return munch(rec, bag[1:])
}

// effectiveCapacity resolves the pre-allocation size for entryCount entries:
// the capacity option if set and nonzero, otherwise the entry count itself.
func (r record) effectiveCapacity(entryCount int) int {
	if r.capacitySet && r.capacity > 0 {
		return r.capacity
	}
	return entryCount
}

// keyFuncOf extracts the key transform for a build with key (or element)
// type K. An unset or nil key_map yields the identity; a typed nil function
// is treated the same, it must never be called.
func keyFuncOf[K any](r record) (func(K) K, error) {
	identity := func(k K) K { return k }
	if !r.keyMapSet || r.keyMap == nil {
		return identity, nil
	}
	fn, ok := r.keyMap.(func(K) K)
	if !ok {
		var zero K
		return nil, fmt.Errorf("%w: key_map must be func(%T) %T, got %T", ErrOptionValue, zero, zero, r.keyMap)
	}
	if fn == nil {
		return identity, nil
	}
	return fn, nil
}

// mapAllocOf extracts the backing-store allocator for an unordered map
// build. The hasher option accepts both a [MapAlloc] and a bare func of the
// same shape; unset or nil selects the runtime's make.
func mapAllocOf[K comparable, V any](r record) (MapAlloc[K, V], error) {
	regular := func(capacity int) map[K]V { return make(map[K]V, capacity) }
	if !r.hasherSet || r.hasher == nil {
		return regular, nil
	}
	var alloc MapAlloc[K, V]
	switch fn := r.hasher.(type) {
	case MapAlloc[K, V]:
		alloc = fn
	case func(capacity int) map[K]V:
		alloc = fn
	default:
		return nil, fmt.Errorf("%w: hasher must be a maplit.MapAlloc matching the build's key and value types, got %T", ErrOptionValue, r.hasher)
	}
	if alloc == nil {
		// A typed nil selects the regular strategy, same as an untyped one.
		return regular, nil
	}
	return alloc, nil
}

// setAllocOf is the set counterpart of mapAllocOf.
func setAllocOf[T comparable](r record) (SetAlloc[T], error) {
	regular := func(capacity int) sets.Set[T] { return make(sets.Set[T], capacity) }
	if !r.hasherSet || r.hasher == nil {
		return regular, nil
	}
	var alloc SetAlloc[T]
	switch fn := r.hasher.(type) {
	case SetAlloc[T]:
		alloc = fn
	case func(capacity int) sets.Set[T]:
		alloc = fn
	default:
		return nil, fmt.Errorf("%w: hasher must be a maplit.SetAlloc matching the build's element type, got %T", ErrOptionValue, r.hasher)
	}
	if alloc == nil {
		return regular, nil
	}
	return alloc, nil
}
