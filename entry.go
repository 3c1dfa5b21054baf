package maplit

import "fmt"

// Entry holds one key/value pair of a map literal.
// It is the element type consumed by [HashMap], [BTreeMap] and friends.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// E creates an Entry. It exists so that call sites stay short and the type
// arguments are inferred from the key and value:
//
//	maplit.HashMap(maplit.E(1, "one"), maplit.E(2, "two"))
func E[K, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// String returns a human-readable representation: "key => value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v => %v", e.Key, e.Value)
}
