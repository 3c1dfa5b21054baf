package maplit

// HashMap builds a map[K]V from a list of entries, pre-sized to the entry
// count. Entries are inserted in list order, so a later duplicate key
// overwrites an earlier one. The empty list yields an empty, non-nil map.
//
//	names := maplit.HashMap(
//	    maplit.E(1, "one"),
//	    maplit.E(2, "two"),
//	)
func HashMap[K comparable, V any](entries ...Entry[K, V]) map[K]V {
	m := make(map[K]V, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}

// HashMapWith is [HashMap] with an option bag. The bag is validated in full
// before the first insertion: on error no container is built and nil is
// returned. See [Capacity], [WithHasher] and [KeyMap] for the recognized
// options, and the package documentation for the bag's at-most-once and
// order-independence rules.
func HashMapWith[K comparable, V any](opts []Option, entries ...Entry[K, V]) (map[K]V, error) {
	rec, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	keyFn, err := keyFuncOf[K](rec)
	if err != nil {
		return nil, err
	}
	alloc, err := mapAllocOf[K, V](rec)
	if err != nil {
		return nil, err
	}
	m := alloc(rec.effectiveCapacity(len(entries)))
	for _, e := range entries {
		m[keyFn(e.Key)] = e.Value
	}
	return m, nil
}
