package maplit

import "k8s.io/apimachinery/pkg/util/sets"

// HashSet builds a [sets.Set] from a list of elements, pre-sized to the
// element count. Duplicate elements collapse silently, standard set
// semantics. The empty list yields an empty, non-nil set.
//
//	colors := maplit.HashSet("red", "green", "blue")
//	colors.Has("red") // true
func HashSet[T comparable](elems ...T) sets.Set[T] {
	s := make(sets.Set[T], len(elems))
	s.Insert(elems...)
	return s
}

// HashSetWith is [HashSet] with an option bag, validated in full before the
// first insertion. The key_map option applies to each element before it is
// inserted; a [WithHasher] value must be a [SetAlloc] over T.
func HashSetWith[T comparable](opts []Option, elems ...T) (sets.Set[T], error) {
	rec, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	elemFn, err := keyFuncOf[T](rec)
	if err != nil {
		return nil, err
	}
	alloc, err := setAllocOf[T](rec)
	if err != nil {
		return nil, err
	}
	s := alloc(rec.effectiveCapacity(len(elems)))
	for _, e := range elems {
		s.Insert(elemFn(e))
	}
	return s, nil
}
