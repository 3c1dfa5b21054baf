package maplit

import (
	"cmp"

	"github.com/tidwall/btree"
)

// BTreeMap builds a [btree.Map] from a list of entries. Entries are inserted
// in list order (a later duplicate key overwrites an earlier one), but the
// finished map iterates in ascending key order regardless of how the entries
// were listed.
//
// Tree containers have no capacity concept, so BTreeMap takes no options.
func BTreeMap[K cmp.Ordered, V any](entries ...Entry[K, V]) *btree.Map[K, V] {
	var m btree.Map[K, V]
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return &m
}

// BTreeSet builds a [btree.Set] from a list of elements. Duplicates collapse
// and the finished set iterates in ascending element order.
func BTreeSet[T cmp.Ordered](elems ...T) *btree.Set[T] {
	var s btree.Set[T]
	for _, e := range elems {
		s.Insert(e)
	}
	return &s
}
