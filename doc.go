// Package maplit builds fully populated containers — hash maps, hash sets,
// B-tree ordered maps and ordered sets — from an inline list of entries in a
// single expression, inspired by Rust's maplit crate.
//
// # Overview
//
// Instead of declaring a variable and issuing repeated inserts:
//
//	m := make(map[int]string)
//	m[1] = "one"
//	m[2] = "two"
//
// construct the container in one expression:
//
//	m := maplit.HashMap(
//	    maplit.E(1, "one"),
//	    maplit.E(2, "two"),
//	)
//
// Entry lists accept a trailing comma (Go's call grammar already permits
// one), and the empty list is valid and yields an empty container. Entries
// are inserted in list order; for maps a later duplicate key overwrites an
// earlier one, and for sets duplicates collapse, matching the semantics of
// the underlying container.
//
// # Container kinds
//
//   - [HashMap] / [HashMapWith] → map[K]V
//   - [HashSet] / [HashSetWith] → sets.Set[T] (k8s.io/apimachinery/pkg/util/sets)
//   - [BTreeMap] → *btree.Map[K, V] (github.com/tidwall/btree)
//   - [BTreeSet] → *btree.Set[T]
//
// The B-tree variants iterate in key comparison order regardless of the
// order entries were listed in. The hash variants have unspecified iteration
// order, as usual for hash containers.
//
// # Options
//
// The *With builders take an option bag: an order-independent collection of
// name=value tokens, validated before any entry is inserted. Recognized
// names are capacity, hasher and key_map, built with [Capacity],
// [WithHasher] and [KeyMap]:
//
//	m, err := maplit.HashMapWith(
//	    []maplit.Option{
//	        maplit.Capacity(64),
//	        maplit.KeyMap(strings.ToLower),
//	    },
//	    maplit.E("Alpha", 1),
//	    maplit.E("Beta", 2),
//	)
//
// Options may appear in any order, but each name at most once: a repeated
// name yields [ErrDuplicateOption] and an unrecognized name yields
// [ErrUnknownOption]. Validation is all-or-nothing — an invalid bag returns
// an error before the first insertion.
//
// # Type-transforming construction
//
// Go generics do not allow the key_map option of a single build call to
// change the key type, so type-changing conversion during construction is
// exposed as package-level functions, mirroring maplit's convert_args:
// [ConvertMap], [ConvertKeys], [ConvertValues] and [ConvertSet].
//
//	labels := maplit.ConvertKeys(strconv.Itoa,
//	    maplit.E(1, "one"),
//	    maplit.E(2, "two"),
//	) // map[string]string{"1": "one", "2": "two"}
package maplit
