package maplit

import "k8s.io/apimachinery/pkg/util/sets"

// This file contains the type-transforming builders, the siblings of the
// key_map option for conversions that change the key, value or element type.
//
// Go generics do not allow an option value to introduce its own type
// parameters, so these conversions are stand-alone functions that take the
// transforms as leading arguments:
//
//	ages := maplit.ConvertKeys(strings.ToLower,
//	    maplit.E("Alice", 30),
//	    maplit.E("Bob", 25),
//	)

// ConvertMap builds a map while converting both keys and values.
func ConvertMap[K1 any, K2 comparable, V1, V2 any](keys func(K1) K2, values func(V1) V2, entries ...Entry[K1, V1]) map[K2]V2 {
	m := make(map[K2]V2, len(entries))
	for _, e := range entries {
		m[keys(e.Key)] = values(e.Value)
	}
	return m
}

// ConvertKeys builds a map while converting keys, passing values through.
func ConvertKeys[K1 any, K2 comparable, V any](keys func(K1) K2, entries ...Entry[K1, V]) map[K2]V {
	m := make(map[K2]V, len(entries))
	for _, e := range entries {
		m[keys(e.Key)] = e.Value
	}
	return m
}

// ConvertValues builds a map while converting values, passing keys through.
func ConvertValues[K comparable, V1, V2 any](values func(V1) V2, entries ...Entry[K, V1]) map[K]V2 {
	m := make(map[K]V2, len(entries))
	for _, e := range entries {
		m[e.Key] = values(e.Value)
	}
	return m
}

// ConvertSet builds a set while converting each element.
func ConvertSet[T1 any, T2 comparable](fn func(T1) T2, elems ...T1) sets.Set[T2] {
	s := make(sets.Set[T2], len(elems))
	for _, e := range elems {
		s.Insert(fn(e))
	}
	return s
}
