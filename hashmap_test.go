package maplit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluss/maplit"
)

func TestHashMap(t *testing.T) {
	t.Parallel()
	names := maplit.HashMap(
		maplit.E(1, "one"),
		maplit.E(2, "two"),
	)
	assert.Len(t, names, 2)
	assert.Equal(t, "one", names[1])
	assert.Equal(t, "two", names[2])
	_, ok := names[3]
	assert.False(t, ok, "key 3 was never inserted")
}

func TestHashMapEmpty(t *testing.T) {
	t.Parallel()
	empty := maplit.HashMap[int, int]()
	require.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestHashMapDuplicateKeysLastWins(t *testing.T) {
	t.Parallel()
	m := maplit.HashMap(
		maplit.E("a", 1),
		maplit.E("b", 2),
		maplit.E("a", 3),
	)
	assert.Len(t, m, 2)
	assert.Equal(t, 3, m["a"])
}

func TestHashMapNested(t *testing.T) {
	t.Parallel()
	nested := maplit.HashMap(
		maplit.E(1, maplit.HashMap(maplit.E(0, 1+2))),
		maplit.E(2, maplit.HashMap(maplit.E(1, 1))),
	)
	assert.Len(t, nested, 2)
	assert.Len(t, nested[1], 1)
	assert.Len(t, nested[2], 1)
	assert.Equal(t, 3, nested[1][0])
	assert.Equal(t, 1, nested[2][1])
}

func TestHashMapWithCapacity(t *testing.T) {
	t.Parallel()
	// The capacity hint changes allocation only, never contents.
	for _, capacity := range []int{0, 1, 64} {
		m, err := maplit.HashMapWith(
			[]maplit.Option{maplit.Capacity(capacity)},
			maplit.E(1, "one"),
			maplit.E(2, "two"),
		)
		require.NoError(t, err)
		assert.Equal(t, map[int]string{1: "one", 2: "two"}, m)
	}
}

func TestHashMapWithKeyMap(t *testing.T) {
	t.Parallel()
	m, err := maplit.HashMapWith(
		[]maplit.Option{maplit.KeyMap(func(k int) int { return k * 10 })},
		maplit.E(1, "one"),
		maplit.E(2, "two"),
	)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{10: "one", 20: "two"}, m)
}

func TestHashMapWithKeyMapCollision(t *testing.T) {
	t.Parallel()
	// Keys that collide after the transform keep the later entry's value.
	abs := func(k int) int {
		if k < 0 {
			return -k
		}
		return k
	}
	m, err := maplit.HashMapWith(
		[]maplit.Option{maplit.KeyMap(abs)},
		maplit.E(-1, "negative"),
		maplit.E(1, "positive"),
	)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "positive"}, m)
}

func TestHashMapWithCustomAlloc(t *testing.T) {
	t.Parallel()
	var calls, gotCapacity int
	alloc := func(capacity int) map[int]string {
		calls++
		gotCapacity = capacity
		return make(map[int]string, capacity)
	}

	m, err := maplit.HashMapWith(
		[]maplit.Option{maplit.WithHasher(alloc)},
		maplit.E(1, "one"),
		maplit.E(2, "two"),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "allocator runs exactly once per build")
	assert.Equal(t, 2, gotCapacity, "capacity defaults to the entry count")
	assert.Equal(t, map[int]string{1: "one", 2: "two"}, m)

	// An explicit nonzero capacity overrides the entry count.
	_, err = maplit.HashMapWith(
		[]maplit.Option{maplit.Capacity(32), maplit.WithHasher(alloc)},
		maplit.E(1, "one"),
	)
	require.NoError(t, err)
	assert.Equal(t, 32, gotCapacity)

	// Capacity 0 means "compute from the entry count" again.
	_, err = maplit.HashMapWith(
		[]maplit.Option{maplit.Capacity(0), maplit.WithHasher(alloc)},
		maplit.E(1, "one"),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, gotCapacity)
}

func TestHashMapWithTypedNilHasher(t *testing.T) {
	t.Parallel()
	// A zero-valued allocator behaves like an absent hasher option: the
	// regular make strategy is used and the build must not call it.
	var alloc maplit.MapAlloc[int, string]
	m, err := maplit.HashMapWith(
		[]maplit.Option{maplit.WithHasher(alloc)},
		maplit.E(1, "one"),
	)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "one"}, m)

	var bare func(capacity int) map[int]string
	m, err = maplit.HashMapWith(
		[]maplit.Option{maplit.WithHasher(bare)},
		maplit.E(1, "one"),
	)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "one"}, m)
}

func TestHashMapWithTypedNilKeyMap(t *testing.T) {
	t.Parallel()
	// A nil transform means the identity; keys pass through untouched.
	m, err := maplit.HashMapWith(
		[]maplit.Option{maplit.KeyMap[int](nil)},
		maplit.E(1, "one"),
		maplit.E(2, "two"),
	)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "one", 2: "two"}, m)
}

func TestHashMapSingleEvaluation(t *testing.T) {
	t.Parallel()
	// Entry expressions and the key transform run exactly once per entry,
	// never a second time for sizing.
	var keyCalls int
	next := 0
	nextKey := func() int {
		next++
		return next
	}

	m, err := maplit.HashMapWith(
		[]maplit.Option{maplit.KeyMap(func(k int) int { keyCalls++; return k })},
		maplit.E(nextKey(), "a"),
		maplit.E(nextKey(), "b"),
		maplit.E(nextKey(), "c"),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, next, "each entry expression evaluated exactly once")
	assert.Equal(t, 3, keyCalls, "key_map applied exactly once per entry")
	assert.Len(t, m, 3)
}

func TestHashMapFailedValidationBuildsNothing(t *testing.T) {
	t.Parallel()
	var keyCalls int
	m, err := maplit.HashMapWith(
		[]maplit.Option{
			maplit.KeyMap(func(k int) int { keyCalls++; return k }),
			{Name: "foo", Value: 1},
		},
		maplit.E(1, "one"),
	)
	require.ErrorIs(t, err, maplit.ErrUnknownOption)
	assert.Nil(t, m)
	assert.Zero(t, keyCalls, "no insertion happens on an invalid bag")
}

func TestHashMapTrailingComma(t *testing.T) {
	t.Parallel()
	withTrailing := maplit.HashMap(
		maplit.E("a", 1),
		maplit.E("b", 2),
	)
	without := maplit.HashMap(maplit.E("a", 1), maplit.E("b", 2))
	assert.Equal(t, without, withTrailing)
}
