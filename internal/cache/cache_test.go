package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tresahq/cashbook_cli/internal/cache"
)

func TestGetList_MissOnEmptyCache(t *testing.T) {
	c := cache.New()
	_, ok := cache.GetList[string](c, cache.ListKey("entries", "cb-1"))
	assert.False(t, ok)
}

func TestSetGetList_RoundTrip(t *testing.T) {
	c := cache.New()
	key := cache.ListKey("entries", "cb-1")
	cache.SetList(c, key, []string{"a", "b"})

	got, ok := cache.GetList[string](c, key)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestGetList_ReturnsIndependentCopy(t *testing.T) {
	c := cache.New()
	key := cache.ListKey("entries", "cb-1")
	original := []string{"a", "b"}
	cache.SetList(c, key, original)

	// Mutating either the input or a read copy must not leak into the cache.
	original[0] = "mutated-input"
	snapshot, ok := cache.GetList[string](c, key)
	require.True(t, ok)
	snapshot[1] = "mutated-snapshot"

	fresh, ok := cache.GetList[string](c, key)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, fresh)
}

func TestGetList_TypeMismatchIsMiss(t *testing.T) {
	c := cache.New()
	key := cache.ListKey("entries", "cb-1")
	cache.SetList(c, key, []int{1, 2})

	_, ok := cache.GetList[string](c, key)
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	c := cache.New()
	keep := cache.ListKey("entries", "cb-keep")
	drop := cache.ListKey("entries", "cb-drop")
	cache.SetList(c, keep, []string{"x"})
	cache.SetList(c, drop, []string{"y"})

	c.Invalidate(drop)

	_, ok := cache.GetList[string](c, drop)
	assert.False(t, ok)
	_, ok = cache.GetList[string](c, keep)
	assert.True(t, ok)
}

func TestInvalidateResource_PrefixScoped(t *testing.T) {
	c := cache.New()
	cache.SetList(c, cache.ListKey("cashbooks", "ws-1"), []string{"a"})
	cache.SetList(c, cache.ListKey("cashbooks", "ws-2"), []string{"b"})
	cache.SetList(c, cache.ListKey("entries", "cb-1"), []string{"c"})

	c.InvalidateResource("cashbooks")

	_, ok := cache.GetList[string](c, cache.ListKey("cashbooks", "ws-1"))
	assert.False(t, ok)
	_, ok = cache.GetList[string](c, cache.ListKey("cashbooks", "ws-2"))
	assert.False(t, ok)
	_, ok = cache.GetList[string](c, cache.ListKey("entries", "cb-1"))
	assert.True(t, ok)
}

func TestEntityRoundTrip(t *testing.T) {
	type book struct{ ID string }
	c := cache.New()
	key := cache.EntityKey("cashbook", "cb-1")

	cache.SetEntity(c, key, book{ID: "cb-1"})
	got, ok := cache.GetEntity[book](c, key)
	require.True(t, ok)
	assert.Equal(t, "cb-1", got.ID)

	c.Clear()
	_, ok = cache.GetEntity[book](c, key)
	assert.False(t, ok)
}
