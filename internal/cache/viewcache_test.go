package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCache_PutAndGet(t *testing.T) {
	c := NewViewCache(DefaultOptions())

	c.Put(RegionListing, "all", []string{"a", "b"})

	value, ok := c.Get(RegionListing, "all")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestViewCache_MissOnUnknownKey(t *testing.T) {
	c := NewViewCache(DefaultOptions())

	_, ok := c.Get(RegionListing, "nope")
	assert.False(t, ok)
}

func TestViewCache_RegionsAreIndependent(t *testing.T) {
	c := NewViewCache(DefaultOptions())

	c.Put(RegionListing, "k", "listing value")
	c.Put(RegionRecent, "k", "recent value")

	listing, ok := c.Get(RegionListing, "k")
	require.True(t, ok)
	recent, ok2 := c.Get(RegionRecent, "k")
	require.True(t, ok2)

	assert.Equal(t, "listing value", listing)
	assert.Equal(t, "recent value", recent)
}

func TestViewCache_EvictSingleKey(t *testing.T) {
	c := NewViewCache(DefaultOptions())

	c.Put(RegionDetail, "1", "game one")
	c.Put(RegionDetail, "2", "game two")

	c.Evict(RegionDetail, "1")

	_, ok := c.Get(RegionDetail, "1")
	assert.False(t, ok)
	_, ok = c.Get(RegionDetail, "2")
	assert.True(t, ok)
}

func TestViewCache_EvictRegionLeavesOthersAlone(t *testing.T) {
	c := NewViewCache(DefaultOptions())

	c.Put(RegionListing, "all", "listing")
	c.Put(RegionTopRated, "10", "ranked")
	c.Put(RegionSearch, "zelda", "results")

	c.EvictRegion(RegionListing)
	c.EvictRegion(RegionTopRated)

	_, ok := c.Get(RegionListing, "all")
	assert.False(t, ok)
	_, ok = c.Get(RegionTopRated, "10")
	assert.False(t, ok)

	value, ok := c.Get(RegionSearch, "zelda")
	require.True(t, ok)
	assert.Equal(t, "results", value)
}

func TestViewCache_EvictRegions(t *testing.T) {
	c := NewViewCache(DefaultOptions())

	for _, region := range Regions {
		c.Put(region, "k", "v")
	}

	c.EvictRegions(RegionListing, RegionRecent, RegionUpcoming, RegionTopRated, RegionMostPopular)

	for _, region := range []Region{RegionListing, RegionRecent, RegionUpcoming, RegionTopRated, RegionMostPopular} {
		_, ok := c.Get(region, "k")
		assert.False(t, ok, "region %s should be empty", region)
	}
	for _, region := range []Region{RegionDetail, RegionCatalog, RegionSearch} {
		_, ok := c.Get(region, "k")
		assert.True(t, ok, "region %s should be untouched", region)
	}
}

func TestViewCache_EntriesExpire(t *testing.T) {
	c := NewViewCache(Options{
		TTL:                20 * time.Millisecond,
		MaxEntries:         10,
		NumShards:          2,
		EvictionPercentage: 10,
	})

	c.Put(RegionListing, "all", "value")

	_, ok := c.Get(RegionListing, "all")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = c.Get(RegionListing, "all")
	assert.False(t, ok)
}

func TestViewCache_Len(t *testing.T) {
	c := NewViewCache(DefaultOptions())

	assert.Equal(t, 0, c.Len(RegionCatalog))

	c.Put(RegionCatalog, "platforms:all", "a")
	c.Put(RegionCatalog, "genres:all", "b")

	assert.Equal(t, 2, c.Len(RegionCatalog))
}
