// Package cache holds the precomputed view results served by the read path.
// It is a fixed set of named regions, each an independent key space backed by
// its own bounded, TTL-expiring in-process sturdyc cache.
package cache

import (
	"time"

	"github.com/viccon/sturdyc"
)

// Region identifies one cached view family.
type Region string

const (
	RegionListing     Region = "listing"
	RegionRecent      Region = "recent"
	RegionUpcoming    Region = "upcoming"
	RegionTopRated    Region = "top-rated"
	RegionMostPopular Region = "most-popular"
	RegionDetail      Region = "detail"
	RegionCatalog     Region = "catalog"
	RegionSearch      Region = "search"
)

// Regions lists every region the service knows about. The cache supports
// exactly this set; there is no dynamic region creation.
var Regions = []Region{
	RegionListing,
	RegionRecent,
	RegionUpcoming,
	RegionTopRated,
	RegionMostPopular,
	RegionDetail,
	RegionCatalog,
	RegionSearch,
}

// Options configures every region identically. Entries expire TTL after being
// written (checked lazily at read time by sturdyc) and each region holds at
// most MaxEntries entries; when a region fills up, sturdyc evicts
// EvictionPercentage percent of its least recently used entries.
type Options struct {
	TTL                time.Duration
	MaxEntries         int
	NumShards          int
	EvictionPercentage int
}

func DefaultOptions() Options {
	return Options{
		TTL:                5 * time.Minute,
		MaxEntries:         500,
		NumShards:          64,
		EvictionPercentage: 10,
	}
}

// ViewCache is shared mutable state across all concurrent requests. The
// sturdyc clients are safe for concurrent use; the regions map itself is
// never mutated after construction.
type ViewCache struct {
	regions map[Region]*sturdyc.Client[any]
}

func NewViewCache(opts Options) *ViewCache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultOptions().TTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultOptions().MaxEntries
	}
	if opts.NumShards <= 0 {
		opts.NumShards = DefaultOptions().NumShards
	}
	if opts.EvictionPercentage < 1 || opts.EvictionPercentage > 100 {
		opts.EvictionPercentage = DefaultOptions().EvictionPercentage
	}

	regions := make(map[Region]*sturdyc.Client[any], len(Regions))
	for _, region := range Regions {
		regions[region] = sturdyc.New[any](
			opts.MaxEntries,
			opts.NumShards,
			opts.TTL,
			opts.EvictionPercentage,
		)
	}
	return &ViewCache{regions: regions}
}

// Get returns the cached value for key, or ok=false on a miss. Expired
// entries report a miss even when still physically present.
func (c *ViewCache) Get(region Region, key string) (any, bool) {
	client, ok := c.regions[region]
	if !ok {
		return nil, false
	}
	return client.Get(key)
}

// Put stores value under key; its TTL starts now.
func (c *ViewCache) Put(region Region, key string, value any) {
	if client, ok := c.regions[region]; ok {
		client.Set(key, value)
	}
}

// Evict removes a single entry.
func (c *ViewCache) Evict(region Region, key string) {
	if client, ok := c.regions[region]; ok {
		client.Delete(key)
	}
}

// EvictRegion clears every entry in the region. Other regions are untouched.
func (c *ViewCache) EvictRegion(region Region) {
	client, ok := c.regions[region]
	if !ok {
		return
	}
	for _, key := range client.ScanKeys() {
		client.Delete(key)
	}
}

// EvictRegions clears several regions in one call; write paths use it to
// apply their invalidation set after a successful commit.
func (c *ViewCache) EvictRegions(regions ...Region) {
	for _, region := range regions {
		c.EvictRegion(region)
	}
}

// Len reports the live entry count of a region.
func (c *ViewCache) Len(region Region) int {
	client, ok := c.regions[region]
	if !ok {
		return 0
	}
	return client.Size()
}
