package alphablotto

import (
	"expvar"

	"github.com/golang/glog"
	"github.com/hashicorp/golang-lru"
)

var (
	actionCacheHits   = expvar.NewInt("actions/cache_hits")
	actionCacheMisses = expvar.NewInt("actions/cache_misses")
)

// ActionCache memoizes ListActions by budget.
//
// Every budget's action space is requested once per opponent budget,
// so a run over maxBudget^2 pairs only enumerates each space once.
// Slices returned by Get are shared and must not be modified.
type ActionCache struct {
	cache *lru.Cache
}

func NewActionCache(size int) *ActionCache {
	cache, err := lru.New(size)
	if err != nil {
		panic(err)
	}

	return &ActionCache{cache: cache}
}

// Get returns the Actions available with the given budget.
func (c *ActionCache) Get(budget int) ([]Action, error) {
	if cached, ok := c.cache.Get(budget); ok {
		actionCacheHits.Add(1)
		return cached.([]Action), nil
	}

	actionCacheMisses.Add(1)
	actions, err := ListActions(budget)
	if err != nil {
		return nil, err
	}

	glog.V(3).Infof("Enumerated %d actions for budget %d", len(actions), budget)
	c.cache.Add(budget, actions)
	return actions, nil
}

func (c *ActionCache) Len() int {
	return c.cache.Len()
}
