package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked per domain so every key of a type can be dropped
// when any row of that type changes.
var (
	Cache            *ristretto.Cache
	ExpenseCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	BudgetCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

// GetCache looks a key up in the shared cache. It is a no-op miss when the
// cache has not been initialized (non-HTTP entrypoints, tests).
func GetCache(cacheKey string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(cacheKey)
}

// Expense cache functions
func SetExpenseCache(cacheKey string, value interface{}) {
	if Cache == nil {
		return
	}
	ExpenseCacheKeys.Lock()
	ExpenseCacheKeys.m[cacheKey] = struct{}{}
	ExpenseCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func ClearAllExpenseCaches() {
	if Cache == nil {
		return
	}
	ExpenseCacheKeys.Lock()
	for key := range ExpenseCacheKeys.m {
		Cache.Del(key)
	}
	ExpenseCacheKeys.m = make(map[string]struct{})
	ExpenseCacheKeys.Unlock()
}

// Budget cache functions
func SetBudgetCache(cacheKey string, value interface{}) {
	if Cache == nil {
		return
	}
	BudgetCacheKeys.Lock()
	BudgetCacheKeys.m[cacheKey] = struct{}{}
	BudgetCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func ClearAllBudgetCaches() {
	if Cache == nil {
		return
	}
	BudgetCacheKeys.Lock()
	for key := range BudgetCacheKeys.m {
		Cache.Del(key)
	}
	BudgetCacheKeys.m = make(map[string]struct{})
	BudgetCacheKeys.Unlock()
}
