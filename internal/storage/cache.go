// Package storage provides the in-memory scan cache backing the viewer.
// Cached entries are immutable snapshots keyed by selection; a fresh scan
// and a cached scan are indistinguishable for an unchanged tree.
package storage

import (
	"sync"

	"github.com/indicdlp/snipview/internal/catalog"
)

type ScanCache struct {
	scans map[string][]catalog.Pair
	mu    sync.RWMutex
}

func New() *ScanCache {
	return &ScanCache{
		scans: make(map[string][]catalog.Pair),
	}
}

func key(root, language, region string) string {
	return root + "|" + language + "|" + region
}

func (c *ScanCache) Get(root, language, region string) ([]catalog.Pair, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	pairs, exists := c.scans[key(root, language, region)]
	return pairs, exists
}

func (c *ScanCache) Set(root, language, region string, pairs []catalog.Pair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scans[key(root, language, region)] = pairs
}

func (c *ScanCache) Invalidate(root, language, region string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.scans, key(root, language, region))
}

func (c *ScanCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scans = make(map[string][]catalog.Pair)
}
