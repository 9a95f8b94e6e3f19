package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"dealerdesk/models"
)

// CatalogCache keeps the latest catalog snapshot in memory so every picker
// request does not hit the spreadsheet. Refreshes carry a generation token:
// when two refreshes race, a response belonging to an older request is
// discarded instead of overwriting newer data.
type CatalogCache struct {
	source CatalogSourceInterface

	mu         sync.RWMutex
	entries    []models.CatalogEntry
	generation uint64
	nextGen    uint64
}

// NewCatalogCache creates a new CatalogCache over the given source
func NewCatalogCache(source CatalogSourceInterface) *CatalogCache {
	return &CatalogCache{source: source}
}

// Refresh fetches the catalog from the source and installs it unless a
// newer refresh finished first.
func (c *CatalogCache) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.nextGen++
	gen := c.nextGen
	c.mu.Unlock()

	log.Printf("🔄 CatalogCache: Refresh started (generation %d)", gen)

	entries, err := c.source.FetchCatalog(ctx)
	if err != nil {
		return fmt.Errorf("catalog refresh failed: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen <= c.generation {
		log.Printf("⏭️  CatalogCache: Discarding stale refresh (generation %d <= %d)", gen, c.generation)
		return nil
	}
	c.entries = entries
	c.generation = gen

	log.Printf("✅ CatalogCache: Installed %d entries (generation %d)", len(entries), gen)
	return nil
}

// EnsureLoaded refreshes the cache once if it has never been filled.
func (c *CatalogCache) EnsureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.generation > 0
	c.mu.RUnlock()
	if loaded {
		return nil
	}
	return c.Refresh(ctx)
}

// Entries returns the installed snapshot and its generation.
func (c *CatalogCache) Entries() ([]models.CatalogEntry, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries, c.generation
}
