package cache

import (
	"sync"
	"time"

	"strikeboard/internal/domain"
)

// DefaultFreshness is the board cache freshness window.
const DefaultFreshness = 60 * time.Second

// BoardKey identifies one cached board slice. Partitioning by the full
// tuple keeps one asset's refresh from evicting another's entries.
type BoardKey struct {
	Asset        string
	OptionType   string
	PositionType string
}

type boardEntry struct {
	quotes    []domain.OptionQuote
	fetchedAt time.Time
}

// OptionsCache is a process-lifetime keyed cache of options boards. Each
// key carries its own freshness timer; a refresh replaces the whole entry.
type OptionsCache struct {
	mu        sync.Mutex
	freshness time.Duration
	now       func() time.Time
	entries   map[BoardKey]boardEntry
}

func NewOptionsCache(freshness time.Duration) *OptionsCache {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	return &OptionsCache{
		freshness: freshness,
		now:       time.Now,
		entries:   make(map[BoardKey]boardEntry),
	}
}

// WithClock substitutes the time source. Tests only.
func (c *OptionsCache) WithClock(now func() time.Time) *OptionsCache {
	c.now = now
	return c
}

// Get returns the cached board for key if it is still fresh.
func (c *OptionsCache) Get(key BoardKey) ([]domain.OptionQuote, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) > c.freshness {
		return nil, false
	}
	return append([]domain.OptionQuote(nil), entry.quotes...), true
}

// Put replaces the entry for key and stamps the refresh time.
func (c *OptionsCache) Put(key BoardKey, quotes []domain.OptionQuote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = boardEntry{
		quotes:    append([]domain.OptionQuote(nil), quotes...),
		fetchedAt: c.now(),
	}
}
