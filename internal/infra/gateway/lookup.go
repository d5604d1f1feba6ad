package gateway

import (
	"context"
	"strings"
	"sync"
	"time"

	"assistance-console/internal/pkg/config"

	"github.com/google/uuid"
)

// Lookup kinds the backend exposes as {id, label} catalogs.
const (
	LookupZones       = "zones"
	LookupTypes       = "intervention-types"
	LookupTechnicians = "technicians"
)

func KnownLookupKind(kind string) bool {
	switch kind {
	case LookupZones, LookupTypes, LookupTechnicians:
		return true
	}
	return false
}

type lookupEntry struct {
	items     []LookupItem
	byID      map[uuid.UUID]string
	byLabel   map[string]uuid.UUID
	fetchedAt time.Time
}

// LookupCache serves the reference catalogs from memory, refetching a
// kind once its TTL lapses. The catalogs are effectively static within
// a work shift; the console treats them as maps, not domain data.
type LookupCache struct {
	client *Client
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]*lookupEntry
}

func NewLookupCache(client *Client, cfg config.LookupConfig) *LookupCache {
	return &LookupCache{
		client:  client,
		ttl:     cfg.TTL,
		entries: make(map[string]*lookupEntry),
	}
}

func (lc *LookupCache) Items(ctx context.Context, kind string) ([]LookupItem, error) {
	e, err := lc.entry(ctx, kind)
	if err != nil {
		return nil, err
	}
	return e.items, nil
}

// Label resolves an id to its display label, empty when unknown.
func (lc *LookupCache) Label(ctx context.Context, kind string, id uuid.UUID) (string, error) {
	e, err := lc.entry(ctx, kind)
	if err != nil {
		return "", err
	}
	return e.byID[id], nil
}

// ID resolves a display label back to its id. Matching is
// case-insensitive on the trimmed label, mirroring how legacy screens
// stored technician names instead of ids.
func (lc *LookupCache) ID(ctx context.Context, kind string, label string) (uuid.UUID, bool, error) {
	e, err := lc.entry(ctx, kind)
	if err != nil {
		return uuid.Nil, false, err
	}
	id, ok := e.byLabel[normalizeLabel(label)]
	return id, ok, nil
}

func (lc *LookupCache) entry(ctx context.Context, kind string) (*lookupEntry, error) {
	lc.mu.RLock()
	e, ok := lc.entries[kind]
	lc.mu.RUnlock()
	if ok && time.Since(e.fetchedAt) < lc.ttl {
		return e, nil
	}

	items, err := lc.client.ListLookup(ctx, kind)
	if err != nil {
		// serve stale data over failing when we have any
		if ok {
			return e, nil
		}
		return nil, err
	}

	fresh := &lookupEntry{
		items:     items,
		byID:      make(map[uuid.UUID]string, len(items)),
		byLabel:   make(map[string]uuid.UUID, len(items)),
		fetchedAt: time.Now(),
	}
	for _, it := range items {
		fresh.byID[it.ID] = it.Label
		fresh.byLabel[normalizeLabel(it.Label)] = it.ID
	}

	lc.mu.Lock()
	lc.entries[kind] = fresh
	lc.mu.Unlock()
	return fresh, nil
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
