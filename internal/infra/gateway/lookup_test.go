//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"assistance-console/internal/infra/gateway"
	"assistance-console/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownLookupKind(t *testing.T) {
	assert.True(t, gateway.KnownLookupKind(gateway.LookupZones))
	assert.True(t, gateway.KnownLookupKind(gateway.LookupTypes))
	assert.True(t, gateway.KnownLookupKind(gateway.LookupTechnicians))
	assert.False(t, gateway.KnownLookupKind("customers"))
	assert.False(t, gateway.KnownLookupKind(""))
}

func TestLookupCache(t *testing.T) {
	ctx := context.Background()
	techID := uuid.New()

	newCache := func(t *testing.T, calls *atomic.Int32, fail *atomic.Bool, ttl time.Duration) *gateway.LookupCache {
		t.Helper()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			if fail != nil && fail.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []gateway.LookupItem{{ID: techID, Label: "Mario Bianchi"}},
			})
		}))
		return gateway.NewLookupCache(client, config.LookupConfig{TTL: ttl})
	}

	t.Run("serves repeated reads from one fetch", func(t *testing.T) {
		var calls atomic.Int32
		cache := newCache(t, &calls, nil, time.Minute)

		for range 3 {
			items, err := cache.Items(ctx, gateway.LookupTechnicians)
			require.NoError(t, err)
			require.Len(t, items, 1)
		}
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("expired entry is refetched", func(t *testing.T) {
		var calls atomic.Int32
		cache := newCache(t, &calls, nil, time.Nanosecond)

		_, err := cache.Items(ctx, gateway.LookupTechnicians)
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
		_, err = cache.Items(ctx, gateway.LookupTechnicians)
		require.NoError(t, err)

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("label and id resolve both ways", func(t *testing.T) {
		var calls atomic.Int32
		cache := newCache(t, &calls, nil, time.Minute)

		label, err := cache.Label(ctx, gateway.LookupTechnicians, techID)
		require.NoError(t, err)
		assert.Equal(t, "Mario Bianchi", label)

		id, ok, err := cache.ID(ctx, gateway.LookupTechnicians, "  mario bianchi ")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, techID, id)

		_, ok, err = cache.ID(ctx, gateway.LookupTechnicians, "Luca Verdi")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown id resolves to empty label", func(t *testing.T) {
		var calls atomic.Int32
		cache := newCache(t, &calls, nil, time.Minute)

		label, err := cache.Label(ctx, gateway.LookupTechnicians, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, label)
	})

	t.Run("refresh failure serves the stale entry", func(t *testing.T) {
		var calls atomic.Int32
		var fail atomic.Bool
		cache := newCache(t, &calls, &fail, time.Nanosecond)

		items, err := cache.Items(ctx, gateway.LookupTechnicians)
		require.NoError(t, err)
		require.Len(t, items, 1)

		fail.Store(true)
		time.Sleep(time.Millisecond)

		items, err = cache.Items(ctx, gateway.LookupTechnicians)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("first fetch failure surfaces", func(t *testing.T) {
		var calls atomic.Int32
		var fail atomic.Bool
		fail.Store(true)
		cache := newCache(t, &calls, &fail, time.Minute)

		_, err := cache.Items(ctx, gateway.LookupTechnicians)
		assert.Error(t, err)
	})
}
