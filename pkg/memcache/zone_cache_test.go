package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
)

func TestZoneCache_MissBeforeSet(t *testing.T) {
	cache := NewZoneCache(time.Minute)

	zones, ok := cache.Get()
	assert.False(t, ok)
	assert.Nil(t, zones)
}

func TestZoneCache_HitKeepsOrder(t *testing.T) {
	cache := NewZoneCache(time.Minute)
	cache.Set([]db_models.DangerZone{
		{Name: "first"},
		{Name: "second"},
	})

	zones, ok := cache.Get()
	require.True(t, ok)
	require.Len(t, zones, 2)
	assert.Equal(t, "first", zones[0].Name)
	assert.Equal(t, "second", zones[1].Name)
}

func TestZoneCache_HoldsEmptySet(t *testing.T) {
	cache := NewZoneCache(time.Minute)
	cache.Set(nil)

	zones, ok := cache.Get()
	assert.True(t, ok)
	assert.Empty(t, zones)
}

func TestZoneCache_Expiry(t *testing.T) {
	cache := NewZoneCache(10 * time.Millisecond)
	cache.Set([]db_models.DangerZone{{Name: "first"}})

	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get()
	assert.False(t, ok)
}

func TestZoneCache_Invalidate(t *testing.T) {
	cache := NewZoneCache(time.Hour)
	cache.Set([]db_models.DangerZone{{Name: "first"}})
	cache.Invalidate()

	_, ok := cache.Get()
	assert.False(t, ok)
}
