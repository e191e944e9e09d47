package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/pkg/memcache"
)

func newGeofence(t *testing.T) (GeofenceServiceInterface, repositories.ZoneRepository, *memcache.ZoneCache) {
	db := newTestDB(t)
	repo := repositories.NewZoneRepository(db)
	cache := memcache.NewZoneCache(time.Minute)
	return NewGeofenceService(repo, cache), repo, cache
}

func TestClassify_NoZones(t *testing.T) {
	svc, _, _ := newGeofence(t)

	zone, err := svc.Classify(context.Background(), 12.97, 77.59)
	require.NoError(t, err)
	assert.Nil(t, zone)
}

func TestClassify_InsideAndOutside(t *testing.T) {
	svc, repo, _ := newGeofence(t)

	_, err := repo.Insert(context.Background(), &db_models.DangerZone{
		Name:         "Riverbank",
		Latitude:     12.9700,
		Longitude:    77.5900,
		RadiusMeters: 500,
	})
	require.NoError(t, err)

	// ~150 m north of the center
	zone, err := svc.Classify(context.Background(), 12.97135, 77.5900)
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, "Riverbank", zone.Name)

	// ~1.5 km north of the center
	zone, err = svc.Classify(context.Background(), 12.9835, 77.5900)
	require.NoError(t, err)
	assert.Nil(t, zone)
}

func TestClassify_ZoneBoundaryCountsAsInside(t *testing.T) {
	svc, repo, _ := newGeofence(t)

	// zero-radius zone matches its own center exactly
	_, err := repo.Insert(context.Background(), &db_models.DangerZone{
		Name:         "Point",
		Latitude:     10,
		Longitude:    20,
		RadiusMeters: 0,
	})
	require.NoError(t, err)

	zone, err := svc.Classify(context.Background(), 10, 20)
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, "Point", zone.Name)
}

func TestClassify_FirstMatchInListingOrder(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewZoneRepository(db)
	cache := memcache.NewZoneCache(time.Minute)
	svc := NewGeofenceService(repo, cache)

	// two overlapping zones around the same point; the older one wins
	older := &db_models.DangerZone{Name: "Older", Latitude: 10, Longitude: 20, RadiusMeters: 1000}
	newer := &db_models.DangerZone{Name: "Newer", Latitude: 10, Longitude: 20, RadiusMeters: 5000}
	_, err := repo.Insert(context.Background(), older)
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), newer)
	require.NoError(t, err)
	setZoneCreatedAt(t, db, older.ID, 100)
	setZoneCreatedAt(t, db, newer.ID, 200)

	zone, err := svc.Classify(context.Background(), 10.001, 20)
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, "Older", zone.Name)
}

func TestClassify_UsesCachedZoneSet(t *testing.T) {
	svc, repo, cache := newGeofence(t)

	_, err := repo.Insert(context.Background(), &db_models.DangerZone{
		Name: "Cached", Latitude: 10, Longitude: 20, RadiusMeters: 1000,
	})
	require.NoError(t, err)

	// warm the cache
	zone, err := svc.Classify(context.Background(), 10, 20)
	require.NoError(t, err)
	require.NotNil(t, zone)

	// a mutation without invalidation is not seen until expiry
	require.NoError(t, repo.Delete(context.Background(), zone.ID))
	zone, err = svc.Classify(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.NotNil(t, zone)

	cache.Invalidate()
	zone, err = svc.Classify(context.Background(), 10, 20)
	require.NoError(t, err)
	assert.Nil(t, zone)
}
