package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/pkg/memcache"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

func newZoneService(t *testing.T) (ZoneServiceInterface, *gorm.DB) {
	db := newTestDB(t)
	svc := NewZoneService(repositories.NewZoneRepository(db), memcache.NewZoneCache(time.Minute))
	return svc, db
}

func createReq(name string, lat, lon, radius float64) request_models.CreateZoneRequest {
	return request_models.CreateZoneRequest{
		Name:         name,
		Latitude:     &lat,
		Longitude:    &lon,
		RadiusMeters: &radius,
	}
}

func TestCreateZone_ForbiddenForTourist(t *testing.T) {
	svc, _ := newZoneService(t)

	_, err := svc.CreateZone(context.Background(), db_models.RoleTourist, createReq("Cliff Edge", 25.57, 91.89, 300))
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestCreateZone_NegativeRadius(t *testing.T) {
	svc, _ := newZoneService(t)

	_, err := svc.CreateZone(context.Background(), db_models.RolePolice, createReq("Cliff Edge", 25.57, 91.89, -1))
	assert.ErrorIs(t, err, utils.ErrInvalidRadius)
}

func TestZone_CreateThenListRoundTrip(t *testing.T) {
	svc, _ := newZoneService(t)

	created, err := svc.CreateZone(context.Background(), db_models.RolePolice, createReq("Cliff Edge", 25.5788, 91.8933, 300))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	zones, err := svc.ListZones(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, created.ID, zones[0].ID)
	assert.Equal(t, "Cliff Edge", zones[0].Name)
	assert.Equal(t, 25.5788, zones[0].Latitude)
	assert.Equal(t, 91.8933, zones[0].Longitude)
	assert.Equal(t, 300.0, zones[0].RadiusMeters)
}

func TestUpdateZone(t *testing.T) {
	svc, _ := newZoneService(t)

	created, err := svc.CreateZone(context.Background(), db_models.RolePolice, createReq("Cliff Edge", 25.57, 91.89, 300))
	require.NoError(t, err)

	lat, lon, radius := 26.0, 92.0, 450.0
	updated, err := svc.UpdateZone(context.Background(), db_models.RolePolice, created.ID, request_models.UpdateZoneRequest{
		Name:         "Cliff Edge North",
		Latitude:     &lat,
		Longitude:    &lon,
		RadiusMeters: &radius,
	})
	require.NoError(t, err)
	assert.Equal(t, "Cliff Edge North", updated.Name)
	assert.Equal(t, 450.0, updated.RadiusMeters)

	zones, err := svc.ListZones(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "Cliff Edge North", zones[0].Name)
}

func TestUpdateZone_UnknownID(t *testing.T) {
	svc, _ := newZoneService(t)

	lat, lon, radius := 26.0, 92.0, 450.0
	_, err := svc.UpdateZone(context.Background(), db_models.RolePolice, "b2c6c8e2-0000-0000-0000-000000000000", request_models.UpdateZoneRequest{
		Name: "Nowhere", Latitude: &lat, Longitude: &lon, RadiusMeters: &radius,
	})
	assert.ErrorIs(t, err, utils.ErrZoneNotFound)
}

func TestZone_NonUUIDPathID(t *testing.T) {
	svc, _ := newZoneService(t)

	lat, lon, radius := 26.0, 92.0, 450.0
	_, err := svc.UpdateZone(context.Background(), db_models.RolePolice, "garbage", request_models.UpdateZoneRequest{
		Name: "Nowhere", Latitude: &lat, Longitude: &lon, RadiusMeters: &radius,
	})
	assert.ErrorIs(t, err, utils.ErrZoneNotFound)

	err = svc.DeleteZone(context.Background(), db_models.RolePolice, "garbage")
	assert.ErrorIs(t, err, utils.ErrZoneNotFound)
}

func TestDeleteZone(t *testing.T) {
	svc, _ := newZoneService(t)

	created, err := svc.CreateZone(context.Background(), db_models.RolePolice, createReq("Cliff Edge", 25.57, 91.89, 300))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteZone(context.Background(), db_models.RolePolice, created.ID))

	zones, err := svc.ListZones(context.Background())
	require.NoError(t, err)
	assert.Empty(t, zones)

	err = svc.DeleteZone(context.Background(), db_models.RolePolice, created.ID)
	assert.ErrorIs(t, err, utils.ErrZoneNotFound)
}

func TestZoneMutationsInvalidateGeofenceCache(t *testing.T) {
	db := newTestDB(t)
	cache := memcache.NewZoneCache(time.Hour)
	zoneSvc := NewZoneService(repositories.NewZoneRepository(db), cache)
	geofence := NewGeofenceService(repositories.NewZoneRepository(db), cache)

	// prime the cache with a set that does not cover the probe point
	_, err := zoneSvc.CreateZone(context.Background(), db_models.RolePolice, createReq("Far Ridge", -33.0, 151.0, 100))
	require.NoError(t, err)
	zone, err := geofence.Classify(context.Background(), 25.57, 91.89)
	require.NoError(t, err)
	assert.Nil(t, zone)

	_, err = zoneSvc.CreateZone(context.Background(), db_models.RolePolice, createReq("Cliff Edge", 25.57, 91.89, 500))
	require.NoError(t, err)

	zone, err = geofence.Classify(context.Background(), 25.57, 91.89)
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, "Cliff Edge", zone.Name)
}
