package services

import (
	"context"
	"math"

	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/pkg/memcache"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

const earthRadiusMeters = 6371000

type GeofenceServiceInterface interface {
	Classify(ctx context.Context, lat, lon float64) (*db_models.DangerZone, error)
}

type GeofenceService struct {
	zoneRepo repositories.ZoneRepository
	cache    *memcache.ZoneCache
}

func NewGeofenceService(zoneRepo repositories.ZoneRepository, cache *memcache.ZoneCache) GeofenceServiceInterface {
	return &GeofenceService{
		zoneRepo: zoneRepo,
		cache:    cache,
	}
}

// Classify scans every zone and returns the first one, in listing order
// (created_at, id), whose radius covers the great-circle distance to the
// point. Overlapping zones resolve to the earliest-created one. Returns
// nil when no zone matches.
func (s *GeofenceService) Classify(ctx context.Context, lat, lon float64) (*db_models.DangerZone, error) {
	zones, ok := s.cache.Get()
	if !ok {
		fresh, err := s.zoneRepo.ListAll(ctx)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		s.cache.Set(fresh)
		zones = fresh
	}

	for i := range zones {
		dist := haversine(lat, lon, zones[i].Latitude, zones[i].Longitude)
		if dist <= zones[i].RadiusMeters {
			return &zones[i], nil
		}
	}
	return nil, nil
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
