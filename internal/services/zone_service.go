package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/models/response_models"
	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/pkg/memcache"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

type ZoneServiceInterface interface {
	CreateZone(ctx context.Context, role string, req request_models.CreateZoneRequest) (*response_models.Zone, error)
	UpdateZone(ctx context.Context, role string, id string, req request_models.UpdateZoneRequest) (*response_models.Zone, error)
	DeleteZone(ctx context.Context, role string, id string) error
	ListZones(ctx context.Context) ([]response_models.Zone, error)
}

type ZoneService struct {
	zoneRepo repositories.ZoneRepository
	cache    *memcache.ZoneCache
}

func NewZoneService(zoneRepo repositories.ZoneRepository, cache *memcache.ZoneCache) ZoneServiceInterface {
	return &ZoneService{
		zoneRepo: zoneRepo,
		cache:    cache,
	}
}

func (s *ZoneService) CreateZone(ctx context.Context, role string, req request_models.CreateZoneRequest) (*response_models.Zone, error) {
	if role != db_models.RolePolice {
		return nil, utils.ErrForbidden
	}
	if *req.RadiusMeters < 0 {
		return nil, utils.ErrInvalidRadius
	}

	zone := &db_models.DangerZone{
		Name:         req.Name,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusMeters: *req.RadiusMeters,
	}
	if _, err := s.zoneRepo.Insert(ctx, zone); err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.cache.Invalidate()

	return toZoneResponse(zone), nil
}

func (s *ZoneService) UpdateZone(ctx context.Context, role string, id string, req request_models.UpdateZoneRequest) (*response_models.Zone, error) {
	if role != db_models.RolePolice {
		return nil, utils.ErrForbidden
	}
	if *req.RadiusMeters < 0 {
		return nil, utils.ErrInvalidRadius
	}

	zoneID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrZoneNotFound
	}
	zone, err := s.zoneRepo.FindByID(ctx, zoneID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if zone == nil {
		return nil, utils.ErrZoneNotFound
	}

	zone.Name = req.Name
	zone.Latitude = *req.Latitude
	zone.Longitude = *req.Longitude
	zone.RadiusMeters = *req.RadiusMeters
	if err := s.zoneRepo.Update(ctx, zone); err != nil {
		return nil, utils.ErrDatabaseError
	}
	s.cache.Invalidate()

	return toZoneResponse(zone), nil
}

func (s *ZoneService) DeleteZone(ctx context.Context, role string, id string) error {
	if role != db_models.RolePolice {
		return utils.ErrForbidden
	}

	zoneID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrZoneNotFound
	}
	zone, err := s.zoneRepo.FindByID(ctx, zoneID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if zone == nil {
		return utils.ErrZoneNotFound
	}

	if err := s.zoneRepo.Delete(ctx, zoneID); err != nil {
		return utils.ErrDatabaseError
	}
	s.cache.Invalidate()
	return nil
}

// ListZones backs both the police zone screen and the tourist map overlay;
// any authenticated caller may read it.
func (s *ZoneService) ListZones(ctx context.Context) ([]response_models.Zone, error) {
	zones, err := s.zoneRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Zone, 0, len(zones))
	for i := range zones {
		out = append(out, *toZoneResponse(&zones[i]))
	}
	return out, nil
}

func toZoneResponse(zone *db_models.DangerZone) *response_models.Zone {
	return &response_models.Zone{
		ID:           zone.ID.String(),
		Name:         zone.Name,
		Latitude:     zone.Latitude,
		Longitude:    zone.Longitude,
		RadiusMeters: zone.RadiusMeters,
	}
}
