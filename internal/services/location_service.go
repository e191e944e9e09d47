package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/models/response_models"
	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

type LocationServiceInterface interface {
	RecordLocation(ctx context.Context, touristID uuid.UUID, role string, req request_models.LocationRequest) (*response_models.LocationAck, error)
}

type LocationService struct {
	locationRepo repositories.LocationRepository
	geofence     GeofenceServiceInterface
}

func NewLocationService(locationRepo repositories.LocationRepository, geofence GeofenceServiceInterface) LocationServiceInterface {
	return &LocationService{
		locationRepo: locationRepo,
		geofence:     geofence,
	}
}

// RecordLocation appends one position report and reclassifies the point
// from scratch against the danger-zone set. Being already inside a zone
// never blocks the write; the caller just gets the advisory again.
func (s *LocationService) RecordLocation(ctx context.Context, touristID uuid.UUID, role string, req request_models.LocationRequest) (*response_models.LocationAck, error) {
	if role != db_models.RoleTourist {
		return nil, utils.ErrForbidden
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, utils.ErrInvalidCoordinates
	}

	timestamp := utils.NowService()
	if req.Timestamp != "" {
		parsed, err := utils.ParseClientTimestamp(req.Timestamp)
		if err != nil {
			return nil, utils.ErrInvalidTimestamp
		}
		timestamp = parsed
	}

	location := &db_models.Location{
		TouristID: touristID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  req.Accuracy,
		Timestamp: timestamp,
	}
	if err := s.locationRepo.Insert(ctx, location); err != nil {
		return nil, utils.ErrDatabaseError
	}

	zone, err := s.geofence.Classify(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		// The row is already written; degrade to a plain ack rather than
		// failing the ping over the advisory lookup.
		log.Warnf("geofence classify failed for tourist %s: %v", touristID, err)
		return &response_models.LocationAck{}, nil
	}

	ack := &response_models.LocationAck{}
	if zone != nil {
		ack.Alert = fmt.Sprintf("You are inside danger zone: %s", zone.Name)
	}
	return ack, nil
}
