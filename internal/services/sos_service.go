package services

import (
	"context"
	"encoding/json"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/models/response_models"
	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/pkg/blob"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

const activeFeedCap = 200

type SOSServiceInterface interface {
	RaiseSOS(ctx context.Context, touristID uuid.UUID, role string, req request_models.SOSRequest) (*response_models.SOSCreated, error)
	AttachAudio(ctx context.Context, sosID string, touristID uuid.UUID, filename string, audio io.Reader, size int64, contentType string) (*response_models.AudioAttached, error)
	ListActive(ctx context.Context, role string) ([]response_models.ActiveSOS, error)
}

type SOSService struct {
	sosRepo      repositories.SOSRepository
	locationRepo repositories.LocationRepository
	blobStore    blob.Store
}

func NewSOSService(sosRepo repositories.SOSRepository, locationRepo repositories.LocationRepository, blobStore blob.Store) SOSServiceInterface {
	return &SOSService{
		sosRepo:      sosRepo,
		locationRepo: locationRepo,
		blobStore:    blobStore,
	}
}

// RaiseSOS persists the event first, so it has an id even if every trailing
// location entry fails, then stores the entries best-effort in input order.
// Malformed entries are skipped; the request still succeeds. The two writes
// are deliberately not one transaction.
func (s *SOSService) RaiseSOS(ctx context.Context, touristID uuid.UUID, role string, req request_models.SOSRequest) (*response_models.SOSCreated, error) {
	if role != db_models.RoleTourist {
		return nil, utils.ErrForbidden
	}

	event := &db_models.SOSEvent{
		TouristID:   touristID,
		IsActive:    true,
		Description: req.Description,
	}

	// Summary position comes from the last supplied point.
	if len(req.Locations) > 0 {
		last, err := decodeSOSLocation(req.Locations[len(req.Locations)-1])
		if err != nil {
			return nil, utils.ErrInvalidCoordinates
		}
		event.Lat = last.Latitude
		event.Lon = last.Longitude
	}

	if err := s.sosRepo.InsertEvent(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	for _, raw := range req.Locations {
		loc, err := decodeSOSLocation(raw)
		if err != nil {
			log.Warnf("skipping malformed sos location for event %s: %v", event.ID, err)
			continue
		}
		timestamp := utils.NowService()
		if loc.Timestamp != "" {
			parsed, err := utils.ParseClientTimestamp(loc.Timestamp)
			if err != nil {
				log.Warnf("skipping sos location with bad timestamp for event %s: %v", event.ID, err)
				continue
			}
			timestamp = parsed
		}
		row := &db_models.Location{
			TouristID: touristID,
			Latitude:  *loc.Latitude,
			Longitude: *loc.Longitude,
			Accuracy:  loc.Accuracy,
			Timestamp: timestamp,
		}
		if err := s.locationRepo.Insert(ctx, row); err != nil {
			log.Warnf("failed to store sos location for event %s: %v", event.ID, err)
		}
	}

	return &response_models.SOSCreated{
		SOSID:     event.ID.String(),
		CreatedAt: utils.FormatRFC3339(utils.FromUnixSeconds(event.CreatedAt)),
	}, nil
}

func decodeSOSLocation(raw json.RawMessage) (*request_models.SOSLocation, error) {
	var loc request_models.SOSLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, err
	}
	if loc.Latitude == nil || loc.Longitude == nil {
		return nil, utils.ErrInvalidCoordinates
	}
	return &loc, nil
}

// AttachAudio requires the caller to own the event; ownership is checked by
// the id+tourist pair, not the event id alone.
func (s *SOSService) AttachAudio(ctx context.Context, sosID string, touristID uuid.UUID, filename string, audio io.Reader, size int64, contentType string) (*response_models.AudioAttached, error) {
	// A path id that is not a uuid cannot name an event; reject it here so
	// the postgres uuid column never sees a malformed parameter.
	eventID, err := uuid.Parse(sosID)
	if err != nil {
		return nil, utils.ErrSOSNotFound
	}

	event, err := s.sosRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrSOSNotFound
	}
	if event.TouristID != touristID {
		return nil, utils.ErrForbidden
	}
	if size <= 0 {
		return nil, utils.ErrEmptyAudio
	}

	key := "sos_audio/" + event.ID.String() + "/" + uuid.New().String() + path.Ext(filename)
	url, err := s.blobStore.Put(ctx, key, audio, size, contentType)
	if err != nil {
		return nil, utils.ErrStorageError
	}

	record := &db_models.SOSAudio{
		EventID:    event.ID,
		ObjectURL:  url,
		UploadedAt: time.Now(),
	}
	if err := s.sosRepo.InsertAudio(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AudioAttached{
		AudioID: record.ID.String(),
		URL:     url,
	}, nil
}

// ListActive is the police read-side feed: open events newest first, capped,
// each enriched with a position (event summary, else the tourist's latest
// location row) and the tourist's name (profile full name, else the handle).
func (s *SOSService) ListActive(ctx context.Context, role string) ([]response_models.ActiveSOS, error) {
	if role != db_models.RolePolice {
		return nil, utils.ErrForbidden
	}

	events, err := s.sosRepo.ListActive(ctx, activeFeedCap)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActiveSOS, 0, len(events))
	for _, e := range events {
		entry := response_models.ActiveSOS{
			SOSID:           e.ID.String(),
			TouristUsername: e.Tourist.Username,
			TouristFullName: e.Tourist.Username,
			CreatedAt:       utils.FormatRFC3339(utils.FromUnixSeconds(e.CreatedAt)),
			Lat:             e.Lat,
			Lon:             e.Lon,
			AudioURLs:       make([]string, 0, len(e.Audio)),
		}
		if e.Tourist.TouristProfile != nil {
			entry.TouristFullName = e.Tourist.TouristProfile.FullName
		}
		if entry.Lat == nil || entry.Lon == nil {
			last, err := s.locationRepo.LatestByTourist(ctx, e.TouristID)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			if last != nil {
				entry.Lat = &last.Latitude
				entry.Lon = &last.Longitude
			}
		}
		for _, a := range e.Audio {
			entry.AudioURLs = append(entry.AudioURLs, a.ObjectURL)
		}
		out = append(out, entry)
	}
	return out, nil
}
