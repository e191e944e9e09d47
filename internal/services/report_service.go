package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/pkg/pdf"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

// Location rows this far before the SOS creation time make it into the FIR
// trail; rows capped at reportTrailCap.
const (
	reportWindow   = 10 * time.Minute
	reportTrailCap = 200
)

type ReportServiceInterface interface {
	BuildFIR(ctx context.Context, sosID string, requesterID uuid.UUID) (string, []byte, error)
}

type ReportService struct {
	sosRepo      repositories.SOSRepository
	locationRepo repositories.LocationRepository
	accountRepo  repositories.AccountRepository
}

func NewReportService(sosRepo repositories.SOSRepository, locationRepo repositories.LocationRepository, accountRepo repositories.AccountRepository) ReportServiceInterface {
	return &ReportService{
		sosRepo:      sosRepo,
		locationRepo: locationRepo,
		accountRepo:  accountRepo,
	}
}

// BuildFIR assembles a point-in-time snapshot of one SOS event and renders
// it to PDF bytes. The filename derives from the event id only, so repeated
// downloads of the same event collide on purpose.
func (s *ReportService) BuildFIR(ctx context.Context, sosID string, requesterID uuid.UUID) (string, []byte, error) {
	requester, err := s.accountRepo.FindByIDWithProfiles(ctx, requesterID)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}
	if requester == nil || !requester.IsPolice() {
		return "", nil, utils.ErrForbidden
	}

	eventID, err := uuid.Parse(sosID)
	if err != nil {
		return "", nil, utils.ErrSOSNotFound
	}
	event, err := s.sosRepo.FindEventByIDWithDetails(ctx, eventID)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}
	if event == nil {
		return "", nil, utils.ErrSOSNotFound
	}

	createdAt := utils.FromUnixSeconds(event.CreatedAt)
	trail, err := s.locationRepo.ListByTouristWindow(ctx, event.TouristID, createdAt.Add(-reportWindow), createdAt, reportTrailCap)
	if err != nil {
		return "", nil, utils.ErrDatabaseError
	}

	data := pdf.FIRData{
		EventID:     event.ID.String(),
		Requester:   requester.Username,
		GeneratedAt: utils.FormatRFC3339(utils.NowService()),
		SOS: pdf.SOSBlock{
			CreatedAt:   utils.FormatRFC3339(createdAt),
			Lat:         event.Lat,
			Lon:         event.Lon,
			Description: event.Description,
		},
	}
	if requester.PoliceProfile != nil && requester.PoliceProfile.StationName != nil {
		data.Station = *requester.PoliceProfile.StationName
	}

	data.Tourist = pdf.TouristBlock{Username: event.Tourist.Username}
	if p := event.Tourist.TouristProfile; p != nil {
		data.Tourist.FullName = p.FullName
		data.Tourist.Age = fmt.Sprintf("%d", p.Age)
		data.Tourist.Phone = p.PhoneNumber
		data.Tourist.Aadhaar = p.AadhaarNumber
		if p.PassportID != nil {
			data.Tourist.Passport = *p.PassportID
		}
		data.Tourist.EntryDate = p.EntryDate.In(utils.ServiceLocation()).Format("2006-01-02")
		data.Tourist.LeaveDate = p.LeaveDate.In(utils.ServiceLocation()).Format("2006-01-02")
	}

	for i, row := range trail {
		entry := pdf.TrailRow{
			Seq:       i + 1,
			Timestamp: utils.FormatRFC3339(row.Timestamp),
			Lat:       fmt.Sprintf("%.6f", row.Latitude),
			Lon:       fmt.Sprintf("%.6f", row.Longitude),
		}
		if row.Accuracy != nil {
			entry.Accuracy = fmt.Sprintf("%.1f", *row.Accuracy)
		}
		data.Trail = append(data.Trail, entry)
	}

	for _, a := range event.Audio {
		data.AudioURLs = append(data.AudioURLs, a.ObjectURL)
	}

	bytes, err := pdf.RenderFIR(data)
	if err != nil {
		return "", nil, err
	}
	filename := "FIR_" + event.ID.String() + ".pdf"
	return filename, bytes, nil
}
