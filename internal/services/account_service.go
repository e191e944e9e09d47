package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/pkg/blob"
	"github.com/Yadavallitejas/tourist-guard/pkg/config"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

// Upload carries one optional file from a multipart form to the blob store.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Name        string
}

type AccountServiceInterface interface {
	RegisterTourist(ctx context.Context, req request_models.RegisterTouristRequest, photo *Upload) (string, error)
	RegisterPolice(ctx context.Context, req request_models.RegisterPoliceRequest) (string, error)
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	blobStore   blob.Store
	cfg         *config.Config
	tokens      *utils.TokenManager
}

func NewAccountService(accountRepo repositories.AccountRepository, blobStore blob.Store, cfg *config.Config, tokens *utils.TokenManager) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		blobStore:   blobStore,
		cfg:         cfg,
		tokens:      tokens,
	}
}

func (a *AccountService) RegisterTourist(ctx context.Context, req request_models.RegisterTouristRequest, photo *Upload) (string, error) {
	existing, err := a.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrUsernameTaken
	}

	entryDate, err := time.ParseInLocation("2006-01-02", req.EntryDate, utils.ServiceLocation())
	if err != nil {
		return "", utils.ErrInvalidDate
	}
	leaveDate, err := time.ParseInLocation("2006-01-02", req.LeaveDate, utils.ServiceLocation())
	if err != nil {
		return "", utils.ErrInvalidDate
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	profile := &db_models.TouristProfile{
		FullName:          req.FullName,
		Age:               req.Age,
		PhoneNumber:       req.PhoneNumber,
		AadhaarNumber:     req.AadhaarNumber,
		EntryDate:         entryDate,
		LeaveDate:         leaveDate,
		EmergencyContacts: parseEmergencyContacts(req.EmergencyContacts),
	}
	if req.PassportID != "" {
		profile.PassportID = &req.PassportID
	}

	if photo != nil && photo.Size > 0 {
		key := "tourists/photos/" + uuid.New().String() + "_" + photo.Name
		url, err := a.blobStore.Put(ctx, key, photo.Reader, photo.Size, photo.ContentType)
		if err != nil {
			return "", utils.ErrStorageError
		}
		profile.PhotoURL = &url
	}

	account := &db_models.Account{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hashedPassword,
		Role:           db_models.RoleTourist,
		TouristProfile: profile,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return "", utils.ErrDatabaseError
	}

	return a.tokens.CreateToken(account.ID, account.Role)
}

// parseEmergencyContacts splits "Name:Phone,Name2:Phone2"; a bare item is a
// phone with no name. Empty items are dropped.
func parseEmergencyContacts(raw string) []db_models.EmergencyContact {
	contacts := make([]db_models.EmergencyContact, 0)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, phone := "", item
		if idx := strings.Index(item, ":"); idx >= 0 {
			name, phone = item[:idx], item[idx+1:]
		}
		contacts = append(contacts, db_models.EmergencyContact{
			Name:  strings.TrimSpace(name),
			Phone: strings.TrimSpace(phone),
		})
	}
	return contacts
}

// RegisterPolice self-registration is gated by the configured key allow-list;
// a valid key marks the profile verified immediately.
func (a *AccountService) RegisterPolice(ctx context.Context, req request_models.RegisterPoliceRequest) (string, error) {
	if !a.keyAllowed(req.RegistrationKey) {
		return "", utils.ErrInvalidRegistrationKey
	}

	existing, err := a.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return "", utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	profile := &db_models.PoliceProfile{IsVerified: true}
	if req.StationName != "" {
		profile.StationName = &req.StationName
	}

	account := &db_models.Account{
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  hashedPassword,
		Role:          db_models.RolePolice,
		PoliceProfile: profile,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return "", utils.ErrDatabaseError
	}

	return a.tokens.CreateToken(account.ID, account.Role)
}

func (a *AccountService) keyAllowed(key string) bool {
	for _, allowed := range a.cfg.PoliceKeys() {
		if key == allowed {
			return true
		}
	}
	return false
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return a.tokens.CreateToken(account.ID, account.Role)
}
