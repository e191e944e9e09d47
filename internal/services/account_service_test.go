package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/repositories"
	"github.com/Yadavallitejas/tourist-guard/pkg/blob"
	"github.com/Yadavallitejas/tourist-guard/pkg/config"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

func newAccountService(t *testing.T) (AccountServiceInterface, *gorm.DB, *config.Config, *utils.TokenManager) {
	db := newTestDB(t)
	cfg := &config.Config{}
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	svc := NewAccountService(repositories.NewAccountRepository(db), blob.NewMemoryStore(), cfg, tokens)
	return svc, db, cfg, tokens
}

func touristReq(username string) request_models.RegisterTouristRequest {
	return request_models.RegisterTouristRequest{
		Username:          username,
		Email:             username + "@example.com",
		Password:          "s3cret-pass",
		FullName:          "Amit Kumar",
		Age:               28,
		PhoneNumber:       "9876543210",
		AadhaarNumber:     "1234-5678-9012",
		EntryDate:         "2026-03-01",
		LeaveDate:         "2026-03-10",
		EmergencyContacts: "Alice:111, 222",
	}
}

func TestRegisterTourist(t *testing.T) {
	svc, db, _, tokens := newAccountService(t)

	token, err := svc.RegisterTourist(context.Background(), touristReq("amit"), nil)
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleTourist, claims.Role)

	var account db_models.Account
	require.NoError(t, db.Preload("TouristProfile.EmergencyContacts").
		First(&account, "username = ?", "amit").Error)
	require.NotNil(t, account.TouristProfile)
	assert.Equal(t, "Amit Kumar", account.TouristProfile.FullName)
	assert.NotEqual(t, "s3cret-pass", account.PasswordHash)

	contacts := account.TouristProfile.EmergencyContacts
	require.Len(t, contacts, 2)
	assert.Equal(t, "Alice", contacts[0].Name)
	assert.Equal(t, "111", contacts[0].Phone)
	assert.Equal(t, "", contacts[1].Name)
	assert.Equal(t, "222", contacts[1].Phone)
}

func TestRegisterTourist_DuplicateUsername(t *testing.T) {
	svc, _, _, _ := newAccountService(t)

	_, err := svc.RegisterTourist(context.Background(), touristReq("amit"), nil)
	require.NoError(t, err)

	_, err = svc.RegisterTourist(context.Background(), touristReq("amit"), nil)
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)
}

func TestRegisterTourist_BadEntryDate(t *testing.T) {
	svc, _, _, _ := newAccountService(t)

	req := touristReq("amit")
	req.EntryDate = "01-03-2026"
	_, err := svc.RegisterTourist(context.Background(), req, nil)
	assert.ErrorIs(t, err, utils.ErrInvalidDate)
}

func TestRegisterTourist_StoresPhoto(t *testing.T) {
	svc, db, _, _ := newAccountService(t)

	photo := &Upload{
		Reader:      strings.NewReader("jpegbytes"),
		Size:        9,
		ContentType: "image/jpeg",
		Name:        "face.jpg",
	}
	_, err := svc.RegisterTourist(context.Background(), touristReq("amit"), photo)
	require.NoError(t, err)

	var profile db_models.TouristProfile
	require.NoError(t, db.First(&profile).Error)
	require.NotNil(t, profile.PhotoURL)
	assert.True(t, strings.HasPrefix(*profile.PhotoURL, "mem://tourists/photos/"))
}

func TestRegisterPolice_KeyGate(t *testing.T) {
	svc, db, cfg, tokens := newAccountService(t)
	cfg.SetPoliceKeys("alpha-key", "beta-key")

	_, err := svc.RegisterPolice(context.Background(), request_models.RegisterPoliceRequest{
		Username: "officer1", Email: "o1@example.com", Password: "s3cret-pass",
		RegistrationKey: "wrong-key",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidRegistrationKey)

	token, err := svc.RegisterPolice(context.Background(), request_models.RegisterPoliceRequest{
		Username: "officer1", Email: "o1@example.com", Password: "s3cret-pass",
		StationName: "Shillong Sadar", RegistrationKey: "beta-key",
	})
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, db_models.RolePolice, claims.Role)

	var account db_models.Account
	require.NoError(t, db.Preload("PoliceProfile").First(&account, "username = ?", "officer1").Error)
	require.NotNil(t, account.PoliceProfile)
	assert.True(t, account.PoliceProfile.IsVerified)
	require.NotNil(t, account.PoliceProfile.StationName)
	assert.Equal(t, "Shillong Sadar", *account.PoliceProfile.StationName)
}

func TestLogin(t *testing.T) {
	svc, _, _, tokens := newAccountService(t)

	_, err := svc.RegisterTourist(context.Background(), touristReq("amit"), nil)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Username: "nobody", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{Username: "amit", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	token, err := svc.Login(context.Background(), request_models.LoginRequest{Username: "amit", Password: "s3cret-pass"})
	require.NoError(t, err)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleTourist, claims.Role)
}
