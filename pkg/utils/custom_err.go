package utils

import "errors"

var (
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCoordinates     = errors.New("invalid or missing coordinates")
	ErrInvalidTimestamp       = errors.New("invalid timestamp")
	ErrInvalidRadius          = errors.New("invalid zone radius")
	ErrInvalidDate            = errors.New("invalid date")
	ErrEmptyAudio             = errors.New("empty audio payload")
	ErrSOSNotFound            = errors.New("sos event not found")
	ErrZoneNotFound           = errors.New("danger zone not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrUsernameTaken          = errors.New("username already taken")
	ErrInvalidRegistrationKey = errors.New("invalid registration key")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrDatabaseError          = errors.New("database error")
	ErrStorageError           = errors.New("storage error")
)
