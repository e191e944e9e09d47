package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps the service-level error taxonomy onto HTTP codes:
// forbidden -> 403, not-found -> 404, malformed input -> 400, anything else -> 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrInvalidCoordinates):
		RespondError(c, http.StatusBadRequest, "Latitude and longitude are required and must be numbers")
	case errors.Is(err, ErrInvalidTimestamp):
		RespondError(c, http.StatusBadRequest, "Timestamp must be an ISO-8601 datetime")
	case errors.Is(err, ErrInvalidRadius):
		RespondError(c, http.StatusBadRequest, "Zone radius must be non-negative")
	case errors.Is(err, ErrInvalidDate):
		RespondError(c, http.StatusBadRequest, "Dates must use the YYYY-MM-DD format")
	case errors.Is(err, ErrEmptyAudio):
		RespondError(c, http.StatusBadRequest, "Audio payload must not be empty")
	case errors.Is(err, ErrUsernameTaken):
		RespondError(c, http.StatusBadRequest, "Username already taken")
	case errors.Is(err, ErrInvalidRegistrationKey):
		RespondError(c, http.StatusBadRequest, "Invalid registration key. Contact admin.")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, ErrSOSNotFound):
		RespondError(c, http.StatusNotFound, "SOS event not found")
	case errors.Is(err, ErrZoneNotFound):
		RespondError(c, http.StatusNotFound, "Danger zone not found")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrDatabaseError):
		log.Errorf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrStorageError):
		log.Errorf("Storage error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Errorf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
