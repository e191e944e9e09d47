package request_models

import "encoding/json"

// Trailing locations stay raw so one malformed entry cannot fail the whole
// request; each element is decoded individually and skipped on error.
type SOSRequest struct {
	Locations   []json.RawMessage `json:"locations"`
	Description string            `json:"description"`
}

type SOSLocation struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
	Timestamp string   `json:"timestamp"`
}
