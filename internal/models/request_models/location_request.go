package request_models

// LocationRequest is shared by the JSON endpoint and the form-encoded
// polling endpoint; both run through the same validated ingest path.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" form:"lat"`
	Longitude *float64 `json:"longitude" form:"lon"`
	Accuracy  *float64 `json:"accuracy" form:"accuracy"`
	Timestamp string   `json:"timestamp" form:"timestamp"`
}
