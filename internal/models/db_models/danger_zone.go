package db_models

// DangerZone is a circular geofenced area. RadiusMeters is validated
// non-negative at ingress.
type DangerZone struct {
	BaseModel
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}
