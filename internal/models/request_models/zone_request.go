package request_models

type CreateZoneRequest struct {
	Name         string   `json:"name" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required"`
	Longitude    *float64 `json:"longitude" binding:"required"`
	RadiusMeters *float64 `json:"radius_meters" binding:"required"`
}

type UpdateZoneRequest struct {
	Name         string   `json:"name" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required"`
	Longitude    *float64 `json:"longitude" binding:"required"`
	RadiusMeters *float64 `json:"radius_meters" binding:"required"`
}
