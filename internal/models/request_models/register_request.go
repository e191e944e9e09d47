package request_models

type RegisterTouristRequest struct {
	Username      string `form:"username" json:"username" binding:"required"`
	Email         string `form:"email" json:"email" binding:"required,email"`
	Password      string `form:"password" json:"password" binding:"required,min=8"`
	FullName      string `form:"full_name" json:"full_name" binding:"required"`
	Age           int    `form:"age" json:"age" binding:"required,min=0"`
	PhoneNumber   string `form:"phone_number" json:"phone_number" binding:"required"`
	AadhaarNumber string `form:"aadhaar_number" json:"aadhaar_number" binding:"required"`
	PassportID    string `form:"passport_id" json:"passport_id"`
	EntryDate     string `form:"entry_date" json:"entry_date" binding:"required"`
	LeaveDate     string `form:"leave_date" json:"leave_date" binding:"required"`

	// Comma-separated contacts in the format: Name:Phone,Name2:Phone2
	EmergencyContacts string `form:"emergency_contacts" json:"emergency_contacts"`
}

type RegisterPoliceRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	StationName     string `json:"station_name"`
	RegistrationKey string `json:"registration_key" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
