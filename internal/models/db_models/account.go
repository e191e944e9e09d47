package db_models

const (
	RoleTourist = "tourist"
	RolePolice  = "police"
)

type Account struct {
	BaseModel
	Username     string `gorm:"uniqueIndex"`
	Email        string
	PasswordHash string
	Role         string

	TouristProfile *TouristProfile `gorm:"foreignKey:AccountID"`
	PoliceProfile  *PoliceProfile  `gorm:"foreignKey:AccountID"`
	Locations      []Location      `gorm:"foreignKey:TouristID"`
	SOSEvents      []SOSEvent      `gorm:"foreignKey:TouristID"`
}

func (a *Account) IsTourist() bool { return a.Role == RoleTourist }
func (a *Account) IsPolice() bool  { return a.Role == RolePolice }
