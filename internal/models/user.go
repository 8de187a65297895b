package models

// DefaultRole is assigned when registration does not name a role.
const DefaultRole = "TRADER"

// User represents the user model in the database
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:'TRADER'" json:"role"`
}
