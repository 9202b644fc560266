package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered user in the system
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"` // Never expose password in JSON
	Name          string         `gorm:"not null" json:"name"`
	Country       string         `gorm:"type:varchar(100)" json:"country"`
	IntendedMajor string         `gorm:"type:varchar(255)" json:"intended_major"`
	TokenVersion  int            `gorm:"default:0" json:"-"` // Increment to invalidate all user tokens

	// Relationships
	SavedSchools   []SavedSchool       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TokenBlacklist []JWTTokenBlacklist `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// AdminUser marks a user as an administrator. Admin status is a record, not
// a role column; the admin middleware checks for its existence per request.
type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
