package model

import (
	"time"

	"gorm.io/datatypes"
)

// SavedSchoolLimit is the maximum number of schools a user may save
const SavedSchoolLimit = 20

// SavedSchool is one entry in a user's saved-school list. The composite
// unique index makes a concurrent double-save impossible at the data layer;
// the toggle relies on it together with ON CONFLICT DO NOTHING.
type SavedSchool struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;uniqueIndex:idx_saved_schools_user_institution" json:"user_id"`
	InstitutionID uint           `gorm:"not null;uniqueIndex:idx_saved_schools_user_institution" json:"institution_id"`
	Notes         string         `gorm:"type:varchar(2000)" json:"notes"`
	Tags          datatypes.JSON `json:"tags"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Institution Institution `gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE" json:"institution,omitempty"`
}
