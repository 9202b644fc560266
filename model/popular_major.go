package model

// PopularMajor is one of an institution's most popular majors, stored as a
// plain name string
type PopularMajor struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	InstitutionID uint   `gorm:"not null;index" json:"institution_id"`
	MajorName     string `gorm:"not null;index" json:"major_name"`
}
