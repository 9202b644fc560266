package model

// Small lookup tables institutions reference for classification.
// Descriptions are the values exposed to (and matched against) search filters.

// InstitutionControl is the control type of an institution (e.g. "Public",
// "Private not-for-profit")
type InstitutionControl struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"not null;uniqueIndex" json:"description"`
}

// InstitutionLevel is the level of an institution (e.g. "Four or more years")
type InstitutionLevel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"not null;uniqueIndex" json:"description"`
}

// UrbanizationLocale classifies the institution's setting (e.g. "City: Large")
type UrbanizationLocale struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"not null;uniqueIndex" json:"description"`
}
