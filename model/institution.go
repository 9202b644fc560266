package model

// Institution represents a US undergraduate institution. Rank is nullable;
// a nil rank means "unranked" and sorts after every ranked institution.
type Institution struct {
	ID        uint   `gorm:"column:institution_id;primaryKey" json:"institution_id"`
	Name      string `gorm:"column:institution_name;not null;index" json:"institution_name"`
	Rank      *int   `gorm:"index" json:"rank"`
	CityID    *uint  `gorm:"index" json:"city_id,omitempty"`
	LevelID   *uint  `json:"level_id,omitempty"`
	ControlID *uint  `json:"control_id,omitempty"`
	LocaleID  *uint  `json:"locale_id,omitempty"`

	// Relationships
	City            *City               `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Level           *InstitutionLevel   `gorm:"foreignKey:LevelID" json:"level,omitempty"`
	Control         *InstitutionControl `gorm:"foreignKey:ControlID" json:"control,omitempty"`
	Locale          *UrbanizationLocale `gorm:"foreignKey:LocaleID" json:"locale,omitempty"`
	AdmissionCycles []AdmissionCycle    `gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE" json:"admission_cycles,omitempty"`
	EnrollmentStats []EnrollmentStats   `gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE" json:"enrollment_stats,omitempty"`
	PopularMajors   []PopularMajor      `gorm:"foreignKey:InstitutionID;constraint:OnDelete:CASCADE" json:"popular_majors,omitempty"`
}
