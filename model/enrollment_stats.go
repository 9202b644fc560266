package model

// EnrollmentStats holds one enrollment year's headcounts and percentages
// for an institution
type EnrollmentStats struct {
	ID                          uint     `gorm:"primaryKey" json:"id"`
	InstitutionID               uint     `gorm:"not null;index" json:"institution_id"`
	YearEnrollment              int      `gorm:"not null" json:"year_enrollment"`
	UndergraduateHeadcount      *int     `json:"undergraduate_headcount"`
	PercentNonresident          *float64 `json:"percent_nonresident"`
	AssociateDegreeCount        *int     `json:"associate_degree_count"`
	BachelorDegreeCount         *int     `json:"bachelor_degree_count"`
	PercentNonresidentSecondary *float64 `json:"percent_nonresident_secondary"`
}
