package model

// AdmissionCycle holds one admission year's figures for an institution.
// Each cycle owns at most one requirements, test-scores and English-requirements
// record, and any number of international documents.
type AdmissionCycle struct {
	ID                   uint     `gorm:"primaryKey" json:"id"`
	InstitutionID        uint     `gorm:"not null;index" json:"institution_id"`
	YearAdmissions       int      `gorm:"not null" json:"year_admissions"`
	TuitionAndFees       *float64 `json:"tuition_and_fees"`
	TotalPriceOnCampus   *float64 `json:"total_price_on_campus"`
	TotalPriceOffCampus  *float64 `json:"total_price_off_campus"`
	ApplicantsTotal      *int     `json:"applicants_total"`
	PercentAdmittedTotal *float64 `json:"percent_admitted_total"`
	OpenAdmissionPolicy  *string  `json:"open_admission_policy"`

	// Relationships
	Institution            *Institution            `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
	AdmissionRequirements  *AdmissionRequirements  `gorm:"foreignKey:AdmissionCycleID;constraint:OnDelete:CASCADE" json:"admission_requirements,omitempty"`
	TestScores             *TestScores             `gorm:"foreignKey:AdmissionCycleID;constraint:OnDelete:CASCADE" json:"test_scores,omitempty"`
	EnglishRequirements    *EnglishRequirements    `gorm:"foreignKey:AdmissionCycleID;constraint:OnDelete:CASCADE" json:"english_requirements,omitempty"`
	InternationalDocuments []InternationalDocument `gorm:"foreignKey:AdmissionCycleID;constraint:OnDelete:CASCADE" json:"international_documents,omitempty"`
}

// AdmissionRequirements lists the considered/required status of each
// application component for a cycle
type AdmissionRequirements struct {
	ID                     uint    `gorm:"primaryKey" json:"id"`
	AdmissionCycleID       uint    `gorm:"not null;uniqueIndex" json:"admission_cycle_id"`
	SecondarySchoolGPA     *string `gorm:"column:secondary_school_gpa" json:"secondary_school_gpa"`
	SecondarySchoolRank    *string `json:"secondary_school_rank"`
	SecondarySchoolRecord  *string `json:"secondary_school_record"`
	CollegePrepProgram     *string `json:"college_prep_program"`
	Recommendations        *string `json:"recommendations"`
	FormalDemonstration    *string `json:"formal_demonstration"`
	WorkExperience         *string `json:"work_experience"`
	PersonalStatement      *string `json:"personal_statement"`
	LegacyStatus           *string `json:"legacy_status"`
	AdmissionTestScores    *string `json:"admission_test_scores"`
	EnglishProficiencyTest *string `json:"english_proficiency_test"`
	OtherTest              *string `json:"other_test"`
}

// TestScores holds the 25th/75th percentile SAT and ACT scores for a cycle
type TestScores struct {
	ID               uint `gorm:"primaryKey" json:"id"`
	AdmissionCycleID uint `gorm:"not null;uniqueIndex" json:"admission_cycle_id"`
	SATErw25         *int `gorm:"column:sat_erw_25" json:"sat_erw_25"`
	SATErw75         *int `gorm:"column:sat_erw_75" json:"sat_erw_75"`
	SATMath25        *int `gorm:"column:sat_math_25" json:"sat_math_25"`
	SATMath75        *int `gorm:"column:sat_math_75" json:"sat_math_75"`
	ACTComposite25   *int `gorm:"column:act_composite_25" json:"act_composite_25"`
	ACTComposite75   *int `gorm:"column:act_composite_75" json:"act_composite_75"`
}

// EnglishRequirements holds a cycle's minimum English-proficiency scores and
// the international out-of-state tuition figure
type EnglishRequirements struct {
	ID                       uint     `gorm:"primaryKey" json:"id"`
	AdmissionCycleID         uint     `gorm:"not null;uniqueIndex" json:"admission_cycle_id"`
	OutOfStateTuitionIntl    *float64 `gorm:"column:out_of_state_tuition_intl" json:"out_of_state_tuition_intl"`
	ToeflMinimum             *int     `json:"toefl_minimum"`
	ToeflSectionRequirements *string  `json:"toefl_section_requirements"`
	IeltsMinimum             *float64 `json:"ielts_minimum"`
	IeltsSectionRequirements *string  `json:"ielts_section_requirements"`
	EnglishExemptions        *string  `json:"english_exemptions"`
}

// InternationalDocument is a document international applicants must submit
type InternationalDocument struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	AdmissionCycleID uint   `gorm:"not null;index" json:"admission_cycle_id"`
	DocumentName     string `gorm:"not null" json:"document_name"`
}
