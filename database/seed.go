package database

import (
	"fmt"
	"log"
	"os"

	"github.com/uniscout/uniscout-api/model"
	"github.com/uniscout/uniscout-api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	// Run seeds in order (respecting foreign key constraints)
	if err := s.SeedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := s.SeedLocations(); err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}

	if err := s.SeedLookups(); err != nil {
		return fmt.Errorf("failed to seed lookups: %w", err)
	}

	if err := s.SeedInstitutions(); err != nil {
		return fmt.Errorf("failed to seed institutions: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdminUser creates the default admin user from environment credentials
func (s *Seeder) SeedAdminUser() error {
	// Check if an admin already exists
	var count int64
	if err := s.db.Model(&model.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Admin user already exists, skipping...")
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️  ADMIN_EMAIL and ADMIN_PASSWORD environment variables not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Name:         "System Administrator",
		TokenVersion: 0,
	}

	// Admin status is a separate record; create both atomically
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", adminEmail).FirstOrCreate(admin, model.User{Email: adminEmail}).Error; err != nil {
			return err
		}
		return tx.Create(&model.AdminUser{UserID: admin.ID}).Error
	}); err != nil {
		return err
	}

	log.Printf("✅ Created admin user: %s\n", admin.Email)
	return nil
}

// SeedLocations creates sample states and cities
func (s *Seeder) SeedLocations() error {
	var count int64
	if err := s.db.Model(&model.State{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Locations already exist, skipping...")
		return nil
	}

	states := []model.State{
		{Name: "Massachusetts"},
		{Name: "California"},
		{Name: "New York"},
		{Name: "Michigan"},
		{Name: "Texas"},
	}

	if err := s.db.Create(&states).Error; err != nil {
		return err
	}

	cities := []model.City{
		{Name: "Cambridge", StateID: states[0].ID},
		{Name: "Boston", StateID: states[0].ID},
		{Name: "Stanford", StateID: states[1].ID},
		{Name: "Berkeley", StateID: states[1].ID},
		{Name: "Ithaca", StateID: states[2].ID},
		{Name: "New York", StateID: states[2].ID},
		{Name: "Ann Arbor", StateID: states[3].ID},
		{Name: "Austin", StateID: states[4].ID},
	}

	if err := s.db.Create(&cities).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d states and %d cities\n", len(states), len(cities))
	return nil
}

// SeedLookups creates the classification lookup tables
func (s *Seeder) SeedLookups() error {
	var count int64
	if err := s.db.Model(&model.InstitutionControl{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Lookups already exist, skipping...")
		return nil
	}

	controls := []model.InstitutionControl{
		{Description: "Public"},
		{Description: "Private not-for-profit"},
		{Description: "Private for-profit"},
	}
	if err := s.db.Create(&controls).Error; err != nil {
		return err
	}

	levels := []model.InstitutionLevel{
		{Description: "Four or more years"},
		{Description: "At least 2 but less than 4 years"},
	}
	if err := s.db.Create(&levels).Error; err != nil {
		return err
	}

	locales := []model.UrbanizationLocale{
		{Description: "City: Large"},
		{Description: "City: Midsize"},
		{Description: "City: Small"},
		{Description: "Suburb: Large"},
		{Description: "Town: Distant"},
	}
	if err := s.db.Create(&locales).Error; err != nil {
		return err
	}

	log.Println("✅ Created classification lookups")
	return nil
}

// SeedInstitutions creates sample institutions with nested admission and
// enrollment records
func (s *Seeder) SeedInstitutions() error {
	var count int64
	if err := s.db.Model(&model.Institution{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Institutions already exist, skipping...")
		return nil
	}

	var cities []model.City
	if err := s.db.Order("id ASC").Find(&cities).Error; err != nil {
		return err
	}
	var controls []model.InstitutionControl
	if err := s.db.Order("id ASC").Find(&controls).Error; err != nil {
		return err
	}
	var levels []model.InstitutionLevel
	if err := s.db.Order("id ASC").Find(&levels).Error; err != nil {
		return err
	}
	var locales []model.UrbanizationLocale
	if err := s.db.Order("id ASC").Find(&locales).Error; err != nil {
		return err
	}

	if len(cities) == 0 || len(controls) == 0 || len(levels) == 0 || len(locales) == 0 {
		return fmt.Errorf("location and lookup tables are empty, seed them first")
	}

	cityByName := make(map[string]uint, len(cities))
	for _, city := range cities {
		cityByName[city.Name] = city.ID
	}

	institutions := []model.Institution{
		{
			ID:        166027,
			Name:      "Massachusetts Institute of Technology",
			Rank:      intPtr(1),
			CityID:    uintPtr(cityByName["Cambridge"]),
			LevelID:   &levels[0].ID,
			ControlID: &controls[1].ID,
			LocaleID:  &locales[1].ID,
			AdmissionCycles: []model.AdmissionCycle{
				{
					YearAdmissions:       2023,
					TuitionAndFees:       floatPtr(57986),
					TotalPriceOnCampus:   floatPtr(79850),
					ApplicantsTotal:      intPtr(26914),
					PercentAdmittedTotal: floatPtr(4.5),
					EnglishRequirements: &model.EnglishRequirements{
						OutOfStateTuitionIntl: floatPtr(57986),
						ToeflMinimum:          intPtr(90),
						IeltsMinimum:          floatPtr(7.0),
					},
					TestScores: &model.TestScores{
						SATErw25:       intPtr(730),
						SATErw75:       intPtr(780),
						SATMath25:      intPtr(780),
						SATMath75:      intPtr(800),
						ACTComposite25: intPtr(34),
						ACTComposite75: intPtr(36),
					},
					InternationalDocuments: []model.InternationalDocument{
						{DocumentName: "Passport copy"},
						{DocumentName: "Financial statement"},
					},
				},
			},
			EnrollmentStats: []model.EnrollmentStats{
				{
					YearEnrollment:         2023,
					UndergraduateHeadcount: intPtr(4576),
					PercentNonresident:     floatPtr(10.3),
				},
			},
			PopularMajors: []model.PopularMajor{
				{MajorName: "Computer Science"},
				{MajorName: "Mechanical Engineering"},
				{MajorName: "Mathematics"},
			},
		},
		{
			ID:        243744,
			Name:      "Stanford University",
			Rank:      intPtr(3),
			CityID:    uintPtr(cityByName["Stanford"]),
			LevelID:   &levels[0].ID,
			ControlID: &controls[1].ID,
			LocaleID:  &locales[3].ID,
			AdmissionCycles: []model.AdmissionCycle{
				{
					YearAdmissions:       2023,
					TuitionAndFees:       floatPtr(58416),
					TotalPriceOnCampus:   floatPtr(82162),
					ApplicantsTotal:      intPtr(56378),
					PercentAdmittedTotal: floatPtr(3.9),
					EnglishRequirements: &model.EnglishRequirements{
						OutOfStateTuitionIntl: floatPtr(58416),
						ToeflMinimum:          intPtr(100),
						IeltsMinimum:          floatPtr(7.0),
					},
					InternationalDocuments: []model.InternationalDocument{
						{DocumentName: "Passport copy"},
					},
				},
			},
			EnrollmentStats: []model.EnrollmentStats{
				{
					YearEnrollment:         2023,
					UndergraduateHeadcount: intPtr(7841),
					PercentNonresident:     floatPtr(12.1),
				},
			},
			PopularMajors: []model.PopularMajor{
				{MajorName: "Computer Science"},
				{MajorName: "Economics"},
			},
		},
		{
			ID:        110635,
			Name:      "University of California-Berkeley",
			Rank:      intPtr(15),
			CityID:    uintPtr(cityByName["Berkeley"]),
			LevelID:   &levels[0].ID,
			ControlID: &controls[0].ID,
			LocaleID:  &locales[1].ID,
			AdmissionCycles: []model.AdmissionCycle{
				{
					YearAdmissions:       2023,
					TuitionAndFees:       floatPtr(15891),
					ApplicantsTotal:      intPtr(125874),
					PercentAdmittedTotal: floatPtr(11.6),
					EnglishRequirements: &model.EnglishRequirements{
						OutOfStateTuitionIntl: floatPtr(48465),
						ToeflMinimum:          intPtr(80),
						IeltsMinimum:          floatPtr(6.5),
					},
				},
			},
			EnrollmentStats: []model.EnrollmentStats{
				{
					YearEnrollment:         2023,
					UndergraduateHeadcount: intPtr(32831),
					PercentNonresident:     floatPtr(13.4),
				},
			},
			PopularMajors: []model.PopularMajor{
				{MajorName: "Electrical Engineering"},
				{MajorName: "Data Science"},
			},
		},
		{
			ID:        170976,
			Name:      "University of Michigan-Ann Arbor",
			Rank:      intPtr(21),
			CityID:    uintPtr(cityByName["Ann Arbor"]),
			LevelID:   &levels[0].ID,
			ControlID: &controls[0].ID,
			LocaleID:  &locales[2].ID,
			AdmissionCycles: []model.AdmissionCycle{
				{
					YearAdmissions:       2023,
					TuitionAndFees:       floatPtr(17786),
					ApplicantsTotal:      intPtr(87632),
					PercentAdmittedTotal: floatPtr(17.7),
					EnglishRequirements: &model.EnglishRequirements{
						OutOfStateTuitionIntl: floatPtr(57273),
						ToeflMinimum:          intPtr(88),
						IeltsMinimum:          floatPtr(6.5),
					},
				},
			},
			EnrollmentStats: []model.EnrollmentStats{
				{
					YearEnrollment:         2023,
					UndergraduateHeadcount: intPtr(32695),
					PercentNonresident:     floatPtr(7.9),
				},
			},
			PopularMajors: []model.PopularMajor{
				{MajorName: "Business Administration"},
				{MajorName: "Computer Science"},
			},
		},
		{
			// Unranked institution; exercises the NULLS LAST ordering path
			ID:        228787,
			Name:      "Austin Community College District",
			CityID:    uintPtr(cityByName["Austin"]),
			LevelID:   &levels[1].ID,
			ControlID: &controls[0].ID,
			LocaleID:  &locales[0].ID,
			AdmissionCycles: []model.AdmissionCycle{
				{
					YearAdmissions:      2023,
					TuitionAndFees:      floatPtr(11100),
					OpenAdmissionPolicy: strPtr("Yes"),
					EnglishRequirements: &model.EnglishRequirements{
						OutOfStateTuitionIntl: floatPtr(11100),
						ToeflMinimum:          intPtr(61),
						IeltsMinimum:          floatPtr(5.5),
					},
				},
			},
			EnrollmentStats: []model.EnrollmentStats{
				{
					YearEnrollment:         2023,
					UndergraduateHeadcount: intPtr(32054),
					PercentNonresident:     floatPtr(2.8),
				},
			},
			PopularMajors: []model.PopularMajor{
				{MajorName: "Liberal Arts"},
			},
		},
	}

	if err := s.db.Create(&institutions).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d institutions\n", len(institutions))
	return nil
}

func intPtr(v int) *int           { return &v }
func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
