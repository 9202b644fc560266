package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/uniscout/uniscout-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSavedSchoolTest connects to the database from the environment and
// seeds an isolated user plus a batch of institutions. Requires
// RUN_INTEGRATION_TESTS=true and the usual DB_* variables.
func setupSavedSchoolTest(t *testing.T, institutionCount int) (*SavedSchoolService, uint, []uint) {
	t.Helper()

	if os.Getenv("RUN_INTEGRATION_TESTS") != "true" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=true to run")
	}

	sslMode := os.Getenv("DB_SSL_MODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER_NAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		sslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Institution{}, &model.SavedSchool{})
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	user := model.User{
		Email:        fmt.Sprintf("saved-school-test-%d@example.com", time.Now().UnixNano()),
		PasswordHash: "not-a-real-hash",
		Name:         "Saved School Tester",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	institutionIDs := make([]uint, 0, institutionCount)
	for i := 0; i < institutionCount; i++ {
		inst := model.Institution{
			ID:   uint(900000 + i),
			Name: fmt.Sprintf("Toggle Test Institution %d", i),
		}
		if err := db.Create(&inst).Error; err != nil {
			t.Fatalf("failed to create test institution: %v", err)
		}
		institutionIDs = append(institutionIDs, inst.ID)
	}

	t.Cleanup(func() {
		db.Where("user_id = ?", user.ID).Delete(&model.SavedSchool{})
		db.Where("institution_id >= ? AND institution_id < ?", 900000, 900000+institutionCount).
			Delete(&model.Institution{})
		db.Unscoped().Delete(&model.User{}, user.ID)
	})

	return NewSavedSchoolService(db), user.ID, institutionIDs
}

func savedCount(t *testing.T, s *SavedSchoolService, userID uint) int64 {
	t.Helper()
	var count int64
	if err := s.db.Model(&model.SavedSchool{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count saved schools: %v", err)
	}
	return count
}

func TestToggleRoundTrip(t *testing.T) {
	service, userID, institutionIDs := setupSavedSchoolTest(t, 1)
	ctx := context.Background()

	saved, err := service.Toggle(ctx, userID, institutionIDs[0])
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !saved {
		t.Error("first toggle should save the school")
	}
	if got := savedCount(t, service, userID); got != 1 {
		t.Errorf("saved count after first toggle = %d, want 1", got)
	}

	saved, err = service.Toggle(ctx, userID, institutionIDs[0])
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if saved {
		t.Error("second toggle should unsave the school")
	}
	if got := savedCount(t, service, userID); got != 0 {
		t.Errorf("saved count after round trip = %d, want 0", got)
	}
}

func TestToggleUnknownInstitution(t *testing.T) {
	service, userID, _ := setupSavedSchoolTest(t, 1)

	_, err := service.Toggle(context.Background(), userID, 999999999)
	if !errors.Is(err, ErrInstitutionNotFound) {
		t.Errorf("expected ErrInstitutionNotFound, got %v", err)
	}
}

func TestToggleRejectsSaveBeyondLimit(t *testing.T) {
	service, userID, institutionIDs := setupSavedSchoolTest(t, model.SavedSchoolLimit+1)
	ctx := context.Background()

	for i := 0; i < model.SavedSchoolLimit; i++ {
		saved, err := service.Toggle(ctx, userID, institutionIDs[i])
		if err != nil {
			t.Fatalf("toggle %d failed: %v", i, err)
		}
		if !saved {
			t.Fatalf("toggle %d should have saved", i)
		}
	}

	_, err := service.Toggle(ctx, userID, institutionIDs[model.SavedSchoolLimit])
	if !errors.Is(err, ErrSaveLimitReached) {
		t.Fatalf("expected ErrSaveLimitReached, got %v", err)
	}

	// The rejected save must not have mutated the list
	if got := savedCount(t, service, userID); got != model.SavedSchoolLimit {
		t.Errorf("saved count after rejected save = %d, want %d", got, model.SavedSchoolLimit)
	}

	// The list still toggles normally after the rejection
	saved, err := service.Toggle(ctx, userID, institutionIDs[0])
	if err != nil {
		t.Fatalf("unsave after rejection failed: %v", err)
	}
	if saved {
		t.Error("toggling an already-saved school should unsave it")
	}
}

func TestCreateDuplicateReturnsAlreadySaved(t *testing.T) {
	service, userID, institutionIDs := setupSavedSchoolTest(t, 1)
	ctx := context.Background()

	first := model.SavedSchool{UserID: userID, InstitutionID: institutionIDs[0], Notes: "reach school"}
	if err := service.Create(ctx, &first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second := model.SavedSchool{UserID: userID, InstitutionID: institutionIDs[0]}
	if err := service.Create(ctx, &second); !errors.Is(err, ErrAlreadySaved) {
		t.Errorf("expected ErrAlreadySaved, got %v", err)
	}

	if got := savedCount(t, service, userID); got != 1 {
		t.Errorf("saved count after duplicate create = %d, want 1", got)
	}
}
