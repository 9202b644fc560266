package services

import (
	"context"
	"errors"

	"github.com/uniscout/uniscout-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInstitutionNotFound = errors.New("institution not found")
	ErrSavedSchoolNotFound = errors.New("saved school not found")
	ErrAlreadySaved        = errors.New("institution already saved")
	ErrSaveLimitReached    = errors.New("saved school limit reached")
)

// SavedSchoolService manages a user's saved-school list
type SavedSchoolService struct {
	db *gorm.DB
}

// NewSavedSchoolService creates a new saved school service
func NewSavedSchoolService(db *gorm.DB) *SavedSchoolService {
	return &SavedSchoolService{db: db}
}

// Toggle flips the saved state for (user, institution). The whole operation
// runs in one transaction; together with the unique (user_id, institution_id)
// index and ON CONFLICT DO NOTHING, concurrent toggles cannot double-insert.
// Returns the resulting state: true when the school is now saved.
func (s *SavedSchoolService) Toggle(ctx context.Context, userID, institutionID uint) (bool, error) {
	var saved bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var institution model.Institution
		if err := tx.Select("institution_id").First(&institution, institutionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInstitutionNotFound
			}
			return err
		}

		result := tx.Where("user_id = ? AND institution_id = ?", userID, institutionID).
			Delete(&model.SavedSchool{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			saved = false
			return nil
		}

		var count int64
		if err := tx.Model(&model.SavedSchool{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count >= model.SavedSchoolLimit {
			return ErrSaveLimitReached
		}

		record := model.SavedSchool{UserID: userID, InstitutionID: institutionID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
			return err
		}

		saved = true
		return nil
	})
	return saved, err
}

// Create saves an institution for a user with optional notes and tags.
// Fails with ErrInstitutionNotFound when the institution does not exist and
// ErrAlreadySaved when the (user, institution) pair is already present.
func (s *SavedSchoolService) Create(ctx context.Context, record *model.SavedSchool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var institution model.Institution
		if err := tx.Select("institution_id").First(&institution, record.InstitutionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInstitutionNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&model.SavedSchool{}).Where("user_id = ?", record.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count >= model.SavedSchoolLimit {
			return ErrSaveLimitReached
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAlreadySaved
		}
		return nil
	})
}

// List returns one page of the user's saved schools, newest first, with
// institution summaries attached, plus the exact total.
func (s *SavedSchoolService) List(ctx context.Context, userID uint, limit, offset int) ([]model.SavedSchool, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&model.SavedSchool{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var records []model.SavedSchool
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Preload("Institution.City.State").
		Preload("Institution.Control").
		Preload("Institution.AdmissionCycles").
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Get loads one saved school owned by the user with nested institution
// detail; records belonging to other users read as not found
func (s *SavedSchoolService) Get(ctx context.Context, userID, id uint) (*model.SavedSchool, error) {
	var record model.SavedSchool
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Preload("Institution.City.State").
		Preload("Institution.Control").
		Preload("Institution.AdmissionCycles.AdmissionRequirements").
		Preload("Institution.AdmissionCycles.TestScores").
		Preload("Institution.AdmissionCycles.EnglishRequirements").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSavedSchoolNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Update edits the notes/tags of a saved school owned by the user
func (s *SavedSchoolService) Update(ctx context.Context, record *model.SavedSchool) error {
	result := s.db.WithContext(ctx).
		Model(&model.SavedSchool{}).
		Where("id = ? AND user_id = ?", record.ID, record.UserID).
		Updates(map[string]interface{}{
			"notes": record.Notes,
			"tags":  record.Tags,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedSchoolNotFound
	}
	return nil
}

// Delete removes a saved school owned by the user
func (s *SavedSchoolService) Delete(ctx context.Context, userID, id uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SavedSchool{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedSchoolNotFound
	}
	return nil
}
