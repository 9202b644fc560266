package services

import (
	"context"
	"log"
	"time"

	"github.com/uniscout/uniscout-api/model"
	"github.com/uniscout/uniscout-api/utils/cache"
	"gorm.io/gorm"
)

const (
	metadataCacheKey = "search:metadata"
	metadataCacheTTL = 10 * time.Minute
)

// FilterRange is the observed min/max of one numeric filter dimension
type FilterRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// SearchMetadata carries the ranges the filter UI needs to render sliders
type SearchMetadata struct {
	Toefl       FilterRange `json:"toefl"`
	Ielts       FilterRange `json:"ielts"`
	TuitionIntl FilterRange `json:"tuition_intl"`
	PercentIntl FilterRange `json:"percent_intl"`
}

// CityEntry pairs a city with its state name for lookup lists
type CityEntry struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

// MetadataService serves lookup lists and filter ranges for the search UI
type MetadataService struct {
	db         *gorm.DB
	redisCache *cache.RedisCache
}

// NewMetadataService creates a new metadata service. redisCache may be nil;
// every call then goes straight to the database.
func NewMetadataService(db *gorm.DB, redisCache *cache.RedisCache) *MetadataService {
	return &MetadataService{db: db, redisCache: redisCache}
}

// SearchMetadata computes the min/max of the four numeric filter dimensions
// with SQL aggregates. Results are cached in Redis since the underlying
// columns change only on admin writes.
func (s *MetadataService) SearchMetadata(ctx context.Context) (*SearchMetadata, error) {
	if s.redisCache != nil {
		var cached SearchMetadata
		if err := s.redisCache.GetJSON(ctx, metadataCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	// Fallback bounds used when a column holds no values at all
	var english struct {
		ToeflMin   *float64
		ToeflMax   *float64
		IeltsMin   *float64
		IeltsMax   *float64
		TuitionMin *float64
		TuitionMax *float64
	}
	err := s.db.WithContext(ctx).
		Model(&model.EnglishRequirements{}).
		Select("MIN(toefl_minimum) AS toefl_min, MAX(toefl_minimum) AS toefl_max, " +
			"MIN(ielts_minimum) AS ielts_min, MAX(ielts_minimum) AS ielts_max, " +
			"MIN(out_of_state_tuition_intl) AS tuition_min, MAX(out_of_state_tuition_intl) AS tuition_max").
		Scan(&english).Error
	if err != nil {
		return nil, err
	}

	var enrollment struct {
		PercentMin *float64
		PercentMax *float64
	}
	err = s.db.WithContext(ctx).
		Model(&model.EnrollmentStats{}).
		Select("MIN(percent_nonresident) AS percent_min, MAX(percent_nonresident) AS percent_max").
		Scan(&enrollment).Error
	if err != nil {
		return nil, err
	}

	metadata := &SearchMetadata{
		Toefl:       rangeOf(english.ToeflMin, english.ToeflMax, 0, 120),
		Ielts:       rangeOf(english.IeltsMin, english.IeltsMax, 0, 9),
		TuitionIntl: rangeOf(english.TuitionMin, english.TuitionMax, 0, 100000),
		PercentIntl: rangeOf(enrollment.PercentMin, enrollment.PercentMax, 0, 100),
	}

	if s.redisCache != nil {
		if err := s.redisCache.SetJSON(ctx, metadataCacheKey, metadata, metadataCacheTTL); err != nil {
			log.Println("Warning: failed to cache search metadata:", err)
		}
	}

	return metadata, nil
}

func rangeOf(min, max *float64, defaultMin, defaultMax float64) FilterRange {
	r := FilterRange{Min: defaultMin, Max: defaultMax}
	if min != nil {
		r.Min = *min
	}
	if max != nil {
		r.Max = *max
	}
	return r
}

// InvalidateSearchMetadata drops the cached ranges after admin writes
func (s *MetadataService) InvalidateSearchMetadata(ctx context.Context) {
	if s.redisCache == nil {
		return
	}
	if err := s.redisCache.Delete(ctx, metadataCacheKey); err != nil {
		log.Println("Warning: failed to invalidate search metadata cache:", err)
	}
}

// PopularMajors returns the distinct major names, sorted
func (s *MetadataService) PopularMajors(ctx context.Context) ([]string, error) {
	var majors []string
	err := s.db.WithContext(ctx).
		Model(&model.PopularMajor{}).
		Distinct("major_name").
		Order("major_name ASC").
		Pluck("major_name", &majors).Error
	return majors, err
}

// InternationalDocuments returns the distinct document names, sorted
func (s *MetadataService) InternationalDocuments(ctx context.Context) ([]string, error) {
	var documents []string
	err := s.db.WithContext(ctx).
		Model(&model.InternationalDocument{}).
		Distinct("document_name").
		Order("document_name ASC").
		Pluck("document_name", &documents).Error
	return documents, err
}

// States returns all state names, sorted
func (s *MetadataService) States(ctx context.Context) ([]string, error) {
	var states []string
	err := s.db.WithContext(ctx).
		Model(&model.State{}).
		Order("name ASC").
		Pluck("name", &states).Error
	return states, err
}

// Cities returns all cities with their state names, sorted by city name
func (s *MetadataService) Cities(ctx context.Context) ([]CityEntry, error) {
	var cities []model.City
	err := s.db.WithContext(ctx).
		Preload("State").
		Order("name ASC").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}

	entries := make([]CityEntry, 0, len(cities))
	for _, city := range cities {
		entries = append(entries, CityEntry{Name: city.Name, State: city.State.Name})
	}
	return entries, nil
}

// Locales returns all urbanization locale descriptions, sorted
func (s *MetadataService) Locales(ctx context.Context) ([]string, error) {
	var locales []string
	err := s.db.WithContext(ctx).
		Model(&model.UrbanizationLocale{}).
		Order("description ASC").
		Pluck("description", &locales).Error
	return locales, err
}
