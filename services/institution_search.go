package services

import (
	"context"

	"github.com/uniscout/uniscout-api/model"
	"gorm.io/gorm"
)

// SearchParams is the validated filter set for an institution search.
// Pointer fields distinguish "absent" from zero values; absent fields impose
// no predicate and force no join.
type SearchParams struct {
	Query              string   `json:"query" validate:"omitempty,max=255"`
	State              string   `json:"state" validate:"omitempty,max=50"`
	City               string   `json:"city" validate:"omitempty,max=100"`
	InstitutionControl string   `json:"institution_control" validate:"omitempty,max=50"`
	InstitutionLevel   string   `json:"institution_level" validate:"omitempty,max=50"`
	Locale             string   `json:"locale" validate:"omitempty,max=100"`
	Major              string   `json:"major" validate:"omitempty,max=255"`
	MinRank            *int     `json:"min_rank" validate:"omitempty,gt=0"`
	MaxRank            *int     `json:"max_rank" validate:"omitempty,gt=0"`
	ToeflScore         *int     `json:"toefl_score" validate:"omitempty,gte=0,lte=120"`
	IeltsScore         *float64 `json:"ielts_score" validate:"omitempty,gte=0,lte=9"`
	MaxTuitionIntl     *float64 `json:"max_tuition_intl" validate:"omitempty,gte=0"`
	MinAcceptanceRate  *float64 `json:"min_acceptance_rate" validate:"omitempty,gte=0,lte=100"`
	MinIntlPercent     *float64 `json:"min_intl_percent" validate:"omitempty,gte=0,lte=100"`
	OnlyRanked         bool     `json:"only_ranked"`
	Sort               string   `json:"sort" validate:"omitempty,oneof=rank_asc rank_desc name_asc name_desc"`
	Limit              int      `json:"limit" validate:"gte=1,lte=100"`
	Offset             int      `json:"offset" validate:"gte=0"`
}

// joinKey identifies a relation the plan may need to join
type joinKey int

const (
	joinCities joinKey = iota
	joinStates
	joinControls
	joinLevels
	joinLocales
	joinMajors
	joinAdmissionCycles
	joinEnglishRequirements
	joinEnrollmentStats
)

// joinOrder fixes emission order so prerequisite joins come first
// (states needs cities, english_requirements needs admission_cycles)
var joinOrder = []joinKey{
	joinCities,
	joinStates,
	joinControls,
	joinLevels,
	joinLocales,
	joinMajors,
	joinAdmissionCycles,
	joinEnglishRequirements,
	joinEnrollmentStats,
}

var joinClauses = map[joinKey]string{
	joinCities:              "JOIN cities ON cities.id = institutions.city_id",
	joinStates:              "JOIN states ON states.id = cities.state_id",
	joinControls:            "JOIN institution_controls ON institution_controls.id = institutions.control_id",
	joinLevels:              "JOIN institution_levels ON institution_levels.id = institutions.level_id",
	joinLocales:             "JOIN urbanization_locales ON urbanization_locales.id = institutions.locale_id",
	joinMajors:              "JOIN popular_majors ON popular_majors.institution_id = institutions.institution_id",
	joinAdmissionCycles:     "JOIN admission_cycles ON admission_cycles.institution_id = institutions.institution_id",
	joinEnglishRequirements: "JOIN english_requirements ON english_requirements.admission_cycle_id = admission_cycles.id",
	joinEnrollmentStats:     "JOIN enrollment_stats ON enrollment_stats.institution_id = institutions.institution_id",
}

// fanOutJoins are one-to-many relations; joining any of them can duplicate
// institution rows, so the compiled query must deduplicate
var fanOutJoins = map[joinKey]bool{
	joinMajors:              true,
	joinAdmissionCycles:     true,
	joinEnglishRequirements: true,
	joinEnrollmentStats:     true,
}

// predicate is one WHERE clause with its bind arguments
type predicate struct {
	Expr string
	Args []interface{}
}

// searchPlan is the intermediate representation of a search: the set of
// required joins and the predicate list. The page query and the count query
// are both compiled from one plan, so their filters cannot diverge.
type searchPlan struct {
	joins map[joinKey]bool
	preds []predicate
	sort  string
}

func (p *searchPlan) require(keys ...joinKey) {
	for _, k := range keys {
		p.joins[k] = true
	}
}

func (p *searchPlan) where(expr string, args ...interface{}) {
	p.preds = append(p.preds, predicate{Expr: expr, Args: args})
}

// needsDistinct reports whether any required join fans out
func (p *searchPlan) needsDistinct() bool {
	for k := range p.joins {
		if fanOutJoins[k] {
			return true
		}
	}
	return false
}

// orderClause maps the sort key to SQL; unranked institutions always sort
// after ranked ones
func (p *searchPlan) orderClause() string {
	switch p.sort {
	case "rank_desc":
		return "institutions.rank DESC NULLS LAST"
	case "name_asc":
		return "institutions.institution_name ASC"
	case "name_desc":
		return "institutions.institution_name DESC"
	default:
		return "institutions.rank ASC NULLS LAST"
	}
}

// buildSearchPlan translates the filter set into a plan. Every active filter
// registers its predicate and the joins that predicate depends on.
func buildSearchPlan(params *SearchParams) *searchPlan {
	plan := &searchPlan{joins: make(map[joinKey]bool), sort: params.Sort}

	if params.Query != "" {
		plan.where("institutions.institution_name ILIKE ?", "%"+params.Query+"%")
	}

	if params.MinRank != nil {
		plan.where("institutions.rank >= ?", *params.MinRank)
	}

	if params.MaxRank != nil {
		plan.where("institutions.rank <= ?", *params.MaxRank)
	}

	if params.OnlyRanked {
		plan.where("institutions.rank IS NOT NULL")
	}

	if params.InstitutionControl != "" {
		plan.require(joinControls)
		plan.where("institution_controls.description = ?", params.InstitutionControl)
	}

	if params.InstitutionLevel != "" {
		plan.require(joinLevels)
		plan.where("institution_levels.description = ?", params.InstitutionLevel)
	}

	if params.Locale != "" {
		plan.require(joinLocales)
		plan.where("urbanization_locales.description = ?", params.Locale)
	}

	if params.Major != "" {
		plan.require(joinMajors)
		plan.where("popular_majors.major_name = ?", params.Major)
	}

	if params.City != "" {
		plan.require(joinCities)
		plan.where("cities.name = ?", params.City)
	}

	if params.State != "" {
		plan.require(joinCities, joinStates)
		plan.where("states.name = ?", params.State)
	}

	// English thresholds match when the required minimum is at or below the
	// student's own score
	if params.ToeflScore != nil {
		plan.require(joinAdmissionCycles, joinEnglishRequirements)
		plan.where("english_requirements.toefl_minimum <= ?", *params.ToeflScore)
	}

	if params.IeltsScore != nil {
		plan.require(joinAdmissionCycles, joinEnglishRequirements)
		plan.where("english_requirements.ielts_minimum <= ?", *params.IeltsScore)
	}

	if params.MaxTuitionIntl != nil {
		plan.require(joinAdmissionCycles, joinEnglishRequirements)
		plan.where("english_requirements.out_of_state_tuition_intl <= ?", *params.MaxTuitionIntl)
	}

	if params.MinAcceptanceRate != nil {
		plan.require(joinAdmissionCycles)
		plan.where("admission_cycles.percent_admitted_total >= ?", *params.MinAcceptanceRate)
	}

	if params.MinIntlPercent != nil {
		plan.require(joinEnrollmentStats)
		plan.where("enrollment_stats.percent_nonresident >= ?", *params.MinIntlPercent)
	}

	return plan
}

// compile applies the plan's joins and predicates to a base query
func (p *searchPlan) compile(q *gorm.DB) *gorm.DB {
	for _, key := range joinOrder {
		if p.joins[key] {
			q = q.Joins(joinClauses[key])
		}
	}
	for _, pred := range p.preds {
		q = q.Where(pred.Expr, pred.Args...)
	}
	return q
}

// InstitutionSearchService runs filtered institution searches
type InstitutionSearchService struct {
	db *gorm.DB
}

// NewInstitutionSearchService creates a new institution search service
func NewInstitutionSearchService(db *gorm.DB) *InstitutionSearchService {
	return &InstitutionSearchService{db: db}
}

// Search returns one result page plus the exact total for the filter set.
// Both queries come from the same plan; related entities a filter does not
// need are attached by preload so they cannot affect matching or the count.
func (s *InstitutionSearchService) Search(ctx context.Context, params *SearchParams) ([]model.Institution, int64, error) {
	plan := buildSearchPlan(params)

	countQuery := plan.compile(s.db.WithContext(ctx).Model(&model.Institution{}))
	if plan.needsDistinct() {
		countQuery = countQuery.Distinct("institutions.institution_id")
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pageQuery := plan.compile(s.db.WithContext(ctx).Model(&model.Institution{}))
	if plan.needsDistinct() {
		pageQuery = pageQuery.Distinct("institutions.*")
	}

	pageQuery = pageQuery.
		Order(plan.orderClause()).
		Order("institutions.institution_id ASC").
		Limit(params.Limit).
		Offset(params.Offset).
		Preload("City.State").
		Preload("Level").
		Preload("Control").
		Preload("Locale").
		Preload("AdmissionCycles.EnglishRequirements")

	var institutions []model.Institution
	if err := pageQuery.Find(&institutions).Error; err != nil {
		return nil, 0, err
	}

	return institutions, total, nil
}

// GetByID loads one institution with its full nested detail
func (s *InstitutionSearchService) GetByID(ctx context.Context, id uint) (*model.Institution, error) {
	var institution model.Institution
	err := s.db.WithContext(ctx).
		Preload("City.State").
		Preload("Level").
		Preload("Control").
		Preload("Locale").
		Preload("AdmissionCycles.AdmissionRequirements").
		Preload("AdmissionCycles.TestScores").
		Preload("AdmissionCycles.EnglishRequirements").
		Preload("AdmissionCycles.InternationalDocuments").
		Preload("EnrollmentStats").
		Preload("PopularMajors").
		First(&institution, id).Error
	if err != nil {
		return nil, err
	}
	return &institution, nil
}
