package services

import (
	"strings"
	"testing"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func planPredicates(p *searchPlan) []string {
	exprs := make([]string, 0, len(p.preds))
	for _, pred := range p.preds {
		exprs = append(exprs, pred.Expr)
	}
	return exprs
}

func hasPredicate(p *searchPlan, fragment string) bool {
	for _, expr := range planPredicates(p) {
		if strings.Contains(expr, fragment) {
			return true
		}
	}
	return false
}

func TestBuildSearchPlanEmpty(t *testing.T) {
	plan := buildSearchPlan(&SearchParams{Limit: 20})

	if len(plan.joins) != 0 {
		t.Errorf("expected no joins for empty params, got %d", len(plan.joins))
	}
	if len(plan.preds) != 0 {
		t.Errorf("expected no predicates for empty params, got %d", len(plan.preds))
	}
	if plan.needsDistinct() {
		t.Error("empty plan should not need DISTINCT")
	}
}

func TestBuildSearchPlanJoins(t *testing.T) {
	tests := []struct {
		name      string
		params    SearchParams
		wantJoins []joinKey
		wantPred  string
		distinct  bool
	}{
		{
			name:      "state filter joins cities and states",
			params:    SearchParams{State: "California"},
			wantJoins: []joinKey{joinCities, joinStates},
			wantPred:  "states.name = ?",
		},
		{
			name:      "city filter joins cities only",
			params:    SearchParams{City: "Boston"},
			wantJoins: []joinKey{joinCities},
			wantPred:  "cities.name = ?",
		},
		{
			name:      "control filter joins controls",
			params:    SearchParams{InstitutionControl: "Public"},
			wantJoins: []joinKey{joinControls},
			wantPred:  "institution_controls.description = ?",
		},
		{
			name:      "level filter joins levels",
			params:    SearchParams{InstitutionLevel: "Four or more years"},
			wantJoins: []joinKey{joinLevels},
			wantPred:  "institution_levels.description = ?",
		},
		{
			name:      "locale filter joins locales",
			params:    SearchParams{Locale: "City: Large"},
			wantJoins: []joinKey{joinLocales},
			wantPred:  "urbanization_locales.description = ?",
		},
		{
			name:      "major filter joins popular majors",
			params:    SearchParams{Major: "Computer Science"},
			wantJoins: []joinKey{joinMajors},
			wantPred:  "popular_majors.major_name = ?",
			distinct:  true,
		},
		{
			name:      "toefl filter joins cycles and english requirements",
			params:    SearchParams{ToeflScore: intp(100)},
			wantJoins: []joinKey{joinAdmissionCycles, joinEnglishRequirements},
			wantPred:  "english_requirements.toefl_minimum <= ?",
			distinct:  true,
		},
		{
			name:      "ielts filter joins cycles and english requirements",
			params:    SearchParams{IeltsScore: floatp(7.0)},
			wantJoins: []joinKey{joinAdmissionCycles, joinEnglishRequirements},
			wantPred:  "english_requirements.ielts_minimum <= ?",
			distinct:  true,
		},
		{
			name:      "tuition filter joins cycles and english requirements",
			params:    SearchParams{MaxTuitionIntl: floatp(40000)},
			wantJoins: []joinKey{joinAdmissionCycles, joinEnglishRequirements},
			wantPred:  "english_requirements.out_of_state_tuition_intl <= ?",
			distinct:  true,
		},
		{
			name:      "acceptance rate filter joins admission cycles",
			params:    SearchParams{MinAcceptanceRate: floatp(50)},
			wantJoins: []joinKey{joinAdmissionCycles},
			wantPred:  "admission_cycles.percent_admitted_total >= ?",
			distinct:  true,
		},
		{
			name:      "intl percent filter joins enrollment stats",
			params:    SearchParams{MinIntlPercent: floatp(5)},
			wantJoins: []joinKey{joinEnrollmentStats},
			wantPred:  "enrollment_stats.percent_nonresident >= ?",
			distinct:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := buildSearchPlan(&tt.params)

			if len(plan.joins) != len(tt.wantJoins) {
				t.Errorf("expected %d joins, got %d", len(tt.wantJoins), len(plan.joins))
			}
			for _, key := range tt.wantJoins {
				if !plan.joins[key] {
					t.Errorf("expected join %d to be required", key)
				}
			}
			if !hasPredicate(plan, tt.wantPred) {
				t.Errorf("expected predicate %q, got %v", tt.wantPred, planPredicates(plan))
			}
			if plan.needsDistinct() != tt.distinct {
				t.Errorf("needsDistinct() = %v, want %v", plan.needsDistinct(), tt.distinct)
			}
		})
	}
}

func TestBuildSearchPlanRankFilters(t *testing.T) {
	plan := buildSearchPlan(&SearchParams{
		MinRank:    intp(10),
		MaxRank:    intp(50),
		OnlyRanked: true,
	})

	if len(plan.joins) != 0 {
		t.Errorf("rank filters should not require joins, got %d", len(plan.joins))
	}
	for _, want := range []string{
		"institutions.rank >= ?",
		"institutions.rank <= ?",
		"institutions.rank IS NOT NULL",
	} {
		if !hasPredicate(plan, want) {
			t.Errorf("missing predicate %q", want)
		}
	}
}

func TestBuildSearchPlanQueryUsesILike(t *testing.T) {
	plan := buildSearchPlan(&SearchParams{Query: "tech"})

	if !hasPredicate(plan, "institutions.institution_name ILIKE ?") {
		t.Fatalf("expected ILIKE predicate, got %v", planPredicates(plan))
	}
	if got := plan.preds[0].Args[0]; got != "%tech%" {
		t.Errorf("expected wrapped pattern %%tech%%, got %v", got)
	}
}

func TestBuildSearchPlanCombinedFilters(t *testing.T) {
	// Every active filter must force the join its predicate reads from,
	// even when another filter already joined a different relation.
	plan := buildSearchPlan(&SearchParams{
		State:             "New York",
		MinAcceptanceRate: floatp(20),
	})

	for _, key := range []joinKey{joinCities, joinStates, joinAdmissionCycles} {
		if !plan.joins[key] {
			t.Errorf("expected join %d to be required", key)
		}
	}
	if !plan.needsDistinct() {
		t.Error("admission cycle join fans out and must force DISTINCT")
	}
}

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"", "institutions.rank ASC NULLS LAST"},
		{"rank_asc", "institutions.rank ASC NULLS LAST"},
		{"rank_desc", "institutions.rank DESC NULLS LAST"},
		{"name_asc", "institutions.institution_name ASC"},
		{"name_desc", "institutions.institution_name DESC"},
	}

	for _, tt := range tests {
		plan := &searchPlan{sort: tt.sort}
		if got := plan.orderClause(); got != tt.want {
			t.Errorf("orderClause(%q) = %q, want %q", tt.sort, got, tt.want)
		}
	}
}

func TestJoinOrderCoversAllClauses(t *testing.T) {
	if len(joinOrder) != len(joinClauses) {
		t.Fatalf("joinOrder has %d keys, joinClauses has %d", len(joinOrder), len(joinClauses))
	}
	seen := make(map[joinKey]bool, len(joinOrder))
	for _, key := range joinOrder {
		if seen[key] {
			t.Errorf("join key %d emitted twice", key)
		}
		seen[key] = true
		if _, ok := joinClauses[key]; !ok {
			t.Errorf("join key %d has no clause", key)
		}
	}

	// Prerequisite joins must be emitted before the joins that reference them
	pos := make(map[joinKey]int, len(joinOrder))
	for i, key := range joinOrder {
		pos[key] = i
	}
	if pos[joinStates] < pos[joinCities] {
		t.Error("states join must come after cities join")
	}
	if pos[joinEnglishRequirements] < pos[joinAdmissionCycles] {
		t.Error("english requirements join must come after admission cycles join")
	}
}
