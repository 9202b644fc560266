package institution

import (
	"testing"
)

func TestParseSearchParamsDefaults(t *testing.T) {
	params, err := ParseSearchParams(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.Limit != 20 {
		t.Errorf("default limit = %d, want 20", params.Limit)
	}
	if params.Offset != 0 {
		t.Errorf("default offset = %d, want 0", params.Offset)
	}
	if params.OnlyRanked {
		t.Error("only_ranked should default to false")
	}
	if params.MinRank != nil || params.ToeflScore != nil || params.IeltsScore != nil {
		t.Error("absent numeric filters must stay nil")
	}
}

func TestParseSearchParamsNumericFields(t *testing.T) {
	params, err := ParseSearchParams(map[string]string{
		"min_rank":            "10",
		"max_rank":            "50",
		"toefl_score":         "100",
		"ielts_score":         "7.5",
		"max_tuition_intl":    "45000",
		"min_acceptance_rate": "25.5",
		"min_intl_percent":    "5",
		"limit":               "50",
		"offset":              "100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.MinRank == nil || *params.MinRank != 10 {
		t.Errorf("min_rank = %v, want 10", params.MinRank)
	}
	if params.MaxRank == nil || *params.MaxRank != 50 {
		t.Errorf("max_rank = %v, want 50", params.MaxRank)
	}
	if params.ToeflScore == nil || *params.ToeflScore != 100 {
		t.Errorf("toefl_score = %v, want 100", params.ToeflScore)
	}
	if params.IeltsScore == nil || *params.IeltsScore != 7.5 {
		t.Errorf("ielts_score = %v, want 7.5", params.IeltsScore)
	}
	if params.MaxTuitionIntl == nil || *params.MaxTuitionIntl != 45000 {
		t.Errorf("max_tuition_intl = %v, want 45000", params.MaxTuitionIntl)
	}
	if params.MinAcceptanceRate == nil || *params.MinAcceptanceRate != 25.5 {
		t.Errorf("min_acceptance_rate = %v, want 25.5", params.MinAcceptanceRate)
	}
	if params.MinIntlPercent == nil || *params.MinIntlPercent != 5 {
		t.Errorf("min_intl_percent = %v, want 5", params.MinIntlPercent)
	}
	if params.Limit != 50 {
		t.Errorf("limit = %d, want 50", params.Limit)
	}
	if params.Offset != 100 {
		t.Errorf("offset = %d, want 100", params.Offset)
	}
}

func TestParseSearchParamsRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{"non-numeric min_rank", map[string]string{"min_rank": "abc"}},
		{"non-numeric toefl", map[string]string{"toefl_score": "ninety"}},
		{"non-numeric ielts", map[string]string{"ielts_score": "7,5"}},
		{"non-numeric limit", map[string]string{"limit": "twenty"}},
		{"non-numeric offset", map[string]string{"offset": "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSearchParams(tt.values); err == nil {
				t.Errorf("expected error for %v", tt.values)
			}
		})
	}
}

func TestParseSearchParamsLimitCap(t *testing.T) {
	params, err := ParseSearchParams(map[string]string{"limit": "500"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Limit != 100 {
		t.Errorf("limit = %d, want capped at 100", params.Limit)
	}
}

func TestParseSearchParamsOnlyRanked(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"false", false},
		{"1", false},
		{"", false},
	}

	for _, tt := range tests {
		params, err := ParseSearchParams(map[string]string{"only_ranked": tt.raw})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if params.OnlyRanked != tt.want {
			t.Errorf("only_ranked=%q parsed as %v, want %v", tt.raw, params.OnlyRanked, tt.want)
		}
	}
}

func TestParseSearchParamsStringFields(t *testing.T) {
	params, err := ParseSearchParams(map[string]string{
		"query":               "institute",
		"state":               "California",
		"city":                "Berkeley",
		"institution_control": "Public",
		"institution_level":   "Four or more years",
		"locale":              "City: Large",
		"major":               "Computer Science",
		"sort":                "name_asc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if params.Query != "institute" {
		t.Errorf("query = %q", params.Query)
	}
	if params.State != "California" || params.City != "Berkeley" {
		t.Errorf("location filters = %q / %q", params.State, params.City)
	}
	if params.InstitutionControl != "Public" || params.InstitutionLevel != "Four or more years" {
		t.Errorf("classification filters = %q / %q", params.InstitutionControl, params.InstitutionLevel)
	}
	if params.Locale != "City: Large" || params.Major != "Computer Science" {
		t.Errorf("locale/major = %q / %q", params.Locale, params.Major)
	}
	if params.Sort != "name_asc" {
		t.Errorf("sort = %q", params.Sort)
	}
}
