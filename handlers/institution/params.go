package institution

import (
	"fmt"
	"strconv"

	"github.com/uniscout/uniscout-api/services"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// ParseSearchParams coerces the raw query-string values into a typed filter
// set. Unparseable values are rejected here so the query builder only ever
// sees valid input. Range checks are left to the validator struct tags.
func ParseSearchParams(values map[string]string) (*services.SearchParams, error) {
	params := &services.SearchParams{
		Query:              values["query"],
		State:              values["state"],
		City:               values["city"],
		InstitutionControl: values["institution_control"],
		InstitutionLevel:   values["institution_level"],
		Locale:             values["locale"],
		Major:              values["major"],
		Sort:               values["sort"],
		OnlyRanked:         values["only_ranked"] == "true",
		Limit:              defaultLimit,
	}

	var err error
	if params.MinRank, err = intField(values, "min_rank"); err != nil {
		return nil, err
	}
	if params.MaxRank, err = intField(values, "max_rank"); err != nil {
		return nil, err
	}
	if params.ToeflScore, err = intField(values, "toefl_score"); err != nil {
		return nil, err
	}
	if params.IeltsScore, err = floatField(values, "ielts_score"); err != nil {
		return nil, err
	}
	if params.MaxTuitionIntl, err = floatField(values, "max_tuition_intl"); err != nil {
		return nil, err
	}
	if params.MinAcceptanceRate, err = floatField(values, "min_acceptance_rate"); err != nil {
		return nil, err
	}
	if params.MinIntlPercent, err = floatField(values, "min_intl_percent"); err != nil {
		return nil, err
	}

	if raw, ok := values["limit"]; ok && raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid limit: %q", raw)
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		params.Limit = limit
	}

	if raw, ok := values["offset"]; ok && raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid offset: %q", raw)
		}
		params.Offset = offset
	}

	return params, nil
}

func intField(values map[string]string, name string) (*int, error) {
	raw, ok := values[name]
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &n, nil
}

func floatField(values map[string]string, name string) (*float64, error) {
	raw, ok := values[name]
	if !ok || raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &f, nil
}
