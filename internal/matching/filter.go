package matching

import (
	"strings"

	"github.com/danverh/careeratlas/internal/models"
)

// Filters narrows a match list client-side. Categories combine conjunctively;
// values within a category combine disjunctively. An empty value set means no
// restriction for that category.
type Filters struct {
	// MinScore is a percentage threshold: a match passes when
	// weighted_score*100 >= MinScore.
	MinScore         float64  `json:"minScore"`
	JobTypes         []string `json:"jobTypes"`
	Locations        []string `json:"locations"`
	ExperienceLevels []string `json:"experienceLevels"`
}

// ApplyFilters returns the subset of matches passing every filter category.
// Pure function; input order is preserved.
func ApplyFilters(matches []models.JobMatch, f Filters) []models.JobMatch {
	out := make([]models.JobMatch, 0, len(matches))
	for _, m := range matches {
		if m.WeightedScore*100 < f.MinScore {
			continue
		}
		if !matchesAny(m.Job.JobType, f.JobTypes) {
			continue
		}
		if !matchesLocation(m.Job.Location, f.Locations) {
			continue
		}
		if !matchesAny(m.Job.ExperienceLevel, f.ExperienceLevels) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// matchesAny is a case-insensitive substring test against any accepted value.
// An empty accepted set always passes.
func matchesAny(field string, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	lf := strings.ToLower(field)
	for _, a := range accepted {
		la := strings.ToLower(strings.TrimSpace(a))
		if la == "" {
			continue
		}
		if strings.Contains(lf, la) {
			return true
		}
	}
	return false
}

// matchesLocation special-cases "remote": selecting it accepts any location
// containing "remote".
func matchesLocation(location string, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	ll := strings.ToLower(location)
	for _, a := range accepted {
		la := strings.ToLower(strings.TrimSpace(a))
		if la == "" {
			continue
		}
		if la == "remote" && strings.Contains(ll, "remote") {
			return true
		}
		if strings.Contains(ll, la) {
			return true
		}
	}
	return false
}
