package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danverh/careeratlas/internal/models"
)

func mkMatch(weighted float64, jobType, location, level string) models.JobMatch {
	return models.JobMatch{
		WeightedScore: weighted,
		Job: models.Job{
			JobType:         jobType,
			Location:        location,
			ExperienceLevel: level,
		},
	}
}

func TestApplyFiltersMinScore(t *testing.T) {
	matches := []models.JobMatch{
		mkMatch(0.80, "Full-time", "Remote", "Senior"),
		mkMatch(0.50, "Full-time", "Remote", "Senior"),
		mkMatch(0.49, "Full-time", "Remote", "Senior"),
	}

	got := ApplyFilters(matches, Filters{MinScore: 50})
	require.Len(t, got, 2)
	assert.Equal(t, 0.80, got[0].WeightedScore)
	assert.Equal(t, 0.50, got[1].WeightedScore)
}

func TestApplyFiltersConjunctive(t *testing.T) {
	matches := []models.JobMatch{
		mkMatch(0.80, "Full-time", "Remote", "Senior"),      // passes both
		mkMatch(0.80, "Contract", "Remote", "Senior"),       // wrong type
		mkMatch(0.30, "Full-time", "Remote", "Senior"),      // below score
		mkMatch(0.80, "Full-time", "Austin, TX", "Senior"),  // wrong location
	}

	got := ApplyFilters(matches, Filters{
		MinScore:  50,
		JobTypes:  []string{"Full-time"},
		Locations: []string{"remote"},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Remote", got[0].Job.Location)
}

func TestApplyFiltersDisjunctiveWithinCategory(t *testing.T) {
	matches := []models.JobMatch{
		mkMatch(0.9, "Full-time", "Remote", "Senior"),
		mkMatch(0.9, "Contract", "Remote", "Senior"),
		mkMatch(0.9, "Part-time", "Remote", "Senior"),
	}

	got := ApplyFilters(matches, Filters{JobTypes: []string{"Full-time", "Contract"}})
	assert.Len(t, got, 2)
}

func TestApplyFiltersCaseInsensitiveSubstring(t *testing.T) {
	matches := []models.JobMatch{
		mkMatch(0.9, "full-TIME", "Remote", "Senior"),
	}

	got := ApplyFilters(matches, Filters{JobTypes: []string{"Full-time"}})
	assert.Len(t, got, 1)
}

func TestApplyFiltersRemoteSpecialCase(t *testing.T) {
	matches := []models.JobMatch{
		mkMatch(0.9, "Full-time", "Remote (US)", "Senior"),
		mkMatch(0.9, "Full-time", "Hybrid remote, Berlin", "Senior"),
		mkMatch(0.9, "Full-time", "New York, NY", "Senior"),
	}

	got := ApplyFilters(matches, Filters{Locations: []string{"remote"}})
	assert.Len(t, got, 2)
}

func TestApplyFiltersEmptyMeansNoRestriction(t *testing.T) {
	matches := []models.JobMatch{
		mkMatch(0.1, "Internship", "Anywhere", "Entry-level"),
		mkMatch(0.0, "", "", ""),
	}

	got := ApplyFilters(matches, Filters{})
	assert.Len(t, got, 2)
}

func TestApplyFiltersExperienceLevel(t *testing.T) {
	matches := []models.JobMatch{
		mkMatch(0.9, "Full-time", "Remote", "Senior"),
		mkMatch(0.9, "Full-time", "Remote", "Mid-level"),
	}

	got := ApplyFilters(matches, Filters{ExperienceLevels: []string{"senior"}})
	require.Len(t, got, 1)
	assert.Equal(t, "Senior", got[0].Job.ExperienceLevel)
}
