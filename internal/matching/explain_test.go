package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplainSubstringOverlap(t *testing.T) {
	// "React" overlaps "React.js" in both directions; "React.js" is not
	// missing because a user skill covers it.
	ex := Explain(
		[]string{"React", "Python"},
		[]string{"React.js", "SQL"},
		FacetScores{Skills: 0.5, Experience: 0.5, Interests: 0.5},
	)

	assert.Equal(t, []string{"React"}, ex.MatchedSkills)
	assert.Equal(t, []string{"SQL"}, ex.MissingSkills)
}

func TestExplainCaps(t *testing.T) {
	var userSkills, jobSkills []string
	for i := 0; i < 15; i++ {
		s := fmt.Sprintf("skill-%02d", i)
		userSkills = append(userSkills, s)
		jobSkills = append(jobSkills, s)
	}
	for i := 0; i < 9; i++ {
		jobSkills = append(jobSkills, fmt.Sprintf("uncovered-%02d", i))
	}

	ex := Explain(userSkills, jobSkills, FacetScores{Skills: 0.5, Experience: 0.5, Interests: 0.5})

	assert.LessOrEqual(t, len(ex.MatchedSkills), 10)
	assert.LessOrEqual(t, len(ex.MissingSkills), 5)
	assert.Len(t, ex.MatchedSkills, 10)
	assert.Len(t, ex.MissingSkills, 5)
}

func TestExplainTags(t *testing.T) {
	tests := []struct {
		name            string
		scores          FacetScores
		wantStrength    []string
		wantImprovement []string
	}{
		{
			name:            "high skills low interests",
			scores:          FacetScores{Skills: 0.8, Experience: 0.5, Interests: 0.2},
			wantStrength:    []string{TagSkillsHigh},
			wantImprovement: []string{TagInterestsLow},
		},
		{
			name:            "all high",
			scores:          FacetScores{Skills: 0.9, Experience: 0.7, Interests: 0.75},
			wantStrength:    []string{TagSkillsHigh, TagExperienceHigh, TagInterestsHigh},
			wantImprovement: []string{},
		},
		{
			name:            "all low",
			scores:          FacetScores{Skills: 0.1, Experience: 0.3, Interests: 0.39},
			wantStrength:    []string{},
			wantImprovement: []string{TagSkillsLow, TagExperienceLow, TagInterestsLow},
		},
		{
			name:            "neutral band produces no tags",
			scores:          FacetScores{Skills: 0.4, Experience: 0.5, Interests: 0.69},
			wantStrength:    []string{},
			wantImprovement: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := Explain(nil, nil, tt.scores)
			assert.Equal(t, tt.wantStrength, ex.StrengthAreas)
			assert.Equal(t, tt.wantImprovement, ex.ImprovementAreas)
		})
	}
}

func TestExplainCaseInsensitive(t *testing.T) {
	ex := Explain([]string{"python"}, []string{"PYTHON"}, FacetScores{})
	assert.Equal(t, []string{"python"}, ex.MatchedSkills)
	assert.Empty(t, ex.MissingSkills)
}

func TestExplainEmptySetsStayEmptyArrays(t *testing.T) {
	ex := Explain(nil, nil, FacetScores{Skills: 0.5, Experience: 0.5, Interests: 0.5})
	assert.NotNil(t, ex.MatchedSkills)
	assert.NotNil(t, ex.MissingSkills)
	assert.NotNil(t, ex.StrengthAreas)
	assert.NotNil(t, ex.ImprovementAreas)
}
