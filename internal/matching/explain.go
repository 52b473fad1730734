package matching

import "strings"

const (
	maxMatchedSkills = 10
	maxMissingSkills = 5

	strengthThreshold    = 0.7
	improvementThreshold = 0.4
)

// Qualitative tag text, fixed per facet.
const (
	TagSkillsHigh     = "Strong skill alignment"
	TagSkillsLow      = "Skills gap to address"
	TagExperienceHigh = "Relevant experience"
	TagExperienceLow  = "Experience building needed"
	TagInterestsHigh  = "Great interest match"
	TagInterestsLow   = "Consider if interests align"
)

// Explanation is the human-readable breakdown stored alongside a weighted
// score.
type Explanation struct {
	MatchedSkills    []string `json:"matchedSkills"`
	MissingSkills    []string `json:"missingSkills"`
	StrengthAreas    []string `json:"strengthAreas"`
	ImprovementAreas []string `json:"improvementAreas"`
}

// skillsOverlap is bidirectional case-insensitive substring containment:
// "React" matches "React.js" and vice versa. Deliberately loose; false
// positives are accepted in favor of recall.
func skillsOverlap(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// Explain derives matched/missing skills and qualitative tags from the user
// and job skill sets plus the facet scores. Facet scores in
// [improvementThreshold, strengthThreshold) produce no tag: a neutral band.
func Explain(userSkills, jobSkills []string, scores FacetScores) Explanation {
	ex := Explanation{
		MatchedSkills:    []string{},
		MissingSkills:    []string{},
		StrengthAreas:    []string{},
		ImprovementAreas: []string{},
	}

	for _, us := range userSkills {
		for _, js := range jobSkills {
			if skillsOverlap(us, js) {
				ex.MatchedSkills = append(ex.MatchedSkills, us)
				break
			}
		}
		if len(ex.MatchedSkills) >= maxMatchedSkills {
			break
		}
	}

	for _, js := range jobSkills {
		covered := false
		for _, us := range userSkills {
			if skillsOverlap(us, js) {
				covered = true
				break
			}
		}
		if !covered {
			ex.MissingSkills = append(ex.MissingSkills, js)
			if len(ex.MissingSkills) >= maxMissingSkills {
				break
			}
		}
	}

	tag := func(score float64, high, low string) {
		switch {
		case score >= strengthThreshold:
			ex.StrengthAreas = append(ex.StrengthAreas, high)
		case score < improvementThreshold:
			ex.ImprovementAreas = append(ex.ImprovementAreas, low)
		}
	}
	tag(scores.Skills, TagSkillsHigh, TagSkillsLow)
	tag(scores.Experience, TagExperienceHigh, TagExperienceLow)
	tag(scores.Interests, TagInterestsHigh, TagInterestsLow)

	return ex
}
