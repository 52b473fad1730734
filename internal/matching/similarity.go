package matching

import "math"

// Fixed facet weights. They sum to 1.0 and are constants of the system, not
// configurable per call.
const (
	WeightSkills     = 0.5
	WeightExperience = 0.3
	WeightInterests  = 0.2
)

// FacetScores holds the three per-axis similarity scores, each in [0,1].
type FacetScores struct {
	Skills     float64
	Experience float64
	Interests  float64
}

// Weighted combines the facet scores into the single ranking number.
func (f FacetScores) Weighted() float64 {
	return f.Skills*WeightSkills + f.Experience*WeightExperience + f.Interests*WeightInterests
}

// Cosine computes cosine similarity between two vectors, clamped to [0,1].
// A zero vector or a length mismatch scores 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return clamp01(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
