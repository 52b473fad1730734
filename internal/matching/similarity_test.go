package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical unit vectors", a: []float32{1, 0, 0}, b: []float32{1, 0, 0}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite clamped to zero", a: []float32{1, 0}, b: []float32{-1, 0}, want: 0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "length mismatch", a: []float32{1}, b: []float32{1, 0}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCosineScaleInvariant(t *testing.T) {
	a := []float32{0.3, 0.5, 0.8}
	b := []float32{0.6, 1.0, 1.6}
	assert.InDelta(t, 1.0, Cosine(a, b), 1e-6)
}

func TestWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, WeightSkills+WeightExperience+WeightInterests, 1e-12)
}

func TestFacetScoresWeighted(t *testing.T) {
	tests := []struct {
		name   string
		scores FacetScores
		want   float64
	}{
		{name: "all zero", scores: FacetScores{}, want: 0},
		{name: "all one", scores: FacetScores{Skills: 1, Experience: 1, Interests: 1}, want: 1},
		{name: "mixed", scores: FacetScores{Skills: 0.8, Experience: 0.5, Interests: 0.2}, want: 0.59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scores.Weighted()
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t,
				tt.scores.Skills*WeightSkills+tt.scores.Experience*WeightExperience+tt.scores.Interests*WeightInterests,
				got, 1e-12)
		})
	}
}
