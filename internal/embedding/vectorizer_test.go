package embedding

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordHash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int64
	}{
		{name: "simple ascii", in: "abc", want: 96354},
		{name: "single char", in: "a", want: 97},
		{name: "empty", in: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keywordHash(tt.in))
		})
	}
}

func TestKeywordHashNeverNegative(t *testing.T) {
	// Long strings overflow int32 repeatedly; the absolute value must hold.
	inputs := []string{
		strings.Repeat("z", 100),
		"distributed systems engineering",
		"日本語のキーワード",
	}
	for _, in := range inputs {
		assert.GreaterOrEqual(t, keywordHash(in), int64(0), "input %q", in)
	}
}

func TestVectorizeDeterminism(t *testing.T) {
	kws := []string{"golang", "postgresql", "distributed systems", "docker"}

	a := Vectorize(kws)
	b := Vectorize(kws)

	require.Len(t, a, Dimensions)
	assert.Equal(t, a, b, "identical keyword lists must give bit-identical vectors")
}

func TestVectorizeNormalized(t *testing.T) {
	v := Vectorize([]string{"react", "typescript", "css"})

	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-5)
}

func TestVectorizeZeroWhenNoUsableKeywords(t *testing.T) {
	tests := []struct {
		name string
		kws  []string
	}{
		{name: "empty list", kws: nil},
		{name: "whitespace only", kws: []string{"   ", "\t"}},
		{name: "control chars only", kws: []string{"\x00\x01", "\x1b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vectorize(tt.kws)
			require.Len(t, v, Dimensions)
			for _, x := range v {
				assert.Zero(t, x)
			}
		})
	}
}

func TestVectorizeRankDecay(t *testing.T) {
	// The same keyword contributes more in first position than in second:
	// vectors from swapped orders must differ.
	a := Vectorize([]string{"python", "rust"})
	b := Vectorize([]string{"rust", "python"})
	assert.NotEqual(t, a, b)
}

func TestVectorizeSkipsEmptiesWithoutBurningRank(t *testing.T) {
	// Empty entries are skipped entirely; the decay rank moves on to the
	// next usable keyword.
	a := Vectorize([]string{"python", "", "rust"})
	b := Vectorize([]string{"python", "rust"})
	assert.Equal(t, a, b)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "under limit", in: "short", limit: 10, want: "short"},
		{name: "at limit", in: "12345", limit: 5, want: "12345"},
		{name: "over limit", in: "123456", limit: 5, want: "12345"},
		{name: "multibyte safe", in: "héllo wörld", limit: 7, want: "héllo w"},
		{name: "zero limit", in: "abc", limit: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.limit))
		})
	}
}
