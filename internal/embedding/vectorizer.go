package embedding

import (
	"math"
	"strings"
	"unicode"
)

const (
	// Dimensions is the fixed embedding length; it matches the vector(768)
	// columns on profiles and jobs.
	Dimensions = 768

	// MaxKeywords is how many keywords the extraction call is asked for.
	MaxKeywords = 50

	// MaxInputChars bounds the text sent to the extraction call.
	MaxInputChars = 3000
)

// keywordHash is the classic polynomial string hash (h = h*31 + codepoint),
// overflow-truncated to signed 32-bit, absolute value. Keyword identity, not
// cryptography: the same keyword must always land on the same hash.
func keywordHash(s string) int64 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// sanitizeKeyword drops control runes and surrounding whitespace.
func sanitizeKeyword(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// Vectorize projects a keyword list onto a fixed-length vector through a bank
// of sine basis functions, rank-decayed so earlier keywords contribute more,
// then L2-normalizes. Deterministic: the same keyword list always produces a
// bit-identical vector. An empty or fully-unusable list yields the zero
// vector.
func Vectorize(keywords []string) []float32 {
	acc := make([]float64, Dimensions)

	rank := 0
	for _, kw := range keywords {
		kw = sanitizeKeyword(kw)
		if kw == "" {
			continue
		}
		h := float64(keywordHash(kw))
		decay := 1.0 / float64(rank+1)
		for j := 0; j < Dimensions; j++ {
			acc[j] += math.Sin(h*float64(j+1)*0.001) * decay
		}
		rank++
	}

	var sum float64
	for _, v := range acc {
		sum += v * v
	}
	norm := math.Sqrt(sum)

	out := make([]float32, Dimensions)
	if norm == 0 {
		return out
	}
	for j, v := range acc {
		out[j] = float32(v / norm)
	}
	return out
}

// Truncate bounds text to the extraction call's character budget without
// splitting a rune.
func Truncate(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
