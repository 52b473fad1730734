package embedding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "strict json array",
			raw:  `["go", "kubernetes", "grpc"]`,
			want: []string{"go", "kubernetes", "grpc"},
		},
		{
			name: "fenced json array",
			raw:  "```json\n[\"react\", \"css\"]\n```",
			want: []string{"react", "css"},
		},
		{
			name: "bare fence",
			raw:  "```\n[\"sql\"]\n```",
			want: []string{"sql"},
		},
		{
			name: "fallback comma split",
			raw:  "python, pandas, numpy",
			want: []string{"python", "pandas", "numpy"},
		},
		{
			name: "fallback newline split",
			raw:  "terraform\naws\nci/cd",
			want: []string{"terraform", "aws", "ci/cd"},
		},
		{
			name: "malformed json falls back without error",
			raw:  `["golang", "docker"`,
			want: []string{"golang", "docker"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKeywords(tt.raw)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestParseKeywordsCapped(t *testing.T) {
	parts := make([]string, 0, MaxKeywords+20)
	for i := 0; i < MaxKeywords+20; i++ {
		parts = append(parts, "kw")
	}
	got := ParseKeywords(strings.Join(parts, ","))
	assert.Len(t, got, MaxKeywords)
}

func TestKeywordPromptTruncatesInput(t *testing.T) {
	long := strings.Repeat("x", MaxInputChars*2)
	prompt := KeywordPrompt(long)
	assert.NotContains(t, prompt, strings.Repeat("x", MaxInputChars+1))
	assert.Contains(t, prompt, strings.Repeat("x", MaxInputChars))
}
