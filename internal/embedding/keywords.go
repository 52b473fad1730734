package embedding

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danverh/careeratlas/internal/utils"
)

const keywordPromptTemplate = `Extract exactly %d short semantic keywords or phrases (1-3 words each) that best summarize the following text for career matching purposes.

TEXT:
%s

Return ONLY a valid JSON array of strings. No explanations, no markdown, no text before or after the array.`

// KeywordPrompt builds the extraction prompt for one facet text.
func KeywordPrompt(text string) string {
	return fmt.Sprintf(keywordPromptTemplate, MaxKeywords, Truncate(text, MaxInputChars))
}

// ParseKeywords turns a model response into a keyword list. It tolerates
// code-fence wrappers, and if the payload still is not a JSON string array it
// falls back to comma/newline splitting. It never fails on malformed output;
// worst case it returns an empty list.
func ParseKeywords(raw string) []string {
	clean := utils.CleanJSONBlock(raw)

	var arr []string
	if err := json.Unmarshal([]byte(clean), &arr); err == nil {
		return capKeywords(arr)
	}

	// Fallback: naive delimiter split.
	split := strings.FieldsFunc(clean, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]string, 0, len(split))
	for _, s := range split {
		s = strings.Trim(s, " \t\"'[]")
		if s != "" {
			out = append(out, s)
		}
	}
	return capKeywords(out)
}

func capKeywords(kws []string) []string {
	if len(kws) > MaxKeywords {
		return kws[:MaxKeywords]
	}
	return kws
}
