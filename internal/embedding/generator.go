package embedding

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/danverh/careeratlas/internal/providers/llm"
	"github.com/danverh/careeratlas/internal/utils"
)

// Generator turns free text into a comparable fixed-length vector:
// semantic keyword extraction via the LLM provider, then deterministic
// projection (Vectorize). No real embedding model is involved, so similar
// keyword sets produce similar vectors without external embedding infra.
type Generator struct {
	llm llm.Provider
	log *logrus.Logger
}

func NewGenerator(provider llm.Provider, log *logrus.Logger) *Generator {
	if log == nil {
		log = logrus.New()
	}
	return &Generator{llm: provider, log: log}
}

// Embed produces the 768-dimension vector for one facet text. An extraction
// call failure is fatal for this facet: no fallback vector is synthesized.
func (g *Generator) Embed(ctx context.Context, text string) ([]float32, error) {
	const op = "Generator.Embed"

	if g.llm == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "no language model provider configured", nil)
	}

	raw, err := g.llm.Complete(ctx, KeywordPrompt(text))
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "keyword extraction failed", err)
	}

	keywords := ParseKeywords(raw)
	if len(keywords) == 0 {
		g.log.WithField("text_len", len(text)).Warn("keyword extraction yielded no usable keywords")
	}
	return Vectorize(keywords), nil
}
