package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danverh/careeratlas/internal/embedding"
	"github.com/danverh/careeratlas/internal/utils"
)

func TestGenerateEmbeddingsPersistsAllThreeFacets(t *testing.T) {
	profiles := newFakeProfileRepo()
	embedder := &countingEmbedder{}
	svc := NewEmbeddingService(profiles, embedder)

	in := EmbeddingInput{
		ResumeText: "Five years building Go services on Kubernetes.",
		Skills:     []string{"Go", "Kubernetes", "PostgreSQL"},
		Interests:  []string{"distributed systems"},
		Name:       "Ada Example",
		Email:      "ada@example.com",
	}
	require.NoError(t, svc.Generate(context.Background(), testUser, in))
	assert.Equal(t, 3, embedder.calls, "one embedding per facet")

	p, err := profiles.GetByUserID(context.Background(), testUser)
	require.NoError(t, err)
	assert.True(t, p.HasEmbeddings())
	require.NotNil(t, p.SkillsEmbedding)
	assert.Len(t, p.SkillsEmbedding.Slice(), embedding.Dimensions)
	assert.NotNil(t, p.EmbeddingUpdatedAt)
	assert.Equal(t, "Ada Example", p.FullName)
}

func TestGenerateEmbeddingsFacetTextsDiffer(t *testing.T) {
	profiles := newFakeProfileRepo()
	svc := NewEmbeddingService(profiles, &countingEmbedder{})

	in := EmbeddingInput{
		ResumeText: "Backend engineer shipping payment systems.",
		Skills:     []string{"Go"},
		Interests:  []string{"fintech"},
	}
	require.NoError(t, svc.Generate(context.Background(), testUser, in))

	p, err := profiles.GetByUserID(context.Background(), testUser)
	require.NoError(t, err)
	assert.NotEqual(t, p.SkillsEmbedding.Slice(), p.ExperienceEmbedding.Slice())
	assert.NotEqual(t, p.SkillsEmbedding.Slice(), p.InterestsEmbedding.Slice())
}

func TestGenerateEmbeddingsRequiresSomeInput(t *testing.T) {
	svc := NewEmbeddingService(newFakeProfileRepo(), &countingEmbedder{})

	err := svc.Generate(context.Background(), testUser, EmbeddingInput{})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	err = svc.Generate(context.Background(), "", EmbeddingInput{Skills: []string{"Go"}})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestGenerateEmbeddingsAbortsOnFacetFailure(t *testing.T) {
	profiles := newFakeProfileRepo()
	svc := NewEmbeddingService(profiles, &countingEmbedder{fail: true})

	err := svc.Generate(context.Background(), testUser, EmbeddingInput{Skills: []string{"Go"}})
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))

	_, err = profiles.GetByUserID(context.Background(), testUser)
	assert.Error(t, err, "no partial profile may be persisted")
}
