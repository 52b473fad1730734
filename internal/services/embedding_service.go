package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/danverh/careeratlas/internal/models"
	pgrepo "github.com/danverh/careeratlas/internal/repositories/postgres"
	"github.com/danverh/careeratlas/internal/utils"
)

// Embedder is what the services need from the embedding generator.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingInput is the profile payload embeddings are generated from.
type EmbeddingInput struct {
	ResumeText      string   `json:"resumeText"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	Experience      string   `json:"experience,omitempty"`
	CareerGoals     []string `json:"careerGoals,omitempty"`
	WorkEnvironment string   `json:"workEnvironment,omitempty"`
	SalaryRange     string   `json:"salaryRange,omitempty"`
	Name            string   `json:"name,omitempty"`
	Email           string   `json:"email,omitempty"`
	LinkedinURL     string   `json:"linkedinUrl,omitempty"`
}

type EmbeddingService interface {
	// Generate computes the three facet vectors and upserts the profile.
	// All three must succeed before anything is persisted.
	Generate(ctx context.Context, userID string, in EmbeddingInput) error
}

type embeddingService struct {
	profiles pgrepo.ProfileRepository
	embedder Embedder
}

func NewEmbeddingService(profiles pgrepo.ProfileRepository, embedder Embedder) EmbeddingService {
	return &embeddingService{profiles: profiles, embedder: embedder}
}

func (s *embeddingService) Generate(ctx context.Context, userID string, in EmbeddingInput) error {
	const op = "EmbeddingService.Generate"

	if userID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if in.ResumeText == "" && len(in.Skills) == 0 && len(in.Interests) == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "resumeText, skills or interests required", nil)
	}

	skillsText := strings.Join(in.Skills, ", ")
	experienceText := strings.TrimSpace(in.Experience + "\n" + in.ResumeText)
	interestsText := strings.Join(append(append([]string{}, in.Interests...), in.CareerGoals...), ", ")

	// The three facet generations are pure functions of their own text and
	// run concurrently; the caller waits for all three before persisting.
	var skillsVec, expVec, intVec []float32
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		skillsVec, err = s.embedder.Embed(gctx, skillsText)
		return err
	})
	g.Go(func() (err error) {
		expVec, err = s.embedder.Embed(gctx, experienceText)
		return err
	})
	g.Go(func() (err error) {
		intVec, err = s.embedder.Embed(gctx, interestsText)
		return err
	})
	if err := g.Wait(); err != nil {
		// One failed facet aborts the whole operation; no 1-of-3 persistence.
		return utils.E(utils.CodeUnavailable, op, "embedding generation failed", err)
	}

	now := time.Now().UTC()
	sv := pgvector.NewVector(skillsVec)
	ev := pgvector.NewVector(expVec)
	iv := pgvector.NewVector(intVec)

	profile := &models.Profile{
		UserID:              userID,
		FullName:            in.Name,
		Email:               in.Email,
		LinkedinURL:         in.LinkedinURL,
		ResumeText:          in.ResumeText,
		Experience:          in.Experience,
		Skills:              in.Skills,
		Interests:           in.Interests,
		CareerGoals:         in.CareerGoals,
		SkillsEmbedding:     &sv,
		ExperienceEmbedding: &ev,
		InterestsEmbedding:  &iv,
		EmbeddingUpdatedAt:  &now,
		UpdatedAt:           now,
	}

	if prefs := buildPreferences(in); prefs != nil {
		profile.Preferences = prefs
	}

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to persist profile embeddings", err)
	}
	return nil
}

func buildPreferences(in EmbeddingInput) datatypes.JSON {
	if in.WorkEnvironment == "" && in.SalaryRange == "" {
		return nil
	}
	b, err := json.Marshal(map[string]string{
		"work_environment": in.WorkEnvironment,
		"salary_range":     in.SalaryRange,
	})
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
