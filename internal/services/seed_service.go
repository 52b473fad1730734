package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/sirupsen/logrus"

	"github.com/danverh/careeratlas/internal/models"
	pgrepo "github.com/danverh/careeratlas/internal/repositories/postgres"
	"github.com/danverh/careeratlas/internal/seed"
	"github.com/danverh/careeratlas/internal/utils"
)

type SeedResult struct {
	Success       bool  `json:"success"`
	Skipped       bool  `json:"skipped,omitempty"`
	ExistingCount int64 `json:"existingCount,omitempty"`
	Inserted      int   `json:"inserted,omitempty"`
}

type SeedService interface {
	// SeedJobs embeds and inserts the fixed catalog. Idempotent: a non-empty
	// job table means skip, with zero inserts and zero embedding calls.
	SeedJobs(ctx context.Context) (*SeedResult, error)
}

type seedService struct {
	jobs     pgrepo.JobRepository
	embedder Embedder
	log      *logrus.Logger
}

func NewSeedService(jobs pgrepo.JobRepository, embedder Embedder, log *logrus.Logger) SeedService {
	if log == nil {
		log = logrus.New()
	}
	return &seedService{jobs: jobs, embedder: embedder, log: log}
}

func (s *seedService) SeedJobs(ctx context.Context) (*SeedResult, error) {
	const op = "SeedService.SeedJobs"

	count, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count jobs", err)
	}
	if count > 0 {
		return &SeedResult{Success: true, Skipped: true, ExistingCount: count}, nil
	}

	catalog := seed.Catalog()
	rows := make([]*models.Job, 0, len(catalog))
	now := time.Now().UTC()

	for _, cj := range catalog {
		job := &models.Job{
			ID:              uuid.NewString(),
			ExternalID:      cj.ExternalID,
			Title:           cj.Title,
			Company:         cj.Company,
			Location:        cj.Location,
			Salary:          cj.Salary,
			JobType:         cj.JobType,
			ExperienceLevel: cj.ExperienceLevel,
			RequiredSkills:  cj.RequiredSkills,
			Description:     cj.Description,
			CreatedAt:       now,
		}

		if err := s.embedJob(ctx, job, cj); err != nil {
			return nil, utils.E(utils.CodeUnavailable, op, "failed to embed catalog job", err)
		}
		rows = append(rows, job)
	}

	if err := s.jobs.InsertBatch(ctx, rows); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to insert catalog jobs", err)
	}

	s.log.WithField("inserted", len(rows)).Info("seeded job catalog")
	return &SeedResult{Success: true, Inserted: len(rows)}, nil
}

// embedJob fills the three facet vectors from different slices of the
// posting: required skills, description plus level, and title/company/type.
func (s *seedService) embedJob(ctx context.Context, job *models.Job, cj seed.CatalogJob) error {
	skillsText := strings.Join(cj.RequiredSkills, ", ")
	experienceText := cj.Description + "\n" + cj.ExperienceLevel
	interestsText := strings.Join([]string{cj.Title, cj.Company, cj.JobType}, ", ")

	sv, err := s.embedder.Embed(ctx, skillsText)
	if err != nil {
		return err
	}
	ev, err := s.embedder.Embed(ctx, experienceText)
	if err != nil {
		return err
	}
	iv, err := s.embedder.Embed(ctx, interestsText)
	if err != nil {
		return err
	}

	skillsVec := pgvector.NewVector(sv)
	expVec := pgvector.NewVector(ev)
	intVec := pgvector.NewVector(iv)
	now := time.Now().UTC()

	job.SkillsEmbedding = &skillsVec
	job.ExperienceEmbedding = &expVec
	job.InterestsEmbedding = &intVec
	job.EmbeddingUpdatedAt = &now
	return nil
}
