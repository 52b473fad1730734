package services

import (
	"context"

	"github.com/danverh/careeratlas/internal/models"
	pgrepo "github.com/danverh/careeratlas/internal/repositories/postgres"
	"github.com/danverh/careeratlas/internal/utils"
)

type JobLister interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
}

type jobService struct {
	jobs pgrepo.JobRepository
}

func NewJobService(jobs pgrepo.JobRepository) JobLister {
	return &jobService{jobs: jobs}
}

func (s *jobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	const op = "JobService.ListJobs"

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}
