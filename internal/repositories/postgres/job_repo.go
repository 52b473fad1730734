package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/danverh/careeratlas/internal/models"
	"github.com/danverh/careeratlas/internal/utils"
)

type JobRepository interface {
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	// ListWithEmbeddings returns only jobs carrying all three facet vectors;
	// the rest are invisible to matching.
	ListWithEmbeddings(ctx context.Context) ([]models.Job, error)
	InsertBatch(ctx context.Context, jobs []*models.Job) error
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Count(&n).Error
	return n, err
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func (r *jobRepo) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) ListWithEmbeddings(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("skills_embedding IS NOT NULL").
		Where("experience_embedding IS NOT NULL").
		Where("interests_embedding IS NOT NULL").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) InsertBatch(ctx context.Context, jobs []*models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(jobs).Error
}
