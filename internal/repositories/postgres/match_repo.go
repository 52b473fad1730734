package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/danverh/careeratlas/internal/models"
	"github.com/danverh/careeratlas/internal/utils"
)

type MatchRepository interface {
	// UpsertBatch overwrites prior rows on the (user_id, job_id) key.
	// Last write wins; this is the sole safety net for concurrent refreshes.
	UpsertBatch(ctx context.Context, matches []*models.JobMatch) error
	// ListByUser returns stored matches ordered by weighted_score descending,
	// ties broken by job id for a stable ranking. No cap.
	ListByUser(ctx context.Context, userID string) ([]models.JobMatch, error)
	GetByUserAndJob(ctx context.Context, userID, jobID string) (*models.JobMatch, error)
}

type matchRepo struct {
	db *gorm.DB
}

func NewMatchRepo(db *gorm.DB) MatchRepository {
	return &matchRepo{db: db}
}

func (r *matchRepo) UpsertBatch(ctx context.Context, matches []*models.JobMatch) error {
	if len(matches) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit("Job").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"skills_score", "experience_score", "interests_score",
				"weighted_score", "match_explanation", "computed_at",
			}),
		}).
		Create(matches).Error
}

func (r *matchRepo) ListByUser(ctx context.Context, userID string) ([]models.JobMatch, error) {
	var matches []models.JobMatch
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("weighted_score DESC").
		Order("job_id ASC").
		Find(&matches).Error
	return matches, err
}

func (r *matchRepo) GetByUserAndJob(ctx context.Context, userID, jobID string) (*models.JobMatch, error) {
	var m models.JobMatch
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &m, err
}
