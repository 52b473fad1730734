package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/danverh/careeratlas/internal/models"
	"github.com/danverh/careeratlas/internal/utils"
)

type ResumeFileRepository interface {
	Insert(ctx context.Context, f *models.ResumeFile) error
	ListByUser(ctx context.Context, userID string) ([]models.ResumeFile, error)
	// GetByUserAndID scopes the lookup to the owner; another user's file id
	// behaves like a missing row.
	GetByUserAndID(ctx context.Context, userID, id string) (*models.ResumeFile, error)
}

type resumeFileRepo struct {
	db *gorm.DB
}

func NewResumeFileRepo(db *gorm.DB) ResumeFileRepository {
	return &resumeFileRepo{db: db}
}

func (r *resumeFileRepo) Insert(ctx context.Context, f *models.ResumeFile) error {
	err := r.db.WithContext(ctx).Create(f).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.E(utils.CodeConflict, "ResumeFileRepo.Insert", "resume file already exists", err)
	}
	return err
}

func (r *resumeFileRepo) GetByUserAndID(ctx context.Context, userID, id string) (*models.ResumeFile, error) {
	var f models.ResumeFile
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *resumeFileRepo) ListByUser(ctx context.Context, userID string) ([]models.ResumeFile, error) {
	var files []models.ResumeFile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("upload_at DESC").
		Find(&files).Error
	return files, err
}
