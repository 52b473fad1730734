package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/danverh/careeratlas/internal/models"
	pgrepo "github.com/danverh/careeratlas/internal/repositories/postgres"
	"github.com/danverh/careeratlas/internal/storage"
	"github.com/danverh/careeratlas/internal/utils"
)

// downloadURLTTL bounds how long an issued resume link stays valid.
const downloadURLTTL = 15 * time.Minute

type ResumeFileService interface {
	Upload(ctx context.Context, userID string, fileName string, fileSize int, mimeType string, r io.Reader) (*models.ResumeFile, error)
	ListMine(ctx context.Context, userID string) ([]models.ResumeFile, error)
	// DownloadURL issues a short-lived signed link for one of the caller's
	// files. Objects stay private; this is the only read path.
	DownloadURL(ctx context.Context, userID, fileID string) (string, error)
}

type resumeFileService struct {
	repo     pgrepo.ResumeFileRepository
	uploader storage.Uploader
	signer   storage.Signer
}

func NewResumeFileService(repo pgrepo.ResumeFileRepository, uploader storage.Uploader, signer storage.Signer) ResumeFileService {
	return &resumeFileService{repo: repo, uploader: uploader, signer: signer}
}

func (s *resumeFileService) Upload(ctx context.Context, userID string, fileName string, fileSize int, mimeType string, r io.Reader) (*models.ResumeFile, error) {
	const op = "ResumeFileService.Upload"

	if userID == "" || fileName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and file_name are required", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	objectName := "resumes/" + userID + "/" + uuid.NewString() + "-" + fileName
	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, r)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}

	row := &models.ResumeFile{
		ID:       uuid.NewString(),
		UserID:   userID,
		FileName: fileName,
		FilePath: storedPath,
		FileSize: fileSize,
		MimeType: mimeType,
		UploadAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		if utils.IsCode(err, utils.CodeConflict) {
			return nil, err
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to persist resume file metadata", err)
	}
	return row, nil
}

func (s *resumeFileService) DownloadURL(ctx context.Context, userID, fileID string) (string, error) {
	const op = "ResumeFileService.DownloadURL"

	if userID == "" || fileID == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id and file_id are required", nil)
	}
	if s.signer == nil {
		return "", utils.E(utils.CodeInternal, op, "signer is not configured", nil)
	}

	f, err := s.repo.GetByUserAndID(ctx, userID, fileID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeNotFound, op, "resume file not found", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to load resume file", err)
	}

	url, err := s.signer.SignedGetURL(ctx, f.FilePath, downloadURLTTL)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to sign download url", err)
	}
	return url, nil
}

func (s *resumeFileService) ListMine(ctx context.Context, userID string) ([]models.ResumeFile, error) {
	const op = "ResumeFileService.ListMine"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	files, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list resume files", err)
	}
	return files, nil
}
