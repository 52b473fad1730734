package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danverh/careeratlas/internal/models"
	"github.com/danverh/careeratlas/internal/utils"
)

type PathRepository interface {
	// Upsert writes the path keyed by (user_id, career_id); regenerating a
	// roadmap replaces the stored one.
	Upsert(ctx context.Context, p *models.SavedPath) error
	GetByUserAndCareer(ctx context.Context, userID, careerID string) (*models.SavedPath, error)
	ListByUser(ctx context.Context, userID string) ([]models.SavedPath, error)
}

type pathRepo struct {
	col *mongo.Collection
}

func NewPathRepo(db *mongo.Database) PathRepository {
	return &pathRepo{col: db.Collection("saved_paths")}
}

func (r *pathRepo) Upsert(ctx context.Context, p *models.SavedPath) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	_, err := r.col.UpdateOne(ctx,
		bson.M{"user_id": p.UserID, "career_id": p.CareerID},
		bson.M{
			"$set": bson.M{
				"path_id":             p.PathID,
				"career_title":        p.CareerTitle,
				"steps":               p.Steps,
				"progress_percentage": p.ProgressPercentage,
				"status":              p.Status,
				"updated_at":          p.UpdatedAt,
			},
			"$setOnInsert": bson.M{
				"user_id":    p.UserID,
				"career_id":  p.CareerID,
				"created_at": p.CreatedAt,
			},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *pathRepo) GetByUserAndCareer(ctx context.Context, userID, careerID string) (*models.SavedPath, error) {
	var p models.SavedPath
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "career_id": careerID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *pathRepo) ListByUser(ctx context.Context, userID string) ([]models.SavedPath, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var paths []models.SavedPath
	if err := cur.All(ctx, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}
