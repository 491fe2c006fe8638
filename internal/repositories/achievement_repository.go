package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubcentral/internal/models/db_models"
)

type AchievementRepository interface {
	ListAll(ctx context.Context) ([]db_models.Achievement, error)
	Add(ctx context.Context, a *db_models.Achievement) (string, error)
	Update(ctx context.Context, id string, partial map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type achievementRepository struct {
	store DocumentStore
}

func NewAchievementRepository(store DocumentStore) AchievementRepository {
	return &achievementRepository{store: store}
}

func (r *achievementRepository) ListAll(ctx context.Context) ([]db_models.Achievement, error) {
	achievements := []db_models.Achievement{}
	if err := r.store.List(ctx, ColAchievements, "date", SortDesc, 0, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (r *achievementRepository) Add(ctx context.Context, a *db_models.Achievement) (string, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	return r.store.Insert(ctx, ColAchievements, a)
}

func (r *achievementRepository) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	return r.store.Update(ctx, ColAchievements, id, bson.M(partial))
}

func (r *achievementRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColAchievements, id)
}
