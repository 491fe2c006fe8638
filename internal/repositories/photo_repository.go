package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubcentral/internal/models/db_models"
)

type PhotoRepository interface {
	ListAll(ctx context.Context) ([]db_models.Photo, error)
	ListSliderPhotos(ctx context.Context) ([]db_models.Photo, error)
	Add(ctx context.Context, photo *db_models.Photo) (string, error)
	Update(ctx context.Context, id string, partial map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type photoRepository struct {
	store DocumentStore
}

func NewPhotoRepository(store DocumentStore) PhotoRepository {
	return &photoRepository{store: store}
}

func (r *photoRepository) ListAll(ctx context.Context) ([]db_models.Photo, error) {
	photos := []db_models.Photo{}
	if err := r.store.List(ctx, ColPhotos, "uploadedAt", SortDesc, 0, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) ListSliderPhotos(ctx context.Context) ([]db_models.Photo, error) {
	photos := []db_models.Photo{}
	err := r.store.ListFiltered(ctx, ColPhotos, bson.M{"isSliderPhoto": true}, "uploadedAt", SortDesc, 0, &photos)
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) Add(ctx context.Context, photo *db_models.Photo) (string, error) {
	if photo.ID.IsZero() {
		photo.ID = primitive.NewObjectID()
	}
	if photo.UploadedAt.IsZero() {
		photo.UploadedAt = time.Now().UTC()
	}
	return r.store.Insert(ctx, ColPhotos, photo)
}

func (r *photoRepository) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	return r.store.Update(ctx, ColPhotos, id, bson.M(partial))
}

func (r *photoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColPhotos, id)
}
