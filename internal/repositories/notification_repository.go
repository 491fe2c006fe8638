package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubcentral/internal/models/db_models"
)

type NotificationRepository interface {
	ListAll(ctx context.Context) ([]db_models.Notification, error)
	Add(ctx context.Context, n *db_models.Notification) (string, error)
	Update(ctx context.Context, id string, partial map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type notificationRepository struct {
	store DocumentStore
}

func NewNotificationRepository(store DocumentStore) NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) ListAll(ctx context.Context) ([]db_models.Notification, error) {
	notifications := []db_models.Notification{}
	if err := r.store.List(ctx, ColNotifications, "createdAt", SortDesc, 0, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) Add(ctx context.Context, n *db_models.Notification) (string, error) {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	return r.store.Insert(ctx, ColNotifications, n)
}

func (r *notificationRepository) Update(ctx context.Context, id string, partial map[string]interface{}) error {
	return r.store.Update(ctx, ColNotifications, id, bson.M(partial))
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColNotifications, id)
}
