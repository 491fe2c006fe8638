package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"clubcentral/internal/models/db_models"
)

// DashboardRepository serves the admin dashboard's headline counts.
type DashboardRepository interface {
	CountMembers(ctx context.Context) (int64, error)
	CountEvents(ctx context.Context) (int64, error)
	CountPhotos(ctx context.Context) (int64, error)
	CountAchievements(ctx context.Context) (int64, error)
	CountNotifications(ctx context.Context) (int64, error)
	CountPendingAdminRequests(ctx context.Context) (int64, error)
}

type dashboardRepository struct {
	store DocumentStore
}

func NewDashboardRepository(store DocumentStore) DashboardRepository {
	return &dashboardRepository{store: store}
}

func (r *dashboardRepository) CountMembers(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, ColMembers, bson.M{})
}

func (r *dashboardRepository) CountEvents(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, ColEvents, bson.M{})
}

func (r *dashboardRepository) CountPhotos(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, ColPhotos, bson.M{})
}

func (r *dashboardRepository) CountAchievements(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, ColAchievements, bson.M{})
}

func (r *dashboardRepository) CountNotifications(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, ColNotifications, bson.M{})
}

func (r *dashboardRepository) CountPendingAdminRequests(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, ColAdminRequests, bson.M{"status": db_models.AdminRequestPending})
}
