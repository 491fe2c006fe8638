package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubcentral/internal/models/db_models"
	"clubcentral/pkg/utils"
)

type AdminRequestRepository interface {
	ListAll(ctx context.Context) ([]db_models.AdminRequest, error)
	GetByID(ctx context.Context, id string) (*db_models.AdminRequest, error)
	Add(ctx context.Context, req *db_models.AdminRequest) (string, error)
	// UpdateStatus overwrites the status field unconditionally; which
	// transitions make sense is the admin UI's problem.
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type adminRequestRepository struct {
	store DocumentStore
}

func NewAdminRequestRepository(store DocumentStore) AdminRequestRepository {
	return &adminRequestRepository{store: store}
}

func (r *adminRequestRepository) ListAll(ctx context.Context) ([]db_models.AdminRequest, error) {
	requests := []db_models.AdminRequest{}
	if err := r.store.List(ctx, ColAdminRequests, "requestedAt", SortDesc, 0, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *adminRequestRepository) GetByID(ctx context.Context, id string) (*db_models.AdminRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	var req db_models.AdminRequest
	if err := r.store.FindOne(ctx, ColAdminRequests, bson.M{"_id": oid}, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *adminRequestRepository) Add(ctx context.Context, req *db_models.AdminRequest) (string, error) {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	if req.Status == "" {
		req.Status = db_models.AdminRequestPending
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now().UTC()
	}
	return r.store.Insert(ctx, ColAdminRequests, req)
}

func (r *adminRequestRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.store.Update(ctx, ColAdminRequests, id, bson.M{"status": status})
}

func (r *adminRequestRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColAdminRequests, id)
}
