package services_test

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/services"
	"clubcentral/pkg/utils"
)

type fakeAdminRequestRepo struct {
	requests map[string]*db_models.AdminRequest
}

func newFakeAdminRequestRepo() *fakeAdminRequestRepo {
	return &fakeAdminRequestRepo{requests: make(map[string]*db_models.AdminRequest)}
}

func (f *fakeAdminRequestRepo) ListAll(ctx context.Context) ([]db_models.AdminRequest, error) {
	out := []db_models.AdminRequest{}
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeAdminRequestRepo) GetByID(ctx context.Context, id string) (*db_models.AdminRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	stored := *r
	return &stored, nil
}

func (f *fakeAdminRequestRepo) Add(ctx context.Context, req *db_models.AdminRequest) (string, error) {
	if req.ID.IsZero() {
		req.ID = primitive.NewObjectID()
	}
	stored := *req
	f.requests[req.ID.Hex()] = &stored
	return req.ID.Hex(), nil
}

func (f *fakeAdminRequestRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	r, ok := f.requests[id]
	if !ok {
		return utils.ErrNotFound
	}
	r.Status = status
	return nil
}

func (f *fakeAdminRequestRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return utils.ErrNotFound
	}
	delete(f.requests, id)
	return nil
}

type fakeMailService struct {
	sent []string
	err  error
}

func (f *fakeMailService) SendAdminRequestDecision(to, name, status string) error {
	f.sent = append(f.sent, to+":"+status)
	return f.err
}

func TestAdminRequestService_Submit(t *testing.T) {
	repo := newFakeAdminRequestRepo()
	svc := services.NewAdminRequestService(repo, &fakeMailService{})

	req, err := svc.Submit(context.Background(), request_models.SubmitAdminRequest{
		Name:   "Asha",
		Email:  "asha@club.org",
		Reason: "I run the events page",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if req.Status != db_models.AdminRequestPending {
		t.Errorf("new request status = %q, want pending", req.Status)
	}
	if req.ID.IsZero() {
		t.Error("new request has no id")
	}
}

func TestAdminRequestService_UpdateStatus(t *testing.T) {
	// every transition between the three statuses is allowed, including
	// re-approving a rejection and revoking an approval
	transitions := []struct {
		from string
		to   string
	}{
		{db_models.AdminRequestPending, db_models.AdminRequestApproved},
		{db_models.AdminRequestPending, db_models.AdminRequestRejected},
		{db_models.AdminRequestApproved, db_models.AdminRequestRejected},
		{db_models.AdminRequestRejected, db_models.AdminRequestApproved},
		{db_models.AdminRequestApproved, db_models.AdminRequestPending},
		{db_models.AdminRequestApproved, db_models.AdminRequestApproved},
	}

	for _, tr := range transitions {
		t.Run(tr.from+" to "+tr.to, func(t *testing.T) {
			repo := newFakeAdminRequestRepo()
			mail := &fakeMailService{}
			svc := services.NewAdminRequestService(repo, mail)

			id, _ := repo.Add(context.Background(), &db_models.AdminRequest{
				Name:   "Asha",
				Email:  "asha@club.org",
				Status: tr.from,
			})

			if err := svc.UpdateStatus(context.Background(), id, tr.to); err != nil {
				t.Fatalf("UpdateStatus(%s -> %s) error = %v", tr.from, tr.to, err)
			}

			stored, _ := repo.GetByID(context.Background(), id)
			if stored.Status != tr.to {
				t.Errorf("stored status = %q, want %q", stored.Status, tr.to)
			}
			if len(mail.sent) != 1 {
				t.Errorf("expected one decision email, got %d", len(mail.sent))
			}
		})
	}
}

func TestAdminRequestService_UpdateStatus_Invalid(t *testing.T) {
	repo := newFakeAdminRequestRepo()
	svc := services.NewAdminRequestService(repo, &fakeMailService{})

	id, _ := repo.Add(context.Background(), &db_models.AdminRequest{
		Email:  "asha@club.org",
		Status: db_models.AdminRequestPending,
	})

	if err := svc.UpdateStatus(context.Background(), id, "maybe"); !errors.Is(err, utils.ErrInvalidStatus) {
		t.Errorf("error = %v, want ErrInvalidStatus", err)
	}

	stored, _ := repo.GetByID(context.Background(), id)
	if stored.Status != db_models.AdminRequestPending {
		t.Errorf("status changed on invalid input: %q", stored.Status)
	}
}

func TestAdminRequestService_UpdateStatus_UnknownID(t *testing.T) {
	svc := services.NewAdminRequestService(newFakeAdminRequestRepo(), &fakeMailService{})

	err := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), db_models.AdminRequestApproved)
	if !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestAdminRequestService_MailFailureDoesNotUndoStatus(t *testing.T) {
	repo := newFakeAdminRequestRepo()
	mail := &fakeMailService{err: errors.New("smtp down")}
	svc := services.NewAdminRequestService(repo, mail)

	id, _ := repo.Add(context.Background(), &db_models.AdminRequest{
		Email:  "asha@club.org",
		Status: db_models.AdminRequestPending,
	})

	if err := svc.UpdateStatus(context.Background(), id, db_models.AdminRequestApproved); err != nil {
		t.Fatalf("UpdateStatus() error = %v, mail delivery must not fail the call", err)
	}

	stored, _ := repo.GetByID(context.Background(), id)
	if stored.Status != db_models.AdminRequestApproved {
		t.Errorf("status = %q, want approved", stored.Status)
	}
}
