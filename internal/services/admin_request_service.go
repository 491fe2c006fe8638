package services

import (
	"context"
	"log"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/repositories"
	"clubcentral/pkg/utils"
)

type AdminRequestServiceInterface interface {
	ListAll(ctx context.Context) ([]db_models.AdminRequest, error)
	Submit(ctx context.Context, req request_models.SubmitAdminRequest) (*db_models.AdminRequest, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type AdminRequestService struct {
	adminRequestRepo repositories.AdminRequestRepository
	mailService      IMailService
}

func NewAdminRequestService(adminRequestRepo repositories.AdminRequestRepository, mailService IMailService) AdminRequestServiceInterface {
	return &AdminRequestService{
		adminRequestRepo: adminRequestRepo,
		mailService:      mailService,
	}
}

func (s *AdminRequestService) ListAll(ctx context.Context) ([]db_models.AdminRequest, error) {
	return s.adminRequestRepo.ListAll(ctx)
}

func (s *AdminRequestService) Submit(ctx context.Context, req request_models.SubmitAdminRequest) (*db_models.AdminRequest, error) {
	request := &db_models.AdminRequest{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Reason:   req.Reason,
		Status:   db_models.AdminRequestPending,
	}
	if _, err := s.adminRequestRepo.Add(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateStatus overwrites the status, whatever it was before: approve,
// reject, revoke an approval or re-approve a rejection alike.
func (s *AdminRequestService) UpdateStatus(ctx context.Context, id string, status string) error {
	if !db_models.IsValidAdminRequestStatus(status) {
		return utils.ErrInvalidStatus
	}

	request, err := s.adminRequestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.adminRequestRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	// decision mail is best-effort; the status change already happened
	if err := s.mailService.SendAdminRequestDecision(request.Email, request.Name, status); err != nil {
		log.Printf("Failed to send admin request decision email: %v", err)
	}

	return nil
}

func (s *AdminRequestService) Delete(ctx context.Context, id string) error {
	return s.adminRequestRepo.Delete(ctx, id)
}
