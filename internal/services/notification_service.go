package services

import (
	"context"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/repositories"
	"clubcentral/pkg/utils"
)

type NotificationServiceInterface interface {
	ListAll(ctx context.Context) ([]db_models.Notification, error)
	Create(ctx context.Context, req request_models.CreateNotificationRequest) (*db_models.Notification, error)
	Update(ctx context.Context, id string, req request_models.UpdateNotificationRequest) error
	Delete(ctx context.Context, id string) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) ListAll(ctx context.Context) ([]db_models.Notification, error) {
	return s.notificationRepo.ListAll(ctx)
}

func (s *NotificationService) Create(ctx context.Context, req request_models.CreateNotificationRequest) (*db_models.Notification, error) {
	notification := &db_models.Notification{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}
	if _, err := s.notificationRepo.Add(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *NotificationService) Update(ctx context.Context, id string, req request_models.UpdateNotificationRequest) error {
	partial := req.Updates()
	if len(partial) == 0 {
		return utils.ErrValidation
	}
	return s.notificationRepo.Update(ctx, id, partial)
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	return s.notificationRepo.Delete(ctx, id)
}
