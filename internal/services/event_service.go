package services

import (
	"context"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/repositories"
	"clubcentral/pkg/utils"
)

type EventServiceInterface interface {
	ListAll(ctx context.Context) ([]db_models.Event, error)
	Create(ctx context.Context, req request_models.CreateEventRequest) (*db_models.Event, error)
	Update(ctx context.Context, id string, req request_models.UpdateEventRequest) error
	Delete(ctx context.Context, id string) error
}

type EventService struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventServiceInterface {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) ListAll(ctx context.Context) ([]db_models.Event, error) {
	return s.eventRepo.ListAll(ctx)
}

func (s *EventService) Create(ctx context.Context, req request_models.CreateEventRequest) (*db_models.Event, error) {
	event := &db_models.Event{
		Title:        req.Title,
		Description:  req.Description,
		Date:         req.Date,
		PhotoURL:     req.PhotoURL,
		Hint:         req.Hint,
		RedirectURL:  req.RedirectURL,
		ShowOnSlider: req.ShowOnSlider,
	}
	if _, err := s.eventRepo.Add(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, req request_models.UpdateEventRequest) error {
	partial := req.Updates()
	if len(partial) == 0 {
		return utils.ErrValidation
	}
	return s.eventRepo.Update(ctx, id, partial)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	return s.eventRepo.Delete(ctx, id)
}
