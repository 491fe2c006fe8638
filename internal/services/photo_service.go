package services

import (
	"context"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/repositories"
	"clubcentral/pkg/utils"
)

type PhotoServiceInterface interface {
	ListAll(ctx context.Context) ([]db_models.Photo, error)
	Create(ctx context.Context, req request_models.CreatePhotoRequest) (*db_models.Photo, error)
	Update(ctx context.Context, id string, req request_models.UpdatePhotoRequest) error
	Delete(ctx context.Context, id string) error
}

type PhotoService struct {
	photoRepo repositories.PhotoRepository
}

func NewPhotoService(photoRepo repositories.PhotoRepository) PhotoServiceInterface {
	return &PhotoService{photoRepo: photoRepo}
}

func (s *PhotoService) ListAll(ctx context.Context) ([]db_models.Photo, error) {
	return s.photoRepo.ListAll(ctx)
}

func (s *PhotoService) Create(ctx context.Context, req request_models.CreatePhotoRequest) (*db_models.Photo, error) {
	photo := &db_models.Photo{
		URL:           req.URL,
		Description:   req.Description,
		Hint:          req.Hint,
		IsSliderPhoto: req.IsSliderPhoto,
	}
	if _, err := s.photoRepo.Add(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *PhotoService) Update(ctx context.Context, id string, req request_models.UpdatePhotoRequest) error {
	partial := req.Updates()
	if len(partial) == 0 {
		return utils.ErrValidation
	}
	return s.photoRepo.Update(ctx, id, partial)
}

func (s *PhotoService) Delete(ctx context.Context, id string) error {
	return s.photoRepo.Delete(ctx, id)
}
