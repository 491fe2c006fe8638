package services

import (
	"context"

	"clubcentral/internal/models/db_models"
	"clubcentral/internal/models/request_models"
	"clubcentral/internal/repositories"
	"clubcentral/pkg/utils"
)

type AchievementServiceInterface interface {
	ListAll(ctx context.Context) ([]db_models.Achievement, error)
	Create(ctx context.Context, req request_models.CreateAchievementRequest) (*db_models.Achievement, error)
	Update(ctx context.Context, id string, req request_models.UpdateAchievementRequest) error
	Delete(ctx context.Context, id string) error
}

type AchievementService struct {
	achievementRepo repositories.AchievementRepository
}

func NewAchievementService(achievementRepo repositories.AchievementRepository) AchievementServiceInterface {
	return &AchievementService{achievementRepo: achievementRepo}
}

func (s *AchievementService) ListAll(ctx context.Context) ([]db_models.Achievement, error) {
	return s.achievementRepo.ListAll(ctx)
}

func (s *AchievementService) Create(ctx context.Context, req request_models.CreateAchievementRequest) (*db_models.Achievement, error) {
	achievement := &db_models.Achievement{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		PhotoURL:    req.PhotoURL,
		Hint:        req.Hint,
	}
	if _, err := s.achievementRepo.Add(ctx, achievement); err != nil {
		return nil, err
	}
	return achievement, nil
}

func (s *AchievementService) Update(ctx context.Context, id string, req request_models.UpdateAchievementRequest) error {
	partial := req.Updates()
	if len(partial) == 0 {
		return utils.ErrValidation
	}
	return s.achievementRepo.Update(ctx, id, partial)
}

func (s *AchievementService) Delete(ctx context.Context, id string) error {
	return s.achievementRepo.Delete(ctx, id)
}
