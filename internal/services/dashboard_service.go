package services

import (
	"context"

	"clubcentral/internal/models/response_models"
	"clubcentral/internal/repositories"
)

type DashboardServiceInterface interface {
	BuildReport(ctx context.Context) (*response_models.DashboardReport, error)
}

type DashboardService struct {
	dashboardRepo  repositories.DashboardRepository
	financeService FinanceServiceInterface
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository, financeService FinanceServiceInterface) DashboardServiceInterface {
	return &DashboardService{
		dashboardRepo:  dashboardRepo,
		financeService: financeService,
	}
}

func (s *DashboardService) BuildReport(ctx context.Context) (*response_models.DashboardReport, error) {

	members, err := s.dashboardRepo.CountMembers(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.dashboardRepo.CountEvents(ctx)
	if err != nil {
		return nil, err
	}

	photos, err := s.dashboardRepo.CountPhotos(ctx)
	if err != nil {
		return nil, err
	}

	achievements, err := s.dashboardRepo.CountAchievements(ctx)
	if err != nil {
		return nil, err
	}

	notifications, err := s.dashboardRepo.CountNotifications(ctx)
	if err != nil {
		return nil, err
	}

	pendingRequests, err := s.dashboardRepo.CountPendingAdminRequests(ctx)
	if err != nil {
		return nil, err
	}

	finance, err := s.financeService.Summary(ctx)
	if err != nil {
		return nil, err
	}

	return &response_models.DashboardReport{
		Members:              members,
		Events:               events,
		Photos:               photos,
		Achievements:         achievements,
		Notifications:        notifications,
		PendingAdminRequests: pendingRequests,
		Finance:              *finance,
	}, nil
}
