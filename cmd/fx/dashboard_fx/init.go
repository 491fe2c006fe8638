package dashboard_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
)

var Module = fx.Provide(provideDashboardRepo, provideDashboardService)

func provideDashboardRepo(store repositories.DocumentStore) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(store)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	financeService services.FinanceServiceInterface,
) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo, financeService)
}
