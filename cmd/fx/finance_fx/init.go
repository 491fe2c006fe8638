package finance_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
)

var Module = fx.Provide(provideFinanceRepo, provideFinanceService)

func provideFinanceRepo(store repositories.DocumentStore) repositories.FinanceRepository {
	return repositories.NewFinanceRepository(store)
}

func provideFinanceService(financeRepo repositories.FinanceRepository) services.FinanceServiceInterface {
	return services.NewFinanceService(financeRepo)
}
