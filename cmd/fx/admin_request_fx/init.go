package admin_request_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
)

var Module = fx.Provide(provideAdminRequestRepo, provideAdminRequestService)

func provideAdminRequestRepo(store repositories.DocumentStore) repositories.AdminRequestRepository {
	return repositories.NewAdminRequestRepository(store)
}

func provideAdminRequestService(
	adminRequestRepo repositories.AdminRequestRepository,
	mailService services.IMailService,
) services.AdminRequestServiceInterface {
	return services.NewAdminRequestService(adminRequestRepo, mailService)
}
