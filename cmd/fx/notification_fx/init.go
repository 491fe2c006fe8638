package notification_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
)

var Module = fx.Provide(provideNotificationRepo, provideNotificationService)

func provideNotificationRepo(store repositories.DocumentStore) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(store)
}

func provideNotificationService(notificationRepo repositories.NotificationRepository) services.NotificationServiceInterface {
	return services.NewNotificationService(notificationRepo)
}
