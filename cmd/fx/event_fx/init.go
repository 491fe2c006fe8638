package event_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
)

var Module = fx.Provide(provideEventRepo, provideEventService)

func provideEventRepo(store repositories.DocumentStore) repositories.EventRepository {
	return repositories.NewEventRepository(store)
}

func provideEventService(eventRepo repositories.EventRepository) services.EventServiceInterface {
	return services.NewEventService(eventRepo)
}
