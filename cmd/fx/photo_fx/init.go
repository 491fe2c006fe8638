package photo_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
)

var Module = fx.Provide(providePhotoRepo, providePhotoService)

func providePhotoRepo(store repositories.DocumentStore) repositories.PhotoRepository {
	return repositories.NewPhotoRepository(store)
}

func providePhotoService(photoRepo repositories.PhotoRepository) services.PhotoServiceInterface {
	return services.NewPhotoService(photoRepo)
}
