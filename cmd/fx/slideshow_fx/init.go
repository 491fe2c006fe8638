package slideshow_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
)

var Module = fx.Provide(provideSlideshowService)

func provideSlideshowService(
	photoRepo repositories.PhotoRepository,
	eventRepo repositories.EventRepository,
) services.SlideshowServiceInterface {
	return services.NewSlideshowService(photoRepo, eventRepo)
}
