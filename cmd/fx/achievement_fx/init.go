package achievement_fx

import (
	"go.uber.org/fx"

	"clubcentral/internal/repositories"
	"clubcentral/internal/services"
)

var Module = fx.Provide(provideAchievementRepo, provideAchievementService)

func provideAchievementRepo(store repositories.DocumentStore) repositories.AchievementRepository {
	return repositories.NewAchievementRepository(store)
}

func provideAchievementService(achievementRepo repositories.AchievementRepository) services.AchievementServiceInterface {
	return services.NewAchievementService(achievementRepo)
}
